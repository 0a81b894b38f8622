package tui

import (
	"github.com/pkg/errors"
	"golang.design/x/clipboard"
)

// systemClipboard copies text to the system clipboard.
func systemClipboard(text string) error {
	if err := clipboard.Init(); err != nil {
		return errors.Wrap(err, "clipboard unavailable")
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return nil
}
