package settings

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Theme selects the color scheme of the calculator.
type Theme string

const (
	Light Theme = "light"
	Dark  Theme = "dark"
)

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == Dark {
		return Light
	}
	return Dark
}

// Settings are the user preferences kept between runs.
type Settings struct {
	Theme Theme `toml:"theme"`
}

// Default returns the settings used when nothing has been saved.
func Default() Settings {
	return Settings{Theme: Light}
}

// DefaultPath returns settings.toml inside the user's configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "cannot locate configuration directory")
	}
	return filepath.Join(dir, "gocalc", "settings.toml"), nil
}

// Load reads settings from path. A missing file yields Default. An unrecognized theme is replaced
// with the light theme.
func Load(path string) (Settings, error) {
	s := Default()
	if _, err := toml.DecodeFile(path, &s); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logrus.WithField("path", path).Debug("no saved settings")
			return Default(), nil
		}
		return Default(), errors.Wrapf(err, "cannot read settings from %s", path)
	}
	switch s.Theme {
	case Light, Dark:
	default:
		logrus.WithFields(logrus.Fields{"path": path, "theme": s.Theme}).Warn("unknown theme, using light")
		s.Theme = Light
	}
	return s, nil
}

// Save writes s to path, creating its directory if needed. The file is replaced atomically.
func Save(path string, s Settings) error {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(s); err != nil {
		return errors.Wrap(err, "cannot encode settings")
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "cannot create %s", dir)
	}
	tmp, err := os.CreateTemp(dir, ".settings-*.toml")
	if err != nil {
		return errors.Wrap(err, "cannot create temporary settings file")
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return errors.Wrap(err, "cannot write settings")
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "cannot write settings")
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "cannot replace %s", path)
	}
	logrus.WithFields(logrus.Fields{"path": path, "theme": s.Theme}).Debug("saved settings")
	return nil
}

// File stores the theme in a settings file. It satisfies the ThemeStore the terminal front end
// persists theme changes through.
type File struct {
	Path string
}

// SaveTheme records theme in the file, keeping any other settings it holds.
func (f File) SaveTheme(theme Theme) error {
	s, err := Load(f.Path)
	if err != nil {
		return err
	}
	s.Theme = theme
	return Save(f.Path, s)
}
