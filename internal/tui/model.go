// Package tui is the terminal front end of the calculator: a keypad drawn with lipgloss and driven
// by Bubble Tea, with keyboard shortcuts, clipboard copy, and a persisted light or dark theme.
package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/karrick/gocalc/internal/keypad"
	"github.com/karrick/gocalc/internal/settings"
	"github.com/sirupsen/logrus"
)

const (
	buttonWidth  = 6
	displayWidth = 4*buttonWidth + 3

	// CopyFeedbackDelay is how long the copy confirmation stays in the status line.
	CopyFeedbackDelay = 900 * time.Millisecond

	labelClear  = "C"
	labelDelete = "⌫"
	labelEquals = "="
)

var buttons = [][]string{
	{labelClear, labelDelete, "(", ")"},
	{"7", "8", "9", "/"},
	{"4", "5", "6", "*"},
	{"1", "2", "3", "-"},
	{"0", ".", labelEquals, "+"},
}

// ThemeStore persists the theme when the user changes it.
type ThemeStore interface {
	SaveTheme(settings.Theme) error
}

// Option modifies a Model under construction.
type Option func(*Model)

// WithClipboard replaces the function used to copy the display to the system clipboard.
func WithClipboard(copyFn func(string) error) Option {
	return func(m *Model) {
		m.copyText = copyFn
	}
}

// WithThemeStore sets where theme changes are saved. Without one, a theme change lasts only for
// the session.
func WithThemeStore(store ThemeStore) Option {
	return func(m *Model) {
		m.store = store
	}
}

// Model is the Bubble Tea model of the calculator.
type Model struct {
	state    keypad.State
	theme    settings.Theme
	styles   styles
	store    ThemeStore
	copyText func(string) error

	row, col int    // focused button
	status   string // transient message below the keypad

	errorSeq  int // identifies the error indicator a pending reset belongs to
	statusSeq int
}

type errorClearMsg struct{ seq int }

type statusClearMsg struct{ seq int }

type copyResultMsg struct {
	text string
	err  error
}

type themeSavedMsg struct {
	theme settings.Theme
	err   error
}

// New returns a calculator model with empty input in the given theme.
func New(theme settings.Theme, options ...Option) Model {
	m := Model{
		theme:    theme,
		copyText: systemClipboard,
	}
	for _, option := range options {
		option(&m)
	}
	m.styles = newStyles(theme)
	return m
}

// State returns the current entry line.
func (m Model) State() keypad.State { return m.state }

// Theme returns the current theme.
func (m Model) Theme() settings.Theme { return m.theme }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case errorClearMsg:
		if msg.seq == m.errorSeq && m.state.Failed {
			m.state = keypad.Reset(m.state)
		}
		return m, nil

	case statusClearMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil

	case copyResultMsg:
		if msg.err != nil {
			logrus.WithError(msg.err).Warn("cannot copy to clipboard")
			return m.setStatus("Copy failed: " + msg.err.Error())
		}
		logrus.WithField("text", msg.text).Debug("copied to clipboard")
		return m.setStatus("Copied!")

	case themeSavedMsg:
		if msg.err != nil {
			logrus.WithError(msg.err).WithField("theme", msg.theme).Warn("cannot save theme")
			return m.setStatus("Theme not saved: " + msg.err.Error())
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		return m, tea.Quit
	case tea.KeyEnter:
		return m.calculate()
	case tea.KeyBackspace, tea.KeyDelete:
		m.state = keypad.Delete(m.state)
		return m, nil
	case tea.KeyEsc:
		m.state = keypad.Clear(m.state)
		return m, nil
	case tea.KeyUp:
		m.row = (m.row + len(buttons) - 1) % len(buttons)
		return m, nil
	case tea.KeyDown:
		m.row = (m.row + 1) % len(buttons)
		return m, nil
	case tea.KeyLeft:
		m.col = (m.col + len(buttons[m.row]) - 1) % len(buttons[m.row])
		return m, nil
	case tea.KeyRight:
		m.col = (m.col + 1) % len(buttons[m.row])
		return m, nil
	case tea.KeySpace:
		return m.activate(buttons[m.row][m.col])
	case tea.KeyRunes:
		switch key := string(msg.Runes); key {
		case "q":
			return m, tea.Quit
		case "y":
			return m.copyDisplay()
		case "t":
			return m.toggleTheme()
		case labelEquals:
			return m.calculate()
		default:
			m.state = keypad.Press(m.state, key)
			return m, nil
		}
	}
	return m, nil
}

// activate performs the action of a keypad button.
func (m Model) activate(label string) (tea.Model, tea.Cmd) {
	switch label {
	case labelClear:
		m.state = keypad.Clear(m.state)
	case labelDelete:
		m.state = keypad.Delete(m.state)
	case labelEquals:
		return m.calculate()
	default:
		m.state = keypad.Press(m.state, label)
	}
	return m, nil
}

func (m Model) calculate() (tea.Model, tea.Cmd) {
	var err error
	m.state, err = keypad.Calculate(m.state)
	if err == nil {
		return m, nil
	}
	m.errorSeq++
	seq := m.errorSeq
	return m, tea.Tick(keypad.ErrorClearDelay, func(time.Time) tea.Msg {
		return errorClearMsg{seq: seq}
	})
}

func (m Model) copyDisplay() (tea.Model, tea.Cmd) {
	text, copyFn := m.state.Input, m.copyText
	return m, func() tea.Msg {
		return copyResultMsg{text: text, err: copyFn(text)}
	}
}

func (m Model) toggleTheme() (tea.Model, tea.Cmd) {
	m.theme = m.theme.Toggle()
	m.styles = newStyles(m.theme)
	if m.store == nil {
		return m, nil
	}
	theme, store := m.theme, m.store
	return m, func() tea.Msg {
		return themeSavedMsg{theme: theme, err: store.SaveTheme(theme)}
	}
}

func (m Model) setStatus(status string) (tea.Model, tea.Cmd) {
	m.status = status
	m.statusSeq++
	seq := m.statusSeq
	return m, tea.Tick(CopyFeedbackDelay, func(time.Time) tea.Msg {
		return statusClearMsg{seq: seq}
	})
}

func (m Model) View() string {
	var b strings.Builder

	display := m.styles.display
	if m.state.Failed {
		display = m.styles.failed
	}
	b.WriteString(display.Render(m.state.Input))
	b.WriteString("\n\n")

	rows := make([]string, len(buttons))
	for r, row := range buttons {
		cells := make([]string, 0, 2*len(row))
		for c, label := range row {
			if c > 0 {
				cells = append(cells, " ")
			}
			cells = append(cells, m.buttonStyle(r, c, label).Render(label))
		}
		rows[r] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, rows...))
	b.WriteString("\n\n")

	if m.status != "" {
		b.WriteString(m.styles.status.Render(m.status))
	} else {
		b.WriteString(m.styles.help.Render("enter = · ⌫ del · esc clear · y copy · t theme · q quit"))
	}

	return m.styles.frame.Render(b.String()) + "\n"
}

func (m Model) buttonStyle(r, c int, label string) lipgloss.Style {
	switch {
	case r == m.row && c == m.col:
		return m.styles.focused
	case strings.Contains("+-*/=", label):
		return m.styles.operator
	default:
		return m.styles.button
	}
}
