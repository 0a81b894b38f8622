package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/karrick/gocalc/internal/settings"
)

type palette struct {
	background, foreground, muted, accent, danger, key, operator lipgloss.Color
}

var palettes = map[settings.Theme]palette{
	settings.Light: {
		background: lipgloss.Color("255"),
		foreground: lipgloss.Color("235"),
		muted:      lipgloss.Color("245"),
		accent:     lipgloss.Color("62"),
		danger:     lipgloss.Color("160"),
		key:        lipgloss.Color("253"),
		operator:   lipgloss.Color("189"),
	},
	settings.Dark: {
		background: lipgloss.Color("235"),
		foreground: lipgloss.Color("252"),
		muted:      lipgloss.Color("242"),
		accent:     lipgloss.Color("141"),
		danger:     lipgloss.Color("203"),
		key:        lipgloss.Color("238"),
		operator:   lipgloss.Color("60"),
	},
}

type styles struct {
	frame    lipgloss.Style
	display  lipgloss.Style
	failed   lipgloss.Style
	button   lipgloss.Style
	operator lipgloss.Style
	focused  lipgloss.Style
	status   lipgloss.Style
	help     lipgloss.Style
}

func newStyles(theme settings.Theme) styles {
	p, ok := palettes[theme]
	if !ok {
		p = palettes[settings.Light]
	}
	button := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(p.foreground).
		Background(p.key)
	return styles{
		frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.accent).
			Background(p.background).
			Padding(1, 2),
		display: lipgloss.NewStyle().
			Width(displayWidth).
			Align(lipgloss.Right).
			Bold(true).
			Foreground(p.foreground).
			Background(p.background).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(p.muted),
		failed: lipgloss.NewStyle().
			Width(displayWidth).
			Align(lipgloss.Right).
			Bold(true).
			Foreground(p.danger).
			Background(p.background).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(p.danger),
		button:   button,
		operator: button.Background(p.operator),
		focused:  button.Foreground(p.background).Background(p.accent).Bold(true),
		status:   lipgloss.NewStyle().Foreground(p.accent),
		help:     lipgloss.NewStyle().Foreground(p.muted),
	}
}
