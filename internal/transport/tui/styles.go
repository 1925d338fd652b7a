package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rocketscienceinc/tictactoe-tui/internal/entity"
)

type Theme struct {
	XColor string
	OColor string
}

type styles struct {
	title  lipgloss.Style
	button lipgloss.Style
	hint   lipgloss.Style
	cursor lipgloss.Style
	grid   lipgloss.Style
	marks  map[entity.Mark]lipgloss.Style
}

func newStyles(theme Theme) styles {
	return styles{
		title:  lipgloss.NewStyle().Bold(true),
		button: lipgloss.NewStyle().Bold(true).Reverse(true),
		hint:   lipgloss.NewStyle().Faint(true),
		cursor: lipgloss.NewStyle().Reverse(true),
		grid:   lipgloss.NewStyle().Faint(true),
		marks: map[entity.Mark]lipgloss.Style{
			entity.PlayerX: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.XColor)),
			entity.PlayerO: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(theme.OColor)),
		},
	}
}

func (that styles) mark(mark entity.Mark) lipgloss.Style {
	if style, ok := that.marks[mark]; ok {
		return style
	}

	return that.hint
}
