package tui

import (
	"github.com/charmbracelet/lipgloss"

	"taskdeck/internal/model"
)

// Styles holds the lipgloss styles for one theme.
type Styles struct {
	Title      lipgloss.Style
	Header     lipgloss.Style
	Banner     lipgloss.Style
	Muted      lipgloss.Style
	Selected   lipgloss.Style
	Done       lipgloss.Style
	High       lipgloss.Style
	Medium     lipgloss.Style
	Low        lipgloss.Style
	Badge      lipgloss.Style
	FieldLabel lipgloss.Style
	FormError  lipgloss.Style
	Help       lipgloss.Style
	Panel      lipgloss.Style
}

func lightStyles() Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("25")),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Banner:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("160")),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Selected:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("26")),
		Done:       lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("245")),
		High:       lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		Medium:     lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
		Low:        lipgloss.NewStyle().Foreground(lipgloss.Color("28")),
		Badge:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("160")).Padding(0, 1),
		FieldLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("240")),
		FormError:  lipgloss.NewStyle().Foreground(lipgloss.Color("160")),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Panel:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
	}
}

func darkStyles() Styles {
	return Styles{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Header:     lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
		Banner:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		Muted:      lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Selected:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("45")),
		Done:       lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("242")),
		High:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Medium:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Low:        lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		Badge:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231")).Background(lipgloss.Color("203")).Padding(0, 1),
		FieldLabel: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("246")),
		FormError:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Help:       lipgloss.NewStyle().Foreground(lipgloss.Color("242")),
		Panel:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("246")).Padding(0, 1),
	}
}

// stylesFor maps the persisted theme preference onto a style set.
func stylesFor(theme model.Theme) Styles {
	if theme == model.ThemeDark {
		return darkStyles()
	}
	return lightStyles()
}
