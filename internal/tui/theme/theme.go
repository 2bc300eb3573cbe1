package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

type Theme struct {
	Title      lipgloss.Style
	HintBar    lipgloss.Style
	Cover      lipgloss.Style
	CoverText  lipgloss.Style
	Section    lipgloss.Style
	ActiveLine lipgloss.Style
	Filter     lipgloss.Style
	Number     lipgloss.Style
	Name       lipgloss.Style
	MetaLabel  lipgloss.Style
	MetaValue  lipgloss.Style
	ErrorText  lipgloss.Style
	StateLoad  lipgloss.Style
	Frame      lipgloss.Style
	Rule       lipgloss.Style
}

// Default picks a palette for the detected terminal background.
func Default() Theme {
	return ForBackground(termenv.HasDarkBackground())
}

func ForBackground(dark bool) Theme {
	cpMauve := lipgloss.Color("#cba6f7")
	cpRed := lipgloss.Color("#f38ba8")
	cpPeach := lipgloss.Color("#fab387")
	cpYellow := lipgloss.Color("#f9e2af")
	cpTeal := lipgloss.Color("#94e2d5")
	cpLavender := lipgloss.Color("#b4befe")
	cpText := lipgloss.Color("#cdd6f4")
	cpSubtext := lipgloss.Color("#a6adc8")
	cpOverlay := lipgloss.Color("#7f849c")
	cpSurface := lipgloss.Color("#313244")
	if !dark {
		cpMauve = lipgloss.Color("#8839ef")
		cpRed = lipgloss.Color("#d20f39")
		cpPeach = lipgloss.Color("#fe640b")
		cpYellow = lipgloss.Color("#df8e1d")
		cpTeal = lipgloss.Color("#179299")
		cpLavender = lipgloss.Color("#7287fd")
		cpText = lipgloss.Color("#4c4f69")
		cpSubtext = lipgloss.Color("#6c6f85")
		cpOverlay = lipgloss.Color("#8c8fa1")
		cpSurface = lipgloss.Color("#ccd0da")
	}

	return Theme{
		Title:      lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		HintBar:    lipgloss.NewStyle().Foreground(cpOverlay),
		Cover:      lipgloss.NewStyle().Foreground(cpLavender).Background(cpSurface),
		CoverText:  lipgloss.NewStyle().Bold(true).Foreground(cpMauve),
		Section:    lipgloss.NewStyle().Bold(true).Foreground(cpTeal),
		ActiveLine: lipgloss.NewStyle().Background(cpSurface).Foreground(cpText),
		Filter:     lipgloss.NewStyle().Foreground(cpYellow),
		Number:     lipgloss.NewStyle().Bold(true).Foreground(cpYellow),
		Name:       lipgloss.NewStyle().Bold(true).Foreground(cpText),
		MetaLabel:  lipgloss.NewStyle().Foreground(cpOverlay),
		MetaValue:  lipgloss.NewStyle().Foreground(cpSubtext),
		ErrorText:  lipgloss.NewStyle().Foreground(cpRed),
		StateLoad:  lipgloss.NewStyle().Foreground(cpPeach),
		Frame:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(cpLavender).Padding(0, 2),
		Rule:       lipgloss.NewStyle().Foreground(cpOverlay),
	}
}

func (t Theme) RenderActiveLine(active bool, line string) string {
	if !active {
		return line
	}
	return t.ActiveLine.Render(line)
}
