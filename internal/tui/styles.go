package tui

import "github.com/charmbracelet/lipgloss"

// Brand colours of the marketing site.
var (
	accent   = lipgloss.AdaptiveColor{Light: "#4F46E5", Dark: "#818CF8"}
	muted    = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	online   = lipgloss.Color("#22C55E")
	userFill = lipgloss.AdaptiveColor{Light: "#E0E7FF", Dark: "#312E81"}
)

type styles struct {
	header     lipgloss.Style
	status     lipgloss.Style
	hint       lipgloss.Style
	botLabel   lipgloss.Style
	userLabel  lipgloss.Style
	userText   lipgloss.Style
	sources    lipgloss.Style
	sourceTag  lipgloss.Style
	typing     lipgloss.Style
	pillTitle  lipgloss.Style
	pill       lipgloss.Style
	inputFrame lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		header:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		status:     lipgloss.NewStyle().Foreground(online),
		hint:       lipgloss.NewStyle().Foreground(muted),
		botLabel:   lipgloss.NewStyle().Bold(true).Foreground(accent),
		userLabel:  lipgloss.NewStyle().Bold(true),
		userText:   lipgloss.NewStyle().Background(userFill).Padding(0, 1),
		sources:    lipgloss.NewStyle().Foreground(muted).Italic(true),
		sourceTag:  lipgloss.NewStyle().Foreground(accent).Underline(true),
		typing:     lipgloss.NewStyle().Foreground(muted),
		pillTitle:  lipgloss.NewStyle().Foreground(muted),
		pill:       lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(accent).Padding(0, 1),
		inputFrame: lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true, false, false, false).BorderForeground(muted),
	}
}
