package tui

import "github.com/charmbracelet/lipgloss"

var (
	primary = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}
	accent  = lipgloss.AdaptiveColor{Light: "#7C3AED", Dark: "#A78BFA"}
	muted   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
	danger  = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	warning = lipgloss.AdaptiveColor{Light: "#B45309", Dark: "#FBBF24"}
)

// Styles groups the lipgloss styles used by the model.
type Styles struct {
	Nav        lipgloss.Style
	NavItem    lipgloss.Style
	Title      lipgloss.Style
	Body       lipgloss.Style
	ChatHeader lipgloss.Style
	Bot        lipgloss.Style
	User       lipgloss.Style
	Crisis     lipgloss.Style
	Failure    lipgloss.Style
	Meta       lipgloss.Style
	Banner     lipgloss.Style
	Typing     lipgloss.Style
	Help       lipgloss.Style
	Spinner    lipgloss.Style
}

// DefaultStyles returns the default palette.
func DefaultStyles() Styles {
	return Styles{
		Nav:        lipgloss.NewStyle().Bold(true).Foreground(primary),
		NavItem:    lipgloss.NewStyle().Foreground(muted).PaddingLeft(2),
		Title:      lipgloss.NewStyle().Bold(true).Foreground(accent),
		Body:       lipgloss.NewStyle(),
		ChatHeader: lipgloss.NewStyle().Bold(true).Foreground(primary).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true),
		Bot:        lipgloss.NewStyle().PaddingLeft(1).BorderStyle(lipgloss.ThickBorder()).BorderLeft(true).BorderForeground(primary),
		User:       lipgloss.NewStyle().PaddingLeft(1).BorderStyle(lipgloss.ThickBorder()).BorderLeft(true).BorderForeground(accent),
		Crisis:     lipgloss.NewStyle().PaddingLeft(1).BorderStyle(lipgloss.ThickBorder()).BorderLeft(true).BorderForeground(danger).Foreground(danger),
		Failure:    lipgloss.NewStyle().PaddingLeft(1).BorderStyle(lipgloss.ThickBorder()).BorderLeft(true).BorderForeground(warning),
		Meta:       lipgloss.NewStyle().Foreground(muted).Faint(true),
		Banner:     lipgloss.NewStyle().Foreground(danger).Bold(true),
		Typing:     lipgloss.NewStyle().Foreground(muted).Italic(true),
		Help:       lipgloss.NewStyle().Foreground(muted),
		Spinner:    lipgloss.NewStyle().Foreground(primary),
	}
}
