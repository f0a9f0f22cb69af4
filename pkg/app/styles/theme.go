package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary    = lipgloss.Color("#7AA2F7")
	Secondary  = lipgloss.Color("#BB9AF7")
	Success    = lipgloss.Color("#9ECE6A")
	Warning    = lipgloss.Color("#E0AF68")
	Error      = lipgloss.Color("#F7768E")
	Muted      = lipgloss.Color("#565F89")
	Foreground = lipgloss.Color("#C0CAF5")

	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	// Card around one icon entry
	CardStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Secondary).
			Padding(0, 2).
			MarginBottom(1)

	ActiveCardStyle = lipgloss.NewStyle().
			Border(ThickBorder).
			BorderForeground(Primary).
			Padding(0, 2).
			MarginBottom(1)

	// Category badge next to an icon name
	BadgeStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	// The misc badge stands out: those icons are what review is for.
	MiscBadgeStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)

	// Highlighted category in the review palette
	PaletteSelectedStyle = lipgloss.NewStyle().
				Foreground(Primary).
				Bold(true).
				Underline(true)

	ProgressBarStyle = lipgloss.NewStyle().
				Foreground(Primary)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Background(lipgloss.Color("#292E42")).
			Padding(0, 2).
			Bold(true)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Padding(0, 2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginTop(1)
)

// BadgeFor picks the badge style for a category id.
func BadgeFor(category string) lipgloss.Style {
	if category == "misc" {
		return MiscBadgeStyle
	}
	return BadgeStyle
}
