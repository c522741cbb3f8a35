package tui

import "github.com/charmbracelet/lipgloss"

var (
	LightBackground = lipgloss.Color("#f9fafb")
	LightForeground = lipgloss.Color("#111827")
	LightPrimary    = lipgloss.Color("#2563eb")
	LightMuted      = lipgloss.Color("#6b7280")
	LightBorder     = lipgloss.Color("#e5e7eb")

	DarkBackground = lipgloss.Color("#111827")
	DarkForeground = lipgloss.Color("#f9fafb")
	DarkPrimary    = lipgloss.Color("#60a5fa")
	DarkMuted      = lipgloss.Color("#9ca3af")
	DarkBorder     = lipgloss.Color("#4b5563")

	Destructive = lipgloss.Color("#ef4444")
	Star        = lipgloss.Color("#facc15")
)

// Theme holds the current color scheme
type Theme struct {
	Background lipgloss.Color
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

func LightTheme() Theme {
	return Theme{
		Background: LightBackground,
		Foreground: LightForeground,
		Primary:    LightPrimary,
		Muted:      LightMuted,
		Border:     LightBorder,
	}
}

func DarkTheme() Theme {
	return Theme{
		Background: DarkBackground,
		Foreground: DarkForeground,
		Primary:    DarkPrimary,
		Muted:      DarkMuted,
		Border:     DarkBorder,
		IsDark:     true,
	}
}

// Styles holds the styled components of the viewer.
type Styles struct {
	Theme Theme

	App    lipgloss.Style
	Header lipgloss.Style
	Footer lipgloss.Style

	Title   lipgloss.Style
	Muted   lipgloss.Style
	Price   lipgloss.Style
	Rating  lipgloss.Style
	Error   lipgloss.Style
	Current lipgloss.Style
	Page    lipgloss.Style
	Row     lipgloss.Style
}

func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		App: lipgloss.NewStyle().
			Background(theme.Background).
			Foreground(theme.Foreground).
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			MarginTop(1),

		Title: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Price: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true),

		Rating: lipgloss.NewStyle().
			Foreground(Star),

		Error: lipgloss.NewStyle().
			Foreground(Destructive).
			Bold(true),

		Current: lipgloss.NewStyle().
			Foreground(theme.Background).
			Background(theme.Primary).
			Padding(0, 1),

		Page: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 1),

		Row: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(theme.Border),
	}
}

// ThemeFor picks the styles for the requested mode.
func ThemeFor(dark bool) Styles {
	if dark {
		return NewStyles(DarkTheme())
	}
	return NewStyles(LightTheme())
}
