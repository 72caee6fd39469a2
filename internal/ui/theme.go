package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines colors and styles for the UI.
type Theme struct {
	Name string
	Dark bool

	// Base colors
	Background string // Outermost background
	Surface    string // Cards and panels
	SurfaceAlt string // Unselected chips, tiles
	Border     string

	// Brand gradient endpoints, used for the selected chip and badges.
	Primary   string
	Secondary string
	OnPrimary string

	// Text colors
	Text    string
	Muted   string
	Faint   string
	Accent  string
	Success string
	Warning string
	Danger  string

	// Tile accents for the three stat tiles, left to right.
	TileColors [3]string

	// GlamourStyle names the glamour standard style matching this theme.
	GlamourStyle string
}

// Styles returns Lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Background: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Background)),

		Surface: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Surface)).
			Foreground(lipgloss.Color(t.Text)),

		Text: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)),

		MutedText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),

		FaintText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Faint)),

		AccentText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)),

		SuccessText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),

		WarningText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)),

		DangerText: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),

		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),

		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(1, 2),

		Chip: lipgloss.NewStyle().
			Background(lipgloss.Color(t.SurfaceAlt)).
			Foreground(lipgloss.Color(t.Text)).
			Padding(0, 2),

		ChipSelected: lipgloss.NewStyle().
			Background(lipgloss.Color(t.Primary)).
			Foreground(lipgloss.Color(t.OnPrimary)).
			Bold(true).
			Padding(0, 2),

		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Primary)).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Padding(0, 1),
	}
}

// Styles contains pre-built Lipgloss styles for the theme.
type Styles struct {
	// Base
	Background lipgloss.Style
	Surface    lipgloss.Style

	// Text
	Text        lipgloss.Style
	MutedText   lipgloss.Style
	FaintText   lipgloss.Style
	AccentText  lipgloss.Style
	SuccessText lipgloss.Style
	WarningText lipgloss.Style
	DangerText  lipgloss.Style

	// Components
	Title        lipgloss.Style
	Card         lipgloss.Style
	Chip         lipgloss.Style
	ChipSelected lipgloss.Style
	Badge        lipgloss.Style
	Footer       lipgloss.Style
}

// WithBackground returns a copy of Styles with all text styles having the specified background.
// This ensures styled text has explicit backgrounds instead of transparent/inherit.
func (s Styles) WithBackground(bgColor string) Styles {
	bg := lipgloss.Color(bgColor)

	out := s
	out.Background = s.Background.Background(bg)
	out.Surface = s.Surface.Background(bg)
	out.Text = s.Text.Background(bg)
	out.MutedText = s.MutedText.Background(bg)
	out.FaintText = s.FaintText.Background(bg)
	out.AccentText = s.AccentText.Background(bg)
	out.SuccessText = s.SuccessText.Background(bg)
	out.WarningText = s.WarningText.Background(bg)
	out.DangerText = s.DangerText.Background(bg)
	out.Title = s.Title.Background(bg)
	out.Badge = s.Badge.Background(bg)
	out.Footer = s.Footer.Background(bg)
	return out
}

// ThemeFor returns the dark or light theme.
func ThemeFor(dark bool) Theme {
	if dark {
		return darkTheme()
	}
	return lightTheme()
}

func lightTheme() Theme {
	// Warm orange/amber on white, Tailwind palette: https://tailwindcss.com/docs/colors
	return Theme{
		Name: "Light",

		Background: "#fffbeb", // amber-50
		Surface:    "#ffffff",
		SurfaceAlt: "#f3f4f6", // gray-100
		Border:     "#e5e7eb", // gray-200

		Primary:   "#f97316", // orange-500
		Secondary: "#f59e0b", // amber-500
		OnPrimary: "#ffffff",

		Text:    "#1f2937", // gray-800
		Muted:   "#4b5563", // gray-600
		Faint:   "#9ca3af", // gray-400
		Accent:  "#c2410c", // orange-700
		Success: "#16a34a", // green-600
		Warning: "#d97706", // amber-600
		Danger:  "#dc2626", // red-600

		TileColors: [3]string{
			"#fb923c", // orange-400
			"#fbbf24", // amber-400
			"#f87171", // red-400
		},

		GlamourStyle: "light",
	}
}

func darkTheme() Theme {
	return Theme{
		Name: "Dark",
		Dark: true,

		Background: "#111827", // gray-900
		Surface:    "#1f2937", // gray-800
		SurfaceAlt: "#374151", // gray-700
		Border:     "#374151", // gray-700

		Primary:   "#fb923c", // orange-400
		Secondary: "#fbbf24", // amber-400
		OnPrimary: "#111827",

		Text:    "#f3f4f6", // gray-100
		Muted:   "#d1d5db", // gray-300
		Faint:   "#6b7280", // gray-500
		Accent:  "#fdba74", // orange-300
		Success: "#4ade80", // green-400
		Warning: "#fbbf24", // amber-400
		Danger:  "#f87171", // red-400

		TileColors: [3]string{
			"#fb923c", // orange-400
			"#facc15", // yellow-400
			"#f472b6", // pink-400
		},

		GlamourStyle: "dark",
	}
}
