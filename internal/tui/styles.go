package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Adaptive colors for dark/light terminals
	colorPrimary   = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#EF4444"}
	colorSecondary = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorDim       = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorAccent    = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	colorBorder    = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}
	colorActiveBdr = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#EF4444"}
	colorTabActive = lipgloss.AdaptiveColor{Light: "#B91C1C", Dark: "#EF4444"}
	colorTabBg     = lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#2A2A3E"}
	colorStatusBg  = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#16213E"}
	colorStatusFg  = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorGreen     = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			PaddingLeft(1)

	headerDateStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Align(lipgloss.Right)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	cardSelectedStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorActiveBdr).
				Padding(0, 1)

	cardNameStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true)

	cardPriceStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorSecondary)

	cardCheapestPriceStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorAccent)

	cardURLStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	cheapestBadgeStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(colorAccent).
				Padding(0, 1).
				Bold(true)

	bannerStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			PaddingLeft(1)

	countStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			Bold(true).
			PaddingLeft(1)

	noticeInfoStyle = lipgloss.NewStyle().
			Foreground(colorSecondary).
			PaddingLeft(1)

	noticeErrStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			PaddingLeft(1)

	tabActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorTabActive).
			Padding(0, 1).
			Bold(true)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Background(colorTabBg).
				Padding(0, 1)

	tabSeparatorStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorStatusBg).
			Foreground(colorStatusFg).
			PaddingLeft(1).
			PaddingRight(1)

	spinnerStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	searchPromptStyle = lipgloss.NewStyle().
				Foreground(colorAccent).
				Bold(true)

	trendDownStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	trendUpStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)

	trendFlatStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Bold(true)

	chartLineStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	chartLabelStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	helpDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	helpCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	// Store badges follow the store's brand color; unknown stores get
	// the default badge.
	storeBadgeDefault = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Background(colorTabBg).
				Padding(0, 1)

	storeBadges = map[string]lipgloss.Style{
		"Mercado Livre": lipgloss.NewStyle().
			Foreground(lipgloss.Color("#78350F")).
			Background(lipgloss.Color("#FDE68A")).
			Padding(0, 1),
		"Amazon": lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7C2D12")).
			Background(lipgloss.Color("#FED7AA")).
			Padding(0, 1),
		"Magazine Luiza": lipgloss.NewStyle().
			Foreground(lipgloss.Color("#1E3A8A")).
			Background(lipgloss.Color("#BFDBFE")).
			Padding(0, 1),
		"Americanas": lipgloss.NewStyle().
			Foreground(lipgloss.Color("#7F1D1D")).
			Background(lipgloss.Color("#FECACA")).
			Padding(0, 1),
	}
)

func storeBadge(store string) string {
	if s, ok := storeBadges[store]; ok {
		return s.Render(store)
	}
	return storeBadgeDefault.Render(store)
}
