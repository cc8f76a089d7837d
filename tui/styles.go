package tui

import "github.com/charmbracelet/lipgloss"

// Kitchen palette; light and dark terminal variants
var (
	colorTomato  = lipgloss.AdaptiveColor{Light: "#C0392B", Dark: "#FF6F59"}
	colorBasil   = lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#7BC67E"}
	colorSaffron = lipgloss.AdaptiveColor{Light: "#B7791F", Dark: "#F6C453"}
	colorCrust   = lipgloss.AdaptiveColor{Light: "#8D5524", Dark: "#E0A370"}
	colorPlate   = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E1E"}
	colorPepper  = lipgloss.AdaptiveColor{Light: "#6B6B6B", Dark: "#9A9A9A"}
)

var (
	TitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorCrust).
		MarginTop(1).
		MarginBottom(1)

	// phase line
	StatusStyle = lipgloss.NewStyle().
		Foreground(colorBasil)

	LoadingStyle = lipgloss.NewStyle().
		Italic(true).
		Foreground(colorSaffron)

	ErrorStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorTomato)

	AlertStyle = lipgloss.NewStyle().
		Border(lipgloss.ThickBorder(), false, false, false, true).
		BorderForeground(colorTomato).
		PaddingLeft(1)

	// list
	CuisineStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorPlate).
		Background(colorCrust).
		Padding(0, 1)

	SelectedStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(colorSaffron)

	VideoStyle = lipgloss.NewStyle().
		Foreground(colorTomato)

	InfoStyle = lipgloss.NewStyle().
		Foreground(colorPepper)

	FooterStyle = lipgloss.NewStyle().
		Foreground(colorPepper).
		Border(lipgloss.NormalBorder(), true, false, false, false).
		BorderForeground(colorPepper)
)
