package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/leonardomso/anchor/internal/linkify"
)

// Color palette.
var (
	PrimaryColor   = lipgloss.Color("205") // Pink
	SecondaryColor = lipgloss.Color("241") // Gray
	SuccessColor   = lipgloss.Color("82")  // Green
	ErrorColor     = lipgloss.Color("196") // Red
	URLColor       = lipgloss.Color("39")  // Blue
	EmailColor     = lipgloss.Color("214") // Orange
	FileColor      = lipgloss.Color("141") // Purple
	MutedColor     = lipgloss.Color("245") // Dimmed text
)

// Text styles.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	StatusStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(PrimaryColor).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(SecondaryColor).
			MarginTop(1)

	MutedStyle = lipgloss.NewStyle().
			Foreground(MutedColor)

	DetailLabelStyle = lipgloss.NewStyle().
				Foreground(SecondaryColor).
				Bold(true)

	MarkupStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)
)

// SpinnerStyle returns the style for the spinner.
func SpinnerStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(PrimaryColor)
}

func badge(bg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color("0")).
		Background(bg).
		Padding(0, 1)
}

// Badge styles per match kind.
var (
	BadgeURL   = badge(URLColor)
	BadgeEmail = badge(EmailColor)
	BadgeFile  = badge(FileColor)
	BadgePlain = badge(MutedColor)
)

// KindStyle returns the text style used for counts of kind k.
func KindStyle(k linkify.Kind) lipgloss.Style {
	switch k {
	case linkify.KindURL:
		return lipgloss.NewStyle().Foreground(URLColor)
	case linkify.KindEmail:
		return lipgloss.NewStyle().Foreground(EmailColor)
	case linkify.KindFile:
		return lipgloss.NewStyle().Foreground(FileColor)
	default:
		return MutedStyle
	}
}

// KindBadge returns a styled badge for the given match kind.
func KindBadge(k linkify.Kind) string {
	switch k {
	case linkify.KindURL:
		return BadgeURL.Render("URL")
	case linkify.KindEmail:
		return BadgeEmail.Render("EMAIL")
	case linkify.KindFile:
		return BadgeFile.Render("FILE")
	default:
		return BadgePlain.Render("TEXT")
	}
}
