// Package styles centralizes the lipgloss colors and styles shared across
// the TUI and the plan renderers.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	PrimaryColor   = lipgloss.Color("#38BDF8") // Sky blue
	SecondaryColor = lipgloss.Color("#34D399") // Green
	WarningColor   = lipgloss.Color("#FBBF24") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	TextColor      = lipgloss.Color("#F9FAFB") // Light text
	BorderColor    = lipgloss.Color("#6B7280") // Gray border
	AccentColor    = lipgloss.Color("#FBBF24") // Stars, highlights
	PriceColor     = lipgloss.Color("#34D399") // Filled price slots

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)
	Accent    = lipgloss.NewStyle().Foreground(AccentColor)

	// Base styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		MarginBottom(1)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Section card: every plan section renders inside one of these
	SectionBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2).
			MarginBottom(1)

	SectionTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// Item card inside a section (hotel, attraction, flight)
	ItemTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(TextColor)

	Badge = lipgloss.NewStyle().
		Foreground(PrimaryColor).
		Bold(true)

	// Header
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor).
		MarginBottom(1).
		PaddingBottom(1)

	// Help bar
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)

	// Error message shown on the prompt screen after a failed submission
	ErrorMsg = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	// Disclaimer box under the flights section
	NoteBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(WarningColor).
		Foreground(MutedColor).
		Padding(0, 1).
		MarginTop(1)

	// Price scale slots
	PriceFilled = lipgloss.NewStyle().Foreground(PriceColor)
	PriceEmpty  = lipgloss.NewStyle().Foreground(BorderColor)

	// Review quote
	Quote = lipgloss.NewStyle().
		Foreground(MutedColor).
		Italic(true)
)
