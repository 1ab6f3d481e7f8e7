// Package ui provides the terminal styling and interactive views for
// the verdant CLI.
package ui

import "github.com/charmbracelet/lipgloss"

// Color palette. Verdant is green-first with semantic accents shared
// across views.
var (
	Leaf   = lipgloss.Color("#4CAF50") // primary green
	Moss   = lipgloss.Color("#2E7D32") // deep green
	Sun    = lipgloss.Color("#FFC107") // highlights, bright light
	Soil   = lipgloss.Color("#795548") // muted detail
	Mist   = lipgloss.Color("#90A4AE") // secondary text
	Blight = lipgloss.Color("#E53935") // danger, sick plants
	Sky    = lipgloss.Color("#2196F3") // info
)

var (
	// TitleStyle heads each report.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Leaf)

	// SubtitleStyle renders scientific names and secondary headings.
	SubtitleStyle = lipgloss.NewStyle().
			Italic(true).
			Foreground(Mist)

	// LabelStyle renders field labels inside report sections.
	LabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Moss)

	// MutedStyle renders de-emphasized detail text.
	MutedStyle = lipgloss.NewStyle().
			Foreground(Mist)

	// DangerStyle flags toxicity and failing health.
	DangerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Blight)

	// WarnStyle flags mid-range scores and cautions.
	WarnStyle = lipgloss.NewStyle().
			Foreground(Sun)

	// GoodStyle flags healthy scores.
	GoodStyle = lipgloss.NewStyle().
			Foreground(Leaf)

	// SectionStyle boxes a report section.
	SectionStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Moss).
			Padding(0, 1)

	// UserBubbleStyle and BotBubbleStyle frame chat turns.
	UserBubbleStyle = lipgloss.NewStyle().
			Foreground(Sky).
			Bold(true)
	BotBubbleStyle = lipgloss.NewStyle().
			Foreground(Leaf).
			Bold(true)
)

// ScoreStyle picks a style for a 0-100 score: green from 80, yellow
// from the rescue threshold, red below it.
func ScoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 80:
		return GoodStyle
	case score >= 60:
		return WarnStyle
	default:
		return DangerStyle
	}
}
