package view

import (
	"strings"

	"github.com/wayfarer-cli/wayfarer/internal/trip"
	"github.com/wayfarer-cli/wayfarer/internal/tui/styles"
)

// maxOpeningHours caps how many opening-hours lines are shown per
// attraction.
const maxOpeningHours = 3

// AttractionsView renders the attraction recommendations.
type AttractionsView struct{}

// NewAttractionsView creates a new AttractionsView instance.
func NewAttractionsView() *AttractionsView {
	return &AttractionsView{}
}

// Render renders one card per attraction, or the fallback card when the
// list is absent or empty.
func (v *AttractionsView) Render(attractions []trip.Attraction, width int) string {
	if len(attractions) == 0 {
		return fallbackSection("Attractions", "No attractions found for this destination.", width)
	}

	cards := make([]string, 0, len(attractions))
	for i := range attractions {
		cards = append(cards, v.renderAttraction(&attractions[i]))
	}
	return section("Top Attractions", strings.Join(cards, "\n\n"), width)
}

func (v *AttractionsView) renderAttraction(a *trip.Attraction) string {
	var b strings.Builder

	b.WriteString(styles.ItemTitle.Render(a.Name))
	b.WriteString("  ")
	b.WriteString(styles.Accent.Render("★ " + ratingText(a.Rating)))
	if a.Category != "" {
		b.WriteString("  ")
		b.WriteString(styles.Badge.Render("[" + a.Category + "]"))
	}
	b.WriteString("\n")

	if a.Address != "" {
		b.WriteString(styles.Muted.Render("⚲ " + a.Address))
		b.WriteString("\n")
	}

	// Visit time and pricing are independently optional; show whichever is
	// present, side by side when both are.
	var facts []string
	if a.EstimatedVisitTime != "" {
		facts = append(facts, labeled("Visit", a.EstimatedVisitTime))
	}
	if a.Pricing != "" {
		facts = append(facts, labeled("Pricing", a.Pricing))
	}
	if len(facts) > 0 {
		b.WriteString(strings.Join(facts, "   "))
		b.WriteString("\n")
	}

	if r := a.FirstReview(); r != nil {
		b.WriteString(styles.Quote.Render("“" + r.Text + "”"))
		b.WriteString(styles.Muted.Render(" — " + r.Author))
		b.WriteString("\n")
	}

	if len(a.OpeningHours) > 0 {
		b.WriteString(styles.Muted.Render("Opening Hours:"))
		hours := a.OpeningHours
		if len(hours) > maxOpeningHours {
			hours = hours[:maxOpeningHours]
		}
		for _, h := range hours {
			b.WriteString("\n  ")
			b.WriteString(styles.Muted.Render(h))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
