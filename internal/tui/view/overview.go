package view

import (
	"fmt"
	"strings"

	"github.com/wayfarer-cli/wayfarer/internal/trip"
	"github.com/wayfarer-cli/wayfarer/internal/tui/styles"
)

// OverviewView renders the trip header: destination, dates, and length.
type OverviewView struct{}

// NewOverviewView creates a new OverviewView instance.
func NewOverviewView() *OverviewView {
	return &OverviewView{}
}

// Render renders the overview banner for a plan.
func (v *OverviewView) Render(plan *trip.Plan, width int) string {
	var b strings.Builder

	b.WriteString(styles.Title.Render(fmt.Sprintf("Your Trip to %s", plan.Destination)))
	b.WriteString("\n")

	facts := []string{
		styles.Primary.Render("⚲ ") + plan.Destination,
	}
	if plan.Dates != "" {
		facts = append(facts, styles.Muted.Render(plan.Dates))
	}
	if plan.Duration > 0 {
		facts = append(facts, styles.Muted.Render(fmt.Sprintf("%d days", plan.Duration)))
	}
	b.WriteString(strings.Join(facts, styles.Muted.Render("  •  ")))
	b.WriteString("\n\n")
	b.WriteString(styles.Subtitle.Render("Here's your personalized travel plan with hotels, attractions, weather, and more!"))

	return styles.SectionBox.Width(width - 2).Render(b.String())
}
