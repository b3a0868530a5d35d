package view

import (
	"strings"

	"github.com/wayfarer-cli/wayfarer/internal/trip"
	"github.com/wayfarer-cli/wayfarer/internal/tui/styles"
)

// RoutesView renders the suggested routes between attractions.
type RoutesView struct{}

// NewRoutesView creates a new RoutesView instance.
func NewRoutesView() *RoutesView {
	return &RoutesView{}
}

// Render renders one row per route. Unlike the other sections, an absent or
// empty route list produces no output at all — not a fallback card.
func (v *RoutesView) Render(routes []trip.Route, width int) string {
	if len(routes) == 0 {
		return ""
	}

	rows := make([]string, 0, len(routes))
	for _, r := range routes {
		var b strings.Builder
		b.WriteString(styles.ItemTitle.Render(r.StartAttraction + " → " + r.EndAttraction))
		b.WriteString("\n")
		b.WriteString(labeled("Distance", r.TotalDistance))
		b.WriteString("   ")
		b.WriteString(labeled("Duration", r.TotalDuration))
		rows = append(rows, b.String())
	}

	return section("Suggested Routes", strings.Join(rows, "\n\n"), width)
}
