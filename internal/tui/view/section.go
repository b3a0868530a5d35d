// Package view provides the stateless renderers that turn a trip plan into
// styled terminal output. Views hold no state; everything they need is
// passed in, so each section can be rendered and tested without a running
// UI. Absent or empty data degrades to a fixed fallback card (or, for
// routes, to nothing at all) — a renderer never fails.
package view

import (
	"strings"

	"github.com/wayfarer-cli/wayfarer/internal/tui/styles"
)

// section wraps a rendered body in the shared section card with a title row.
func section(title, body string, width int) string {
	var b strings.Builder
	b.WriteString(styles.SectionTitle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(body)
	return styles.SectionBox.Width(width - 2).Render(b.String())
}

// fallbackSection renders the "not available" card used by sections whose
// data is absent or empty.
func fallbackSection(title, message string, width int) string {
	return section(title, styles.Muted.Render(message), width)
}

// labeled renders a muted "Label: value" line.
func labeled(label, value string) string {
	return styles.Muted.Render(label+": ") + value
}
