package view

import (
	"strings"

	"github.com/wayfarer-cli/wayfarer/internal/format"
	"github.com/wayfarer-cli/wayfarer/internal/trip"
	"github.com/wayfarer-cli/wayfarer/internal/tui/styles"
)

// priceScaleSlots is the fixed size of the hotel price scale. The scale
// always shows exactly this many slots; price_level only controls how many
// are filled.
const priceScaleSlots = 4

// HotelsView renders the hotel recommendations.
type HotelsView struct{}

// NewHotelsView creates a new HotelsView instance.
func NewHotelsView() *HotelsView {
	return &HotelsView{}
}

// Render renders one card per hotel, or the fallback card when the list is
// absent or empty.
func (v *HotelsView) Render(hotels []trip.Hotel, width int) string {
	if len(hotels) == 0 {
		return fallbackSection("Hotels", "No hotels found for this destination.", width)
	}

	cards := make([]string, 0, len(hotels))
	for i := range hotels {
		cards = append(cards, v.renderHotel(&hotels[i]))
	}
	return section("Recommended Hotels", strings.Join(cards, "\n\n"), width)
}

func (v *HotelsView) renderHotel(h *trip.Hotel) string {
	var b strings.Builder

	b.WriteString(styles.ItemTitle.Render(h.Name))
	b.WriteString("  ")
	b.WriteString(styles.Accent.Render("★ " + ratingText(h.Rating)))
	b.WriteString("\n")

	if h.Address != "" {
		b.WriteString(styles.Muted.Render("⚲ " + h.Address))
		b.WriteString("\n")
	}

	b.WriteString(h.PriceText())
	b.WriteString("  ")
	b.WriteString(renderPriceScale(h.PriceLevel))

	if r := h.FirstReview(); r != nil {
		b.WriteString("\n")
		b.WriteString(styles.Quote.Render("“" + r.Text + "”"))
		b.WriteString(styles.Muted.Render(" — " + r.Author))
	}

	return b.String()
}

// renderPriceScale renders the fixed four-slot price indicator. The number
// of filled slots equals price_level, display-clamped to the scale; absent
// means zero filled. The underlying value is never mutated.
func renderPriceScale(level *int) string {
	filled := 0
	if level != nil {
		filled = *level
	}
	if filled < 0 {
		filled = 0
	}
	if filled > priceScaleSlots {
		filled = priceScaleSlots
	}

	var b strings.Builder
	for i := 0; i < priceScaleSlots; i++ {
		if i < filled {
			b.WriteString(styles.PriceFilled.Render("$"))
		} else {
			b.WriteString(styles.PriceEmpty.Render("·"))
		}
	}
	return b.String()
}

// ratingText formats an optional rating with one decimal, or N/A.
func ratingText(rating *float64) string {
	if rating == nil {
		return format.NotAvailable
	}
	return format.Rating(*rating)
}
