package view

import (
	"strings"
	"testing"

	"github.com/wayfarer-cli/wayfarer/internal/trip"
)

const testWidth = 80

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestHotelsFallbackIdenticalForNilAndEmpty(t *testing.T) {
	v := NewHotelsView()

	nilOut := v.Render(nil, testWidth)
	emptyOut := v.Render([]trip.Hotel{}, testWidth)

	if nilOut != emptyOut {
		t.Errorf("nil and empty hotels must render identically\nnil:   %q\nempty: %q", nilOut, emptyOut)
	}
	if !strings.Contains(nilOut, "No hotels found") {
		t.Errorf("fallback output missing message: %q", nilOut)
	}
}

func TestHotelsCard(t *testing.T) {
	hotels := []trip.Hotel{{
		Name:           "Hotel Artemide",
		Rating:         floatPtr(4.5),
		Address:        "Via Nazionale 22",
		EstimatedPrice: "€180/night",
		Pricing:        "$$",
		PriceLevel:     intPtr(2),
		Reviews: []trip.Review{
			{Text: "Wonderful stay", Author: "Maria"},
			{Text: "Never shown", Author: "Nobody"},
		},
	}}

	out := NewHotelsView().Render(hotels, testWidth)

	for _, want := range []string{"Hotel Artemide", "4.5", "Via Nazionale 22", "€180/night", "Wonderful stay", "Maria"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	// The estimate wins over the pricing string.
	if strings.Contains(out, "$$") {
		t.Error("pricing string should be superseded by the estimate")
	}
	// Only the first review is shown.
	if strings.Contains(out, "Never shown") || strings.Contains(out, "Nobody") {
		t.Error("only the first review may be rendered")
	}
}

func TestHotelsMissingOptionalFields(t *testing.T) {
	out := NewHotelsView().Render([]trip.Hotel{{Name: "Bare Hotel"}}, testWidth)

	if !strings.Contains(out, "N/A") {
		t.Error("absent rating must render as N/A")
	}
	if !strings.Contains(out, "Price not available") {
		t.Error("absent prices must render the fixed fallback")
	}
}

func TestPriceScaleAlwaysFourSlots(t *testing.T) {
	tests := []struct {
		name       string
		level      *int
		wantFilled int
	}{
		{"absent", nil, 0},
		{"zero", intPtr(0), 0},
		{"two", intPtr(2), 2},
		{"four", intPtr(4), 4},
		{"above range", intPtr(9), 4},
		{"below range", intPtr(-3), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := renderPriceScale(tt.level)

			filled := strings.Count(out, "$")
			empty := strings.Count(out, "·")
			if filled+empty != priceScaleSlots {
				t.Errorf("scale has %d slots, want %d (%q)", filled+empty, priceScaleSlots, out)
			}
			if filled != tt.wantFilled {
				t.Errorf("filled slots = %d, want %d (%q)", filled, tt.wantFilled, out)
			}
		})
	}
}
