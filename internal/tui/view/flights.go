package view

import (
	"fmt"
	"strings"

	"github.com/wayfarer-cli/wayfarer/internal/format"
	"github.com/wayfarer-cli/wayfarer/internal/trip"
	"github.com/wayfarer-cli/wayfarer/internal/tui/styles"
)

// flightsDisclaimer is always appended to a populated flights section.
const flightsDisclaimer = "Note: Flight prices and availability are subject to change. " +
	"Please check with airlines directly for the most current information and to book."

// FlightsView renders the flight options.
type FlightsView struct{}

// NewFlightsView creates a new FlightsView instance.
func NewFlightsView() *FlightsView {
	return &FlightsView{}
}

// Render renders one card per flight plus the static disclaimer, or the
// fallback card when the list is absent or empty.
func (v *FlightsView) Render(flights []trip.Flight, width int) string {
	if len(flights) == 0 {
		return fallbackSection("Flights", "Flight information not available.", width)
	}

	cards := make([]string, 0, len(flights)+1)
	for i := range flights {
		cards = append(cards, v.renderFlight(&flights[i]))
	}

	body := strings.Join(cards, "\n\n") + "\n" +
		styles.NoteBox.Width(width-8).Render(flightsDisclaimer)
	return section("Flight Options", body, width)
}

func (v *FlightsView) renderFlight(f *trip.Flight) string {
	var b strings.Builder

	airline := f.Airline
	if airline == "" {
		airline = "Flight"
	}
	b.WriteString(styles.ItemTitle.Render(airline))
	b.WriteString("  ")
	b.WriteString(styles.Muted.Render(stopsText(f.Stops)))
	b.WriteString("\n")

	b.WriteString(fmt.Sprintf("%s %s", f.Price.Currency, f.Price.Total))
	b.WriteString(styles.Muted.Render("  " + durationText(f.DurationHours)))

	for i := range f.Itineraries {
		b.WriteString("\n")
		b.WriteString(v.renderItinerary(&f.Itineraries[i]))
	}

	return b.String()
}

func (v *FlightsView) renderItinerary(it *trip.Itinerary) string {
	var b strings.Builder
	b.WriteString(labeled("Duration", format.Duration(it.Duration)))

	for i := range it.Segments {
		b.WriteString("\n  ")
		b.WriteString(v.renderSegment(&it.Segments[i]))
	}
	return b.String()
}

func (v *FlightsView) renderSegment(s *trip.Segment) string {
	var b strings.Builder

	b.WriteString(format.Clock(s.Departure.Time))
	b.WriteString(" ")
	b.WriteString(s.Departure.Airport)
	if s.Departure.Terminal != "" {
		b.WriteString(styles.Muted.Render(" T" + s.Departure.Terminal))
	}
	b.WriteString(" → ")
	b.WriteString(format.Clock(s.Arrival.Time))
	b.WriteString(" ")
	b.WriteString(s.Arrival.Airport)
	if s.Arrival.Terminal != "" {
		b.WriteString(styles.Muted.Render(" T" + s.Arrival.Terminal))
	}

	b.WriteString(styles.Muted.Render(fmt.Sprintf("  %s %s", s.CarrierCode, s.FlightNumber)))
	if s.Aircraft != "" {
		b.WriteString(styles.Muted.Render("  " + s.Aircraft))
	}
	return b.String()
}

// stopsText renders the stop count: "Direct" for nonstop, pluralized
// otherwise.
func stopsText(stops int) string {
	switch {
	case stops == 0:
		return "Direct"
	case stops == 1:
		return "1 stop"
	default:
		return fmt.Sprintf("%d stops", stops)
	}
}

// durationText renders the total duration, or a generic fallback when the
// service did not supply one.
func durationText(hours *float64) string {
	if hours == nil {
		return "Duration varies"
	}
	return format.Number(*hours) + "h total"
}
