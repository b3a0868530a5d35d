package view

import (
	"strings"
	"testing"

	"github.com/wayfarer-cli/wayfarer/internal/trip"
)

func TestFlightsFallbackIdenticalForNilAndEmpty(t *testing.T) {
	v := NewFlightsView()

	if v.Render(nil, testWidth) != v.Render([]trip.Flight{}, testWidth) {
		t.Error("nil and empty flights must render identically")
	}
	if !strings.Contains(v.Render(nil, testWidth), "Flight information not available") {
		t.Error("fallback output missing message")
	}
}

func TestFlightsCard(t *testing.T) {
	flights := []trip.Flight{{
		Airline:       "ITA Airways",
		Stops:         0,
		Price:         trip.Price{Currency: "EUR", Total: "310.00"},
		DurationHours: floatPtr(2.5),
		Itineraries: []trip.Itinerary{{
			Duration: "PT2H30M",
			Segments: []trip.Segment{{
				Departure:    trip.Endpoint{Time: "2025-10-10T08:15:00", Airport: "LHR", Terminal: "5"},
				Arrival:      trip.Endpoint{Time: "2025-10-10T11:45:00", Airport: "FCO"},
				CarrierCode:  "AZ",
				FlightNumber: "205",
				Aircraft:     "A320",
			}},
		}},
	}}

	out := NewFlightsView().Render(flights, testWidth)

	for _, want := range []string{
		"ITA Airways",
		"Direct",
		"EUR 310.00",
		"2.5h total",
		"2h30m",
		"08:15 AM",
		"11:45 AM",
		"LHR",
		"T5",
		"FCO",
		"AZ 205",
		"A320",
		"subject to change",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestFlightsDefaults(t *testing.T) {
	flights := []trip.Flight{{
		Stops: 2,
		Price: trip.Price{Currency: "USD", Total: "840.00"},
	}}

	out := NewFlightsView().Render(flights, testWidth)

	if !strings.Contains(out, "Flight") {
		t.Error("missing airline must fall back to the generic label")
	}
	if !strings.Contains(out, "2 stops") {
		t.Error("multi-stop count must be pluralized")
	}
	if !strings.Contains(out, "Duration varies") {
		t.Error("missing duration_hours must use the generic fallback")
	}
}

func TestStopsText(t *testing.T) {
	tests := []struct {
		stops int
		want  string
	}{
		{0, "Direct"},
		{1, "1 stop"},
		{2, "2 stops"},
		{5, "5 stops"},
	}
	for _, tt := range tests {
		if got := stopsText(tt.stops); got != tt.want {
			t.Errorf("stopsText(%d) = %q, want %q", tt.stops, got, tt.want)
		}
	}
}

func TestFlightsDisclaimerAlwaysPresent(t *testing.T) {
	minimal := []trip.Flight{{Price: trip.Price{Currency: "EUR", Total: "99.00"}}}
	out := NewFlightsView().Render(minimal, testWidth)
	if !strings.Contains(out, "subject to change") {
		t.Error("disclaimer must always be appended to a populated section")
	}
}
