package view

import (
	"strings"

	"github.com/wayfarer-cli/wayfarer/internal/trip"
)

// PlanView composes the full rendered plan from the section views. The same
// composition backs the interactive viewport and the --print output.
type PlanView struct {
	overview    *OverviewView
	summary     *SummaryView
	weather     *WeatherView
	hotels      *HotelsView
	attractions *AttractionsView
	flights     *FlightsView
	routes      *RoutesView
}

// NewPlanView creates a new PlanView instance.
func NewPlanView() *PlanView {
	return &PlanView{
		overview:    NewOverviewView(),
		summary:     NewSummaryView(),
		weather:     NewWeatherView(),
		hotels:      NewHotelsView(),
		attractions: NewAttractionsView(),
		flights:     NewFlightsView(),
		routes:      NewRoutesView(),
	}
}

// Render renders every section of the plan in display order. Sections with
// missing data degrade per their own rules; the routes section disappears
// entirely when empty.
func (v *PlanView) Render(plan *trip.Plan, width int) string {
	if plan == nil {
		return ""
	}

	sections := []string{
		v.overview.Render(plan, width),
		v.summary.Render(plan.Summary, width),
		v.weather.Render(plan.Weather, width),
		v.hotels.Render(plan.Hotels, width),
		v.attractions.Render(plan.Attractions, width),
		v.flights.Render(plan.Flights, width),
	}
	if routes := v.routes.Render(plan.Routes, width); routes != "" {
		sections = append(sections, routes)
	}

	return strings.Join(sections, "\n")
}
