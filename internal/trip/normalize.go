package trip

// Normalize canonicalizes a freshly decoded plan so that "absent" and
// "empty" mean the same thing everywhere downstream. Empty slices become
// nil, a weather block with no location, conditions, forecast, or tips is
// dropped entirely, and blank recommendation strings are removed. Renderers
// can then rely on the HasX helpers instead of re-checking raw JSON shapes.
func (p *Plan) Normalize() {
	if p == nil {
		return
	}

	p.Hotels = dropEmpty(p.Hotels)
	p.Attractions = dropEmpty(p.Attractions)
	p.Flights = dropEmpty(p.Flights)
	p.Routes = dropEmpty(p.Routes)

	for i := range p.Hotels {
		p.Hotels[i].Reviews = dropEmpty(p.Hotels[i].Reviews)
	}
	for i := range p.Attractions {
		p.Attractions[i].Reviews = dropEmpty(p.Attractions[i].Reviews)
		p.Attractions[i].OpeningHours = dropEmpty(p.Attractions[i].OpeningHours)
	}
	for i := range p.Flights {
		p.Flights[i].Itineraries = dropEmpty(p.Flights[i].Itineraries)
		for j := range p.Flights[i].Itineraries {
			p.Flights[i].Itineraries[j].Segments = dropEmpty(p.Flights[i].Itineraries[j].Segments)
		}
	}

	if p.Weather != nil {
		p.Weather.Forecast = dropEmpty(p.Weather.Forecast)
		p.Weather.Recommendations = dropBlank(p.Weather.Recommendations)
		if p.Weather.Location == "" && p.Weather.Current == nil &&
			p.Weather.Forecast == nil && p.Weather.Recommendations == nil {
			p.Weather = nil
		}
	}
}

// HasWeather reports whether the plan carries any weather data.
func (p *Plan) HasWeather() bool { return p != nil && p.Weather != nil }

// HasHotels reports whether the plan carries at least one hotel.
func (p *Plan) HasHotels() bool { return p != nil && len(p.Hotels) > 0 }

// HasAttractions reports whether the plan carries at least one attraction.
func (p *Plan) HasAttractions() bool { return p != nil && len(p.Attractions) > 0 }

// HasFlights reports whether the plan carries at least one flight option.
func (p *Plan) HasFlights() bool { return p != nil && len(p.Flights) > 0 }

// HasRoutes reports whether the plan carries at least one suggested route.
func (p *Plan) HasRoutes() bool { return p != nil && len(p.Routes) > 0 }

// PriceText resolves the display price of a hotel: the estimate wins over
// the generic pricing string, and both absent yields the fixed fallback.
func (h *Hotel) PriceText() string {
	if h.EstimatedPrice != "" {
		return h.EstimatedPrice
	}
	if h.Pricing != "" {
		return h.Pricing
	}
	return "Price not available"
}

// FirstReview returns the only review that is ever displayed, or nil.
func (h *Hotel) FirstReview() *Review {
	if len(h.Reviews) == 0 {
		return nil
	}
	return &h.Reviews[0]
}

// FirstReview returns the only review that is ever displayed, or nil.
func (a *Attraction) FirstReview() *Review {
	if len(a.Reviews) == 0 {
		return nil
	}
	return &a.Reviews[0]
}

func dropEmpty[T any](s []T) []T {
	if len(s) == 0 {
		return nil
	}
	return s
}

func dropBlank(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	out := s[:0]
	for _, v := range s {
		if v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}
