// Package trip defines the typed shape of a plan returned by the planning
// service. Every substructure is independently optional: the service
// assembles the plan from several upstream providers and any of them may
// come back empty. Optional scalars are pointers, optional lists are nil
// slices, and Normalize collapses the two spellings of "no data" (absent vs
// empty) so renderers only ever check one condition.
package trip

// Plan is the full trip plan for one request. It is produced atomically by
// the planning service, decoded once at the client boundary, and treated as
// immutable afterwards.
type Plan struct {
	Destination string `json:"destination"`
	Dates       string `json:"dates"`
	Duration    int    `json:"duration"` // trip length in days
	Summary     string `json:"summary"`

	Weather     *Weather     `json:"weather,omitempty"`
	Hotels      []Hotel      `json:"hotels,omitempty"`
	Attractions []Attraction `json:"attractions,omitempty"`
	Flights     []Flight     `json:"flights,omitempty"`
	Routes      []Route      `json:"routes,omitempty"`
}

// Weather groups current conditions, the daily forecast, and packing tips.
// All three are independently optional.
type Weather struct {
	Location        string        `json:"location"`
	Current         *Conditions   `json:"current,omitempty"`
	Forecast        []DayForecast `json:"forecast,omitempty"`
	Recommendations []string      `json:"recommendations,omitempty"`
}

// Conditions is a current-weather observation.
type Conditions struct {
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Description string  `json:"description"`
}

// DayForecast is one day of the forecast grid.
type DayForecast struct {
	Date        string  `json:"date"`
	MaxTemp     float64 `json:"max_temp"`
	MinTemp     float64 `json:"min_temp"`
	Humidity    float64 `json:"humidity"`
	Description string  `json:"description"`
}

// Hotel is one lodging recommendation. PriceLevel is the provider's 0-4
// price bucket; the value is carried through unclamped, out-of-range values
// are a display concern.
type Hotel struct {
	Name           string   `json:"name"`
	Rating         *float64 `json:"rating,omitempty"`
	Address        string   `json:"address,omitempty"`
	EstimatedPrice string   `json:"estimated_price,omitempty"`
	Pricing        string   `json:"pricing,omitempty"`
	PriceLevel     *int     `json:"price_level,omitempty"`
	Reviews        []Review `json:"reviews,omitempty"`
}

// Attraction is one point of interest.
type Attraction struct {
	Name               string   `json:"name"`
	Rating             *float64 `json:"rating,omitempty"`
	Category           string   `json:"category,omitempty"`
	Address            string   `json:"address,omitempty"`
	EstimatedVisitTime string   `json:"estimated_visit_time,omitempty"`
	Pricing            string   `json:"pricing,omitempty"`
	Reviews            []Review `json:"reviews,omitempty"`
	OpeningHours       []string `json:"opening_hours,omitempty"`
}

// Flight is one flight option with its priced itineraries.
type Flight struct {
	Airline       string      `json:"airline,omitempty"`
	Stops         int         `json:"stops"`
	Price         Price       `json:"price"`
	DurationHours *float64    `json:"duration_hours,omitempty"`
	Itineraries   []Itinerary `json:"itineraries,omitempty"`
}

// Price is a currency-qualified total.
type Price struct {
	Currency string `json:"currency"`
	Total    string `json:"total"`
}

// Itinerary is one leg sequence of a flight option. Duration uses the
// ISO-8601-style "PT#H#M" encoding of the upstream flight provider.
type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

// Segment is a single takeoff-to-landing hop.
type Segment struct {
	Departure    Endpoint `json:"departure"`
	Arrival      Endpoint `json:"arrival"`
	CarrierCode  string   `json:"carrier_code"`
	FlightNumber string   `json:"flight_number"`
	Aircraft     string   `json:"aircraft,omitempty"`
}

// Endpoint is one end of a segment.
type Endpoint struct {
	Time     string `json:"time"`
	Airport  string `json:"airport"`
	Terminal string `json:"terminal,omitempty"`
}

// Route is a suggested walking/transit hop between two attractions.
type Route struct {
	StartAttraction string `json:"start_attraction"`
	EndAttraction   string `json:"end_attraction"`
	TotalDistance   string `json:"total_distance"`
	TotalDuration   string `json:"total_duration"`
}

// Review is a single visitor review; only the first review of a list is
// ever displayed.
type Review struct {
	Text   string `json:"text"`
	Author string `json:"author"`
}
