package travel

// EntryType distinguishes a live priced provider result from a generic
// search-engine deep link.
type EntryType string

const (
	EntryOffer             EntryType = "offer"
	EntrySearchAlternative EntryType = "search_alternative"
)

// FlightEntry is one flight line in the booking links, either a priced offer
// or a search alternative.
type FlightEntry struct {
	Type          EntryType `json:"type"`
	Airline       string    `json:"airline,omitempty"`
	Price         float64   `json:"price,omitempty"`
	Currency      string    `json:"currency,omitempty"`
	Duration      string    `json:"duration,omitempty"`
	Stops         int       `json:"stops"`
	Direct        bool      `json:"direct"`
	DepartureDate string    `json:"departure_date,omitempty"`
	ReturnDate    string    `json:"return_date,omitempty"`
	Rationale     string    `json:"rationale,omitempty"`
	Description   string    `json:"description,omitempty"`
	Link          string    `json:"link"`
}

// HotelEntry is one hotel line in the booking links.
type HotelEntry struct {
	Type          EntryType `json:"type"`
	Name          string    `json:"name,omitempty"`
	Rating        float64   `json:"rating,omitempty"`
	PriceTotal    float64   `json:"price_total,omitempty"`
	PricePerNight float64   `json:"price_per_night,omitempty"`
	Currency      string    `json:"currency,omitempty"`
	Description   string    `json:"description,omitempty"`
	Link          string    `json:"link"`
}

// ActivityEntry is a destination- or place-level activity search link.
type ActivityEntry struct {
	Type        EntryType `json:"type"`
	Name        string    `json:"name,omitempty"`
	Description string    `json:"description,omitempty"`
	Link        string    `json:"link"`
}

// DateOption describes one candidate travel window shown to the user.
type DateOption struct {
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date"`
	Rationale     string `json:"rationale"`
}

// BookingLinks is attached to the itinerary after generation.
type BookingLinks struct {
	Flights     []FlightEntry   `json:"flights"`
	Hotels      []HotelEntry    `json:"hotels"`
	Activities  []ActivityEntry `json:"activities"`
	Origin      string          `json:"origin"`
	DateOptions []DateOption    `json:"date_options"`
}
