package itinerary

// Itinerary is the document produced by the language model for one request.
// The schema is a prompt contract, not a validated one: missing or extra
// fields in the model output are tolerated and passed through as-is.
type Itinerary struct {
	Destination string  `json:"destination,omitempty"`
	City        string  `json:"city,omitempty"`
	Country     string  `json:"country,omitempty"`
	AirportCode string  `json:"airport_code,omitempty"`
	CityCode    string  `json:"city_code,omitempty"`
	Description string  `json:"description,omitempty"`
	Duration    string  `json:"duration,omitempty"`
	Budget      string  `json:"budget,omitempty"`
	BestTime    string  `json:"best_time,omitempty"`
	Days        []Day   `json:"days,omitempty"`
	Places      []Place `json:"places,omitempty"`
	Note        string  `json:"note,omitempty"`
}

// Day groups the activities of one real calendar date.
type Day struct {
	Title      string     `json:"title,omitempty"`
	Activities []Activity `json:"activities,omitempty"`
}

// Activity is a single timed entry within a day.
type Activity struct {
	Time     string `json:"time,omitempty"`
	Activity string `json:"activity,omitempty"`
	Location string `json:"location,omitempty"`
}

// Place is a highlighted spot with a visiting tip.
type Place struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Tip         string `json:"tip,omitempty"`
}
