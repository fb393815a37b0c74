package travel

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/instatrip/backend/internal/itinerary"
	"github.com/instatrip/backend/internal/logging"
)

// Linker enriches a generated itinerary with flight/hotel offers and deep
// links. Provider failures never propagate: they degrade to search links.
type Linker struct {
	Client        *Client
	DefaultOrigin string
	Now           func() time.Time
}

// NewLinker constructs a Linker with the given fallback origin airport.
func NewLinker(client *Client, defaultOrigin string) *Linker {
	if defaultOrigin == "" {
		defaultOrigin = "MAD"
	}
	return &Linker{Client: client, DefaultOrigin: defaultOrigin, Now: time.Now}
}

// Attach searches offers for the itinerary's destination and synthesizes
// booking links. Always returns a usable structure, whatever fails upstream.
func (l *Linker) Attach(ctx context.Context, it *itinerary.Itinerary, origin string) BookingLinks {
	logger := logging.FromContext(ctx)

	origin = strings.ToUpper(strings.TrimSpace(origin))
	if origin == "" {
		origin = l.DefaultOrigin
	}

	now := time.Now
	if l.Now != nil {
		now = l.Now
	}
	windows := TripWindows(now(), it.Duration)

	destAirport := strings.ToUpper(strings.TrimSpace(it.AirportCode))
	cityCode := strings.ToUpper(strings.TrimSpace(it.CityCode))
	if cityCode == "" {
		cityCode = airportToCity(destAirport)
	}
	city := it.City
	if city == "" {
		city = it.Destination
	}

	links := BookingLinks{
		Flights:     l.flightEntries(ctx, origin, destAirport, city, windows),
		Hotels:      l.hotelEntries(ctx, cityCode, city, windows[0]),
		Activities:  activityLinks(it.Destination, placeNames(it)),
		Origin:      origin,
		DateOptions: []DateOption{windows[0].DateOption(), windows[1].DateOption()},
	}

	logger.Info("booking links assembled",
		"origin", origin,
		"destination_airport", destAirport,
		"flight_offers", countOffers(links),
		"hotel_entries", len(links.Hotels),
	)
	return links
}

func (l *Linker) flightEntries(ctx context.Context, origin, destAirport, city string, windows [2]Window) []FlightEntry {
	logger := logging.FromContext(ctx)
	entries := make([]FlightEntry, 0, len(windows)+2)

	if destAirport != "" {
		for _, w := range windows {
			offer, err := l.Client.SearchFlights(ctx, origin, destAirport, w)
			if err != nil {
				logger.Warn("flight search degraded", "origin", origin, "destination", destAirport, "error", err)
				continue
			}
			entries = append(entries, FlightEntry{
				Type:          EntryOffer,
				Airline:       offer.AirlineCode,
				Price:         offer.Price,
				Currency:      offer.Currency,
				Duration:      offer.Duration,
				Stops:         offer.Stops,
				Direct:        offer.Direct,
				DepartureDate: w.Depart.Format(dateLayout),
				ReturnDate:    w.Return.Format(dateLayout),
				Rationale:     w.Rationale,
				Link:          flightDeepLink(origin, destAirport, w),
			})
		}
		entries = append(entries, flightSearchLinks(origin, destAirport, city)...)
		return entries
	}

	// No airport code in the itinerary: only a text search is possible.
	entries = append(entries, FlightEntry{
		Type:        EntrySearchAlternative,
		Description: "Buscar vuelos a " + city + " en Google Flights",
		Link:        "https://www.google.com/travel/flights?q=" + url.QueryEscape("vuelos a "+city),
	})
	return entries
}

func (l *Linker) hotelEntries(ctx context.Context, cityCode, city string, w Window) []HotelEntry {
	logger := logging.FromContext(ctx)
	entries := make([]HotelEntry, 0, topHotels+2)

	if cityCode != "" {
		offers, err := l.Client.SearchHotels(ctx, cityCode, w)
		if err != nil {
			logger.Warn("hotel search degraded", "city_code", cityCode, "error", err)
		}
		for _, offer := range offers {
			entries = append(entries, HotelEntry{
				Type:          EntryOffer,
				Name:          offer.Name,
				Rating:        offer.Rating,
				PriceTotal:    offer.Total,
				PricePerNight: offer.Nightly,
				Currency:      offer.Currency,
				Link:          hotelDeepLink(city, offer.Name, w),
			})
		}
	}

	return append(entries, hotelSearchLinks(city, w)...)
}

func placeNames(it *itinerary.Itinerary) []string {
	names := make([]string, 0, len(it.Places))
	for _, p := range it.Places {
		if p.Name != "" {
			names = append(names, p.Name)
		}
	}
	return names
}

func countOffers(links BookingLinks) int {
	n := 0
	for _, f := range links.Flights {
		if f.Type == EntryOffer {
			n++
		}
	}
	return n
}

// airportToCity maps airport IATA codes to the city codes the hotel search
// expects; unknown codes pass through unchanged.
func airportToCity(airport string) string {
	mapping := map[string]string{
		"LHR": "LON", "LGW": "LON", "STN": "LON",
		"CDG": "PAR", "ORY": "PAR",
		"JFK": "NYC", "LGA": "NYC", "EWR": "NYC",
		"FCO": "ROM", "CIA": "ROM",
		"NRT": "TYO", "HND": "TYO",
		"SXF": "BER",
	}
	if city, ok := mapping[airport]; ok {
		return city
	}
	return airport
}
