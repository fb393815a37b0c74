package travel

import (
	"fmt"
	"net/url"
	"strings"
)

// maxPlaceLinks caps per-place activity links taken from the itinerary.
const maxPlaceLinks = 5

// The deep-link formats below are external contracts with the booking sites;
// the query parameters mean nothing to this service.

func flightDeepLink(origin, destination string, w Window) string {
	return fmt.Sprintf("https://www.skyscanner.es/transport/flights/%s/%s/%s/%s/",
		strings.ToLower(origin),
		strings.ToLower(destination),
		w.Depart.Format("060102"),
		w.Return.Format("060102"),
	)
}

func flightSearchLinks(origin, destination, city string) []FlightEntry {
	q := url.QueryEscape(fmt.Sprintf("vuelos de %s a %s", origin, city))
	return []FlightEntry{
		{
			Type:        EntrySearchAlternative,
			Description: fmt.Sprintf("Buscar más vuelos %s - %s en Skyscanner", origin, destination),
			Link: fmt.Sprintf("https://www.skyscanner.es/transport/flights/%s/%s/",
				strings.ToLower(origin), strings.ToLower(destination)),
		},
		{
			Type:        EntrySearchAlternative,
			Description: fmt.Sprintf("Buscar vuelos a %s en Google Flights", city),
			Link:        "https://www.google.com/travel/flights?q=" + q,
		},
	}
}

func hotelDeepLink(city, hotelName string, w Window) string {
	v := url.Values{}
	v.Set("ss", strings.TrimSpace(hotelName+" "+city))
	v.Set("checkin", w.Depart.Format(dateLayout))
	v.Set("checkout", w.Return.Format(dateLayout))
	v.Set("group_adults", "2")
	return "https://www.booking.com/searchresults.es.html?" + v.Encode()
}

func hotelSearchLinks(city string, w Window) []HotelEntry {
	return []HotelEntry{
		{
			Type:        EntrySearchAlternative,
			Description: fmt.Sprintf("Buscar más hoteles en %s en Booking.com", city),
			Link:        hotelDeepLink(city, "", w),
		},
		{
			Type:        EntrySearchAlternative,
			Description: fmt.Sprintf("Buscar hoteles en %s en Google", city),
			Link:        "https://www.google.com/travel/hotels?q=" + url.QueryEscape("hoteles en "+city),
		},
	}
}

func activityLinks(destination string, placeNames []string) []ActivityEntry {
	entries := make([]ActivityEntry, 0, maxPlaceLinks+2)

	entries = append(entries, ActivityEntry{
		Type:        EntrySearchAlternative,
		Description: fmt.Sprintf("Actividades y tours en %s", destination),
		Link:        "https://www.getyourguide.es/s/?q=" + url.QueryEscape(destination),
	})

	for i, name := range placeNames {
		if i == maxPlaceLinks {
			break
		}
		entries = append(entries, ActivityEntry{
			Type:        EntrySearchAlternative,
			Name:        name,
			Description: fmt.Sprintf("Entradas y visitas: %s", name),
			Link:        "https://www.getyourguide.es/s/?q=" + url.QueryEscape(name+" "+destination),
		})
	}

	entries = append(entries, ActivityEntry{
		Type:        EntrySearchAlternative,
		Description: fmt.Sprintf("Qué hacer en %s", destination),
		Link:        "https://www.google.com/search?q=" + url.QueryEscape("qué hacer en "+destination),
	})

	return entries
}
