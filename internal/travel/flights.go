package travel

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// FlightOffer is the cheapest priced result for one date window.
type FlightOffer struct {
	AirlineCode string
	Price       float64
	Currency    string
	Duration    string
	Stops       int
	Direct      bool
}

type flightOffersResponse struct {
	Data []struct {
		Price struct {
			GrandTotal string `json:"grandTotal"`
			Currency   string `json:"currency"`
		} `json:"price"`
		Itineraries []struct {
			Duration string `json:"duration"`
			Segments []struct {
				CarrierCode string `json:"carrierCode"`
			} `json:"segments"`
		} `json:"itineraries"`
		ValidatingAirlineCodes []string `json:"validatingAirlineCodes"`
	} `json:"data"`
}

// SearchFlights queries flight offers between two airport codes for one
// window and returns the cheapest result. The provider list is pre-sorted
// by price, so the first offer wins.
func (c *Client) SearchFlights(ctx context.Context, origin, destination string, w Window) (*FlightOffer, error) {
	path := fmt.Sprintf(
		"/v2/shopping/flight-offers?originLocationCode=%s&destinationLocationCode=%s"+
			"&departureDate=%s&returnDate=%s&adults=1&max=3&currencyCode=EUR",
		url.QueryEscape(origin),
		url.QueryEscape(destination),
		w.Depart.Format(dateLayout),
		w.Return.Format(dateLayout),
	)

	var resp flightOffersResponse
	if err := c.getJSON(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("flight search %s-%s: %w", origin, destination, err)
	}
	if len(resp.Data) == 0 {
		return nil, errors.New("no flight offers returned")
	}

	best := resp.Data[0]
	if len(best.Itineraries) == 0 {
		return nil, errors.New("flight offer has no itinerary")
	}

	outbound := best.Itineraries[0]
	airline := ""
	if len(outbound.Segments) > 0 {
		airline = outbound.Segments[0].CarrierCode
	} else if len(best.ValidatingAirlineCodes) > 0 {
		airline = best.ValidatingAirlineCodes[0]
	}

	stops := len(outbound.Segments) - 1
	if stops < 0 {
		stops = 0
	}

	price, err := strconv.ParseFloat(best.Price.GrandTotal, 64)
	if err != nil {
		return nil, fmt.Errorf("parse offer price %q: %w", best.Price.GrandTotal, err)
	}

	return &FlightOffer{
		AirlineCode: airline,
		Price:       price,
		Currency:    best.Price.Currency,
		Duration:    FormatISODuration(outbound.Duration),
		Stops:       stops,
		Direct:      stops == 0,
	}, nil
}

// FormatISODuration converts an ISO-8601-like duration token (PT7H30M) into
// "7h 30min".
func FormatISODuration(iso string) string {
	s := strings.TrimPrefix(strings.TrimPrefix(iso, "PT"), "P")
	if s == "" {
		return ""
	}

	var parts []string
	if h := strings.Index(s, "H"); h >= 0 {
		parts = append(parts, s[:h]+"h")
		s = s[h+1:]
	}
	if m := strings.Index(s, "M"); m >= 0 {
		parts = append(parts, s[:m]+"min")
	}
	return strings.Join(parts, " ")
}
