package travel

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

const (
	// maxHotelIDs caps the second-stage offers call; the provider rejects
	// long hotelIds lists and rate-limits aggressively.
	maxHotelIDs = 10

	// minHotelRating filters low-rated properties; unrated hotels (0) pass.
	minHotelRating = 4

	topHotels = 3
)

// HotelOffer is one priced hotel kept after filtering and sorting.
type HotelOffer struct {
	Name     string
	Rating   float64
	Total    float64
	Nightly  float64
	Currency string
}

type hotelListResponse struct {
	Data []struct {
		HotelID string `json:"hotelId"`
	} `json:"data"`
}

type hotelPricedOffer struct {
	Price struct {
		Total    string `json:"total"`
		Currency string `json:"currency"`
	} `json:"price"`
}

type hotelOffersResponse struct {
	Data []struct {
		Hotel struct {
			Name   string `json:"name"`
			Rating string `json:"rating"`
		} `json:"hotel"`
		Available bool               `json:"available"`
		Offers    []hotelPricedOffer `json:"offers"`
	} `json:"data"`
}

// SearchHotels runs the two-stage hotel lookup for a city code over one date
// window: list hotel IDs, price the first batch, filter by star rating, and
// keep the cheapest three by nightly price.
func (c *Client) SearchHotels(ctx context.Context, cityCode string, w Window) ([]HotelOffer, error) {
	var list hotelListResponse
	listPath := fmt.Sprintf("/v1/reference-data/locations/hotels/by-city?cityCode=%s&radius=5&radiusUnit=KM&hotelSource=ALL",
		url.QueryEscape(cityCode))
	if err := c.getJSON(ctx, listPath, &list); err != nil {
		return nil, fmt.Errorf("hotel list %s: %w", cityCode, err)
	}

	ids := make([]string, 0, maxHotelIDs)
	for _, h := range list.Data {
		ids = append(ids, h.HotelID)
		if len(ids) == maxHotelIDs {
			break
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no hotels listed for city %s", cityCode)
	}

	var offers hotelOffersResponse
	offersPath := fmt.Sprintf("/v3/shopping/hotel-offers?hotelIds=%s&checkInDate=%s&checkOutDate=%s&adults=1&roomQuantity=1&currency=EUR&bestRateOnly=true",
		url.QueryEscape(strings.Join(ids, ",")),
		w.Depart.Format(dateLayout),
		w.Return.Format(dateLayout),
	)
	if err := c.getJSON(ctx, offersPath, &offers); err != nil {
		return nil, fmt.Errorf("hotel offers %s: %w", cityCode, err)
	}

	nights := w.Nights()

	kept := make([]HotelOffer, 0, len(offers.Data))
	for _, item := range offers.Data {
		if !item.Available || len(item.Offers) == 0 {
			continue
		}

		rating := parseRating(item.Hotel.Rating)
		if rating > 0 && rating < minHotelRating {
			continue
		}

		cheapest, currency := cheapestOffer(item.Offers)
		if cheapest <= 0 {
			continue
		}

		nightly := cheapest
		if nights > 0 {
			nightly = cheapest / float64(nights)
		}

		kept = append(kept, HotelOffer{
			Name:     item.Hotel.Name,
			Rating:   rating,
			Total:    cheapest,
			Nightly:  nightly,
			Currency: currency,
		})
	}

	sort.Slice(kept, func(i, j int) bool { return kept[i].Nightly < kept[j].Nightly })
	if len(kept) > topHotels {
		kept = kept[:topHotels]
	}
	return kept, nil
}

func cheapestOffer(offers []hotelPricedOffer) (float64, string) {
	best := 0.0
	currency := ""
	for _, o := range offers {
		price, err := strconv.ParseFloat(o.Price.Total, 64)
		if err != nil || price <= 0 {
			continue
		}
		if best == 0 || price < best {
			best = price
			currency = o.Price.Currency
		}
	}
	return best, currency
}

func parseRating(s string) float64 {
	if s == "" {
		return 0
	}
	r, err := strconv.ParseFloat(s, 64)
	if err != nil || r < 0 {
		return 0
	}
	if r > 5 {
		r = 5
	}
	return r
}
