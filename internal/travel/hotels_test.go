package travel

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"
)

func TestSearchHotelsFiltersSortsAndCaps(t *testing.T) {
	srv := newAmadeusStub(t, map[string]http.HandlerFunc{
		"/v1/reference-data/locations/hotels/by-city": func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("cityCode") != "BCN" {
				t.Fatalf("unexpected city code: %q", r.URL.Query().Get("cityCode"))
			}
			// 12 hotels listed; only the first 10 may be priced.
			var sb strings.Builder
			sb.WriteString(`{"data":[`)
			for i := 0; i < 12; i++ {
				if i > 0 {
					sb.WriteString(",")
				}
				sb.WriteString(`{"hotelId":"H` + string(rune('A'+i)) + `"}`)
			}
			sb.WriteString(`]}`)
			_, _ = w.Write([]byte(sb.String()))
		},
		"/v3/shopping/hotel-offers": func(w http.ResponseWriter, r *http.Request) {
			ids := strings.Split(r.URL.Query().Get("hotelIds"), ",")
			if len(ids) != 10 {
				t.Fatalf("expected 10 hotel ids, got %d", len(ids))
			}
			_, _ = w.Write([]byte(`{"data":[
				{"hotel":{"name":"Low Rated","rating":"3"},"available":true,
				 "offers":[{"price":{"total":"100.00","currency":"EUR"}}]},
				{"hotel":{"name":"Unrated","rating":""},"available":true,
				 "offers":[{"price":{"total":"500.00","currency":"EUR"}}]},
				{"hotel":{"name":"Five Star Pricey","rating":"5"},"available":true,
				 "offers":[{"price":{"total":"900.00","currency":"EUR"}}]},
				{"hotel":{"name":"Four Star Cheap","rating":"4"},"available":true,
				 "offers":[{"price":{"total":"400.00","currency":"EUR"},"room":{}},
				           {"price":{"total":"380.00","currency":"EUR"}}]},
				{"hotel":{"name":"Sold Out","rating":"5"},"available":false,"offers":[]},
				{"hotel":{"name":"Four Star Mid","rating":"4"},"available":true,
				 "offers":[{"price":{"total":"600.00","currency":"EUR"}}]}
			]}`))
		},
	})
	defer srv.Close()

	c := NewClient("id", "secret", srv.URL, time.Second)
	offers, err := c.SearchHotels(context.Background(), "BCN", testWindow())
	if err != nil {
		t.Fatalf("SearchHotels() error = %v", err)
	}

	if len(offers) != 3 {
		t.Fatalf("expected top 3 hotels, got %d", len(offers))
	}
	for _, o := range offers {
		if o.Name == "Low Rated" {
			t.Fatal("hotels rated below 4 must be filtered out")
		}
		if o.Name == "Sold Out" {
			t.Fatal("unavailable hotels must be filtered out")
		}
	}

	// Ascending nightly price over a 5-night window.
	// Four Star Cheap: 380/5=76, Unrated: 500/5=100, Four Star Mid: 600/5=120.
	wantOrder := []string{"Four Star Cheap", "Unrated", "Four Star Mid"}
	for i, want := range wantOrder {
		if offers[i].Name != want {
			t.Fatalf("position %d = %q, want %q (offers: %+v)", i, offers[i].Name, want, offers)
		}
	}
	if offers[0].Nightly != 76 {
		t.Fatalf("nightly price = %.2f, want 76.00", offers[0].Nightly)
	}
	if offers[0].Total != 380 {
		t.Fatal("cheapest offer per hotel must win")
	}
}

func TestSearchHotelsZeroNightsFallsBackToTotal(t *testing.T) {
	srv := newAmadeusStub(t, map[string]http.HandlerFunc{
		"/v1/reference-data/locations/hotels/by-city": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":[{"hotelId":"H1"}]}`))
		},
		"/v3/shopping/hotel-offers": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":[
				{"hotel":{"name":"Day Use","rating":"4"},"available":true,
				 "offers":[{"price":{"total":"150.00","currency":"EUR"}}]}
			]}`))
		},
	})
	defer srv.Close()

	c := NewClient("id", "secret", srv.URL, time.Second)

	depart := time.Date(2026, time.May, 1, 0, 0, 0, 0, time.UTC)
	sameDay := Window{Depart: depart, Return: depart}

	offers, err := c.SearchHotels(context.Background(), "BCN", sameDay)
	if err != nil {
		t.Fatalf("SearchHotels() error = %v", err)
	}
	if len(offers) != 1 || offers[0].Nightly != 150 {
		t.Fatalf("expected nightly fallback to total, got %+v", offers)
	}
}

func TestSearchHotelsNoHotelsListed(t *testing.T) {
	srv := newAmadeusStub(t, map[string]http.HandlerFunc{
		"/v1/reference-data/locations/hotels/by-city": func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"data":[]}`))
		},
	})
	defer srv.Close()

	c := NewClient("id", "secret", srv.URL, time.Second)
	if _, err := c.SearchHotels(context.Background(), "XXX", testWindow()); err == nil {
		t.Fatal("expected error when no hotels are listed")
	}
}
