package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/instatrip/backend/internal/logging"
)

// Location is a best-effort guess of where the caller is. Detected is false
// when any lookup stage failed and the fallback was substituted.
type Location struct {
	City     string `json:"city"`
	Country  string `json:"country"`
	IATACode string `json:"iata_code"`
	Detected bool   `json:"detected"`
}

// Fallback is returned whenever detection fails at any stage.
var Fallback = Location{City: "Madrid", Country: "España", IATACode: "MAD"}

// cityIATA maps geolocated city names to origin airport codes. Unlisted
// cities get the fallback code but keep their detected name.
var cityIATA = map[string]string{
	"madrid":           "MAD",
	"barcelona":        "BCN",
	"valencia":         "VLC",
	"sevilla":          "SVQ",
	"seville":          "SVQ",
	"málaga":           "AGP",
	"malaga":           "AGP",
	"bilbao":           "BIO",
	"alicante":         "ALC",
	"palma":            "PMI",
	"lisbon":           "LIS",
	"lisboa":           "LIS",
	"london":           "LHR",
	"paris":            "CDG",
	"rome":             "FCO",
	"roma":             "FCO",
	"berlin":           "BER",
	"amsterdam":        "AMS",
	"mexico city":      "MEX",
	"ciudad de méxico": "MEX",
	"buenos aires":     "EZE",
	"bogotá":           "BOG",
	"bogota":           "BOG",
	"lima":             "LIM",
	"santiago":         "SCL",
	"new york":         "JFK",
	"miami":            "MIA",
}

// Locator resolves a caller IP to a city/country/airport guess using public
// geolocation services. It never returns an error: failures produce the
// fallback location.
type Locator struct {
	GeoURL      string
	PublicIPURL string
	HTTPClient  *http.Client
}

// NewLocator constructs a Locator against the public ip-api and ipify
// services.
func NewLocator() *Locator {
	return &Locator{
		GeoURL:      "http://ip-api.com/json",
		PublicIPURL: "https://api.ipify.org?format=json",
		HTTPClient:  &http.Client{Timeout: 5 * time.Second},
	}
}

// Detect maps the caller's IP to a Location. Loopback and private addresses
// are first resolved to the caller's public IP.
func (l *Locator) Detect(ctx context.Context, ip string) Location {
	logger := logging.FromContext(ctx)

	if isLocalAddress(ip) {
		public, err := l.publicIP(ctx)
		if err != nil {
			logger.Warn("public ip lookup failed", "ip", ip, "error", err)
			return Fallback
		}
		ip = public
	}

	loc, err := l.geolocate(ctx, ip)
	if err != nil {
		logger.Warn("geolocation failed", "ip", ip, "error", err)
		return Fallback
	}
	return loc
}

func (l *Locator) publicIP(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.PublicIPURL, nil)
	if err != nil {
		return "", err
	}
	resp, err := l.HTTPClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var parsed struct {
		IP string `json:"ip"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", err
	}
	if parsed.IP == "" {
		return "", fmt.Errorf("empty public ip response")
	}
	return parsed.IP, nil
}

func (l *Locator) geolocate(ctx context.Context, ip string) (Location, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		strings.TrimRight(l.GeoURL, "/")+"/"+ip, nil)
	if err != nil {
		return Location{}, err
	}
	resp, err := l.HTTPClient.Do(req)
	if err != nil {
		return Location{}, err
	}
	defer resp.Body.Close()

	var parsed struct {
		Status  string `json:"status"`
		City    string `json:"city"`
		Country string `json:"country"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Location{}, err
	}
	if parsed.Status != "success" || parsed.City == "" {
		return Location{}, fmt.Errorf("lookup returned status %q", parsed.Status)
	}

	code, ok := cityIATA[strings.ToLower(parsed.City)]
	if !ok {
		code = Fallback.IATACode
	}

	return Location{
		City:     parsed.City,
		Country:  parsed.Country,
		IATACode: code,
		Detected: true,
	}, nil
}

func isLocalAddress(ip string) bool {
	if ip == "" {
		return true
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return true
	}
	return parsed.IsLoopback() || parsed.IsPrivate() || parsed.IsUnspecified()
}
