package handlers

import (
	"context"

	"github.com/instatrip/backend/internal/geoip"
	"github.com/instatrip/backend/internal/itinerary"
	"github.com/instatrip/backend/internal/media"
	"github.com/instatrip/backend/internal/travel"
	"github.com/instatrip/backend/internal/videolink"
)

// MediaFetcher downloads a video's audio track to a temporary file.
type MediaFetcher interface {
	Fetch(ctx context.Context, url string) (media.Download, error)
}

// Transcriber turns an audio file into transcript text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

// ItineraryGenerator produces an itinerary from a transcript.
type ItineraryGenerator interface {
	Generate(ctx context.Context, transcript string, ref videolink.Reference) (*itinerary.Itinerary, error)
}

// OfferLinker enriches an itinerary with offers and booking deep links.
// It never fails; provider outages degrade to search links.
type OfferLinker interface {
	Attach(ctx context.Context, it *itinerary.Itinerary, origin string) travel.BookingLinks
}

// LocationDetector guesses the caller's city and origin airport from an IP.
type LocationDetector interface {
	Detect(ctx context.Context, ip string) geoip.Location
}

// Dependencies aggregates collaborators required by HTTP handlers.
type Dependencies struct {
	Fetcher        MediaFetcher
	Transcriber    Transcriber
	Generator      ItineraryGenerator
	Linker         OfferLinker
	Locator        LocationDetector
	AnalyzeLimiter RateLimiter
}
