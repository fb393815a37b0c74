package app

import (
	"time"

	"github.com/hoangvvo/llm-sdk/sdk-go/anthropic"

	"github.com/instatrip/backend/internal/config"
	"github.com/instatrip/backend/internal/geoip"
	"github.com/instatrip/backend/internal/handlers"
	"github.com/instatrip/backend/internal/itinerary"
	"github.com/instatrip/backend/internal/media"
	"github.com/instatrip/backend/internal/middleware"
	"github.com/instatrip/backend/internal/transcribe"
	"github.com/instatrip/backend/internal/travel"
)

// buildDependencies wires together concrete implementations used by the HTTP handlers.
func buildDependencies(cfg config.Config) handlers.Dependencies {
	model := anthropic.NewAnthropicModel(cfg.AnthropicModel, anthropic.AnthropicModelOptions{
		APIKey: cfg.AnthropicAPIKey,
	})

	amadeus := travel.NewClient(cfg.AmadeusClientID, cfg.AmadeusClientSecret, cfg.AmadeusBaseURL, cfg.AmadeusTimeout)

	return handlers.Dependencies{
		Fetcher:        media.NewFetcher(cfg.YTDLPPath, cfg.YTDLPTimeout),
		Transcriber:    transcribe.NewClient(cfg.TranscribeEndpoint, cfg.TranscribeAPIKey),
		Generator:      itinerary.NewGenerator(model),
		Linker:         travel.NewLinker(amadeus, cfg.DefaultOriginIATA),
		Locator:        geoip.NewLocator(),
		AnalyzeLimiter: middleware.NewIPRateLimiter(cfg.AnalyzeRatePerMinute, time.Minute, cfg.AnalyzeRateBurst, 10*time.Minute),
	}
}
