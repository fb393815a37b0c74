package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config captures the runtime configuration for the InstaTrip backend service.
type Config struct {
	AppPort  int
	LogLevel string

	YTDLPPath    string
	YTDLPTimeout time.Duration

	TranscribeEndpoint string
	TranscribeAPIKey   string

	AnthropicAPIKey string
	AnthropicModel  string

	AmadeusClientID     string
	AmadeusClientSecret string
	AmadeusBaseURL      string
	AmadeusTimeout      time.Duration

	DefaultOriginIATA string
	AllowedOrigins    []string

	AnalyzeRatePerMinute int
	AnalyzeRateBurst     int
}

// Load reads configuration from environment variables, applying sensible defaults
// for local development while allowing overrides through environment variables.
func Load() (Config, error) {
	cfg := Config{
		AppPort:  getInt("INSTATRIP_PORT", 8080),
		LogLevel: getString("INSTATRIP_LOG_LEVEL", "info"),

		YTDLPPath:    getString("INSTATRIP_YTDLP_PATH", "yt-dlp"),
		YTDLPTimeout: getDuration("INSTATRIP_YTDLP_TIMEOUT", 2*time.Minute),

		TranscribeEndpoint: getString("INSTATRIP_TRANSCRIBE_ENDPOINT", "https://api.openai.com/v1/audio/transcriptions"),
		TranscribeAPIKey:   getString("INSTATRIP_TRANSCRIBE_API_KEY", ""),

		AnthropicAPIKey: getString("INSTATRIP_ANTHROPIC_API_KEY", ""),
		AnthropicModel:  getString("INSTATRIP_ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),

		AmadeusClientID:     getString("INSTATRIP_AMADEUS_CLIENT_ID", ""),
		AmadeusClientSecret: getString("INSTATRIP_AMADEUS_CLIENT_SECRET", ""),
		AmadeusBaseURL:      getString("INSTATRIP_AMADEUS_BASE_URL", ""),
		AmadeusTimeout:      getDuration("INSTATRIP_AMADEUS_TIMEOUT", 10*time.Second),

		DefaultOriginIATA: getString("INSTATRIP_DEFAULT_ORIGIN", "MAD"),
		AllowedOrigins:    getList("INSTATRIP_ALLOWED_ORIGINS", []string{"*"}),

		AnalyzeRatePerMinute: getInt("INSTATRIP_ANALYZE_RATE_PER_MINUTE", 6),
		AnalyzeRateBurst:     getInt("INSTATRIP_ANALYZE_RATE_BURST", 3),
	}

	return cfg, nil
}

func getString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return i
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

func getList(key string, fallback []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
