package handlers

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// RegisterRoutes wires HTTP handlers into the provided router.
func RegisterRoutes(router *httprouter.Router, deps Dependencies) {
	health := HealthHandler{}
	analyze := AnalyzeHandler{
		Fetcher:     deps.Fetcher,
		Transcriber: deps.Transcriber,
		Generator:   deps.Generator,
		Linker:      deps.Linker,
		Limiter:     deps.AnalyzeLimiter,
	}
	location := LocationHandler{Locator: deps.Locator}

	router.HandlerFunc(http.MethodGet, "/api/health", health.Handle)
	router.HandlerFunc(http.MethodPost, "/api/analyze", analyze.Handle)
	router.HandlerFunc(http.MethodGet, "/api/detect-location", location.Handle)
}
