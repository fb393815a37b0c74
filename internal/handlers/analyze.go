package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/instatrip/backend/internal/itinerary"
	"github.com/instatrip/backend/internal/logging"
	"github.com/instatrip/backend/internal/travel"
	"github.com/instatrip/backend/internal/videolink"
)

// AnalyzeHandler runs the full video-to-itinerary pipeline for one request.
type AnalyzeHandler struct {
	Fetcher     MediaFetcher
	Transcriber Transcriber
	Generator   ItineraryGenerator
	Linker      OfferLinker
	Limiter     RateLimiter
}

type analyzeRequest struct {
	VideoURL   string `json:"video_url"`
	OriginIATA string `json:"origin_iata"`
}

type analyzeResponse struct {
	*itinerary.Itinerary
	BookingLinks travel.BookingLinks `json:"booking_links"`
}

// Handle implements POST /api/analyze.
func (h AnalyzeHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := logging.FromContext(ctx)

	if !allowRequest(h.Limiter, r, "analyze") {
		respondJSON(ctx, w, http.StatusTooManyRequests, map[string]string{
			"error": "Demasiadas peticiones, inténtalo de nuevo en unos minutos",
		})
		return
	}

	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid analyze payload", "error", err)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "Cuerpo de la petición inválido"})
		return
	}

	req.VideoURL = strings.TrimSpace(req.VideoURL)
	if req.VideoURL == "" {
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{"error": "URL del video es requerida"})
		return
	}

	ref := videolink.Classify(req.VideoURL)
	if !ref.Recognized() {
		logger.Warn("unrecognized video url", "url", req.VideoURL)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{
			"error": "Por favor, proporciona un link válido de TikTok o Instagram",
		})
		return
	}

	logger.Info("pipeline started", "platform", ref.Platform, "video_id", ref.VideoID)

	fetchCtx, fetchSpan := logging.StartSpan(ctx, "fetch_audio", slog.String("platform", string(ref.Platform)))
	dl, err := h.Fetcher.Fetch(fetchCtx, req.VideoURL)
	fetchSpan.End()
	if err != nil {
		// Deliberately generic: provider internals stay out of the response.
		logger.Warn("media fetch failed", "url", req.VideoURL, "error", err)
		respondJSON(ctx, w, http.StatusBadRequest, map[string]string{
			"error": "No se pudo descargar el video. Verifica que el link sea público.",
		})
		return
	}
	defer dl.Cleanup()

	sttCtx, sttSpan := logging.StartSpan(ctx, "transcribe_audio")
	transcript, err := h.Transcriber.Transcribe(sttCtx, dl.AudioPath)
	sttSpan.End()
	if err != nil {
		// Non-fatal: generation proceeds with the placeholder transcript.
		logger.Warn("transcription failed, continuing with placeholder", "error", err)
		transcript = itinerary.PlaceholderTranscript
	}

	genCtx, genSpan := logging.StartSpan(ctx, "generate_itinerary")
	it, err := h.Generator.Generate(genCtx, transcript, ref)
	genSpan.End()
	if err != nil {
		logger.Error("itinerary generation failed", "error", err)
		respondJSON(ctx, w, http.StatusInternalServerError, map[string]string{
			"error": "No se pudo generar el itinerario",
		})
		return
	}

	linkCtx, linkSpan := logging.StartSpan(ctx, "attach_booking_links")
	links := h.Linker.Attach(linkCtx, it, strings.TrimSpace(req.OriginIATA))
	linkSpan.End()

	respondJSON(ctx, w, http.StatusOK, analyzeResponse{Itinerary: it, BookingLinks: links})
}
