package handlers

import (
	"net/http"
)

// LocationHandler guesses the caller's city and origin airport.
type LocationHandler struct {
	Locator LocationDetector
}

// Handle implements GET /api/detect-location. Detection never fails: the
// worst case is the fallback location with detected=false, still a 200.
func (h LocationHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	loc := h.Locator.Detect(ctx, clientIP(r))
	respondJSON(ctx, w, http.StatusOK, loc)
}
