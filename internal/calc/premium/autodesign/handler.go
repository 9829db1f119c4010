package autodesign

import (
	"encoding/json"
	"net/http"

	"Pavement/internal/log"
	"Pavement/internal/metrics"
)

type Handler struct {
	Metrics *metrics.Metrics
}

func (h *Handler) Surface(w http.ResponseWriter, r *http.Request) {
	var input SurfaceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.Metrics.ObserveRejected("autodesign", "decode")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Surface(input)
	if err != nil {
		log.Warnw("auto design failed", "error", err)
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	h.Metrics.ObserveComputation("autodesign", string(res.Layers.Tier), res.Layers.SNTotal)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Errorw("encode auto design result", "error", err)
	}
}
