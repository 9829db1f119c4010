package sn

import (
	"encoding/json"
	"errors"
	"net/http"

	"Pavement/internal/log"
	"Pavement/internal/metrics"
)

type Handler struct {
	Metrics *metrics.Metrics
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input LayerSet
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.Metrics.ObserveRejected("api", "decode")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := input.CheckRanges(); err != nil {
		h.Metrics.ObserveRejected("api", "range")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	res, err := Compute(input)
	if err != nil {
		var de *DomainError
		if errors.As(err, &de) {
			h.Metrics.ObserveRejected("api", "domain")
		}
		log.Warnw("sn calculation failed", "error", err)
		http.Error(w, "Calculation error", http.StatusBadRequest)
		return
	}
	h.Metrics.ObserveComputation("api", string(res.Tier), res.SNTotal)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Errorw("encode sn result", "error", err)
	}
}
