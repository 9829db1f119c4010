package batch

import (
	"encoding/json"
	"errors"
	"net/http"

	sn "Pavement/internal/calc/sn"
	"Pavement/internal/log"
	"Pavement/internal/metrics"
)

type Handler struct {
	Metrics *metrics.Metrics
}

func (h *Handler) Calc(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.Metrics.ObserveRejected("batch", "decode")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Calculate(input)
	if err != nil {
		h.Metrics.ObserveRejected("batch", rejectReason(err))
		log.Warnw("batch calculation failed", "items", len(input.Items), "error", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	for _, item := range res.Results {
		h.Metrics.ObserveComputation("batch", string(item.Result.Tier), item.Result.SNTotal)
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Errorw("encode batch result", "error", err)
	}
}

func rejectReason(err error) string {
	var de *sn.DomainError
	switch {
	case errors.As(err, &de):
		return "domain"
	case errors.Is(err, sn.ErrOutOfRange):
		return "range"
	default:
		return "empty"
	}
}
