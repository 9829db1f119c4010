package recommend

import (
	"encoding/json"
	"net/http"

	"Pavement/internal/log"
	"Pavement/internal/metrics"
)

type Handler struct {
	Metrics *metrics.Metrics
}

func (h *Handler) Coefficients(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.Metrics.ObserveRejected("recommend", "decode")
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := Coefficients(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	h.Metrics.ObserveComputation("recommend", string(res.Result.Tier), res.Result.SNTotal)
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(res); err != nil {
		log.Errorw("encode recommend result", "error", err)
	}
}
