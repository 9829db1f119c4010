package report

import (
	"bytes"
	"encoding/json"
	"net/http"

	"Pavement/internal/log"
	"Pavement/internal/metrics"
)

type Handler struct {
	Writer  *Writer
	Metrics *metrics.Metrics
}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if err := input.Layers.CheckRanges(); err != nil {
		h.Metrics.ObserveRejected("report", "range")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rw := h.Writer
	if rw == nil {
		rw = NewWriter()
	}

	var buf bytes.Buffer
	res, err := rw.Write(&buf, input)
	if err != nil {
		log.Errorw("report generation failed", "project", input.Project, "error", err)
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
	h.Metrics.ObserveComputation("report", string(res.Tier), res.SNTotal)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"sn-report.pdf\"")
	w.Write(buf.Bytes())
}
