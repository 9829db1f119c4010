package importer

import (
	"encoding/json"
	"net/http"

	"Pavement/internal/calc/premium/batch"
	"Pavement/internal/log"
	"Pavement/internal/metrics"
)

const maxUploadSize = 10 << 20

type Handler struct {
	Metrics *metrics.Metrics
}

func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "File required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	rep, err := ReadWorkbook(file)
	if err != nil {
		log.Warnw("workbook import failed", "error", err)
		http.Error(w, "Invalid file", http.StatusBadRequest)
		return
	}
	for _, row := range rep.Rows {
		h.Metrics.ObserveComputation("import", string(row.Result.Tier), row.Result.SNTotal)
	}
	for range rep.Skipped {
		h.Metrics.ObserveImportSkipped()
	}
	log.Infow("workbook imported", "rows", rep.Count, "skipped", len(rep.Skipped))

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rep); err != nil {
		log.Errorw("encode import report", "error", err)
	}
}

// Export computes a batch and returns it as a workbook download.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	var input batch.Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	res, err := batch.Calculate(input)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	rows := make([]Row, len(res.Results))
	for i, item := range res.Results {
		rows[i] = Row{Line: i + 2, Name: item.Name, Layers: input.Items[i].Layers, Result: item.Result}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename=\"structural-number.xlsx\"")
	if err := WriteWorkbook(w, rows); err != nil {
		log.Errorw("workbook export failed", "error", err)
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}
}
