package reference

import (
	"encoding/json"
	"net/http"
)

type Tables struct {
	Materials []Material `json:"materials"`
	Drainage  []Drainage `json:"drainage"`
}

type Handler struct{}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(Tables{Materials: Materials(), Drainage: DrainageQualities()})
}
