// Package reference lists AASHTO 1993 guidance ranges for layer and drainage
// coefficients. The values are advisory; the SN engine never reads them.
package reference

import (
	"errors"
	"strings"
)

var ErrNotFound = errors.New("reference entry not found")

// Range is an inclusive [Min, Max] coefficient range.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

type Material struct {
	Name        string `json:"name"`
	Layer       string `json:"layer"` // surface, base or subbase
	Coefficient Range  `json:"coefficient"`
}

type Drainage struct {
	Quality     string `json:"quality"`
	Coefficient Range  `json:"coefficient"`
}

var materials = []Material{
	{"Asphalt Concrete", "surface", Range{0.35, 0.44}},
	{"Crushed Stone Base", "base", Range{0.10, 0.14}},
	{"Cement Treated Base", "base", Range{0.15, 0.30}},
	{"Granular Subbase", "subbase", Range{0.08, 0.14}},
	{"Sand-Gravel", "subbase", Range{0.05, 0.10}},
}

var drainage = []Drainage{
	{"excellent", Range{1.20, 1.35}},
	{"good", Range{1.00, 1.20}},
	{"fair", Range{0.80, 1.00}},
	{"poor", Range{0.60, 0.80}},
	{"very poor", Range{0.40, 0.60}},
}

// Materials returns a copy of the layer coefficient table.
func Materials() []Material {
	return append([]Material(nil), materials...)
}

// DrainageQualities returns a copy of the drainage table, best quality first.
func DrainageQualities() []Drainage {
	return append([]Drainage(nil), drainage...)
}

func LookupMaterial(name string) (Material, error) {
	for _, m := range materials {
		if strings.EqualFold(m.Name, strings.TrimSpace(name)) {
			return m, nil
		}
	}
	return Material{}, ErrNotFound
}

func LookupDrainage(quality string) (Drainage, error) {
	for _, d := range drainage {
		if strings.EqualFold(d.Quality, strings.TrimSpace(quality)) {
			return d, nil
		}
	}
	return Drainage{}, ErrNotFound
}
