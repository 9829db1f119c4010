package recommend

import (
	"fmt"

	"Pavement/internal/calc/reference"
	sn "Pavement/internal/calc/sn"
)

// Input names the material of each layer and the drainage quality of the
// unbound layers. An empty material leaves that layer out.
type Input struct {
	Surface  string  `json:"surface"`
	Base     string  `json:"base"`
	Subbase  string  `json:"subbase"`
	Drainage string  `json:"drainage"`
	D1       float64 `json:"d1"`
	D2       float64 `json:"d2"`
	D3       float64 `json:"d3"`
}

type Result struct {
	Layers sn.LayerSet `json:"layers"`
	Result sn.Result   `json:"result"`
	Notes  string      `json:"notes"`
}

// Coefficients picks the midpoint of each reference range and computes SN
// for the given thicknesses.
func Coefficients(in Input) (Result, error) {
	mid := func(r reference.Range) float64 { return (r.Min + r.Max) / 2 }

	coef := func(name string, d float64) (float64, error) {
		if name == "" {
			if d != 0 {
				return 0, fmt.Errorf("thickness %v given for a layer without material", d)
			}
			return 0, nil
		}
		m, err := reference.LookupMaterial(name)
		if err != nil {
			return 0, fmt.Errorf("material %q: %w", name, err)
		}
		return mid(m.Coefficient), nil
	}

	m := 1.0
	if in.Drainage != "" {
		d, err := reference.LookupDrainage(in.Drainage)
		if err != nil {
			return Result{}, fmt.Errorf("drainage %q: %w", in.Drainage, err)
		}
		m = mid(d.Coefficient)
	}

	var l sn.LayerSet
	var err error
	if l.A1, err = coef(in.Surface, in.D1); err != nil {
		return Result{}, err
	}
	if l.A2, err = coef(in.Base, in.D2); err != nil {
		return Result{}, err
	}
	if l.A3, err = coef(in.Subbase, in.D3); err != nil {
		return Result{}, err
	}
	l.D1, l.D2, l.D3 = in.D1, in.D2, in.D3
	l.M2, l.M3 = m, m

	if err := l.CheckRanges(); err != nil {
		return Result{}, err
	}
	res, err := sn.Compute(l)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Layers: l,
		Result: res,
		Notes:  "Coefficients taken at the middle of the AASHTO 1993 typical ranges.",
	}, nil
}
