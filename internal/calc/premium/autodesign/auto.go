package autodesign

import (
	"fmt"
	"math"

	sn "Pavement/internal/calc/sn"
)

// SurfaceInput fixes the base and subbase and asks for the surface thickness
// that brings the structure up to TargetSN.
type SurfaceInput struct {
	TargetSN float64 `json:"target_sn"`
	A1       float64 `json:"a1"`
	A2       float64 `json:"a2"`
	D2       float64 `json:"d2"`
	M2       float64 `json:"m2"`
	A3       float64 `json:"a3"`
	D3       float64 `json:"d3"`
	M3       float64 `json:"m3"`
}

type SurfaceResult struct {
	RequiredD1 float64   `json:"required_d1"`
	Layers     sn.Result `json:"layers"`
	OK         bool      `json:"ok"`
	Notes      string    `json:"notes"`
}

// Surface solves a1*D1 = target - SN2 - SN3 for D1. When the lower layers
// already carry the target, D1 is zero.
func Surface(in SurfaceInput) (SurfaceResult, error) {
	if math.IsNaN(in.TargetSN) || math.IsInf(in.TargetSN, 0) || in.TargetSN <= 0 {
		return SurfaceResult{}, fmt.Errorf("invalid target SN %v", in.TargetSN)
	}
	if in.A1 <= 0 {
		return SurfaceResult{}, fmt.Errorf("surface coefficient must be positive")
	}

	lower, err := sn.Compute(sn.LayerSet{A2: in.A2, D2: in.D2, M2: in.M2, A3: in.A3, D3: in.D3, M3: in.M3})
	if err != nil {
		return SurfaceResult{}, err
	}
	d1 := math.Max(0, (in.TargetSN-lower.SNTotal)/in.A1)

	res, err := sn.Compute(sn.LayerSet{
		A1: in.A1, D1: d1,
		A2: in.A2, D2: in.D2, M2: in.M2,
		A3: in.A3, D3: in.D3, M3: in.M3,
	})
	if err != nil {
		return SurfaceResult{}, err
	}

	notes := "Surface thickness sized to reach the target SN."
	if d1 == 0 {
		notes = "Base and subbase already reach the target SN."
	}
	return SurfaceResult{
		RequiredD1: d1,
		Layers:     res,
		OK:         res.SNTotal >= in.TargetSN-1e-9,
		Notes:      notes,
	}, nil
}
