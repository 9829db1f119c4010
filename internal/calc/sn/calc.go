package sn

import (
	"errors"
	"fmt"
	"math"
)

// CmPerInch converts total thickness for display.
const CmPerInch = 2.54

var ErrOutOfRange = errors.New("value out of recommended range")

// LayerSet holds the parameters of a three-layer flexible pavement.
// A missing layer is expressed with zero thickness, never by omission.
type LayerSet struct {
	A1 float64 `json:"a1"` // surface coefficient
	D1 float64 `json:"d1"` // surface thickness, in
	A2 float64 `json:"a2"`
	D2 float64 `json:"d2"`
	M2 float64 `json:"m2"`
	A3 float64 `json:"a3"`
	D3 float64 `json:"d3"`
	M3 float64 `json:"m3"`
}

type Result struct {
	SN1              float64 `json:"sn1"`
	SN2              float64 `json:"sn2"`
	SN3              float64 `json:"sn3"`
	SNTotal          float64 `json:"sn_total"`
	TotalThicknessIn float64 `json:"total_thickness_in"`
	TotalThicknessCm float64 `json:"total_thickness_cm"`
	Tier             Tier    `json:"tier"`
	Advice           string  `json:"advice"`
}

// DomainError reports a non-finite input field, or a derived value that
// overflowed.
type DomainError struct {
	Field string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("sn: %s is not a finite number (%v)", e.Field, e.Value)
}

// DefaultLayerSet returns typical AC over crushed stone over granular subbase.
func DefaultLayerSet() LayerSet {
	return LayerSet{
		A1: 0.44, D1: 4.0,
		A2: 0.14, D2: 6.0, M2: 1.0,
		A3: 0.11, D3: 8.0, M3: 1.0,
	}
}

func (l LayerSet) fields() []struct {
	name string
	v    float64
} {
	return []struct {
		name string
		v    float64
	}{
		{"a1", l.A1}, {"d1", l.D1},
		{"a2", l.A2}, {"d2", l.D2}, {"m2", l.M2},
		{"a3", l.A3}, {"d3", l.D3}, {"m3", l.M3},
	}
}

// Compute evaluates SN = a1*D1 + a2*D2*m2 + a3*D3*m3 and classifies the total.
// Finite values outside the recommended ranges are computed as given.
func Compute(l LayerSet) (Result, error) {
	for _, f := range l.fields() {
		if math.IsNaN(f.v) || math.IsInf(f.v, 0) {
			return Result{}, &DomainError{Field: f.name, Value: f.v}
		}
	}

	sn1 := l.A1 * l.D1
	sn2 := l.A2 * l.D2 * l.M2
	sn3 := l.A3 * l.D3 * l.M3
	total := sn1 + sn2 + sn3
	thickness := l.D1 + l.D2 + l.D3
	// Large finite inputs can still overflow.
	for _, d := range []struct {
		name string
		v    float64
	}{{"sn1", sn1}, {"sn2", sn2}, {"sn3", sn3}, {"sn_total", total}, {"total_thickness_in", thickness}} {
		if math.IsNaN(d.v) || math.IsInf(d.v, 0) {
			return Result{}, &DomainError{Field: d.name, Value: d.v}
		}
	}
	tier := Classify(total)

	return Result{
		SN1:              sn1,
		SN2:              sn2,
		SN3:              sn3,
		SNTotal:          total,
		TotalThicknessIn: thickness,
		TotalThicknessCm: thickness * CmPerInch,
		Tier:             tier,
		Advice:           tier.Advice(),
	}, nil
}

// CheckRanges applies the calculator's input limits: a in [0,1], D >= 0, m in [0,2].
// Compute does not call it.
func (l LayerSet) CheckRanges() error {
	for _, f := range l.fields() {
		lo, hi := 0.0, math.Inf(1)
		switch f.name[0] {
		case 'a':
			hi = 1
		case 'm':
			hi = 2
		}
		if !(f.v >= lo && f.v <= hi) {
			return fmt.Errorf("%s=%v: %w", f.name, f.v, ErrOutOfRange)
		}
	}
	return nil
}
