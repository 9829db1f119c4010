package batch

import (
	"fmt"

	sn "Pavement/internal/calc/sn"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type Item struct {
	Name   string      `json:"name"`
	Layers sn.LayerSet `json:"layers"`
}

type ItemResult struct {
	Name   string    `json:"name"`
	Result sn.Result `json:"result"`
}

type Input struct {
	Items []Item `json:"items"`
}

// Summary describes the spread of SN totals across a batch.
type Summary struct {
	Count  int             `json:"count"`
	Mean   float64         `json:"mean_sn"`
	StdDev float64         `json:"std_dev_sn"`
	Min    float64         `json:"min_sn"`
	Max    float64         `json:"max_sn"`
	Tiers  map[sn.Tier]int `json:"tiers"`
}

type Result struct {
	Results []ItemResult `json:"results"`
	Summary Summary      `json:"summary"`
}

// Calculate computes every item; the first failing item aborts the batch.
func Calculate(in Input) (Result, error) {
	if len(in.Items) == 0 {
		return Result{}, fmt.Errorf("no items")
	}
	out := Result{Results: make([]ItemResult, 0, len(in.Items))}
	totals := make([]float64, 0, len(in.Items))
	tiers := make(map[sn.Tier]int)
	for i, item := range in.Items {
		if err := item.Layers.CheckRanges(); err != nil {
			return Result{}, fmt.Errorf("item %d (%s): %w", i, item.Name, err)
		}
		res, err := sn.Compute(item.Layers)
		if err != nil {
			return Result{}, fmt.Errorf("item %d (%s): %w", i, item.Name, err)
		}
		out.Results = append(out.Results, ItemResult{Name: item.Name, Result: res})
		totals = append(totals, res.SNTotal)
		tiers[res.Tier]++
	}
	out.Summary = Summarize(totals, tiers)
	return out, nil
}

func Summarize(totals []float64, tiers map[sn.Tier]int) Summary {
	s := Summary{Count: len(totals), Tiers: tiers}
	if len(totals) == 0 {
		return s
	}
	s.Mean = stat.Mean(totals, nil)
	if len(totals) > 1 {
		s.StdDev = stat.StdDev(totals, nil)
	}
	s.Min = floats.Min(totals)
	s.Max = floats.Max(totals)
	return s
}
