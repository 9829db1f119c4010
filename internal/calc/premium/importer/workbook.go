package importer

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	sn "Pavement/internal/calc/sn"

	"github.com/xuri/excelize/v2"
)

// Columns is the header row expected on the first sheet and written on export.
var Columns = []string{"name", "a1", "d1", "a2", "d2", "m2", "a3", "d3", "m3"}

type Row struct {
	Line   int         `json:"line"`
	Name   string      `json:"name"`
	Result sn.Result   `json:"result"`
	Layers sn.LayerSet `json:"layers"`
}

type Skipped struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

type Report struct {
	Count   int       `json:"count"`
	Rows    []Row     `json:"rows"`
	Skipped []Skipped `json:"skipped,omitempty"`
}

// ReadWorkbook computes SN for every data row of the first sheet. Rows that
// cannot be parsed, fall outside the input ranges or fail to compute are
// listed in Report.Skipped.
func ReadWorkbook(r io.Reader) (Report, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Report{}, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return Report{}, fmt.Errorf("read rows: %w", err)
	}
	if len(rows) < 2 {
		return Report{}, fmt.Errorf("empty sheet")
	}
	return ComputeRows(rows[1:], 2), nil
}

// ComputeRows handles data rows; firstLine is the sheet line of rows[0].
func ComputeRows(rows [][]string, firstLine int) Report {
	var rep Report
	for i, row := range rows {
		line := firstLine + i
		if blank(row) {
			continue
		}
		name, layers, err := parseRow(row)
		if err == nil {
			err = layers.CheckRanges()
		}
		var res sn.Result
		if err == nil {
			res, err = sn.Compute(layers)
		}
		if err != nil {
			rep.Skipped = append(rep.Skipped, Skipped{Line: line, Reason: err.Error()})
			continue
		}
		rep.Rows = append(rep.Rows, Row{Line: line, Name: name, Layers: layers, Result: res})
	}
	rep.Count = len(rep.Rows)
	return rep
}

func parseRow(row []string) (string, sn.LayerSet, error) {
	// name, a1, d1 are required; a missing base or subbase is zero and
	// a blank drainage factor is 1.
	if len(row) < 3 {
		return "", sn.LayerSet{}, fmt.Errorf("expected at least name, a1, d1")
	}
	cell := func(i int, def float64) (float64, error) {
		if i >= len(row) || strings.TrimSpace(row[i]) == "" {
			return def, nil
		}
		v, err := strconv.ParseFloat(strings.TrimSpace(row[i]), 64)
		if err != nil {
			return 0, fmt.Errorf("column %s: %q is not a number", Columns[i], row[i])
		}
		return v, nil
	}

	var l sn.LayerSet
	targets := []struct {
		dst *float64
		def float64
	}{
		{&l.A1, 0}, {&l.D1, 0},
		{&l.A2, 0}, {&l.D2, 0}, {&l.M2, 1},
		{&l.A3, 0}, {&l.D3, 0}, {&l.M3, 1},
	}
	for i, t := range targets {
		v, err := cell(i+1, t.def)
		if err != nil {
			return "", sn.LayerSet{}, err
		}
		*t.dst = v
	}
	return strings.TrimSpace(row[0]), l, nil
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

var resultColumns = []string{"sn1", "sn2", "sn3", "sn_total", "thickness_in", "thickness_cm", "tier"}

// WriteWorkbook writes inputs and results, one row per layer set.
func WriteWorkbook(w io.Writer, rows []Row) error {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	header := make([]any, 0, len(Columns)+len(resultColumns))
	for _, c := range append(append([]string(nil), Columns...), resultColumns...) {
		header = append(header, c)
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	for i, r := range rows {
		l, res := r.Layers, r.Result
		values := []any{
			r.Name, l.A1, l.D1, l.A2, l.D2, l.M2, l.A3, l.D3, l.M3,
			res.SN1, res.SN2, res.SN3, res.SNTotal, res.TotalThicknessIn, res.TotalThicknessCm, string(res.Tier),
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return f.Write(w)
}
