package report

import (
	"fmt"
	"io"

	sn "Pavement/internal/calc/sn"

	"github.com/jonboulle/clockwork"
	"github.com/phpdave11/gofpdf"
)

type Input struct {
	Project string      `json:"project"`
	Author  string      `json:"author"`
	Title   string      `json:"title"`
	Notes   string      `json:"notes"`
	Layers  sn.LayerSet `json:"layers"`
}

// Breakdown returns the per-layer working lines printed on the report.
func Breakdown(l sn.LayerSet, res sn.Result) []string {
	return []string{
		fmt.Sprintf("SN1 = a1 x D1 = %.2f x %.1f = %.3f", l.A1, l.D1, res.SN1),
		fmt.Sprintf("SN2 = a2 x D2 x m2 = %.2f x %.1f x %.2f = %.3f", l.A2, l.D2, l.M2, res.SN2),
		fmt.Sprintf("SN3 = a3 x D3 x m3 = %.2f x %.1f x %.2f = %.3f", l.A3, l.D3, l.M3, res.SN3),
		fmt.Sprintf("SN total = %.3f + %.3f + %.3f = %.3f", res.SN1, res.SN2, res.SN3, res.SNTotal),
	}
}

// Thickness formats the total thickness in inches and centimetres.
func Thickness(res sn.Result) string {
	return fmt.Sprintf("Total thickness: %.1f in (%.1f cm)", res.TotalThicknessIn, res.TotalThicknessCm)
}

// Writer renders SN reports; Clock stamps the report date.
type Writer struct {
	Clock clockwork.Clock
}

func NewWriter() *Writer {
	return &Writer{Clock: clockwork.NewRealClock()}
}

func (rw *Writer) Write(w io.Writer, in Input) (sn.Result, error) {
	res, err := sn.Compute(in.Layers)
	if err != nil {
		return sn.Result{}, err
	}
	if in.Title == "" {
		in.Title = "Structural Number Report"
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, in.Title)
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", in.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", in.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", rw.Clock.Now().Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 11)
	for _, h := range []string{"Layer", "a", "D (in)", "m"} {
		pdf.CellFormat(40, 7, h, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 11)
	layerRows := [][]string{
		{"1 Surface", fmt.Sprintf("%.2f", in.Layers.A1), fmt.Sprintf("%.1f", in.Layers.D1), "-"},
		{"2 Base", fmt.Sprintf("%.2f", in.Layers.A2), fmt.Sprintf("%.1f", in.Layers.D2), fmt.Sprintf("%.2f", in.Layers.M2)},
		{"3 Subbase", fmt.Sprintf("%.2f", in.Layers.A3), fmt.Sprintf("%.1f", in.Layers.D3), fmt.Sprintf("%.2f", in.Layers.M3)},
	}
	for _, row := range layerRows {
		for _, c := range row {
			pdf.CellFormat(40, 7, c, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	for _, line := range Breakdown(in.Layers, res) {
		pdf.Cell(0, 6, line)
		pdf.Ln(6)
	}
	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Cell(0, 8, fmt.Sprintf("Structural Number: %.3f", res.SNTotal))
	pdf.Ln(10)
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, Thickness(res))
	pdf.Ln(6)
	pdf.Cell(0, 6, res.Advice)
	pdf.Ln(10)
	if in.Notes != "" {
		pdf.MultiCell(0, 6, in.Notes, "", "L", false)
	}
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 6, "Based on AASHTO Guide for Design of Pavement Structures, 1993")

	if err := pdf.Output(w); err != nil {
		return sn.Result{}, fmt.Errorf("render pdf: %w", err)
	}
	return res, nil
}
