package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"Pavement/internal/calc/premium/importer"
	"Pavement/internal/calc/report"
	sn "Pavement/internal/calc/sn"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	def := sn.DefaultLayerSet()
	fs := flag.NewFlagSet("sncalc", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var l sn.LayerSet
	fs.Float64Var(&l.A1, "a1", def.A1, "surface layer coefficient")
	fs.Float64Var(&l.D1, "d1", def.D1, "surface thickness (in)")
	fs.Float64Var(&l.A2, "a2", def.A2, "base layer coefficient")
	fs.Float64Var(&l.D2, "d2", def.D2, "base thickness (in)")
	fs.Float64Var(&l.M2, "m2", def.M2, "base drainage coefficient")
	fs.Float64Var(&l.A3, "a3", def.A3, "subbase layer coefficient")
	fs.Float64Var(&l.D3, "d3", def.D3, "subbase thickness (in)")
	fs.Float64Var(&l.M3, "m3", def.M3, "subbase drainage coefficient")
	xlsx := fs.String("xlsx", "", "compute every row of a workbook instead of the flags")
	asJSON := fs.Bool("json", false, "print JSON")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *xlsx != "" {
		return runWorkbook(*xlsx, *asJSON, stdout, stderr)
	}

	if err := l.CheckRanges(); err != nil {
		fmt.Fprintln(stderr, "sncalc:", err)
		return 1
	}
	res, err := sn.Compute(l)
	if err != nil {
		fmt.Fprintln(stderr, "sncalc:", err)
		return 1
	}
	if *asJSON {
		json.NewEncoder(stdout).Encode(res)
		return 0
	}
	for _, line := range report.Breakdown(l, res) {
		fmt.Fprintln(stdout, line)
	}
	fmt.Fprintln(stdout, report.Thickness(res))
	fmt.Fprintf(stdout, "Tier: %s - %s\n", res.Tier, res.Advice)
	return 0
}

func runWorkbook(path string, asJSON bool, stdout, stderr io.Writer) int {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintln(stderr, "sncalc:", err)
		return 1
	}
	defer f.Close()

	rep, err := importer.ReadWorkbook(f)
	if err != nil {
		fmt.Fprintln(stderr, "sncalc:", err)
		return 1
	}
	if asJSON {
		json.NewEncoder(stdout).Encode(rep)
	} else {
		for _, row := range rep.Rows {
			fmt.Fprintf(stdout, "%-24s SN=%.3f  %.1f in  %s\n", row.Name, row.Result.SNTotal, row.Result.TotalThicknessIn, row.Result.Tier)
		}
		for _, s := range rep.Skipped {
			fmt.Fprintf(stderr, "line %d skipped: %s\n", s.Line, s.Reason)
		}
	}
	if len(rep.Skipped) > 0 {
		return 1
	}
	return 0
}
