package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	sn "Pavement/internal/calc/sn"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestRunDefaults(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run(nil, &out, &errOut)

	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "SN total = 1.760 + 0.840 + 0.880 = 3.480")
	assert.Contains(t, out.String(), "18.0 in (45.7 cm)")
	assert.Contains(t, out.String(), "Tier: moderate")
}

func TestRunJSON(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-json", "-d1", "8"}, &out, &errOut)
	require.Equal(t, 0, code)

	var res sn.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.InDelta(t, 5.24, res.SNTotal, 1e-9)
	assert.Equal(t, sn.TierHeavy, res.Tier)
}

func TestRunOutOfRange(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-m2", "3"}, &out, &errOut)

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut.String(), "m2")
}

func TestRunWorkbook(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetSheetRow(sheet, "A1", &[]any{"name", "a1", "d1", "a2", "d2", "m2", "a3", "d3", "m3"}))
	require.NoError(t, f.SetSheetRow(sheet, "A2", &[]any{"route 9", "0.44", "4", "0.14", "6", "1", "0.11", "8", "1"}))
	path := filepath.Join(t.TempDir(), "layers.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	var out, errOut bytes.Buffer
	code := run([]string{"-xlsx", path}, &out, &errOut)

	require.Equal(t, 0, code, errOut.String())
	assert.Contains(t, out.String(), "route 9")
	assert.Contains(t, out.String(), "SN=3.480")
}

func TestRunMissingWorkbook(t *testing.T) {
	var out, errOut bytes.Buffer
	code := run([]string{"-xlsx", filepath.Join(os.TempDir(), "does-not-exist.xlsx")}, &out, &errOut)
	assert.Equal(t, 1, code)
}
