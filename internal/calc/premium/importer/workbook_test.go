package importer

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sn "Pavement/internal/calc/sn"
	"Pavement/internal/metrics"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, rows [][]string) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		values := make([]any, len(row))
		for j, v := range row {
			values[j] = v
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &values))
	}
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return buf
}

var sampleRows = [][]string{
	Columns,
	{"default", "0.44", "4", "0.14", "6", "1", "0.11", "8", "1"},
	{"no drainage", "0.44", "4", "0.14", "6", "", "0.11", "8"},
	{"surface only", "0.4", "5"},
	{"", "", ""},
	{"bad number", "abc", "4"},
	{"too thick coefficient", "1.4", "4"},
	{"short"},
}

func TestReadWorkbook(t *testing.T) {
	rep, err := ReadWorkbook(buildWorkbook(t, sampleRows))
	require.NoError(t, err)

	require.Equal(t, 3, rep.Count)
	assert.Equal(t, "default", rep.Rows[0].Name)
	assert.Equal(t, 2, rep.Rows[0].Line)
	assert.InDelta(t, 3.48, rep.Rows[0].Result.SNTotal, 1e-9)

	assert.Equal(t, 1.0, rep.Rows[1].Layers.M2)
	assert.Equal(t, 1.0, rep.Rows[1].Layers.M3)
	assert.InDelta(t, 3.48, rep.Rows[1].Result.SNTotal, 1e-9)

	assert.InDelta(t, 2.0, rep.Rows[2].Result.SNTotal, 1e-9)
	assert.Equal(t, sn.TierLight, rep.Rows[2].Result.Tier)

	require.Len(t, rep.Skipped, 3)
	assert.Equal(t, 6, rep.Skipped[0].Line)
	assert.Contains(t, rep.Skipped[0].Reason, "a1")
	assert.Contains(t, rep.Skipped[1].Reason, "out of recommended range")
	assert.Equal(t, 8, rep.Skipped[2].Line)
}

func TestReadWorkbookEmpty(t *testing.T) {
	_, err := ReadWorkbook(buildWorkbook(t, [][]string{Columns}))
	assert.Error(t, err)

	_, err = ReadWorkbook(strings.NewReader("not a workbook"))
	assert.Error(t, err)
}

func TestWriteWorkbook(t *testing.T) {
	res, err := sn.Compute(sn.DefaultLayerSet())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteWorkbook(&buf, []Row{{Line: 2, Name: "default", Layers: sn.DefaultLayerSet(), Result: res}}))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "name", rows[0][0])
	assert.Equal(t, "tier", rows[0][len(rows[0])-1])
	assert.Equal(t, "default", rows[1][0])
	assert.Equal(t, "moderate", rows[1][len(rows[1])-1])
}

func TestHandlerImport(t *testing.T) {
	m, _ := metrics.NewMetricsForTesting()
	h := &Handler{Metrics: m}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("file", "layers.xlsx")
	require.NoError(t, err)
	_, err = part.Write(buildWorkbook(t, sampleRows).Bytes())
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.Import(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var rep Report
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &rep))
	assert.Equal(t, 3, rep.Count)
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ImportSkipped))
}

func TestHandlerImportRequiresFile(t *testing.T) {
	rec := httptest.NewRecorder()
	(&Handler{}).Import(rec, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerExport(t *testing.T) {
	body := `{"items":[{"name":"a","layers":{"a1":0.44,"d1":4,"a2":0.14,"d2":6,"m2":1,"a3":0.11,"d3":8,"m3":1}}]}`
	rec := httptest.NewRecorder()
	(&Handler{}).Export(rec, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), ".xlsx")

	f, err := excelize.OpenReader(rec.Body)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
