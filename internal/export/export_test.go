package export

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/dreamcalc/internal/model"
)

func testSnapshot() model.Snapshot {
	ts := time.Date(2026, time.January, 15, 10, 30, 0, 0, time.UTC)
	return model.Snapshot{
		ExportDate: ts,
		App:        "DreamCalc",
		Version:    "1.0",
		History: []model.CalculationRecord{
			{
				ID:        "b",
				Timestamp: ts,
				DreamName: "Car",
				Input:     model.PlanInput{TotalCost: 100000, InitialAmount: 20000, MonthlySave: 5000},
				Result:    model.ResultSummary{Months: 16, Years: 1.3, GoalDate: "2027-05-15", TotalSaved: 100000},
			},
			{
				ID:        "a",
				Timestamp: ts.Add(-time.Hour),
				DreamName: "Phone",
				Input:     model.PlanInput{TotalCost: 1000, InitialAmount: 1000, MonthlySave: 100},
				Result:    model.ResultSummary{GoalDate: model.GoalDateReached, TotalSaved: 1000},
			},
		},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", JSON},
		{"", JSON},
		{"YAML", YAML},
		{"yml", YAML},
		{".xlsx", XLSX},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFormat("csv")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWrite_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, JSON, testSnapshot()))

	var raw map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &raw))
	assert.Equal(t, "DreamCalc", raw["app"])
	assert.Equal(t, "1.0", raw["version"])
	assert.Len(t, raw["history"], 2)

	first := raw["history"].([]any)[0].(map[string]any)
	assert.Equal(t, "Car", first["dreamName"])
	assert.Contains(t, first, "calculationData")
	assert.Contains(t, first, "results")
}

func TestWrite_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, YAML, testSnapshot()))

	var got model.Snapshot
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "DreamCalc", got.App)
	require.Len(t, got.History, 2)
	assert.Equal(t, "Car", got.History[0].DreamName)
	assert.Equal(t, 16, got.History[0].Result.Months)
	assert.Contains(t, buf.String(), "dream_name: Car")
}

func TestWrite_XLSX(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, XLSX, testSnapshot()))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SheetName}, f.GetSheetList())

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus one row per record")
	assert.Equal(t, "ID", rows[0][0])
	assert.Equal(t, "Car", rows[1][2])
	assert.Equal(t, "100000", rows[1][3])
	assert.Equal(t, "2027-05-15", rows[1][8])
	assert.Equal(t, model.GoalDateReached, rows[2][8])
}

func TestWrite_XLSXEmpty(t *testing.T) {
	snap := testSnapshot()
	snap.History = nil

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, XLSX, snap))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(SheetName)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := Write(&bytes.Buffer{}, Format("pdf"), testSnapshot())
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
