// Package export writes history snapshots to files in several formats.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/theirongolddev/dreamcalc/internal/model"
)

// Format is an export file format.
type Format string

// Supported formats.
const (
	JSON Format = "json"
	YAML Format = "yaml"
	XLSX Format = "xlsx"
)

// SheetName is the worksheet holding the history in xlsx exports.
const SheetName = "History"

// ErrUnknownFormat is returned for a format name that is not supported.
var ErrUnknownFormat = errors.New("unknown export format")

// Formats lists the supported formats in display order.
func Formats() []Format {
	return []Format{JSON, YAML, XLSX}
}

// ParseFormat maps a name or file extension ("yml", ".xlsx") to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(s, ".")) {
	case "json", "":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "xlsx":
		return XLSX, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// Extension returns the file extension for f, without the dot.
func (f Format) Extension() string {
	return string(f)
}

// Write encodes snap to w in the given format.
func Write(w io.Writer, f Format, snap model.Snapshot) error {
	switch f {
	case JSON:
		return writeJSON(w, snap)
	case YAML:
		return writeYAML(w, snap)
	case XLSX:
		return writeXLSX(w, snap)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

func writeJSON(w io.Writer, snap model.Snapshot) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, snap model.Snapshot) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(snap); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return nil
}

var sheetHeader = []any{
	"ID", "Timestamp", "Goal", "Total cost", "Initial amount", "Monthly save",
	"Months", "Years", "Goal date", "Total saved",
}

func writeXLSX(w io.Writer, snap model.Snapshot) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	if err := f.SetSheetRow(SheetName, "A1", &sheetHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range snap.History {
		row := []any{
			rec.ID,
			rec.Timestamp.UTC().Format("2006-01-02 15:04:05"),
			rec.DreamName,
			rec.Input.TotalCost,
			rec.Input.InitialAmount,
			rec.Input.MonthlySave,
			rec.Result.Months,
			rec.Result.Years,
			rec.Result.GoalDate,
			rec.Result.TotalSaved,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := f.SetSheetRow(SheetName, cell, &row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
