package history

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/theirongolddev/dreamcalc/internal/model"
)

// Export file identification.
const (
	AppName       = "DreamCalc"
	ExportVersion = "1.0"
)

// Snapshot returns the export layout of the current log.
func (s *Store) Snapshot() model.Snapshot {
	return model.Snapshot{
		ExportDate: s.now().UTC(),
		App:        AppName,
		Version:    ExportVersion,
		History:    s.List(),
	}
}

// Export serializes the current log as indented JSON.
func (s *Store) Export() ([]byte, error) {
	data, err := json.MarshalIndent(s.Snapshot(), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding export: %w", err)
	}
	return data, nil
}

// Import replaces the log with the first MaxItems records of an exported
// payload and persists it. It returns false and leaves the log unchanged when
// the payload has no "history" array.
func (s *Store) Import(data []byte) bool {
	records, err := decodeSnapshot(data)
	if err != nil {
		s.log.Error().Err(err).Msg("importing history")
		return false
	}
	if len(records) > MaxItems {
		records = records[:MaxItems]
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.records = records
	s.persist()

	s.log.Debug().Int("records", len(records)).Msg("history imported")
	return true
}

func decodeSnapshot(data []byte) ([]model.CalculationRecord, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}

	history, ok := raw["history"]
	if !ok {
		return nil, fmt.Errorf("payload has no history")
	}
	if trimmed := bytes.TrimSpace(history); len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("history is not an array")
	}

	records := []model.CalculationRecord{}
	if err := json.Unmarshal(history, &records); err != nil {
		return nil, fmt.Errorf("decoding history: %w", err)
	}
	return records, nil
}
