// Package export serializes ranked display records to the two external
// representations (a JSON results file and a CSV export) and optionally
// mirrors the artifacts to object storage.
package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/driftlab/trendfuse/internal/report"
)

// ErrNoProducts is returned when an export is requested for an empty
// product set. No file is written in that case.
var ErrNoProducts = errors.New("no products to export")

// Results is the JSON results file shape consumed by the dashboard.
type Results struct {
	Timestamp  string                 `json:"timestamp"`
	Products   []report.DisplayRecord `json:"products"`
	TotalCount int                    `json:"total_count"`
}

// WriteJSON writes the ranked display records to a JSON results file.
// The timestamp is serialized in RFC 3339 form. Exporting an empty set
// returns ErrNoProducts and writes nothing.
func WriteJSON(path string, records []report.DisplayRecord, now time.Time) error {
	if len(records) == 0 {
		return ErrNoProducts
	}

	results := Results{
		Timestamp:  now.Format(time.RFC3339),
		Products:   records,
		TotalCount: len(records),
	}

	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode results: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write results file %s: %w", path, err)
	}
	return nil
}
