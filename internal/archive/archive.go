// Package archive persists per-run scored snapshots to PostgreSQL so
// past rankings can be compared over time. Runs are keyed by run ID;
// products are stored as scored snapshots only and are never fed back
// into entity resolution.
package archive

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/driftlab/trendfuse/internal/ranking"
)

// ErrRunNotFound is returned when a run ID has no stored run.
var ErrRunNotFound = errors.New("run not found")

// Run describes one completed fusion run.
type Run struct {
	ID            uuid.UUID
	CreatedAt     time.Time
	TotalProducts int
	AvgScore      float64
	TopScore      float64
}

// RunRepository stores completed runs with their scored rows.
type RunRepository interface {
	// SaveRun persists a run and its scored rows atomically.
	SaveRun(ctx context.Context, run *Run, rows []ranking.ScoredRow) error

	// GetRun retrieves a run summary by its ID.
	GetRun(ctx context.Context, id uuid.UUID) (*Run, error)
}

// InMemoryRunRepository is an in-memory implementation of
// RunRepository. Used for testing and development.
type InMemoryRunRepository struct {
	runs map[uuid.UUID]*Run
	rows map[uuid.UUID][]ranking.ScoredRow
}

// NewInMemoryRunRepository creates a new in-memory run repository.
func NewInMemoryRunRepository() *InMemoryRunRepository {
	return &InMemoryRunRepository{
		runs: make(map[uuid.UUID]*Run),
		rows: make(map[uuid.UUID][]ranking.ScoredRow),
	}
}

// SaveRun stores a copy of the run and its rows.
func (r *InMemoryRunRepository) SaveRun(_ context.Context, run *Run, rows []ranking.ScoredRow) error {
	runCopy := *run
	r.runs[run.ID] = &runCopy

	rowsCopy := make([]ranking.ScoredRow, len(rows))
	copy(rowsCopy, rows)
	r.rows[run.ID] = rowsCopy
	return nil
}

// GetRun retrieves a run summary by its ID.
func (r *InMemoryRunRepository) GetRun(_ context.Context, id uuid.UUID) (*Run, error) {
	run, ok := r.runs[id]
	if !ok {
		return nil, ErrRunNotFound
	}
	runCopy := *run
	return &runCopy, nil
}

// Rows returns the stored rows for a run, for test assertions.
func (r *InMemoryRunRepository) Rows(id uuid.UUID) []ranking.ScoredRow {
	return r.rows[id]
}
