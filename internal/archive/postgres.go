package archive

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/driftlab/trendfuse/internal/ranking"
)

// PostgresRunRepository implements RunRepository using PostgreSQL with
// full transaction support.
type PostgresRunRepository struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewPostgresRunRepository creates a new PostgresRunRepository.
func NewPostgresRunRepository(db *sql.DB, logger *slog.Logger) *PostgresRunRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &PostgresRunRepository{
		db:     db,
		logger: logger,
	}
}

// SaveRun persists a run and its scored rows in a single transaction.
// The run and all of its product snapshots land together or not at all.
func (r *PostgresRunRepository) SaveRun(ctx context.Context, run *Run, rows []ranking.ScoredRow) error {
	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{
		Isolation: sql.LevelReadCommitted,
	})
	if err != nil {
		r.logger.Error("failed to begin transaction",
			slog.String("error", err.Error()),
			slog.String("run_id", run.ID.String()))
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	// Always attempt rollback on function exit (no-op after successful commit)
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			r.logger.Warn("failed to rollback transaction",
				slog.String("error", err.Error()))
		}
	}()

	insertRun := `
		INSERT INTO fusion_runs (id, created_at, total_products, avg_score, top_score)
		VALUES ($1, $2, $3, $4, $5)
	`
	if _, err := tx.ExecContext(ctx, insertRun,
		run.ID, run.CreatedAt, run.TotalProducts, run.AvgScore, run.TopScore); err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	insertProduct := `
		INSERT INTO fusion_run_products (
			run_id, rank, product_id, name, composite_score,
			trend_score, velocity_score, popularity_score, virality_score, competition_score,
			data_sources
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`
	for i, row := range rows {
		p := row.Product
		sources := sourceFlags(p.HasTrendData, p.HasAliData, p.HasAmzData, p.HasTikTokData)
		if _, err := tx.ExecContext(ctx, insertProduct,
			run.ID, i+1, p.ID, p.Name, row.CompositeScore,
			row.TrendScore, row.VelocityScore, row.PopularityScore, row.ViralityScore, row.CompetitionScore,
			pq.Array(sources)); err != nil {
			return fmt.Errorf("failed to insert run product %s: %w", p.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("failed to commit run",
			slog.String("error", err.Error()),
			slog.String("run_id", run.ID.String()))
		return fmt.Errorf("failed to commit run: %w", err)
	}

	r.logger.Info("archived run",
		slog.String("run_id", run.ID.String()),
		slog.Int("products", len(rows)))
	return nil
}

// GetRun retrieves a run summary by its ID.
func (r *PostgresRunRepository) GetRun(ctx context.Context, id uuid.UUID) (*Run, error) {
	query := `
		SELECT id, created_at, total_products, avg_score, top_score
		FROM fusion_runs
		WHERE id = $1
	`
	run := &Run{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&run.ID, &run.CreatedAt, &run.TotalProducts, &run.AvgScore, &run.TopScore)
	if err == sql.ErrNoRows {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query run: %w", err)
	}
	return run, nil
}

// sourceFlags renders presence flags as the source attribution keys
// stored alongside each snapshot.
func sourceFlags(trend, ali, amz, tiktok bool) []string {
	var sources []string
	if trend {
		sources = append(sources, "trends")
	}
	if ali {
		sources = append(sources, "aliexpress")
	}
	if amz {
		sources = append(sources, "amazon")
	}
	if tiktok {
		sources = append(sources, "tiktok")
	}
	return sources
}
