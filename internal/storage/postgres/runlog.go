package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"clip_harvester/internal/domain"
)

// RunLogStore is the pipeline's run ledger. Writes are best-effort at the
// call site; this store just reports errors like any other.
type RunLogStore struct {
	db *sqlx.DB
}

func NewRunLogStore(db *sqlx.DB) *RunLogStore {
	return &RunLogStore{db: db}
}

func (s *RunLogStore) StartRun(ctx context.Context, trigger string) (int64, error) {
	var id int64
	err := s.db.QueryRowContext(ctx, `
		INSERT INTO run_logs (trigger, status, started_at)
		VALUES ($1, $2, NOW())
		RETURNING id`,
		trigger, domain.RunRunning,
	).Scan(&id)
	return id, err
}

func (s *RunLogStore) FinishRun(ctx context.Context, runID int64, status string, counts domain.RunCounts) error {
	_, err := s.db.ExecContext(ctx, `
		UPDATE run_logs SET
			status = $2,
			checked = $3,
			found = $4,
			new_clips = $5,
			updated = $6,
			finished_at = NOW()
		WHERE id = $1`,
		runID, status, counts.Checked, counts.Found, counts.New, counts.Updated,
	)
	return err
}

func (s *RunLogStore) ListRecent(ctx context.Context, limit int) ([]domain.RunLog, error) {
	query := `
		SELECT id, trigger, status, checked, found, new_clips, updated,
		       started_at, finished_at
		FROM run_logs
		ORDER BY started_at DESC
		LIMIT $1`

	var runs []domain.RunLog
	err := s.db.SelectContext(ctx, &runs, query, limit)
	return runs, err
}
