package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"clip_harvester/internal/domain"
)

type StreamerStore struct {
	db *sqlx.DB
}

func NewStreamerStore(db *sqlx.DB) *StreamerStore {
	return &StreamerStore{db: db}
}

// ListActivePage returns one page of active streamers ordered by their
// Twitch ID. The stable ordering is what makes offset-based scans resumable.
func (s *StreamerStore) ListActivePage(ctx context.Context, offset, limit int) ([]domain.Streamer, error) {
	query := `
		SELECT id, twitch_id, login, display_name, is_active, last_checked, created_at
		FROM streamers
		WHERE is_active = TRUE
		ORDER BY twitch_id
		LIMIT $1 OFFSET $2`

	var streamers []domain.Streamer
	err := s.db.SelectContext(ctx, &streamers, query, limit, offset)
	return streamers, err
}

// ListStaleActive returns the active streamers checked longest ago,
// never-checked first. Used by the periodic sweep.
func (s *StreamerStore) ListStaleActive(ctx context.Context, limit int) ([]domain.Streamer, error) {
	query := `
		SELECT id, twitch_id, login, display_name, is_active, last_checked, created_at
		FROM streamers
		WHERE is_active = TRUE
		ORDER BY last_checked ASC NULLS FIRST, twitch_id
		LIMIT $1`

	var streamers []domain.Streamer
	err := s.db.SelectContext(ctx, &streamers, query, limit)
	return streamers, err
}

func (s *StreamerStore) CountActive(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM streamers WHERE is_active = TRUE")
	return count, err
}

// TouchLastChecked stamps a streamer as visited regardless of whether any
// clips were found for it.
func (s *StreamerStore) TouchLastChecked(ctx context.Context, twitchID string) error {
	_, err := s.db.ExecContext(ctx,
		"UPDATE streamers SET last_checked = NOW() WHERE twitch_id = $1",
		twitchID,
	)
	return err
}

// ImportBatch bulk-inserts streamers. Existing rows (by twitch_id) get their
// login, display name and active flag refreshed; rows are never deleted.
// Runs against the transaction carried in ctx when one is present.
func (s *StreamerStore) ImportBatch(ctx context.Context, streamers []domain.Streamer) (int, error) {
	if len(streamers) == 0 {
		return 0, nil
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO streamers (twitch_id, login, display_name, is_active) VALUES ")
	args := make([]interface{}, 0, len(streamers)*4)

	for i, st := range streamers {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "($%d, $%d, $%d, $%d)", i*4+1, i*4+2, i*4+3, i*4+4)
		args = append(args, st.TwitchID, st.Login, st.DisplayName, st.IsActive)
	}
	sb.WriteString(`
		ON CONFLICT (twitch_id) DO UPDATE SET
			login = EXCLUDED.login,
			display_name = EXCLUDED.display_name,
			is_active = EXCLUDED.is_active`)

	exec := GetExecutor(ctx, s.db)
	res, err := exec.ExecContext(ctx, sb.String(), args...)
	if err != nil {
		return 0, err
	}

	affected, _ := res.RowsAffected()
	return int(affected), nil
}
