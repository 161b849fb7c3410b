package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"clip_harvester/internal/domain"
)

type ClipStore struct {
	db *sqlx.DB
}

func NewClipStore(db *sqlx.DB) *ClipStore {
	return &ClipStore{db: db}
}

// UpsertBatch writes one batch of clips. Returns how many rows were newly
// inserted and how many were updated in place. With ConflictIgnore the
// updated count is always zero.
func (s *ClipStore) UpsertBatch(ctx context.Context, clips []domain.Clip, mode domain.ConflictMode) (inserted, updated int, err error) {
	if len(clips) == 0 {
		return 0, 0, nil
	}

	const cols = 14
	var sb strings.Builder
	sb.WriteString(`INSERT INTO clips (
		platform, clip_id, video_id, streamer_id, streamer_name, title,
		video_title, is_valid, view_count, duration, thumbnail_url, embed_url,
		profile_image_url, clip_created_at
	) VALUES `)
	args := make([]interface{}, 0, len(clips)*cols)

	for i, c := range clips {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("(")
		for j := 0; j < cols; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "$%d", i*cols+j+1)
		}
		sb.WriteString(")")
		args = append(args,
			c.Platform, c.ClipID, c.VideoID, c.StreamerID, c.StreamerName,
			c.Title, c.VideoTitle, c.IsValid, c.ViewCount, c.Duration,
			c.ThumbnailURL, c.EmbedURL, c.ProfileImageURL, c.ClipCreatedAt,
		)
	}

	switch mode {
	case domain.ConflictIgnore:
		sb.WriteString(" ON CONFLICT (platform, clip_id) DO NOTHING RETURNING TRUE")
	default:
		sb.WriteString(`
			ON CONFLICT (platform, clip_id) DO UPDATE SET
				title = EXCLUDED.title,
				video_title = EXCLUDED.video_title,
				view_count = EXCLUDED.view_count,
				thumbnail_url = EXCLUDED.thumbnail_url,
				profile_image_url = EXCLUDED.profile_image_url,
				updated_at = NOW()
			RETURNING (xmax = 0)`)
	}

	rows, err := s.db.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return 0, 0, err
	}
	defer rows.Close()

	for rows.Next() {
		var isInsert bool
		if err := rows.Scan(&isInsert); err != nil {
			return inserted, updated, err
		}
		if isInsert {
			inserted++
		} else {
			updated++
		}
	}

	return inserted, updated, rows.Err()
}

// ClipFilter is the read-side query surface.
type ClipFilter struct {
	Window     string // 24h, 7d, 30d, 90d, all
	Sort       string // views, recent
	Search     string
	StreamerID string
	Limit      int
	Offset     int
}

func (f ClipFilter) cutoff(now time.Time) (time.Time, bool) {
	switch f.Window {
	case "24h":
		return now.Add(-24 * time.Hour), true
	case "7d":
		return now.AddDate(0, 0, -7), true
	case "30d":
		return now.AddDate(0, 0, -30), true
	case "90d":
		return now.AddDate(0, 0, -90), true
	default:
		return time.Time{}, false
	}
}

// List returns one page of valid clips matching the filter plus the total
// match count for pagination.
func (s *ClipStore) List(ctx context.Context, f ClipFilter) ([]domain.Clip, int, error) {
	where := []string{"is_valid = TRUE"}
	var args []interface{}

	if cutoff, ok := f.cutoff(time.Now()); ok {
		args = append(args, cutoff)
		where = append(where, fmt.Sprintf("clip_created_at >= $%d", len(args)))
	}
	if f.Search != "" {
		args = append(args, "%"+f.Search+"%")
		where = append(where, fmt.Sprintf("title ILIKE $%d", len(args)))
	}
	if f.StreamerID != "" {
		args = append(args, f.StreamerID)
		where = append(where, fmt.Sprintf("streamer_id = $%d", len(args)))
	}
	whereClause := strings.Join(where, " AND ")

	var total int
	countQuery := "SELECT COUNT(*) FROM clips WHERE " + whereClause
	if err := s.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, err
	}

	orderBy := "clip_created_at DESC"
	if f.Sort == "views" {
		orderBy = "view_count DESC, clip_created_at DESC"
	}

	args = append(args, f.Limit, f.Offset)
	query := fmt.Sprintf(`
		SELECT id, platform, clip_id, video_id, streamer_id, streamer_name,
		       title, video_title, is_valid, view_count, duration,
		       thumbnail_url, embed_url, profile_image_url, clip_created_at,
		       created_at, updated_at
		FROM clips
		WHERE %s
		ORDER BY %s
		LIMIT $%d OFFSET $%d`,
		whereClause, orderBy, len(args)-1, len(args))

	var clips []domain.Clip
	if err := s.db.SelectContext(ctx, &clips, query, args...); err != nil {
		return nil, 0, err
	}

	return clips, total, nil
}
