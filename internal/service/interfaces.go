package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"clip_harvester/internal/domain"
)

type ClipSource interface {
	EnsureToken(ctx context.Context) error
	FetchClips(ctx context.Context, broadcasterID string, since time.Time, maxPages int) ([]domain.Clip, error)
	GetVideoTitles(ctx context.Context, ids []string) (map[string]string, error)
	GetProfileImages(ctx context.Context, ids []string) (map[string]string, error)
}

type StreamerStore interface {
	ListActivePage(ctx context.Context, offset, limit int) ([]domain.Streamer, error)
	ListStaleActive(ctx context.Context, limit int) ([]domain.Streamer, error)
	CountActive(ctx context.Context) (int, error)
	TouchLastChecked(ctx context.Context, twitchID string) error
	ImportBatch(ctx context.Context, streamers []domain.Streamer) (int, error)
}

type ClipStore interface {
	UpsertBatch(ctx context.Context, clips []domain.Clip, mode domain.ConflictMode) (inserted, updated int, err error)
}

type RunLogStore interface {
	StartRun(ctx context.Context, trigger string) (int64, error)
	FinishRun(ctx context.Context, runID int64, status string, counts domain.RunCounts) error
}

type Publisher interface {
	Publish(ctx context.Context, clip *domain.Clip) error
	Close() error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
