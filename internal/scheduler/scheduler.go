package scheduler

import (
	"context"
	"log/slog"
	"time"

	"clip_harvester/internal/domain"
)

// Sweeper runs one lightweight collection pass.
type Sweeper interface {
	RunSweep(ctx context.Context, size, lookbackDays, maxPagesPerEntity int) (*domain.SweepResult, error)
}

type Config struct {
	Interval          time.Duration
	Size              int
	LookbackDays      int
	MaxPagesPerEntity int
}

// Scheduler triggers the periodic sweep. Sweeps never overlap: each one runs
// to completion before the next tick is consumed.
type Scheduler struct {
	sweeper Sweeper
	cfg     Config
	logger  *slog.Logger
}

func NewScheduler(sweeper Sweeper, cfg Config, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		sweeper: sweeper,
		cfg:     cfg,
		logger:  logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.cfg.Interval)

	s.runSweep(ctx)

	ticker := time.NewTicker(s.cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSweep(ctx)
		}
	}
}

func (s *Scheduler) runSweep(ctx context.Context) {
	sweepCtx, cancel := context.WithTimeout(ctx, s.cfg.Interval)
	defer cancel()

	if _, err := s.sweeper.RunSweep(sweepCtx, s.cfg.Size, s.cfg.LookbackDays, s.cfg.MaxPagesPerEntity); err != nil {
		s.logger.Error("sweep failed", "error", err)
	}
}
