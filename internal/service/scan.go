package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"clip_harvester/internal/domain"
	"clip_harvester/internal/relevance"
)

// persistBatchSize is how many clips go into a single upsert statement.
const persistBatchSize = 100

// ScanService drives the collection pipeline: page streamers, fetch clips,
// enrich, validate, dedup, persist, record the run.
type ScanService struct {
	source    ClipSource
	streamers StreamerStore
	clips     ClipStore
	runs      RunLogStore
	publisher Publisher
	matcher   *relevance.Matcher
	logger    *slog.Logger
}

func NewScanService(
	source ClipSource,
	streamers StreamerStore,
	clips ClipStore,
	runs RunLogStore,
	publisher Publisher,
	matcher *relevance.Matcher,
	logger *slog.Logger,
) *ScanService {
	return &ScanService{
		source:    source,
		streamers: streamers,
		clips:     clips,
		runs:      runs,
		publisher: publisher,
		matcher:   matcher,
		logger:    logger.With("component", "scan"),
	}
}

// RunBatch processes one page of the active streamer population, starting at
// offset and ordered by Twitch ID. The caller re-invokes with the returned
// NextOffset until Completed; the full population is too large for a single
// invocation's time budget.
func (s *ScanService) RunBatch(ctx context.Context, offset, pageSize, lookbackDays, maxPagesPerEntity int) (*domain.BatchResult, error) {
	start := time.Now()
	s.logger.Info("starting batch scan",
		"offset", offset,
		"page_size", pageSize,
		"lookback_days", lookbackDays,
	)

	runID := s.startRun(ctx, domain.TriggerBatch)

	if err := s.source.EnsureToken(ctx); err != nil {
		s.finishRun(ctx, runID, domain.RunFailed, domain.RunCounts{})
		return nil, fmt.Errorf("twitch auth: %w", err)
	}

	page, err := s.streamers.ListActivePage(ctx, offset, pageSize)
	if err != nil {
		s.finishRun(ctx, runID, domain.RunFailed, domain.RunCounts{})
		return nil, fmt.Errorf("list streamers: %w", err)
	}

	if len(page) == 0 {
		s.finishRun(ctx, runID, domain.RunCompleted, domain.RunCounts{})
		s.logger.Info("scan complete, empty page", "offset", offset)
		return &domain.BatchResult{
			NextOffset: offset,
			Completed:  true,
			Duration:   time.Since(start),
		}, nil
	}

	since := time.Now().AddDate(0, 0, -lookbackDays)
	found, accepted, inserted, updated := s.process(ctx, page, since, maxPagesPerEntity, domain.ConflictUpdate)

	total, err := s.streamers.CountActive(ctx)
	if err != nil {
		s.finishRun(ctx, runID, domain.RunFailed, domain.RunCounts{
			Checked: len(page), Found: found, New: inserted, Updated: updated,
		})
		return nil, fmt.Errorf("count streamers: %w", err)
	}

	s.finishRun(ctx, runID, domain.RunCompleted, domain.RunCounts{
		Checked: len(page), Found: found, New: inserted, Updated: updated,
	})

	// A short page advances by what it actually held, so the tail page
	// reports exactly the population size.
	nextOffset := offset + len(page)
	result := &domain.BatchResult{
		Processed:  len(page),
		Found:      found,
		Accepted:   accepted,
		Persisted:  inserted + updated,
		NextOffset: nextOffset,
		Completed:  nextOffset >= total,
		Duration:   time.Since(start),
	}

	s.logger.Info("batch scan finished",
		"processed", result.Processed,
		"found", result.Found,
		"accepted", result.Accepted,
		"persisted", result.Persisted,
		"next_offset", result.NextOffset,
		"completed", result.Completed,
		"duration", result.Duration,
	)

	return result, nil
}

// RunSweep is the lightweight periodic variant: instead of a resumable
// offset it takes the streamers checked longest ago, trading resumability
// for freshness-fairness.
func (s *ScanService) RunSweep(ctx context.Context, size, lookbackDays, maxPagesPerEntity int) (*domain.SweepResult, error) {
	start := time.Now()

	runID := s.startRun(ctx, domain.TriggerScheduled)

	if err := s.source.EnsureToken(ctx); err != nil {
		s.finishRun(ctx, runID, domain.RunFailed, domain.RunCounts{})
		return nil, fmt.Errorf("twitch auth: %w", err)
	}

	streamers, err := s.streamers.ListStaleActive(ctx, size)
	if err != nil {
		s.finishRun(ctx, runID, domain.RunFailed, domain.RunCounts{})
		return nil, fmt.Errorf("list streamers: %w", err)
	}

	since := time.Now().AddDate(0, 0, -lookbackDays)
	found, accepted, inserted, updated := s.process(ctx, streamers, since, maxPagesPerEntity, domain.ConflictIgnore)

	s.finishRun(ctx, runID, domain.RunCompleted, domain.RunCounts{
		Checked: len(streamers), Found: found, New: inserted, Updated: updated,
	})

	result := &domain.SweepResult{
		Processed: len(streamers),
		Found:     found,
		Accepted:  accepted,
		Persisted: inserted + updated,
		Duration:  time.Since(start),
	}

	s.logger.Info("sweep finished",
		"processed", result.Processed,
		"found", result.Found,
		"accepted", result.Accepted,
		"persisted", result.Persisted,
		"duration", result.Duration,
	)

	return result, nil
}

// process runs the shared pipeline body over a set of streamers. Per-streamer
// and per-batch failures are absorbed; only the counts shrink.
func (s *ScanService) process(ctx context.Context, streamers []domain.Streamer, since time.Time, maxPages int, mode domain.ConflictMode) (found, accepted, inserted, updated int) {
	var items []domain.Clip
	seen := make(map[string]struct{})

	for _, st := range streamers {
		clips, err := s.source.FetchClips(ctx, st.TwitchID, since, maxPages)
		if err != nil {
			// Keep whatever pages came back before the failure.
			s.logger.Warn("clip fetch failed", "streamer", st.Login, "error", err)
		}
		found += len(clips)

		for _, c := range clips {
			if _, dup := seen[c.ClipID]; dup {
				continue
			}
			seen[c.ClipID] = struct{}{}
			items = append(items, c)
		}

		if err := s.streamers.TouchLastChecked(ctx, st.TwitchID); err != nil {
			s.logger.Warn("update last_checked failed", "streamer", st.Login, "error", err)
		}
	}

	items = s.enrich(ctx, items)

	var keep []domain.Clip
	for i := range items {
		videoTitle := ""
		if items[i].VideoTitle != nil {
			videoTitle = *items[i].VideoTitle
		}
		if !s.matcher.IsRelevant(items[i].Title, videoTitle) {
			continue
		}
		items[i].IsValid = true
		keep = append(keep, items[i])
	}
	accepted = len(keep)

	inserted, updated = s.persist(ctx, keep, mode)
	return found, accepted, inserted, updated
}

// enrich resolves source-video titles and profile images in batched lookups.
// Lookup failures degrade to nil fields, records are never dropped here.
func (s *ScanService) enrich(ctx context.Context, items []domain.Clip) []domain.Clip {
	if len(items) == 0 {
		return items
	}

	videoIDs := make([]string, 0)
	seenVideos := make(map[string]struct{})
	streamerIDs := make([]string, 0)
	seenStreamers := make(map[string]struct{})

	for i := range items {
		if items[i].VideoID != nil {
			if _, ok := seenVideos[*items[i].VideoID]; !ok {
				seenVideos[*items[i].VideoID] = struct{}{}
				videoIDs = append(videoIDs, *items[i].VideoID)
			}
		}
		if _, ok := seenStreamers[items[i].StreamerID]; !ok {
			seenStreamers[items[i].StreamerID] = struct{}{}
			streamerIDs = append(streamerIDs, items[i].StreamerID)
		}
	}

	titles := make(map[string]string)
	if len(videoIDs) > 0 {
		var err error
		titles, err = s.source.GetVideoTitles(ctx, videoIDs)
		if err != nil {
			s.logger.Warn("video title lookup failed", "error", err)
		}
	}

	images, err := s.source.GetProfileImages(ctx, streamerIDs)
	if err != nil {
		s.logger.Warn("profile image lookup failed", "error", err)
	}

	for i := range items {
		if items[i].VideoID != nil {
			if title, ok := titles[*items[i].VideoID]; ok && title != "" {
				items[i].VideoTitle = &title
			}
		}
		if image, ok := images[items[i].StreamerID]; ok && image != "" {
			items[i].ProfileImageURL = &image
		}
	}

	return items
}

func (s *ScanService) persist(ctx context.Context, clips []domain.Clip, mode domain.ConflictMode) (inserted, updated int) {
	for start := 0; start < len(clips); start += persistBatchSize {
		end := start + persistBatchSize
		if end > len(clips) {
			end = len(clips)
		}
		batch := clips[start:end]

		ins, upd, err := s.clips.UpsertBatch(ctx, batch, mode)
		if err != nil {
			// One bad batch must not abort the rest.
			s.logger.Error("clip batch write failed",
				"batch_start", start,
				"size", len(batch),
				"error", err,
			)
			continue
		}
		inserted += ins
		updated += upd

		s.publishBatch(ctx, batch)
	}
	return inserted, updated
}

func (s *ScanService) publishBatch(ctx context.Context, clips []domain.Clip) {
	if s.publisher == nil {
		return
	}
	for i := range clips {
		if err := s.publisher.Publish(ctx, &clips[i]); err != nil {
			s.logger.Warn("publish clip failed", "clip_id", clips[i].ClipID, "error", err)
		}
	}
}

// Run ledger writes are observational only and never fail the pipeline.

func (s *ScanService) startRun(ctx context.Context, trigger string) int64 {
	runID, err := s.runs.StartRun(ctx, trigger)
	if err != nil {
		s.logger.Warn("run ledger start failed", "error", err)
		return 0
	}
	return runID
}

func (s *ScanService) finishRun(ctx context.Context, runID int64, status string, counts domain.RunCounts) {
	if runID == 0 {
		return
	}
	if err := s.runs.FinishRun(ctx, runID, status, counts); err != nil {
		s.logger.Warn("run ledger finish failed", "run_id", runID, "error", err)
	}
}
