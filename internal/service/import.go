package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"clip_harvester/internal/domain"
)

// Importer loads the streamer population from a JSON export. The import is
// transactional: either the whole file lands or none of it does.
type Importer struct {
	streamers StreamerStore
	tx        TransactionManager
	logger    *slog.Logger
}

func NewImporter(streamers StreamerStore, tx TransactionManager, logger *slog.Logger) *Importer {
	return &Importer{
		streamers: streamers,
		tx:        tx,
		logger:    logger.With("component", "import"),
	}
}

type importEntry struct {
	TwitchID    string `json:"twitch_id"`
	Login       string `json:"login"`
	DisplayName string `json:"display_name"`
	IsActive    *bool  `json:"is_active"`
}

// ImportFile reads a JSON array of streamers and upserts them by twitch_id.
// Entries missing a twitch_id are rejected up front.
func (im *Importer) ImportFile(ctx context.Context, path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("read import file: %w", err)
	}

	var entries []importEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return 0, fmt.Errorf("parse import file: %w", err)
	}
	if len(entries) == 0 {
		return 0, fmt.Errorf("import file contains no streamers")
	}

	streamers := make([]domain.Streamer, 0, len(entries))
	for i, e := range entries {
		if e.TwitchID == "" {
			return 0, fmt.Errorf("entry %d: missing twitch_id", i)
		}
		active := true
		if e.IsActive != nil {
			active = *e.IsActive
		}
		streamers = append(streamers, domain.Streamer{
			TwitchID:    e.TwitchID,
			Login:       e.Login,
			DisplayName: e.DisplayName,
			IsActive:    active,
		})
	}

	var imported int
	err = im.tx.WithTransaction(ctx, func(ctx context.Context) error {
		n, err := im.streamers.ImportBatch(ctx, streamers)
		if err != nil {
			return err
		}
		imported = n
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("import streamers: %w", err)
	}

	im.logger.Info("imported streamers", "file", path, "count", imported)

	return imported, nil
}
