package domain

import "time"

// Platform is the only clip platform the pipeline currently collects from.
const Platform = "twitch"

// ConflictMode selects what persisting a clip does when (platform, clip_id)
// already exists. The historical import wants fresh view counts; the
// lightweight collector only cares about new rows.
type ConflictMode int

const (
	ConflictUpdate ConflictMode = iota
	ConflictIgnore
)

// Streamer is a member of the community whose clips get collected.
// Rows are created once via bulk import and never deleted, only deactivated.
type Streamer struct {
	ID          int64      `db:"id" json:"id"`
	TwitchID    string     `db:"twitch_id" json:"twitch_id"`
	Login       string     `db:"login" json:"login"`
	DisplayName string     `db:"display_name" json:"display_name"`
	IsActive    bool       `db:"is_active" json:"is_active"`
	LastChecked *time.Time `db:"last_checked" json:"last_checked"`
	CreatedAt   time.Time  `db:"created_at" json:"created_at"`
}

// Clip is a validated clip record. Uniqueness is on (platform, clip_id);
// re-fetching the same clip refreshes mutable fields instead of duplicating.
type Clip struct {
	ID              int64     `db:"id" json:"id"`
	Platform        string    `db:"platform" json:"platform"`
	ClipID          string    `db:"clip_id" json:"clip_id"`
	VideoID         *string   `db:"video_id" json:"video_id"`
	StreamerID      string    `db:"streamer_id" json:"streamer_id"`
	StreamerName    string    `db:"streamer_name" json:"streamer_name"`
	Title           string    `db:"title" json:"title"`
	VideoTitle      *string   `db:"video_title" json:"video_title"`
	IsValid         bool      `db:"is_valid" json:"is_valid"`
	ViewCount       int       `db:"view_count" json:"view_count"`
	Duration        float64   `db:"duration" json:"duration"`
	ThumbnailURL    string    `db:"thumbnail_url" json:"thumbnail_url"`
	EmbedURL        string    `db:"embed_url" json:"embed_url"`
	ProfileImageURL *string   `db:"profile_image_url" json:"profile_image_url"`
	ClipCreatedAt   time.Time `db:"clip_created_at" json:"clip_created_at"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
