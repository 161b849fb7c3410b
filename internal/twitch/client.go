package twitch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"clip_harvester/internal/domain"
	"clip_harvester/internal/ratelimit"
)

const (
	// pageSize is the maximum the Helix clips endpoint returns per page.
	pageSize = 100
	// batchLookupLimit is the Helix cap on IDs per videos/users request.
	batchLookupLimit = 100
)

// Config holds Helix client configuration.
type Config struct {
	BaseURL          string
	AuthURL          string
	ClientID         string
	ClientSecret     string
	Timeout          time.Duration
	PageDelay        time.Duration
	RateLimitBackoff time.Duration
	GameID           string
}

// Client fetches clips, videos and user profiles from the Helix API,
// paced by an injected rate gate.
type Client struct {
	httpClient       *http.Client
	baseURL          string
	clientID         string
	tokens           *TokenSource
	gate             ratelimit.Gate
	rateLimitBackoff time.Duration
	gameID           string
	logger           *slog.Logger
}

func NewClient(cfg Config, gate ratelimit.Gate, logger *slog.Logger) *Client {
	if gate == nil {
		gate = ratelimit.NewIntervalGate(cfg.PageDelay)
	}
	return &Client{
		httpClient:       &http.Client{Timeout: cfg.Timeout},
		baseURL:          cfg.BaseURL,
		clientID:         cfg.ClientID,
		tokens:           NewTokenSource(cfg.AuthURL, cfg.ClientID, cfg.ClientSecret, cfg.Timeout, logger),
		gate:             gate,
		rateLimitBackoff: cfg.RateLimitBackoff,
		gameID:           cfg.GameID,
		logger:           logger.With("component", "twitch"),
	}
}

// EnsureToken performs the credential exchange up front so a bad credential
// fails the run before any streamer is touched.
func (c *Client) EnsureToken(ctx context.Context) error {
	_, err := c.tokens.Token(ctx)
	return err
}

// FetchClips retrieves up to maxPages pages of clips for one broadcaster,
// newest first, created between since and now. A 429 retries the same page
// after a fixed backoff without consuming page budget. Any other failure
// stops the fetch and returns what was accumulated alongside the error.
func (c *Client) FetchClips(ctx context.Context, broadcasterID string, since time.Time, maxPages int) ([]domain.Clip, error) {
	var clips []domain.Clip

	endedAt := time.Now().UTC()
	cursor := ""

	for page := 0; page < maxPages; {
		if err := c.gate.Wait(ctx); err != nil {
			return clips, err
		}

		q := url.Values{
			"broadcaster_id": {broadcasterID},
			"first":          {fmt.Sprintf("%d", pageSize)},
			"started_at":     {since.UTC().Format(time.RFC3339)},
			"ended_at":       {endedAt.Format(time.RFC3339)},
		}
		if cursor != "" {
			q.Set("after", cursor)
		}

		var resp clipsResponse
		status, err := c.get(ctx, "/clips", q, &resp)
		if err != nil {
			return clips, fmt.Errorf("fetch clips page %d: %w", page+1, err)
		}
		if status == http.StatusTooManyRequests {
			c.logger.Warn("rate limited, retrying page",
				"broadcaster_id", broadcasterID,
				"page", page+1,
				"backoff", c.rateLimitBackoff,
			)
			select {
			case <-ctx.Done():
				return clips, ctx.Err()
			case <-time.After(c.rateLimitBackoff):
			}
			continue
		}
		if status != http.StatusOK {
			return clips, fmt.Errorf("fetch clips page %d: unexpected status %d", page+1, status)
		}

		for _, raw := range resp.Data {
			if c.gameID != "" && raw.GameID != c.gameID {
				continue
			}
			clip, err := c.transform(raw)
			if err != nil {
				c.logger.Warn("skipping malformed clip", "clip_id", raw.ID, "error", err)
				continue
			}
			clips = append(clips, clip)
		}

		page++

		c.logger.Debug("fetched clips page",
			"broadcaster_id", broadcasterID,
			"page", page,
			"clips", len(resp.Data),
			"total", len(clips),
		)

		if resp.Pagination.Cursor == "" || len(resp.Data) < pageSize {
			break
		}
		cursor = resp.Pagination.Cursor
	}

	return clips, nil
}

// GetVideoTitles resolves video IDs to titles in batches of at most 100.
func (c *Client) GetVideoTitles(ctx context.Context, ids []string) (map[string]string, error) {
	titles := make(map[string]string, len(ids))

	for _, chunk := range chunkIDs(ids, batchLookupLimit) {
		if err := c.gate.Wait(ctx); err != nil {
			return titles, err
		}

		q := url.Values{"id": chunk}
		var resp videosResponse
		status, err := c.get(ctx, "/videos", q, &resp)
		if err != nil {
			return titles, fmt.Errorf("fetch videos: %w", err)
		}
		if status != http.StatusOK {
			return titles, fmt.Errorf("fetch videos: unexpected status %d", status)
		}

		for _, v := range resp.Data {
			titles[v.ID] = v.Title
		}
	}

	return titles, nil
}

// GetProfileImages resolves user IDs to profile image URLs in batches of at
// most 100.
func (c *Client) GetProfileImages(ctx context.Context, ids []string) (map[string]string, error) {
	images := make(map[string]string, len(ids))

	for _, chunk := range chunkIDs(ids, batchLookupLimit) {
		if err := c.gate.Wait(ctx); err != nil {
			return images, err
		}

		q := url.Values{"id": chunk}
		var resp usersResponse
		status, err := c.get(ctx, "/users", q, &resp)
		if err != nil {
			return images, fmt.Errorf("fetch users: %w", err)
		}
		if status != http.StatusOK {
			return images, fmt.Errorf("fetch users: unexpected status %d", status)
		}

		for _, u := range resp.Data {
			images[u.ID] = u.ProfileImageURL
		}
	}

	return images, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) (int, error) {
	token, err := c.tokens.Token(ctx)
	if err != nil {
		return 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+query.Encode(), nil)
	if err != nil {
		return 0, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Client-Id", c.clientID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}

	return resp.StatusCode, nil
}

func (c *Client) transform(raw Clip) (domain.Clip, error) {
	createdAt, err := time.Parse(time.RFC3339, raw.CreatedAt)
	if err != nil {
		return domain.Clip{}, fmt.Errorf("parse created_at %q: %w", raw.CreatedAt, err)
	}

	clip := domain.Clip{
		Platform:      domain.Platform,
		ClipID:        raw.ID,
		StreamerID:    raw.BroadcasterID,
		StreamerName:  raw.BroadcasterName,
		Title:         raw.Title,
		ViewCount:     raw.ViewCount,
		Duration:      raw.Duration,
		ThumbnailURL:  raw.ThumbnailURL,
		EmbedURL:      raw.EmbedURL,
		ClipCreatedAt: createdAt,
	}
	if raw.VideoID != "" {
		clip.VideoID = &raw.VideoID
	}
	return clip, nil
}

func chunkIDs(ids []string, size int) [][]string {
	if len(ids) == 0 {
		return nil
	}
	var chunks [][]string
	for start := 0; start < len(ids); start += size {
		end := start + size
		if end > len(ids) {
			end = len(ids)
		}
		chunks = append(chunks, ids[start:end])
	}
	return chunks
}
