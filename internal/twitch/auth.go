package twitch

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"
)

// tokenSafetyMargin is subtracted from the declared lifetime so a token is
// never handed out moments before it expires server-side.
const tokenSafetyMargin = 5 * time.Minute

// TokenSource caches an app-access token obtained via the client-credentials
// exchange and refreshes it when stale. A redundant exchange under contention
// is harmless, the endpoint tolerates it.
type TokenSource struct {
	httpClient   *http.Client
	authURL      string
	clientID     string
	clientSecret string
	logger       *slog.Logger

	mu     sync.Mutex
	token  string
	expiry time.Time
}

func NewTokenSource(authURL, clientID, clientSecret string, timeout time.Duration, logger *slog.Logger) *TokenSource {
	return &TokenSource{
		httpClient:   &http.Client{Timeout: timeout},
		authURL:      authURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		logger:       logger,
	}
}

// Token returns the cached token, exchanging credentials for a fresh one when
// the cache is empty or inside the safety margin. Exchange failures are fatal
// for the calling run.
func (ts *TokenSource) Token(ctx context.Context) (string, error) {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.token != "" && time.Now().Before(ts.expiry.Add(-tokenSafetyMargin)) {
		return ts.token, nil
	}

	if ts.clientID == "" || ts.clientSecret == "" {
		return "", fmt.Errorf("twitch credentials not configured")
	}

	form := url.Values{
		"client_id":     {ts.clientID},
		"client_secret": {ts.clientSecret},
		"grant_type":    {"client_credentials"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, ts.authURL, strings.NewReader(form.Encode()))
	if err != nil {
		return "", fmt.Errorf("create token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := ts.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("token exchange: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token exchange: unexpected status %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("decode token response: %w", err)
	}
	if tr.AccessToken == "" {
		return "", fmt.Errorf("token exchange: empty access token")
	}

	ts.token = tr.AccessToken
	ts.expiry = time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)

	ts.logger.Debug("refreshed app access token", "expires_in", tr.ExpiresIn)

	return ts.token, nil
}
