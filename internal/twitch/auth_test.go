package twitch

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestTokenSource_CachesUntilExpiry(t *testing.T) {
	exchanges := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		exchanges++
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.FormValue("grant_type"))
		assert.Equal(t, "test-id", r.FormValue("client_id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"tok-1","expires_in":3600,"token_type":"bearer"}`))
	}))
	defer srv.Close()

	ts := NewTokenSource(srv.URL, "test-id", "test-secret", 5*time.Second, testLogger())
	ctx := context.Background()

	tok, err := ts.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)

	tok, err = ts.Token(ctx)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", tok)

	assert.Equal(t, 1, exchanges)
}

func TestTokenSource_RefreshesInsideSafetyMargin(t *testing.T) {
	exchanges := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		exchanges++
		w.Header().Set("Content-Type", "application/json")
		// Lifetime shorter than the safety margin, so every call refreshes.
		_, _ = w.Write([]byte(`{"access_token":"tok","expires_in":10,"token_type":"bearer"}`))
	}))
	defer srv.Close()

	ts := NewTokenSource(srv.URL, "test-id", "test-secret", 5*time.Second, testLogger())
	ctx := context.Background()

	_, err := ts.Token(ctx)
	require.NoError(t, err)
	_, err = ts.Token(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, exchanges)
}

func TestTokenSource_MissingCredentials(t *testing.T) {
	ts := NewTokenSource("http://127.0.0.1:0", "", "", 5*time.Second, testLogger())

	_, err := ts.Token(context.Background())
	assert.ErrorContains(t, err, "credentials not configured")
}

func TestTokenSource_ExchangeFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	ts := NewTokenSource(srv.URL, "test-id", "bad-secret", 5*time.Second, testLogger())

	_, err := ts.Token(context.Background())
	assert.ErrorContains(t, err, "unexpected status 403")
}
