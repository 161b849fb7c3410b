package twitch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clip_harvester/internal/ratelimit"
)

type helixStub struct {
	mux      *http.ServeMux
	srv      *httptest.Server
	requests int
}

func newHelixStub(t *testing.T, clips http.HandlerFunc) *helixStub {
	t.Helper()
	stub := &helixStub{mux: http.NewServeMux()}
	stub.mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"test-token","expires_in":3600,"token_type":"bearer"}`))
	})
	if clips != nil {
		stub.mux.HandleFunc("/helix/clips", func(w http.ResponseWriter, r *http.Request) {
			stub.requests++
			clips(w, r)
		})
	}
	stub.srv = httptest.NewServer(stub.mux)
	t.Cleanup(stub.srv.Close)
	return stub
}

func (s *helixStub) client() *Client {
	return NewClient(Config{
		BaseURL:          s.srv.URL + "/helix",
		AuthURL:          s.srv.URL + "/oauth2/token",
		ClientID:         "test-id",
		ClientSecret:     "test-secret",
		Timeout:          5 * time.Second,
		RateLimitBackoff: 5 * time.Millisecond,
	}, ratelimit.NopGate{}, testLogger())
}

func clipPage(n int, cursor string) clipsResponse {
	resp := clipsResponse{Pagination: Pagination{Cursor: cursor}}
	for i := 0; i < n; i++ {
		resp.Data = append(resp.Data, Clip{
			ID:              fmt.Sprintf("clip-%s-%d", cursor, i),
			BroadcasterID:   "42",
			BroadcasterName: "streamer",
			Title:           "a clip",
			CreatedAt:       time.Now().UTC().Format(time.RFC3339),
		})
	}
	return resp
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func TestFetchClips_TerminatesAtMaxPages(t *testing.T) {
	// Cursor never empties, pages are always full.
	page := 0
	stub := newHelixStub(t, func(w http.ResponseWriter, r *http.Request) {
		page++
		writeJSON(w, clipPage(100, fmt.Sprintf("c%d", page)))
	})

	clips, err := stub.client().FetchClips(context.Background(), "42", time.Now().Add(-24*time.Hour), 3)
	require.NoError(t, err)

	assert.Len(t, clips, 300)
	assert.Equal(t, 3, stub.requests)
}

func TestFetchClips_StopsOnShortPage(t *testing.T) {
	page := 0
	stub := newHelixStub(t, func(w http.ResponseWriter, r *http.Request) {
		page++
		writeJSON(w, clipPage(7, "more"))
	})

	clips, err := stub.client().FetchClips(context.Background(), "42", time.Now().Add(-24*time.Hour), 5)
	require.NoError(t, err)

	assert.Len(t, clips, 7)
	assert.Equal(t, 1, stub.requests)
}

func TestFetchClips_StopsOnEmptyCursor(t *testing.T) {
	stub := newHelixStub(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, clipPage(100, ""))
	})

	clips, err := stub.client().FetchClips(context.Background(), "42", time.Now().Add(-24*time.Hour), 5)
	require.NoError(t, err)

	assert.Len(t, clips, 100)
	assert.Equal(t, 1, stub.requests)
}

func TestFetchClips_RateLimitRetryKeepsPageBudget(t *testing.T) {
	// 429 fires on the request for page 2; the retry must still reach
	// maxPages successful pages.
	attempt := 0
	stub := newHelixStub(t, func(w http.ResponseWriter, r *http.Request) {
		attempt++
		if attempt == 2 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		writeJSON(w, clipPage(100, fmt.Sprintf("c%d", attempt)))
	})

	clips, err := stub.client().FetchClips(context.Background(), "42", time.Now().Add(-24*time.Hour), 3)
	require.NoError(t, err)

	assert.Len(t, clips, 300)
	assert.Equal(t, 4, stub.requests)
}

func TestFetchClips_ErrorReturnsAccumulated(t *testing.T) {
	attempt := 0
	stub := newHelixStub(t, func(w http.ResponseWriter, r *http.Request) {
		attempt++
		if attempt == 2 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		writeJSON(w, clipPage(100, fmt.Sprintf("c%d", attempt)))
	})

	clips, err := stub.client().FetchClips(context.Background(), "42", time.Now().Add(-24*time.Hour), 3)
	require.Error(t, err)
	assert.ErrorContains(t, err, "unexpected status 500")

	// Page 1 survived.
	assert.Len(t, clips, 100)
}

func TestFetchClips_GameFilter(t *testing.T) {
	stub := newHelixStub(t, func(w http.ResponseWriter, r *http.Request) {
		resp := clipsResponse{Data: []Clip{
			{ID: "in-game", GameID: "32982", CreatedAt: time.Now().UTC().Format(time.RFC3339)},
			{ID: "other-game", GameID: "999", CreatedAt: time.Now().UTC().Format(time.RFC3339)},
		}}
		writeJSON(w, resp)
	})

	client := NewClient(Config{
		BaseURL:          stub.srv.URL + "/helix",
		AuthURL:          stub.srv.URL + "/oauth2/token",
		ClientID:         "test-id",
		ClientSecret:     "test-secret",
		Timeout:          5 * time.Second,
		RateLimitBackoff: 5 * time.Millisecond,
		GameID:           "32982",
	}, ratelimit.NopGate{}, testLogger())

	clips, err := client.FetchClips(context.Background(), "42", time.Now().Add(-24*time.Hour), 1)
	require.NoError(t, err)

	require.Len(t, clips, 1)
	assert.Equal(t, "in-game", clips[0].ClipID)
}

func TestFetchClips_SkipsMalformedTimestamps(t *testing.T) {
	stub := newHelixStub(t, func(w http.ResponseWriter, r *http.Request) {
		resp := clipsResponse{Data: []Clip{
			{ID: "good", CreatedAt: time.Now().UTC().Format(time.RFC3339)},
			{ID: "bad", CreatedAt: "not-a-timestamp"},
		}}
		writeJSON(w, resp)
	})

	clips, err := stub.client().FetchClips(context.Background(), "42", time.Now().Add(-24*time.Hour), 1)
	require.NoError(t, err)

	require.Len(t, clips, 1)
	assert.Equal(t, "good", clips[0].ClipID)
}

func TestGetVideoTitles_ChunksRequests(t *testing.T) {
	var perRequest []int
	stub := newHelixStub(t, nil)
	stub.mux.HandleFunc("/helix/videos", func(w http.ResponseWriter, r *http.Request) {
		ids := r.URL.Query()["id"]
		perRequest = append(perRequest, len(ids))
		resp := videosResponse{}
		for _, id := range ids {
			resp.Data = append(resp.Data, Video{ID: id, Title: "video " + id})
		}
		writeJSON(w, resp)
	})

	ids := make([]string, 150)
	for i := range ids {
		ids[i] = fmt.Sprintf("v%d", i)
	}

	titles, err := stub.client().GetVideoTitles(context.Background(), ids)
	require.NoError(t, err)

	assert.Len(t, titles, 150)
	assert.Equal(t, []int{100, 50}, perRequest)
	assert.Equal(t, "video v0", titles["v0"])
}

func TestGetProfileImages_EmptyInput(t *testing.T) {
	stub := newHelixStub(t, nil)

	images, err := stub.client().GetProfileImages(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, images)
}
