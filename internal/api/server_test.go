package api

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"

	"clip_harvester/internal/domain"
	"clip_harvester/internal/storage/postgres"
)

type stubClipReader struct {
	lastFilter postgres.ClipFilter
	clips      []domain.Clip
	total      int
	err        error
}

func (s *stubClipReader) List(_ context.Context, f postgres.ClipFilter) ([]domain.Clip, int, error) {
	s.lastFilter = f
	return s.clips, s.total, s.err
}

type stubStreamerReader struct {
	streamers []domain.Streamer
	total     int
	err       error
}

func (s *stubStreamerReader) ListActivePage(_ context.Context, _, _ int) ([]domain.Streamer, error) {
	return s.streamers, s.err
}

func (s *stubStreamerReader) CountActive(_ context.Context) (int, error) {
	return s.total, s.err
}

type stubRunReader struct {
	runs []domain.RunLog
	err  error
}

func (s *stubRunReader) ListRecent(_ context.Context, _ int) ([]domain.RunLog, error) {
	return s.runs, s.err
}

type ServerSuite struct {
	suite.Suite
	clips     *stubClipReader
	streamers *stubStreamerReader
	runs      *stubRunReader
	router    *gin.Engine
}

func (s *ServerSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.clips = &stubClipReader{}
	s.streamers = &stubStreamerReader{}
	s.runs = &stubRunReader{}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	s.router = NewServer(s.clips, s.streamers, s.runs, logger).Router()
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerSuite))
}

func (s *ServerSuite) get(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

type listEnvelope struct {
	Success    bool              `json:"success"`
	Data       []json.RawMessage `json:"data"`
	Pagination struct {
		Total   int  `json:"total"`
		Limit   int  `json:"limit"`
		Offset  int  `json:"offset"`
		HasMore bool `json:"hasMore"`
	} `json:"pagination"`
}

func (s *ServerSuite) decodeList(rec *httptest.ResponseRecorder) listEnvelope {
	var env listEnvelope
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &env))
	return env
}

func (s *ServerSuite) TestGetClips_Defaults() {
	s.clips.clips = []domain.Clip{
		{ClipID: "c1", Title: "chaserp heist", ClipCreatedAt: time.Now()},
	}
	s.clips.total = 1

	rec := s.get("/api/clips")
	s.Equal(http.StatusOK, rec.Code)

	env := s.decodeList(rec)
	s.True(env.Success)
	s.Len(env.Data, 1)
	s.Equal(1, env.Pagination.Total)
	s.Equal(50, env.Pagination.Limit)
	s.Equal(0, env.Pagination.Offset)
	s.False(env.Pagination.HasMore)

	s.Equal("7d", s.clips.lastFilter.Window)
	s.Equal("views", s.clips.lastFilter.Sort)
}

func (s *ServerSuite) TestGetClips_FiltersForwarded() {
	rec := s.get("/api/clips?window=30d&sort=recent&search=heist&streamer=100&limit=10&offset=20")
	s.Equal(http.StatusOK, rec.Code)

	f := s.clips.lastFilter
	s.Equal("30d", f.Window)
	s.Equal("recent", f.Sort)
	s.Equal("heist", f.Search)
	s.Equal("100", f.StreamerID)
	s.Equal(10, f.Limit)
	s.Equal(20, f.Offset)
}

func (s *ServerSuite) TestGetClips_LimitCapped() {
	rec := s.get("/api/clips?limit=9999")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal(500, s.clips.lastFilter.Limit)
}

func (s *ServerSuite) TestGetClips_InvalidWindow() {
	rec := s.get("/api/clips?window=forever")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "invalid window")
}

func (s *ServerSuite) TestGetClips_InvalidSort() {
	rec := s.get("/api/clips?sort=alphabetical")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "invalid sort")
}

func (s *ServerSuite) TestGetClips_HasMore() {
	s.clips.clips = make([]domain.Clip, 50)
	s.clips.total = 120

	env := s.decodeList(s.get("/api/clips"))
	s.True(env.Pagination.HasMore)
	s.Equal(120, env.Pagination.Total)
}

func (s *ServerSuite) TestGetClips_StoreError() {
	s.clips.err = errors.New("connection refused")

	rec := s.get("/api/clips")
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), `"success":false`)
}

func (s *ServerSuite) TestGetStreamers() {
	s.streamers.streamers = []domain.Streamer{{TwitchID: "100", Login: "alice"}}
	s.streamers.total = 1

	rec := s.get("/api/streamers")
	s.Equal(http.StatusOK, rec.Code)

	env := s.decodeList(rec)
	s.True(env.Success)
	s.Len(env.Data, 1)
	s.Equal(1, env.Pagination.Total)
}

func (s *ServerSuite) TestGetRuns() {
	s.runs.runs = []domain.RunLog{{ID: 1, Status: domain.RunCompleted}}

	rec := s.get("/api/runs")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"success":true`)
	s.Contains(rec.Body.String(), domain.RunCompleted)
}

func (s *ServerSuite) TestHealthz() {
	rec := s.get("/healthz")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "ok")
}
