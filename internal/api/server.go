package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"clip_harvester/internal/domain"
	"clip_harvester/internal/storage/postgres"
)

// ClipReader serves the public clip listing.
type ClipReader interface {
	List(ctx context.Context, f postgres.ClipFilter) ([]domain.Clip, int, error)
}

// StreamerReader lists the tracked channels.
type StreamerReader interface {
	ListActivePage(ctx context.Context, offset, limit int) ([]domain.Streamer, error)
	CountActive(ctx context.Context) (int, error)
}

// RunReader exposes recent collection runs.
type RunReader interface {
	ListRecent(ctx context.Context, limit int) ([]domain.RunLog, error)
}

type Server struct {
	clips     ClipReader
	streamers StreamerReader
	runs      RunReader
	logger    *slog.Logger
}

func NewServer(clips ClipReader, streamers StreamerReader, runs RunReader, logger *slog.Logger) *Server {
	return &Server{
		clips:     clips,
		streamers: streamers,
		runs:      runs,
		logger:    logger,
	}
}

// Router builds the gin engine with all read endpoints registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLog())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/clips", s.getClips)
		api.GET("/streamers", s.getStreamers)
		api.GET("/runs", s.getRuns)
	}

	return r
}

func (s *Server) requestLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start).String(),
		)
	}
}
