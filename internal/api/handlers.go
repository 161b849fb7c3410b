package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"clip_harvester/internal/storage/postgres"
)

const (
	defaultLimit = 50
	maxLimit     = 500
)

type pagination struct {
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"hasMore"`
}

func respondList(c *gin.Context, data interface{}, p pagination) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       data,
		"pagination": p,
	})
}

func respondError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   msg,
	})
}

func pageParams(c *gin.Context) (limit, offset int) {
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultLimit)))
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	offset, _ = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (s *Server) getClips(c *gin.Context) {
	limit, offset := pageParams(c)

	window := c.DefaultQuery("window", "7d")
	switch window {
	case "24h", "7d", "30d", "90d", "all":
	default:
		respondError(c, http.StatusBadRequest, "invalid window: "+window)
		return
	}

	sort := c.DefaultQuery("sort", "views")
	switch sort {
	case "views", "recent":
	default:
		respondError(c, http.StatusBadRequest, "invalid sort: "+sort)
		return
	}

	filter := postgres.ClipFilter{
		Window:     window,
		Sort:       sort,
		Search:     c.Query("search"),
		StreamerID: c.Query("streamer"),
		Limit:      limit,
		Offset:     offset,
	}

	clips, total, err := s.clips.List(c.Request.Context(), filter)
	if err != nil {
		s.logger.Error("listing clips", "error", err)
		respondError(c, http.StatusInternalServerError, "failed to list clips")
		return
	}

	respondList(c, clips, pagination{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: offset+len(clips) < total,
	})
}

func (s *Server) getStreamers(c *gin.Context) {
	limit, offset := pageParams(c)

	streamers, err := s.streamers.ListActivePage(c.Request.Context(), offset, limit)
	if err != nil {
		s.logger.Error("listing streamers", "error", err)
		respondError(c, http.StatusInternalServerError, "failed to list streamers")
		return
	}
	total, err := s.streamers.CountActive(c.Request.Context())
	if err != nil {
		s.logger.Error("counting streamers", "error", err)
		respondError(c, http.StatusInternalServerError, "failed to list streamers")
		return
	}

	respondList(c, streamers, pagination{
		Total:   total,
		Limit:   limit,
		Offset:  offset,
		HasMore: offset+len(streamers) < total,
	})
}

func (s *Server) getRuns(c *gin.Context) {
	limit, _ := pageParams(c)
	if limit > 100 {
		limit = 100
	}

	runs, err := s.runs.ListRecent(c.Request.Context(), limit)
	if err != nil {
		s.logger.Error("listing runs", "error", err)
		respondError(c, http.StatusInternalServerError, "failed to list runs")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    runs,
	})
}
