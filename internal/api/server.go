// Package api exposes the metadata client over HTTP as a small read-only
// JSON API.
package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ytkit/ytmeta/internal/models"
	"github.com/ytkit/ytmeta/internal/yt"
)

// defaultMaxResults bounds a videos listing when the caller does not say.
const defaultMaxResults = 50

// MetadataClient is the slice of the yt client the server needs.
type MetadataClient interface {
	GetChannelInfo(ctx context.Context, ref yt.ChannelRef) (*models.ChannelSummary, error)
	GetAllVideos(ctx context.Context, ref yt.ChannelRef, opts yt.ListOptions) ([]models.VideoSummary, error)
	GetVideoDetails(ctx context.Context, videoID string) (*models.VideoDetail, error)
}

// Server represents the API server
type Server struct {
	router *gin.Engine
	client MetadataClient
}

// NewServer creates a new API server around a metadata client.
func NewServer(client MetadataClient) *Server {
	router := gin.Default()

	// Allow browser clients from local dev hosts.
	router.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:  []string{"GET", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	server := &Server{
		router: router,
		client: client,
	}

	// Setup routes
	server.setupRoutes()

	return server
}

// setupRoutes configures all the routes for the server
func (s *Server) setupRoutes() {
	// Health check
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	// Channel endpoints
	s.router.GET("/channel/id/:id", s.getChannelByID)
	s.router.GET("/channel/username/:username", s.getChannelByUsername)
	s.router.GET("/channel/id/:id/videos", s.getChannelVideos)

	// Video endpoints
	s.router.GET("/video/:id", s.getVideoDetails)
}

// getChannelByID handles requests to get a channel by ID
func (s *Server) getChannelByID(c *gin.Context) {
	channel, err := s.client.GetChannelInfo(c.Request.Context(), yt.ChannelID(c.Param("id")))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, channel)
}

// getChannelByUsername handles requests to get a channel by legacy username
func (s *Server) getChannelByUsername(c *gin.Context) {
	channel, err := s.client.GetChannelInfo(c.Request.Context(), yt.Username(c.Param("username")))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, channel)
}

// getChannelVideos handles requests to list a channel's uploads
func (s *Server) getChannelVideos(c *gin.Context) {
	opts := yt.ListOptions{
		MaxResults: defaultMaxResults,
	}

	if raw := c.Query("maxResults"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "maxResults must be a non-negative integer",
			})
			return
		}
		opts.MaxResults = n
	}

	if raw := c.Query("publishedAfter"); raw != "" {
		after, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "publishedAfter must be an RFC3339 timestamp",
			})
			return
		}
		opts.PublishedAfter = after
	}

	videos, err := s.client.GetAllVideos(c.Request.Context(), yt.ChannelID(c.Param("id")), opts)
	if err != nil {
		abortWithError(c, err)
		return
	}
	if videos == nil {
		videos = []models.VideoSummary{}
	}
	c.JSON(http.StatusOK, videos)
}

// getVideoDetails handles requests to get a single video's metadata
func (s *Server) getVideoDetails(c *gin.Context) {
	video, err := s.client.GetVideoDetails(c.Request.Context(), c.Param("id"))
	if err != nil {
		abortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, video)
}

// abortWithError maps client failures onto HTTP statuses: missing input is
// the caller's fault, not-found passes through, and upstream rejections
// surface as a bad gateway.
func abortWithError(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	var clientErr *yt.Error
	switch {
	case errors.Is(err, yt.ErrNotFound):
		status = http.StatusNotFound
	case errors.As(err, &clientErr):
		status = http.StatusBadGateway
	case errors.Is(err, yt.ErrNoChannelRef), errors.Is(err, yt.ErrNoVideoID):
		status = http.StatusBadRequest
	}

	c.JSON(status, gin.H{
		"error": err.Error(),
	})
}

// Start starts the server on the specified port
func (s *Server) Start(port string) error {
	return s.router.Run(":" + port)
}
