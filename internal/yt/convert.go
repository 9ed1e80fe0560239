package yt

import (
	"time"

	"google.golang.org/api/youtube/v3"

	"github.com/ytkit/ytmeta/internal/models"
)

// parseTimestamp parses the RFC3339 instants the API emits. Bad or empty
// values map to the zero time rather than failing the whole lookup.
func parseTimestamp(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

func newThumbnailSet(details *youtube.ThumbnailDetails) models.ThumbnailSet {
	if details == nil {
		return models.ThumbnailSet{}
	}
	return models.ThumbnailSet{
		Default:  newThumbnail(details.Default),
		Medium:   newThumbnail(details.Medium),
		High:     newThumbnail(details.High),
		Standard: newThumbnail(details.Standard),
		Maxres:   newThumbnail(details.Maxres),
	}
}

func newThumbnail(t *youtube.Thumbnail) *models.Thumbnail {
	if t == nil {
		return nil
	}
	return &models.Thumbnail{URL: t.Url, Width: t.Width, Height: t.Height}
}
