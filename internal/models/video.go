package models

import (
	"fmt"
	"time"
)

// watchURLTemplate is the public playback URL pattern for a video ID.
const watchURLTemplate = "https://www.youtube.com/watch?v=%s"

// VideoSummary is one entry of a channel's uploads listing.
type VideoSummary struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	PublishedAt  time.Time    `json:"publishedAt"`
	Thumbnails   ThumbnailSet `json:"thumbnails"`
	ChannelID    string       `json:"channelId"`
	ChannelTitle string       `json:"channelTitle"`
	URL          string       `json:"url"`
}

// VideoDetail extends VideoSummary with the fields only a single-video
// lookup returns. Duration is the ISO-8601 string exactly as the API
// serves it.
type VideoDetail struct {
	VideoSummary
	Tags         []string `json:"tags"`
	CategoryID   string   `json:"categoryId"`
	Duration     string   `json:"duration"`
	ViewCount    uint64   `json:"viewCount"`
	LikeCount    uint64   `json:"likeCount"`
	CommentCount uint64   `json:"commentCount"`
}

// WatchURL returns the public playback URL for a video ID. The ID is used
// verbatim, without validation or escaping.
func WatchURL(videoID string) string {
	return fmt.Sprintf(watchURLTemplate, videoID)
}
