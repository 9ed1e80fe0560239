package yt

import (
	"context"

	"google.golang.org/api/youtube/v3"

	"github.com/ytkit/ytmeta/internal/models"
)

// GetVideoDetails fetches the full metadata record for one video: the
// summary fields plus tags, category, ISO-8601 duration and engagement
// counts. An unknown ID returns a not-found *Error.
func (c *Client) GetVideoDetails(ctx context.Context, videoID string) (*models.VideoDetail, error) {
	if videoID == "" {
		return nil, ErrNoVideoID
	}

	response, err := c.service.Videos.List([]string{"snippet", "contentDetails", "statistics"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, apiErr("videos.list", err)
	}

	if len(response.Items) == 0 {
		return nil, notFound("video")
	}

	return newVideoDetail(response.Items[0]), nil
}

func newVideoDetail(v *youtube.Video) *models.VideoDetail {
	detail := &models.VideoDetail{
		VideoSummary: models.VideoSummary{
			ID:  v.Id,
			URL: models.WatchURL(v.Id),
		},
		Tags: []string{},
	}
	if v.Snippet != nil {
		detail.Title = v.Snippet.Title
		detail.Description = v.Snippet.Description
		detail.PublishedAt = parseTimestamp(v.Snippet.PublishedAt)
		detail.Thumbnails = newThumbnailSet(v.Snippet.Thumbnails)
		detail.ChannelID = v.Snippet.ChannelId
		detail.ChannelTitle = v.Snippet.ChannelTitle
		if len(v.Snippet.Tags) > 0 {
			detail.Tags = v.Snippet.Tags
		}
		detail.CategoryID = v.Snippet.CategoryId
	}
	if v.ContentDetails != nil {
		detail.Duration = v.ContentDetails.Duration
	}
	if v.Statistics != nil {
		detail.ViewCount = v.Statistics.ViewCount
		detail.LikeCount = v.Statistics.LikeCount
		detail.CommentCount = v.Statistics.CommentCount
	}
	return detail
}
