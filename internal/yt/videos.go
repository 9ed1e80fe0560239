package yt

import (
	"context"
	"fmt"
	"time"

	"google.golang.org/api/youtube/v3"

	"github.com/ytkit/ytmeta/internal/models"
)

// maxPageSize is the largest page the playlistItems endpoint serves.
const maxPageSize = 50

// ListOptions bounds and filters an uploads listing.
type ListOptions struct {
	// MaxResults caps the number of returned videos. 0 means no limit.
	MaxResults int64

	// PublishedAfter drops videos published strictly before the given
	// instant. The zero time disables the filter. Items are filtered after
	// each page is fetched and do not count toward MaxResults, so a bounded
	// listing may walk extra pages to fill the cap.
	PublishedAfter time.Time
}

// GetAllVideos walks the channel's uploads playlist and returns up to
// opts.MaxResults summaries in the order the API serves them (newest
// upload first). The channel is resolved through GetChannelInfo first, so a
// username ref behaves exactly like an ID ref.
func (c *Client) GetAllVideos(ctx context.Context, ref ChannelRef, opts ListOptions) ([]models.VideoSummary, error) {
	if err := ref.validate(); err != nil {
		return nil, err
	}

	channel, err := c.GetChannelInfo(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("yt: resolve channel: %w", err)
	}
	if channel.UploadsPlaylist == "" {
		return nil, notFound("uploads playlist")
	}

	var videos []models.VideoSummary
	var nextPageToken string

	for {
		if opts.MaxResults > 0 && int64(len(videos)) >= opts.MaxResults {
			break
		}

		size := int64(maxPageSize)
		if opts.MaxResults > 0 {
			if remaining := opts.MaxResults - int64(len(videos)); remaining < size {
				size = remaining
			}
		}

		call := c.service.PlaylistItems.List([]string{"snippet", "contentDetails"}).
			PlaylistId(channel.UploadsPlaylist).
			MaxResults(size).
			Context(ctx)
		if nextPageToken != "" {
			call = call.PageToken(nextPageToken)
		}

		response, err := call.Do()
		if err != nil {
			return nil, apiErr("playlistItems.list", err)
		}

		for _, item := range response.Items {
			if item == nil || item.Snippet == nil {
				continue
			}
			if !opts.PublishedAfter.IsZero() {
				if parseTimestamp(item.Snippet.PublishedAt).Before(opts.PublishedAfter) {
					continue
				}
			}
			videos = append(videos, newVideoSummary(item))
		}

		nextPageToken = response.NextPageToken
		if nextPageToken == "" {
			break
		}
	}

	return videos, nil
}

// newVideoSummary maps one playlist item onto a listing entry. The video ID
// comes from contentDetails; the snippet describes the upload.
func newVideoSummary(item *youtube.PlaylistItem) models.VideoSummary {
	summary := models.VideoSummary{
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		PublishedAt:  parseTimestamp(item.Snippet.PublishedAt),
		Thumbnails:   newThumbnailSet(item.Snippet.Thumbnails),
		ChannelID:    item.Snippet.ChannelId,
		ChannelTitle: item.Snippet.ChannelTitle,
	}
	if item.ContentDetails != nil {
		summary.ID = item.ContentDetails.VideoId
	}
	summary.URL = models.WatchURL(summary.ID)
	return summary
}
