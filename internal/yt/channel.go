package yt

import (
	"context"

	"google.golang.org/api/youtube/v3"

	"github.com/ytkit/ytmeta/internal/models"
)

// GetChannelInfo fetches a channel's profile, statistics and uploads
// playlist ID. The ref must carry a channel ID or a username; a lookup that
// matches no channel returns a not-found *Error.
func (c *Client) GetChannelInfo(ctx context.Context, ref ChannelRef) (*models.ChannelSummary, error) {
	if err := ref.validate(); err != nil {
		return nil, err
	}

	call := c.service.Channels.List([]string{"snippet", "contentDetails", "statistics"}).Context(ctx)
	if ref.ID != "" {
		call = call.Id(ref.ID)
	} else {
		call = call.ForUsername(ref.Username)
	}

	response, err := call.Do()
	if err != nil {
		return nil, apiErr("channels.list", err)
	}

	if len(response.Items) == 0 {
		return nil, notFound("channel")
	}

	return newChannelSummary(response.Items[0]), nil
}

// newChannelSummary maps an API channel onto the transport-free record,
// tolerating missing parts.
func newChannelSummary(ch *youtube.Channel) *models.ChannelSummary {
	summary := &models.ChannelSummary{ID: ch.Id}
	if ch.Snippet != nil {
		summary.Title = ch.Snippet.Title
		summary.Description = ch.Snippet.Description
		summary.CustomURL = ch.Snippet.CustomUrl
		summary.PublishedAt = parseTimestamp(ch.Snippet.PublishedAt)
		summary.Thumbnails = newThumbnailSet(ch.Snippet.Thumbnails)
		summary.Country = ch.Snippet.Country
	}
	if ch.Statistics != nil {
		summary.ViewCount = ch.Statistics.ViewCount
		summary.SubscriberCount = ch.Statistics.SubscriberCount
		summary.HiddenSubscriberCount = ch.Statistics.HiddenSubscriberCount
		summary.VideoCount = ch.Statistics.VideoCount
	}
	if ch.ContentDetails != nil && ch.ContentDetails.RelatedPlaylists != nil {
		summary.UploadsPlaylist = ch.ContentDetails.RelatedPlaylists.Uploads
	}
	return summary
}
