package models

import "time"

// ChannelSummary represents a YouTube channel profile with its public
// statistics and the ID of the uploads playlist used for video listings.
type ChannelSummary struct {
	ID                    string       `json:"id"`
	Title                 string       `json:"title"`
	Description           string       `json:"description"`
	CustomURL             string       `json:"customUrl"`
	PublishedAt           time.Time    `json:"publishedAt"`
	Thumbnails            ThumbnailSet `json:"thumbnails"`
	Country               string       `json:"country"`
	ViewCount             uint64       `json:"viewCount"`
	SubscriberCount       uint64       `json:"subscriberCount"`
	HiddenSubscriberCount bool         `json:"hiddenSubscriberCount"`
	VideoCount            uint64       `json:"videoCount"`
	UploadsPlaylist       string       `json:"uploadsPlaylist"`
}
