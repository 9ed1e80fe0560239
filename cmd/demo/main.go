// Command demo runs a fixed example against the live API: channel stats for
// the Google Developers channel, its ten latest uploads, and the details of
// the newest one.
package main

import (
	"context"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/ytkit/ytmeta/internal/config"
	"github.com/ytkit/ytmeta/internal/yt"
)

const demoChannelID = "UC_x5XG1OV2P6uZZ5FSM9Ttw"

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()
	client, err := yt.New(ctx, cfg.APIKey)
	if err != nil {
		log.Fatalf("Failed to initialize YouTube client: %v", err)
	}

	channel, err := client.GetChannelInfo(ctx, yt.ChannelID(demoChannelID))
	if err != nil {
		log.Fatalf("Failed to fetch channel info: %v", err)
	}
	fmt.Printf("Channel: %s\n", channel.Title)
	fmt.Printf("Subscribers: %d\n", channel.SubscriberCount)
	fmt.Printf("Videos: %d\n", channel.VideoCount)

	videos, err := client.GetAllVideos(ctx, yt.ChannelID(demoChannelID), yt.ListOptions{MaxResults: 10})
	if err != nil {
		log.Fatalf("Failed to fetch videos: %v", err)
	}
	fmt.Printf("\nLatest %d videos:\n", len(videos))
	for _, v := range videos {
		fmt.Printf("- %s (%s)\n", v.Title, v.URL)
	}

	if len(videos) == 0 {
		return
	}

	detail, err := client.GetVideoDetails(ctx, videos[0].ID)
	if err != nil {
		log.Fatalf("Failed to fetch video details: %v", err)
	}
	fmt.Printf("\nDetails for %q:\n", detail.Title)
	fmt.Printf("Views: %d\n", detail.ViewCount)
	fmt.Printf("Likes: %d\n", detail.LikeCount)
	fmt.Printf("Comments: %d\n", detail.CommentCount)
}
