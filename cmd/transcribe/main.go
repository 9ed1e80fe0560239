// Command transcribe downloads a video's transcript and saves it as a text
// file under the transcriptions directory.
package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/ytkit/ytmeta/internal/transcript"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "usage: %s <video-id> [language ...]\n", os.Args[0])
		os.Exit(2)
	}

	videoID := os.Args[1]
	languages := os.Args[2:]

	fetcher := transcript.NewFetcher(nil)
	text, err := fetcher.Fetch(context.Background(), videoID, languages)
	if err != nil {
		log.Fatalf("Failed to fetch transcript for %s: %v", videoID, err)
	}

	path, err := transcript.Save(transcript.DefaultDir, videoID, text)
	if err != nil {
		log.Fatalf("Failed to save transcript: %v", err)
	}

	fmt.Printf("Transcript for %s saved in %q\n", videoID, path)
}
