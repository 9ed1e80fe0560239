package transcript

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultDir is where transcript files land, relative to the working
// directory.
const DefaultDir = "transcriptions"

// Save writes a transcript as <videoID>.txt under dir, creating the
// directory when missing and silently overwriting an existing file. It
// returns the written path. An empty dir falls back to DefaultDir.
func Save(dir, videoID, text string) (string, error) {
	if dir == "" {
		dir = DefaultDir
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("transcript: create directory: %w", err)
	}

	path := filepath.Join(dir, videoID+".txt")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", fmt.Errorf("transcript: write file: %w", err)
	}

	return path, nil
}
