// Package transcript fetches YouTube caption tracks without the Data API,
// by scraping the public watch page, and dumps them as plain text files,
// one per video.
package transcript

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"errors"
	"fmt"
	"html"
	"io"
	"net/http"
	"strings"
)

const (
	watchURLFormat = "https://www.youtube.com/watch?v=%s"

	// playerResponseMarker marks the start of the player response JSON in
	// watch page HTML.
	playerResponseMarker = "ytInitialPlayerResponse = "

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"

	// maxPageBytes bounds how much of a watch page is read.
	maxPageBytes = 6 * 1024 * 1024
)

// ErrNoTranscript reports a video without any usable caption track.
var ErrNoTranscript = errors.New("transcript: no transcript available")

// Fetcher scrapes caption tracks from the public watch page. The zero
// preference is English; callers pass preferred language codes per fetch.
type Fetcher struct {
	client   *http.Client
	watchURL string
}

// NewFetcher builds a Fetcher. A nil client falls back to
// http.DefaultClient.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = http.DefaultClient
	}
	return &Fetcher{client: client, watchURL: watchURLFormat}
}

type captionTrack struct {
	BaseURL      string `json:"baseUrl"`
	LanguageCode string `json:"languageCode"`
	Kind         string `json:"kind"` // "asr" = auto-generated
}

type playerResponse struct {
	Captions *struct {
		PlayerCaptionsTracklistRenderer struct {
			CaptionTracks []captionTrack `json:"captionTracks"`
		} `json:"playerCaptionsTracklistRenderer"`
	} `json:"captions"`
}

type timedText struct {
	Lines []timedTextLine `xml:"text"`
}

type timedTextLine struct {
	Text string `xml:",chardata"`
}

// Fetch returns the transcript text of a video, preferring the given
// language codes in order (default "en"). Caption segments are joined with
// single spaces.
func (f *Fetcher) Fetch(ctx context.Context, videoID string, languages []string) (string, error) {
	if videoID == "" {
		return "", errors.New("transcript: video ID is required")
	}
	if len(languages) == 0 {
		languages = []string{"en"}
	}

	page, err := f.get(ctx, fmt.Sprintf(f.watchURL, videoID))
	if err != nil {
		return "", fmt.Errorf("transcript: fetch watch page: %w", err)
	}

	tracks, err := parseCaptionTracks(page)
	if err != nil {
		return "", err
	}

	track := pickTrack(tracks, languages)
	if track == nil {
		return "", ErrNoTranscript
	}

	body, err := f.get(ctx, track.BaseURL)
	if err != nil {
		return "", fmt.Errorf("transcript: fetch caption track: %w", err)
	}

	return parseTimedText(body)
}

func (f *Fetcher) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
}

// parseCaptionTracks digs the caption track list out of the embedded
// ytInitialPlayerResponse blob.
func parseCaptionTracks(page []byte) ([]captionTrack, error) {
	idx := strings.Index(string(page), playerResponseMarker)
	if idx < 0 {
		return nil, ErrNoTranscript
	}

	raw := extractJSON(page[idx+len(playerResponseMarker):])
	if raw == nil {
		return nil, ErrNoTranscript
	}

	var pr playerResponse
	if err := json.Unmarshal(raw, &pr); err != nil {
		return nil, fmt.Errorf("transcript: decode player response: %w", err)
	}
	if pr.Captions == nil {
		return nil, ErrNoTranscript
	}

	tracks := pr.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(tracks) == 0 {
		return nil, ErrNoTranscript
	}
	return tracks, nil
}

// extractJSON extracts a complete JSON object starting at b[0] == '{' by
// tracking brace depth, ignoring braces inside strings.
func extractJSON(b []byte) []byte {
	if len(b) == 0 || b[0] != '{' {
		return nil
	}

	depth := 0
	inStr := false
	escaped := false
	for i, c := range b {
		switch {
		case escaped:
			escaped = false
		case c == '\\':
			escaped = true
		case c == '"':
			inStr = !inStr
		case inStr:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return b[:i+1]
			}
		}
	}
	return nil
}

// pickTrack selects the caption track to fetch: a manual track in a
// preferred language first, then an auto-generated one, then any English
// track, then whatever comes first.
func pickTrack(tracks []captionTrack, languages []string) *captionTrack {
	for _, lang := range languages {
		for i, t := range tracks {
			if t.LanguageCode == lang && t.Kind != "asr" {
				return &tracks[i]
			}
		}
	}
	for _, lang := range languages {
		for i, t := range tracks {
			if t.LanguageCode == lang {
				return &tracks[i]
			}
		}
	}
	for i, t := range tracks {
		if strings.HasPrefix(t.LanguageCode, "en") {
			return &tracks[i]
		}
	}
	for i, t := range tracks {
		if t.BaseURL != "" {
			return &tracks[i]
		}
	}
	return nil
}

// parseTimedText flattens a timedtext XML track into one line of plain
// text. Caption text arrives HTML-escaped inside the XML, so each segment
// is unescaped once more after decoding.
func parseTimedText(body []byte) (string, error) {
	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return "", fmt.Errorf("transcript: parse timedtext XML: %w", err)
	}

	var sb strings.Builder
	for _, line := range tt.Lines {
		text := strings.TrimSpace(html.UnescapeString(line.Text))
		if text == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(text)
	}

	if sb.Len() == 0 {
		return "", ErrNoTranscript
	}
	return sb.String(), nil
}
