package yt

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// newTestClient binds a client to a stub API server and returns it together
// with a request counter, so tests can prove an operation never hit the
// network.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *int32) {
	t.Helper()

	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client, err := New(context.Background(), "test-key", option.WithEndpoint(srv.URL))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return client, &calls
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		t.Errorf("encode stub response: %v", err)
	}
}

func testChannel() *youtube.Channel {
	return &youtube.Channel{
		Id: "UCfixture00000000000000",
		Snippet: &youtube.ChannelSnippet{
			Title:       "Fixture Channel",
			Description: "Channel used by the client tests",
			CustomUrl:   "@fixturechannel",
			PublishedAt: "2015-03-18T09:30:00Z",
			Country:     "US",
			Thumbnails: &youtube.ThumbnailDetails{
				Default: &youtube.Thumbnail{Url: "https://i.ytimg.com/ch/default.jpg", Width: 88, Height: 88},
				High:    &youtube.Thumbnail{Url: "https://i.ytimg.com/ch/high.jpg", Width: 800, Height: 800},
			},
		},
		ContentDetails: &youtube.ChannelContentDetails{
			RelatedPlaylists: &youtube.ChannelContentDetailsRelatedPlaylists{
				Uploads: "UUfixture00000000000000",
			},
		},
		Statistics: &youtube.ChannelStatistics{
			ViewCount:             123456789,
			SubscriberCount:       250000,
			HiddenSubscriberCount: true,
			VideoCount:            432,
		},
	}
}

func TestNewRequiresAPIKey(t *testing.T) {
	if _, err := New(context.Background(), ""); !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("New with empty key returned %v, want ErrMissingAPIKey", err)
	}
}

func TestGetChannelInfo(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/youtube/v3/channels" {
			t.Errorf("unexpected request path %q", r.URL.Path)
		}
		if got := r.URL.Query().Get("id"); got != "UCfixture00000000000000" {
			t.Errorf("channels.list id = %q, want the requested channel ID", got)
		}
		if got := r.URL.Query()["part"]; len(got) != 3 {
			t.Errorf("channels.list part = %v, want snippet, contentDetails and statistics", got)
		}
		writeJSON(t, w, &youtube.ChannelListResponse{Items: []*youtube.Channel{testChannel()}})
	})

	channel, err := client.GetChannelInfo(context.Background(), ChannelID("UCfixture00000000000000"))
	if err != nil {
		t.Fatalf("GetChannelInfo: %v", err)
	}

	if channel.ID != "UCfixture00000000000000" {
		t.Errorf("ID = %q", channel.ID)
	}
	if channel.Title != "Fixture Channel" {
		t.Errorf("Title = %q", channel.Title)
	}
	if channel.Description != "Channel used by the client tests" {
		t.Errorf("Description = %q", channel.Description)
	}
	if channel.CustomURL != "@fixturechannel" {
		t.Errorf("CustomURL = %q", channel.CustomURL)
	}
	if want := time.Date(2015, 3, 18, 9, 30, 0, 0, time.UTC); !channel.PublishedAt.Equal(want) {
		t.Errorf("PublishedAt = %v, want %v", channel.PublishedAt, want)
	}
	if channel.Country != "US" {
		t.Errorf("Country = %q", channel.Country)
	}
	if channel.ViewCount != 123456789 {
		t.Errorf("ViewCount = %d", channel.ViewCount)
	}
	if channel.SubscriberCount != 250000 {
		t.Errorf("SubscriberCount = %d", channel.SubscriberCount)
	}
	if !channel.HiddenSubscriberCount {
		t.Error("HiddenSubscriberCount = false, want the flag to map through")
	}
	if channel.VideoCount != 432 {
		t.Errorf("VideoCount = %d", channel.VideoCount)
	}
	if channel.UploadsPlaylist == "" {
		t.Error("UploadsPlaylist is empty")
	}
	if channel.UploadsPlaylist != "UUfixture00000000000000" {
		t.Errorf("UploadsPlaylist = %q", channel.UploadsPlaylist)
	}
	if channel.Thumbnails.Default == nil || channel.Thumbnails.Default.URL != "https://i.ytimg.com/ch/default.jpg" {
		t.Errorf("Thumbnails.Default = %+v", channel.Thumbnails.Default)
	}
	if channel.Thumbnails.Maxres != nil {
		t.Errorf("Thumbnails.Maxres = %+v, want nil for an absent rendition", channel.Thumbnails.Maxres)
	}
	if got := channel.Thumbnails.Best(); got != "https://i.ytimg.com/ch/high.jpg" {
		t.Errorf("Thumbnails.Best() = %q", got)
	}
}

func TestGetChannelInfoByUsername(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("forUsername"); got != "fixtureuser" {
			t.Errorf("channels.list forUsername = %q, want %q", got, "fixtureuser")
		}
		if got := r.URL.Query().Get("id"); got != "" {
			t.Errorf("channels.list id = %q, want unset for a username lookup", got)
		}
		writeJSON(t, w, &youtube.ChannelListResponse{Items: []*youtube.Channel{testChannel()}})
	})

	channel, err := client.GetChannelInfo(context.Background(), Username("fixtureuser"))
	if err != nil {
		t.Fatalf("GetChannelInfo: %v", err)
	}
	if channel.ID != "UCfixture00000000000000" {
		t.Errorf("ID = %q", channel.ID)
	}
}

func TestGetChannelInfoPrefersID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("id"); got != "UCfixture00000000000000" {
			t.Errorf("channels.list id = %q, want the ID to win over the username", got)
		}
		if got := r.URL.Query().Get("forUsername"); got != "" {
			t.Errorf("channels.list forUsername = %q, want unset when an ID is given", got)
		}
		writeJSON(t, w, &youtube.ChannelListResponse{Items: []*youtube.Channel{testChannel()}})
	})

	ref := ChannelRef{ID: "UCfixture00000000000000", Username: "fixtureuser"}
	if _, err := client.GetChannelInfo(context.Background(), ref); err != nil {
		t.Fatalf("GetChannelInfo: %v", err)
	}
}

func TestGetChannelInfoNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, &youtube.ChannelListResponse{})
	})

	_, err := client.GetChannelInfo(context.Background(), ChannelID("UCmissing"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("got %v, want a not-found error", err)
	}

	var clientErr *Error
	if !errors.As(err, &clientErr) {
		t.Fatalf("got %T, want *Error", err)
	}
	if !clientErr.NotFound {
		t.Error("NotFound = false")
	}
	if clientErr.Message == "" {
		t.Error("not-found error has an empty message")
	}
}

func TestGetChannelInfoAPIError(t *testing.T) {
	const body = `{
		"error": {
			"code": 403,
			"message": "The request cannot be completed because you have exceeded your quota.",
			"errors": [
				{
					"message": "The request cannot be completed because you have exceeded your quota.",
					"domain": "youtube.quota",
					"reason": "quotaExceeded"
				}
			]
		}
	}`
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(body))
	})

	_, err := client.GetChannelInfo(context.Background(), ChannelID("UCfixture00000000000000"))
	if err == nil {
		t.Fatal("GetChannelInfo succeeded against a failing API")
	}

	var clientErr *Error
	if !errors.As(err, &clientErr) {
		t.Fatalf("got %T (%v), want *Error", err, err)
	}
	if clientErr.NotFound {
		t.Error("NotFound = true for an API rejection")
	}
	if clientErr.Code != http.StatusForbidden {
		t.Errorf("Code = %d, want 403", clientErr.Code)
	}
	if clientErr.Message == "" {
		t.Error("API error has an empty message")
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("API rejection matches ErrNotFound")
	}
}

func TestValidationHappensBeforeNetwork(t *testing.T) {
	client, calls := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("unexpected request to %s", r.URL.Path)
	})
	ctx := context.Background()

	tests := []struct {
		name    string
		call    func() error
		wantErr error
	}{
		{
			name: "should reject an empty ref on channel lookup",
			call: func() error {
				_, err := client.GetChannelInfo(ctx, ChannelRef{})
				return err
			},
			wantErr: ErrNoChannelRef,
		},
		{
			name: "should reject an empty ref on video listing",
			call: func() error {
				_, err := client.GetAllVideos(ctx, ChannelRef{}, ListOptions{MaxResults: 5})
				return err
			},
			wantErr: ErrNoChannelRef,
		},
		{
			name: "should reject an empty video ID",
			call: func() error {
				_, err := client.GetVideoDetails(ctx, "")
				return err
			},
			wantErr: ErrNoVideoID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.call(); !errors.Is(err, tt.wantErr) {
				t.Fatalf("got error %v, want %v", err, tt.wantErr)
			}
		})
	}

	if got := atomic.LoadInt32(calls); got != 0 {
		t.Fatalf("validation errors reached the network: %d requests", got)
	}
}
