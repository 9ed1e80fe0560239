// Package yt wraps the YouTube Data API v3 behind a small read-only metadata
// client: channel lookup, uploads listing with bounded pagination, and
// single-video detail retrieval.
package yt

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// Client is a key-authenticated YouTube Data API v3 client. Its methods are
// read-only and safe for concurrent use.
type Client struct {
	service *youtube.Service
}

// New builds a Client around the supplied API key. The key must be
// non-empty; resolving it from the environment is the caller's job (see
// internal/config). Construction performs no network I/O. Extra options pass
// through to the underlying service, which tests use to point the client at
// a stub endpoint.
func New(ctx context.Context, apiKey string, opts ...option.ClientOption) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	opts = append([]option.ClientOption{option.WithAPIKey(apiKey)}, opts...)
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("yt: create service: %w", err)
	}

	return &Client{service: service}, nil
}
