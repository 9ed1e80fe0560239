package yt

import (
	"errors"
	"fmt"
	"net/http"

	"google.golang.org/api/googleapi"
)

var (
	// ErrMissingAPIKey is returned by New when no credential is supplied.
	ErrMissingAPIKey = errors.New("yt: API key is required")

	// ErrNoChannelRef is returned when neither a channel ID nor a username
	// identifies the channel.
	ErrNoChannelRef = errors.New("yt: either a channel ID or a username must be provided")

	// ErrNoVideoID is returned when a video lookup is attempted without an ID.
	ErrNoVideoID = errors.New("yt: video ID is required")

	// ErrNotFound matches any *Error reporting a missing channel or video,
	// via errors.Is.
	ErrNotFound = errors.New("yt: not found")
)

// Error is the tagged failure reported by lookups: either the API returned
// an empty result set (NotFound) or it rejected the call with a structured
// error body, in which case Code carries the HTTP status and Message the
// provider's description.
type Error struct {
	NotFound bool
	Code     int
	Message  string
}

func (e *Error) Error() string {
	if e.NotFound {
		return "yt: " + e.Message
	}
	return fmt.Sprintf("yt: API error %d: %s", e.Code, e.Message)
}

// Is lets errors.Is(err, ErrNotFound) discriminate missing resources.
func (e *Error) Is(target error) bool {
	return target == ErrNotFound && e.NotFound
}

func notFound(resource string) *Error {
	return &Error{NotFound: true, Message: resource + " not found"}
}

// apiErr converts a structured API rejection into a tagged *Error. Failures
// without a decoded error body (transport problems, cancellations) are
// wrapped with the failed operation instead.
func apiErr(op string, err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		message := gerr.Message
		if message == "" {
			message = http.StatusText(gerr.Code)
		}
		return &Error{Code: gerr.Code, Message: message}
	}
	return fmt.Errorf("yt: %s: %w", op, err)
}
