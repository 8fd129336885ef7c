package loader

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
)

var (
	// ErrLoadFailed is the single error kind surfaced by a loader. Network,
	// decode and shape failures all wrap it.
	ErrLoadFailed = errors.New("resource load failed")

	// ErrInvalidTarget is returned for targets that are not absolute http(s) URLs.
	ErrInvalidTarget = errors.New("invalid target")

	// ErrMissingField is returned when the body has no results[0].name.
	ErrMissingField = errors.New("missing results[0].name")
)

// RemoteUser is the name record extracted from a response body.
type RemoteUser struct {
	Title string `json:"title"`
	First string `json:"first"`
	Last  string `json:"last"`
}

// String formats the user as "Title First Last".
func (u RemoteUser) String() string {
	return u.Title + " " + u.First + " " + u.Last
}

// payload mirrors only the part of the response we read.
type payload struct {
	Results []struct {
		Name *RemoteUser `json:"name"`
	} `json:"results"`
}

// DecodeUser extracts results[0].name from a JSON body.
func DecodeUser(body []byte) (*RemoteUser, error) {
	var p payload
	if err := json.Unmarshal(body, &p); err != nil {
		return nil, fmt.Errorf("decoding body: %w", err)
	}
	if len(p.Results) == 0 || p.Results[0].Name == nil {
		return nil, ErrMissingField
	}
	return p.Results[0].Name, nil
}

// ValidateTarget accepts absolute http and https URLs only.
func ValidateTarget(target string) error {
	u, err := url.Parse(target)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTarget, err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}
	return nil
}
