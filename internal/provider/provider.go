// internal/provider/provider.go
//
// Word acquisition for the round engine.
//
// Two layers:
//   - Client: raw HTTP fetch against the configured word endpoint
//     (GET ?difficulty=..., JSON {"word": "..."} payload). Fails with
//     NetworkError (transport / non-2xx) or ProtocolError (missing or
//     malformed word field).
//   - Source: wraps a Remote and degrades failures to the fixed local
//     fallback list, raising exactly one warning alert per failed fetch.
//     Acquire never returns an empty or malformed word; if the fallback
//     list is also unusable the error is blocking and the caller must
//     disable guessing.
//
// Words are normalized to uppercase before they leave this package.

package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/quintle/quintle/internal/alert"
	"github.com/quintle/quintle/internal/game"
	"github.com/quintle/quintle/internal/words"
)

// DefaultDifficulty is sent when the caller does not specify one.
const DefaultDifficulty = "normal"

// NetworkError is a transport-level failure reaching the word endpoint,
// including non-2xx responses.
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string { return "word endpoint unreachable: " + e.Err.Error() }
func (e *NetworkError) Unwrap() error { return e.Err }

// ProtocolError means the endpoint answered but the payload was unusable.
type ProtocolError struct {
	Reason string
}

func (e *ProtocolError) Error() string { return "word endpoint protocol error: " + e.Reason }

// Remote fetches a secret word for the given difficulty.
type Remote interface {
	Fetch(ctx context.Context, difficulty string) (string, error)
}

// Client is the HTTP implementation of Remote.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient constructs a Client for the given endpoint URL. The timeout
// bounds the whole request; this package enforces no other deadline.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    baseURL,
	}
}

// Fetch performs the GET and decodes the payload.
func (c *Client) Fetch(ctx context.Context, difficulty string) (string, error) {
	reqURL := c.baseURL
	if difficulty != "" {
		u, err := url.Parse(c.baseURL)
		if err != nil {
			return "", &NetworkError{Err: fmt.Errorf("parse endpoint: %w", err)}
		}
		q := u.Query()
		q.Set("difficulty", difficulty)
		u.RawQuery = q.Encode()
		reqURL = u.String()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", &NetworkError{Err: err}
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &NetworkError{Err: fmt.Errorf("status %d", resp.StatusCode)}
	}

	var payload struct {
		Word string `json:"word"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", &ProtocolError{Reason: "malformed body: " + err.Error()}
	}
	if payload.Word == "" {
		return "", &ProtocolError{Reason: "missing word field"}
	}
	return strings.ToUpper(strings.TrimSpace(payload.Word)), nil
}

// Source acquires words for rounds: remote first, local fallback second.
type Source struct {
	remote Remote
	notify alert.Notifier
}

// NewSource wires a Remote to an alert sink. A nil notify falls back to
// the structured log.
func NewSource(remote Remote, notify alert.Notifier) *Source {
	if notify == nil {
		notify = alert.LogNotifier{}
	}
	return &Source{remote: remote, notify: notify}
}

// Acquire returns an uppercase 5-letter word for the round.
//
// The remote endpoint is tried first; any NetworkError or ProtocolError
// (including a word of the wrong shape) degrades to a uniformly random
// word from the local fallback list, with one warning alert describing
// the cause. Only an unusable fallback list makes Acquire fail, and that
// failure is blocking for the round.
func (s *Source) Acquire(ctx context.Context, difficulty string) (string, error) {
	if difficulty == "" {
		difficulty = DefaultDifficulty
	}
	log.Debug().Str("difficulty", difficulty).Msg("acquiring word")

	word, err := s.remote.Fetch(ctx, difficulty)
	if err == nil {
		if len(word) != game.WordLength || !upperAlpha(word) {
			err = &ProtocolError{Reason: "word is not 5 letters"}
		}
	}
	if err == nil {
		log.Debug().Msg("word acquired from endpoint")
		return word, nil
	}

	log.Warn().Err(err).Msg("word endpoint failed, using fallback list")
	notify := s.notify
	if c, ok := alert.FromContext(ctx); ok {
		notify = alert.Tee{notify, c}
	}
	notify.Notify(alert.Alert{
		Title:    "Word service unavailable",
		Message:  "Could not fetch a word from the server; playing with a local word instead.",
		Severity: alert.SeverityWarning,
	})

	fb, fbErr := words.RandomWord()
	if fbErr != nil {
		log.Error().Err(fbErr).Msg("fallback word list unusable")
		return "", fmt.Errorf("acquire word: %w", fbErr)
	}
	return fb, nil
}

func upperAlpha(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}
