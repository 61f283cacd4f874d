package helpscout

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrAPIKeyMissing is returned by every operation when no API key is
// configured. It is checked before any network activity happens.
var ErrAPIKeyMissing = errors.New(
	"HelpScout API key is not configured. Generate an API key at Help Scout → " +
		"Your Profile → Authentication → API Keys, then set HELPSCOUT_API_KEY or run 'hsdocs auth set'.")

// UpstreamError reports a non-success HTTP status from the Docs API.
// It is never retried; the status and any detail the API provided are
// surfaced to the caller as-is.
type UpstreamError struct {
	StatusCode int
	Detail     string
}

func (e *UpstreamError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("helpscout API returned status %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("helpscout API returned status %d", e.StatusCode)
}

// TransportError reports a network-level failure reaching the Docs API,
// including the fixed per-request timeout being exceeded.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("helpscout API unreachable: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// readErrorDetail pulls a short human-readable detail out of an error
// response body. The Docs API usually answers with {"error": "..."}; plain
// text bodies are passed through truncated.
func readErrorDetail(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, 512))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err == nil {
		if payload.Error != "" {
			return payload.Error
		}
		if payload.Message != "" {
			return payload.Message
		}
	}

	return strings.TrimSpace(string(raw))
}
