package api

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/plateful/plateful/internal/common"
)

// User-facing messages produced by the classification rules below. Exported
// so the UI and tests can compare against them instead of repeating strings.
const (
	MsgGeneric          = "Something went wrong. Please try again."
	MsgLoginFailed      = "Failed to log in. Please try again."
	MsgEmailExists      = "An account with that email already exists."
	MsgConflict         = "Conflict: the resource already exists."
	MsgNotFound         = "Requested resource not found."
	MsgNoResetLink      = "No password reset link for that email address was found."
	MsgResetLinkExpired = "The password reset link has expired."
	MsgGone             = "Requested resource is no longer available."
	MsgUsernameTaken    = "That username is already taken."
	MsgWeakPassword     = "Password is invalid or too weak. Please choose a stronger password."
	MsgServerError      = "Server error. Please try again later."
)

// userMessageLimit caps how much raw server text is ever shown to a user.
const userMessageLimit = 200

// Error is the structured failure produced for every non-2xx response and
// for transport failures. UserMessage is always populated, even when the
// server body was empty or unparseable.
type Error struct {
	// Status is the HTTP status code, or 0 for transport failures.
	Status int
	// Server holds the parsed JSON body (a map) or the raw body text.
	Server any
	// Message is the technical message, for logs.
	Message string
	// UserMessage is safe to render to the user as-is.
	UserMessage string

	err error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.err }

// UserMessage extracts the user-facing text from any error. API errors yield
// their classified message; other errors (e.g. local validation) are already
// phrased for the user and are returned verbatim.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var apiErr *Error
	if errors.As(err, &apiErr) && apiErr.UserMessage != "" {
		return apiErr.UserMessage
	}
	return err.Error()
}

// transportError wraps a request-level failure (DNS, refused connection,
// canceled context) with the caller's fallback as the user message. The
// result matches both common.ErrUnavailable and the original error under
// errors.Is.
func transportError(err error, fallback string) *Error {
	if fallback == "" {
		fallback = MsgGeneric
	}
	return &Error{Message: err.Error(), UserMessage: fallback, err: errors.Join(common.ErrUnavailable, err)}
}

// classifyResponse derives the technical and user-facing messages for a
// non-2xx response.
//
// The technical message is the parsed body's message/error/detail field,
// else the raw text, else the fallback. The user message follows a fixed
// precedence: 401 beats everything; then body-text hints (duplicate email),
// conflict/not-found/gone statuses with endpoint-specific wording for
// registration and password-reset verification, duplicate-username and
// weak-password hints, 5xx, and finally the technical message truncated to
// a displayable length.
func classifyResponse(status int, path string, body []byte, fallback string) *Error {
	text := string(body)

	var parsed map[string]any
	var server any = text
	if err := json.Unmarshal(body, &parsed); err == nil && parsed != nil {
		server = parsed
	} else {
		parsed = nil
	}

	technical := ""
	if parsed != nil {
		for _, key := range []string{"message", "error", "detail"} {
			if s, ok := parsed[key].(string); ok && s != "" {
				technical = s
				break
			}
		}
	}
	if technical == "" {
		technical = text
	}
	if technical == "" {
		technical = fallback
	}

	user := fallback
	if user == "" {
		user = MsgGeneric
	}

	m := strings.ToLower(technical)
	switch {
	case status == 401:
		user = MsgLoginFailed
	case strings.Contains(m, "email") && containsAny(m, "exist", "already", "duplicate", "registered"):
		user = MsgEmailExists
	case status == 409:
		if strings.Contains(path, "/auth/register") {
			user = MsgEmailExists
		} else {
			user = MsgConflict
		}
	case status == 404:
		if strings.Contains(path, "/auth/password-reset/verify") {
			user = MsgNoResetLink
		} else {
			user = MsgNotFound
		}
	case status == 410:
		if strings.Contains(path, "/auth/password-reset/verify") {
			user = MsgResetLinkExpired
		} else {
			user = MsgGone
		}
	case strings.Contains(m, "username") && containsAny(m, "exist", "already", "duplicate", "taken"):
		user = MsgUsernameTaken
	case strings.Contains(m, "password") && containsAny(m, "weak", "invalid"):
		user = MsgWeakPassword
	case status >= 500:
		user = MsgServerError
	case technical != "":
		user = truncate(technical, userMessageLimit)
	}

	if user == "" {
		user = MsgGeneric
	}
	return &Error{Status: status, Server: server, Message: technical, UserMessage: user}
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}
