package api

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plateful/plateful/internal/common"
)

func TestClassifyResponse(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		path     string
		body     string
		fallback string
		want     string
	}{
		{
			name:   "unauthorized wins over body hints",
			status: 401,
			path:   "/auth/login",
			body:   `{"message":"email already registered"}`,
			want:   MsgLoginFailed,
		},
		{
			name:   "duplicate email from body text",
			status: 400,
			path:   "/auth/register",
			body:   `{"message":"Email already exists"}`,
			want:   MsgEmailExists,
		},
		{
			name:   "conflict on register without body hint",
			status: 409,
			path:   "/auth/register",
			body:   `{}`,
			want:   MsgEmailExists,
		},
		{
			name:   "conflict elsewhere",
			status: 409,
			path:   "/users/me/images/5",
			body:   `{}`,
			want:   MsgConflict,
		},
		{
			name:   "not found on verify endpoint",
			status: 404,
			path:   "/auth/password-reset/verify",
			body:   ``,
			want:   MsgNoResetLink,
		},
		{
			name:   "not found elsewhere",
			status: 404,
			path:   "/chat/12",
			body:   ``,
			want:   MsgNotFound,
		},
		{
			name:   "gone on verify endpoint",
			status: 410,
			path:   "/auth/password-reset/verify",
			body:   ``,
			want:   MsgResetLinkExpired,
		},
		{
			name:   "gone elsewhere",
			status: 410,
			path:   "/users/me/recipes/history/3",
			body:   ``,
			want:   MsgGone,
		},
		{
			name:   "duplicate username",
			status: 400,
			path:   "/auth/register",
			body:   `{"error":"Username is already taken"}`,
			want:   MsgUsernameTaken,
		},
		{
			name:   "weak password",
			status: 400,
			path:   "/auth/register",
			body:   `{"detail":"password too weak"}`,
			want:   MsgWeakPassword,
		},
		{
			name:   "server error",
			status: 503,
			path:   "/chat",
			body:   `upstream timeout`,
			want:   MsgServerError,
		},
		{
			name:   "short technical message passes through",
			status: 422,
			path:   "/recipes",
			body:   `{"message":"ingredients must not be blank"}`,
			want:   "ingredients must not be blank",
		},
		{
			name:     "empty body falls back to caller text",
			status:   418,
			path:     "/chat",
			body:     ``,
			fallback: "Failed to send message",
			want:     "Failed to send message",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := classifyResponse(tt.status, tt.path, []byte(tt.body), tt.fallback)
			assert.Equal(t, tt.want, e.UserMessage)
			assert.Equal(t, tt.status, e.Status)
		})
	}
}

func TestClassifyResponseTruncatesLongMessages(t *testing.T) {
	long := strings.Repeat("я", userMessageLimit+50)
	e := classifyResponse(422, "/recipes", []byte(`{"message":"`+long+`"}`), "")
	assert.True(t, strings.HasSuffix(e.UserMessage, "..."))
	assert.Len(t, []rune(e.UserMessage), userMessageLimit+3)
}

func TestClassifyResponseKeepsParsedBody(t *testing.T) {
	e := classifyResponse(400, "/chat", []byte(`{"message":"bad","code":7}`), "")
	parsed, ok := e.Server.(map[string]any)
	assert.True(t, ok)
	assert.Equal(t, "bad", parsed["message"])
	assert.Equal(t, "bad", e.Message)
}

func TestUserMessage(t *testing.T) {
	assert.Equal(t, "", UserMessage(nil))
	assert.Equal(t, MsgNotFound, UserMessage(classifyResponse(404, "/chat/1", nil, "")))
	assert.Equal(t, "title must not be empty", UserMessage(errors.New("title must not be empty")))
}

func TestTransportErrorUnwraps(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	e := transportError(cause, "Failed to load conversations")
	assert.Equal(t, "Failed to load conversations", e.UserMessage)
	assert.ErrorIs(t, e, cause)
	assert.ErrorIs(t, e, common.ErrUnavailable)
	assert.Equal(t, 0, e.Status)
}
