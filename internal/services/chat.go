package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/plateful/plateful/internal/api"
	"github.com/plateful/plateful/internal/common"
	"github.com/plateful/plateful/internal/models"
)

// seam for tests
var timeNow = time.Now

// ChatAPI is the slice of the API client the chat session needs.
type ChatAPI interface {
	StartConversation(ctx context.Context, message string) (models.ChatTurn, error)
	SendMessage(ctx context.Context, conversationID int64, message string) (models.ChatTurn, error)
	LoadConversation(ctx context.Context, conversationID int64) (models.Conversation, error)
}

// ChatSession holds the transcript of the active conversation.
//
// A conversation id of zero means no conversation exists yet; the first Send
// starts one and adopts the id the server assigns. The user's message is
// appended optimistically before the request goes out. A failed send never
// surfaces as an error: the failure text is appended as an assistant-role
// message so the transcript tells the story.
type ChatSession struct {
	api ChatAPI

	conversationID int64
	messages       []models.Message
	sending        bool
}

func NewChatSession(api ChatAPI) *ChatSession {
	return &ChatSession{api: api, messages: []models.Message{}}
}

// ConversationID returns the active conversation id, or 0 before the first
// exchange.
func (s *ChatSession) ConversationID() int64 { return s.conversationID }

// Messages returns the transcript in order.
func (s *ChatSession) Messages() []models.Message { return s.messages }

// Sending reports whether a send is in flight.
func (s *ChatSession) Sending() bool { return s.sending }

// Reset discards the transcript and returns the session to the
// no-conversation state.
func (s *ChatSession) Reset() {
	s.conversationID = 0
	s.messages = []models.Message{}
}

// Open loads an existing conversation's transcript into the session.
func (s *ChatSession) Open(ctx context.Context, id int64) error {
	conv, err := s.api.LoadConversation(ctx, id)
	if err != nil {
		return err
	}
	s.conversationID = conv.ConversationID
	s.messages = conv.Messages
	if s.messages == nil {
		s.messages = []models.Message{}
	}
	return nil
}

// Send posts text to the conversation, starting one when none is active.
// Blank input is a no-op. A second Send while one is in flight returns
// common.ErrSendInFlight without touching the transcript. Backend failures
// are folded into the transcript and return nil.
func (s *ChatSession) Send(ctx context.Context, text string) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}
	if s.sending {
		return common.ErrSendInFlight
	}
	s.sending = true
	defer func() { s.sending = false }()

	s.append(models.RoleUser, text)

	var turn models.ChatTurn
	var err error
	if s.conversationID == 0 {
		turn, err = s.api.StartConversation(ctx, text)
	} else {
		turn, err = s.api.SendMessage(ctx, s.conversationID, text)
	}
	if err != nil {
		s.append(models.RoleAssistant, api.UserMessage(err))
		return nil
	}

	if s.conversationID == 0 {
		s.conversationID = turn.ConversationID
	}
	s.append(models.RoleAssistant, unwrapEnvelope(turn.AssistantMessage))
	return nil
}

func (s *ChatSession) append(role models.Role, content string) {
	s.messages = append(s.messages, models.Message{
		Role:      role,
		Content:   content,
		Timestamp: timeNow().Format(time.RFC3339),
		LocalID:   uuid.NewString(),
	})
}

// unwrapEnvelope handles assistant replies that arrive as a JSON object with
// a "message" field instead of plain text. Anything else passes through.
func unwrapEnvelope(reply string) string {
	trimmed := strings.TrimSpace(reply)
	if !strings.HasPrefix(trimmed, "{") {
		return reply
	}
	var envelope struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal([]byte(trimmed), &envelope); err != nil || envelope.Message == "" {
		return reply
	}
	return envelope.Message
}

// Quote formats a previous message for citing in the next input: each
// non-blank line gets a "> " prefix, blank lines become a bare ">".
func Quote(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if strings.TrimSpace(line) == "" {
			lines[i] = ">"
		} else {
			lines[i] = "> " + line
		}
	}
	return strings.Join(lines, "\n")
}
