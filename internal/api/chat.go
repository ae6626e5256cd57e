package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/plateful/plateful/internal/models"
)

// StartConversation posts the first message of a new conversation and
// returns the assigned conversation id together with the assistant's reply.
func (c *Client) StartConversation(ctx context.Context, message string) (models.ChatTurn, error) {
	var turn models.ChatTurn
	err := c.doJSON(ctx, http.MethodPost, "/chat", nil,
		map[string]string{"message": message}, "Failed to start conversation", &turn)
	return turn, err
}

// SendMessage appends a message to an existing conversation.
func (c *Client) SendMessage(ctx context.Context, conversationID int64, message string) (models.ChatTurn, error) {
	var turn models.ChatTurn
	err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/chat/%d/messages", conversationID), nil,
		map[string]string{"message": message}, "Failed to send message", &turn)
	return turn, err
}

// LoadConversation fetches the full transcript of a conversation.
func (c *Client) LoadConversation(ctx context.Context, conversationID int64) (models.Conversation, error) {
	var conv models.Conversation
	err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/chat/%d", conversationID), nil,
		nil, "Failed to load conversation", &conv)
	return conv, err
}

// ListConversations fetches the user's conversations. The server may answer
// with a bare array or an {items,total} envelope; both normalize to a Page.
func (c *Client) ListConversations(ctx context.Context) (models.Page[models.Conversation], error) {
	var raw json.RawMessage
	if err := c.doJSON(ctx, http.MethodGet, "/chat", nil, nil, "Failed to load conversations", &raw); err != nil {
		return models.Page[models.Conversation]{Items: []models.Conversation{}}, err
	}
	return decodePage[models.Conversation](raw)
}

// RenameConversation sets a new title. The title is trimmed here; rejecting
// an empty result is the caller's responsibility (no network call happens
// for those — see services).
func (c *Client) RenameConversation(ctx context.Context, conversationID int64, title string) error {
	return c.doJSON(ctx, http.MethodPatch, fmt.Sprintf("/chat/%d", conversationID), nil,
		map[string]string{"title": title}, "Failed to rename conversation", nil)
}

// DeleteConversation removes a conversation and its messages.
func (c *Client) DeleteConversation(ctx context.Context, conversationID int64) error {
	return c.doJSON(ctx, http.MethodDelete, fmt.Sprintf("/chat/%d", conversationID), nil,
		nil, "Failed to delete conversation", nil)
}
