package services

import (
	"context"
	"slices"
	"strings"

	"github.com/plateful/plateful/internal/common"
	"github.com/plateful/plateful/internal/models"
)

// ConversationAPI is the slice of the API client the conversation list needs.
type ConversationAPI interface {
	ListConversations(ctx context.Context) (models.Page[models.Conversation], error)
	RenameConversation(ctx context.Context, conversationID int64, title string) error
	DeleteConversation(ctx context.Context, conversationID int64) error
}

// ConversationList keeps the user's conversation overview. The list is not
// paginated; renames and deletes are optimistic with rollback on failure.
type ConversationList struct {
	api   ConversationAPI
	items []models.Conversation
}

func NewConversationList(api ConversationAPI) *ConversationList {
	return &ConversationList{api: api, items: []models.Conversation{}}
}

// Items returns the loaded conversations, most recent first as the backend
// orders them.
func (c *ConversationList) Items() []models.Conversation { return c.items }

// Load refreshes the list from the backend.
func (c *ConversationList) Load(ctx context.Context) error {
	page, err := c.api.ListConversations(ctx)
	if err != nil {
		return err
	}
	c.items = page.Items
	if c.items == nil {
		c.items = []models.Conversation{}
	}
	return nil
}

func (c *ConversationList) indexOf(id int64) int {
	for i, conv := range c.items {
		if conv.ConversationID == id {
			return i
		}
	}
	return -1
}

// Rename sets a new title. A title that trims to empty is rejected locally
// with common.ErrEmptyTitle and no request is made. The new title shows up
// immediately and reverts when the backend rejects it.
func (c *ConversationList) Rename(ctx context.Context, id int64, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return common.ErrEmptyTitle
	}
	idx := c.indexOf(id)
	if idx < 0 {
		return nil
	}

	prev := c.items[idx].Title
	c.items[idx].Title = title
	if err := c.api.RenameConversation(ctx, id, title); err != nil {
		c.items[idx].Title = prev
		return err
	}
	return nil
}

// Delete removes a conversation optimistically; an unknown id is a no-op.
func (c *ConversationList) Delete(ctx context.Context, id int64) error {
	idx := c.indexOf(id)
	if idx < 0 {
		return nil
	}

	prev := slices.Clone(c.items)
	c.items = append(c.items[:idx:idx], c.items[idx+1:]...)
	if err := c.api.DeleteConversation(ctx, id); err != nil {
		c.items = prev
		return err
	}
	return nil
}
