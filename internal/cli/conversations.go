package cli

import (
	"context"
	"fmt"
	"strings"
)

// Conversations lists the user's conversations with their ids.
func (a *App) Conversations(ctx context.Context) error {
	octx, cancel := a.opCtx(ctx)
	defer cancel()
	if err := a.convs.Load(octx); err != nil {
		return err
	}

	items := a.convs.Items()
	if len(items) == 0 {
		printlnFn("No conversations yet. Type 'chat' to start one.")
		return nil
	}
	for _, conv := range items {
		title := conv.Title
		if title == "" {
			title = "(untitled)"
		}
		printlnFn(fmt.Sprintf("%6d  %s", conv.ConversationID, title))
	}
	return nil
}

// OpenConversation loads a conversation by id and enters the chat loop.
func (a *App) OpenConversation(ctx context.Context) error {
	id, err := a.promptID("Conversation id: ")
	if err != nil {
		return err
	}

	octx, cancel := a.opCtx(ctx)
	err = a.chat.Open(octx, id)
	cancel()
	if err != nil {
		return err
	}
	return a.Chat(ctx)
}

// RenameConversation prompts for an id and a new title.
func (a *App) RenameConversation(ctx context.Context) error {
	octx, cancel := a.opCtx(ctx)
	err := a.convs.Load(octx)
	cancel()
	if err != nil {
		return err
	}

	id, err := a.promptID("Conversation id: ")
	if err != nil {
		return err
	}
	title, err := a.input.Prompt("New title: ")
	if err != nil {
		return err
	}

	octx, cancel = a.opCtx(ctx)
	defer cancel()
	if err := a.convs.Rename(octx, id, title); err != nil {
		return err
	}
	printlnFn("Renamed.")
	return nil
}

// DeleteConversation prompts for an id, confirms, and deletes. Deleting the
// active conversation also resets the chat session.
func (a *App) DeleteConversation(ctx context.Context) error {
	octx, cancel := a.opCtx(ctx)
	err := a.convs.Load(octx)
	cancel()
	if err != nil {
		return err
	}

	id, err := a.promptID("Conversation id to delete: ")
	if err != nil {
		return err
	}
	answer, err := a.input.Prompt("Delete the conversation and all its messages? (y/N): ")
	if err != nil {
		return err
	}
	if !strings.EqualFold(strings.TrimSpace(answer), "y") {
		return nil
	}

	octx, cancel = a.opCtx(ctx)
	defer cancel()
	if err := a.convs.Delete(octx, id); err != nil {
		return err
	}
	if a.chat.ConversationID() == id {
		a.chat.Reset()
	}
	printlnFn("Deleted.")
	return nil
}
