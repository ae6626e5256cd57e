// Package models defines the data shapes exchanged with the food-assistant
// backend and shared across client layers.
package models

// Role tells who authored a chat message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one entry of a conversation transcript. Messages are immutable
// once created.
//
// ID is assigned by the server. LocalID is assigned client-side (a UUID) for
// messages appended optimistically before the server has confirmed them; it
// is never sent over the wire.
type Message struct {
	ID        int64  `json:"id"`
	Role      Role   `json:"role"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
	LocalID   string `json:"-"`
}

// Conversation is an ordered message transcript owned by the authenticated
// user. List responses omit Messages.
type Conversation struct {
	ConversationID int64     `json:"conversationId"`
	Title          string    `json:"title"`
	Messages       []Message `json:"messages,omitempty"`
}

// ChatTurn is the server's answer to posting a message: the conversation the
// message landed in and the assistant's reply.
type ChatTurn struct {
	ConversationID   int64  `json:"conversationId"`
	AssistantMessage string `json:"assistantMessage"`
}

// RecipeHistoryEntry is a generated recipe kept in the user's history.
type RecipeHistoryEntry struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	FileID    int64  `json:"fileId,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Image is a generated food image record.
type Image struct {
	ID        int64  `json:"id"`
	URL       string `json:"url"`
	Filename  string `json:"filename,omitempty"`
	Alt       string `json:"alt,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// Page is the canonical shape of a paginated collection. Total is the
// authoritative count used to compute page bounds.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// AuthResponse carries the bearer token issued on login or registration.
type AuthResponse struct {
	Token string `json:"token"`
}

// Download is a file fetched from the backend together with the filename the
// server suggested (or a client-side fallback).
type Download struct {
	Filename string
	Data     []byte
}
