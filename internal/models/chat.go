// ABOUTME: AI chat models for the assistant conversation
// ABOUTME: The model call itself happens on the backend; these are wire shapes only

package models

import "time"

// Chat message senders.
const (
	ChatSenderUser = "user"
	ChatSenderBot  = "bot"
)

// ChatMessage is one stored line of the conversation.
type ChatMessage struct {
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// ChatRequest carries the user's message to the backend.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatReply is the assistant's answer.
type ChatReply struct {
	Reply string `json:"reply"`
}
