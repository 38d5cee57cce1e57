// ABOUTME: AI chat endpoints of the backend API
// ABOUTME: Sends are rate-limited client-side to protect the backend's model quota

package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/krishisahai/krishi-cli/internal/models"
)

// SendMessage sends one user message and returns the assistant's reply.
// It waits for the client-side rate limiter before dispatching.
func (c *Client) SendMessage(ctx context.Context, message string) (*models.ChatReply, error) {
	if message == "" {
		return nil, fmt.Errorf("message is empty")
	}
	if err := c.chatLimiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait aborted: %w", err)
	}

	var reply models.ChatReply
	if err := c.do(ctx, http.MethodPost, "/chat", models.ChatRequest{Message: message}, &reply); err != nil {
		return nil, err
	}
	return &reply, nil
}

// ChatHistory returns the stored conversation, oldest first.
func (c *Client) ChatHistory(ctx context.Context) ([]models.ChatMessage, error) {
	var history []models.ChatMessage
	if err := c.do(ctx, http.MethodGet, "/chat/history", nil, &history); err != nil {
		return nil, err
	}
	return history, nil
}
