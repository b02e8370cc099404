package dto

import "time"

type SendChatRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

type ChatMessageResponse struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

type SendChatResponse struct {
	// Kind tells the client how the reply was produced: simulated, live, or
	// failed. Rendering decisions stay out of the core.
	Kind  string               `json:"kind"`
	Reply *ChatMessageResponse `json:"reply"`
}
