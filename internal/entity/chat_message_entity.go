package entity

import "time"

const (
	ChatRoleUser = "user"
	ChatRoleAi   = "ai"
)

// ChatMessage is one transcript entry. The chat list is append-only; messages
// are never mutated after creation.
type ChatMessage struct {
	Role      string    `json:"role"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}
