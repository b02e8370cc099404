package entity

import (
	"time"

	"github.com/google/uuid"
)

// Packet is a user-authored knowledge unit. Content is the only field the
// context assembler and quiz extraction consume; Pinned only affects display
// surfaces.
type Packet struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Pinned    bool      `json:"pinned"`
	CreatedAt time.Time `json:"created_at"`
}
