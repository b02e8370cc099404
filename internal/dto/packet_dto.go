package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePacketRequest struct {
	Title   string `json:"title" validate:"required"`
	Content string `json:"content" validate:"required"`
}

type PacketResponse struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Pinned    bool      `json:"pinned"`
	Focused   bool      `json:"focused"`
	CreatedAt time.Time `json:"created_at"`
}

type SetFocusRequest struct {
	PacketId string `json:"packet_id" validate:"required"`
}

type TogglePinResponse struct {
	Id     uuid.UUID `json:"id"`
	Pinned bool      `json:"pinned"`
}
