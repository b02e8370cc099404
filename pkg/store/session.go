package store

import "github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/entity"

// FocusAll is the focus selector sentinel meaning "no restriction": every
// packet is in scope for context assembly.
const FocusAll = "all"

// Session is the whole tutor state. It is owned by the session service and
// persisted as one opaque JSON blob; no component keeps references into it
// that outlive a mutation.
type Session struct {
	ApiKey        string                `json:"api_key"`
	Draft         string                `json:"draft"`
	Chat          []*entity.ChatMessage `json:"chat"`
	Packets       []*entity.Packet      `json:"packets"`
	FocusPacketId string                `json:"focus_packet_id"`
	Quiz          []*entity.QuizItem    `json:"quiz"`
}

// NewSession returns the default state a fresh or unrecoverable session
// starts from.
func NewSession() *Session {
	return &Session{
		Chat:          []*entity.ChatMessage{},
		Packets:       []*entity.Packet{},
		FocusPacketId: FocusAll,
		Quiz:          []*entity.QuizItem{},
	}
}
