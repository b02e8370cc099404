package dto

type SaveKeyRequest struct {
	ApiKey string `json:"api_key" validate:"required"`
}

type SaveDraftRequest struct {
	Draft string `json:"draft"`
}

// SessionResponse is the full render state. The credential itself never goes
// back over the wire, only whether one is configured.
type SessionResponse struct {
	HasApiKey     bool                   `json:"has_api_key"`
	Draft         string                 `json:"draft"`
	FocusPacketId string                 `json:"focus_packet_id"`
	Chat          []*ChatMessageResponse `json:"chat"`
	Packets       []*PacketResponse      `json:"packets"`
	Quiz          []*QuizItemResponse    `json:"quiz"`
}
