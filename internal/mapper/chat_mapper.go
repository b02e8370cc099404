package mapper

import (
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/dto"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/entity"
)

type ChatMapper struct{}

func NewChatMapper() *ChatMapper {
	return &ChatMapper{}
}

func (m *ChatMapper) ToResponse(msg *entity.ChatMessage) *dto.ChatMessageResponse {
	if msg == nil {
		return nil
	}
	return &dto.ChatMessageResponse{
		Role:      msg.Role,
		Text:      msg.Text,
		CreatedAt: msg.CreatedAt,
	}
}

func (m *ChatMapper) ToResponses(chat []*entity.ChatMessage) []*dto.ChatMessageResponse {
	responses := make([]*dto.ChatMessageResponse, len(chat))
	for i, msg := range chat {
		responses[i] = m.ToResponse(msg)
	}
	return responses
}
