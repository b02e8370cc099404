package mapper

import (
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/dto"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/entity"
)

type PacketMapper struct{}

func NewPacketMapper() *PacketMapper {
	return &PacketMapper{}
}

func (m *PacketMapper) ToResponse(p *entity.Packet, focusSelector string) *dto.PacketResponse {
	if p == nil {
		return nil
	}
	return &dto.PacketResponse{
		Id:        p.Id,
		Title:     p.Title,
		Content:   p.Content,
		Pinned:    p.Pinned,
		Focused:   p.Id.String() == focusSelector,
		CreatedAt: p.CreatedAt,
	}
}

func (m *PacketMapper) ToResponses(packets []*entity.Packet, focusSelector string) []*dto.PacketResponse {
	responses := make([]*dto.PacketResponse, len(packets))
	for i, p := range packets {
		responses[i] = m.ToResponse(p, focusSelector)
	}
	return responses
}
