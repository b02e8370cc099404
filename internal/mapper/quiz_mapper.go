package mapper

import (
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/dto"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/entity"
)

type QuizMapper struct{}

func NewQuizMapper() *QuizMapper {
	return &QuizMapper{}
}

func (m *QuizMapper) ToResponse(item *entity.QuizItem) *dto.QuizItemResponse {
	if item == nil {
		return nil
	}
	return &dto.QuizItemResponse{
		Question:     item.Question,
		Options:      item.Options,
		CorrectIndex: item.CorrectIndex,
	}
}

func (m *QuizMapper) ToResponses(items []*entity.QuizItem) []*dto.QuizItemResponse {
	responses := make([]*dto.QuizItemResponse, len(items))
	for i, item := range items {
		responses[i] = m.ToResponse(item)
	}
	return responses
}
