package service

import (
	"context"
	"errors"

	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/dto"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/mapper"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/pkg/store"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/pkg/tutor/quiz"
)

var ErrQuizItemNotFound = errors.New("quiz item not found")

type IQuizService interface {
	Generate(ctx context.Context) []*dto.QuizItemResponse
	Get(ctx context.Context) []*dto.QuizItemResponse
	Answer(ctx context.Context, itemIndex int, req *dto.AnswerQuizRequest) (*dto.AnswerQuizResponse, error)
}

type quizService struct {
	sessionService ISessionService
	quizGenerator  *quiz.Generator
	quizMapper     *mapper.QuizMapper
}

func NewQuizService(sessionService ISessionService, quizGenerator *quiz.Generator) IQuizService {
	return &quizService{
		sessionService: sessionService,
		quizGenerator:  quizGenerator,
		quizMapper:     mapper.NewQuizMapper(),
	}
}

func (s *quizService) Generate(ctx context.Context) []*dto.QuizItemResponse {
	session := s.sessionService.Current(ctx)
	items := s.quizGenerator.Generate(ctx, session.Packets, session.ApiKey)

	s.sessionService.Mutate(ctx, "quiz_generate", func(session *store.Session) {
		session.Quiz = items
	})

	return s.quizMapper.ToResponses(items)
}

func (s *quizService) Get(ctx context.Context) []*dto.QuizItemResponse {
	session := s.sessionService.Current(ctx)
	return s.quizMapper.ToResponses(session.Quiz)
}

func (s *quizService) Answer(ctx context.Context, itemIndex int, req *dto.AnswerQuizRequest) (*dto.AnswerQuizResponse, error) {
	session := s.sessionService.Current(ctx)
	if itemIndex < 0 || itemIndex >= len(session.Quiz) {
		return nil, ErrQuizItemNotFound
	}

	item := session.Quiz[itemIndex]
	return &dto.AnswerQuizResponse{
		Correct:      *req.Choice == item.CorrectIndex,
		CorrectIndex: item.CorrectIndex,
	}, nil
}
