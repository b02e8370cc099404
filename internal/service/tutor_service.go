package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/constant"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/dto"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/entity"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/mapper"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/pkg/store"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/pkg/tutor/focus"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/pkg/tutor/response"
)

var ErrNoPacketsInFocus = errors.New("no packets in focus")

type ITutorService interface {
	SendChat(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error)
	SummarizeFocus(ctx context.Context) (*dto.SendChatResponse, error)
	ClearChat(ctx context.Context)
	History(ctx context.Context) []*dto.ChatMessageResponse
}

type tutorService struct {
	sessionService    ISessionService
	responseGenerator *response.Generator
	chatMapper        *mapper.ChatMapper
}

func NewTutorService(sessionService ISessionService, responseGenerator *response.Generator) ITutorService {
	return &tutorService{
		sessionService:    sessionService,
		responseGenerator: responseGenerator,
		chatMapper:        mapper.NewChatMapper(),
	}
}

func (s *tutorService) SendChat(ctx context.Context, req *dto.SendChatRequest) (*dto.SendChatResponse, error) {
	session := s.appendChat(ctx, entity.ChatRoleUser, req.Prompt)

	// Focus is resolved per request, never cached: packets may have mutated
	// since the last turn.
	focused := focus.Resolve(session.FocusPacketId, session.Packets)
	restrictive := focus.Scoped(session.FocusPacketId, session.Packets)

	result := s.responseGenerator.Generate(ctx, req.Prompt, restrictive, session.ApiKey, focused)

	reply := s.appendResult(ctx, result)
	return &dto.SendChatResponse{
		Kind:  string(result.Kind),
		Reply: s.chatMapper.ToResponse(reply),
	}, nil
}

func (s *tutorService) SummarizeFocus(ctx context.Context) (*dto.SendChatResponse, error) {
	session := s.sessionService.Current(ctx)
	focused := focus.Resolve(session.FocusPacketId, session.Packets)
	if len(focused) == 0 {
		return nil, ErrNoPacketsInFocus
	}

	contents := make([]string, len(focused))
	for i, p := range focused {
		contents[i] = p.Content
	}
	promptText := constant.SummarizePromptPrefix + "\n\n" + strings.Join(contents, "\n\n")

	s.appendChat(ctx, entity.ChatRoleUser, constant.SummarizeChatMarker)

	// Summarize always forces context-only reasoning regardless of focus.
	result := s.responseGenerator.Generate(ctx, promptText, true, session.ApiKey, focused)

	reply := s.appendResult(ctx, result)
	return &dto.SendChatResponse{
		Kind:  string(result.Kind),
		Reply: s.chatMapper.ToResponse(reply),
	}, nil
}

func (s *tutorService) ClearChat(ctx context.Context) {
	s.sessionService.Mutate(ctx, "chat_clear", func(session *store.Session) {
		session.Chat = []*entity.ChatMessage{}
	})
}

func (s *tutorService) History(ctx context.Context) []*dto.ChatMessageResponse {
	session := s.sessionService.Current(ctx)
	return s.chatMapper.ToResponses(session.Chat)
}

func (s *tutorService) appendChat(ctx context.Context, role, text string) *store.Session {
	msg := &entity.ChatMessage{Role: role, Text: text, CreatedAt: time.Now()}
	return s.sessionService.Mutate(ctx, "chat_append", func(session *store.Session) {
		session.Chat = append(session.Chat, msg)
	})
}

func (s *tutorService) appendResult(ctx context.Context, result response.Result) *entity.ChatMessage {
	msg := &entity.ChatMessage{Role: entity.ChatRoleAi, Text: result.Text, CreatedAt: time.Now()}
	s.sessionService.Mutate(ctx, "chat_append", func(session *store.Session) {
		session.Chat = append(session.Chat, msg)
	})
	return msg
}
