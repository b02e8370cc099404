package service

import (
	"context"
	"encoding/json"

	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/dto"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/entity"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/mapper"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/pkg/logger"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/repository/contract"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/repository/memory"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/pkg/store"
)

type ISessionService interface {
	// Current returns the live session, loading the persisted blob into
	// default state on first access.
	Current(ctx context.Context) *store.Session
	// Mutate applies fn to the live session and marks it dirty for the
	// persist consumer. Mutations are point updates; overlapping requests
	// are last-write-wins.
	Mutate(ctx context.Context, reason string, fn func(*store.Session)) *store.Session
	Snapshot(ctx context.Context) *dto.SessionResponse
	SaveApiKey(ctx context.Context, req *dto.SaveKeyRequest)
	SaveDraft(ctx context.Context, req *dto.SaveDraftRequest)
}

type sessionService struct {
	cache            *memory.SessionRepository
	sessionRepo      contract.SessionRepository
	publisherService IPublisherService
	logger           logger.ILogger

	packetMapper *mapper.PacketMapper
	chatMapper   *mapper.ChatMapper
	quizMapper   *mapper.QuizMapper
}

func NewSessionService(
	cache *memory.SessionRepository,
	sessionRepo contract.SessionRepository,
	publisherService IPublisherService,
	log logger.ILogger,
) ISessionService {
	return &sessionService{
		cache:            cache,
		sessionRepo:      sessionRepo,
		publisherService: publisherService,
		logger:           log,
		packetMapper:     mapper.NewPacketMapper(),
		chatMapper:       mapper.NewChatMapper(),
		quizMapper:       mapper.NewQuizMapper(),
	}
}

func (s *sessionService) Current(ctx context.Context) *store.Session {
	if session, found := s.cache.Get(); found {
		return session
	}

	session := store.NewSession()

	// Best-effort restore: corrupt or missing blobs just mean default state.
	loaded, err := s.sessionRepo.Load(ctx)
	if err != nil {
		s.logger.Warn("session", "stored session unreadable, starting fresh", map[string]interface{}{
			"error": err.Error(),
		})
	} else if loaded != nil {
		session = withDefaults(loaded)
	}

	s.cache.Save(session)
	return session
}

func (s *sessionService) Mutate(ctx context.Context, reason string, fn func(*store.Session)) *store.Session {
	session := s.Current(ctx)
	fn(session)
	s.cache.Save(session)
	s.markDirty(ctx, reason)
	return session
}

func (s *sessionService) Snapshot(ctx context.Context) *dto.SessionResponse {
	session := s.Current(ctx)
	return &dto.SessionResponse{
		HasApiKey:     session.ApiKey != "",
		Draft:         session.Draft,
		FocusPacketId: session.FocusPacketId,
		Chat:          s.chatMapper.ToResponses(session.Chat),
		Packets:       s.packetMapper.ToResponses(session.Packets, session.FocusPacketId),
		Quiz:          s.quizMapper.ToResponses(session.Quiz),
	}
}

func (s *sessionService) SaveApiKey(ctx context.Context, req *dto.SaveKeyRequest) {
	s.Mutate(ctx, "save_api_key", func(session *store.Session) {
		session.ApiKey = req.ApiKey
	})
}

func (s *sessionService) SaveDraft(ctx context.Context, req *dto.SaveDraftRequest) {
	s.Mutate(ctx, "save_draft", func(session *store.Session) {
		session.Draft = req.Draft
	})
}

func (s *sessionService) markDirty(ctx context.Context, reason string) {
	payload, err := json.Marshal(dto.SessionDirtyMessage{Reason: reason})
	if err != nil {
		return
	}
	// Persistence is auxiliary; a publish failure must not fail the request.
	if err := s.publisherService.Publish(ctx, payload); err != nil {
		s.logger.Warn("session", "failed to publish dirty event", map[string]interface{}{
			"reason": reason,
			"error":  err.Error(),
		})
	}
}

// withDefaults fills the gaps a partial or older blob leaves so every
// downstream consumer sees a complete session.
func withDefaults(session *store.Session) *store.Session {
	if session.FocusPacketId == "" {
		session.FocusPacketId = store.FocusAll
	}
	if session.Chat == nil {
		session.Chat = []*entity.ChatMessage{}
	}
	if session.Packets == nil {
		session.Packets = []*entity.Packet{}
	}
	if session.Quiz == nil {
		session.Quiz = []*entity.QuizItem{}
	}
	return session
}
