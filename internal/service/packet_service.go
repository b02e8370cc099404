package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/dto"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/entity"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/mapper"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/pkg/store"
)

var ErrPacketNotFound = errors.New("packet not found")

type IPacketService interface {
	Create(ctx context.Context, req *dto.CreatePacketRequest) (*dto.PacketResponse, error)
	List(ctx context.Context) []*dto.PacketResponse
	TogglePin(ctx context.Context, id uuid.UUID) (*dto.TogglePinResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	SetFocus(ctx context.Context, req *dto.SetFocusRequest) error
}

type packetService struct {
	sessionService ISessionService
	packetMapper   *mapper.PacketMapper
}

func NewPacketService(sessionService ISessionService) IPacketService {
	return &packetService{
		sessionService: sessionService,
		packetMapper:   mapper.NewPacketMapper(),
	}
}

func (s *packetService) Create(ctx context.Context, req *dto.CreatePacketRequest) (*dto.PacketResponse, error) {
	packet := &entity.Packet{
		Id:        uuid.New(),
		Title:     req.Title,
		Content:   req.Content,
		CreatedAt: time.Now(),
	}

	session := s.sessionService.Mutate(ctx, "packet_create", func(session *store.Session) {
		// New packets are prepended: display order is newest first.
		session.Packets = append([]*entity.Packet{packet}, session.Packets...)
	})

	return s.packetMapper.ToResponse(packet, session.FocusPacketId), nil
}

func (s *packetService) List(ctx context.Context) []*dto.PacketResponse {
	session := s.sessionService.Current(ctx)
	return s.packetMapper.ToResponses(session.Packets, session.FocusPacketId)
}

func (s *packetService) TogglePin(ctx context.Context, id uuid.UUID) (*dto.TogglePinResponse, error) {
	var toggled *entity.Packet
	s.sessionService.Mutate(ctx, "packet_pin", func(session *store.Session) {
		for _, p := range session.Packets {
			if p.Id == id {
				p.Pinned = !p.Pinned
				toggled = p
				return
			}
		}
	})
	if toggled == nil {
		return nil, ErrPacketNotFound
	}

	return &dto.TogglePinResponse{Id: toggled.Id, Pinned: toggled.Pinned}, nil
}

func (s *packetService) Delete(ctx context.Context, id uuid.UUID) error {
	found := false
	s.sessionService.Mutate(ctx, "packet_delete", func(session *store.Session) {
		kept := session.Packets[:0]
		for _, p := range session.Packets {
			if p.Id == id {
				found = true
				continue
			}
			kept = append(kept, p)
		}
		session.Packets = kept

		// The delete itself clears a focus pointer at the deleted packet;
		// readers never see the stale selector.
		if session.FocusPacketId == id.String() {
			session.FocusPacketId = store.FocusAll
		}
	})

	if !found {
		return ErrPacketNotFound
	}
	return nil
}

func (s *packetService) SetFocus(ctx context.Context, req *dto.SetFocusRequest) error {
	if req.PacketId != store.FocusAll {
		id, err := uuid.Parse(req.PacketId)
		if err != nil {
			return ErrPacketNotFound
		}
		session := s.sessionService.Current(ctx)
		exists := false
		for _, p := range session.Packets {
			if p.Id == id {
				exists = true
				break
			}
		}
		if !exists {
			return ErrPacketNotFound
		}
	}

	s.sessionService.Mutate(ctx, "packet_focus", func(session *store.Session) {
		session.FocusPacketId = req.PacketId
	})
	return nil
}
