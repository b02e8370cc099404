package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/dto"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/pkg/logger"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/repository/contract"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/repository/memory"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// consumerService drains dirty-session events and writes the live session
// blob out to the persistence boundary, off the request path.
type consumerService struct {
	pubSub      *gochannel.GoChannel
	topicName   string
	cache       *memory.SessionRepository
	sessionRepo contract.SessionRepository
	logger      logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	cache *memory.SessionRepository,
	sessionRepo contract.SessionRepository,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:      pubSub,
		topicName:   topicName,
		cache:       cache,
		sessionRepo: sessionRepo,
		logger:      log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.SessionDirtyMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "failed to unmarshal dirty event", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	session, found := cs.cache.Get()
	if !found {
		// Nothing live to persist; the event referred to state that is gone.
		msg.Ack()
		return
	}

	if err := cs.sessionRepo.Save(ctx, session); err != nil {
		cs.logger.Error("consumer", "failed to persist session blob", map[string]interface{}{
			"reason": payload.Reason,
			"error":  err.Error(),
		})
		msg.Nack() // Nack for retriable errors
		return
	}

	cs.logger.Debug("consumer", "session blob persisted", map[string]interface{}{
		"reason": payload.Reason,
	})
	msg.Ack()
}
