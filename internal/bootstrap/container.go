package bootstrap

import (
	"log"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"

	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/config"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/constant"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/controller"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/pkg/logger"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/repository/implementation"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/repository/memory"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/internal/service"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/pkg/gemini"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/pkg/tutor/quiz"
	"github.com/titilayoafolabi999-ctrl/omni-tutor-ai-v3/pkg/tutor/response"
)

type Container struct {
	// Controllers
	SettingsController controller.ISettingsController
	PacketController   controller.IPacketController
	ChatController     controller.IChatController
	QuizController     controller.IQuizController

	// Background services (exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Event bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Persistence boundary
	redisOpts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		log.Fatalf("[FATAL] Invalid Redis URL: %v", err)
	}
	redisClient := redis.NewClient(redisOpts)
	sessionRepo := implementation.NewRedisSessionRepository(redisClient)
	sessionCache := memory.NewSessionRepository()

	// Generation pipeline
	geminiClient := gemini.NewClient(cfg.Ai.GeminiBaseURL)
	responseGenerator := response.NewGenerator(geminiClient, cfg.Ai.ChatModel, sysLogger)
	quizGenerator := quiz.NewGenerator(geminiClient, cfg.Ai.QuizModel, sysLogger)

	// Services
	publisherService := service.NewPublisherService(pubSub, constant.SessionDirtyTopic)
	sessionService := service.NewSessionService(sessionCache, sessionRepo, publisherService, sysLogger)
	packetService := service.NewPacketService(sessionService)
	tutorService := service.NewTutorService(sessionService, responseGenerator)
	quizService := service.NewQuizService(sessionService, quizGenerator)
	consumerService := service.NewConsumerService(pubSub, constant.SessionDirtyTopic, sessionCache, sessionRepo, sysLogger)

	return &Container{
		SettingsController: controller.NewSettingsController(sessionService),
		PacketController:   controller.NewPacketController(packetService),
		ChatController:     controller.NewChatController(tutorService),
		QuizController:     controller.NewQuizController(quizService),
		ConsumerService:    consumerService,
		Logger:             sysLogger,
	}
}
