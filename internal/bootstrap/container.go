package bootstrap

import (
	"context"
	"log"

	"notes-app-be/internal/config"
	"notes-app-be/internal/controller"
	"notes-app-be/internal/handler"
	"notes-app-be/internal/pkg/logger"
	"notes-app-be/internal/repository/memory"
	"notes-app-be/internal/repository/unitofwork"
	"notes-app-be/internal/service"
	"notes-app-be/internal/websocket"
	pktNats "notes-app-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	NoteController controller.INoteController
	PageController controller.IPageController
	FeedHandler    *handler.FeedHandler

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService
	WebSocketHub    *websocket.Hub

	NoteService service.INoteService
	Logger      logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	c := &Container{Logger: sysLogger}

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Optional infrastructure
	var eventPublisher service.EventPublisher
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			eventPublisher = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	wsLogger := logger.NewIsolatedLogger(cfg.App.FeedLogFilePath)
	c.WebSocketHub = websocket.NewHub(newRedisClient(cfg.App.RedisURL, c), wsLogger)

	// 4. Services
	publisherService := service.NewPublisherService(cfg.App.NoteEventsTopic, pubSub)
	c.NoteService = service.NewNoteService(uowFactory, publisherService, sysLogger)
	c.ConsumerService = service.NewConsumerService(
		pubSub,
		cfg.App.NoteEventsTopic,
		c.WebSocketHub,
		eventPublisher,
		sysLogger,
	)

	drafts := memory.NewDraftRepository(cfg.App.DraftTTL)

	// 5. Controllers
	c.NoteController = controller.NewNoteController(c.NoteService)
	c.PageController = controller.NewPageController(c.NoteService, drafts, sysLogger)
	c.FeedHandler = handler.NewFeedHandler(c.WebSocketHub, wsLogger)

	return c
}

// newRedisClient returns nil when url is empty or the server is unreachable;
// the hub then serves only its own clients.
func newRedisClient(url string, c *Container) *redis.Client {
	if url == "" {
		return nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: url}
	}

	rdb := redis.NewClient(opt)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
		_ = rdb.Close()
		return nil
	}

	c.closers = append(c.closers, func() { _ = rdb.Close() })
	return rdb
}

// Start runs the hub and the event consumer until ctx is done.
func (c *Container) Start(ctx context.Context) error {
	go c.WebSocketHub.Run(ctx)
	return c.ConsumerService.Consume(ctx)
}

func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
