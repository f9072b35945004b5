package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/storefront-support/internal/api/http"
	"github.com/spec-kit/storefront-support/internal/api/http/handlers"
	"github.com/spec-kit/storefront-support/internal/bot"
	"github.com/spec-kit/storefront-support/internal/config"
	"github.com/spec-kit/storefront-support/internal/events"
	"github.com/spec-kit/storefront-support/internal/observability"
	"github.com/spec-kit/storefront-support/internal/persistence"
	"github.com/spec-kit/storefront-support/internal/repository"
	"github.com/spec-kit/storefront-support/internal/service"
	"github.com/spec-kit/storefront-support/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	storeRepo := repository.NewStoreRepository(pool)
	storeUpdateRepo := repository.NewStoreUpdateRepository(pool)
	specialHoursRepo := repository.NewSpecialHoursRepository(pool)
	windowRepo := repository.NewDeliveryWindowRepository(pool)
	slaRuleRepo := repository.NewSLARuleRepository(pool)
	complaintRepo := repository.NewComplaintRepository(pool)
	responseRepo := repository.NewComplaintResponseRepository(pool)
	queueRepo := repository.NewQueueRepository(pool)
	notificationRepo := repository.NewNotificationRepository(pool)
	feedbackRepo := repository.NewFeedbackRepository(pool)
	chatLogRepo := repository.NewChatLogRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, userRepo)
	storeService := service.NewStoreService(service.StoreDependencies{
		StoreRepo:        storeRepo,
		StoreUpdateRepo:  storeUpdateRepo,
		SpecialHoursRepo: specialHoursRepo,
		WindowRepo:       windowRepo,
		Dispatcher:       dispatcher,
	})
	slaService := service.NewSLAService(slaRuleRepo)
	complaintService := service.NewComplaintService(service.ComplaintDependencies{
		ComplaintRepo: complaintRepo,
		SLARuleRepo:   slaRuleRepo,
		QueueRepo:     queueRepo,
		Dispatcher:    dispatcher,
	})
	queueService := service.NewQueueService(queueRepo)
	supplierService := service.NewSupplierService(service.SupplierDependencies{
		ComplaintRepo: complaintRepo,
		ResponseRepo:  responseRepo,
		QueueRepo:     queueRepo,
		StoreRepo:     storeRepo,
		WindowRepo:    windowRepo,
		Dispatcher:    dispatcher,
	})
	notificationService := service.NewNotificationService(notificationRepo, dispatcher, logger)
	feedbackService := service.NewFeedbackService(feedbackRepo)

	botClient := bot.NewClient(cfg.Bot)
	chatService := service.NewChatService(botClient, authService.TokenManager(), chatLogRepo, logger)

	worker.StartNotificationWorker(notificationService)

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:        handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:          handlers.NewAuthHandler(authService),
		Chat:          handlers.NewChatHandler(chatService),
		Stores:        handlers.NewStoresHandler(storeService),
		AdminStores:   handlers.NewAdminStoresHandler(storeService),
		Complaints:    handlers.NewComplaintsHandler(complaintService),
		Supplier:      handlers.NewSupplierHandler(supplierService),
		SLA:           handlers.NewSLAHandler(slaService),
		Agent:         handlers.NewAgentHandler(queueService),
		Feedback:      handlers.NewFeedbackHandler(feedbackService),
		Notifications: handlers.NewNotificationsHandler(notificationService),
		ChatLimiter:   httptransport.ChatRateLimit(redis.Client, cfg.Redis.ChatRatePerMinute, logger),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
