package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/MrCakeguy123/tenant-landlord-app/internal/api/http"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/api/http/handlers"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/auth"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/config"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/events"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/observability"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/persistence"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/repository"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/service"
	"github.com/MrCakeguy123/tenant-landlord-app/internal/worker"
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
	leaseRepo := repository.NewLeaseRepository(pool)
	paymentRepo := repository.NewRentPaymentRepository(pool)
	orderRepo := repository.NewRentOrderRepository(pool)
	requestRepo := repository.NewMaintenanceRequestRepository(pool)
	attachmentRepo := repository.NewRequestAttachmentRepository(pool)
	announcementRepo := repository.NewAnnouncementRepository(pool)

	sessions := auth.NewSessionStore(redis.Client)
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(*cfg, service.AuthDependencies{
		UserRepo:     userRepo,
		SessionStore: sessions,
	})
	leaseService := service.NewLeaseService(service.LeaseDependencies{
		LeaseRepo:  leaseRepo,
		UserRepo:   userRepo,
		Dispatcher: dispatcher,
	})
	rentService := service.NewRentService(service.RentDependencies{
		LeaseRepo:   leaseRepo,
		PaymentRepo: paymentRepo,
		Dispatcher:  dispatcher,
	})
	paymentService := service.NewPaymentService(cfg.Gateway, service.PaymentDependencies{
		OrderRepo: orderRepo,
		LeaseRepo: leaseRepo,
		Rent:      rentService,
		Logger:    logger,
	})
	maintenanceService := service.NewMaintenanceService(service.MaintenanceDependencies{
		RequestRepo:    requestRepo,
		AttachmentRepo: attachmentRepo,
		Dispatcher:     dispatcher,
	})
	announcementService := service.NewAnnouncementService(service.AnnouncementDependencies{
		AnnouncementRepo: announcementRepo,
		LeaseRepo:        leaseRepo,
		Dispatcher:       dispatcher,
	})
	calendarService := service.NewCalendarService(rentService, announcementService)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo, sessions)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Leases:         handlers.NewLeasesHandler(leaseService, authService),
		Rent:           handlers.NewRentHandler(rentService, maintenanceService),
		Payments:       handlers.NewPaymentsHandler(paymentService, logger),
		Maintenance:    handlers.NewMaintenanceHandler(maintenanceService),
		Announcements:  handlers.NewAnnouncementsHandler(announcementService, calendarService),
		AuthMiddleware: authMiddleware,
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
