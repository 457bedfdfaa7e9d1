package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio/adapters/event"
	httpAdapter "github.com/khoahotran/portfolio/adapters/http"
	"github.com/khoahotran/portfolio/adapters/persistence"
	contactUC "github.com/khoahotran/portfolio/internal/application/usecase/contact"
	profileUC "github.com/khoahotran/portfolio/internal/application/usecase/profile"
	projectUC "github.com/khoahotran/portfolio/internal/application/usecase/project"
	technologyUC "github.com/khoahotran/portfolio/internal/application/usecase/technology"
	"github.com/khoahotran/portfolio/internal/config"
	"github.com/khoahotran/portfolio/internal/domain/contact"
	"github.com/khoahotran/portfolio/internal/domain/profile"
	"github.com/khoahotran/portfolio/internal/domain/project"
	"github.com/khoahotran/portfolio/internal/domain/technology"
	"github.com/khoahotran/portfolio/pkg/logger"
	"github.com/khoahotran/portfolio/pkg/tracing"
)

func main() {
	fmt.Println("Start Portfolio API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	defer appLogger.Sync()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(cfg, appLogger, "portfolio-api")
	if err != nil {
		appLogger.Fatal("Cannot initialize tracing", err)
	}
	defer shutdownTracing(context.Background())

	// Repositories
	var (
		profileRepo profile.Repository    = persistence.NewStaticProfileRepo()
		projectRepo project.Repository    = persistence.NewStaticProjectRepo()
		techRepo    technology.Repository = persistence.NewStaticTechnologyRepo()
		contactRepo contact.Repository    = persistence.NewDiscardContactRepo()
	)

	if cfg.DB.DSN != "" {
		dbPool, err := persistence.NewPostgresPool(ctx, cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot connect Postgres", err)
		}
		defer dbPool.Close()

		profileRepo = persistence.NewPostgresProfileRepo(dbPool, appLogger)
		projectRepo = persistence.NewPostgresProjectRepo(dbPool, appLogger)
		techRepo = persistence.NewPostgresTechnologyRepo(dbPool, appLogger)
		contactRepo = persistence.NewPostgresContactRepo(dbPool, appLogger)
	} else {
		appLogger.Info("DB_DSN not set, serving built-in content")
	}

	if cfg.Redis.Addr != "" {
		redisClient, err := persistence.NewRedisClient(ctx, cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot connect Redis", err)
		}
		defer redisClient.Close()

		profileRepo = persistence.NewCachedProfileRepo(profileRepo, redisClient, cfg.Redis.TTL, appLogger)
		projectRepo = persistence.NewCachedProjectRepo(projectRepo, redisClient, cfg.Redis.TTL, appLogger)
		techRepo = persistence.NewCachedTechnologyRepo(techRepo, redisClient, cfg.Redis.TTL, appLogger)
	}

	// Events
	var publisher contact.Publisher = event.NewNoopPublisher(appLogger)
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("Cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		publisher = kafkaClient
	}

	// Use Cases
	getProfileUseCase := profileUC.NewGetProfileUseCase(profileRepo, appLogger)
	listProjectsUseCase := projectUC.NewListProjectsUseCase(projectRepo, appLogger)
	getProjectUseCase := projectUC.NewGetProjectUseCase(projectRepo, appLogger)
	feedUseCase := projectUC.NewFeedUseCase(projectRepo, profileRepo, cfg.Site.PublicURL, appLogger)
	listTechnologiesUseCase := technologyUC.NewListTechnologiesUseCase(techRepo, appLogger)
	submitContactUseCase := contactUC.NewSubmitContactUseCase(contactRepo, publisher, appLogger)

	router := httpAdapter.NewRouter(httpAdapter.RouterDeps{
		AppName:        cfg.App.Name,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Profile:        httpAdapter.NewProfileHandler(getProfileUseCase, appLogger),
		Project:        httpAdapter.NewProjectHandler(listProjectsUseCase, getProjectUseCase, appLogger),
		Technology:     httpAdapter.NewTechnologyHandler(listTechnologiesUseCase, appLogger),
		Contact:        httpAdapter.NewContactHandler(submitContactUseCase, appLogger),
		Feed:           httpAdapter.NewFeedHandler(feedUseCase, appLogger),
		Metrics:        httpAdapter.NewMetrics("portfolio-api"),
		Logger:         appLogger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	<-ctx.Done()
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
}
