package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/shenikar/relief_recommendation_system/internal/config"
	v1 "github.com/shenikar/relief_recommendation_system/internal/handler/http/v1"
	"github.com/shenikar/relief_recommendation_system/internal/models"
	"github.com/shenikar/relief_recommendation_system/internal/repository"
	"github.com/shenikar/relief_recommendation_system/internal/service"
	"github.com/shenikar/relief_recommendation_system/internal/session"
	"github.com/shenikar/relief_recommendation_system/internal/webhook"
	"github.com/shenikar/relief_recommendation_system/pkg/logger"
	"github.com/shenikar/relief_recommendation_system/pkg/postgres"
	redisclient "github.com/shenikar/relief_recommendation_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/relief_recommendation_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Relief Recommendation System API
// @version 1.0
// @description This is a Relief Recommendation System API server.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Архив аналитики опционален: без DATABASE_URL ядро работает только in-memory
	var archive service.AnalyticsArchive
	if cfg.DatabaseURL != "" {
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		archive = repository.NewAnalyticsArchive(dbpool)
	} else {
		log.Warn("DATABASE_URL is not set, analytics archive is disabled")
	}

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя оповещений
	alertPublisher := webhook.NewRedisAlertPublisher(redisClient)

	// Инициализация и запуск воркера доставки оповещений
	alertWorker := webhook.NewAlertWorker(redisClient, log, cfg)
	alertWorker.Start(ctx)

	// Инициализация in-memory сторов
	reliefStore := repository.NewReliefPointStore()
	notificationStore := repository.NewNotificationStore()

	// Сессионный слой
	registry := session.NewRegistry()

	// Инициализация сервисов
	reliefService := service.NewReliefPointService(reliefStore, log)
	notificationService := service.NewNotificationService(notificationStore, log, alertPublisher)
	recommendService := service.NewRecommendationService(reliefStore, registry, nil, archive, log, cfg)

	// Изменения каталога превращаются в уведомления канала relief_update
	pointEvents, unsubscribePoints := reliefStore.Subscribe()
	defer unsubscribePoints()
	go func() {
		for event := range pointEvents {
			var title string
			switch event.Kind {
			case repository.ChangeAdded:
				title = fmt.Sprintf("New relief point: %s", event.Point.Title)
			case repository.ChangeUpdated:
				title = fmt.Sprintf("Relief point updated: %s", event.Point.Title)
			default:
				continue
			}
			notification := &models.Notification{
				Title:   title,
				Body:    event.Point.Description,
				Channel: models.ChannelReliefUpdate,
			}
			if err := notificationService.Push(ctx, notification); err != nil {
				log.WithError(err).Warn("Failed to push relief update notification")
			}
		}
	}()

	// Инициализация хэндлеров
	handler := v1.NewHandler(reliefService, recommendService, notificationService, registry, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
