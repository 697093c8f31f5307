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

	"github.com/shenikar/waste_complaint_system/internal/config"
	v1 "github.com/shenikar/waste_complaint_system/internal/handler/http/v1"
	"github.com/shenikar/waste_complaint_system/internal/notify"
	"github.com/shenikar/waste_complaint_system/internal/repository"
	"github.com/shenikar/waste_complaint_system/internal/service"
	"github.com/shenikar/waste_complaint_system/internal/upload"
	"github.com/shenikar/waste_complaint_system/pkg/logger"
	"github.com/shenikar/waste_complaint_system/pkg/postgres"
	redisclient "github.com/shenikar/waste_complaint_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/waste_complaint_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Waste Complaint System API
// @version 1.0
// @description Municipal waste-complaint intake and triage service.
// @host localhost:8080
// @BasePath /
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

	// Схема создаётся один раз до запуска обработки запросов,
	// ленивой инициализации по флагу нет
	if err := runMigrations(cfg, log); err != nil {
		log.Fatalf("Failed to run database migrations: %v", err)
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Каталог загрузок изображений
	uploadStore, err := upload.NewStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to init upload store: %v", err)
	}

	// Инициализация издателя событий
	eventPublisher := notify.NewRedisEventPublisher(redisClient)

	// Инициализация и запуск воркера уведомлений
	notifyWorker := notify.NewWorker(redisClient, log, cfg)
	notifyWorker.Start(ctx)

	// Инициализация репозиториев
	complaintRepo := repository.NewComplaintRepository(dbpool, redisClient, cfg.StatsCacheTTL)
	sessionRepo := repository.NewSessionRepository(redisClient)

	// Инициализация сервисов
	complaintService := service.NewComplaintService(complaintRepo, uploadStore, log, eventPublisher)
	authService := service.NewAuthService(sessionRepo, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(complaintService, authService, uploadStore, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxUploadSize
	handler.RegisterRoutes(router)

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
