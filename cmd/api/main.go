package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"usecase-srv/config"
	configKafka "usecase-srv/config/kafka"
	configMinio "usecase-srv/config/minio"
	configRedis "usecase-srv/config/redis"
	_ "usecase-srv/docs" // Import swagger docs
	"usecase-srv/internal/httpserver"
	"usecase-srv/pkg/discord"
	"usecase-srv/pkg/extractsrv"
	pkgHTTP "usecase-srv/pkg/http"
	pkgJWT "usecase-srv/pkg/jwt"
	"usecase-srv/pkg/log"
	"usecase-srv/pkg/sessionsrv"
)

// @title       Use Case Service API
// @description Conversation transcript and use-case extraction API documentation.
// @version     1
// @host        usecase-srv.tantai.dev
// @schemes     https
// @BasePath    /usecase
//
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name auth_token
// @description Authentication token stored in HttpOnly cookie. Set by the auth service login endpoint.
//
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Bearer token authentication. Format: "Bearer {token}"
func main() {
	// 1. Load configuration
	// Reads config from YAML file and environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// 3. Register graceful shutdown
	registerGracefulShutdown(logger)

	ctx := context.Background()

	// 4. Initialize Discord (optional)
	discordClient, err := discord.New(logger, &discord.DiscordWebhook{
		ID:    cfg.Discord.WebhookID,
		Token: cfg.Discord.WebhookToken,
	})
	if err != nil {
		logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		discordClient = nil // Continue without Discord
	} else {
		logger.Infof(ctx, "Discord webhook initialized successfully")
	}

	// 5. Initialize Redis
	redisClient, err := configRedis.Connect(ctx, cfg.Redis)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Redis: ", err)
		return
	}
	defer configRedis.Disconnect()
	logger.Infof(ctx, "Redis connected successfully to %s:%d (DB %d)", cfg.Redis.Host, cfg.Redis.Port, cfg.Redis.DB)

	// 6. Initialize MinIO
	storage, err := configMinio.Connect(ctx, cfg.MinIO)
	if err != nil {
		logger.Error(ctx, "Failed to connect to MinIO: ", err)
		return
	}
	defer configMinio.Disconnect()
	logger.Infof(ctx, "MinIO connected successfully to %s (bucket %s)", cfg.MinIO.Endpoint, cfg.MinIO.Bucket)

	// 7. Initialize Kafka producer (optional, activity events are best effort)
	producer, err := configKafka.Connect(cfg.Kafka)
	if err != nil {
		logger.Warnf(ctx, "Kafka producer not available, activity events disabled: %v", err)
		producer = nil
	} else {
		defer configKafka.Disconnect()
		logger.Infof(ctx, "Kafka producer connected to %v (topic %s)", cfg.Kafka.Brokers, cfg.Kafka.Topic)
	}

	// 8. Initialize backend service clients
	extractClient := extractsrv.New(extractsrv.ExtractConfig{
		BaseURL: cfg.Extract.URL,
		HTTPClient: pkgHTTP.NewClient(pkgHTTP.ClientConfig{
			Timeout: time.Duration(cfg.Extract.Timeout) * time.Second,
		}),
	})
	sessionClient := sessionsrv.New(sessionsrv.SessionConfig{
		BaseURL: cfg.Session.URL,
		HTTPClient: pkgHTTP.NewClient(pkgHTTP.ClientConfig{
			Timeout: time.Duration(cfg.Session.Timeout) * time.Second,
		}),
	})

	// 9. Initialize JWT Manager
	jwtManager, err := pkgJWT.New(pkgJWT.Config{
		SecretKey: cfg.JWT.SecretKey,
		Issuer:    cfg.JWT.Issuer,
		Audience:  cfg.JWT.Audience,
		TTL:       time.Duration(cfg.JWT.TTL) * time.Second,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize JWT manager: ", err)
		return
	}
	logger.Infof(ctx, "JWT Manager initialized with algorithm: %s", cfg.JWT.Algorithm)

	// 10. Initialize HTTP server
	// Main application server that handles all HTTP requests and routes
	httpServer, err := httpserver.New(logger, httpserver.Config{
		// Server Configuration
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,

		// Backend clients
		ExtractClient: extractClient,
		SessionClient: sessionClient,

		// Infrastructure
		RedisClient: redisClient,
		Producer:    producer,
		Storage:     storage,

		// Authentication & Security Configuration
		Config:     cfg,
		JWTManager: jwtManager,

		// Monitoring & Notification Configuration
		Discord: discordClient,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}
}

// registerGracefulShutdown registers a signal handler for graceful shutdown.
func registerGracefulShutdown(logger log.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		logger.Info(context.Background(), "Shutting down gracefully...")

		logger.Info(context.Background(), "Cleanup completed")
		os.Exit(0)
	}()
}
