package httpserver

import (
	"errors"

	"usecase-srv/config"
	"usecase-srv/pkg/discord"
	"usecase-srv/pkg/extractsrv"
	pkgJWT "usecase-srv/pkg/jwt"
	"usecase-srv/pkg/kafka"
	"usecase-srv/pkg/log"
	"usecase-srv/pkg/minio"
	pkgRedis "usecase-srv/pkg/redis"
	"usecase-srv/pkg/sessionsrv"

	"github.com/gin-gonic/gin"
)

type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Backend clients
	extractClient extractsrv.IExtract
	sessionClient sessionsrv.ISession

	// Infrastructure
	redisClient pkgRedis.IRedis
	producer    kafka.IProducer
	storage     minio.MinIO

	// Authentication & Security Configuration
	config     *config.Config
	jwtManager *pkgJWT.Manager

	// Monitoring & Notification Configuration
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Backend clients
	ExtractClient extractsrv.IExtract
	SessionClient sessionsrv.ISession

	// Infrastructure
	RedisClient pkgRedis.IRedis
	Producer    kafka.IProducer
	Storage     minio.MinIO

	// Authentication & Security Configuration
	Config     *config.Config
	JWTManager *pkgJWT.Manager

	// Monitoring & Notification Configuration
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		// Server Configuration
		l:           logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		// Backend clients
		extractClient: cfg.ExtractClient,
		sessionClient: cfg.SessionClient,

		// Infrastructure
		redisClient: cfg.RedisClient,
		producer:    cfg.Producer,
		storage:     cfg.Storage,

		// Authentication & Security Configuration
		config:     cfg.Config,
		jwtManager: cfg.JWTManager,

		// Monitoring & Notification Configuration
		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv HTTPServer) validate() error {
	// Server Configuration
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}

	// Backend clients
	if srv.extractClient == nil {
		return errors.New("extract client is required")
	}
	if srv.sessionClient == nil {
		return errors.New("session client is required")
	}

	// Infrastructure
	if srv.redisClient == nil {
		return errors.New("redis client is required")
	}
	if srv.storage == nil {
		return errors.New("storage is required")
	}
	// producer is optional; events are best effort

	// Authentication & Security Configuration
	if srv.config == nil {
		return errors.New("config is required")
	}
	if srv.jwtManager == nil {
		return errors.New("jwtManager is required")
	}

	return nil
}
