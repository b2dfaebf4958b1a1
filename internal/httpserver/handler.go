package httpserver

import (
	"context"

	extractionhttp "usecase-srv/internal/extraction/delivery/http"
	extractionusecase "usecase-srv/internal/extraction/usecase"
	"usecase-srv/internal/middleware"
	sessionhttp "usecase-srv/internal/session/delivery/http"
	sessionusecase "usecase-srv/internal/session/usecase"
	transcripthttp "usecase-srv/internal/transcript/delivery/http"
	transcriptredis "usecase-srv/internal/transcript/repository/redis"
	transcriptusecase "usecase-srv/internal/transcript/usecase"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.jwtManager, srv.config.Cookie)

	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	// Repositories
	transcriptCacheRepo := transcriptredis.New(srv.redisClient, srv.l)

	// Usecases. Extraction and session depend on the transcript usecase for
	// cache invalidation.
	transcriptUC := transcriptusecase.New(srv.sessionClient, transcriptCacheRepo, srv.l)
	extractionUC := extractionusecase.New(srv.extractClient, transcriptUC, srv.producer, srv.l)
	sessionUC := sessionusecase.New(srv.sessionClient, transcriptUC, srv.storage, srv.l)

	// HTTP handlers
	transcriptHandler := transcripthttp.New(srv.l, transcriptUC, srv.discord)
	extractionHandler := extractionhttp.New(srv.l, extractionUC, srv.discord)
	sessionHandler := sessionhttp.New(srv.l, sessionUC, srv.discord)

	root := srv.gin.Group("")
	transcriptHandler.RegisterRoutes(root, mw)
	extractionHandler.RegisterRoutes(root, mw)
	sessionHandler.RegisterRoutes(root, mw)

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(middleware.Recovery(srv.l, srv.discord))

	corsConfig := middleware.DefaultCORSConfig(srv.environment)
	srv.gin.Use(middleware.CORS(corsConfig))

	ctx := context.Background()
	if srv.environment == "production" {
		srv.l.Infof(ctx, "CORS mode: production (strict origins only)")
	} else {
		srv.l.Infof(ctx, "CORS mode: %s (permissive)", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	// Swagger UI and docs
	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"), // Use relative path
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}
