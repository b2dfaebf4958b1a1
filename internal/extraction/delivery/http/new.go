package http

import (
	"usecase-srv/internal/extraction"
	"usecase-srv/internal/middleware"
	"usecase-srv/pkg/discord"
	"usecase-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - Interface for the extraction HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l       log.Logger
	uc      extraction.UseCase
	discord discord.IDiscord
}

// New - Factory
func New(l log.Logger, uc extraction.UseCase, discord discord.IDiscord) Handler {
	return &handler{l: l, uc: uc, discord: discord}
}
