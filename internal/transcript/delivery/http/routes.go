package http

import (
	"usecase-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.GET("/sessions/:session_id/transcript", h.GetTranscript)
		api.POST("/transcript/refinement", h.ApplyRefinement)
	}
}
