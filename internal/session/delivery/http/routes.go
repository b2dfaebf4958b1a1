package http

import (
	"usecase-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/session/create", h.Create)
		api.GET("/sessions", h.List)
		api.GET("/session/:session_id/title", h.GetTitle)
		api.POST("/session/rename", h.Rename)
		api.DELETE("/session/:session_id", h.Delete)
		api.POST("/session/:session_id/export", h.Export)
	}
}
