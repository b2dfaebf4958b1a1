package http

import (
	"usecase-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1")
	api.Use(mw.Auth())
	{
		api.POST("/parse/use-case", h.Extract)
		api.POST("/parse/document", h.UploadDocument)
		api.POST("/use-case/refine", h.Refine)
		api.POST("/query", h.Query)
	}
}
