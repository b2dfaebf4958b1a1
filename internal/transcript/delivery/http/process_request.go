package http

import (
	"strconv"

	"usecase-srv/internal/model"
	"usecase-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processGetTranscriptRequest(c *gin.Context) (getTranscriptReq, model.Scope, error) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	refresh, _ := strconv.ParseBool(c.DefaultQuery("refresh", "false"))

	req := getTranscriptReq{
		SessionID: c.Param("session_id"),
		Limit:     limit,
		Refresh:   refresh,
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processApplyRefinementRequest(c *gin.Context) (applyRefinementReq, model.Scope, error) {
	var req applyRefinementReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
