package http

import (
	"usecase-srv/internal/model"
	"usecase-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processCreateRequest(c *gin.Context) (createSessionReq, model.Scope, error) {
	var req createSessionReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processRenameRequest(c *gin.Context) (renameSessionReq, model.Scope, error) {
	var req renameSessionReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processExportRequest(c *gin.Context) (exportSessionReq, model.Scope, error) {
	var req exportSessionReq

	// Body is optional; format defaults to json.
	_ = c.ShouldBindJSON(&req)
	req.SessionID = c.Param("session_id")

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
