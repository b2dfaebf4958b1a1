package http

import (
	"io"

	"usecase-srv/internal/model"
	"usecase-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

func (h *handler) processExtractRequest(c *gin.Context) (extractReq, model.Scope, error) {
	var req extractReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processUploadRequest(c *gin.Context) (uploadReq, model.Scope, error) {
	req := uploadReq{
		SessionID:      c.PostForm("session_id"),
		ProjectContext: c.PostForm("project_context"),
		Domain:         c.PostForm("domain"),
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return req, model.Scope{}, err
	}
	req.FileName = fileHeader.Filename

	file, err := fileHeader.Open()
	if err != nil {
		return req, model.Scope{}, err
	}
	defer file.Close()

	req.Content, err = io.ReadAll(file)
	if err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processRefineRequest(c *gin.Context) (refineReq, model.Scope, error) {
	var req refineReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}

func (h *handler) processQueryRequest(c *gin.Context) (queryReq, model.Scope, error) {
	var req queryReq

	if err := c.ShouldBindJSON(&req); err != nil {
		return req, model.Scope{}, err
	}

	sc := scope.GetScopeFromContext(c.Request.Context())
	return req, sc, nil
}
