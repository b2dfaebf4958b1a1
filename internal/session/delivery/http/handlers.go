package http

import (
	"usecase-srv/pkg/paginator"
	"usecase-srv/pkg/response"
	"usecase-srv/pkg/scope"

	"github.com/gin-gonic/gin"
)

// @Summary Create or re-open a session
// @Description Register a session with the session backend
// @Tags Session
// @Accept json
// @Produce json
// @Param body body createSessionReq true "Create request"
// @Success 200 {object} createSessionResp
// @Failure 502 {object} response.Resp
// @Router /api/v1/session/create [post]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processCreateRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "session.delivery.http.Create: processCreateRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Create(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "session.delivery.http.Create: usecase Create failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newCreateSessionResp(o))
}

// @Summary List the caller's sessions
// @Description Return the session registry entries owned by the caller
// @Tags Session
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} listSessionsResp
// @Failure 502 {object} response.Resp
// @Router /api/v1/sessions [get]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	var pq paginator.PaginateQuery
	if err := c.ShouldBindQuery(&pq); err != nil {
		h.l.Errorf(ctx, "session.delivery.http.List: invalid pagination query: %v", err)
		response.Error(c, errWrongQuery, h.discord)
		return
	}

	o, err := h.uc.List(ctx, sc, pq)
	if err != nil {
		h.l.Errorf(ctx, "session.delivery.http.List: usecase List failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newListSessionsResp(o))
}

// @Summary Get a session title
// @Description Return the stored title of one session
// @Tags Session
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} titleResp
// @Failure 404 {object} response.Resp
// @Router /api/v1/session/{session_id}/title [get]
func (h *handler) GetTitle(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	title, err := h.uc.GetTitle(ctx, sc, c.Param("session_id"))
	if err != nil {
		h.l.Errorf(ctx, "session.delivery.http.GetTitle: usecase GetTitle failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, titleResp{SessionTitle: title})
}

// @Summary Rename a session
// @Description Update the stored title of one session
// @Tags Session
// @Accept json
// @Produce json
// @Param body body renameSessionReq true "Rename request"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/session/rename [post]
func (h *handler) Rename(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processRenameRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "session.delivery.http.Rename: processRenameRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	if err := h.uc.Rename(ctx, sc, req.toInput()); err != nil {
		h.l.Errorf(ctx, "session.delivery.http.Rename: usecase Rename failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// @Summary Delete a session
// @Description Clear all backend data for one session
// @Tags Session
// @Produce json
// @Param session_id path string true "Session ID"
// @Success 200 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/session/{session_id} [delete]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	sc := scope.GetScopeFromContext(ctx)

	if err := h.uc.Delete(ctx, sc, c.Param("session_id")); err != nil {
		h.l.Errorf(ctx, "session.delivery.http.Delete: usecase Delete failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, nil)
}

// @Summary Export a session
// @Description Render the reconciled transcript as json or markdown and return a download link
// @Tags Session
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param body body exportSessionReq false "Export options"
// @Success 200 {object} exportResp
// @Failure 400 {object} response.Resp
// @Failure 404 {object} response.Resp
// @Router /api/v1/session/{session_id}/export [post]
func (h *handler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processExportRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "session.delivery.http.Export: processExportRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Export(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "session.delivery.http.Export: usecase Export failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newExportResp(o))
}
