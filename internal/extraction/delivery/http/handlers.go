package http

import (
	"usecase-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Extract use cases from free text
// @Description Parse a requirements message into normalized use-case records
// @Tags Extraction
// @Accept json
// @Produce json
// @Param body body extractReq true "Extraction request"
// @Success 200 {object} extractionResp
// @Failure 400 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/parse/use-case [post]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processExtractRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "extraction.delivery.http.Extract: processExtractRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Extract(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "extraction.delivery.http.Extract: usecase Extract failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newExtractionResp(o))
}

// @Summary Extract use cases from a document
// @Description Upload a requirements document and parse it into normalized use-case records
// @Tags Extraction
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Requirements document"
// @Param session_id formData string false "Session ID"
// @Param project_context formData string false "Project context"
// @Param domain formData string false "Domain"
// @Success 200 {object} extractionResp
// @Failure 400 {object} response.Resp
// @Failure 413 {object} response.Resp
// @Router /api/v1/parse/document [post]
func (h *handler) UploadDocument(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processUploadRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "extraction.delivery.http.UploadDocument: processUploadRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.UploadDocument(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "extraction.delivery.http.UploadDocument: usecase UploadDocument failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newExtractionResp(o))
}

// @Summary Refine a stored use case
// @Description Ask the extraction backend to improve one stored use case and return the refined record
// @Tags Extraction
// @Accept json
// @Produce json
// @Param body body refineReq true "Refine request"
// @Success 200 {object} refineResp
// @Failure 404 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/use-case/refine [post]
func (h *handler) Refine(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processRefineRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "extraction.delivery.http.Refine: processRefineRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Refine(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "extraction.delivery.http.Refine: usecase Refine failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newRefineResp(o))
}

// @Summary Query stored requirements
// @Description Ask a natural-language question about the session's requirements
// @Tags Extraction
// @Accept json
// @Produce json
// @Param body body queryReq true "Query request"
// @Success 200 {object} queryResp
// @Failure 400 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/query [post]
func (h *handler) Query(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processQueryRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "extraction.delivery.http.Query: processQueryRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.Query(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "extraction.delivery.http.Query: usecase Query failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newQueryResp(o))
}
