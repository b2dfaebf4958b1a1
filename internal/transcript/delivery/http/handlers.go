package http

import (
	"usecase-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// @Summary Get reconciled session transcript
// @Description Return the ordered display transcript with use-case references resolved to their freshest stored version
// @Tags Transcript
// @Accept json
// @Produce json
// @Param session_id path string true "Session ID"
// @Param limit query int false "History page size (backend default when omitted)"
// @Param refresh query bool false "Bypass the snapshot cache"
// @Success 200 {object} transcriptResp
// @Failure 404 {object} response.Resp
// @Failure 502 {object} response.Resp
// @Router /api/v1/sessions/{session_id}/transcript [get]
func (h *handler) GetTranscript(c *gin.Context) {
	ctx := c.Request.Context()

	req, sc, err := h.processGetTranscriptRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "transcript.delivery.http.GetTranscript: processGetTranscriptRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.GetTranscript(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "transcript.delivery.http.GetTranscript: usecase GetTranscript failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newTranscriptResp(o))
}

// @Summary Apply a refinement to a local transcript
// @Description Substitute a refined use case across an unsaved transcript without touching the session backend
// @Tags Transcript
// @Accept json
// @Produce json
// @Param body body applyRefinementReq true "Refinement request"
// @Success 200 {object} refinementResp
// @Failure 400 {object} response.Resp
// @Failure 500 {object} response.Resp
// @Router /api/v1/transcript/refinement [post]
func (h *handler) ApplyRefinement(c *gin.Context) {
	ctx := c.Request.Context()

	req, _, err := h.processApplyRefinementRequest(c)
	if err != nil {
		h.l.Errorf(ctx, "transcript.delivery.http.ApplyRefinement: processApplyRefinementRequest failed: %v", err)
		response.Error(c, err, h.discord)
		return
	}

	o, err := h.uc.ApplyRefinement(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "transcript.delivery.http.ApplyRefinement: usecase ApplyRefinement failed: %v", err)
		response.Error(c, h.mapError(err), h.discord)
		return
	}

	response.OK(c, h.newRefinementResp(o))
}
