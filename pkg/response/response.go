package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "usecase-srv/pkg/errors"

	"usecase-srv/pkg/discord"
)

// OK responds 200 with the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{
		ErrorCode: codeOK,
		Message:   msgSuccess,
		Data:      data,
	})
}

// Error responds with the mapped HTTPError, or 500 for unmapped errors.
// Unmapped errors are reported to Discord when a webhook is configured.
func Error(c *gin.Context, err error, d discord.IDiscord) {
	if httpErr, ok := err.(*pkgErrors.HTTPError); ok {
		c.JSON(httpErr.Code, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	if d != nil {
		_ = d.ReportBug(c.Request.Context(), fmt.Sprintf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err))
	}

	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: codeInternalError,
		Message:   msgInternalError,
	})
}

// Unauthorized responds 401 with the standard envelope.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, Resp{
		ErrorCode: codeUnauthorized,
		Message:   msgUnauthorized,
	})
}

// PanicError responds 500 for a recovered panic and reports it to Discord.
func PanicError(c *gin.Context, recovered any, d discord.IDiscord) {
	if d != nil {
		_ = d.ReportBug(c.Request.Context(), fmt.Sprintf("panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered))
	}
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: codeInternalError,
		Message:   msgInternalError,
	})
}
