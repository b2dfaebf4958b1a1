package middleware

import (
	"usecase-srv/pkg/discord"
	"usecase-srv/pkg/log"
	"usecase-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Recovery converts panics into 500 responses. The panic value and route
// are logged, and forwarded to Discord when a webhook is configured.
func Recovery(logger log.Logger, discordClient discord.IDiscord) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				ctx := c.Request.Context()
				logger.Errorf(ctx, "Panic recovered on %s %s: %v",
					c.Request.Method, c.Request.URL.Path, err)

				response.PanicError(c, err, discordClient)
				c.Abort()
			}
		}()
		c.Next()
	}
}
