package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/khoury-cyber-guide/backend/internal/app/repositories"
)

// StoreSession opens one store session for the request and releases it once
// the handler chain has returned, whatever the outcome.
func StoreSession(sessions repositories.SessionOpener) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, release, err := sessions.OpenSession(c.Request.Context())
		defer release()
		if err != nil {
			HandleAPIError(c, err)
			c.Abort()
			return
		}

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
