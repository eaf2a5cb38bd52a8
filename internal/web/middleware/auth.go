package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bloghub/internal/web/session"
)

// AuthRequired is a Gin middleware gating routes that need a logged-in
// user. Anonymous visitors are redirected to the login page; for
// authenticated ones the user id is placed in the request context for
// handlers to use.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := session.CurrentUserID(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("userID", userID)
		c.Next()
	}
}
