package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"fuelform/internal/webapp"
)

const (
	sessionHeader = "X-Session-ID"
	sessionCookie = "webapp_session"
	sessionMaxAge = 24 * 60 * 60
)

// Session resolves the WebApp session id from the X-Session-ID header or the
// session cookie, issuing a new one when neither is present. The id is
// stored in the request context.
func Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(sessionHeader)
		if id == "" {
			if cookie, err := c.Cookie(sessionCookie); err == nil {
				id = cookie
			}
		}
		if id == "" {
			id = uuid.New().String()
			c.SetSameSite(http.SameSiteLaxMode)
			c.SetCookie(sessionCookie, id, sessionMaxAge, "/", "", false, true)
		}

		c.Request = c.Request.WithContext(webapp.WithSession(c.Request.Context(), id))
		c.Next()
	}
}
