package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/shyam-3045/food-dispencing-system/internal/session"
)

// HeaderSessionID carries the opaque per-tab session id. The server mints
// one when the client has none and echoes it on every response.
const HeaderSessionID = "X-Session-ID"

func Session(store *session.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := store.GetOrCreate(c.GetHeader(HeaderSessionID))

		// Attach session info to request context
		c.Set("sessionID", sess.ID)
		c.Header(HeaderSessionID, sess.ID)
		c.Next()
	}
}
