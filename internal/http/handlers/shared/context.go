package shared

import (
	"github.com/mebel-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// SessionContextKey is where the session middleware stores the session ID.
const SessionContextKey = "session_id"

// GetSessionID reads the guest session ID set by the session
// middleware, responding with an error when absent.
func GetSessionID(c *gin.Context) (string, bool) {
	value, exists := c.Get(SessionContextKey)
	if !exists {
		RespondError(c, response.CodeUnauthorized, "error.session_invalid", nil)
		return "", false
	}
	sessionID, ok := value.(string)
	if !ok || sessionID == "" {
		RespondError(c, response.CodeUnauthorized, "error.session_invalid", nil)
		return "", false
	}
	return sessionID, true
}
