package public

import (
	"github.com/mebel-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// GetSession returns the current session with a renewed token so the
// client can refresh its stored copy before expiry.
func (h *Handler) GetSession(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}

	token, expiresAt, err := h.SessionService.Renew(sessionID)
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, gin.H{
		"session_id": sessionID,
		"token":      token,
		"expires_at": expiresAt,
	})
}
