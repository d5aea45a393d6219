package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type LogoutHandler struct{}

func NewLogoutHandler() *LogoutHandler {
	return &LogoutHandler{}
}

// Logout is stateless: there is no server-side revocation list, so the only
// work is acknowledging the request. Discarding the token is the client's
// responsibility.
func (h *LogoutHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Successfully logged out",
	})
}
