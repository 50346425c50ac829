package notify

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hostal/internal/pkg/response"
)

type Handler struct {
	hub *Hub
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{hub: hub}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/events/ws", h.Events)
}

// Events upgrades to a WebSocket and streams committed front-desk events.
func (h *Handler) Events(c *gin.Context) {
	userID := c.GetInt64("user_id")
	if userID == 0 {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication required")
		return
	}

	if err := h.hub.ServeWS(c.Writer, c.Request, userID); err != nil {
		// Upgrade already wrote the HTTP error.
		return
	}
}
