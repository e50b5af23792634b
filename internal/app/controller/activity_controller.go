package controller

import (
	"net/http"

	apperrors "github.com/chocolog/chocolog-backend/internal/errors"
	"github.com/chocolog/chocolog-backend/internal/middleware"
	ws "github.com/chocolog/chocolog-backend/internal/websocket"
	"github.com/chocolog/chocolog-backend/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type ActivityController struct {
	hub *ws.Hub
}

func NewActivityController(hub *ws.Hub) *ActivityController {
	return &ActivityController{hub: hub}
}

// Subscribe handles GET /ws/activity and upgrades the connection to a
// websocket feed of review and comment events.
func (ctrl *ActivityController) Subscribe(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apperrors.RespondUnauthorized(c, "")
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("Websocket upgrade failed", map[string]interface{}{
			"user_id": userID,
			"error":   err.Error(),
		})
		return
	}

	client := ws.NewClient(ctrl.hub, conn, userID)
	ctrl.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
