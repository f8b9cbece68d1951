package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/ngobridge/platform-go/internal/api/middleware"
	"github.com/ngobridge/platform-go/internal/ws"
	"github.com/ngobridge/platform-go/pkg/response"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		log.Println("WebSocket Origin:", r.Header.Get("Origin"))
		return true
	},
}

type WsHandler struct {
	hub *ws.Hub
}

func NewWsHandler(hub *ws.Hub) *WsHandler {
	return &WsHandler{hub: hub}
}

// Notifications godoc
// @Summary Live notification stream
// @Description Upgrades to a WebSocket pushing notification payloads as they
// @Description are created. Browsers cannot set Authorization headers on
// @Description WebSocket requests, so the token is read from the `token`
// @Description query parameter or cookie.
// @Tags notifications
// @Param token query string false "JWT"
// @Router /ws/notifications [get]
func (h *WsHandler) Notifications(c *gin.Context) {
	tokenStr := c.Query("token")
	if tokenStr == "" {
		if cookie, err := c.Cookie("token"); err == nil {
			tokenStr = cookie
		}
	}
	if tokenStr == "" {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "token required"})
		return
	}

	claims, err := middleware.ParseToken(tokenStr)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: "Invalid token"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: "websocket upgrade failed: " + err.Error()})
		return
	}

	h.hub.Add(claims.UserID, conn)
	defer h.hub.Remove(claims.UserID, conn)

	// The stream is push-only. Reading drains control frames and detects
	// the peer going away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
