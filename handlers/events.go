package handlers

import (
	"net/http"

	"mojopi/events"
	"mojopi/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// EventsHandler exposes the registry activity feed: the recent-events
// buffer over HTTP and a live stream over websocket.
type EventsHandler struct {
	recent   *events.Recent
	hub      *ws.Manager
	upgrader websocket.Upgrader
}

func NewEventsHandler(recent *events.Recent, hub *ws.Manager) *EventsHandler {
	return &EventsHandler{
		recent: recent,
		hub:    hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// GetRecent handles GET /api/v1/events/recent.
func (h *EventsHandler) GetRecent(c *gin.Context) {
	items := h.recent.List()
	c.JSON(http.StatusOK, gin.H{
		"data":  items,
		"count": len(items),
	})
}

// GetStats handles GET /api/v1/events/stats.
func (h *EventsHandler) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"data":        h.recent.Stats(),
		"subscribers": h.hub.Count(),
	})
}

// Subscribe handles GET /ws/events. Every registry event is pushed to the
// connection as a JSON message until the client disconnects.
func (h *EventsHandler) Subscribe(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	h.hub.Register(conn)

	// Drain client frames so pings and close messages are processed.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			h.hub.Unregister(conn)
			return
		}
	}
}
