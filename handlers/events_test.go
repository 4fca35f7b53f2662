package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"mojopi/entities"
	"mojopi/events"
	"mojopi/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEventsRig() (*gin.Engine, *events.Recent, *ws.Manager, *events.Feed) {
	gin.SetMode(gin.TestMode)
	recent := events.NewRecent(8)
	hub := ws.NewManager()
	feed := events.NewFeed(recent, hub)

	handler := NewEventsHandler(recent, hub)
	r := gin.New()
	r.GET("/api/v1/events/recent", handler.GetRecent)
	r.GET("/api/v1/events/stats", handler.GetStats)
	r.GET("/ws/events", handler.Subscribe)
	return r, recent, hub, feed
}

func TestGetRecentAndStats(t *testing.T) {
	r, _, _, feed := newEventsRig()

	feed.Publish(entities.RegistryEvent{Kind: entities.EventRingUploaded, Name: "firering", Version: "1.0.0"})
	feed.Publish(entities.RegistryEvent{Kind: entities.EventUserRegistered, Name: "alice"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/events/recent", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data  []entities.RegistryEvent `json:"data"`
		Count int                      `json:"count"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, 2, body.Count)
	assert.Equal(t, "alice", body.Data[0].Name)
	assert.Equal(t, "firering", body.Data[1].Name)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/events/stats", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), entities.EventRingUploaded)
}

func TestSubscribeReceivesBroadcast(t *testing.T) {
	r, _, hub, feed := newEventsRig()

	srv := httptest.NewServer(r)
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/events"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	// wait for the server side to register the subscriber
	deadline := time.Now().Add(2 * time.Second)
	for hub.Count() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	require.Equal(t, 1, hub.Count())

	feed.Publish(entities.RegistryEvent{Kind: entities.EventRingUploaded, Name: "firering"})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, payload, err := conn.ReadMessage()
	require.NoError(t, err)

	var event entities.RegistryEvent
	require.NoError(t, json.Unmarshal(payload, &event))
	assert.Equal(t, entities.EventRingUploaded, event.Kind)
	assert.Equal(t, "firering", event.Name)
}
