package handlers

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/stoicaf/stoicaf-backend/internal/services"
)

var insightsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// CORS is enforced at the router level; browsers cannot set
		// arbitrary Origin headers on WebSocket requests anyway.
		return true
	},
}

// InsightsWebSocket streams refresh events to a connected client. The
// dashboard holds one socket open and refetches /api/insights whenever a
// refresh event arrives, instead of polling.
func InsightsWebSocket(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r.Header.Get("Authorization"))
	if token == "" {
		// Browsers cannot set Authorization headers on WebSocket dials.
		token = r.URL.Query().Get("token")
	}
	if token == "" {
		http.Error(w, "Authentication required", http.StatusUnauthorized)
		return
	}

	userID, ok, err := services.ValidateSession(token)
	if err != nil || !ok {
		http.Error(w, "Invalid session", http.StatusUnauthorized)
		return
	}

	conn, err := insightsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("insights ws upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	events, unsubscribe := services.SubscribeInsights(userID.String())
	defer unsubscribe()

	hello := services.InsightsEvent{
		Type:      services.EventTypeHello,
		UserID:    userID.String(),
		Timestamp: time.Now().UTC(),
	}
	if err := conn.WriteJSON(hello); err != nil {
		return
	}

	done := make(chan struct{})

	go func() {
		defer close(done)
		for event := range events {
			conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteJSON(event); err != nil {
				return
			}
		}
	}()

	// Read loop exists only to detect disconnects and answer pings.
	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(90 * time.Second))
		return nil
	})

	for {
		select {
		case <-done:
			return
		default:
		}
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
		conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	}
}
