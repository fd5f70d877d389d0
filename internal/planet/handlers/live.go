package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"planet-builder/internal/planet"
	"planet-builder/internal/shared/errors"

	"github.com/gorilla/websocket"
)

const (
	liveWriteTimeout = 10 * time.Second
	liveReadLimit    = 64 << 10
)

// LiveMessage is what the live endpoint sends back for each configuration it receives.
type LiveMessage struct {
	Assessment *planet.Assessment `json:"assessment,omitempty"`
	Error      string             `json:"error,omitempty"`
}

// LiveHandler assesses every configuration a WebSocket client sends and replies with
// a LiveMessage.
type LiveHandler struct {
	service  *planet.Service
	upgrader websocket.Upgrader
}

func NewLiveHandler(service *planet.Service, allowedOrigin string) *LiveHandler {
	return &LiveHandler{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || origin == allowedOrigin
			},
		},
	}
}

func (h *LiveHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := slog.With("handler", "assess_live", "remote_addr", r.RemoteAddr)

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Debug("WebSocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	conn.SetReadLimit(liveReadLimit)
	logger.Debug("Live assessment session started")

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("Live assessment session closed unexpectedly", "error", err)
			}
			return
		}

		msg := h.assess(r, data)
		if err := conn.SetWriteDeadline(time.Now().Add(liveWriteTimeout)); err != nil {
			return
		}
		if err := conn.WriteJSON(msg); err != nil {
			logger.Debug("Failed to write live assessment", "error", err)
			return
		}
	}
}

func (h *LiveHandler) assess(r *http.Request, data []byte) LiveMessage {
	var cfg planet.Configuration
	if err := json.Unmarshal(data, &cfg); err != nil {
		return LiveMessage{Error: errors.WrapValidation("invalid configuration", err).Error()}
	}

	a, err := h.service.Assess(r.Context(), cfg)
	if err != nil {
		return LiveMessage{Error: err.Error()}
	}
	return LiveMessage{Assessment: a}
}
