package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/yourusername/match-oracle/internal/metrics"
	"github.com/yourusername/match-oracle/internal/models"
	"github.com/yourusername/match-oracle/internal/service"
)

const (
	wsReadLimit = 1 << 20
	wsWriteWait = 10 * time.Second
)

// handleLive answers every match frame with a side-market prediction frame.
// Invalid frames get an error frame and the connection stays open.
func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.WithError(err).Warn("WebSocket upgrade failed")
		return
	}
	defer conn.Close()

	metrics.WebsocketOpened()
	defer metrics.WebsocketClosed()

	conn.SetReadLimit(wsReadLimit)
	ctx := r.Context()

	for {
		_, payload, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.logger.WithError(err).Warn("WebSocket read failed")
			}
			return
		}

		var frame interface{}
		var req models.MatchRequest
		if err := json.Unmarshal(payload, &req); err != nil {
			frame = errorFrame(http.StatusBadRequest, fmt.Sprintf("invalid frame: %v", err))
		} else {
			result, err := s.svc.PredictSideMarkets(ctx, req)
			switch {
			case err == nil:
				frame = result
			case service.IsInvalidRequest(err):
				frame = errorFrame(http.StatusBadRequest, err.Error())
			default:
				s.logger.WithError(err).Error("Live prediction failed")
				frame = errorFrame(http.StatusInternalServerError, "internal error")
			}
		}

		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		if err := conn.WriteJSON(frame); err != nil {
			s.logger.WithError(err).Warn("WebSocket write failed")
			return
		}
	}
}

func errorFrame(status int, message string) ErrorResponse {
	return ErrorResponse{Error: http.StatusText(status), Message: message, Code: status}
}
