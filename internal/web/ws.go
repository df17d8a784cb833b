package web

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"pattern_lab/internal/patterns/observer"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Demo service: any origin may watch the event stream.
	CheckOrigin: func(*http.Request) bool { return true },
}

// handleEventStream upgrades the connection and forwards every bus
// event as JSON until the client disconnects.
func (s *Server) handleEventStream(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", slog.Any("error", err))
		return
	}

	// Buffered so a slow client drops events instead of blocking the bus.
	events := make(chan observer.Event, 64)
	unsubscribe := s.bus.Subscribe("*", func(ev observer.Event) {
		select {
		case events <- ev:
		default:
		}
	})

	done := make(chan struct{})

	// Drain client frames so pings and close messages are processed; a
	// read error means the client is gone.
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	go func() {
		defer func() {
			unsubscribe()
			conn.Close()
		}()
		for {
			select {
			case <-done:
				return
			case ev := <-events:
				conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
				if err := conn.WriteJSON(ev); err != nil {
					slog.Debug("websocket client gone", slog.Any("error", err))
					return
				}
			}
		}
	}()
}
