// Package ws streams garden events to WebSocket clients.
package ws

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/heartmarshall/florarium-backend/internal/events"
	"github.com/heartmarshall/florarium-backend/internal/metrics"
	"github.com/heartmarshall/florarium-backend/pkg/ctxutil"
)

const (
	writeWait    = 10 * time.Second
	pongWait     = 60 * time.Second
	pingInterval = pongWait * 9 / 10
	bufferSize   = 64
)

type subscriber interface {
	Subscribe(buffer int) (<-chan events.Event, func())
}

// Handler upgrades requests to WebSocket and forwards bus events as JSON
// text frames. An optional "types" query parameter (comma separated)
// filters the stream.
type Handler struct {
	bus      subscriber
	upgrader websocket.Upgrader
	log      *slog.Logger
}

// NewHandler creates a stream handler. allowedOrigins holds exact origins
// or "*"; requests without an Origin header are always accepted.
func NewHandler(logger *slog.Logger, bus subscriber, allowedOrigins []string) *Handler {
	return &Handler{
		bus: bus,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					return true
				}
				for _, o := range allowedOrigins {
					if o = strings.TrimSpace(o); o == "*" || o == origin {
						return true
					}
				}
				return false
			},
		},
		log: logger.With("transport", "ws"),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter := parseFilter(r.URL.Query().Get("types"))

	// Subscribe before the handshake completes so no event published after
	// the client connected is missed.
	ch, cancel := h.bus.Subscribe(bufferSize)
	defer cancel()

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.WarnContext(r.Context(), "websocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	done := metrics.StreamClientConnected()
	defer done()

	device, _ := ctxutil.DeviceFromCtx(r.Context())
	log := h.log.With(slog.String("device_id", device.ID.String()), slog.String("device", device.Name))
	log.InfoContext(r.Context(), "event stream connected")

	closed := make(chan struct{})
	go readLoop(conn, closed)

	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-closed:
			log.InfoContext(r.Context(), "event stream disconnected")
			return
		case <-r.Context().Done():
			return
		case e, ok := <-ch:
			if !ok {
				return
			}
			if len(filter) > 0 {
				if _, want := filter[e.Type]; !want {
					continue
				}
			}
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteJSON(e); err != nil {
				log.WarnContext(r.Context(), "event stream write failed", slog.String("error", err.Error()))
				return
			}
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeWait)); err != nil {
				return
			}
		}
	}
}

// readLoop discards client frames and reports when the peer goes away.
func readLoop(conn *websocket.Conn, closed chan<- struct{}) {
	defer close(closed)
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := conn.NextReader(); err != nil {
			return
		}
	}
}

func parseFilter(raw string) map[events.Type]struct{} {
	if raw == "" {
		return nil
	}
	out := make(map[events.Type]struct{})
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			out[events.Type(t)] = struct{}{}
		}
	}
	return out
}
