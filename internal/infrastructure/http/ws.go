package httpserver

import (
	"context"
	"net/http"
	"time"

	"cryptorates-service/internal/infrastructure/http/openapi"
	"cryptorates-service/internal/infrastructure/logx"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const defaultStreamInterval = 2 * time.Second

var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The stream is read-only public market data; origin checks add nothing.
	CheckOrigin: func(*http.Request) bool { return true },
}

// SetStreamInterval sets the push cadence for the market websocket.
func (s *Server) SetStreamInterval(d time.Duration) { s.streamEvery = d }

// MarketWS streams the market snapshot to the client: one push on connect,
// then one per interval. The connection closes when the client goes away or
// a write fails.
func (s *Server) MarketWS(w http.ResponseWriter, r *http.Request) {
	conn, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		logx.L().Warn("ws_upgrade_failed", zap.Error(err))
		return
	}
	defer conn.Close()

	every := s.streamEvery
	if every <= 0 {
		every = defaultStreamInterval
	}

	// Drain reads so client close frames surface promptly.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := s.pushSnapshot(r.Context(), conn); err != nil {
		return
	}

	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-r.Context().Done():
			return
		case <-closed:
			return
		case <-t.C:
			if err := s.pushSnapshot(r.Context(), conn); err != nil {
				return
			}
		}
	}
}

func (s *Server) pushSnapshot(ctx context.Context, conn *websocket.Conn) error {
	quotes, err := s.svc.Market(ctx)
	if err != nil {
		// Keep the connection; the next tick may find the store healthy.
		logx.L().Warn("ws_snapshot_failed", zap.Error(err))
		return nil
	}
	out := make([]openapi.MarketQuote, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, toWireQuote(q))
	}
	_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
	return conn.WriteJSON(out)
}
