package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/nunuwillump/pikachu-soccer/internal/match"
	"github.com/nunuwillump/pikachu-soccer/internal/physics"
	"github.com/nunuwillump/pikachu-soccer/internal/protocol"
	"github.com/nunuwillump/pikachu-soccer/internal/shared/logger"
	"github.com/nunuwillump/pikachu-soccer/internal/shared/types"
)

const simHz = 30

type client struct {
	side int // 0 = spectator
	conn *websocket.Conn
	send chan []byte
}

type server struct {
	log      *logrus.Entry
	codec    protocol.Codec
	matchID  string
	upgrader websocket.Upgrader

	telemetryURL string
	httpClient   *http.Client

	mu      sync.Mutex
	game    *match.Controller
	inputs  [2]physics.Input
	clients map[*client]struct{}
	claimed [2]bool
}

func main() {
	log := logger.New("gameserver")
	addr := getEnv("GAME_ADDR", ":9003")
	matchID := getEnv("MATCH_ID", fmt.Sprintf("local_%d", time.Now().UTC().Unix()))
	seed := uint64(getEnvInt("MATCH_SEED", int(time.Now().UTC().UnixNano())))
	target := getEnvInt("TARGET_SCORE", 15)

	codec, err := protocol.ByName(getEnv("CODEC", "json"))
	if err != nil {
		log.WithError(err).Fatal("codec selection failed")
	}

	s := &server{
		log:          log,
		codec:        codec,
		matchID:      matchID,
		telemetryURL: getEnv("TELEMETRY_URL", ""),
		httpClient:   &http.Client{Timeout: 2 * time.Second},
		game: match.New(match.Config{
			Seed:        seed,
			TargetScore: target,
			P1Computer:  true,
			P2Computer:  true,
		}),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[*client]struct{}),
	}

	go s.runSimulationLoop()

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/ws", s.handleWS)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.WithFields(logrus.Fields{
		"addr":  addr,
		"match": matchID,
		"codec": codec.Name(),
		"seed":  seed,
	}).Info("authoritative game server listening")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server failed")
	}
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.WithError(err).Warn("websocket upgrade error")
		return
	}

	c := &client{conn: conn, send: make(chan []byte, 64)}
	side := s.claimSide(c)

	s.log.WithFields(logrus.Fields{
		"side":   side,
		"remote": r.RemoteAddr,
	}).Info("client connected")

	s.enqueue(c, types.ServerEnvelope{
		Type:     "welcome",
		Side:     side,
		ServerMS: time.Now().UTC().UnixMilli(),
		Message:  "connected",
	})

	go s.writePump(c)
	s.readPump(c)
}

// claimSide hands out side 1, then side 2; later clients spectate. A
// claimed side switches from AI to human control at the next round.
func (s *server) claimSide(c *client) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for side := 1; side <= 2; side++ {
		if !s.claimed[side-1] {
			s.claimed[side-1] = true
			c.side = side
			s.game.SetComputer(side, false)
			break
		}
	}
	s.clients[c] = struct{}{}
	return c.side
}

func (s *server) releaseSide(c *client) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.clients, c)
	if c.side != 0 {
		s.claimed[c.side-1] = false
		s.inputs[c.side-1] = physics.Input{}
		s.game.SetComputer(c.side, true)
	}
}

func (s *server) readPump(c *client) {
	defer func() {
		s.releaseSide(c)
		_ = c.conn.Close()
	}()

	_ = c.conn.SetReadDeadline(time.Now().Add(90 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		_ = c.conn.SetReadDeadline(time.Now().Add(90 * time.Second))
		return nil
	})

	for {
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.WithField("side", c.side).Info("client disconnected")
				return
			}
			s.log.WithField("side", c.side).WithError(err).Warn("read error")
			return
		}

		var in types.ClientEnvelope
		if err := s.codec.Unmarshal(msg, &in); err != nil {
			s.enqueue(c, types.ServerEnvelope{Type: "error", Message: "bad_payload"})
			continue
		}

		switch in.Type {
		case "input":
			if in.Input == nil || c.side == 0 {
				s.enqueue(c, types.ServerEnvelope{Type: "error", Message: "missing_input"})
				continue
			}
			s.mu.Lock()
			s.inputs[c.side-1] = physics.ClampInput(physics.Input{
				XDirection: in.Input.XDirection,
				YDirection: in.Input.YDirection,
				PowerHit:   in.Input.PowerHit,
			})
			s.mu.Unlock()
		case "ping":
			s.enqueue(c, types.ServerEnvelope{Type: "pong", ServerMS: time.Now().UTC().UnixMilli()})
		default:
			s.enqueue(c, types.ServerEnvelope{Type: "error", Message: "unsupported_message_type"})
		}
	}
}

func (s *server) writePump(c *client) {
	ticker := time.NewTicker(20 * time.Second)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	messageType := websocket.TextMessage
	if s.codec.Name() == "msgpack" {
		messageType = websocket.BinaryMessage
	}

	for {
		select {
		case msg, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(messageType, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, []byte("keepalive")); err != nil {
				return
			}
		}
	}
}

func (s *server) enqueue(c *client, env types.ServerEnvelope) {
	payload, err := s.codec.Marshal(env)
	if err != nil {
		s.log.WithError(err).Warn("marshal failed")
		return
	}
	select {
	case c.send <- payload:
	default:
	}
}

// runSimulationLoop is the external scheduler: one frame step per tick,
// then snapshot fan-out to every connected client.
func (s *server) runSimulationLoop() {
	ticker := time.NewTicker(time.Second / simHz)
	defer ticker.Stop()

	for range ticker.C {
		s.mu.Lock()
		s.game.Step(s.inputs[0], s.inputs[1])
		snap := s.game.Snapshot(s.matchID)
		clients := make([]*client, 0, len(s.clients))
		for c := range s.clients {
			clients = append(clients, c)
		}
		s.mu.Unlock()

		env := types.ServerEnvelope{
			Type:     "state",
			Tick:     snap.Tick,
			State:    &snap,
			ServerMS: time.Now().UTC().UnixMilli(),
		}
		payload, err := s.codec.Marshal(env)
		if err != nil {
			s.log.WithError(err).Warn("marshal state failed")
			continue
		}
		for _, c := range clients {
			select {
			case c.send <- payload:
			default:
			}
		}

		if s.telemetryURL != "" && len(snap.Events) > 0 {
			go s.reportEvents(snap.Tick, snap.Events)
		}
	}
}

// reportEvents forwards this frame's gameplay events to the telemetry
// service. Best effort; a down collector never stalls the simulation.
func (s *server) reportEvents(tick uint64, events []types.GameplayEvent) {
	for _, ev := range events {
		payload, err := json.Marshal(types.TelemetryEvent{
			MatchID:   s.matchID,
			EventType: ev.Type,
			Side:      ev.Side,
			Tick:      tick,
			Timestamp: time.Now().UTC().UnixMilli(),
		})
		if err != nil {
			return
		}
		resp, err := s.httpClient.Post(s.telemetryURL+"/v1/events", "application/json", bytes.NewReader(payload))
		if err != nil {
			s.log.WithError(err).Debug("telemetry post failed")
			return
		}
		_ = resp.Body.Close()
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
