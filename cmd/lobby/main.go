package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nunuwillump/pikachu-soccer/internal/lobby"
	"github.com/nunuwillump/pikachu-soccer/internal/shared/logger"
	"github.com/nunuwillump/pikachu-soccer/internal/shared/types"
)

func main() {
	log := logger.New("lobby")
	addr := getEnv("LOBBY_ADDR", ":9001")
	serverAddr := getEnv("GAME_WS_ADDR", "ws://localhost:9003/ws")
	botFillWait := time.Duration(getEnvInt("BOT_FILL_MS", 4000)) * time.Millisecond

	queue := lobby.NewQueue(serverAddr, botFillWait)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go queue.Run(ctx, time.Second)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/v1/lobby/join", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method_not_allowed"})
			return
		}
		var req types.LobbyJoinRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad_request"})
			return
		}
		if req.PlayerID == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "player_id_required"})
			return
		}
		writeJSON(w, http.StatusOK, queue.Join(req))
	})
	mux.HandleFunc("/v1/lobby/poll", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method_not_allowed"})
			return
		}
		ticketID := r.URL.Query().Get("ticket_id")
		if ticketID == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "ticket_id_required"})
			return
		}
		writeJSON(w, http.StatusOK, queue.Poll(ticketID))
	})
	mux.HandleFunc("/v1/lobby/leave", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method_not_allowed"})
			return
		}
		var body struct {
			TicketID string `json:"ticket_id"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad_request"})
			return
		}
		if body.TicketID == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "ticket_id_required"})
			return
		}
		if !queue.Leave(body.TicketID) {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "ticket_not_found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "left"})
	})

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           withCORS(mux),
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.WithFields(logrus.Fields{
		"addr":        addr,
		"game_server": serverAddr,
	}).Info("lobby listening")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server failed")
	}
}

func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type,Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
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
