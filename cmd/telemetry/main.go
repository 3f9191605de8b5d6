package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/nunuwillump/pikachu-soccer/internal/shared/logger"
	"github.com/nunuwillump/pikachu-soccer/internal/shared/types"
)

// eventStore keeps a bounded window of recent gameplay events plus
// running counters for the metrics endpoint.
type eventStore struct {
	mu          sync.RWMutex
	recent      []types.TelemetryEvent
	totalIngest int64
	byType      map[string]int64
	goalsBySide map[int]int64
}

func main() {
	log := logger.New("telemetry")
	addr := getEnv("TELEMETRY_ADDR", ":9002")
	store := &eventStore{
		recent:      make([]types.TelemetryEvent, 0, 512),
		byType:      make(map[string]int64),
		goalsBySide: make(map[int]int64),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("/v1/events", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost:
			var ev types.TelemetryEvent
			if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad_request"})
				return
			}
			if ev.EventType == "" {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": "event_type_required"})
				return
			}
			if ev.EventID == "" {
				ev.EventID = fmt.Sprintf("ev_%d", time.Now().UTC().UnixNano())
			}
			if ev.Timestamp == 0 {
				ev.Timestamp = time.Now().UTC().UnixMilli()
			}
			store.ingest(ev)
			writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted", "event_id": ev.EventID})
		case http.MethodGet:
			recent := store.listRecent(100)
			writeJSON(w, http.StatusOK, map[string]any{
				"count":  len(recent),
				"events": recent,
			})
		default:
			writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method_not_allowed"})
		}
	})
	mux.HandleFunc("/metrics", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; version=0.0.4")
		sum := store.summary()
		_, _ = fmt.Fprintln(w, "# HELP soccer_events_total Total gameplay events ingested")
		_, _ = fmt.Fprintln(w, "# TYPE soccer_events_total counter")
		_, _ = fmt.Fprintf(w, "soccer_events_total %d\n", sum.total)
		for typ, count := range sum.byType {
			_, _ = fmt.Fprintf(w, "soccer_events_by_type{event_type=%q} %d\n", typ, count)
		}
		for side, count := range sum.goalsBySide {
			_, _ = fmt.Fprintf(w, "soccer_goals_total{side=\"%d\"} %d\n", side, count)
		}
	})

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.WithFields(logrus.Fields{"addr": addr}).Info("telemetry listening")
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.WithError(err).Fatal("server failed")
	}
}

type storeSummary struct {
	total       int64
	byType      map[string]int64
	goalsBySide map[int]int64
}

func (s *eventStore) ingest(ev types.TelemetryEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.totalIngest++
	s.byType[ev.EventType]++
	if ev.EventType == "goal" {
		s.goalsBySide[ev.Side]++
	}
	s.recent = append(s.recent, ev)
	if len(s.recent) > 1000 {
		s.recent = s.recent[len(s.recent)-1000:]
	}
}

func (s *eventStore) listRecent(limit int) []types.TelemetryEvent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if limit <= 0 || limit > len(s.recent) {
		limit = len(s.recent)
	}
	out := make([]types.TelemetryEvent, limit)
	copy(out, s.recent[len(s.recent)-limit:])
	return out
}

func (s *eventStore) summary() storeSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	byType := make(map[string]int64, len(s.byType))
	for k, v := range s.byType {
		byType[k] = v
	}
	goals := make(map[int]int64, len(s.goalsBySide))
	for k, v := range s.goalsBySide {
		goals[k] = v
	}
	return storeSummary{total: s.totalIngest, byType: byType, goalsBySide: goals}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
