// Package lobby pairs waiting players into 1v1 matches. The game itself
// only ever has two sides, so the queue is a single FIFO: the two oldest
// searching tickets become side 1 and side 2 of a new match, and a player
// left waiting too long is sent into a match against the built-in
// computer opponent instead.
package lobby

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/nunuwillump/pikachu-soccer/internal/shared/types"
)

// Ticket is a queue entry.
type Ticket struct {
	TicketID    string
	PlayerID    string
	DisplayName string
	JoinedAt    time.Time
	Status      string // searching|matched|cancelled
}

// Queue provides in-memory pairing for local and staging usage.
type Queue struct {
	mu          sync.RWMutex
	waiting     []*Ticket
	ticketIndex map[string]*Ticket
	assignment  map[string]*types.MatchAssignment
	serverAddr  string
	botFillWait time.Duration
}

// NewQueue creates a queue assigning matches to the given game server
// address. A searching ticket older than botFillWait is matched against
// the computer player.
func NewQueue(serverAddr string, botFillWait time.Duration) *Queue {
	if serverAddr == "" {
		serverAddr = "ws://localhost:9003/ws"
	}
	if botFillWait <= 0 {
		botFillWait = 4 * time.Second
	}
	return &Queue{
		ticketIndex: make(map[string]*Ticket),
		assignment:  make(map[string]*types.MatchAssignment),
		serverAddr:  serverAddr,
		botFillWait: botFillWait,
	}
}

func nextID(prefix string) string {
	return fmt.Sprintf("%s_%d", prefix, time.Now().UTC().UnixNano())
}

// Join adds a player to the queue.
func (q *Queue) Join(req types.LobbyJoinRequest) types.LobbyJoinResponse {
	if req.DisplayName == "" {
		req.DisplayName = "pika"
	}
	ticket := &Ticket{
		TicketID:    nextID("t"),
		PlayerID:    req.PlayerID,
		DisplayName: req.DisplayName,
		JoinedAt:    time.Now().UTC(),
		Status:      "searching",
	}

	q.mu.Lock()
	defer q.mu.Unlock()
	q.waiting = append(q.waiting, ticket)
	q.ticketIndex[ticket.TicketID] = ticket

	return types.LobbyJoinResponse{TicketID: ticket.TicketID, Status: ticket.Status}
}

// Leave removes a ticket from the queue.
func (q *Queue) Leave(ticketID string) bool {
	q.mu.Lock()
	defer q.mu.Unlock()

	t, ok := q.ticketIndex[ticketID]
	if !ok {
		return false
	}
	for i := range q.waiting {
		if q.waiting[i].TicketID == ticketID {
			q.waiting = append(q.waiting[:i], q.waiting[i+1:]...)
			break
		}
	}
	t.Status = "cancelled"
	delete(q.ticketIndex, ticketID)
	delete(q.assignment, ticketID)
	return true
}

// Poll returns the current ticket status and the assignment once matched.
func (q *Queue) Poll(ticketID string) types.LobbyPollResponse {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if a, ok := q.assignment[ticketID]; ok {
		copyA := *a
		return types.LobbyPollResponse{TicketID: ticketID, Status: "matched", Assignment: &copyA}
	}

	t, ok := q.ticketIndex[ticketID]
	if !ok {
		return types.LobbyPollResponse{TicketID: ticketID, Status: "not_found"}
	}
	return types.LobbyPollResponse{TicketID: ticketID, Status: t.Status}
}

// Run continuously evaluates the queue and creates matches.
func (q *Queue) Run(ctx context.Context, cadence time.Duration) {
	if cadence <= 0 {
		cadence = time.Second
	}

	ticker := time.NewTicker(cadence)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			q.process()
		}
	}
}

func (q *Queue) process() {
	q.mu.Lock()
	defer q.mu.Unlock()

	now := time.Now().UTC()

	// Oldest two searching tickets pair up; serving side goes to the
	// longer-waiting player.
	for len(q.waiting) >= 2 {
		a, b := q.waiting[0], q.waiting[1]
		q.waiting = q.waiting[2:]
		matchID := nextID("m")

		a.Status = "matched"
		b.Status = "matched"
		q.assignment[a.TicketID] = &types.MatchAssignment{
			TicketID:    a.TicketID,
			MatchID:     matchID,
			Side:        1,
			Opponent:    b.DisplayName,
			ServerAddr:  q.serverAddr,
			FoundAtUnix: now.Unix(),
		}
		q.assignment[b.TicketID] = &types.MatchAssignment{
			TicketID:    b.TicketID,
			MatchID:     matchID,
			Side:        2,
			Opponent:    a.DisplayName,
			ServerAddr:  q.serverAddr,
			FoundAtUnix: now.Unix(),
		}
	}

	// A lone leftover who waited long enough plays the computer.
	if len(q.waiting) == 1 {
		t := q.waiting[0]
		if now.Sub(t.JoinedAt) >= q.botFillWait {
			q.waiting = q.waiting[:0]
			t.Status = "matched"
			q.assignment[t.TicketID] = &types.MatchAssignment{
				TicketID:    t.TicketID,
				MatchID:     nextID("m"),
				Side:        1,
				Opponent:    "computer",
				BotFill:     true,
				ServerAddr:  q.serverAddr,
				FoundAtUnix: now.Unix(),
			}
		}
	}
}
