package match

import (
	"github.com/nunuwillump/pikachu-soccer/internal/physics"
)

// Event tracks state changes worth UI/audio feedback.
type Event struct {
	Type string // goal|round_start|match_end
	Side int    // scoring or serving side, 0 when not applicable
}

// Config selects the match parameters.
type Config struct {
	Seed        uint64
	TargetScore int
	P1Computer  bool
	P2Computer  bool
}

// Controller owns the match aggregate by value and drives the physics
// stepper: it interprets goal codes, keeps score, sequences rounds and
// flags the end of the match. The physics core never sees any of this.
type Controller struct {
	P1   physics.Player
	P2   physics.Player
	Ball physics.Ball

	Tick        uint64
	Score1      int
	Score2      int
	TargetScore int
	ServeSide   int
	Ended       bool
	Winner      int
	Events      []Event

	stepper *physics.Stepper
}

// New creates a match with side 1 serving first.
func New(cfg Config) *Controller {
	if cfg.TargetScore <= 0 {
		cfg.TargetScore = 15
	}
	rng := physics.NewRand(cfg.Seed)
	m := &Controller{
		TargetScore: cfg.TargetScore,
		ServeSide:   1,
		stepper:     physics.NewStepper(rng),
	}
	m.P1 = *physics.NewPlayer(1, cfg.P1Computer, rng)
	m.P2 = *physics.NewPlayer(2, cfg.P2Computer, rng)
	m.Ball = *physics.NewBall(m.ServeSide)
	m.startRound(m.ServeSide)
	return m
}

// SetComputer switches a side between human and AI control. Selected at
// round setup by the outer layer, never re-detected mid-round.
func (m *Controller) SetComputer(side int, isComputer bool) {
	if side == 1 {
		m.P1.IsComputer = isComputer
	} else {
		m.P2.IsComputer = isComputer
	}
}

// Step advances the match one frame and applies scoring policy to the
// returned goal code. The conceding side serves the next round.
func (m *Controller) Step(in1, in2 physics.Input) int {
	m.Tick++
	m.Events = m.Events[:0]

	goal := m.stepper.Step(&m.P1, &m.P2, &m.Ball, in1, in2)
	if goal == 0 || m.Ended {
		return goal
	}

	scorer := 3 - goal // ball in side N's pocket scores for the other side
	if scorer == 1 {
		m.Score1++
	} else {
		m.Score2++
	}
	m.Events = append(m.Events, Event{Type: "goal", Side: scorer})

	if m.Score1 >= m.TargetScore || m.Score2 >= m.TargetScore {
		m.endMatch(scorer)
		return goal
	}

	m.startRound(goal)
	return goal
}

func (m *Controller) startRound(serveSide int) {
	m.ServeSide = serveSide
	rng := m.stepper.Rng()
	m.P1.NewRound(rng, serveSide == 1)
	m.P2.NewRound(rng, serveSide == 2)
	m.Ball.NewRound(serveSide)
	m.Events = append(m.Events, Event{Type: "round_start", Side: serveSide})
}

func (m *Controller) endMatch(winner int) {
	m.Ended = true
	m.Winner = winner
	m.P1.GameEnded = true
	m.P2.GameEnded = true
	m.P1.IsWinner = winner == 1
	m.P2.IsWinner = winner == 2
	m.Events = append(m.Events, Event{Type: "match_end", Side: winner})
}
