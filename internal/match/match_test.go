package match

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/nunuwillump/pikachu-soccer/internal/physics"
)

func forceBallIntoLeftPocket(m *Controller) {
	// Park the server away from the pocket and drop the hold so the ball
	// is free to sit inside the goal range.
	m.P1.Holding = false
	m.P1.HoldingCount = 0
	m.P1.Pos = mgl64.Vec2{150, physics.PlayerGroundY}
	m.Ball.Pos = mgl64.Vec2{30, 230}
	m.Ball.Vel = mgl64.Vec2{0, 0}
}

func TestGoalScoresForOpponentAndConcederServes(t *testing.T) {
	m := New(Config{Seed: 11, TargetScore: 2})
	forceBallIntoLeftPocket(m)

	goal := m.Step(physics.Input{}, physics.Input{})
	require.Equal(t, 1, goal)
	require.Equal(t, 0, m.Score1)
	require.Equal(t, 1, m.Score2)
	require.False(t, m.Ended)

	// Side 1 conceded and serves the next round.
	require.Equal(t, 1, m.ServeSide)
	require.True(t, m.P1.Holding)
	require.Equal(t, physics.HoldingFrames, m.P1.HoldingCount)
	require.False(t, m.P2.Holding)
	require.Equal(t, mgl64.Vec2{108, 200}, m.Ball.Pos)

	require.Equal(t, []Event{
		{Type: "goal", Side: 2},
		{Type: "round_start", Side: 1},
	}, m.Events)
}

func TestReachingTargetScoreEndsMatch(t *testing.T) {
	m := New(Config{Seed: 11, TargetScore: 2})

	forceBallIntoLeftPocket(m)
	m.Step(physics.Input{}, physics.Input{})
	require.Equal(t, 1, m.Score2)

	forceBallIntoLeftPocket(m)
	goal := m.Step(physics.Input{}, physics.Input{})
	require.Equal(t, 1, goal)
	require.Equal(t, 2, m.Score2)

	require.True(t, m.Ended)
	require.Equal(t, 2, m.Winner)
	require.True(t, m.P1.GameEnded)
	require.True(t, m.P2.GameEnded)
	require.False(t, m.P1.IsWinner)
	require.True(t, m.P2.IsWinner)
	require.Equal(t, []Event{
		{Type: "goal", Side: 2},
		{Type: "match_end", Side: 2},
	}, m.Events)

	// No new round starts after the match ends: the ball stays in the
	// pocket and further goal codes stop changing the score.
	require.Equal(t, 30.0, m.Ball.Pos[0])
	goal = m.Step(physics.Input{}, physics.Input{})
	require.Equal(t, 1, goal)
	require.True(t, m.Ended)
	require.Equal(t, 2, m.Score2)
}

func TestTargetScoreDefault(t *testing.T) {
	m := New(Config{Seed: 1})
	require.Equal(t, 15, m.TargetScore)
}

func TestSetComputerTogglesSides(t *testing.T) {
	m := New(Config{Seed: 1})
	require.False(t, m.P1.IsComputer)

	m.SetComputer(1, true)
	require.True(t, m.P1.IsComputer)
	m.SetComputer(2, true)
	require.True(t, m.P2.IsComputer)
	m.SetComputer(1, false)
	require.False(t, m.P1.IsComputer)
}

func TestSnapshotMirrorsMatchState(t *testing.T) {
	m := New(Config{Seed: 11, TargetScore: 2})
	forceBallIntoLeftPocket(m)
	m.Step(physics.Input{}, physics.Input{})

	snap := m.Snapshot("m-1")
	require.Equal(t, "m-1", snap.MatchID)
	require.Equal(t, uint64(1), snap.Tick)
	require.Equal(t, 0, snap.Score.Side1)
	require.Equal(t, 1, snap.Score.Side2)
	require.Equal(t, 1, snap.Score.ServeSide)
	require.False(t, snap.Ended)

	require.Equal(t, 1, snap.Players[0].Side)
	require.Equal(t, 2, snap.Players[1].Side)
	require.Equal(t, m.P1.Pos[0], snap.Players[0].Position.X)
	require.Equal(t, m.Ball.Pos[1], snap.Ball.Position.Y)
	require.Equal(t, "normal", snap.Players[0].State)

	require.Len(t, snap.Events, 2)
	require.Equal(t, "goal", snap.Events[0].Type)
	require.Equal(t, 2, snap.Events[0].Side)
}

func TestMatchDeterministicWithComputerPlayers(t *testing.T) {
	build := func() *Controller {
		return New(Config{Seed: 5, TargetScore: 3, P1Computer: true, P2Computer: true})
	}
	a, b := build(), build()
	for i := 0; i < 900; i++ {
		a.Step(physics.Input{}, physics.Input{})
		b.Step(physics.Input{}, physics.Input{})
	}
	require.Equal(t, a.Snapshot("x"), b.Snapshot("x"))
	require.Equal(t, a.Score1, b.Score1)
	require.Equal(t, a.Score2, b.Score2)
}
