package match

import (
	"github.com/nunuwillump/pikachu-soccer/internal/physics"
	"github.com/nunuwillump/pikachu-soccer/internal/shared/types"
)

// Snapshot builds the replicated view of the current frame for the
// rendering and audio collaborators. It reads physics state and never
// mutates it.
func (m *Controller) Snapshot(matchID string) types.MatchSnapshot {
	snap := types.MatchSnapshot{
		MatchID: matchID,
		Tick:    m.Tick,
		Players: [2]types.PlayerState{
			playerState(&m.P1),
			playerState(&m.P2),
		},
		Ball: ballState(&m.Ball),
		Score: types.ScoreState{
			Side1:     m.Score1,
			Side2:     m.Score2,
			ServeSide: m.ServeSide,
		},
		Ended:  m.Ended,
		Winner: m.Winner,
	}
	if len(m.Events) > 0 {
		snap.Events = make([]types.GameplayEvent, 0, len(m.Events))
		for _, ev := range m.Events {
			snap.Events = append(snap.Events, types.GameplayEvent{Type: ev.Type, Side: ev.Side})
		}
	}
	return snap
}

func playerState(p *physics.Player) types.PlayerState {
	return types.PlayerState{
		Side:            p.Side,
		IsComputer:      p.IsComputer,
		Position:        types.Vec2{X: p.Pos[0], Y: p.Pos[1]},
		VelocityY:       p.VelY,
		State:           p.State.String(),
		DivingDirection: p.DivingDirection,
		Holding:         p.Holding,
		FrameNumber:     p.FrameNumber,
		SoundChu:        p.Sound.Chu,
		SoundPika:       p.Sound.Pika,
		SoundPipikachu:  p.Sound.Pipikachu,
	}
}

func ballState(b *physics.Ball) types.BallState {
	return types.BallState{
		Position:           types.Vec2{X: b.Pos[0], Y: b.Pos[1]},
		Velocity:           types.Vec2{X: b.Vel[0], Y: b.Vel[1]},
		IsPowerHit:         b.IsPowerHit,
		Rotation:           b.Rotation,
		PrevPosition:       types.Vec2{X: b.PrevPos[0], Y: b.PrevPos[1]},
		PrevPrevPosition:   types.Vec2{X: b.PrevPrevPos[0], Y: b.PrevPrevPos[1]},
		PunchEffectX:       b.PunchEffectX,
		PunchEffectY:       b.PunchEffectY,
		PunchEffectRadius:  b.PunchEffectRadius,
		SoundTouchedGround: b.Sound.TouchedGround,
		SoundPowerHit:      b.Sound.PowerHit,
	}
}
