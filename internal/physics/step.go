// Package physics implements the deterministic fixed-step simulation core
// for a 2-player sports arcade match: one ball, two avatars and a goal
// structure at each side wall. Every step mutates the aggregate in place
// in a strict order; identical seeds and input sequences reproduce
// bit-identical state.
package physics

// Stepper advances the match aggregate one frame at a time. It owns no
// entity state, only the shared random stream.
type Stepper struct {
	rng Rand
}

// NewStepper wires the stepper to the match-wide random stream.
func NewStepper(rng Rand) *Stepper {
	return &Stepper{rng: rng}
}

// Rng exposes the shared stream for collaborators that roll outside the
// frame step (round resets re-roll AI boldness).
func (s *Stepper) Rng() Rand {
	return s.rng
}

// Step runs one simulated frame. The intra-frame order is the correctness
// contract for simultaneous contacts and must not change:
//
//  1. ball vs world, clearing the thrower on ground touch
//  2. per player in side order: forecast refresh, AI input, motion
//  3. per player in side order: contact edge handling, then the holding
//     override pinning the ball to its holder
//  4. player vs player separation on final positions
//
// Returns 0, or 1/2 identifying which side's goal pocket the ball is in.
func (s *Stepper) Step(p1, p2 *Player, b *Ball, in1, in2 Input) int {
	b.Sound = BallSound{}
	p1.Sound = PlayerSound{}
	p2.Sound = PlayerSound{}

	if stepBallWorld(b) {
		b.Thrower = 0
	}

	players := [2]*Player{p1, p2}
	inputs := [2]Input{ClampInput(in1), ClampInput(in2)}

	for i, p := range players {
		b.ExpectedLandingX = ExpectedLandingX(b)
		if p.IsComputer {
			inputs[i] = decideComputerInput(p, players[1-i], b, s.rng)
		}
		stepPlayerMotion(p, inputs[i], b)
	}

	for i, p := range players {
		other := players[1-i]
		contact := ballPlayerContact(b, p)
		risingEdge := contact && !p.ballContact
		p.ballContact = contact

		if risingEdge && !p.Holding {
			if p.IsComputer && !other.Holding &&
				(b.Thrower != other.Side || s.rng.Next()%3 > 0) {
				p.Holding = true
				p.HoldingCount = HoldingFrames
			} else {
				resolveBallPlayerCollision(b, p, s.rng)
			}
		}
	}

	// The holding override wins over any collision result this frame.
	for _, p := range players {
		if p.Holding {
			b.Pos[0] = p.Pos[0]
			b.Pos[1] = p.Pos[1] - HoldOffsetY
			b.Vel[0] = 0
			b.Vel[1] = 0
		}
	}

	resolvePlayerPlayerCollision(p1, p2)

	return IsInGoalRange(b)
}
