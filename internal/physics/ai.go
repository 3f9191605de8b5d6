package physics

import "math"

// decideComputerInput synthesizes this frame's input for a computer
// player. Decisions are independent per player but always computed in
// side order, so the shared stream stays reproducible.
func decideComputerInput(p, other *Player, b *Ball, rng Rand) Input {
	var in Input

	target := b.ExpectedLandingX
	if math.Abs(b.Pos[0]-p.Pos[0]) > 100 &&
		math.Abs(b.Vel[0]) < float64(p.Boldness+5) &&
		p.StandByBias == 0 {
		target = ownSideMidX(p.Side)
	}

	if math.Abs(target-p.Pos[0]) > float64(p.Boldness+8) {
		if p.Pos[0] < target {
			in.XDirection = 1
		} else {
			in.XDirection = -1
		}
	} else if rng.Next()%20 == 0 {
		p.StandByBias = rng.Next() % 2
	}

	if p.State == StateNormal {
		if math.Abs(b.Vel[0]) < float64(p.Boldness+8) &&
			math.Abs(b.Pos[0]-p.Pos[0]) < PlayerHalfWidth &&
			b.Pos[1] > -36 && b.Pos[1] < float64(10*p.Boldness+84) &&
			b.Vel[1] > 0 {
			in.YDirection = -1
		}
	}

	if p.Holding {
		// Charge the toss upward, then release from altitude.
		in.YDirection = -1
		if p.Pos[1] < ServeReleaseY && rng.Next()%10 == 0 {
			p.HoldingCount = 0
			p.tossBoost = rng.Next() % 8
		}
	}

	if p.State == StateJumping || p.State == StateJumpPowerHit {
		if math.Abs(b.Pos[0]-p.Pos[0]) > 8 {
			if p.Pos[0] < b.Pos[0] {
				in.XDirection = 1
			} else {
				in.XDirection = -1
			}
		}
		if p.State == StateJumping && shouldPowerHit(p, b) {
			in.PowerHit = 1
		}
	}

	return in
}

// shouldPowerHit evaluates a hypothetical power hit toward the opponent
// and commits when the forecast lands deep in the opponent half.
func shouldPowerHit(p *Player, b *Ball) bool {
	if math.Abs(b.Pos[0]-p.Pos[0]) > 2*PlayerHalfWidth ||
		math.Abs(b.Pos[1]-p.Pos[1]) > 48 {
		return false
	}
	xDir := 1
	if p.Side == 2 {
		xDir = -1
	}
	for _, yDir := range []int{0, 1} {
		landing := ExpectedLandingXIfPowerHit(b, xDir, yDir)
		if p.Side == 1 && landing > ArenaWidth-ArenaWidth/4 {
			return true
		}
		if p.Side == 2 && landing < ArenaWidth/4 {
			return true
		}
	}
	return false
}

// ownSideMidX is the stand-by position: the midpoint of the player's own
// half of the arena.
func ownSideMidX(side int) float64 {
	if side == 2 {
		return ArenaWidth - ArenaWidth/4
	}
	return ArenaWidth / 4
}
