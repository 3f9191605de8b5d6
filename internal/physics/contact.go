package physics

import "math"

// ballPlayerContact tests the ball circle against the player's hitbox.
// The box depends on the player's state: a wide low box while diving,
// falling or lying down, a tall box offset toward the arena middle
// otherwise. Flat-edge overlap accepts directly; corners are rounded.
func ballPlayerContact(b *Ball, p *Player) bool {
	var halfW, halfH, cx, cy float64
	switch p.State {
	case StateDiving, StateLyingDown, StateFalling:
		halfW, halfH = 24, 16
		cx, cy = p.Pos[0], p.Pos[1]+16
	default:
		halfW, halfH = 16, 24
		off := 12.0
		if p.Side == 2 {
			off = -12
		}
		cx, cy = p.Pos[0]+off, p.Pos[1]+4
	}

	dx := math.Abs(b.Pos[0] - cx)
	dy := math.Abs(b.Pos[1] - cy)
	if dx > halfW+BallRadius || dy > halfH+BallRadius {
		return false
	}
	if dx <= halfW || dy <= halfH {
		return true
	}
	cornerX := dx - halfW
	cornerY := dy - halfH
	return cornerX*cornerX+cornerY*cornerY <= BallRadius*BallRadius
}

// resolveBallPlayerCollision applies the hit response. Called only on a
// false-to-true contact edge.
func resolveBallPlayerCollision(b *Ball, p *Player, rng Rand) {
	diff := b.Pos[0] - p.Pos[0]
	vx := math.Floor(math.Abs(diff) / 4)
	if diff < 0 {
		vx = -vx
	}
	if vx == 0 {
		vx = float64(rng.Next()%3 - 1)
	}
	b.Vel[0] = vx
	b.Vel[1] = -math.Max(math.Abs(b.Vel[1]), 15)

	if p.State == StateJumpPowerHit {
		if p.Side == 1 {
			b.Vel[0] = PowerHitBallVX
		} else {
			b.Vel[0] = -PowerHitBallVX
		}
		b.Vel[1] = 0
		b.IsPowerHit = true
		b.Sound.PowerHit = true
		b.PunchEffectX = b.Pos[0]
		b.PunchEffectY = b.Pos[1]
		b.PunchEffectRadius = 2 * BallRadius
	}

	b.Thrower = p.Side
	b.ExpectedLandingX = ExpectedLandingX(b)
}

// resolvePlayerPlayerCollision separates two overlapping players. The
// dominant axis wins: mostly-horizontal overlap separates along x, the
// rest along y. Both players stay inside the arena and outside the goal
// roofs after separation.
func resolvePlayerPlayerCollision(p1, p2 *Player) {
	c1 := p1.Pos[0] - 8 // centers are offset 8px toward each own side
	c2 := p2.Pos[0] + 8
	dx := c2 - c1
	dy := p2.Pos[1] - p1.Pos[1]
	if math.Abs(dx) >= 32 || math.Abs(dy) >= 48 {
		return
	}

	if 2*math.Abs(dx)+1 > math.Abs(dy) {
		separateAlongX(p1, p2, c1, c2)
	} else {
		separateAlongY(p1, p2)
	}
}

func separateAlongX(p1, p2 *Player, c1, c2 float64) {
	avg := (c1 + c2) / 2
	left, right := p1, p2
	leftOff, rightOff := 8.0, -8.0
	if c2 < c1 {
		left, right = p2, p1
		leftOff, rightOff = -8.0, 8.0
	}
	left.Pos[0] = avg - 16 + leftOff
	right.Pos[0] = avg + 16 + rightOff

	clampPlayerX(left)
	clampPlayerX(right)
}

// clampPlayerX keeps a player inside the side walls and outside a roof's
// forced-inside band when at roof height.
func clampPlayerX(p *Player) {
	if p.Pos[0] < PlayerHalfWidth {
		p.Pos[0] = PlayerHalfWidth
	} else if p.Pos[0] > ArenaWidth-PlayerHalfWidth {
		p.Pos[0] = ArenaWidth - PlayerHalfWidth
	}
	if math.Abs(p.Pos[1]-GoalRoofY) < GoalRoofHalfThickness+PlayerHalfHeight {
		if p.Pos[0] < GoalWidth+PlayerHalfWidth {
			p.Pos[0] = GoalWidth + PlayerHalfWidth
		} else if p.Pos[0] > ArenaWidth-GoalWidth-PlayerHalfWidth {
			p.Pos[0] = ArenaWidth - GoalWidth - PlayerHalfWidth
		}
	}
}

func separateAlongY(p1, p2 *Player) {
	avg := (p1.Pos[1] + p2.Pos[1]) / 2
	top, bottom := p1, p2
	if p2.Pos[1] < p1.Pos[1] {
		top, bottom = p2, p1
	}
	top.Pos[1] = avg - 24
	bottom.Pos[1] = avg + 24

	// A player pressed down onto another stops diving and rejoins the
	// airborne state machine.
	if top.State == StateDiving || top.State == StateFalling {
		top.State = StateJumping
	}

	if top.Pos[1] < 0 {
		top.Pos[1] = 0
		top.VelY = 0
		bottom.VelY = 0
	}
	if bottom.Pos[1] > PlayerGroundY {
		bottom.Pos[1] = PlayerGroundY
		top.VelY = 0
		bottom.VelY = 0
	}
	clampPlayerRoofY(top, bottom)
	clampPlayerRoofY(bottom, top)
}

// clampPlayerRoofY rests a vertically-separated player just above or
// below a roof it was pushed into, zeroing both vertical velocities.
func clampPlayerRoofY(p, other *Player) {
	if !overRoofSpan(p.Pos[0]) {
		return
	}
	depth := GoalRoofHalfThickness + PlayerHalfHeight - math.Abs(p.Pos[1]-GoalRoofY)
	if depth <= 0 {
		return
	}
	if p.Pos[1] <= GoalRoofY {
		p.Pos[1] = GoalRoofRestY
	} else {
		p.Pos[1] = GoalRoofY + GoalRoofHalfThickness + PlayerHalfHeight
	}
	p.VelY = 0
	other.VelY = 0
}
