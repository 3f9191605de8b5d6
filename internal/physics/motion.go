package physics

import "math"

// stepPlayerMotion resolves one player's per-frame motion and discrete
// state transitions. Rules are evaluated in a fixed priority order; the
// order is part of the determinism contract.
func stepPlayerMotion(p *Player, in Input, b *Ball) {
	powerHitEdge := in.PowerHit == 1 && p.prevPowerHit == 0
	p.prevPowerHit = in.PowerHit

	if p.GroundCooldown > 0 {
		p.GroundCooldown--
	}

	if p.Holding {
		p.HoldingCount--
		if p.HoldingCount <= 0 {
			releaseHeldBall(p, b)
		}
	}

	// Lying down freezes everything else until the countdown expires.
	if p.State == StateLyingDown {
		p.LyingDownCount--
		if p.LyingDownCount < -1 {
			p.State = StateNormal
		}
		return
	}

	var velX float64
	switch p.State {
	case StateDiving:
		velX = float64(p.DivingDirection) * DiveVelocityX
	case StateWinner, StateLoser:
		velX = 0
	default:
		velX = float64(in.XDirection) * WalkVelocityX
	}
	p.Pos[0] += velX
	if p.Pos[0] < PlayerHalfWidth {
		p.Pos[0] = PlayerHalfWidth
	} else if p.Pos[0] > ArenaWidth-PlayerHalfWidth {
		p.Pos[0] = ArenaWidth - PlayerHalfWidth
	}

	if (p.State == StateNormal || p.State == StateJumping) &&
		in.YDirection == -1 && p.VelY == 0 && p.onRestingHeight() {
		p.VelY = JumpVelocityY
		p.State = StateJumping
		p.GroundCooldown = 0
		p.FrameNumber = 0
		p.Sound.Chu = true
	}

	if (p.State == StateNormal || p.State == StateJumping) &&
		in.YDirection == 1 && !p.onRestingHeight() {
		p.VelY = DuckFallVY
		p.State = StateFalling
		p.DivingDirection = in.XDirection
		p.FrameNumber = 0
		p.Sound.Chu = true
	}

	p.Pos[1] += p.VelY
	if p.Pos[1] < 0 {
		p.Pos[1] = 0
		p.VelY = 0
	}
	if p.Pos[1] < PlayerGroundY {
		// A roof ledge is a resting surface like the ground; gravity must
		// not pull a settled player back into the clamp every other frame.
		if !p.onRestingHeight() {
			p.VelY++
		}
	} else if p.Pos[1] > PlayerGroundY {
		// Landing.
		p.VelY = 0
		p.Pos[1] = PlayerGroundY
		p.GroundCooldown = 0
		p.FrameNumber = 0
		if p.State == StateDiving || p.State == StateFalling {
			p.State = StateLyingDown
			p.LyingDownCount = LyingDownFrames
		} else if p.State != StateWinner && p.State != StateLoser {
			p.State = StateNormal
		}
	}

	playerRoofResponse(p)

	if powerHitEdge {
		if p.State == StateJumping {
			p.State = StateJumpPowerHit
			p.PowerHitDelay = PowerHitDelay
			p.FrameNumber = 0
			p.Sound.Pika = true
		} else if p.State == StateNormal && in.XDirection == 0 && p.GroundCooldown == 0 {
			p.State = StateJumpPowerHit
			p.PowerHitDelay = PowerHitDelay
			p.GroundCooldown = GroundHitDelay
			p.FrameNumber = 0
			p.Sound.Pika = true
		}
	}

	if p.State == StateJumpPowerHit {
		p.PowerHitDelay--
		if p.PowerHitDelay < 1 {
			if p.onRestingHeight() {
				p.State = StateNormal
			} else {
				p.State = StateJumping
			}
		}
	}

	advanceAnimation(p)

	if p.GameEnded && p.State == StateNormal {
		if p.IsWinner {
			p.State = StateWinner
			p.Sound.Pipikachu = true
		} else {
			p.State = StateLoser
		}
		p.FrameNumber = 0
		p.DelayBeforeNextFrame = 0
	}
}

// releaseHeldBall tosses the ball up-field and clears the hold.
func releaseHeldBall(p *Player, b *Ball) {
	p.Holding = false
	p.HoldingCount = 0
	vx := TossVelocityX
	if p.Side == 2 {
		vx = -TossVelocityX
	}
	b.Vel[0] = vx
	b.Vel[1] = TossVelocityY - float64(p.tossBoost)
	b.IsPowerHit = true
	b.Thrower = p.Side
	p.tossBoost = 0
}

// playerRoofResponse resolves the player box against both goal roofs.
// Like the ball's rule, the shallower penetration axis is the contact
// face: running into the ledge's inner edge pushes the player out of the
// forced-inside band horizontally, otherwise the ledge acts as a platform.
func playerRoofResponse(p *Player) {
	depthY := GoalRoofHalfThickness + PlayerHalfHeight - math.Abs(p.Pos[1]-GoalRoofY)
	if depthY <= 0 {
		return
	}

	depthXLeft := GoalWidth + PlayerHalfWidth - p.Pos[0]
	depthXRight := p.Pos[0] - (ArenaWidth - GoalWidth - PlayerHalfWidth)
	if depthXLeft <= 0 && depthXRight <= 0 {
		return
	}

	depthX := depthXLeft
	faceX := GoalWidth + PlayerHalfWidth
	if depthXRight > 0 {
		depthX = depthXRight
		faceX = ArenaWidth - GoalWidth - PlayerHalfWidth
	}

	if depthX < depthY {
		p.Pos[0] = faceX
		return
	}

	if p.Pos[1] <= GoalRoofY {
		// Rest on top: the roof is a valid standing height.
		p.Pos[1] = GoalRoofRestY
		p.VelY = 0
		return
	}

	// Hit from below: redirect downward and land-transition.
	p.Pos[1] = GoalRoofY + GoalRoofHalfThickness + PlayerHalfHeight
	if p.VelY < 0 {
		p.VelY = 0
	}
	if p.State == StateDiving || p.State == StateFalling {
		p.State = StateLyingDown
		p.LyingDownCount = LyingDownFrames
	} else if p.State != StateWinner && p.State != StateLoser {
		p.State = StateNormal
	}
}

// advanceAnimation drives the rendering-only frame counters.
func advanceAnimation(p *Player) {
	switch p.State {
	case StateJumping:
		p.FrameNumber = (p.FrameNumber + 1) % 3
	case StateJumpPowerHit:
		p.FrameNumber = (p.FrameNumber + 1) % 5
	case StateWinner, StateLoser:
		// Slow, non-physical frame advance after the match ends.
		p.DelayBeforeNextFrame++
		if p.DelayBeforeNextFrame > 4 {
			p.DelayBeforeNextFrame = 0
			p.FrameNumber = (p.FrameNumber + 1) % 5
		}
	}
}
