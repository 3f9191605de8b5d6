package physics

import "math"

// stepBallWorld resolves the ball against static geometry (walls, ceiling,
// ground, goal roofs) and advances its position. Returns true when the
// ball touched the ground this frame, in which case the rest of the
// integration is skipped.
//
// The net pillar is deliberately absent here: only the landing forecaster
// models it, which keeps the AI's predictions imperfect around the middle
// of the arena.
func stepBallWorld(b *Ball) bool {
	b.PrevPrevPos = b.PrevPos
	b.PrevPos = b.Pos

	b.FineRotation += int(b.Vel[0]) / 2
	b.Rotation = (b.FineRotation/10%5 + 5) % 5

	nextX := b.Pos[0] + b.Vel[0]
	if nextX < BallRadius || nextX > ArenaWidth-BallRadius {
		b.Vel[0] = -b.Vel[0] * WallBounceDamp
	}

	if b.Pos[1]+b.Vel[1] < 0 {
		b.Vel[1] = 1
	}

	nextY := b.Pos[1] + b.Vel[1]
	if nextY > BallGroundY {
		b.Sound.TouchedGround = true
		b.Vel[1] = -b.Vel[1] * GroundBounceVY
		b.Pos[1] = BallGroundY
		b.Vel[0] *= GroundFrictionX
		b.IsPowerHit = false
		return true
	}

	if ballRoofResponse(b, nextY) {
		return false
	}

	b.Pos[1] = nextY
	b.Pos[0] += b.Vel[0]
	b.Vel[1]++
	return false
}

// ballRoofResponse checks the ball against both goal roofs. It reports
// true when it fully handled this frame's integration. Corner-vs-face is
// decided by penetration depth: the shallower axis is the contact face.
func ballRoofResponse(b *Ball, nextY float64) bool {
	depthY := GoalRoofHalfThickness + BallRadius - math.Abs(nextY-GoalRoofY)
	if depthY <= 0 {
		return false
	}

	// Horizontal penetration past the roof's inner edge, per side.
	depthXLeft := GoalWidth + BallRadius - b.Pos[0]
	depthXRight := b.Pos[0] - (ArenaWidth - GoalWidth - BallRadius)
	if depthXLeft <= 0 && depthXRight <= 0 {
		return false
	}

	depthX := depthXLeft
	faceX := GoalWidth + BallRadius
	if depthXRight > 0 {
		depthX = depthXRight
		faceX = ArenaWidth - GoalWidth - BallRadius
	}

	if depthX < depthY {
		// Face contact: horizontal response only, vertical untouched.
		b.Pos[0] = faceX
		b.Vel[0] = -FaceBlendReversed*b.Vel[0] + FaceBlendOriginal*b.Vel[0]
		b.Pos[1] = nextY
		return true
	}

	// Top or bottom contact: reflect vertically and snap just outside.
	if nextY <= GoalRoofY {
		b.Pos[1] = GoalRoofY - GoalRoofHalfThickness - BallRadius
	} else {
		b.Pos[1] = GoalRoofY + GoalRoofHalfThickness + BallRadius
	}
	b.Vel[1] = -b.Vel[1] * RoofBounceDamp
	b.PunchEffectX = b.Pos[0]
	b.PunchEffectY = GoalRoofY
	b.PunchEffectRadius = BallRadius
	b.Pos[0] += b.Vel[0]
	return true
}

// IsInGoalRange reports which goal pocket the ball is inside: 1 for the
// left (side 1) goal, 2 for the right, 0 for neither.
func IsInGoalRange(b *Ball) int {
	if b.Pos[1] <= GoalRoofY {
		return 0
	}
	if b.Pos[0] < GoalWidth-BallRadius {
		return 1
	}
	if b.Pos[0] > ArenaWidth-GoalWidth+BallRadius {
		return 2
	}
	return 0
}
