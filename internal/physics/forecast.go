package physics

import "math"

// ExpectedLandingX forward-simulates an isolated copy of the ball until it
// would cross the ground line and returns the landing x. Pure: the ball is
// never mutated and two calls on the same snapshot agree.
//
// Unlike the real world collision this simulation bounces off the net
// pillar in the middle of the arena. The mismatch is intentional and the
// AI inherits the resulting prediction error.
func ExpectedLandingX(b *Ball) float64 {
	return forecastLandingX(b.Pos[0], b.Pos[1], b.Vel[0], b.Vel[1])
}

// ExpectedLandingXIfPowerHit forecasts where the ball would land if it
// were power-hit right now toward (xDir, yDir). Used by the AI to evaluate
// candidate hits before committing.
func ExpectedLandingXIfPowerHit(b *Ball, xDir, yDir int) float64 {
	vx := b.Vel[0]
	if xDir != 0 {
		vx = float64(xDir) * PowerHitBallVX
	}
	vy := float64(yDir) * 15
	return forecastLandingX(b.Pos[0], b.Pos[1], vx, vy)
}

func forecastLandingX(x, y, vx, vy float64) float64 {
	// The cap is a termination guarantee, not a tuning knob; reachable
	// velocity states land well before it.
	for i := 0; i < MaxForecastIterations; i++ {
		nextX := x + vx
		if nextX < BallRadius || nextX > ArenaWidth-BallRadius {
			vx = -vx * WallBounceDamp
		}
		if y+vy < 0 {
			vy = 1
		}
		if math.Abs(x-NetPillarX) < NetPillarHalfWidth+BallRadius && y > NetPillarTopY-BallRadius {
			if y <= NetPillarBottomY {
				if vy > 0 {
					vy = -vy
				}
			} else {
				if x < NetPillarX {
					vx = -math.Abs(vx)
				} else {
					vx = math.Abs(vx)
				}
			}
		}
		y += vy
		if y > BallGroundY {
			break
		}
		x += vx
		vy++
	}
	return x
}
