package physics

import "github.com/go-gl/mathgl/mgl64"

// BallSound holds the per-frame sound triggers derived for the audio
// collaborator. Cleared at the start of every step.
type BallSound struct {
	TouchedGround bool
	PowerHit      bool
}

// Ball is the single match ball. Position and velocity are authoritative
// physics state; rotation, trail and punch-effect fields are write-only
// outputs for the renderer.
type Ball struct {
	Pos mgl64.Vec2
	Vel mgl64.Vec2

	// ExpectedLandingX caches the forecaster result for AI decisions.
	ExpectedLandingX float64

	// Thrower identifies the side that last legitimately introduced the
	// ball (0 none, 1, 2). Arbitrates simultaneous double-touch.
	Thrower int

	IsPowerHit bool
	Sound      BallSound

	Rotation     int
	FineRotation int
	PrevPos      mgl64.Vec2
	PrevPrevPos  mgl64.Vec2

	PunchEffectX      float64
	PunchEffectY      float64
	PunchEffectRadius float64
}

// NewBall creates the match ball positioned for the given serving side.
func NewBall(serveSide int) *Ball {
	b := &Ball{}
	b.NewRound(serveSide)
	return b
}

// NewRound resets kinematics for a serve. The serving player's holding
// override will pin the ball from the first step onward.
func (b *Ball) NewRound(serveSide int) {
	x := serveSpawnX(1)
	if serveSide == 2 {
		x = serveSpawnX(2)
	}
	b.Pos = mgl64.Vec2{x, PlayerGroundY - HoldOffsetY}
	b.Vel = mgl64.Vec2{}
	b.ExpectedLandingX = x
	b.Thrower = 0
	b.IsPowerHit = false
	b.Sound = BallSound{}
	b.PrevPos = b.Pos
	b.PrevPrevPos = b.Pos
	b.PunchEffectRadius = 0
}

func serveSpawnX(side int) float64 {
	if side == 2 {
		return ArenaWidth - ArenaWidth/4
	}
	return ArenaWidth / 4
}
