package physics

const (
	ArenaWidth  = 432.0
	ArenaHeight = 304.0

	BallRadius  = 20.0
	BallGroundY = 244.0 // ball center when resting on the ground line

	PlayerHalfWidth  = 32.0
	PlayerHalfHeight = 32.0
	PlayerGroundY    = 244.0

	// Each side wall carries a goal mouth protected by a short roof ledge.
	GoalWidth             = 64.0
	GoalRoofY             = 176.0
	GoalRoofHalfThickness = 8.0

	// Player resting height when standing on top of a goal roof.
	GoalRoofRestY = GoalRoofY - GoalRoofHalfThickness - PlayerHalfHeight

	// The net pillar exists only in the landing forecaster, not in the real
	// ball's world collision. The AI is meant to mispredict around it.
	NetPillarX         = ArenaWidth / 2
	NetPillarHalfWidth = 25.0
	NetPillarTopY      = 176.0
	NetPillarBottomY   = 192.0

	WallBounceDamp  = 0.6
	GroundBounceVY  = 0.8
	GroundFrictionX = 0.875
	RoofBounceDamp  = 0.6

	// Goal-roof face response: blend of reversed vs original horizontal
	// velocity. Net effect is vx -> -0.6*vx, so the sign always reverses.
	FaceBlendReversed = 0.8
	FaceBlendOriginal = 0.2

	WalkVelocityX   = 10.0
	DiveVelocityX   = 11.0
	JumpVelocityY   = -16.0
	DuckFallVY      = 12.0
	PowerHitBallVX  = 20.0
	PowerHitDelay   = 8
	GroundHitDelay  = 8
	LyingDownFrames = 3

	// Serve hold: ball pinned to the holder until the countdown runs out.
	HoldingFrames = 30
	HoldOffsetY   = 44.0
	TossVelocityX = 12.0
	TossVelocityY = -5.0

	// Height the AI wants to reach before releasing a serve toss.
	ServeReleaseY = 204.0

	MaxForecastIterations = 1000
)
