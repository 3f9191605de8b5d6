package physics

import "github.com/go-gl/mathgl/mgl64"

// State is the discrete per-player state machine. Transitions happen only
// inside stepPlayerMotion and the player-player separation rule.
type State uint8

const (
	StateNormal State = iota
	StateJumping
	StateJumpPowerHit
	StateDiving
	StateLyingDown
	StateWinner
	StateLoser
	StateFalling
)

func (s State) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateJumping:
		return "jumping"
	case StateJumpPowerHit:
		return "jump_power_hit"
	case StateDiving:
		return "diving"
	case StateLyingDown:
		return "lying_down"
	case StateWinner:
		return "winner"
	case StateLoser:
		return "loser"
	case StateFalling:
		return "falling"
	}
	return "unknown"
}

// PlayerSound holds the per-frame sound triggers for one player.
type PlayerSound struct {
	Chu       bool
	Pika      bool
	Pipikachu bool
}

// Player is one of the two avatars. Side and IsComputer are fixed for the
// match; everything else resets each round.
type Player struct {
	Side       int // 1 or 2, fixed for the player's lifetime
	IsComputer bool

	Pos  mgl64.Vec2
	VelY float64

	State           State
	DivingDirection int
	LyingDownCount  int

	// Serve hold: ball pinned to the player until the countdown runs out.
	Holding      bool
	HoldingCount int
	tossBoost    int // extra upward toss speed, set only by the AI

	GroundCooldown int // frames before a ground power hit is allowed again
	PowerHitDelay  int

	// AI tuning, re-rolled each round.
	Boldness    int // 0..4
	StandByBias int // 0 = stand by at own-side midpoint when ball is far

	IsWinner  bool
	GameEnded bool

	Sound PlayerSound

	// Rendering-only counters.
	FrameNumber          int
	DelayBeforeNextFrame int

	ballContact  bool // previous frame's contact state, for edge detection
	prevPowerHit int  // previous frame's PowerHit input, for edge triggering
}

// NewPlayer creates a player bound to a side for the whole match.
func NewPlayer(side int, isComputer bool, rng Rand) *Player {
	p := &Player{Side: side, IsComputer: isComputer}
	p.NewRound(rng, false)
	return p
}

// NewRound resets round-scoped state and re-rolls the AI boldness. The
// serving player starts holding the ball. Side, IsComputer and the win
// bookkeeping persist across rounds.
func (p *Player) NewRound(rng Rand, serving bool) {
	p.Pos = mgl64.Vec2{serveSpawnX(p.Side), PlayerGroundY}
	p.VelY = 0
	p.State = StateNormal
	p.DivingDirection = 0
	p.LyingDownCount = 0
	p.Holding = serving
	p.HoldingCount = 0
	if serving {
		p.HoldingCount = HoldingFrames
	}
	p.tossBoost = 0
	p.GroundCooldown = 0
	p.PowerHitDelay = 0
	p.Boldness = rng.Next() % 5
	p.StandByBias = 0
	p.Sound = PlayerSound{}
	p.FrameNumber = 0
	p.DelayBeforeNextFrame = 0
	p.ballContact = false
	p.prevPowerHit = 0
}

// opponentSide returns the other side's index.
func opponentSide(side int) int {
	if side == 1 {
		return 2
	}
	return 1
}

// onRestingHeight reports whether the player stands on the ground or on
// top of a goal roof.
func (p *Player) onRestingHeight() bool {
	if p.Pos[1] == PlayerGroundY {
		return true
	}
	return p.Pos[1] == GoalRoofRestY && overRoofSpan(p.Pos[0])
}

// overRoofSpan reports whether the player box at center x horizontally
// overlaps either roof ledge. Uses the same footprint as the roof clamp
// so a player held on the ledge always counts as resting there.
func overRoofSpan(x float64) bool {
	return x < GoalWidth+PlayerHalfWidth || x > ArenaWidth-GoalWidth-PlayerHalfWidth
}
