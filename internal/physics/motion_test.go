package physics

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// scriptRand replays a fixed sequence, then repeats the last value.
type scriptRand struct {
	seq []int
	i   int
}

func (r *scriptRand) Next() int {
	if r.i < len(r.seq) {
		v := r.seq[r.i]
		r.i++
		return v
	}
	if len(r.seq) == 0 {
		return 0
	}
	return r.seq[len(r.seq)-1]
}

func newTestPlayer(side int, boldness int) *Player {
	return NewPlayer(side, false, &scriptRand{seq: []int{boldness}})
}

func TestJumpFromGround(t *testing.T) {
	p := newTestPlayer(1, 2)
	b := NewBall(1)

	stepPlayerMotion(p, Input{YDirection: -1}, b)
	if p.State != StateJumping {
		t.Fatalf("state = %v, want jumping", p.State)
	}
	if p.Pos[1] != PlayerGroundY-16 {
		t.Fatalf("y = %f, want %f", p.Pos[1], PlayerGroundY-16)
	}
	if p.VelY != -15 {
		t.Fatalf("vy = %f, want -15 (jump impulse plus one gravity tick)", p.VelY)
	}
	if !p.Sound.Chu {
		t.Fatal("expected chu sound")
	}
}

func TestDuckWhileAirborneFallsAndLiesDown(t *testing.T) {
	p := newTestPlayer(1, 2)
	b := NewBall(1)

	stepPlayerMotion(p, Input{YDirection: -1}, b)
	stepPlayerMotion(p, Input{YDirection: 1, XDirection: 1}, b)
	if p.State != StateFalling {
		t.Fatalf("state = %v, want falling", p.State)
	}
	if p.DivingDirection != 1 {
		t.Fatalf("diving direction = %d, want 1", p.DivingDirection)
	}

	for i := 0; i < 10 && p.State == StateFalling; i++ {
		stepPlayerMotion(p, Input{}, b)
	}
	if p.State != StateLyingDown {
		t.Fatalf("state after landing = %v, want lying down", p.State)
	}
	if p.Pos[1] != PlayerGroundY {
		t.Fatalf("y after landing = %f, want %f", p.Pos[1], PlayerGroundY)
	}

	// Lying down freezes motion until the countdown runs past -1.
	for i := 0; i < 10 && p.State == StateLyingDown; i++ {
		stepPlayerMotion(p, Input{XDirection: 1}, b)
		if p.State == StateLyingDown && p.Pos[0] != serveSpawnX(1)+10 {
			t.Fatalf("lying player moved: x = %f", p.Pos[0])
		}
	}
	if p.State != StateNormal {
		t.Fatalf("state after lying down = %v, want normal", p.State)
	}
}

func TestWalkClampsToArena(t *testing.T) {
	p := newTestPlayer(1, 0)
	b := NewBall(1)

	for i := 0; i < 60; i++ {
		stepPlayerMotion(p, Input{XDirection: -1}, b)
	}
	if p.Pos[0] != PlayerHalfWidth {
		t.Fatalf("x = %f, want clamped to %f", p.Pos[0], PlayerHalfWidth)
	}

	for i := 0; i < 60; i++ {
		stepPlayerMotion(p, Input{XDirection: 1}, b)
	}
	if p.Pos[0] != ArenaWidth-PlayerHalfWidth {
		t.Fatalf("x = %f, want clamped to %f", p.Pos[0], ArenaWidth-PlayerHalfWidth)
	}
}

func TestGroundPowerHitNeedsNoHorizontalInputAndCooldown(t *testing.T) {
	p := newTestPlayer(1, 0)
	b := NewBall(1)

	stepPlayerMotion(p, Input{XDirection: 1, PowerHit: 1}, b)
	if p.State == StateJumpPowerHit {
		t.Fatal("power hit must not trigger with horizontal input from the ground")
	}

	stepPlayerMotion(p, Input{}, b)
	stepPlayerMotion(p, Input{PowerHit: 1}, b)
	if p.State != StateJumpPowerHit {
		t.Fatalf("state = %v, want jump power hit", p.State)
	}
	if p.GroundCooldown == 0 {
		t.Fatal("expected ground cooldown armed")
	}
	if !p.Sound.Pika {
		t.Fatal("expected pika sound")
	}

	// Holding the key must not retrigger once the state decays.
	for i := 0; i < PowerHitDelay; i++ {
		stepPlayerMotion(p, Input{PowerHit: 1}, b)
	}
	if p.State != StateNormal {
		t.Fatalf("state after decay = %v, want normal", p.State)
	}
}

func TestJumpPowerHitFromAir(t *testing.T) {
	p := newTestPlayer(1, 0)
	b := NewBall(1)

	stepPlayerMotion(p, Input{YDirection: -1}, b)
	stepPlayerMotion(p, Input{PowerHit: 1}, b)
	if p.State != StateJumpPowerHit {
		t.Fatalf("state = %v, want jump power hit", p.State)
	}
	if p.GroundCooldown != 0 {
		t.Fatal("air power hit must not arm the ground cooldown")
	}
}

func TestHoldingReleaseTossesBall(t *testing.T) {
	rng := &scriptRand{seq: []int{1}}
	p := NewPlayer(2, false, rng)
	p.NewRound(rng, true)
	b := NewBall(2)

	if !p.Holding || p.HoldingCount != HoldingFrames {
		t.Fatalf("expected serving player to hold for %d frames", HoldingFrames)
	}

	for i := 0; i < HoldingFrames-1; i++ {
		stepPlayerMotion(p, Input{}, b)
	}
	if !p.Holding {
		t.Fatal("released too early")
	}
	stepPlayerMotion(p, Input{}, b)
	if p.Holding {
		t.Fatal("expected release at countdown zero")
	}
	if b.Vel[0] != -TossVelocityX {
		t.Fatalf("toss vx = %f, want %f for side 2", b.Vel[0], -TossVelocityX)
	}
	if b.Vel[1] != TossVelocityY {
		t.Fatalf("toss vy = %f, want %f", b.Vel[1], TossVelocityY)
	}
	if !b.IsPowerHit {
		t.Fatal("expected power-hit flag on toss")
	}
	if b.Thrower != 2 {
		t.Fatalf("thrower = %d, want 2", b.Thrower)
	}
}

func TestRoofActsAsPlatform(t *testing.T) {
	p := newTestPlayer(1, 0)
	b := NewBall(1)

	// Drop the player from above the left roof.
	p.Pos = mgl64.Vec2{40, GoalRoofRestY - 30}
	p.State = StateJumping
	p.VelY = 0

	for i := 0; i < 20 && p.Pos[1] != GoalRoofRestY; i++ {
		stepPlayerMotion(p, Input{}, b)
	}
	if p.Pos[1] != GoalRoofRestY {
		t.Fatalf("y = %f, want resting on roof at %f", p.Pos[1], GoalRoofRestY)
	}

	// Standing on the roof counts as a resting height for a fresh jump.
	p.State = StateNormal
	p.VelY = 0
	stepPlayerMotion(p, Input{YDirection: -1}, b)
	if p.State != StateJumping {
		t.Fatalf("state = %v, want jumping off the roof", p.State)
	}
}

// The ledge footprint for resting is the clamp's box overlap, not just
// the roof span itself: a player whose center hangs past the span edge is
// still held on top and must be able to jump off again.
func TestRoofRestIsStableAcrossLedgeFootprint(t *testing.T) {
	for _, x := range []float64{50, 70, 90} {
		p := newTestPlayer(1, 0)
		b := NewBall(1)

		p.Pos = mgl64.Vec2{x, GoalRoofRestY - 30}
		p.State = StateJumping
		p.VelY = 0

		for i := 0; i < 20 && p.Pos[1] != GoalRoofRestY; i++ {
			stepPlayerMotion(p, Input{}, b)
		}
		if p.Pos[1] != GoalRoofRestY {
			t.Fatalf("x=%v: y = %f, want settled on roof at %f", x, p.Pos[1], GoalRoofRestY)
		}

		// Settled means settled: no vertical churn from gravity.
		for i := 0; i < 5; i++ {
			stepPlayerMotion(p, Input{}, b)
			if p.Pos[1] != GoalRoofRestY || p.VelY != 0 {
				t.Fatalf("x=%v frame %d: y=%f vy=%f, want steady rest", x, i, p.Pos[1], p.VelY)
			}
		}

		stepPlayerMotion(p, Input{YDirection: -1}, b)
		if p.State != StateJumping || !p.Sound.Chu {
			t.Fatalf("x=%v: state = %v (chu=%v), want a jump off the roof", x, p.State, p.Sound.Chu)
		}
		if p.Pos[1] != GoalRoofRestY-16 || p.VelY != -15 {
			t.Fatalf("x=%v: y=%f vy=%f after jump, want %f and -15", x, p.Pos[1], p.VelY, GoalRoofRestY-16)
		}
	}
}

func TestRoofFacePushesPlayerOut(t *testing.T) {
	p := newTestPlayer(1, 0)
	b := NewBall(1)

	// Airborne at roof height, walking into the left roof's inner edge.
	p.Pos = mgl64.Vec2{GoalWidth + PlayerHalfWidth + 5, GoalRoofY}
	p.State = StateJumping
	p.VelY = 0

	stepPlayerMotion(p, Input{XDirection: -1}, b)
	if p.Pos[0] != GoalWidth+PlayerHalfWidth {
		t.Fatalf("x = %f, want pushed out to %f", p.Pos[0], GoalWidth+PlayerHalfWidth)
	}
}

func TestGameEndTransitions(t *testing.T) {
	winner := newTestPlayer(1, 0)
	loser := newTestPlayer(2, 0)
	b := NewBall(1)

	winner.GameEnded = true
	winner.IsWinner = true
	loser.GameEnded = true

	stepPlayerMotion(winner, Input{}, b)
	stepPlayerMotion(loser, Input{}, b)
	if winner.State != StateWinner {
		t.Fatalf("winner state = %v", winner.State)
	}
	if !winner.Sound.Pipikachu {
		t.Fatal("expected celebratory sound")
	}
	if loser.State != StateLoser {
		t.Fatalf("loser state = %v", loser.State)
	}

	// Winner/loser no longer respond to movement input.
	x := winner.Pos[0]
	stepPlayerMotion(winner, Input{XDirection: 1}, b)
	if winner.Pos[0] != x {
		t.Fatal("winner moved after match end")
	}
}
