package physics

// Input is the per-player per-frame intent record. Human inputs come from
// a device layer; computer players synthesize their own each frame.
type Input struct {
	XDirection int // -1 left, 0 none, 1 right
	YDirection int // -1 up/jump, 0 none, 1 down/duck
	PowerHit   int // 0 or 1, edge-triggered against the previous frame
}

// ClampInput forces an arbitrary input into the valid range.
func ClampInput(in Input) Input {
	in.XDirection = clampDir(in.XDirection)
	in.YDirection = clampDir(in.YDirection)
	if in.PowerHit != 0 {
		in.PowerHit = 1
	}
	return in
}

func clampDir(d int) int {
	if d < -1 {
		return -1
	}
	if d > 1 {
		return 1
	}
	return d
}
