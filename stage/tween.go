package stage

import (
	"github.com/phanxgames/turtle"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Follower eases the displayed actor position and rotation toward the model
// after each command. The model itself always jumps; only the drawing lags.
//
// There is no global animation manager. The stage calls Update each tick.
type Follower struct {
	X, Y     float64
	Rotation float64

	Duration float32
	Ease     ease.TweenFunc

	tweens [3]*gween.Tween
	fields [3]*float64
	count  int

	target    turtle.Vec2
	targetRot float64
	Done      bool
}

// NewFollower creates a follower resting on the actor's current placement.
func NewFollower(a *turtle.Actor, duration float32, fn ease.TweenFunc) *Follower {
	if fn == nil {
		fn = ease.OutCubic
	}
	f := &Follower{Duration: duration, Ease: fn}
	f.Snap(a.Position(), a.Transform().Angle())
	return f
}

// Target returns the placement the follower is heading to.
func (f *Follower) Target() (turtle.Vec2, float64) {
	return f.target, f.targetRot
}

// Snap places the follower on pos and rot immediately.
func (f *Follower) Snap(pos turtle.Vec2, rot float64) {
	f.X, f.Y, f.Rotation = pos.X, pos.Y, rot
	f.target, f.targetRot = pos, rot
	f.count = 0
	f.Done = true
}

// Retarget starts easing from the displayed placement toward pos and rot.
// Without a positive Duration it snaps.
func (f *Follower) Retarget(pos turtle.Vec2, rot float64) {
	if pos == f.target && rot == f.targetRot {
		return
	}
	if f.Duration <= 0 {
		f.Snap(pos, rot)
		return
	}
	f.target, f.targetRot = pos, rot
	f.tweens[0] = gween.New(float32(f.X), float32(pos.X), f.Duration, f.Ease)
	f.tweens[1] = gween.New(float32(f.Y), float32(pos.Y), f.Duration, f.Ease)
	f.tweens[2] = gween.New(float32(f.Rotation), float32(rot), f.Duration, f.Ease)
	f.fields[0] = &f.X
	f.fields[1] = &f.Y
	f.fields[2] = &f.Rotation
	f.count = 3
	f.Done = false
}

// Update advances the tweens by dt seconds and writes the eased values.
// The last frame lands exactly on the target.
func (f *Follower) Update(dt float32) {
	if f.Done {
		return
	}
	allDone := true
	for i := 0; i < f.count; i++ {
		val, finished := f.tweens[i].Update(dt)
		*f.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	if allDone {
		f.Snap(f.target, f.targetRot)
	}
}
