package monkey

import (
	"github.com/vovakirdan/monkey-arcade/internal/config"
	"github.com/vovakirdan/monkey-arcade/internal/core"
)

// Actor is the monkey: fixed x, vertical physics only.
type Actor struct {
	X, Y     float64
	Velocity float64
	Width    float64
	Height   float64

	gravity float64
	lift    float64
	damping float64
	floor   float64 // canvasHeight - Height
}

// NewActor places the actor vertically centered on the canvas.
func NewActor(cfg config.ActorConfig, canvasH float64) *Actor {
	a := &Actor{}
	a.configure(cfg, canvasH)
	a.Reset()
	return a
}

func (a *Actor) configure(cfg config.ActorConfig, canvasH float64) {
	a.X = cfg.X
	a.Width = cfg.Width
	a.Height = cfg.Height
	a.gravity = cfg.Gravity
	a.lift = cfg.Lift
	a.damping = cfg.Damping
	a.floor = canvasH - cfg.Height
}

// Jump adds the lift impulse to the current velocity.
func (a *Actor) Jump() {
	a.Velocity += a.lift
}

// Update integrates one frame of gravity and damping, then clamps y into
// [0, canvasHeight-Height], zeroing velocity when a clamp applies.
func (a *Actor) Update() {
	a.Velocity += a.gravity
	a.Velocity *= a.damping
	a.Y += a.Velocity

	if a.Y > a.floor {
		a.Y = a.floor
		a.Velocity = 0
	}
	if a.Y < 0 {
		a.Y = 0
		a.Velocity = 0
	}
}

// Reset recenters the actor and stops it.
func (a *Actor) Reset() {
	a.Y = (a.floor+a.Height)/2 - a.Height/2
	a.Velocity = 0
}

// Rect returns the actor's bounding box.
func (a *Actor) Rect() core.Rect {
	return core.NewRect(a.X, a.Y, a.Width, a.Height)
}

// Draw paints the actor.
func (a *Actor) Draw(c core.Canvas) {
	c.DrawImage(core.ImageMonkey, a.Rect())
}
