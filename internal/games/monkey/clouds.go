package monkey

import (
	"math/rand"

	"github.com/vovakirdan/monkey-arcade/internal/config"
	"github.com/vovakirdan/monkey-arcade/internal/core"
)

// Obstacle is a cloud pair: one cloud hugging the top edge, one hugging the
// bottom edge, sharing x and size.
type Obstacle struct {
	X       float64
	Speed   float64 // Captured at spawn; later ramp changes do not apply
	Scale   float64
	Width   float64
	Height  float64
	TopY    float64
	BottomY float64
}

// NewObstacle builds a cloud pair at x scaled from the base cloud size.
func NewObstacle(x, speed, scale, baseW, baseH, canvasH float64) Obstacle {
	w := baseW * scale
	h := baseH * scale
	return Obstacle{
		X:       x,
		Speed:   speed,
		Scale:   scale,
		Width:   w,
		Height:  h,
		TopY:    0,
		BottomY: canvasH - h,
	}
}

// TopRect returns the bounding box of the top cloud.
func (o Obstacle) TopRect() core.Rect {
	return core.NewRect(o.X, o.TopY, o.Width, o.Height)
}

// BottomRect returns the bounding box of the bottom cloud.
func (o Obstacle) BottomRect() core.Rect {
	return core.NewRect(o.X, o.BottomY, o.Width, o.Height)
}

// Right returns the x-coordinate of the pair's right edge.
func (o Obstacle) Right() float64 {
	return o.X + o.Width
}

// SizeSource reports the natural size of an image once it is known.
type SizeSource interface {
	ImageSize(id core.ImageID) (w, h int, ok bool)
}

// ObstacleField owns the live cloud pairs in spawn order, which is also
// left-to-right screen order.
type ObstacleField struct {
	obstacles []Obstacle
	rng       *rand.Rand
	sizes     SizeSource
	cfg       config.ObstacleConfig
	canvasW   float64
	canvasH   float64
}

// NewObstacleField creates an empty field.
func NewObstacleField(rng *rand.Rand, cfg config.ObstacleConfig, canvas config.CanvasConfig, sizes SizeSource) *ObstacleField {
	return &ObstacleField{
		obstacles: make([]Obstacle, 0, 8),
		rng:       rng,
		sizes:     sizes,
		cfg:       cfg,
		canvasW:   canvas.Width,
		canvasH:   canvas.Height,
	}
}

// MaybeSpawn appends a new pair when frame lands on the spawn cadence.
// Reports whether it spawned.
func (f *ObstacleField) MaybeSpawn(frame int, speed float64) bool {
	if frame%f.cfg.SpawnInterval != 0 {
		return false
	}
	f.Spawn(speed)
	return true
}

// Spawn appends a pair at the right edge of the canvas moving at speed.
func (f *ObstacleField) Spawn(speed float64) {
	baseW, baseH := f.baseSize()
	scale := f.rng.Float64()*f.cfg.ScaleRange + f.cfg.MinScale
	f.obstacles = append(f.obstacles, NewObstacle(f.canvasW, speed, scale, baseW, baseH, f.canvasH))
}

// baseSize is the cloud image size, or the configured fallback while the
// image has not resolved.
func (f *ObstacleField) baseSize() (float64, float64) {
	if f.sizes != nil {
		if w, h, ok := f.sizes.ImageSize(core.ImageCloud); ok && w > 0 && h > 0 {
			return float64(w), float64(h)
		}
	}
	return f.cfg.BaseWidth, f.cfg.BaseHeight
}

// Update advances every pair by its own speed, then drops pairs whose right
// edge has passed the left side of the canvas.
func (f *ObstacleField) Update() {
	for i := range f.obstacles {
		f.obstacles[i].X -= f.obstacles[i].Speed
	}

	kept := f.obstacles[:0]
	for _, o := range f.obstacles {
		if o.Right() >= 0 {
			kept = append(kept, o)
		}
	}
	f.obstacles = kept
}

// Obstacles returns the live pairs, oldest first.
func (f *ObstacleField) Obstacles() []Obstacle {
	return f.obstacles
}

// Len returns the number of live pairs.
func (f *ObstacleField) Len() int {
	return len(f.obstacles)
}

// Reset removes every pair.
func (f *ObstacleField) Reset() {
	f.obstacles = f.obstacles[:0]
}

// Draw paints the top and bottom cloud of each pair, left to right.
func (f *ObstacleField) Draw(c core.Canvas) {
	for _, o := range f.obstacles {
		c.DrawImage(core.ImageCloud, o.TopRect())
		c.DrawImage(core.ImageCloud, o.BottomRect())
	}
}
