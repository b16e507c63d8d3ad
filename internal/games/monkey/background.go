package monkey

import (
	"github.com/vovakirdan/monkey-arcade/internal/config"
	"github.com/vovakirdan/monkey-arcade/internal/core"
)

// Background is a canvas-sized tile drawn twice side by side and scrolled
// left at a fraction of the live game speed.
type Background struct {
	X      float64
	Width  float64
	Height float64
	ratio  float64
}

// NewBackground creates a background at offset zero.
func NewBackground(cfg config.BackgroundConfig, canvas config.CanvasConfig) *Background {
	return &Background{
		Width:  canvas.Width,
		Height: canvas.Height,
		ratio:  cfg.SpeedRatio,
	}
}

// Update scrolls by speed*ratio and wraps once a whole tile has passed.
func (b *Background) Update(speed float64) {
	b.X -= speed * b.ratio
	if b.X <= -b.Width {
		b.X = 0
	}
}

// Draw paints both tiles.
func (b *Background) Draw(c core.Canvas) {
	c.DrawImage(core.ImageBackground, core.NewRect(b.X, 0, b.Width, b.Height))
	c.DrawImage(core.ImageBackground, core.NewRect(b.X+b.Width, 0, b.Width, b.Height))
}
