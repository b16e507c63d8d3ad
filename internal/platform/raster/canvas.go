// Package raster renders frames into an in-memory RGBA image. It backs
// screenshots and the snapshot command.
package raster

import (
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/monkey-arcade/internal/core"
)

// ImageSource provides images already resized to a destination rectangle.
type ImageSource interface {
	Scaled(id core.ImageID, w, h int) (image.Image, bool)
}

// Canvas is a core.Canvas drawing into a gg context of fixed size.
type Canvas struct {
	dc  *gg.Context
	src ImageSource
}

// NewCanvas creates a width x height canvas. src may be nil, in which case
// images are drawn as flat boxes.
func NewCanvas(width, height int, src ImageSource) *Canvas {
	dc := gg.NewContext(width, height)
	dc.SetFontFace(basicfont.Face7x13)
	return &Canvas{dc: dc, src: src}
}

// Clear implements core.Canvas.
func (c *Canvas) Clear() {
	c.dc.SetRGB(1, 1, 1)
	c.dc.Clear()
}

// DrawImage implements core.Canvas.
func (c *Canvas) DrawImage(id core.ImageID, dst core.Rect) {
	w := int(math.Round(dst.W))
	h := int(math.Round(dst.H))
	if w <= 0 || h <= 0 {
		return
	}
	x := int(math.Round(dst.X))
	y := int(math.Round(dst.Y))

	if c.src != nil {
		if img, ok := c.src.Scaled(id, w, h); ok {
			c.dc.DrawImage(img, x, y)
			return
		}
	}
	c.dc.SetRGB(0.5, 0.5, 0.5)
	c.dc.DrawRectangle(float64(x), float64(y), float64(w), float64(h))
	c.dc.Fill()
}

// DrawText implements core.Canvas. The bitmap face is scaled so its line
// height matches style.Size.
func (c *Canvas) DrawText(text string, x, y float64, style core.TextStyle) {
	r, g, b := style.Color.RGB()
	c.dc.Push()
	defer c.dc.Pop()

	c.dc.Translate(x, y)
	if style.Size > 0 {
		s := style.Size / float64(basicfont.Face7x13.Height)
		c.dc.Scale(s, s)
	}
	c.dc.SetRGB255(int(r), int(g), int(b))
	c.dc.DrawStringAnchored(text, 0, 0, 0, 1)
}

// Image returns the current frame.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the current frame to path, creating parent directories.
func (c *Canvas) SavePNG(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("raster: create dir: %w", err)
	}
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("raster: save %s: %w", path, err)
	}
	return nil
}
