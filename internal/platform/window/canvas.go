package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"github.com/vovakirdan/monkey-arcade/internal/core"
)

// imageCanvas is a core.Canvas drawing onto an ebiten image.
type imageCanvas struct {
	dst    *ebiten.Image
	images map[core.ImageID]*ebiten.Image
}

func (c *imageCanvas) Clear() {
	c.dst.Fill(color.White)
}

func (c *imageCanvas) DrawImage(id core.ImageID, r core.Rect) {
	img, ok := c.images[id]
	if !ok || r.W <= 0 || r.H <= 0 {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(r.W/float64(b.Dx()), r.H/float64(b.Dy()))
	op.GeoM.Translate(r.X, r.Y)
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(img, op)
}

// DrawText scales the bitmap face so its line height equals style.Size.
// (x, y) is the top-left of the text.
func (c *imageCanvas) DrawText(s string, x, y float64, style core.TextStyle) {
	face := basicfont.Face7x13
	scale := 1.0
	if style.Size > 0 {
		scale = style.Size / float64(face.Height)
	}
	r, g, b := style.Color.RGB()

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y+float64(face.Ascent)*scale)
	op.ColorScale.ScaleWithColor(color.RGBA{R: r, G: g, B: b, A: 0xff})
	text.DrawWithOptions(c.dst, s, face, op)
}
