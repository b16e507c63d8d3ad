package tui

import (
	"math"

	"github.com/vovakirdan/monkey-arcade/internal/core"
)

// glyphs maps each image to the cell it is drawn with. The background is
// handled separately so its scroll stays visible.
var glyphs = map[core.ImageID]core.Cell{
	core.ImageMonkey: {Rune: '█', Color: core.ColorOrange},
	core.ImageCloud:  {Rune: '▒', Color: core.ColorBrightWhite},
}

// starSpacing is the world distance between background dots.
const starSpacing = 40.0

// CellCanvas is a core.Canvas that scales world units onto a Screen.
type CellCanvas struct {
	screen         *core.Screen
	worldW, worldH float64
}

// NewCellCanvas wraps screen for a world of worldW x worldH units.
func NewCellCanvas(screen *core.Screen, worldW, worldH float64) *CellCanvas {
	return &CellCanvas{screen: screen, worldW: worldW, worldH: worldH}
}

// SetWorld changes the world size after a reconfigure.
func (c *CellCanvas) SetWorld(worldW, worldH float64) {
	c.worldW, c.worldH = worldW, worldH
}

func (c *CellCanvas) scale() (sx, sy float64) {
	return float64(c.screen.Width()) / c.worldW, float64(c.screen.Height()) / c.worldH
}

// cells converts a world rect to a cell span covering at least one cell.
func (c *CellCanvas) cells(r core.Rect) (x0, y0, x1, y1 int) {
	sx, sy := c.scale()
	x0 = int(math.Floor(r.X * sx))
	y0 = int(math.Floor(r.Y * sy))
	x1 = max(x0+1, int(math.Ceil(r.Right()*sx)))
	y1 = max(y0+1, int(math.Ceil(r.Bottom()*sy)))
	return x0, y0, x1, y1
}

// Clear implements core.Canvas.
func (c *CellCanvas) Clear() {
	c.screen.Clear()
}

// DrawImage implements core.Canvas.
func (c *CellCanvas) DrawImage(id core.ImageID, dst core.Rect) {
	if dst.W <= 0 || dst.H <= 0 {
		return
	}
	if id == core.ImageBackground {
		c.drawBackground(dst)
		return
	}

	cell, ok := glyphs[id]
	if !ok {
		cell = core.Cell{Rune: '?', Color: core.ColorGray}
	}
	x0, y0, x1, y1 := c.cells(dst)
	c.screen.DrawRect(x0, y0, x1-x0, y1-y0, cell.Rune, cell.Color)
}

// drawBackground scatters dots at fixed positions of the tile so the
// scroll offset shows as drift.
func (c *CellCanvas) drawBackground(dst core.Rect) {
	sx, sy := c.scale()
	for u := starSpacing / 2; u < dst.W; u += starSpacing {
		for v := starSpacing / 2; v < dst.H; v += starSpacing {
			col := int(u / starSpacing)
			row := int(v / starSpacing)
			if (col*7+row*3)%5 != 0 {
				continue
			}
			x := int(math.Floor((dst.X + u) * sx))
			y := int(math.Floor((dst.Y + v) * sy))
			c.screen.SetCell(x, y, '·', core.ColorGray)
		}
	}
}

// DrawText implements core.Canvas. Text is one cell high; black becomes
// bright white on the terminal.
func (c *CellCanvas) DrawText(text string, x, y float64, style core.TextStyle) {
	sx, sy := c.scale()
	col := style.Color
	if col == core.ColorBlack {
		col = core.ColorBrightWhite
	}
	c.screen.DrawText(int(math.Floor(x*sx)), int(math.Floor(y*sy)), text, col)
}
