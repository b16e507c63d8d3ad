package assets

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/monkey-arcade/internal/core"
)

// Placeholder art sizes. The cloud size is the base obstacle size whenever
// no cloud image file is available.
var placeholderSizes = map[core.ImageID]image.Point{
	core.ImageMonkey:     {X: 80, Y: 80},
	core.ImageCloud:      {X: 300, Y: 200},
	core.ImageBackground: {X: 800, Y: 600},
}

// Placeholder draws stand-in art for id.
func Placeholder(id core.ImageID) image.Image {
	size, ok := placeholderSizes[id]
	if !ok {
		size = image.Point{X: 32, Y: 32}
	}
	dc := gg.NewContext(size.X, size.Y)
	w, h := float64(size.X), float64(size.Y)

	switch id {
	case core.ImageMonkey:
		// Head, ears, face
		dc.SetHexColor("#8B5A2B")
		dc.DrawCircle(w*0.2, h*0.35, w*0.14)
		dc.DrawCircle(w*0.8, h*0.35, w*0.14)
		dc.DrawCircle(w/2, h/2, w*0.38)
		dc.Fill()
		dc.SetHexColor("#E8C39E")
		dc.DrawEllipse(w/2, h*0.6, w*0.24, h*0.18)
		dc.Fill()
		dc.SetRGB(0, 0, 0)
		dc.DrawCircle(w*0.4, h*0.42, w*0.04)
		dc.DrawCircle(w*0.6, h*0.42, w*0.04)
		dc.Fill()
	case core.ImageCloud:
		dc.SetRGBA(1, 1, 1, 0.95)
		dc.DrawEllipse(w*0.3, h*0.6, w*0.25, h*0.3)
		dc.DrawEllipse(w*0.55, h*0.45, w*0.3, h*0.4)
		dc.DrawEllipse(w*0.75, h*0.62, w*0.22, h*0.28)
		dc.Fill()
	case core.ImageBackground:
		grad := gg.NewLinearGradient(0, 0, 0, h)
		grad.AddColorStop(0, color.RGBA{R: 0x87, G: 0xCE, B: 0xEB, A: 0xFF})
		grad.AddColorStop(1, color.RGBA{R: 0xE0, G: 0xF6, B: 0xFF, A: 0xFF})
		dc.SetFillStyle(grad)
		dc.DrawRectangle(0, 0, w, h)
		dc.Fill()
		// Distant hills make the scroll visible
		dc.SetHexColor("#9BC98B")
		for i := 0; i < 4; i++ {
			dc.DrawEllipse(w*(0.125+0.25*float64(i)), h, w*0.16, h*0.18)
		}
		dc.Fill()
	default:
		dc.SetRGB(1, 0, 1)
		dc.Clear()
	}
	return dc.Image()
}
