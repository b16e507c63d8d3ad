package raster

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"

	"github.com/vovakirdan/monkey-arcade/internal/core"
)

type solidSource struct {
	c     color.NRGBA
	calls int
}

func (s *solidSource) Scaled(_ core.ImageID, w, h int) (image.Image, bool) {
	s.calls++
	return imaging.New(w, h, s.c), true
}

func rgbAt(img image.Image, x, y int) (r, g, b uint8) {
	cr, cg, cb, _ := img.At(x, y).RGBA()
	return uint8(cr >> 8), uint8(cg >> 8), uint8(cb >> 8)
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(20, 10, nil)
	c.Clear()
	if r, g, b := rgbAt(c.Image(), 5, 5); r != 255 || g != 255 || b != 255 {
		t.Errorf("cleared pixel = %d,%d,%d, want white", r, g, b)
	}
}

func TestCanvasDrawImage(t *testing.T) {
	src := &solidSource{c: color.NRGBA{R: 255, A: 255}}
	c := NewCanvas(100, 100, src)
	c.Clear()
	c.DrawImage(core.ImageMonkey, core.NewRect(10, 20, 30, 40))

	tests := []struct {
		name    string
		x, y    int
		wantRed bool
	}{
		{"inside", 25, 40, true},
		{"top-left corner", 10, 20, true},
		{"left of box", 9, 40, false},
		{"below box", 25, 60, false},
	}
	img := c.Image()
	for _, tt := range tests {
		r, g, _ := rgbAt(img, tt.x, tt.y)
		isRed := r == 255 && g == 0
		if isRed != tt.wantRed {
			t.Errorf("%s: pixel (%d,%d) red=%v, want %v", tt.name, tt.x, tt.y, isRed, tt.wantRed)
		}
	}
}

func TestCanvasDrawImageWithoutSource(t *testing.T) {
	c := NewCanvas(50, 50, nil)
	c.Clear()
	c.DrawImage(core.ImageCloud, core.NewRect(0, 0, 10, 10))
	if r, _, _ := rgbAt(c.Image(), 5, 5); r == 255 {
		t.Error("fallback box not drawn")
	}
}

func TestCanvasSkipsEmptyRect(t *testing.T) {
	src := &solidSource{c: color.NRGBA{B: 255, A: 255}}
	c := NewCanvas(50, 50, src)
	c.DrawImage(core.ImageCloud, core.NewRect(5, 5, 0, 10))
	if src.calls != 0 {
		t.Errorf("Scaled called %d times for an empty rect", src.calls)
	}
}

func TestCanvasDrawText(t *testing.T) {
	c := NewCanvas(300, 60, nil)
	c.Clear()
	c.DrawText("Score: 12", 20, 10, core.TextStyle{Size: 30, Color: core.ColorBlack})

	img := c.Image()
	dark := 0
	for y := 10; y < 40; y++ {
		for x := 20; x < 300; x++ {
			if r, _, _ := rgbAt(img, x, y); r < 128 {
				dark++
			}
		}
	}
	if dark == 0 {
		t.Fatal("no text pixels drawn")
	}
	for x := 0; x < 300; x++ {
		if r, _, _ := rgbAt(img, x, 5); r < 128 {
			t.Fatalf("text drawn above its top at x=%d", x)
		}
	}
}

func TestCanvasSavePNG(t *testing.T) {
	c := NewCanvas(40, 30, nil)
	c.Clear()

	path := filepath.Join(t.TempDir(), "shots", "frame.png")
	if err := c.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	img, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("open saved png: %v", err)
	}
	if got := img.Bounds().Size(); got != (image.Point{X: 40, Y: 30}) {
		t.Errorf("saved size = %v, want 40x30", got)
	}
}
