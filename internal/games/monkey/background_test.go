package monkey

import (
	"testing"

	"github.com/vovakirdan/monkey-arcade/internal/config"
	"github.com/vovakirdan/monkey-arcade/internal/core"
)

func TestBackgroundScrollsAtHalfSpeed(t *testing.T) {
	cfg := config.DefaultGameConfig()
	b := NewBackground(cfg.Background, cfg.Canvas)

	b.Update(2)
	if b.X != -1 {
		t.Errorf("x after one update at speed 2 = %v, expected -1", b.X)
	}
	b.Update(4)
	if b.X != -3 {
		t.Errorf("x should follow the live speed, got %v, expected -3", b.X)
	}
}

func TestBackgroundWraps(t *testing.T) {
	cfg := config.DefaultGameConfig()
	b := NewBackground(cfg.Background, cfg.Canvas)

	// 800 wide at 1 unit per frame wraps exactly on frame 800
	for i := 1; i < 800; i++ {
		b.Update(2)
		if b.X != -float64(i) {
			t.Fatalf("frame %d: x=%v, expected %v", i, b.X, -float64(i))
		}
	}
	b.Update(2)
	if b.X != 0 {
		t.Errorf("x at -width should wrap to 0, got %v", b.X)
	}
}

func TestBackgroundDrawsTwoTiles(t *testing.T) {
	cfg := config.DefaultGameConfig()
	b := NewBackground(cfg.Background, cfg.Canvas)
	b.X = -250

	c := &recordingCanvas{}
	b.Draw(c)

	want := []core.Rect{
		core.NewRect(-250, 0, 800, 600),
		core.NewRect(550, 0, 800, 600),
	}
	if len(c.calls) != 2 {
		t.Fatalf("expected 2 tiles, got %d calls", len(c.calls))
	}
	for i, call := range c.calls {
		if call.id != core.ImageBackground || call.rect != want[i] {
			t.Errorf("tile %d = %+v, expected %+v", i, call.rect, want[i])
		}
	}
}
