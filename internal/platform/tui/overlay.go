package tui

import (
	"fmt"

	"github.com/vovakirdan/monkey-arcade/internal/core"
)

// gameOverBox is the core.ScoreDisplay of the terminal driver. It is drawn
// on top of the frame while visible.
type gameOverBox struct {
	visible bool
	score   int
}

// ShowGameOver implements core.ScoreDisplay.
func (b *gameOverBox) ShowGameOver(score int) {
	b.visible = true
	b.score = score
}

// Hide implements core.ScoreDisplay.
func (b *gameOverBox) Hide() {
	b.visible = false
}

func (b *gameOverBox) lines() []string {
	return []string{
		"GAME OVER",
		fmt.Sprintf("Score: %d", b.score),
		"",
		"click or r to restart",
	}
}

// Draw paints the box centered on s.
func (b *gameOverBox) Draw(s *core.Screen) {
	if !b.visible {
		return
	}
	lines := b.lines()
	w := 0
	for _, l := range lines {
		w = max(w, len([]rune(l)))
	}
	w += 4
	h := len(lines) + 2
	x := (s.Width() - w) / 2
	y := (s.Height() - h) / 2

	s.DrawRect(x, y, w, h, ' ', core.ColorDefault)
	s.DrawBox(x, y, w, h, core.ColorRed)
	for i, l := range lines {
		c := core.ColorBrightWhite
		if i == 0 {
			c = core.ColorRed
		}
		s.DrawText(x+(w-len([]rune(l)))/2, y+1+i, l, c)
	}
}
