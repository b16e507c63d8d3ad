package monkey

import (
	"github.com/vovakirdan/monkey-arcade/internal/core"
)

// drawCall is one command captured by recordingCanvas.
type drawCall struct {
	kind string // "clear", "image" or "text"
	id   core.ImageID
	rect core.Rect
	text string
}

type recordingCanvas struct {
	calls []drawCall
}

func (c *recordingCanvas) Clear() {
	c.calls = append(c.calls, drawCall{kind: "clear"})
}

func (c *recordingCanvas) DrawImage(id core.ImageID, dst core.Rect) {
	c.calls = append(c.calls, drawCall{kind: "image", id: id, rect: dst})
}

func (c *recordingCanvas) DrawText(text string, x, y float64, _ core.TextStyle) {
	c.calls = append(c.calls, drawCall{kind: "text", text: text, rect: core.NewRect(x, y, 0, 0)})
}

type countingAudio struct {
	plays map[core.Cue]int
}

func newCountingAudio() *countingAudio {
	return &countingAudio{plays: make(map[core.Cue]int)}
}

func (a *countingAudio) Play(cue core.Cue) {
	a.plays[cue]++
}

type displaySpy struct {
	shown   int
	hidden  int
	visible bool
	score   int
}

func (d *displaySpy) ShowGameOver(score int) {
	d.shown++
	d.visible = true
	d.score = score
}

func (d *displaySpy) Hide() {
	d.hidden++
	d.visible = false
}

type fixedSizes struct {
	w, h int
	ok   bool
}

func (f fixedSizes) ImageSize(core.ImageID) (int, int, bool) {
	return f.w, f.h, f.ok
}
