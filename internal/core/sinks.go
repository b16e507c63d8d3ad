package core

// ImageID names a visual resource. Assets are opaque to the game logic.
type ImageID string

const (
	ImageMonkey     ImageID = "monkey"
	ImageCloud      ImageID = "cloud"
	ImageBackground ImageID = "background"
)

// Cue names a sound effect.
type Cue string

const (
	CueJump      Cue = "jump"
	CueCollision Cue = "collision"
)

// TextStyle describes how score text is drawn.
type TextStyle struct {
	Size  float64 // Font size in world units
	Color Color
}

// Canvas receives the drawing commands of one frame, in layering order.
type Canvas interface {
	Clear()
	DrawImage(id ImageID, dst Rect)
	// DrawText draws left/top aligned text at (x, y).
	DrawText(text string, x, y float64, style TextStyle)
}

// AudioSink plays cues fire-and-forget. Implementations must not block
// and must swallow playback failures.
type AudioSink interface {
	Play(cue Cue)
}

// ScoreDisplay is the game-over surface.
type ScoreDisplay interface {
	ShowGameOver(score int)
	Hide()
}

// NopAudio discards every cue.
type NopAudio struct{}

// Play implements AudioSink.
func (NopAudio) Play(Cue) {}

// NopDisplay ignores game-over notifications.
type NopDisplay struct{}

// ShowGameOver implements ScoreDisplay.
func (NopDisplay) ShowGameOver(int) {}

// Hide implements ScoreDisplay.
func (NopDisplay) Hide() {}
