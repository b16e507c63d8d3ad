package monkey

import (
	"math"
	"testing"

	"github.com/vovakirdan/monkey-arcade/internal/config"
	"github.com/vovakirdan/monkey-arcade/internal/core"
)

// tightConfig makes every spawned pair fill the actor's column: a 100 unit
// canvas with 50 unit clouds top and bottom and no padding.
func tightConfig() config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.Canvas.Height = 100
	cfg.Collision.Padding = 0
	cfg.Obstacles.MinScale = 1
	cfg.Obstacles.ScaleRange = 1e-9
	return cfg
}

func TestSessionDeterminism(t *testing.T) {
	run := func() (core.GameState, int) {
		s := NewSession(config.DefaultGameConfig(), WithSeed(12345))
		for i := 0; i < 3000; i++ {
			if i%25 == 0 {
				s.Jump()
			}
			if !s.Step() {
				break
			}
		}
		return s.State(), s.field.Len()
	}

	state1, n1 := run()
	state2, n2 := run()
	if state1 != state2 || n1 != n2 {
		t.Errorf("same seed and inputs diverged: %+v/%d vs %+v/%d", state1, n1, state2, n2)
	}
}

func TestSessionScoreAccumulates(t *testing.T) {
	s := NewSession(config.DefaultGameConfig())

	for i := 0; i < 100; i++ {
		s.Step()
	}
	if s.frameCount != 100 {
		t.Errorf("frameCount = %d, expected 100", s.frameCount)
	}
	if math.Abs(s.score-5) > 1e-9 {
		t.Errorf("score after 100 frames = %v, expected 5", s.score)
	}

	s.score = 12.99
	if s.State().Score != 12 || s.ScoreText() != "Score: 12" {
		t.Errorf("score should be floored, got %d / %q", s.State().Score, s.ScoreText())
	}
}

func TestSessionSpeedRamp(t *testing.T) {
	tests := []struct {
		score float64
		speed float64
	}{
		{0, 2},
		{49.9, 2},
		{50, 3},
		{99.9, 3},
		{100, 4},
		{150, 4},
	}

	s := NewSession(config.DefaultGameConfig())
	for _, tc := range tests {
		s.score = tc.score
		s.Step()
		if s.Speed() != tc.speed {
			t.Errorf("speed at score %v = %v, expected %v", tc.score, s.Speed(), tc.speed)
		}
	}
}

func TestSessionCollisionEndsOnce(t *testing.T) {
	audio := newCountingAudio()
	display := &displaySpy{}
	s := NewSession(tightConfig(), WithAudio(audio), WithScoreDisplay(display))

	// Actor is centered at y=10 and overlaps both clouds of the first pair
	frames := 0
	for s.Step() {
		frames++
		if frames > 10000 {
			t.Fatal("session never ended")
		}
	}

	if !s.Over() || !s.State().GameOver {
		t.Fatal("session should be over after collision")
	}
	if audio.plays[core.CueCollision] != 1 {
		t.Errorf("collision cue played %d times, expected 1", audio.plays[core.CueCollision])
	}
	if display.shown != 1 || !display.visible {
		t.Errorf("game over shown %d times (visible=%v), expected once", display.shown, display.visible)
	}
	if display.score != s.State().Score {
		t.Errorf("displayed score %d, expected %d", display.score, s.State().Score)
	}

	// Further frames are refused and have no effect
	frame := s.frameCount
	if s.Step() {
		t.Error("Step() after game over should not request another frame")
	}
	if s.frameCount != frame || audio.plays[core.CueCollision] != 1 {
		t.Error("Step() after game over should be a no-op")
	}
}

func TestSessionJumpIgnoredWhenOver(t *testing.T) {
	audio := newCountingAudio()
	s := NewSession(config.DefaultGameConfig(), WithAudio(audio))

	s.Jump()
	if audio.plays[core.CueJump] != 1 {
		t.Errorf("jump cue played %d times, expected 1", audio.plays[core.CueJump])
	}
	if s.actor.Velocity != -9.1 {
		t.Errorf("velocity after jump = %v, expected -9.1", s.actor.Velocity)
	}

	s.over = true
	s.Jump()
	if audio.plays[core.CueJump] != 1 || s.actor.Velocity != -9.1 {
		t.Error("Jump() after game over should do nothing")
	}
}

func TestSessionRestartResets(t *testing.T) {
	display := &displaySpy{}
	s := NewSession(tightConfig(), WithScoreDisplay(display))

	for s.Step() {
	}
	bgOffset := s.background.X
	if s.score == 0 || s.field.Len() == 0 {
		t.Fatalf("expected progress before restart, score=%v pairs=%d", s.score, s.field.Len())
	}

	s.Restart()

	if s.score != 0 || s.frameCount != 0 || s.over {
		t.Errorf("after restart score=%v frame=%d over=%v", s.score, s.frameCount, s.over)
	}
	if s.field.Len() != 0 {
		t.Errorf("after restart field holds %d pairs", s.field.Len())
	}
	if s.actor.Y != 10 || s.actor.Velocity != 0 {
		t.Errorf("after restart actor y=%v v=%v, expected centered and still", s.actor.Y, s.actor.Velocity)
	}
	if s.Speed() != 2 {
		t.Errorf("after restart speed=%v, expected 2", s.Speed())
	}
	if display.visible || display.hidden != 1 {
		t.Errorf("restart should hide the game-over display (hidden=%d)", display.hidden)
	}
	if s.background.X != bgOffset {
		t.Errorf("background offset changed on restart: %v -> %v", bgOffset, s.background.X)
	}
	if !s.Step() {
		t.Error("restarted session should request frames again")
	}
}

func TestSessionPointer(t *testing.T) {
	s := NewSession(config.DefaultGameConfig())

	s.Pointer()
	if s.actor.Velocity >= 0 {
		t.Error("Pointer() while playing should jump")
	}

	s.over = true
	s.score = 42
	s.Pointer()
	if s.over || s.score != 0 {
		t.Error("Pointer() after game over should restart")
	}
}

func TestSessionReconfigureAppliesOnRestart(t *testing.T) {
	s := NewSession(config.DefaultGameConfig())
	s.Step()

	next := config.DefaultGameConfig()
	next.Actor.Gravity = 1
	next.Speed.Base = 5
	next.Speed.Steps = nil
	s.Reconfigure(next)

	if s.Config().Actor.Gravity != 0.14 {
		t.Fatal("Reconfigure() must not apply mid-session")
	}

	s.Restart()
	if s.Config().Actor.Gravity != 1 || s.Speed() != 5 {
		t.Errorf("restart should apply staged config, gravity=%v speed=%v", s.Config().Actor.Gravity, s.Speed())
	}
}

func TestSessionRenderLayering(t *testing.T) {
	s := NewSession(config.DefaultGameConfig())
	for i := 0; i < 120; i++ {
		s.Step()
	}

	c := &recordingCanvas{}
	s.Render(c)

	var order []string
	for _, call := range c.calls {
		switch call.kind {
		case "image":
			order = append(order, string(call.id))
		default:
			order = append(order, call.kind)
		}
	}

	want := []string{"clear", "background", "background", "cloud", "cloud", "monkey", "text"}
	if len(order) != len(want) {
		t.Fatalf("render order = %v, expected %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("render order = %v, expected %v", order, want)
		}
	}

	last := c.calls[len(c.calls)-1]
	if last.text != s.ScoreText() || last.rect.X != 20 || last.rect.Y != 10 {
		t.Errorf("score label = %+v", last)
	}
}
