// Package monkey implements the cloud-dodging monkey game.
// The player lifts a falling monkey past pairs of clouds that scroll in from
// the right; the score grows with every frame survived.
package monkey

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/monkey-arcade/internal/config"
	"github.com/vovakirdan/monkey-arcade/internal/core"
)

// Session owns one playthrough: the actor, the obstacle field, the
// background and the score. Drivers call Step once per frame while it
// reports that another frame is wanted.
type Session struct {
	cfg        config.GameConfig
	pending    *config.GameConfig
	ramp       config.SpeedRamp
	rng        *rand.Rand
	sizes      SizeSource
	actor      *Actor
	field      *ObstacleField
	background *Background
	audio      core.AudioSink
	display    core.ScoreDisplay

	score      float64
	speed      float64
	frameCount int
	over       bool
}

// Option customises a Session.
type Option func(*Session)

// WithSeed seeds the obstacle size RNG.
func WithSeed(seed int64) Option {
	return func(s *Session) { s.rng = rand.New(rand.NewSource(seed)) }
}

// WithAudio routes jump and collision cues to a.
func WithAudio(a core.AudioSink) Option {
	return func(s *Session) { s.audio = a }
}

// WithScoreDisplay routes game-over notifications to d.
func WithScoreDisplay(d core.ScoreDisplay) Option {
	return func(s *Session) { s.display = d }
}

// WithSizes supplies image sizes; the cloud size scales obstacles.
func WithSizes(src SizeSource) Option {
	return func(s *Session) { s.sizes = src }
}

// NewSession creates a session in the playing state.
func NewSession(cfg config.GameConfig, opts ...Option) *Session {
	s := &Session{
		cfg:     cfg,
		rng:     rand.New(rand.NewSource(1)),
		audio:   core.NopAudio{},
		display: core.NopDisplay{},
	}
	for _, opt := range opts {
		opt(s)
	}

	s.ramp = config.NewSpeedRamp(cfg.Speed)
	s.actor = NewActor(cfg.Actor, cfg.Canvas.Height)
	s.field = NewObstacleField(s.rng, cfg.Obstacles, cfg.Canvas, s.sizes)
	s.background = NewBackground(cfg.Background, cfg.Canvas)
	s.speed = s.ramp.Base()
	return s
}

// Step advances the session by one frame and reports whether the driver
// should schedule the next one.
func (s *Session) Step() bool {
	if s.over {
		return false
	}

	s.speed = s.ramp.Speed(s.score)
	s.background.Update(s.speed)

	s.frameCount++
	s.field.MaybeSpawn(s.frameCount, s.speed)
	s.field.Update()

	s.actor.Update()
	s.score += s.cfg.Score.PerFrame

	if Collides(s.actor.Rect(), s.field.Obstacles(), s.cfg.Collision.Padding) {
		s.end()
	}
	return !s.over
}

// end moves to the game-over state. Cue and display fire once per collision.
func (s *Session) end() {
	s.audio.Play(core.CueCollision)
	s.over = true
	s.display.ShowGameOver(s.State().Score)
}

// Jump lifts the actor. Ignored after game over.
func (s *Session) Jump() {
	if s.over {
		return
	}
	s.actor.Jump()
	s.audio.Play(core.CueJump)
}

// Pointer handles a pointer press: jump while playing, restart when over.
func (s *Session) Pointer() {
	if s.over {
		s.Restart()
		return
	}
	s.Jump()
}

// Restart begins a new playthrough. The background keeps its offset.
func (s *Session) Restart() {
	if s.pending != nil {
		s.apply(*s.pending)
		s.pending = nil
	}

	s.display.Hide()
	s.speed = s.ramp.Base()
	s.over = false
	s.score = 0
	s.frameCount = 0
	s.field.Reset()
	s.actor.Reset()
}

// Reconfigure stages cfg; it takes effect on the next Restart.
func (s *Session) Reconfigure(cfg config.GameConfig) {
	s.pending = &cfg
}

func (s *Session) apply(cfg config.GameConfig) {
	s.cfg = cfg
	s.ramp = config.NewSpeedRamp(cfg.Speed)
	s.actor.configure(cfg.Actor, cfg.Canvas.Height)
	s.field = NewObstacleField(s.rng, cfg.Obstacles, cfg.Canvas, s.sizes)

	offset := s.background.X
	s.background = NewBackground(cfg.Background, cfg.Canvas)
	if offset > -s.background.Width {
		s.background.X = offset
	}
}

// Render draws the frame: background, clouds, monkey, then the score label.
func (s *Session) Render(c core.Canvas) {
	c.Clear()
	s.background.Draw(c)
	s.field.Draw(c)
	s.actor.Draw(c)
	c.DrawText(s.ScoreText(), s.cfg.Score.TextX, s.cfg.Score.TextY, core.TextStyle{
		Size:  s.cfg.Score.FontSize,
		Color: core.ColorBlack,
	})
}

// ScoreText is the label shown during play.
func (s *Session) ScoreText() string {
	return fmt.Sprintf("Score: %d", s.State().Score)
}

// State returns the driver-facing snapshot.
func (s *Session) State() core.GameState {
	return core.GameState{
		Score:    int(math.Floor(s.score)),
		GameOver: s.over,
	}
}

// Over reports whether the session has ended.
func (s *Session) Over() bool {
	return s.over
}

// Actor returns a copy of the player character.
func (s *Session) Actor() Actor {
	return *s.actor
}

// Speed returns the current global scroll speed.
func (s *Session) Speed() float64 {
	return s.speed
}

// Config returns the active configuration.
func (s *Session) Config() config.GameConfig {
	return s.cfg
}
