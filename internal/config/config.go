// Package config provides YAML-based game configuration loading, validation
// and the score-driven speed ramp.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid")

// GameConfig contains all tunables of the monkey game.
type GameConfig struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Actor      ActorConfig      `yaml:"actor"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Background BackgroundConfig `yaml:"background"`
	Collision  CollisionConfig  `yaml:"collision"`
	Speed      SpeedConfig      `yaml:"speed"`
	Score      ScoreConfig      `yaml:"score"`
	Assets     AssetsConfig     `yaml:"assets"`
}

// CanvasConfig defines the fixed world size in world units (pixels).
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ActorConfig defines the player character's size and physics.
type ActorConfig struct {
	X       float64 `yaml:"x"`
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Gravity float64 `yaml:"gravity"`
	Lift    float64 `yaml:"lift"` // Negative: added to velocity on jump
	Damping float64 `yaml:"damping"`
}

// ObstacleConfig defines cloud pair spawning and sizing.
type ObstacleConfig struct {
	SpawnInterval int     `yaml:"spawn_interval"` // Frames between spawns
	BaseWidth     float64 `yaml:"base_width"`     // Used until the cloud image size is known
	BaseHeight    float64 `yaml:"base_height"`
	MinScale      float64 `yaml:"min_scale"`
	ScaleRange    float64 `yaml:"scale_range"` // scale = MinScale + rand*ScaleRange
}

// BackgroundConfig defines the scrolling backdrop.
type BackgroundConfig struct {
	SpeedRatio float64 `yaml:"speed_ratio"` // Fraction of the live game speed
}

// CollisionConfig defines hitbox tolerance.
type CollisionConfig struct {
	Padding float64 `yaml:"padding"` // Inset applied to both boxes on every side
}

// SpeedConfig defines the step function from score to scroll speed.
type SpeedConfig struct {
	Base  float64     `yaml:"base"`
	Steps []SpeedStep `yaml:"steps"`
}

// SpeedStep switches to Speed once the score reaches Score.
type SpeedStep struct {
	Score float64 `yaml:"score"`
	Speed float64 `yaml:"speed"`
}

// ScoreConfig defines scoring and the score label.
type ScoreConfig struct {
	PerFrame float64 `yaml:"per_frame"`
	TextX    float64 `yaml:"text_x"`
	TextY    float64 `yaml:"text_y"`
	FontSize float64 `yaml:"font_size"`
}

// AssetsConfig defines where images and sounds come from and how long the
// driver waits for them before the first frame.
type AssetsConfig struct {
	Dir          string            `yaml:"dir"`
	Images       map[string]string `yaml:"images"`
	Sounds       map[string]string `yaml:"sounds"`
	PollInterval time.Duration     `yaml:"poll_interval"`
	MaxAttempts  int               `yaml:"max_attempts"`
}

// Validate reports the first configuration value that would make the
// simulation ill-formed.
func (c GameConfig) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas size %vx%v", ErrInvalid, c.Canvas.Width, c.Canvas.Height)
	case c.Actor.Width <= 0 || c.Actor.Height <= 0:
		return fmt.Errorf("%w: actor size %vx%v", ErrInvalid, c.Actor.Width, c.Actor.Height)
	case c.Actor.Height > c.Canvas.Height:
		return fmt.Errorf("%w: actor taller than canvas", ErrInvalid)
	case c.Obstacles.SpawnInterval <= 0:
		return fmt.Errorf("%w: obstacles.spawn_interval %d", ErrInvalid, c.Obstacles.SpawnInterval)
	case c.Obstacles.BaseWidth <= 0 || c.Obstacles.BaseHeight <= 0:
		return fmt.Errorf("%w: obstacle base size %vx%v", ErrInvalid, c.Obstacles.BaseWidth, c.Obstacles.BaseHeight)
	case c.Obstacles.MinScale <= 0 || c.Obstacles.ScaleRange <= 0:
		return fmt.Errorf("%w: obstacle scale range [%v, %v)", ErrInvalid,
			c.Obstacles.MinScale, c.Obstacles.MinScale+c.Obstacles.ScaleRange)
	case c.Speed.Base <= 0:
		return fmt.Errorf("%w: speed.base %v", ErrInvalid, c.Speed.Base)
	case c.Assets.MaxAttempts < 0:
		return fmt.Errorf("%w: assets.max_attempts %d", ErrInvalid, c.Assets.MaxAttempts)
	}

	prev := 0.0
	for i, step := range c.Speed.Steps {
		if step.Score <= prev {
			return fmt.Errorf("%w: speed.steps[%d] score %v not ascending", ErrInvalid, i, step.Score)
		}
		if step.Speed <= 0 {
			return fmt.Errorf("%w: speed.steps[%d] speed %v", ErrInvalid, i, step.Speed)
		}
		prev = step.Score
	}
	return nil
}
