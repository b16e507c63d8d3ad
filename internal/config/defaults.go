package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/monkey.yaml
var defaultMonkeyYAML []byte

// DefaultGameConfig returns the default game configuration.
// It matches defaults/monkey.yaml.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Canvas: CanvasConfig{
			Width:  800,
			Height: 600,
		},
		Actor: ActorConfig{
			X:       100,
			Width:   80,
			Height:  80,
			Gravity: 0.14,
			Lift:    -9.1,
			Damping: 0.98,
		},
		Obstacles: ObstacleConfig{
			SpawnInterval: 120,
			BaseWidth:     90,
			BaseHeight:    50,
			MinScale:      0.2,
			ScaleRange:    1.2,
		},
		Background: BackgroundConfig{
			SpeedRatio: 0.5,
		},
		Collision: CollisionConfig{
			Padding: 75,
		},
		Speed: SpeedConfig{
			Base: 2,
			Steps: []SpeedStep{
				{Score: 50, Speed: 3},
				{Score: 100, Speed: 4},
			},
		},
		Score: ScoreConfig{
			PerFrame: 0.05,
			TextX:    20,
			TextY:    10,
			FontSize: 30,
		},
		Assets: AssetsConfig{
			Dir: "assets",
			Images: map[string]string{
				"monkey":     "monkey.png",
				"cloud":      "cloud.png",
				"background": "background.png",
			},
			Sounds: map[string]string{
				"jump":      "jump.wav",
				"collision": "collision.wav",
			},
			PollInterval: 100 * time.Millisecond,
			MaxAttempts:  50,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultMonkeyYAML
}
