package core

// RuntimeConfig contains driver settings passed to a session at start.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters (terminal drivers only)
	ScreenH  int   // Terminal height in characters (terminal drivers only)
	TickRate int   // Frames per second requested from the loop driver
	Seed     int64 // RNG seed for obstacle sizes; 0 means use current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the snapshot a session reports to its driver.
type GameState struct {
	Score    int  // floor of the running score
	GameOver bool // Whether the session has ended
}
