package config

import "testing"

func TestSpeedRampThresholds(t *testing.T) {
	ramp := NewSpeedRamp(DefaultGameConfig().Speed)

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

	for _, tc := range tests {
		if got := ramp.Speed(tc.score); got != tc.speed {
			t.Errorf("Speed(%v) = %v, expected %v", tc.score, got, tc.speed)
		}
	}
}

func TestSpeedRampMonotonic(t *testing.T) {
	ramp := NewSpeedRamp(DefaultGameConfig().Speed)

	prev := ramp.Base()
	for score := 0.0; score < 300; score += 0.05 {
		s := ramp.Speed(score)
		if s < prev {
			t.Fatalf("speed decreased at score %v: %v < %v", score, s, prev)
		}
		prev = s
	}
}

func TestSpeedRampCopiesSteps(t *testing.T) {
	cfg := DefaultGameConfig().Speed
	ramp := NewSpeedRamp(cfg)
	cfg.Steps[0].Speed = 99

	if got := ramp.Speed(60); got != 3 {
		t.Errorf("ramp should not alias config steps, Speed(60) = %v", got)
	}
}
