package config

// SpeedRamp maps a score to the scroll speed.
type SpeedRamp struct {
	base  float64
	steps []SpeedStep
}

// NewSpeedRamp builds a ramp from validated speed settings.
func NewSpeedRamp(cfg SpeedConfig) SpeedRamp {
	steps := make([]SpeedStep, len(cfg.Steps))
	copy(steps, cfg.Steps)
	return SpeedRamp{base: cfg.Base, steps: steps}
}

// Speed returns the speed of the highest step whose threshold the score has
// reached, or the base speed below the first threshold.
func (r SpeedRamp) Speed(score float64) float64 {
	speed := r.base
	for _, step := range r.steps {
		if score < step.Score {
			break
		}
		speed = step.Speed
	}
	return speed
}

// Base returns the speed at score zero.
func (r SpeedRamp) Base() float64 {
	return r.base
}
