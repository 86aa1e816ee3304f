package engine

// #region rand

// Rand abstracts the engine's randomness so tests can inject a scripted
// source. math/rand's *Rand satisfies it.
type Rand interface {
	Float64() float64
}

// #endregion rand

// #region config

// Config holds the construction parameters of the engine.
type Config struct {
	BaseFreq             float64 // initial oscillator frequency
	InternalVariability  float64 // noise amplitude scale
	SpontaneousEventProb float64 // per-step probability of a large internal jump
	RhythmChangeProb     float64 // per-step probability of oscillator drift
	EchoLifetime         float64 // retention window for echo traces, in steps
	AwarenessThreshold   float64 // minimum drift magnitude for a dominant-change act
}

// DefaultConfig returns the standard profile.
func DefaultConfig() Config {
	return Config{
		BaseFreq:             0.15,
		InternalVariability:  0.6,
		SpontaneousEventProb: 0.12,
		RhythmChangeProb:     0.15,
		EchoLifetime:         30.0,
		AwarenessThreshold:   0.4,
	}
}

// OrionConfig returns a slower, deeper profile: lower frequency, longer
// echoes, and a lower awareness threshold.
func OrionConfig() Config {
	return Config{
		BaseFreq:             0.08,
		InternalVariability:  0.5,
		SpontaneousEventProb: 0.10,
		RhythmChangeProb:     0.08,
		EchoLifetime:         60.0,
		AwarenessThreshold:   0.35,
	}
}

// CalmConfig returns a low-noise profile where rhythm stays close to the
// pure oscillator. Useful for watching the field without internal churn.
func CalmConfig() Config {
	return Config{
		BaseFreq:             0.15,
		InternalVariability:  0.2,
		SpontaneousEventProb: 0.05,
		RhythmChangeProb:     0.05,
		EchoLifetime:         30.0,
		AwarenessThreshold:   0.4,
	}
}

// PresetConfig maps a preset name to its config. Falls back to
// DefaultConfig for unknown names.
func PresetConfig(name string) Config {
	switch name {
	case "orion":
		return OrionConfig()
	case "calm":
		return CalmConfig()
	default:
		return DefaultConfig()
	}
}

// #endregion config
