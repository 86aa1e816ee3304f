// Package replay re-runs recorded step sequences through a fresh engine
// with seeded randomness, so a run can be reproduced and checked against
// expected outcomes.
package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/danielpatrickdp/conscious-field/go-core/internal/engine"
)

// #region fixture-types

// Fixture is the top-level JSON structure for a replay fixture.
type Fixture struct {
	Description string            `json:"description"`
	Config      FixtureConfig     `json:"config"`
	Seed        int64             `json:"seed"`
	Steps       []FixtureStep     `json:"steps"`
	Expected    []FixtureExpected `json:"expected,omitempty"`
}

// FixtureConfig mirrors engine.Config with JSON tags.
type FixtureConfig struct {
	BaseFreq             float64 `json:"base_freq"`
	InternalVariability  float64 `json:"internal_variability"`
	SpontaneousEventProb float64 `json:"spontaneous_event_prob"`
	RhythmChangeProb     float64 `json:"rhythm_change_prob"`
	EchoLifetime         float64 `json:"echo_lifetime"`
	AwarenessThreshold   float64 `json:"awareness_threshold"`
}

// FixtureStep is one recorded input: at most one of number/text is set;
// neither means an absent stimulus.
type FixtureStep struct {
	Number    *float64 `json:"number,omitempty"`
	Text      string   `json:"text,omitempty"`
	Attention bool     `json:"attention"`
}

// FixtureExpected captures the expected classification for one step.
type FixtureExpected struct {
	Time           float64 `json:"time"`
	Reason         string  `json:"reason"`
	ActOfAwareness bool    `json:"act_of_awareness"`
}

// #endregion fixture-types

// #region fixture-loader

// LoadFixture reads and parses a JSON fixture file.
func LoadFixture(path string) (*Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read fixture %s: %w", path, err)
	}
	var f Fixture
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse fixture %s: %w", path, err)
	}
	return &f, nil
}

// ToEngineConfig converts a FixtureConfig to a domain engine.Config.
func (fc FixtureConfig) ToEngineConfig() engine.Config {
	return engine.Config{
		BaseFreq:             fc.BaseFreq,
		InternalVariability:  fc.InternalVariability,
		SpontaneousEventProb: fc.SpontaneousEventProb,
		RhythmChangeProb:     fc.RhythmChangeProb,
		EchoLifetime:         fc.EchoLifetime,
		AwarenessThreshold:   fc.AwarenessThreshold,
	}
}

// ToStimulus converts a FixtureStep to a domain engine.Stimulus.
func (fs FixtureStep) ToStimulus() engine.Stimulus {
	switch {
	case fs.Number != nil:
		return engine.Number(*fs.Number)
	case fs.Text != "":
		return engine.Text(fs.Text)
	default:
		return engine.Stimulus{}
	}
}

// #endregion fixture-loader
