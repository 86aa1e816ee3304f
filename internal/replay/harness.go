package replay

import (
	"fmt"
	"math/rand"

	"github.com/danielpatrickdp/conscious-field/go-core/internal/engine"
)

// #region run

// Run replays the fixture's steps through a fresh engine and returns the
// emitted snapshots in order. rnd may be nil, in which case the fixture's
// seed drives a math/rand source; two runs with the same seed produce
// identical snapshot sequences.
func Run(f *Fixture, rnd engine.Rand) []engine.Snapshot {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(f.Seed))
	}
	eng := engine.New(f.Config.ToEngineConfig(), rnd)

	results := make([]engine.Snapshot, 0, len(f.Steps))
	for _, step := range f.Steps {
		results = append(results, eng.Step(step.ToStimulus(), step.Attention))
	}
	return results
}

// #endregion run

// #region compare

// Mismatch describes one divergence between a replay and its expectations.
type Mismatch struct {
	Index int
	Field string
	Got   string
	Want  string
}

func (m Mismatch) String() string {
	return fmt.Sprintf("step %d: %s = %s, want %s", m.Index, m.Field, m.Got, m.Want)
}

// Compare checks replay results against the fixture's expected outcomes.
// Expected entries are matched by position; a length mismatch is reported
// as a single entry.
func Compare(results []engine.Snapshot, expected []FixtureExpected) []Mismatch {
	if len(expected) == 0 {
		return nil
	}
	if len(results) != len(expected) {
		return []Mismatch{{
			Index: -1,
			Field: "length",
			Got:   fmt.Sprintf("%d results", len(results)),
			Want:  fmt.Sprintf("%d expected", len(expected)),
		}}
	}

	var mismatches []Mismatch
	for i, exp := range expected {
		got := results[i]
		if got.Time != exp.Time {
			mismatches = append(mismatches, Mismatch{
				Index: i, Field: "time",
				Got:  fmt.Sprintf("%v", got.Time),
				Want: fmt.Sprintf("%v", exp.Time),
			})
		}
		if string(got.Reason) != exp.Reason {
			mismatches = append(mismatches, Mismatch{
				Index: i, Field: "reason",
				Got:  string(got.Reason),
				Want: exp.Reason,
			})
		}
		if got.ActOfAwareness != exp.ActOfAwareness {
			mismatches = append(mismatches, Mismatch{
				Index: i, Field: "act_of_awareness",
				Got:  fmt.Sprintf("%v", got.ActOfAwareness),
				Want: fmt.Sprintf("%v", exp.ActOfAwareness),
			})
		}
	}
	return mismatches
}

// #endregion compare

// #region summary

// Summary aggregates a replay run.
type Summary struct {
	Steps    int
	Acts     int
	ByReason map[string]int
}

// Summarize computes aggregate stats from replay results.
func Summarize(results []engine.Snapshot) Summary {
	s := Summary{
		Steps:    len(results),
		ByReason: make(map[string]int),
	}
	for _, r := range results {
		if r.ActOfAwareness {
			s.Acts++
		}
		s.ByReason[string(r.Reason)]++
	}
	return s
}

// #endregion summary
