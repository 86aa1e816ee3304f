package engine

import (
	"math"

	"github.com/cespare/xxhash/v2"
)

// #region normalize

// normalize maps a stimulus into a signal in [-1, 1].
//
// Numbers are clamped directly; NaN maps to 0 so the function stays total.
// Text is hashed with xxhash, reduced mod 1000 and rescaled, so the mapping
// is stable across processes: signal = (Sum64String(s)%1000 - 500) / 500.
// Absent stimuli and empty text map to exactly 0.
func normalize(stim Stimulus) float64 {
	switch stim.kind {
	case stimNumber:
		v := stim.num
		if math.IsNaN(v) {
			return 0.0
		}
		if v > 1.0 {
			return 1.0
		}
		if v < -1.0 {
			return -1.0
		}
		return v
	case stimText:
		if stim.text == "" {
			return 0.0
		}
		h := xxhash.Sum64String(stim.text) % 1000
		return (float64(h) - 500.0) / 500.0
	default:
		return 0.0
	}
}

// #endregion normalize
