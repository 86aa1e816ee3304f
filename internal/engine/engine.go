package engine

import (
	"math"
	"math/rand"
	"time"
)

// #region engine-struct

// Engine is the core state machine: an inner rhythmic field (pulse), an
// internal state that drifts and sometimes jumps, a memory of attention
// (echo traces), a direction of change, and a heuristic notion of acts of
// awareness.
//
// The engine performs no I/O and is not goroutine-safe: callers that drive
// Step and Peek from more than one goroutine must serialize every call
// under a single lock.
type Engine struct {
	cfg Config
	rnd Rand

	// Time and rhythm
	time       float64
	baseFreq   float64
	intentBias float64

	// Attention and echo
	attentionLevel float64
	echoTraces     []EchoTrace

	// Internal/external process
	internalState  float64
	lastTotalState float64
	externalSignal float64

	// Direction and awareness
	direction      float64
	awarenessTotal int

	lastIrregular bool
}

// #endregion engine-struct

// #region constructor

// New creates an engine with the given config. rnd may be nil, in which
// case a time-seeded math/rand source is used; inject a seeded source for
// reproducible runs.
func New(cfg Config, rnd Rand) *Engine {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		cfg:      cfg,
		rnd:      rnd,
		baseFreq: cfg.BaseFreq,
	}
}

// #endregion constructor

// #region step

// Step advances the engine by one step and returns a snapshot. stim is the
// optional outside-world input; attention marks the engine as observed this
// step.
func (e *Engine) Step(stim Stimulus, attention bool) Snapshot {
	e.externalSignal = normalize(stim)

	pulse := e.updateRhythm(attention)

	// Internal drift, occasionally amplified by a spontaneous jump.
	drift := e.uniform(-0.3, 0.3)
	spontaneous := false
	if e.rnd.Float64() < e.cfg.SpontaneousEventProb {
		drift += e.uniform(-1.0, 1.0)
		spontaneous = true
	}

	e.internalState += drift
	totalState := e.internalState + e.externalSignal

	// Direction is a low-pass filtered delta of the combined state.
	delta := totalState - e.lastTotalState
	e.direction = 0.7*e.direction + 0.3*delta
	e.lastTotalState = totalState

	act, reason := e.classify(drift, spontaneous)
	if act {
		e.awarenessTotal++
	}

	return Snapshot{
		Time:            e.time,
		Pulse:           pulse,
		AttentionLevel:  e.attentionLevel,
		EchoCount:       len(e.echoTraces),
		InternalState:   e.internalState,
		ExternalSignal:  e.externalSignal,
		TotalState:      totalState,
		Direction:       e.direction,
		Delta:           delta,
		IrregularRhythm: e.lastIrregular,
		ActOfAwareness:  act,
		Reason:          reason,
		AwarenessTotal:  e.awarenessTotal,
	}
}

// #endregion step

// #region rhythm

// updateRhythm advances time and the rhythmic field, applies attention
// effects, prunes expired echoes, and returns the normalized pulse.
func (e *Engine) updateRhythm(attention bool) float64 {
	e.time += 1.0

	base := math.Sin(e.time*e.baseFreq + e.intentBias)
	noise := e.uniform(-1.0, 1.0) * e.cfg.InternalVariability

	if attention {
		e.attentionLevel += 0.4
		e.echoTraces = append(e.echoTraces, EchoTrace{
			OccurredAt: e.time,
			Strength:   e.attentionLevel,
		})
		// Attention slightly tilts the intent bias.
		e.intentBias += e.uniform(0.02, 0.07)
	} else {
		e.attentionLevel *= 0.9
	}

	// Spontaneous changes of the rhythm itself.
	if e.rnd.Float64() < e.cfg.RhythmChangeProb {
		e.baseFreq += e.uniform(-0.01, 0.01)
		e.baseFreq = math.Max(0.05, math.Min(0.3, e.baseFreq))
		e.intentBias += e.uniform(-0.03, 0.03)
	}

	raw := base + noise + e.attentionLevel
	pulse := clamp01((raw + 3.0) / 6.0)

	irregularity := math.Abs(noise) + math.Abs(e.intentBias) + e.cfg.InternalVariability
	e.lastIrregular = irregularity > 0.4

	e.pruneEchoes()

	return pulse
}

// pruneEchoes drops traces older than the echo lifetime.
func (e *Engine) pruneEchoes() {
	cutoff := e.time - e.cfg.EchoLifetime
	kept := e.echoTraces[:0]
	for _, tr := range e.echoTraces {
		if tr.OccurredAt >= cutoff {
			kept = append(kept, tr)
		}
	}
	e.echoTraces = kept
}

// #endregion rhythm

// #region classify

// classify decides whether this step's internal change dominates the
// external signal. First match wins; the branches are mutually exclusive.
func (e *Engine) classify(drift float64, spontaneous bool) (bool, Reason) {
	external := math.Abs(e.externalSignal)
	internal := math.Abs(drift)

	if spontaneous && internal > external+0.2 {
		return true, ReasonSpontaneous
	}
	if internal > external*1.5 && internal > e.cfg.AwarenessThreshold {
		return true, ReasonDominant
	}
	return false, ReasonAutomatic
}

// #endregion classify

// #region peek

// Peek returns a view of the current state without advancing time or
// consuming randomness. The pulse is recomputed from the persisted rhythm
// fields; Delta is 0 and Reason is the snapshot_only sentinel. Repeated
// calls between two steps yield identical snapshots.
func (e *Engine) Peek() Snapshot {
	return Snapshot{
		Time:            e.time,
		Pulse:           clamp01((math.Sin(e.time*e.baseFreq+e.intentBias) + 3.0) / 6.0),
		AttentionLevel:  e.attentionLevel,
		EchoCount:       len(e.echoTraces),
		InternalState:   e.internalState,
		ExternalSignal:  e.externalSignal,
		TotalState:      e.lastTotalState,
		Direction:       e.direction,
		Delta:           0.0,
		IrregularRhythm: e.lastIrregular,
		ActOfAwareness:  false,
		Reason:          ReasonSnapshotOnly,
		AwarenessTotal:  e.awarenessTotal,
	}
}

// #endregion peek

// #region helpers

// uniform draws from [lo, hi).
func (e *Engine) uniform(lo, hi float64) float64 {
	return lo + (hi-lo)*e.rnd.Float64()
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// #endregion helpers
