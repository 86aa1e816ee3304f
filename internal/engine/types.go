package engine

// #region reason

// Reason classifies why a step did (or did not) register an act of awareness.
type Reason string

const (
	// ReasonAutomatic marks an ordinary step with no dominant internal change.
	ReasonAutomatic Reason = "automatic"
	// ReasonSpontaneous marks a spontaneous internal jump that outweighed the
	// external signal.
	ReasonSpontaneous Reason = "spontaneous_internal_change"
	// ReasonDominant marks internal drift that dominated the external signal
	// without a spontaneous jump.
	ReasonDominant Reason = "dominant_internal_change"
	// ReasonSnapshotOnly is the sentinel used by Peek. It is never produced
	// by Step.
	ReasonSnapshotOnly Reason = "snapshot_only"
)

// #endregion reason

// #region echo-trace

// EchoTrace records one past moment of external attention. Traces are
// immutable once created and pruned once they fall outside the configured
// echo lifetime.
type EchoTrace struct {
	OccurredAt float64
	Strength   float64
}

// #endregion echo-trace

// #region snapshot

// Snapshot is the value object returned by Step and Peek. It is never
// mutated after creation.
type Snapshot struct {
	Time           float64
	Pulse          float64 // normalized rhythm intensity in [0, 1]
	AttentionLevel float64
	EchoCount      int

	InternalState  float64
	ExternalSignal float64
	TotalState     float64

	Direction float64
	Delta     float64

	IrregularRhythm bool
	ActOfAwareness  bool
	Reason          Reason
	AwarenessTotal  int
}

// #endregion snapshot

// #region stimulus

type stimulusKind int

const (
	stimAbsent stimulusKind = iota
	stimNumber
	stimText
)

// Stimulus is an optional external input to a step: absent, a number, or
// text. The zero value means absent.
type Stimulus struct {
	kind stimulusKind
	num  float64
	text string
}

// Number wraps a numeric stimulus. It is clamped into [-1, 1] during the step.
func Number(v float64) Stimulus {
	return Stimulus{kind: stimNumber, num: v}
}

// Text wraps a textual stimulus. It is hashed into [-1, 1] during the step;
// identical strings always yield identical signals.
func Text(s string) Stimulus {
	return Stimulus{kind: stimText, text: s}
}

// #endregion stimulus
