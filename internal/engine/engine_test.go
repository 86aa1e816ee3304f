package engine

import (
	"math/rand"
	"testing"
)

// scriptRand replays a fixed sequence of Float64 values, cycling when
// exhausted. A value of 0.5 makes every symmetric uniform draw come out 0.
type scriptRand struct {
	vals []float64
	i    int
}

func (s *scriptRand) Float64() float64 {
	if len(s.vals) == 0 {
		return 0.5
	}
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func quietConfig() Config {
	return Config{
		BaseFreq:             0.15,
		InternalVariability:  0.0,
		SpontaneousEventProb: 0.0,
		RhythmChangeProb:     0.0,
		EchoLifetime:         30.0,
		AwarenessThreshold:   0.4,
	}
}

func TestQuietEngineStaysAutomatic(t *testing.T) {
	e := New(quietConfig(), &scriptRand{})

	for i := 0; i < 5; i++ {
		s := e.Step(Stimulus{}, false)

		if s.InternalState != 0 {
			t.Fatalf("step %d: internal state %v, want 0", i, s.InternalState)
		}
		if s.ActOfAwareness {
			t.Fatalf("step %d: unexpected act of awareness", i)
		}
		if s.Reason != ReasonAutomatic {
			t.Fatalf("step %d: reason %q, want %q", i, s.Reason, ReasonAutomatic)
		}
	}
}

func TestAttentionIncrementsLevelAndEcho(t *testing.T) {
	e := New(DefaultConfig(), &scriptRand{})

	s := e.Step(Stimulus{}, true)

	if s.AttentionLevel != 0.4 {
		t.Fatalf("attention level %v, want 0.4", s.AttentionLevel)
	}
	if s.EchoCount != 1 {
		t.Fatalf("echo count %d, want 1", s.EchoCount)
	}
}

func TestAttentionDecaysWithoutObserver(t *testing.T) {
	e := New(DefaultConfig(), &scriptRand{})

	e.Step(Stimulus{}, true)
	s := e.Step(Stimulus{}, false)

	if got, want := s.AttentionLevel, 0.4*0.9; got != want {
		t.Fatalf("attention level %v, want %v", got, want)
	}
}

func TestNumericStimulusClamped(t *testing.T) {
	e := New(DefaultConfig(), &scriptRand{})

	if s := e.Step(Number(5), false); s.ExternalSignal != 1.0 {
		t.Fatalf("signal for 5 = %v, want 1.0", s.ExternalSignal)
	}
	if s := e.Step(Number(-5), false); s.ExternalSignal != -1.0 {
		t.Fatalf("signal for -5 = %v, want -1.0", s.ExternalSignal)
	}
}

func TestSpontaneousInternalChange(t *testing.T) {
	// Draw order per step: noise, rhythm prob, drift, spontaneous prob,
	// spontaneous add. 0.0 triggers the spontaneous event; 0.999 makes the
	// added jump ~+1 so the drift dwarfs the absent external signal.
	rnd := &scriptRand{vals: []float64{0.5, 0.99, 0.5, 0.0, 0.999}}
	e := New(DefaultConfig(), rnd)

	s := e.Step(Stimulus{}, false)

	if s.Reason != ReasonSpontaneous {
		t.Fatalf("reason %q, want %q", s.Reason, ReasonSpontaneous)
	}
	if !s.ActOfAwareness {
		t.Fatal("expected act of awareness")
	}
	if s.AwarenessTotal != 1 {
		t.Fatalf("awareness total %d, want 1", s.AwarenessTotal)
	}
}

func TestDominantInternalChange(t *testing.T) {
	cfg := quietConfig()
	cfg.AwarenessThreshold = 0.25

	// Drift draw 0.999 → uniform(-0.3, 0.3) ≈ 0.2994, above the threshold
	// and with no external signal to compete against.
	rnd := &scriptRand{vals: []float64{0.5, 0.99, 0.999, 0.99}}
	e := New(cfg, rnd)

	s := e.Step(Stimulus{}, false)

	if s.Reason != ReasonDominant {
		t.Fatalf("reason %q, want %q", s.Reason, ReasonDominant)
	}
	if !s.ActOfAwareness {
		t.Fatal("expected act of awareness")
	}
}

func TestExternalSignalSuppressesDominance(t *testing.T) {
	cfg := quietConfig()
	cfg.AwarenessThreshold = 0.25

	// Same drift as above, but a strong external signal outweighs it.
	rnd := &scriptRand{vals: []float64{0.5, 0.99, 0.999, 0.99}}
	e := New(cfg, rnd)

	s := e.Step(Number(1.0), false)

	if s.Reason != ReasonAutomatic {
		t.Fatalf("reason %q, want %q", s.Reason, ReasonAutomatic)
	}
	if s.ActOfAwareness {
		t.Fatal("unexpected act of awareness")
	}
}

func TestEchoPruning(t *testing.T) {
	cfg := quietConfig()
	cfg.EchoLifetime = 2.0
	e := New(cfg, &scriptRand{})

	s := e.Step(Stimulus{}, true) // trace at T=1
	if s.EchoCount != 1 {
		t.Fatalf("echo count at T=1: %d, want 1", s.EchoCount)
	}

	s = e.Step(Stimulus{}, false) // T=2
	if s.EchoCount != 1 {
		t.Fatalf("echo count at T=2: %d, want 1", s.EchoCount)
	}
	s = e.Step(Stimulus{}, false) // T=3 == T+lifetime, still inside window
	if s.EchoCount != 1 {
		t.Fatalf("echo count at T=3: %d, want 1", s.EchoCount)
	}
	s = e.Step(Stimulus{}, false) // T=4, past the window
	if s.EchoCount != 0 {
		t.Fatalf("echo count at T=4: %d, want 0", s.EchoCount)
	}
}

func TestPeekDoesNotAdvance(t *testing.T) {
	e := New(DefaultConfig(), rand.New(rand.NewSource(42)))

	var last Snapshot
	for i := 0; i < 10; i++ {
		last = e.Step(Text("ping"), i%3 == 0)
	}

	p1 := e.Peek()
	p2 := e.Peek()

	if p1 != p2 {
		t.Fatalf("repeated peeks differ: %+v vs %+v", p1, p2)
	}
	if p1.Time != last.Time {
		t.Fatalf("peek time %v, want %v", p1.Time, last.Time)
	}
	if p1.InternalState != last.InternalState {
		t.Fatalf("peek internal state %v, want %v", p1.InternalState, last.InternalState)
	}
	if p1.AwarenessTotal != last.AwarenessTotal {
		t.Fatalf("peek awareness total %d, want %d", p1.AwarenessTotal, last.AwarenessTotal)
	}
	if p1.EchoCount != last.EchoCount {
		t.Fatalf("peek echo count %d, want %d", p1.EchoCount, last.EchoCount)
	}
	if p1.Reason != ReasonSnapshotOnly {
		t.Fatalf("peek reason %q, want %q", p1.Reason, ReasonSnapshotOnly)
	}
	if p1.Delta != 0 {
		t.Fatalf("peek delta %v, want 0", p1.Delta)
	}
	if p1.ActOfAwareness {
		t.Fatal("peek must not report an act of awareness")
	}

	// The next step must see state untouched by the peeks.
	s := e.Step(Stimulus{}, false)
	if s.Time != last.Time+1 {
		t.Fatalf("time after peek %v, want %v", s.Time, last.Time+1)
	}
}

func TestStepInvariantsOverLongRun(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	inputs := rand.New(rand.NewSource(8))
	e := New(DefaultConfig(), rnd)

	lastTotal := 0
	for i := 0; i < 500; i++ {
		var stim Stimulus
		switch inputs.Intn(3) {
		case 0:
			stim = Number(inputs.Float64()*4 - 2)
		case 1:
			stim = Text("signal")
		}
		s := e.Step(stim, inputs.Intn(4) == 0)

		if s.Pulse < 0 || s.Pulse > 1 {
			t.Fatalf("step %d: pulse %v out of [0,1]", i, s.Pulse)
		}
		if s.EchoCount != len(e.echoTraces) {
			t.Fatalf("step %d: echo count %d != traces %d", i, s.EchoCount, len(e.echoTraces))
		}
		if s.AwarenessTotal < lastTotal {
			t.Fatalf("step %d: awareness total decreased %d → %d", i, lastTotal, s.AwarenessTotal)
		}
		if s.ActOfAwareness && s.AwarenessTotal != lastTotal+1 {
			t.Fatalf("step %d: act did not increment total by 1 (%d → %d)", i, lastTotal, s.AwarenessTotal)
		}
		if !s.ActOfAwareness && s.AwarenessTotal != lastTotal {
			t.Fatalf("step %d: total changed without an act (%d → %d)", i, lastTotal, s.AwarenessTotal)
		}
		if s.ActOfAwareness == (s.Reason == ReasonAutomatic) {
			t.Fatalf("step %d: reason %q inconsistent with act=%v", i, s.Reason, s.ActOfAwareness)
		}
		lastTotal = s.AwarenessTotal
	}
}

func TestBaseFreqStaysBounded(t *testing.T) {
	cfg := DefaultConfig()
	cfg.RhythmChangeProb = 1.0 // perturb every step
	e := New(cfg, rand.New(rand.NewSource(3)))

	for i := 0; i < 300; i++ {
		e.Step(Stimulus{}, false)
		if e.baseFreq < 0.05 || e.baseFreq > 0.3 {
			t.Fatalf("step %d: base freq %v out of [0.05, 0.3]", i, e.baseFreq)
		}
	}
}
