package journal

import (
	"path/filepath"
	"testing"

	"github.com/danielpatrickdp/conscious-field/go-core/internal/engine"
)

func openTestJournal(t *testing.T) *Journal {
	t.Helper()
	j, err := Open(filepath.Join(t.TempDir(), "field.db"))
	if err != nil {
		t.Fatalf("open journal: %v", err)
	}
	t.Cleanup(func() { j.Close() })
	return j
}

func sampleSnapshot() engine.Snapshot {
	return engine.Snapshot{
		Time:            12,
		Pulse:           0.61,
		AttentionLevel:  0.4,
		EchoCount:       2,
		InternalState:   -0.35,
		ExternalSignal:  1.0,
		TotalState:      0.65,
		Direction:       0.12,
		Delta:           0.4,
		IrregularRhythm: true,
		ActOfAwareness:  true,
		Reason:          engine.ReasonSpontaneous,
		AwarenessTotal:  4,
	}
}

func TestRecordAndRecentRoundTrip(t *testing.T) {
	j := openTestJournal(t)

	want := sampleSnapshot()
	if err := j.Record("input", want); err != nil {
		t.Fatalf("record: %v", err)
	}

	entries, err := j.Recent(10)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}

	e := entries[0]
	if e.Source != "input" {
		t.Fatalf("source %q, want input", e.Source)
	}
	if e.StepID == "" {
		t.Fatal("missing step id")
	}
	if e.Snapshot != want {
		t.Fatalf("snapshot round-trip mismatch:\n got %+v\nwant %+v", e.Snapshot, want)
	}
	if e.CreatedAt.IsZero() {
		t.Fatal("missing created_at")
	}
}

func TestRecentOrdersNewestFirst(t *testing.T) {
	j := openTestJournal(t)

	for i := 1; i <= 5; i++ {
		s := engine.Snapshot{Time: float64(i), Reason: engine.ReasonAutomatic}
		if err := j.Record("heartbeat", s); err != nil {
			t.Fatalf("record %d: %v", i, err)
		}
	}

	entries, err := j.Recent(3)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	if entries[0].Snapshot.Time != 5 || entries[2].Snapshot.Time != 3 {
		t.Fatalf("unexpected order: %v, %v, %v",
			entries[0].Snapshot.Time, entries[1].Snapshot.Time, entries[2].Snapshot.Time)
	}
}

func TestByReasonFilters(t *testing.T) {
	j := openTestJournal(t)

	for i := 0; i < 4; i++ {
		j.Record("heartbeat", engine.Snapshot{Time: float64(i), Reason: engine.ReasonAutomatic})
	}
	j.Record("heartbeat", sampleSnapshot())

	entries, err := j.ByReason(string(engine.ReasonSpontaneous), 10)
	if err != nil {
		t.Fatalf("by reason: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d spontaneous entries, want 1", len(entries))
	}
	if entries[0].Snapshot.Reason != engine.ReasonSpontaneous {
		t.Fatalf("reason %q, want spontaneous", entries[0].Snapshot.Reason)
	}
}

func TestCountByReason(t *testing.T) {
	j := openTestJournal(t)

	for i := 0; i < 3; i++ {
		j.Record("heartbeat", engine.Snapshot{Time: float64(i), Reason: engine.ReasonAutomatic})
	}
	j.Record("input", sampleSnapshot())

	counts, err := j.CountByReason()
	if err != nil {
		t.Fatalf("count by reason: %v", err)
	}
	if counts[string(engine.ReasonAutomatic)] != 3 {
		t.Fatalf("automatic count %d, want 3", counts[string(engine.ReasonAutomatic)])
	}
	if counts[string(engine.ReasonSpontaneous)] != 1 {
		t.Fatalf("spontaneous count %d, want 1", counts[string(engine.ReasonSpontaneous)])
	}
}
