package bridge

import (
	"context"
	"log"
	"math"
	"sync"
	"time"

	"github.com/danielpatrickdp/conscious-field/go-core/internal/engine"
	"github.com/danielpatrickdp/conscious-field/go-core/internal/journal"
	"github.com/danielpatrickdp/conscious-field/go-core/internal/mood"
)

// #region agent-struct

// Agent owns the engine and serializes every Step and Peek under a single
// lock, so the heartbeat loop and user input can drive it concurrently.
//
// A failed downstream call never rolls back or skips a step: the engine
// advances first, then the language model is consulted.
type Agent struct {
	mu sync.Mutex

	cfg     Config
	eng     *engine.Engine
	client  ChatClient
	journal *journal.Journal // optional

	history         []Message
	lastInteraction time.Time

	// OnSpeech receives self-initiated utterances from the heartbeat loop.
	OnSpeech func(text string)
}

// NewAgent wires an agent. jrnl may be nil to disable journaling.
func NewAgent(cfg Config, eng *engine.Engine, client ChatClient, jrnl *journal.Journal) *Agent {
	return &Agent{
		cfg:     cfg,
		eng:     eng,
		client:  client,
		journal: jrnl,
		history: []Message{{Role: RoleSystem, Content: cfg.persona()}},
	}
}

// #endregion agent-struct

// #region handle-input

// HandleInput steps the engine with the text's sentiment signal and full
// attention, then asks the model for a reply colored by the resulting mood.
func (a *Agent) HandleInput(ctx context.Context, text string) (string, error) {
	a.mu.Lock()
	signal := SentimentSignal(text)
	snap := a.eng.Step(engine.Number(signal), true)
	a.lastInteraction = time.Now()
	a.record("input", snap)

	msgs := make([]Message, len(a.history), len(a.history)+2)
	copy(msgs, a.history)
	a.mu.Unlock()

	msgs = append(msgs,
		Message{Role: RoleSystem, Content: "[INTERNAL STATE]: " + mood.Context(snap, a.cfg.Style())},
		Message{Role: RoleUser, Content: text},
	)

	reply, err := a.client.Complete(ctx, msgs, a.temperature(snap))
	if err != nil {
		// The step stands; only the reply is lost.
		return "", err
	}

	a.mu.Lock()
	a.history = append(a.history,
		Message{Role: RoleUser, Content: text},
		Message{Role: RoleAssistant, Content: reply},
	)
	a.mu.Unlock()

	return reply, nil
}

// #endregion handle-input

// #region heartbeat

// Heartbeat drives the engine on the configured interval until ctx is
// cancelled. Attention stays on while the last interaction is within the
// attention window. Acts of awareness trigger self-initiated speech.
func (a *Agent) Heartbeat(ctx context.Context) {
	ticker := time.NewTicker(a.cfg.TickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			snap := a.Tick()
			if snap.ActOfAwareness {
				a.speakSpontaneously(ctx, snap)
			}
		}
	}
}

// Tick performs one heartbeat step with no external input.
func (a *Agent) Tick() engine.Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	attention := !a.lastInteraction.IsZero() &&
		time.Since(a.lastInteraction) < a.cfg.AttentionWindow
	snap := a.eng.Step(engine.Stimulus{}, attention)
	a.record("heartbeat", snap)
	return snap
}

// speakSpontaneously asks the model to speak unprompted, per the step's
// awareness reason.
func (a *Agent) speakSpontaneously(ctx context.Context, snap engine.Snapshot) {
	instruction := mood.AwarenessInstruction(snap.Reason)
	if instruction == "" {
		return
	}

	a.mu.Lock()
	msgs := make([]Message, len(a.history), len(a.history)+1)
	copy(msgs, a.history)
	a.mu.Unlock()

	msgs = append(msgs, Message{
		Role: RoleSystem,
		Content: "[INTERNAL STATE]: " + mood.Context(snap, a.cfg.Style()) +
			" SPECIAL INSTRUCTION: " + instruction,
	})

	reply, err := a.client.Complete(ctx, msgs, a.temperature(snap))
	if err != nil {
		log.Printf("spontaneous speech failed: %v", err)
		return
	}

	a.mu.Lock()
	a.history = append(a.history, Message{Role: RoleAssistant, Content: reply})
	a.mu.Unlock()

	if a.OnSpeech != nil {
		a.OnSpeech(reply)
	}
}

// #endregion heartbeat

// #region snapshot

// Snapshot returns the latest known condition without advancing the
// simulation.
func (a *Agent) Snapshot() engine.Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.eng.Peek()
}

// #endregion snapshot

// #region helpers

// temperature scales creativity with mood intensity.
func (a *Agent) temperature(s engine.Snapshot) float64 {
	return a.cfg.BaseTemperature + math.Abs(s.InternalState)*0.2
}

// record journals the snapshot; journal failures are logged, never surfaced.
func (a *Agent) record(source string, s engine.Snapshot) {
	if a.journal == nil {
		return
	}
	if err := a.journal.Record(source, s); err != nil {
		log.Printf("journal error: %v", err)
	}
}

// #endregion helpers
