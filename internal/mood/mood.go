// Package mood translates engine snapshots into natural-language context for
// a language model and into console renderings for debugging.
package mood

import (
	"strings"

	"github.com/danielpatrickdp/conscious-field/go-core/internal/engine"
)

// #region style

// Style selects the phrasing of the generated context.
type Style string

const (
	// StyleAura uses direct mood/arousal wording.
	StyleAura Style = "aura"
	// StyleOrion uses calmer, field-flavored wording.
	StyleOrion Style = "orion"
)

// #endregion style

// #region thresholds

// Threshold constants shared by both styles.
const (
	valenceHigh  = 0.5
	valenceLow   = -0.5
	arousalHigh  = 0.8
	arousalLow   = 0.2
	noisyEchoMin = 5
)

// #endregion thresholds

// #region context

// Context converts a snapshot into instruction sentences describing mood,
// arousal, and cognitive noise. The result is injected as a system note
// ahead of language-model calls.
func Context(s engine.Snapshot, style Style) string {
	if style == StyleOrion {
		return orionContext(s)
	}
	return auraContext(s)
}

func auraContext(s engine.Snapshot) string {
	var parts []string

	switch {
	case s.InternalState < valenceLow:
		parts = append(parts, "Mood: NEGATIVE. You feel tense or irritated. Keep responses short and guarded.")
	case s.InternalState > valenceHigh:
		parts = append(parts, "Mood: POSITIVE. You feel energized and lively. Be warm and enthusiastic.")
	default:
		parts = append(parts, "Mood: NEUTRAL and balanced.")
	}

	switch {
	case s.Pulse > arousalHigh:
		parts = append(parts, "Arousal: HIGH. Your pulse is racing. Your speech may speed up.")
	case s.Pulse < arousalLow:
		parts = append(parts, "Arousal: LOW. Your pulse is slow. You speak calmly or dreamily.")
	}

	if s.EchoCount > noisyEchoMin {
		parts = append(parts, "Mind: NOISY. Many echoes make it harder to focus.")
	}

	return strings.Join(parts, " ")
}

func orionContext(s engine.Snapshot) string {
	var parts []string

	switch {
	case s.InternalState < valenceLow:
		parts = append(parts, "Mood: DENSE/CONTRACTED. The field feels heavier. Prefer shorter, economical answers.")
	case s.InternalState > valenceHigh:
		parts = append(parts, "Mood: OPEN/EXPANSIVE. The field feels lighter and wider. Allow warmth and gentle curiosity.")
	default:
		parts = append(parts, "Mood: NEUTRAL/BALANCED. The field is centered and clear.")
	}

	switch {
	case s.Pulse > arousalHigh:
		parts = append(parts, "Arousal: HIGH but FOCUSED. Respond with more momentum, yet remain ordered.")
	case s.Pulse < arousalLow:
		parts = append(parts, "Arousal: LOW/SOFT. Respond calmly, with more space and simplicity.")
	}

	if s.EchoCount > noisyEchoMin {
		parts = append(parts, "Mind: MANY ECHOES. Acknowledge nuance instead of forcing sharp clarity.")
	}

	return strings.Join(parts, " ")
}

// #endregion context

// #region awareness-instruction

// AwarenessInstruction returns the self-initiated-speech instruction for a
// non-automatic step, or "" for any other reason.
func AwarenessInstruction(reason engine.Reason) string {
	switch reason {
	case engine.ReasonSpontaneous:
		return "You just felt a sudden internal shift without external cause. Spontaneously comment on this feeling or start a new topic. Do not wait for user input."
	case engine.ReasonDominant:
		return "Your internal feelings are now stronger than the external environment. Express this inner intensity immediately."
	default:
		return ""
	}
}

// #endregion awareness-instruction
