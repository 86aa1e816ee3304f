package mood

import (
	"fmt"
	"strings"

	"github.com/danielpatrickdp/conscious-field/go-core/internal/engine"
)

// #region render-field

// RenderField formats a snapshot as a one-line field view: flags, the main
// rhythm figures, and a pulse bar.
func RenderField(s engine.Snapshot) string {
	irregular := "."
	if s.IrregularRhythm {
		irregular = "*"
	}
	echo := "."
	if s.EchoCount > 0 {
		echo = "~"
	}
	bar := strings.Repeat("#", int(s.Pulse*40))

	return fmt.Sprintf("%s%s pulse=%.2f att=%.2f echo=%2d |%s",
		irregular, echo, s.Pulse, s.AttentionLevel, s.EchoCount, bar)
}

// #endregion render-field

// #region render-process

// RenderProcess formats a snapshot as a one-line process view: the signed
// internal/external figures, a direction bar, and the awareness verdict.
func RenderProcess(s engine.Snapshot) string {
	arrow := "<"
	if s.Direction > 0 {
		arrow = ">"
	}
	mag := s.Direction
	if mag < 0 {
		mag = -mag
	}
	n := int(mag * 8)
	if n < 1 {
		n = 1
	}
	if n > 20 {
		n = 20
	}
	dirBar := strings.Repeat(arrow, n)

	flag := "."
	if s.ActOfAwareness {
		flag = "* ACT"
	}

	return fmt.Sprintf("%s t=%3.0f ext=%+.2f int=%+.2f tot=%+.2f d=%+.2f dir=%+.2f %s [reason=%s, total_acts=%d]",
		flag, s.Time, s.ExternalSignal, s.InternalState, s.TotalState,
		s.Delta, s.Direction, dirBar, s.Reason, s.AwarenessTotal)
}

// #endregion render-process
