package render

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/lixenwraith/diamond-run/engine"
	"github.com/lixenwraith/diamond-run/parameter"
)

// HUD formats the status line with locale-aware number grouping
type HUD struct {
	printer *message.Printer
}

// NewHUD creates a formatter for tag; an undefined tag uses English
func NewHUD(tag language.Tag) *HUD {
	if tag == language.Und {
		tag = language.English
	}
	return &HUD{printer: message.NewPrinter(tag)}
}

// Line renders the HUD for a snapshot; audio is the indicator prefix
func (h *HUD) Line(snap engine.Snapshot, fps float64, audio string) string {
	switch snap.Phase {
	case engine.PhasePlaying:
		return h.printer.Sprintf("%sLevel %d/%d  %s  enemies %d  time %.1fs  tick %d  %.0f fps",
			audio,
			snap.State.Level, parameter.MaxLevel,
			snap.Theme.Name,
			len(snap.State.Enemies),
			snap.Clock.Seconds(),
			snap.Tick,
			fps,
		)
	case engine.PhaseVictory:
		return h.printer.Sprintf("%sVictory  time %.1fs  tick %d", audio, snap.Clock.Seconds(), snap.Tick)
	default:
		return h.printer.Sprintf("%sDiamond Run  %d levels", audio, parameter.MaxLevel)
	}
}
