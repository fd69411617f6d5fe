package render

import (
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lixenwraith/diamond-run/core"
	"github.com/lixenwraith/diamond-run/engine"
	"github.com/lixenwraith/diamond-run/parameter"
	"github.com/lixenwraith/diamond-run/status"
	"github.com/lixenwraith/diamond-run/vmath"
)

// ArenaView draws the published snapshot: background, goal, enemies, then player on top
type ArenaView struct {
	*tview.Box

	palette Palette
	snap    engine.Snapshot

	now         func() time.Time
	frames      int
	windowStart time.Time
	fps         *status.AtomicFloat
}

// NewArenaView creates the arena primitive; fps may be nil
func NewArenaView(palette Palette, fps *status.AtomicFloat) *ArenaView {
	if fps == nil {
		fps = &status.AtomicFloat{}
	}
	a := &ArenaView{
		Box:     tview.NewBox(),
		palette: palette,
		now:     time.Now,
		fps:     fps,
	}
	a.SetBorder(true).
		SetBorderColor(palette.Color(RgbBorder)).
		SetTitleColor(palette.Color(RgbHUDText))
	return a
}

// SetSnapshot replaces the state drawn on the next frame
func (a *ArenaView) SetSnapshot(snap engine.Snapshot) {
	a.snap = snap
	a.SetTitle(" " + snap.Theme.Name + " ")
	a.SetBackgroundColor(a.palette.Color(snap.Theme.Background))
}

// FPS returns the draw rate measured over the last second
func (a *ArenaView) FPS() float64 {
	return a.fps.Get()
}

// Draw renders the arena; called by tview on the UI goroutine
func (a *ArenaView) Draw(screen tcell.Screen) {
	a.Box.DrawForSubclass(screen, a)
	a.countFrame()

	x, y, w, h := a.GetInnerRect()
	if w <= 0 || h <= 0 {
		return
	}
	vp := Viewport{X: x, Y: y, W: w, H: h}
	bg := a.palette.Color(a.snap.Theme.Background)

	if a.snap.Phase != engine.PhasePlaying {
		return
	}
	state := a.snap.State

	goalStyle := tcell.StyleDefault.Background(bg).Foreground(a.palette.Color(RgbGoal)).Bold(true)
	fillBox(screen, vp, state.Goal.Box(), parameter.GoalChar, goalStyle)

	for i := range state.Enemies {
		e := &state.Enemies[i]
		color, glyph := e.Color, parameter.EnemyChar
		if e.Mode == core.ModeSeek {
			color = color.Blend(RgbSeekTint, parameter.SeekTintAlpha)
			glyph = parameter.EnemySeekChar
		}
		style := tcell.StyleDefault.Background(bg).Foreground(a.palette.Color(color))
		fillBox(screen, vp, e.Box(), glyph, style)
	}

	playerStyle := tcell.StyleDefault.Background(bg).Foreground(a.palette.Color(RgbPlayer)).Bold(true)
	fillBox(screen, vp, state.Player.Box(), parameter.PlayerChar, playerStyle)
}

func (a *ArenaView) countFrame() {
	now := a.now()
	if a.windowStart.IsZero() {
		a.windowStart = now
	}
	a.frames++
	if elapsed := now.Sub(a.windowStart); elapsed >= time.Second {
		a.fps.Set(float64(a.frames) / elapsed.Seconds())
		a.frames = 0
		a.windowStart = now
	}
}

// fillBox paints glyph over every cell an arena box covers
func fillBox(screen tcell.Screen, vp Viewport, box vmath.Rect, glyph rune, style tcell.Style) {
	x0, y0, x1, y1 := vp.Cells(box)
	for cy := y0; cy <= y1; cy++ {
		for cx := x0; cx <= x1; cx++ {
			screen.SetContent(cx, cy, glyph, nil, style)
		}
	}
}
