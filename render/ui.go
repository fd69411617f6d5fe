package render

import (
	"github.com/rivo/tview"
	"golang.org/x/text/language"

	"github.com/lixenwraith/diamond-run/engine"
	"github.com/lixenwraith/diamond-run/parameter"
	"github.com/lixenwraith/diamond-run/status"
)

// Page names
const (
	PageGame    = "game"
	PageMenu    = "menu"
	PageVictory = "victory"
)

// UI is the tview layout: HUD line, arena, key hint, with menu and victory modals on top
type UI struct {
	pages   *tview.Pages
	arena   *ArenaView
	hudView *tview.TextView
	hint    *tview.TextView
	menu    *tview.Modal
	victory *tview.Modal

	hud     *HUD
	palette Palette
	phase   engine.GamePhase
	synced  bool
	visible map[string]bool

	// AudioLabel returns the HUD audio indicator; nil shows nothing
	AudioLabel func() string
}

// NewUI builds the page stack; reg may be nil
func NewUI(palette Palette, reg *status.Registry) *UI {
	if reg == nil {
		reg = status.NewRegistry()
	}
	u := &UI{
		palette: palette,
		visible: map[string]bool{PageGame: true, PageMenu: true},
		hud:     NewHUD(language.English),
		arena:   NewArenaView(palette, reg.Floats.Get(status.KeyFPS)),
	}

	u.hudView = tview.NewTextView().SetDynamicColors(false)
	u.hudView.SetTextColor(palette.Color(RgbHUDAccent))

	u.hint = tview.NewTextView().SetText(parameter.KeyHintText)
	u.hint.SetTextColor(palette.Color(RgbHintText))

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(u.hudView, parameter.TopMargin, 0, false).
		AddItem(u.arena, 0, 1, true).
		AddItem(u.hint, parameter.BottomMargin, 0, false)

	// Text-only modals; the application input capture owns every key
	u.menu = tview.NewModal().SetText(parameter.MenuTitleText)
	u.menu.SetBackgroundColor(palette.Color(RgbModalBg))
	u.menu.SetTextColor(palette.Color(RgbHUDText))

	u.victory = tview.NewModal().SetText(parameter.VictoryTitleText)
	u.victory.SetBackgroundColor(palette.Color(RgbVictoryBg))
	u.victory.SetTextColor(palette.Color(RgbVictoryTxt))

	u.pages = tview.NewPages().
		AddPage(PageGame, layout, true, true).
		AddPage(PageMenu, u.menu, false, true).
		AddPage(PageVictory, u.victory, false, false)

	return u
}

// Root returns the primitive to install with Application.SetRoot
func (u *UI) Root() tview.Primitive {
	return u.pages
}

// Arena returns the arena primitive
func (u *UI) Arena() *ArenaView {
	return u.arena
}

// HUDText returns the current status line
func (u *UI) HUDText() string {
	return u.hudView.GetText(true)
}

// Sync pushes a published snapshot into the widgets; page visibility follows the phase
func (u *UI) Sync(snap engine.Snapshot) {
	u.arena.SetSnapshot(snap)

	label := ""
	if u.AudioLabel != nil {
		label = u.AudioLabel()
	}
	u.hudView.SetText(u.hud.Line(snap, u.arena.FPS(), label))

	if u.synced && snap.Phase == u.phase {
		return
	}
	u.synced = true
	u.phase = snap.Phase

	switch snap.Phase {
	case engine.PhaseMenu:
		u.setVisible(PageVictory, false)
		u.setVisible(PageMenu, true)
	case engine.PhasePlaying:
		u.setVisible(PageMenu, false)
		u.setVisible(PageVictory, false)
	case engine.PhaseVictory:
		u.setVisible(PageMenu, false)
		u.setVisible(PageVictory, true)
	}
}

func (u *UI) setVisible(name string, show bool) {
	if show {
		u.pages.ShowPage(name)
	} else {
		u.pages.HidePage(name)
	}
	u.visible[name] = show
}

// PageVisible reports whether a named page is currently shown
func (u *UI) PageVisible(name string) bool {
	return u.visible[name]
}
