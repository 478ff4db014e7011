package ui

import (
	gui "github.com/gen2brain/raylib-go/raygui"

	"github.com/pthm-cable/bigfish/ui/locale"
)

// ModalAction is the button pressed in a modal this frame.
type ModalAction int

const (
	ModalNone ModalAction = iota
	ModalResume
	ModalMenu
	ModalContinue
	ModalEnd
)

// Modals draws the pause, victory and game over dialogs.
type Modals struct {
	renderer *Renderer
	loc      *locale.Localizer
}

// NewModals creates the modal renderer.
func NewModals(loc *locale.Localizer) *Modals {
	return &Modals{renderer: NewRenderer(), loc: loc}
}

// modal draws a dimmed panel with a title, an optional body line and two buttons.
func (m *Modals) modal(screenW, screenH int32, title, body, first, second string, a, b ModalAction) ModalAction {
	r := m.renderer
	t := r.Theme
	r.DimScreen(screenW, screenH)

	panelW, panelH := int32(480), int32(240)
	px, py := (screenW-panelW)/2, (screenH-panelH)/2
	r.DrawPanel(px, py, panelW, panelH)

	cx := screenW / 2
	y := py + t.Padding
	y = r.DrawCentered(title, cx, y, t.TitleSize-8, t.TitleColor)
	if body != "" {
		y = r.DrawCentered(body, cx, y, t.FontSize, t.TextColor)
	}

	by := float32(py+panelH-t.Padding) - t.ButtonHeight
	gap := t.ButtonWidth/2 + float32(t.Padding)/2
	action := ModalNone
	if gui.Button(r.buttonRect(float32(cx)-gap, by), first) {
		action = a
	}
	if gui.Button(r.buttonRect(float32(cx)+gap, by), second) {
		action = b
	}
	return action
}

// DrawPause renders the manual pause dialog.
func (m *Modals) DrawPause(screenW, screenH int32) ModalAction {
	return m.modal(screenW, screenH,
		m.loc.T(locale.Paused), "",
		m.loc.T(locale.Resume), m.loc.T(locale.Menu),
		ModalResume, ModalMenu)
}

// DrawVictory renders the win dialog.
func (m *Modals) DrawVictory(screenW, screenH int32, score int) ModalAction {
	return m.modal(screenW, screenH,
		m.loc.T(locale.Victory), m.loc.T(locale.VictoryBody, score),
		m.loc.T(locale.Continue), m.loc.T(locale.End),
		ModalContinue, ModalEnd)
}

// DrawGameOver renders the death dialog.
func (m *Modals) DrawGameOver(screenW, screenH int32, score int) ModalAction {
	r := m.renderer
	t := r.Theme
	r.DimScreen(screenW, screenH)

	panelW, panelH := int32(420), int32(220)
	px, py := (screenW-panelW)/2, (screenH-panelH)/2
	r.DrawPanel(px, py, panelW, panelH)

	cx := screenW / 2
	y := py + t.Padding
	y = r.DrawCentered(m.loc.T(locale.GameOver), cx, y, t.TitleSize, t.TitleColor)
	r.DrawCentered(m.loc.T(locale.FinalScore, score), cx, y, t.FontSize, t.TextColor)

	by := float32(py+panelH-t.Padding) - t.ButtonHeight
	if gui.Button(r.buttonRect(float32(cx), by), m.loc.T(locale.BackToMenu)) {
		return ModalMenu
	}
	return ModalNone
}
