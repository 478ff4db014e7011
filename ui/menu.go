package ui

import (
	"math"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/bigfish/ui/locale"
)

// StartMenu is the title screen with a difficulty slider and a start button.
type StartMenu struct {
	renderer      *Renderer
	loc           *locale.Localizer
	difficulty    float32
	maxDifficulty int
}

// NewStartMenu creates the menu with the slider at difficulty.
func NewStartMenu(loc *locale.Localizer, difficulty, maxDifficulty int) *StartMenu {
	return &StartMenu{
		renderer:      NewRenderer(),
		loc:           loc,
		difficulty:    float32(difficulty),
		maxDifficulty: maxDifficulty,
	}
}

// Difficulty returns the selected difficulty.
func (m *StartMenu) Difficulty() int {
	return int(math.Round(float64(m.difficulty)))
}

// Draw renders the menu and reports whether Start was pressed.
func (m *StartMenu) Draw(screenW, screenH int32) bool {
	r := m.renderer
	t := r.Theme
	r.DimScreen(screenW, screenH)

	panelW, panelH := int32(460), int32(300)
	px, py := (screenW-panelW)/2, (screenH-panelH)/2
	r.DrawPanel(px, py, panelW, panelH)

	cx := screenW / 2
	y := py + t.Padding
	y = r.DrawCentered(m.loc.T(locale.Title), cx, y, t.TitleSize, t.TitleColor)
	y = r.DrawCentered(m.loc.T(locale.Tagline), cx, y, t.FontSize-4, t.MutedColor)
	y += t.Padding

	y = r.DrawCentered(m.loc.T(locale.Level, m.Difficulty()), cx, y, t.FontSize, t.TextColor)
	sliderW := float32(panelW - 4*t.Padding)
	m.difficulty = gui.SliderBar(
		rl.Rectangle{X: float32(cx) - sliderW/2, Y: float32(y), Width: sliderW, Height: 20},
		"1", m.loc.T("%d", m.maxDifficulty),
		m.difficulty, 1, float32(m.maxDifficulty),
	)
	y += 20 + 2*t.Padding

	return gui.Button(r.buttonRect(float32(cx), float32(y)), m.loc.T(locale.Start))
}
