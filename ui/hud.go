package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/bigfish/ui/locale"
)

// HUDData holds all the data needed to render the in-game HUD.
type HUDData struct {
	Score        int
	Width        float64
	MaxSize      float64
	Difficulty   int
	Won          bool
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders score, growth progress and the controls legend.
type HUD struct {
	renderer *Renderer
	loc      *locale.Localizer
}

// NewHUD creates a new HUD renderer.
func NewHUD(loc *locale.Localizer) *HUD {
	return &HUD{
		renderer: NewRenderer(),
		loc:      loc,
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	t := h.renderer.Theme
	x, y := t.Padding, t.Padding

	rl.DrawText(h.loc.T(locale.Score, data.Score), x, y, t.FontSize, t.TextColor)
	y += t.LineHeight

	rl.DrawText(h.loc.T(locale.Size, data.Width, data.MaxSize), x, y, t.FontSize-4, t.MutedColor)
	y += t.LineHeight - 4

	fill := t.BarFill
	if data.Won {
		fill = t.BarFillWon
	}
	h.renderer.DrawProgress(x, y, 200, 10, data.Width, data.MaxSize, fill)

	diff := h.loc.T(locale.Difficulty, data.Difficulty)
	w := rl.MeasureText(diff, t.FontSize-4)
	rl.DrawText(diff, data.ScreenWidth-w-t.Padding, t.Padding, t.FontSize-4, t.MutedColor)

	h.DrawControls(data.ScreenHeight)
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32) {
	rl.DrawText(h.loc.T(locale.Controls), h.renderer.Theme.Padding, screenHeight-25, 14, rl.Gray)
}
