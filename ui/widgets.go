package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DimScreen darkens everything drawn so far.
func (r *Renderer) DimScreen(width, height int32) {
	rl.DrawRectangle(0, 0, width, height, r.Theme.Dim)
}

// DrawCentered draws text horizontally centered on cx and returns the next line's Y.
func (r *Renderer) DrawCentered(text string, cx, y, size int32, color rl.Color) int32 {
	w := rl.MeasureText(text, size)
	rl.DrawText(text, cx-w/2, y, size, color)
	return y + size + r.Theme.Padding/2
}

// DrawProgress draws a fill bar for current/max, clamped to full.
func (r *Renderer) DrawProgress(x, y, width, height int32, current, max float64, fill rl.Color) {
	ratio := float32(0)
	if max > 0 {
		ratio = float32(current / max)
		if ratio > 1 {
			ratio = 1
		}
	}

	rl.DrawRectangle(x, y, width, height, r.Theme.BarBg)
	rl.DrawRectangle(x, y, int32(float32(width)*ratio), height, fill)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// buttonRect returns a theme-sized button centered on cx.
func (r *Renderer) buttonRect(cx, y float32) rl.Rectangle {
	return rl.Rectangle{
		X:      cx - r.Theme.ButtonWidth/2,
		Y:      y,
		Width:  r.Theme.ButtonWidth,
		Height: r.Theme.ButtonHeight,
	}
}
