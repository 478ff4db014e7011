// Package ui draws the HUD, start menu and modal dialogs.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg      rl.Color
	PanelBorder  rl.Color
	Dim          rl.Color
	TitleColor   rl.Color
	TextColor    rl.Color
	MutedColor   rl.Color
	BarBg        rl.Color
	BarFill      rl.Color
	BarFillWon   rl.Color
	Padding      int32
	LineHeight   int32
	FontSize     int32
	TitleSize    int32
	ButtonWidth  float32
	ButtonHeight float32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:      rl.Color{R: 10, G: 30, B: 50, A: 230},
		PanelBorder:  rl.Color{R: 90, G: 160, B: 210, A: 255},
		Dim:          rl.Color{R: 0, G: 0, B: 0, A: 120},
		TitleColor:   rl.Color{R: 255, G: 200, B: 80, A: 255},
		TextColor:    rl.RayWhite,
		MutedColor:   rl.LightGray,
		BarBg:        rl.Color{R: 20, G: 40, B: 60, A: 200},
		BarFill:      rl.Color{R: 255, G: 140, B: 40, A: 255},
		BarFillWon:   rl.Color{R: 120, G: 220, B: 120, A: 255},
		Padding:      16,
		LineHeight:   26,
		FontSize:     20,
		TitleSize:    40,
		ButtonWidth:  200,
		ButtonHeight: 40,
	}
}
