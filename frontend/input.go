package frontend

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/bigfish/game"
)

// heldKeys maps keys that steer while held.
var heldKeys = []struct {
	key    int32
	intent game.Intents
}{
	{rl.KeyUp, game.IntentUp},
	{rl.KeyW, game.IntentUp},
	{rl.KeyDown, game.IntentDown},
	{rl.KeyS, game.IntentDown},
	{rl.KeyLeft, game.IntentLeft},
	{rl.KeyA, game.IntentLeft},
	{rl.KeyRight, game.IntentRight},
	{rl.KeyD, game.IntentRight},
}

// pauseKeys toggle pause on press.
var pauseKeys = []int32{rl.KeyP, rl.KeySpace, rl.KeyEscape}

// PollIntents reads the keyboard into this frame's intents.
func PollIntents() game.Intents {
	var in game.Intents
	for _, k := range heldKeys {
		if rl.IsKeyDown(k.key) {
			in |= k.intent
		}
	}
	for _, k := range pauseKeys {
		if rl.IsKeyPressed(k) {
			in |= game.IntentPauseToggle
			break
		}
	}
	return in
}
