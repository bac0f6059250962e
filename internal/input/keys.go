package input

import "strings"

// KeyQuit is returned by KeyAction for keys that end the game.
const KeyQuit = "quit"

var keyActions = map[string]string{
	"w":     "up",
	"a":     "left",
	"s":     "down",
	"d":     "right",
	" ":     "toggle",
	"space": "toggle",
}

// KeyAction maps a WASD key to an action. q and ctrl+c map to KeyQuit; any
// other key reports false.
func KeyAction(key string) (string, bool) {
	switch k := strings.ToLower(key); k {
	case "q", "ctrl+c", "\x03":
		return KeyQuit, true
	default:
		a, ok := keyActions[k]
		return a, ok
	}
}
