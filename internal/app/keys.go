package app

import "strings"

// keyBindings maps ebiten key names to viewer actions.
var keyBindings = []struct {
	key    string
	action Action
}{
	{"Q", ActionQuit},
	{"Escape", ActionQuit},
	{"Space", ActionTogglePause},
	{"P", ActionTogglePause},
	{"Enter", ActionResume},
	{"S", ActionStepOnce},
	{"C", ActionClear},
	{"R", ActionReset},
	{"N", ActionReseed},
	{"F", ActionToggleUnlock},
}

// actionForKey returns the action bound to the named key, ignoring case.
func actionForKey(name string) (Action, bool) {
	for _, b := range keyBindings {
		if strings.EqualFold(b.key, name) {
			return b.action, true
		}
	}
	return 0, false
}
