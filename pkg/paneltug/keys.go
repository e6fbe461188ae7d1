package paneltug

import (
	"github.com/filetug/paneltug/pkg/paneltug/navstate"
	"github.com/gdamore/tcell/v2"
)

// CommandForKey maps a key press to a navigation command.
// Keys without a binding map to navstate.NoCommand.
func CommandForKey(event *tcell.EventKey) navstate.Command {
	switch event.Key() {
	case tcell.KeyDown:
		return navstate.MoveSelectionDown
	case tcell.KeyUp:
		return navstate.MoveSelectionUp
	case tcell.KeyLeft:
		return navstate.Ascend
	case tcell.KeyRight:
		return navstate.Descend
	case tcell.KeyRune:
		if event.Rune() == 'q' && event.Modifiers() == tcell.ModNone {
			return navstate.Quit
		}
	}
	return navstate.NoCommand
}
