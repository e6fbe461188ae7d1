package navstate

// Command is a navigation request produced from a key press.
type Command int

const (
	NoCommand Command = iota
	MoveSelectionDown
	MoveSelectionUp
	Ascend
	Descend
	Quit
)

func (c Command) String() string {
	switch c {
	case NoCommand:
		return "none"
	case MoveSelectionDown:
		return "down"
	case MoveSelectionUp:
		return "up"
	case Ascend:
		return "ascend"
	case Descend:
		return "descend"
	case Quit:
		return "quit"
	default:
		return "unknown"
	}
}
