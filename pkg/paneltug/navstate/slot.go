package navstate

type SlotKind int

const (
	SlotEmpty SlotKind = iota
	SlotDirectory
	SlotFile
	SlotReadError
)

func (k SlotKind) String() string {
	switch k {
	case SlotEmpty:
		return "empty"
	case SlotDirectory:
		return "directory"
	case SlotFile:
		return "file"
	case SlotReadError:
		return "read_error"
	default:
		return "unknown"
	}
}

// Slot is what one pane holds: nothing, a directory listing,
// a file reference or the error of a failed directory read.
type Slot struct {
	kind    SlotKind
	path    string
	listing Listing
	message string
}

func Empty() Slot {
	return Slot{kind: SlotEmpty}
}

func Directory(listing Listing) Slot {
	return Slot{kind: SlotDirectory, path: listing.Path(), listing: listing}
}

func File(path string) Slot {
	return Slot{kind: SlotFile, path: path}
}

func ReadError(path, message string) Slot {
	return Slot{kind: SlotReadError, path: path, message: message}
}

func (s Slot) Kind() SlotKind { return s.kind }

// Path is empty for an Empty slot.
func (s Slot) Path() string { return s.path }

// Message is the read error text of a ReadError slot.
func (s Slot) Message() string { return s.message }

// Listing reports false for anything but a Directory slot.
func (s Slot) Listing() (Listing, bool) {
	if s.kind != SlotDirectory {
		return Listing{}, false
	}
	return s.listing, true
}

func (s Slot) withDefaultSelection() Slot {
	if s.kind != SlotDirectory {
		return s
	}
	return Directory(s.listing.WithDefaultSelection())
}
