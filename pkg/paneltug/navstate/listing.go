package navstate

import (
	"slices"

	"github.com/filetug/paneltug/pkg/files"
)

const noSelection = -1

// Listing is a sorted, read-only snapshot of one directory
// with an optional selected entry.
// Selection changes produce a new Listing; entries are shared, never mutated.
type Listing struct {
	path     string
	entries  []files.DirEntry
	selected int
}

// NewListing sorts a copy of entries and returns a listing without selection.
func NewListing(path string, entries []files.DirEntry) Listing {
	return Listing{
		path:     path,
		entries:  files.SortDirEntries(slices.Clone(entries)),
		selected: noSelection,
	}
}

func (l Listing) Path() string { return l.path }

func (l Listing) Len() int { return len(l.entries) }

// Entries returns a copy of the entries in display order.
func (l Listing) Entries() []files.DirEntry {
	return slices.Clone(l.entries)
}

func (l Listing) Entry(i int) files.DirEntry {
	return l.entries[i]
}

// Selected returns the selected index, if any.
func (l Listing) Selected() (int, bool) {
	if l.selected < 0 || l.selected >= len(l.entries) {
		return noSelection, false
	}
	return l.selected, true
}

func (l Listing) SelectedEntry() (entry files.DirEntry, ok bool) {
	i, ok := l.Selected()
	if !ok {
		return entry, false
	}
	return l.entries[i], true
}

// WithSelection clamps i to [0, Len()-1]. An empty listing stays unselected.
func (l Listing) WithSelection(i int) Listing {
	switch {
	case len(l.entries) == 0:
		i = noSelection
	case i < 0:
		i = 0
	case i >= len(l.entries):
		i = len(l.entries) - 1
	}
	l.selected = i
	return l
}

func (l Listing) WithoutSelection() Listing {
	l.selected = noSelection
	return l
}

// WithDefaultSelection selects the first entry when there is one.
func (l Listing) WithDefaultSelection() Listing {
	return l.WithSelection(0)
}

// IndexOf returns the position of the entry with the given name or -1.
func (l Listing) IndexOf(name string) int {
	return slices.IndexFunc(l.entries, func(e files.DirEntry) bool {
		return e.Name() == name
	})
}
