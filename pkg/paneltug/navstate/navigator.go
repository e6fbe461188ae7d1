package navstate

import (
	"context"
	"path/filepath"

	"github.com/filetug/paneltug/pkg/files"
	"github.com/sirupsen/logrus"
)

// State is the parent/current/child triple shown by the three panes.
// Current always holds a Directory or a ReadError.
type State struct {
	Parent  Slot
	Current Slot
	Child   Slot
}

// Navigator computes states from directory reads and commands.
// It keeps no state of its own.
type Navigator struct {
	store files.Store
	o     navigatorOptions
}

type navigatorOptions struct {
	logger logrus.FieldLogger
}

type NavigatorOption func(o *navigatorOptions)

func WithLogger(logger logrus.FieldLogger) NavigatorOption {
	return func(o *navigatorOptions) {
		o.logger = logger
	}
}

func New(store files.Store, options ...NavigatorOption) *Navigator {
	nav := &Navigator{
		store: store,
		o: navigatorOptions{
			logger: logrus.StandardLogger(),
		},
	}
	for _, option := range options {
		option(&nav.o)
	}
	return nav
}

// Init builds the state for startDir, which is expected to be absolute.
func (nav *Navigator) Init(ctx context.Context, startDir string) State {
	startDir = filepath.Clean(startDir)
	current := nav.Read(ctx, startDir).withDefaultSelection()
	return State{
		Parent:  nav.readParent(ctx, startDir),
		Current: current,
		Child:   nav.DeriveChild(ctx, current),
	}
}

// Apply returns the state that follows s after cmd.
// Quit and unknown commands return s unchanged.
func (nav *Navigator) Apply(ctx context.Context, s State, cmd Command) State {
	nav.o.logger.WithFields(logrus.Fields{
		"command": cmd.String(),
		"path":    s.Current.Path(),
	}).Debug("apply")
	switch cmd {
	case MoveSelectionDown:
		return nav.moveSelection(ctx, s, 1)
	case MoveSelectionUp:
		return nav.moveSelection(ctx, s, -1)
	case Ascend:
		return nav.ascend(ctx, s)
	case Descend:
		return nav.descend(ctx, s)
	default:
		return s
	}
}

// Read lists a directory. Failures become a ReadError slot.
func (nav *Navigator) Read(ctx context.Context, dirPath string) Slot {
	children, err := nav.store.ReadDir(ctx, dirPath)
	if err != nil {
		nav.o.logger.WithField("path", dirPath).WithError(err).Warn("failed to read directory")
		return ReadError(dirPath, err.Error())
	}
	entries := make([]files.DirEntry, len(children))
	for i, child := range children {
		entries[i] = files.FromOSDirEntry(child)
	}
	return Directory(NewListing(dirPath, entries))
}

// DeriveChild computes the child slot from the selection of current.
func (nav *Navigator) DeriveChild(ctx context.Context, current Slot) Slot {
	listing, ok := current.Listing()
	if !ok {
		return Empty()
	}
	entry, ok := listing.SelectedEntry()
	if !ok {
		return Empty()
	}
	childPath := filepath.Join(listing.Path(), entry.Name())
	if entry.IsDir() {
		return nav.Read(ctx, childPath)
	}
	return File(childPath)
}

func (nav *Navigator) moveSelection(ctx context.Context, s State, delta int) State {
	listing, ok := s.Current.Listing()
	if !ok || listing.Len() == 0 {
		return s
	}
	i, _ := listing.Selected()
	moved := listing.WithSelection(i + delta)
	if j, _ := moved.Selected(); j == i {
		// child depends only on path and selection
		return s
	}
	current := Directory(moved)
	return State{
		Parent:  s.Parent,
		Current: current,
		Child:   nav.DeriveChild(ctx, current),
	}
}

func (nav *Navigator) ascend(ctx context.Context, s State) State {
	parent, ok := s.Parent.Listing()
	if !ok {
		return s
	}
	current := Directory(parent.WithDefaultSelection())
	return State{
		Parent:  nav.readParent(ctx, parent.Path()),
		Current: current,
		Child:   nav.DeriveChild(ctx, current),
	}
}

func (nav *Navigator) descend(ctx context.Context, s State) State {
	listing, ok := s.Current.Listing()
	if !ok {
		return s
	}
	entry, ok := listing.SelectedEntry()
	if !ok {
		return s
	}
	if !entry.IsDir() {
		return State{
			Parent:  s.Parent,
			Current: s.Current,
			Child:   nav.DeriveChild(ctx, s.Current),
		}
	}
	childPath := filepath.Join(listing.Path(), entry.Name())
	current := s.Child
	if current.Path() != childPath || (current.Kind() != SlotDirectory && current.Kind() != SlotReadError) {
		current = nav.Read(ctx, childPath)
	}
	current = current.withDefaultSelection()
	return State{
		Parent:  s.Current,
		Current: current,
		Child:   nav.DeriveChild(ctx, current),
	}
}

// readParent reads the filesystem parent of dirPath and selects dirPath in it.
// The root has no parent.
func (nav *Navigator) readParent(ctx context.Context, dirPath string) Slot {
	parentPath := filepath.Dir(dirPath)
	if parentPath == dirPath {
		return Empty()
	}
	parent := nav.Read(ctx, parentPath)
	if listing, ok := parent.Listing(); ok {
		if i := listing.IndexOf(filepath.Base(dirPath)); i >= 0 {
			parent = Directory(listing.WithSelection(i))
		}
	}
	return parent
}
