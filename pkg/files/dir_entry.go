package files

import (
	"os"
	"path/filepath"
)

// NewDirEntry creates an entry as reported by a directory listing.
// Only the listing's own type bits are kept: a symlink is never resolved.
func NewDirEntry(name string, isDir bool) DirEntry {
	if parent, _ := filepath.Split(name); parent != "" {
		// It's OK to have panic here.
		panic("dir entry name can not have path: " + name)
	}
	return DirEntry{
		name:  name,
		isDir: isDir,
	}
}

// FromOSDirEntry copies name and directory flag of an os.DirEntry.
func FromOSDirEntry(entry os.DirEntry) DirEntry {
	return NewDirEntry(entry.Name(), entry.IsDir())
}

var _ os.DirEntry = (*DirEntry)(nil)

// DirEntry is an immutable child of a directory.
type DirEntry struct {
	name  string
	isDir bool
}

func (d DirEntry) Name() string { return d.name }
func (d DirEntry) IsDir() bool  { return d.isDir }
func (d DirEntry) Type() os.FileMode {
	if d.isDir {
		return os.ModeDir
	}
	return 0
}
func (d DirEntry) Info() (os.FileInfo, error) {
	return nil, nil
}
