package files

import (
	"os"
	"sort"
)

// SortDirEntries orders entries with directories first, then by name.
// Names are compared byte-wise, so the order is case-sensitive.
func SortDirEntries(entries []DirEntry) []DirEntry {
	sort.SliceStable(entries, func(i, j int) bool {
		return dirEntryLess(entries[i], entries[j])
	})
	return entries
}

func dirEntryLess(a, b os.DirEntry) bool {
	// Directories first
	if a.IsDir() != b.IsDir() {
		return a.IsDir()
	}
	// Then sort by name
	return a.Name() < b.Name()
}
