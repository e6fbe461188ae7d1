package files

import (
	"context"
	"os"
)

// Store lists immediate children of a directory.
type Store interface {
	RootTitle() string
	ReadDir(ctx context.Context, name string) ([]os.DirEntry, error)
}
