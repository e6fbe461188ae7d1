package ptsettings

import (
	"os"
	"path/filepath"
)

const UserDir = "~/.paneltug"

var osUserHomeDir = os.UserHomeDir

// GetUserDir resolves UserDir. On failure the unexpanded UserDir is returned with the error.
func GetUserDir() (string, error) {
	userHomeDir, err := osUserHomeDir()
	if err != nil {
		return UserDir, err
	}
	return filepath.Join(userHomeDir, UserDir[2:]), nil
}
