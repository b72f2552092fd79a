package cmd

import (
	"path/filepath"
	"runtime"

	"github.com/gixlabs/gix/shared/fileutil"
)

// DefaultDataDir is the default data directory to use for the databases and other
// persistence requirements.
func DefaultDataDir() string {
	// Try to place the data folder in the user's home dir
	home := fileutil.HomeDir()
	if home != "" {
		if runtime.GOOS == "darwin" {
			return filepath.Join(home, "Library", "Gix")
		} else if runtime.GOOS == "windows" {
			return filepath.Join(home, "AppData", "Local", "Gix")
		} else {
			return filepath.Join(home, ".gix")
		}
	}
	// As we cannot guess a stable location, return empty and handle later
	return ""
}

// DefaultWalletPath is where the CLI stores its signing key unless told
// otherwise.
func DefaultWalletPath() string {
	dataDir := DefaultDataDir()
	if dataDir == "" {
		return ""
	}
	return filepath.Join(dataDir, "wallet.json")
}
