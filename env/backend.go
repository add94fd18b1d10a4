//go:build !wasm
// +build !wasm

package env

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tinywasm/chart/errs"
)

// SetupDefaultLogger configures the default logger for backend environments
func SetupDefaultLogger() Logger {
	return func(a ...any) {
		fmt.Println(a...)
	}
}

// SetupDefaultFileReader reads regular files from disk, rejecting directories.
func SetupDefaultFileReader() ReadFileFunc {
	return func(path string) ([]byte, error) {
		absolutePath, err := filepath.Abs(path)
		if err != nil {
			return nil, errs.New("failed to get absolute path:", err)
		}

		info, err := os.Stat(absolutePath)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, errs.New("file does not exist:", absolutePath)
			}
			return nil, errs.New("failed to stat file:", err)
		}
		if info.IsDir() {
			return nil, errs.New("path is a directory, not a file:", absolutePath)
		}

		return os.ReadFile(absolutePath)
	}
}
