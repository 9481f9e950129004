package core

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ProgramDir returns the directory holding the running executable. Binaries
// built by `go run` live in a throwaway temp directory, so for those the
// working directory is used instead.
func ProgramDir() (string, error) {
	wd, wdErr := os.Getwd()

	exe, err := os.Executable()
	if err != nil {
		if wdErr != nil {
			return "", fmt.Errorf("locate executable: %w", err)
		}
		return wd, nil
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return programDirFrom(exe, os.TempDir(), wd), nil
}

func programDirFrom(exe, tempDir, wd string) string {
	dir := filepath.Dir(exe)
	if wd != "" && isGoRunBuild(dir, tempDir) {
		return wd
	}
	return dir
}

func isGoRunBuild(dir, tempDir string) bool {
	tempDir = filepath.Clean(tempDir)
	if tempDir == "" || tempDir == "." {
		return false
	}
	rel, err := filepath.Rel(tempDir, dir)
	if err != nil || strings.HasPrefix(rel, "..") {
		return false
	}
	return strings.Contains(filepath.ToSlash(rel), "go-build")
}
