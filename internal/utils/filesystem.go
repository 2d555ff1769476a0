package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// FileExists reports whether anything exists at path. Errors other than
// "not found" (for example permission problems) count as existing, so
// callers never overwrite something they could not inspect.
func FileExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil || !os.IsNotExist(err)
}

// DisplayPath returns path relative to the working directory when it lies below it.
func DisplayPath(path string) string {
	wd, err := os.Getwd()
	if err != nil {
		return path
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	rel, err := filepath.Rel(wd, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return rel
}
