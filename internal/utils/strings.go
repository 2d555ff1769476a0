package utils

import (
	"strings"

	"github.com/PolarWolf314/oauth2keys/internal/ui"
)

// FormatPaths formats a slice of paths into a readable string.
func FormatPaths(paths []string) string {
	var b strings.Builder
	b.WriteString("\n")
	for _, path := range paths {
		b.WriteString("    - ")
		b.WriteString(ui.Path.Sprint(DisplayPath(path)))
		b.WriteString("\n")
	}
	return b.String()
}
