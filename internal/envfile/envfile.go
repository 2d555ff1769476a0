// Package envfile edits flat NAME="value" environment files in place.
//
// Only the line holding the requested variable is ever touched: every other
// byte of the file, including line terminators and a missing final newline,
// survives an edit unchanged. Rewrites go through a temporary file and a
// rename so a crash never leaves a truncated file behind.
package envfile

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	kerrors "github.com/PolarWolf314/oauth2keys/internal/errors"

	"github.com/google/renameio/v2"
)

// Match is a located variable definition.
type Match struct {
	// Line is the 0-based index of the line.
	Line int

	// FullLine is the exact line text without its terminator.
	FullLine string

	// Value is the assigned value, without surrounding double quotes.
	Value string
}

// Exists reports whether path is an existing regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Read returns the content of the env file at path.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%s: %w", path, kerrors.ErrConfigFileNotFound)
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// FormatVariable renders a definition line, e.g. NAME="value".
func FormatVariable(name, value string) string {
	return fmt.Sprintf(`%s="%s"`, name, value)
}

// EndsCleanly reports whether appending a line to text would start on a line of its own.
func EndsCleanly(text string) bool {
	return text == "" || strings.HasSuffix(text, "\n")
}

// FindVariable locates the definition of name in text. The name is matched
// case-insensitively at the start of a line. It returns nil when the variable
// is not defined and ErrDuplicateVariable when it is defined more than once.
func FindVariable(text, name string) (*Match, error) {
	var found *Match
	for i, line := range splitLines(text) {
		value, ok := parseAssignment(line, name)
		if !ok {
			continue
		}
		if found != nil {
			return nil, fmt.Errorf("%s is defined on lines %d and %d: %w", name, found.Line+1, i+1, kerrors.ErrDuplicateVariable)
		}
		found = &Match{Line: i, FullLine: line, Value: value}
	}
	return found, nil
}

// AppendVariable appends NAME="value" to the end of the file at path.
// No newline is inserted before the definition, so callers should make sure
// the file ends with one (see EndsCleanly).
func AppendVariable(path, name, value string) (err error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_WRONLY, 0)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s: %w", path, kerrors.ErrConfigFileNotFound)
		}
		return fmt.Errorf("%w: opening %s: %v", kerrors.ErrWriteFailed, path, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("%w: closing %s: %v", kerrors.ErrWriteFailed, path, closeErr)
		}
	}()

	if _, err := f.WriteString(FormatVariable(name, value)); err != nil {
		return fmt.Errorf("%w: appending to %s: %v", kerrors.ErrWriteFailed, path, err)
	}
	return nil
}

// ReplaceVariable swaps the matched definition line for NAME="value" and
// atomically rewrites the file, keeping its permissions. The file must still
// contain the matched line at the same position, otherwise ErrFileChanged is
// returned and nothing is written.
func ReplaceVariable(path string, match *Match, name, value string) error {
	text, err := Read(path)
	if err != nil {
		return err
	}

	lines := strings.Split(text, "\n")
	if match == nil || match.Line < 0 || match.Line >= len(lines) ||
		strings.TrimSuffix(lines[match.Line], "\r") != match.FullLine {
		return fmt.Errorf("%s: %w", path, kerrors.ErrFileChanged)
	}

	replacement := FormatVariable(name, value)
	if strings.HasSuffix(lines[match.Line], "\r") {
		replacement += "\r"
	}
	lines[match.Line] = replacement

	// Write through symlinks instead of replacing them with a regular file.
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", path, err)
	}

	if err := renameio.WriteFile(target, []byte(strings.Join(lines, "\n")), 0644, renameio.WithExistingPermissions()); err != nil {
		return fmt.Errorf("%w: rewriting %s: %v", kerrors.ErrWriteFailed, path, err)
	}
	return nil
}

// splitLines splits text on \n and drops a trailing \r from each line.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// parseAssignment reports whether line assigns name and returns the value.
// Both NAME="value" and bare NAME=value count as a definition.
func parseAssignment(line, name string) (string, bool) {
	if len(line) <= len(name) || line[len(name)] != '=' || !strings.EqualFold(line[:len(name)], name) {
		return "", false
	}
	rest := line[len(name)+1:]
	if len(rest) >= 2 && rest[0] == '"' && rest[len(rest)-1] == '"' {
		return rest[1 : len(rest)-1], true
	}
	return rest, true
}
