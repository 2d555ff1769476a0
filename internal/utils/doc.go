// Package utils provides small helpers shared by the oauth2keys packages.
//
// # Filesystem Utilities
//   - FileExists: reports whether a path exists
//   - FormatPaths: formats file paths for human-readable output
//
// # System Utilities
//   - GetUsername, GetHostname: identify who ran a command, for the audit trail
//
// # Terminal Utilities
//   - IsTerminal: checks whether stdout is an interactive terminal
package utils
