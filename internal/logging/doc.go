// Package logger provides leveled logging for oauth2keys commands.
//
// Verbosity is controlled by the root command's flags:
//
//   - --verbose: shows info messages
//   - --debug: shows info and debug messages
//
// Warnings and errors are always written to stderr.
//
//	log := Logger{Verbose: verbose, Debug: debug}
//	log.Infof("Writing %s", path)
//
// The root command builds the Logger in PersistentPreRun and every
// subcommand shares it.
package logger
