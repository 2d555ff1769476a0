// Package ui provides semantic text formatting for oauth2keys output.
//
// Formatters colour their text when the terminal supports it. When NO_COLOR
// is set or colour is unavailable, some formatters fall back to plain text
// decorations so the meaning survives in logs and CI output:
//
//	ui.Path.Sprint(".env")             // file paths, undecorated
//	ui.Flag.Sprint("--force")          // flags, undecorated
//	ui.Value.Sprint(key)               // generated values, 'quoted'
//	ui.Code.Sprint("oauth2keys ...")   // commands, `backticks`
//	ui.Muted.Sprint("dry run")         // secondary text, (parenthesised)
//
// Status lines start with one of the indicators returned by Check, Cross
// and Arrow.
package ui
