// Package output renders everything linkgen prints to the user.
//
// ConsoleReporter turns generator status lines into prefixed lines. Renderer
// draws the banner, the closing line, the run summary and the list views.
// Both fall back to plain text when colour is off: --no-color, NO_COLOR, a
// non-terminal writer or an ASCII-only terminal.
package output
