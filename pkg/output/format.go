package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format is the output format of read-only views
type Format int

const (
	// FormatText renders human-readable text
	FormatText Format = iota
	// FormatJSON renders indented JSON
	FormatJSON
	// FormatYAML renders YAML
	FormatYAML
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a Format value
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "text", "plain", "":
		return FormatText, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return FormatText, fmt.Errorf("unknown format: %s", s)
	}
}

// ColorEnabled decides whether styled output should be written to w
func ColorEnabled(w io.Writer, noColor bool) bool {
	if noColor || termenv.EnvNoColor() {
		return false
	}

	// Check if we're being piped or redirected
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}

	return termenv.NewOutput(f).Profile != termenv.Ascii
}

// IsInteractive reports whether r is a terminal a prompt can be shown on
func IsInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
