package output

import (
	"fmt"
	"io"
	"sync"

	"github.com/pterm/pterm"

	"github.com/arthur-debert/linkgen/pkg/types"
)

// NoticePrinter marks links about to be recreated
var NoticePrinter = pterm.PrefixPrinter{
	MessageStyle: pterm.NewStyle(pterm.FgCyan),
	Prefix: pterm.Prefix{
		Style: pterm.NewStyle(pterm.FgBlack, pterm.BgCyan),
		Text:  "NOTICE",
	},
}

// ConsoleReporter implements types.StatusReporter on a writer, one line
// per call
type ConsoleReporter struct {
	mu    sync.Mutex
	w     io.Writer
	color bool
}

var _ types.StatusReporter = (*ConsoleReporter)(nil)

// NewConsoleReporter creates a reporter writing to w
func NewConsoleReporter(w io.Writer, color bool) *ConsoleReporter {
	return &ConsoleReporter{w: w, color: color}
}

func (r *ConsoleReporter) Success(msg string) { r.print(pterm.Success, "OK", msg) }
func (r *ConsoleReporter) Notice(msg string)  { r.print(NoticePrinter, "NOTICE", msg) }
func (r *ConsoleReporter) Warning(msg string) { r.print(pterm.Warning, "WARNING", msg) }
func (r *ConsoleReporter) Error(msg string)   { r.print(pterm.Error, "ERROR", msg) }

func (r *ConsoleReporter) print(p pterm.PrefixPrinter, label, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.color {
		_, _ = fmt.Fprintf(r.w, "%-8s %s\n", label, msg)
		return
	}
	_, _ = fmt.Fprint(r.w, p.Sprintln(msg))
}
