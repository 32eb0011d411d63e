package testutil

import (
	"strings"
	"sync"

	"github.com/arthur-debert/linkgen/pkg/types"
)

// Severity of a recorded status line
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityNotice  Severity = "notice"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Line is one recorded status line
type Line struct {
	Severity Severity
	Message  string
}

// RecordingReporter implements types.StatusReporter by keeping every line
type RecordingReporter struct {
	mu    sync.Mutex
	lines []Line
}

var _ types.StatusReporter = (*RecordingReporter)(nil)

// NewRecordingReporter creates an empty reporter
func NewRecordingReporter() *RecordingReporter {
	return &RecordingReporter{}
}

func (r *RecordingReporter) record(s Severity, msg string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, Line{Severity: s, Message: msg})
}

func (r *RecordingReporter) Success(msg string) { r.record(SeveritySuccess, msg) }
func (r *RecordingReporter) Notice(msg string)  { r.record(SeverityNotice, msg) }
func (r *RecordingReporter) Warning(msg string) { r.record(SeverityWarning, msg) }
func (r *RecordingReporter) Error(msg string)   { r.record(SeverityError, msg) }

// Lines returns a copy of every recorded line in order
func (r *RecordingReporter) Lines() []Line {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Line, len(r.lines))
	copy(out, r.lines)
	return out
}

// Messages returns the messages recorded with the given severity
func (r *RecordingReporter) Messages(s Severity) []string {
	var out []string
	for _, l := range r.Lines() {
		if l.Severity == s {
			out = append(out, l.Message)
		}
	}
	return out
}

// Count returns how many lines were recorded with the given severity
func (r *RecordingReporter) Count(s Severity) int {
	return len(r.Messages(s))
}

// Contains reports whether any line contains substr
func (r *RecordingReporter) Contains(substr string) bool {
	for _, l := range r.Lines() {
		if strings.Contains(l.Message, substr) {
			return true
		}
	}
	return false
}
