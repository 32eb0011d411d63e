package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/arthur-debert/linkgen/pkg/logging"
	"github.com/arthur-debert/linkgen/pkg/types"
)

var (
	_ types.Confirmer = (*HuhConfirmer)(nil)
	_ types.Confirmer = (*LineConfirmer)(nil)
	_ types.Confirmer = StaticConfirmer(false)
)

// HuhConfirmer asks with a huh confirm form
type HuhConfirmer struct {
	in  io.Reader
	out io.Writer
}

// NewHuhConfirmer creates a form-based confirmer on the given streams
func NewHuhConfirmer(in io.Reader, out io.Writer) *HuhConfirmer {
	return &HuhConfirmer{in: in, out: out}
}

// Confirm shows the form. An aborted form counts as declined.
func (c *HuhConfirmer) Confirm(message string) (bool, error) {
	var confirmed bool

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(message).
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).WithTheme(huh.ThemeCatppuccin()).
		WithInput(c.in).
		WithOutput(c.out)

	if err := form.Run(); err != nil {
		return declineOnAbort(NormalizeAbort(err))
	}
	return confirmed, nil
}

// LineConfirmer prints "<message> [y/N]: " and reads one answer
type LineConfirmer struct {
	in  io.Reader
	out io.Writer
}

// NewLineConfirmer creates a line-based confirmer on the given streams
func NewLineConfirmer(in io.Reader, out io.Writer) *LineConfirmer {
	return &LineConfirmer{in: in, out: out}
}

// Confirm accepts "y" or "yes" in any case; anything else declines
func (c *LineConfirmer) Confirm(message string) (bool, error) {
	_, _ = fmt.Fprintf(c.out, "%s [y/N]: ", message)

	// Only the first line counts; a partial line at EOF is still an answer
	response, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && (response == "" || err != io.EOF) {
		if err := NormalizeAbort(err); IsAbort(err) {
			_, _ = fmt.Fprintln(c.out)
			return declineOnAbort(err)
		}
		return false, fmt.Errorf("failed to read user input: %w", err)
	}

	response = strings.ToLower(strings.TrimSpace(response))
	return response == "y" || response == "yes", nil
}

// StaticConfirmer answers every question with its own value
type StaticConfirmer bool

// Confirm returns the static answer
func (c StaticConfirmer) Confirm(string) (bool, error) {
	return bool(c), nil
}

func declineOnAbort(err error) (bool, error) {
	if IsAbort(err) {
		logger := logging.GetLogger("ui")
		logger.Debug().Msg("Prompt aborted, treating as declined")
		return false, nil
	}
	return false, err
}
