package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/linkgen/pkg/logging"
	"github.com/arthur-debert/linkgen/pkg/types"
)

// ClosingMessage is printed at the end of every generate run
const ClosingMessage = "Done."

// Renderer writes the framed parts of a run: banner, closing line,
// summary and list views
type Renderer struct {
	w      io.Writer
	styles Styles
	color  bool
}

// NewRenderer creates a renderer for w
func NewRenderer(w io.Writer, color bool) *Renderer {
	logger := logging.GetLogger("output")
	logger.Debug().Bool("color", color).Msg("Creating renderer")
	return &Renderer{
		w:      w,
		styles: NewStyles(w, color),
		color:  color,
	}
}

// Reporter returns a status reporter writing to the same writer
func (r *Renderer) Reporter() *ConsoleReporter {
	return NewConsoleReporter(r.w, r.color)
}

// BannerText is the unstyled banner line
func BannerText(projectLabel, source string) string {
	return fmt.Sprintf("Generating symlinks for %q -> Templates dir : %s", projectLabel, source)
}

// Banner prints the header naming the selected projects and template root
func (r *Renderer) Banner(projectLabel, source string) {
	r.line(r.styles.Header.Render(BannerText(projectLabel, source)))
}

// Closing prints the closing line
func (r *Renderer) Closing() {
	r.line(r.styles.Header.Render(ClosingMessage))
}

// Summary prints link counts for a finished run
func (r *Renderer) Summary(report *types.Report) {
	if report.DryRun {
		r.line(r.styles.Muted.Render(fmt.Sprintf(
			"dry run: %d to create, %d to recreate, %d skipped",
			report.Count(types.ActionWouldCreate),
			report.Count(types.ActionWouldRecreate),
			report.Count(types.ActionSkipped),
		)))
	} else {
		r.line(r.styles.Muted.Render(fmt.Sprintf(
			"%d created, %d recreated, %d skipped, %d failed",
			report.Count(types.ActionCreated),
			report.Count(types.ActionRecreated),
			report.Count(types.ActionSkipped),
			report.Count(types.ActionFailed),
		)))
	}

	if failed := report.FailedProjects(); len(failed) > 0 {
		r.line(r.styles.Error.Render("failed projects: " + strings.Join(failed, ", ")))
	}
}

// Plans renders the list view in the requested format
func (r *Renderer) Plans(plans []types.ProjectPlan, format Format) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(r.w)
		enc.SetIndent("", "  ")
		return enc.Encode(plans)
	case FormatYAML:
		enc := yaml.NewEncoder(r.w)
		enc.SetIndent(2)
		if err := enc.Encode(plans); err != nil {
			return err
		}
		return enc.Close()
	default:
		r.plansText(plans)
		return nil
	}
}

func (r *Renderer) plansText(plans []types.ProjectPlan) {
	if len(plans) == 0 {
		r.line(r.styles.Muted.Render("no projects found"))
		return
	}

	for _, p := range plans {
		r.line(r.styles.Project.Render(p.Name + ":"))

		switch {
		case p.ManifestError != "":
			r.line("    " + r.styles.Error.Render(p.ManifestError))
			continue
		case !p.HasManifest:
			r.line("    " + r.styles.Muted.Render("no manifest"))
			continue
		case len(p.Links) == 0:
			r.line("    " + r.styles.Muted.Render("no links declared"))
			continue
		}

		for _, l := range p.Links {
			state := r.stateStyle(l.State).Render(fmt.Sprintf("%-14s", l.State))
			line := fmt.Sprintf("    %s %s -> %s", state, r.styles.Path.Render(l.LinkPath), l.SourcePath)
			if l.State == types.StateStale && l.CurrentTarget != "" {
				line += r.styles.Muted.Render(" (currently " + l.CurrentTarget + ")")
			}
			r.line(line)
		}
	}
}

func (r *Renderer) stateStyle(state types.LinkState) lipgloss.Style {
	switch state {
	case types.StateLinked:
		return r.styles.Success
	case types.StateStale, types.StateOccupied:
		return r.styles.Warning
	case types.StateSourceMissing:
		return r.styles.Error
	default:
		return r.styles.Muted
	}
}

// Error prints a failure that ended the command
func (r *Renderer) Error(err error) {
	r.line(r.styles.Error.Render("Error: ") + err.Error())
}

// Text prints a plain line
func (r *Renderer) Text(s string) {
	r.line(s)
}

func (r *Renderer) line(s string) {
	_, _ = fmt.Fprintln(r.w, s)
}
