package output

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Colours adapt to light and dark terminals
var (
	SuccessColor = lipgloss.AdaptiveColor{Light: "#28A745", Dark: "#4CDD76"}
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#DC3545", Dark: "#FF6B7D"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFC107", Dark: "#FFD54F"}
	InfoColor    = lipgloss.AdaptiveColor{Light: "#17A2B8", Dark: "#4DD0E1"}
	MutedColor   = lipgloss.AdaptiveColor{Light: "#6C757D", Dark: "#ADB5BD"}
	HeaderFg     = lipgloss.Color("#FFFFFF")
	HeaderBg     = lipgloss.Color("#2E7D32")
)

// Styles are bound to one lipgloss renderer, and so to one writer
type Styles struct {
	Header  lipgloss.Style
	Project lipgloss.Style
	Path    lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Info    lipgloss.Style
}

// NewStyles builds styles for w. With color false every style renders
// plain text.
func NewStyles(w io.Writer, color bool) Styles {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}

	return Styles{
		Header: r.NewStyle().
			Foreground(HeaderFg).
			Background(HeaderBg).
			Bold(true),
		Project: r.NewStyle().Bold(true),
		Path:    r.NewStyle().Foreground(InfoColor),
		Muted:   r.NewStyle().Foreground(MutedColor),
		Success: r.NewStyle().Foreground(SuccessColor).Bold(true),
		Warning: r.NewStyle().Foreground(WarningColor).Bold(true),
		Error:   r.NewStyle().Foreground(ErrorColor).Bold(true),
		Info:    r.NewStyle().Foreground(InfoColor),
	}
}
