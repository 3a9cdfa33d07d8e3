package cargobump

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// styles colors the status prefixes. The renderer is bound to the output
// writer, so anything that is not a terminal gets plain text.
type styles struct {
	info lipgloss.Style
	warn lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		info: r.NewStyle().Foreground(lipgloss.Color("6")),
		warn: r.NewStyle().Foreground(lipgloss.Color("3")),
	}
}

func (s styles) infoPrefix() string { return s.info.Render("[*]") }
func (s styles) warnPrefix() string { return s.warn.Render("[!]") }
