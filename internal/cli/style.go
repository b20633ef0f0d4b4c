package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/crucible/solve"
)

// palette renders answer lines for one output writer. Colours are dropped
// automatically when the writer is not a terminal.
type palette struct {
	label lipgloss.Style
	value lipgloss.Style
	dim   lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := lipgloss.NewRenderer(w)
	return palette{
		label: r.NewStyle().Bold(true),
		value: r.NewStyle().Foreground(lipgloss.Color("10")),
		dim:   r.NewStyle().Faint(true),
	}
}

// printReport writes one "policy: cost" line per answer, plus route and work
// details when verbose.
func printReport(w io.Writer, rep solve.Report, verbose bool) error {
	p := newPalette(w)
	for _, a := range rep.Answers {
		line := fmt.Sprintf("%s %s", p.label.Render(a.Policy.String()+":"), p.value.Render(fmt.Sprint(a.Cost)))
		if verbose {
			line += " " + p.dim.Render(fmt.Sprintf("(%d expanded, %d stale, %d cells, %s)",
				a.Expanded, a.Stale, len(a.Path), a.Duration.Round(time.Microsecond)))
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
