package sim

import (
	"fmt"
	"io"
)

// WriteReport renders the trace as the harness's textual report: one line
// per test case with binary dumps of the original, encoded and reference
// words, the transition count, the power estimate in milliwatts and the
// scheme name, followed by aggregate totals.
func (t *Trace) WriteReport(w io.Writer) error {
	p := t.Power
	if _, err := fmt.Fprintf(w, "bus width %d, %d cycles, seed %d\n",
		t.Width, len(t.Cycles), t.Seed); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "power model: C=%.1f pF/line, VDD=%.2f V, f=%.1f MHz\n\n",
		p.CapacitancePF, p.VDD, p.FreqMHz); err != nil {
		return err
	}

	wordCol := t.Width
	if wordCol < len("encoded") {
		wordCol = len("encoded")
	}
	if _, err := fmt.Fprintf(w, "%-5s  %-*s  %-*s  %-*s  %-8s  %11s  %10s\n",
		"case", wordCol, "input", wordCol, "encoded", wordCol, "reference",
		"scheme", "transitions", "power (mW)"); err != nil {
		return err
	}

	for _, c := range t.Cycles {
		_, err := fmt.Fprintf(w, "%-5d  %-*s  %-*s  %-*s  %-8s  %11d  %10.2f\n",
			c.Index,
			wordCol, c.Input.Bin(t.Width),
			wordCol, c.State.Encoded.Bin(t.Width),
			wordCol, c.Reference.Bin(t.Width),
			c.State.Scheme.String(),
			c.Transitions,
			p.EstimateMW(c.Transitions))
		if err != nil {
			return err
		}
	}

	encoded := t.TotalTransitions()
	raw := t.TotalRaw()
	if _, err := fmt.Fprintf(w, "\ntotal transitions: encoded %d, unencoded %d, saved %.1f%%\n",
		encoded, raw, t.SavedPercent()); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "estimated power:   encoded %.2f mW, unencoded %.2f mW\n",
		p.EstimateMW(encoded), p.EstimateMW(raw))
	return err
}
