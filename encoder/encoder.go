package encoder

import (
	"go.uber.org/zap"

	"github.com/silogic/buscode/errors"
)

// Candidate pairs a transformed word with the tag identifying the
// transformation that produced it.
type Candidate struct {
	Encoded Word
	Tag     Tag
}

// Encoder is a single-stage transition-minimizing bus encoder of fixed
// width. It has one writer (Step) and no per-cycle failure path: both
// operands are masked to the configured width at the entry point, so a
// wider caller value cannot leak extra bits into costs or outputs.
type Encoder struct {
	width int
	mask  Word
	odd   Word
	even  Word
	mode  mode
	state State
}

// New constructs an encoder for a bus of the given width. Width is
// validated once here, not per cycle: values outside [1, 64] fail with a
// structured configure-phase error.
func New(width int) (*Encoder, error) {
	if width < 1 || width > 64 {
		return nil, errors.InvalidWidth(errors.PhaseConfigure, width)
	}
	return &Encoder{
		width: width,
		mask:  widthMask(width),
		odd:   oddMask(width),
		even:  evenMask(width),
		mode:  modeReset,
	}, nil
}

// Width returns the configured bus width.
func (e *Encoder) Width() int {
	return e.width
}

// State returns the last registered output. Reads are safe between
// completed Step calls; there is no other writer.
func (e *Encoder) State() State {
	return e.state
}

// InReset reports whether the last edge had reset asserted.
func (e *Encoder) InReset() bool {
	return e.mode == modeReset
}

// Candidates applies the four transformations to input, in tag order.
func (e *Encoder) Candidates(input Word) [4]Candidate {
	in := input & e.mask
	return [4]Candidate{
		{Encoded: in, Tag: TagIdentity},
		{Encoded: in ^ e.odd, Tag: TagOddInvert},
		{Encoded: in ^ e.even, Tag: TagEvenInvert},
		{Encoded: ^in & e.mask, Tag: TagFullInvert},
	}
}

// Evaluate computes the four candidates and their transition costs against
// the reference word. It is pure: no encoder state is read or written.
// Each cost is the number of bus lines that would toggle if the candidate
// replaced the reference, an integer in [0, width].
func (e *Encoder) Evaluate(input, reference Word) ([4]Candidate, [4]int) {
	ref := reference & e.mask
	cands := e.Candidates(input)
	var costs [4]int
	for i, c := range cands {
		costs[i] = Transitions(c.Encoded, ref)
	}
	return cands, costs
}

// Select picks the winning candidate index from the four costs. The
// comparison chain is asymmetric on purpose: identity wins on <= against
// all three, the remaining transformations win only on strict <. Any
// four-way tie therefore resolves to identity, and ties among the latter
// three resolve toward the lower tag. Do not symmetrize; downstream
// consumers depend on which encoding wins ties.
func Select(costs [4]int) int {
	switch {
	case costs[0] <= costs[1] && costs[0] <= costs[2] && costs[0] <= costs[3]:
		return 0
	case costs[1] < costs[2] && costs[1] < costs[3]:
		return 1
	case costs[2] < costs[3]:
		return 2
	default:
		return 3
	}
}

// Step processes one clock edge. Reset has priority over enable and forces
// the sentinel state. With reset low and enable low, the edge is gated:
// Evaluate never runs and the registered state is held bit-identical. Steps
// must be invoked in edge order; each call completes before the next edge's
// inputs are sampled.
func (e *Encoder) Step(input, reference Word, enable, reset bool) State {
	if reset {
		e.mode = modeReset
		e.state = State{}
		Logger().Debug("encoder reset",
			zap.Int("width", e.width))
		return e.state
	}

	e.mode = modeActive
	if !enable {
		return e.state
	}

	cands, costs := e.Evaluate(input, reference)
	sel := Select(costs)
	won := cands[sel]
	e.state = State{
		Encoded: won.Encoded,
		Tag:     won.Tag,
		Scheme:  won.Tag.Scheme(),
	}
	Logger().Debug("encoder registered",
		zap.String("tag", won.Tag.String()),
		zap.Int("cost", costs[sel]))
	return e.state
}
