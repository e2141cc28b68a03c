package encoder

// Tracker threads the encoder's own registered output back as the next
// cycle's reference word, modeling a bus whose previous state is exactly
// what this encoder last drove. This is a distinct mode from the primary
// API: Encoder.Step always takes the reference explicitly, and nothing
// switches between the two implicitly.
type Tracker struct {
	enc *Encoder
	ref Word
}

// NewTracker constructs a self-referencing encoder of the given width. The
// initial reference is zero, matching the reset value of the bus.
func NewTracker(width int) (*Tracker, error) {
	enc, err := New(width)
	if err != nil {
		return nil, err
	}
	return &Tracker{enc: enc}, nil
}

// Encoder exposes the wrapped encoder for direct inspection.
func (t *Tracker) Encoder() *Encoder {
	return t.enc
}

// Step processes one clock edge using the previously registered output as
// the reference. Reset and gating behave exactly as in Encoder.Step; on a
// gated edge the reference is unchanged because the bus still holds the
// last driven value.
func (t *Tracker) Step(input Word, enable, reset bool) State {
	st := t.enc.Step(input, t.ref, enable, reset)
	t.ref = st.Encoded
	return st
}
