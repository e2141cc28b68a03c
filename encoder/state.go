package encoder

// State is the encoder's registered output: the encoded word driven onto the
// bus, the 2-bit transformation tag, and the scheme classifier. The zero
// value is the reset sentinel.
type State struct {
	Encoded Word
	Tag     Tag
	Scheme  Scheme
}

// EncodingType returns the 8-bit one-hot wire byte for the registered
// scheme. The reset sentinel emits 0x00, which no defined scheme uses.
func (s State) EncodingType() uint8 {
	return s.Scheme.Wire()
}

// mode is the encoder's two-state machine: reset is entered whenever the
// reset line is asserted, active on any other edge. Reset is checked before
// enable on every transition.
type mode uint8

const (
	modeReset mode = iota
	modeActive
)

func (m mode) String() string {
	if m == modeReset {
		return "reset"
	}
	return "active"
}
