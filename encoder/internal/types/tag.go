package types

// Tag is the 2-bit transformation identifier emitted beside the encoded word.
type Tag uint8

const (
	TagIdentity   Tag = 0b00
	TagOddInvert  Tag = 0b01
	TagEvenInvert Tag = 0b10
	TagFullInvert Tag = 0b11
)

var tagNames = [...]string{
	TagIdentity:   "identity",
	TagOddInvert:  "odd-invert",
	TagEvenInvert: "even-invert",
	TagFullInvert: "full-invert",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return "unknown"
}

// Valid reports whether t is one of the four defined transformations.
func (t Tag) Valid() bool {
	return t <= TagFullInvert
}

// Scheme returns the encoding scheme classifier for t.
func (t Tag) Scheme() Scheme {
	switch t {
	case TagIdentity:
		return SchemeUncoded
	case TagOddInvert:
		return SchemeBInv
	case TagEvenInvert:
		return SchemeBShift
	case TagFullInvert:
		return SchemeEESCT
	default:
		return SchemeNone
	}
}
