package types

// Scheme classifies the registered output for consumers that key on the
// one-hot encoding-type byte. SchemeNone is the reset sentinel: it is the
// only variant whose wire byte has no bit set, and it is distinct from
// SchemeUncoded (identity was selected).
type Scheme uint8

const (
	SchemeNone Scheme = iota
	SchemeUncoded
	SchemeBInv
	SchemeBShift
	SchemeEESCT
)

var schemeNames = [...]string{
	SchemeNone:    "none",
	SchemeUncoded: "UNCODED",
	SchemeBInv:    "BINV",
	SchemeBShift:  "BSHIFT",
	SchemeEESCT:   "EESCT",
}

func (s Scheme) String() string {
	if int(s) < len(schemeNames) {
		return schemeNames[s]
	}
	return "unknown"
}

// Wire returns the 8-bit one-hot representation. Bit positions 4-7 and the
// combined code with bits 0-1 both set belong to extension schemes this core
// never selects; they remain representable by the byte for wire
// compatibility but no Scheme variant maps to them.
func (s Scheme) Wire() uint8 {
	switch s {
	case SchemeUncoded:
		return 1 << 0
	case SchemeBInv:
		return 1 << 1
	case SchemeBShift:
		return 1 << 2
	case SchemeEESCT:
		return 1 << 3
	default:
		return 0
	}
}

// SchemeFromWire maps a one-hot byte back to its variant. Bytes that are not
// one of the four defined one-hot values (including the reset sentinel 0)
// map to SchemeNone.
func SchemeFromWire(b uint8) Scheme {
	switch b {
	case 1 << 0:
		return SchemeUncoded
	case 1 << 1:
		return SchemeBInv
	case 1 << 2:
		return SchemeBShift
	case 1 << 3:
		return SchemeEESCT
	default:
		return SchemeNone
	}
}
