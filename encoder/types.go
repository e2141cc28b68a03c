package encoder

import (
	"github.com/silogic/buscode/encoder/internal/types"
)

type Tag = types.Tag

const (
	TagIdentity   = types.TagIdentity
	TagOddInvert  = types.TagOddInvert
	TagEvenInvert = types.TagEvenInvert
	TagFullInvert = types.TagFullInvert
)

type Scheme = types.Scheme

const (
	SchemeNone    = types.SchemeNone
	SchemeUncoded = types.SchemeUncoded
	SchemeBInv    = types.SchemeBInv
	SchemeBShift  = types.SchemeBShift
	SchemeEESCT   = types.SchemeEESCT
)

// SchemeFromWire maps a one-hot encoding-type byte to its Scheme variant.
func SchemeFromWire(b uint8) Scheme {
	return types.SchemeFromWire(b)
}
