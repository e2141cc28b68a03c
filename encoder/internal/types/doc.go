// Package types defines the closed tag and scheme enumerations used by the
// encoder. Keeping them in an internal package guarantees the selection logic
// can only produce the defined variants; the 8-bit one-hot wire form is
// emitted at the boundary, never stored.
package types
