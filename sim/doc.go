// Package sim drives the encoder with a synchronous stimulus loop and
// formats the results.
//
// A run holds reset for a fixed warm-up, asserts enable, then feeds N
// cycles of seeded pseudorandom (input, reference) pairs, recording one
// trace entry per edge. The trace carries both the encoded transition count
// and the count the raw input would have caused, so a report can show what
// the encoding saved.
//
// The power figure is the documented external estimate
//
//	P = C · VDD² · f · transitions
//
// scaled to milliwatts, not a measurement. Constants default to
// C = 10 pF/line, VDD = 1.2 V, f = 100 MHz and are printed in the report
// header so every figure is reproducible.
package sim
