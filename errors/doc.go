// Package errors provides structured error types for the buscode library.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error
// category). The encoder core itself is total over fixed-width data and has
// no per-cycle failure path; every error in this module is raised at
// construction or configuration time, before any clock edge is processed.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseConfigure, errors.KindInvalidWidth).
//		Value(width).
//		Detail("bus width must be in [1, 64]").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.InvalidWidth(errors.PhaseConfigure, width)
//	err := errors.WidthMismatch(errors.PhaseEncode, 8, 16)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
