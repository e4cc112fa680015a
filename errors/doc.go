// Package errors provides structured error types for wasmarin.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the section name, input byte range and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindMalformed).
//		Section("code").
//		Offset(pos).
//		Detail("unknown opcode 0x%02x", op).
//		Build()
//
// Or use convenience constructors for the failures the parser reports:
//
//	err := errors.Validation(cause)
//	err := errors.Decode("global", pos, cause)
//	err := errors.UnsupportedSection(12, start, end)
//
// Match categories with the sentinels:
//
//	if errors.Is(err, errors.ErrValidation) { ... }
package errors
