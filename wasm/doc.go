// Package wasm holds the wire-level vocabulary of the WebAssembly binary
// format: section ids, type and form bytes, opcode prefixes, and the
// encode-side descriptors that know how to write themselves.
//
// The descriptors here are deliberately flat. Higher-level meaning lives in
// package ir, and package opmap translates ir values into these wire forms:
//
//	in := wasm.Instruction{
//		Opcode: 0x41, // i32.const
//		Imms:   []wasm.Immediate{wasm.S32(42)},
//	}
//	code := in.Encode() // 41 2a
//
// Every descriptor implements AppendTo(*binary.Writer) so the encoder can
// stream a whole module into one buffer.
package wasm
