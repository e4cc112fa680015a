package wasm

import "github.com/wippyai/wasmarin/internal/binary"

// Immediate is one wire-encoded operand of an instruction.
type Immediate interface {
	AppendTo(w *binary.Writer)
}

// Scalar immediates.
type (
	U32     uint32
	U64     uint64
	S32     int32
	S64     int64
	Byte    byte
	F32Bits uint32
	F64Bits uint64
	Bytes   []byte
)

func (v U32) AppendTo(w *binary.Writer)     { w.WriteU32(uint32(v)) }
func (v U64) AppendTo(w *binary.Writer)     { w.WriteU64(uint64(v)) }
func (v S32) AppendTo(w *binary.Writer)     { w.WriteS32(int32(v)) }
func (v S64) AppendTo(w *binary.Writer)     { w.WriteS64(int64(v)) }
func (v Byte) AppendTo(w *binary.Writer)    { w.Byte(byte(v)) }
func (v F32Bits) AppendTo(w *binary.Writer) { w.WriteU32LE(uint32(v)) }
func (v F64Bits) AppendTo(w *binary.Writer) { w.WriteU64LE(uint64(v)) }
func (v Bytes) AppendTo(w *binary.Writer)   { w.WriteBytes(v) }

// Instruction is the wire form of one operator. Sub is the sub-opcode
// following a prefix byte and is ignored otherwise.
type Instruction struct {
	Imms   []Immediate
	Sub    uint32
	Opcode byte
}

// IsPrefix reports whether op introduces a LEB128 sub-opcode.
func IsPrefix(op byte) bool {
	switch op {
	case PrefixGC, PrefixMisc, PrefixSIMD, PrefixAtomic:
		return true
	}
	return false
}

// AppendTo writes the opcode, sub-opcode and immediates in order.
func (in Instruction) AppendTo(w *binary.Writer) {
	w.Byte(in.Opcode)
	if IsPrefix(in.Opcode) {
		w.WriteU32(in.Sub)
	}
	for _, imm := range in.Imms {
		imm.AppendTo(w)
	}
}

// Encode returns the instruction's bytes.
func (in Instruction) Encode() []byte {
	w := binary.NewWriter()
	in.AppendTo(w)
	return w.Bytes()
}
