package ir

import (
	"fmt"

	"github.com/wippyai/wasmarin/wasm"
)

// OpCode identifies one instruction of the canonical instruction set.
type OpCode uint16

// ImmKind is the shape of an instruction's immediates.
type ImmKind uint8

const (
	ImmNone         ImmKind = iota
	ImmBlock                // BlockType
	ImmLabel                // Index: relative label depth
	ImmBrTable              // BrTable
	ImmFunc                 // Index
	ImmType                 // Index
	ImmCallIndirect         // IndexPair: type, table
	ImmLocal                // Index
	ImmGlobal               // Index
	ImmTable                // Index
	ImmMemory               // Index
	ImmTag                  // Index
	ImmData                 // Index
	ImmElem                 // Index
	ImmMemArg               // MemArg
	ImmMemArgLane           // MemArgLane
	ImmI32                  // I32
	ImmI64                  // I64
	ImmF32                  // F32
	ImmF64                  // F64
	ImmV128                 // V128
	ImmShuffle              // V128 of lane indices
	ImmLane                 // Lane
	ImmHeapType             // HeapType
	ImmSelectTypes          // SelectTypes
	ImmMemoryInit           // IndexPair: data, memory
	ImmMemoryCopy           // IndexPair: destination, source memory
	ImmTableInit            // IndexPair: elem, table
	ImmTableCopy            // IndexPair: destination, source table
	ImmTryTable             // TryTable
	ImmStructField          // IndexPair: type, field
	ImmArrayFixed           // IndexPair: type, length
	ImmArrayData            // IndexPair: type, data
	ImmArrayElem            // IndexPair: type, elem
	ImmArrayCopy            // IndexPair: destination, source type
	ImmBrOnCast             // BrOnCast
	ImmFence                // Ordering
)

// OpInfo describes an instruction's text name and wire encoding. Prefix is
// zero for single-byte opcodes.
type OpInfo struct {
	Name   string
	Prefix byte
	Code   uint32
	Imm    ImmKind
}

// Valid reports whether c is part of the instruction set.
func (c OpCode) Valid() bool {
	return c < numOpCodes
}

// Info returns the table entry for c. It panics on invalid codes.
func (c OpCode) Info() OpInfo {
	return opTable[c]
}

func (c OpCode) String() string {
	if !c.Valid() {
		return fmt.Sprintf("opcode(%d)", uint16(c))
	}
	return opTable[c].Name
}

// NumOpCodes returns the size of the instruction set.
func NumOpCodes() int {
	return int(numOpCodes)
}

var (
	byName   = make(map[string]OpCode, numOpCodes)
	byCore   [256]OpCode
	hasCore  [256]bool
	byPrefix = make(map[uint64]OpCode)
)

func init() {
	for c := OpCode(0); c < numOpCodes; c++ {
		info := opTable[c]
		byName[info.Name] = c
		if info.Prefix == 0 {
			byCore[info.Code] = c
			hasCore[info.Code] = true
		} else {
			byPrefix[uint64(info.Prefix)<<32|uint64(info.Code)] = c
		}
	}
}

// Lookup finds an instruction by mnemonic.
func Lookup(name string) (OpCode, bool) {
	c, ok := byName[name]
	return c, ok
}

// LookupWire finds an instruction by its wire opcode. For single-byte
// opcodes prefix is zero and code is the opcode byte.
func LookupWire(prefix byte, code uint32) (OpCode, bool) {
	if prefix == 0 {
		if code > 0xFF || !hasCore[code] {
			return 0, false
		}
		return byCore[code], true
	}
	c, ok := byPrefix[uint64(prefix)<<32|uint64(code)]
	return c, ok
}

// Immediate is the sum of instruction operand shapes. Each ImmKind maps to
// exactly one implementation.
type Immediate interface {
	immediate()
}

// Index is a single index or label depth.
type Index uint32

// IndexPair is two indices in wire order.
type IndexPair [2]uint32

// BrTable is a branch table.
type BrTable struct {
	Targets []uint32
	Default uint32
}

// MemArg is a memory access descriptor. Align is log2 of the alignment.
type MemArg struct {
	Offset uint64
	Align  uint32
	Memory uint32
}

// MemArgLane is a lane load or store.
type MemArgLane struct {
	MemArg
	Lane uint8
}

// Numeric constants. Floats keep their IEEE 754 bits so NaN payloads
// survive a round trip.
type (
	I32  int32
	I64  int64
	F32  uint32
	F64  uint64
	V128 [16]byte
	Lane uint8
)

// SelectTypes is the result annotation of a typed select.
type SelectTypes []ValType

// CatchKind is the form of a try_table catch clause.
type CatchKind uint8

const (
	CatchOne CatchKind = iota
	CatchOneRef
	CatchAll
	CatchAllRef
)

// Catch is one try_table clause. Tag is unused for the catch-all forms.
type Catch struct {
	Tag   uint32
	Label uint32
	Kind  CatchKind
}

// TryTable is the immediate of try_table.
type TryTable struct {
	Catches []Catch
	Block   BlockType
}

// BrOnCast is the immediate of br_on_cast and br_on_cast_fail.
type BrOnCast struct {
	From  RefType
	To    RefType
	Label uint32
}

// Ordering is the memory ordering of an atomic fence.
type Ordering uint8

const (
	SeqCst Ordering = iota
	AcqRel
)

func (BlockType) immediate()   {}
func (Index) immediate()       {}
func (IndexPair) immediate()   {}
func (BrTable) immediate()     {}
func (MemArg) immediate()      {}
func (MemArgLane) immediate()  {}
func (I32) immediate()         {}
func (I64) immediate()         {}
func (F32) immediate()         {}
func (F64) immediate()         {}
func (V128) immediate()        {}
func (Lane) immediate()        {}
func (HeapType) immediate()    {}
func (SelectTypes) immediate() {}
func (TryTable) immediate()    {}
func (BrOnCast) immediate()    {}
func (Ordering) immediate()    {}

// Operator is one decoded instruction.
type Operator struct {
	Imm  Immediate
	Code OpCode
}

func (o Operator) String() string {
	if o.Imm == nil {
		return o.Code.String()
	}
	return fmt.Sprintf("%s %v", o.Code, o.Imm)
}

// Op returns an operator without immediates.
func Op(c OpCode) Operator {
	return Operator{Code: c}
}

// OpImm returns an operator with an immediate.
func OpImm(c OpCode, imm Immediate) Operator {
	return Operator{Code: c, Imm: imm}
}

// I32Const returns i32.const v.
func I32Const(v int32) Operator {
	return Operator{Code: OpI32Const, Imm: I32(v)}
}

// I64Const returns i64.const v.
func I64Const(v int64) Operator {
	return Operator{Code: OpI64Const, Imm: I64(v)}
}

// GlobalGet returns global.get idx.
func GlobalGet(idx uint32) Operator {
	return Operator{Code: OpGlobalGet, Imm: Index(idx)}
}

// GlobalSet returns global.set idx.
func GlobalSet(idx uint32) Operator {
	return Operator{Code: OpGlobalSet, Imm: Index(idx)}
}

// LocalGet returns local.get idx.
func LocalGet(idx uint32) Operator {
	return Operator{Code: OpLocalGet, Imm: Index(idx)}
}

// Call returns call idx.
func Call(idx uint32) Operator {
	return Operator{Code: OpCall, Imm: Index(idx)}
}

// End returns the end terminator.
func End() Operator {
	return Operator{Code: OpEnd}
}

// IsPrefixed reports whether the instruction is encoded behind a prefix byte.
func (i OpInfo) IsPrefixed() bool {
	return wasm.IsPrefix(i.Prefix)
}
