// Package opmap translates IR descriptors into their wire encodings.
//
// Every function switches over a closed IR enumeration without a default
// arm. A value outside the enumeration means the decoder produced something
// the encoder cannot represent; that is a programmer error, and the
// functions panic with an *errors.Error of PhaseEncode and KindUnsupported.
package opmap

import (
	"github.com/wippyai/wasmarin/errors"
	"github.com/wippyai/wasmarin/ir"
	"github.com/wippyai/wasmarin/wasm"
)

func unmapped(category string, v any) {
	panic(errors.Unmapped(category, v))
}

// Instruction lowers one operator. Type indices inside instructions are
// always module-absolute.
func Instruction(op ir.Operator) wasm.Instruction {
	if !op.Code.Valid() {
		unmapped("opcode", op.Code)
	}
	info := op.Code.Info()
	in := wasm.Instruction{Opcode: byte(info.Code)}
	if info.IsPrefixed() {
		in.Opcode = info.Prefix
		in.Sub = info.Code
	}

	switch info.Imm {
	case ir.ImmNone:
		if op.Imm != nil {
			unmapped("immediate", op)
		}
		return in
	case ir.ImmBlock:
		in.Imms = []wasm.Immediate{BlockType(immAs[ir.BlockType](op))}
		return in
	case ir.ImmLabel, ir.ImmFunc, ir.ImmType, ir.ImmLocal, ir.ImmGlobal,
		ir.ImmTable, ir.ImmMemory, ir.ImmTag, ir.ImmData, ir.ImmElem:
		in.Imms = []wasm.Immediate{wasm.U32(immAs[ir.Index](op))}
		return in
	case ir.ImmBrTable:
		bt := immAs[ir.BrTable](op)
		imms := make([]wasm.Immediate, 0, len(bt.Targets)+2)
		imms = append(imms, wasm.U32(len(bt.Targets)))
		for _, t := range bt.Targets {
			imms = append(imms, wasm.U32(t))
		}
		in.Imms = append(imms, wasm.U32(bt.Default))
		return in
	case ir.ImmCallIndirect, ir.ImmMemoryInit, ir.ImmMemoryCopy, ir.ImmTableInit,
		ir.ImmTableCopy, ir.ImmStructField, ir.ImmArrayFixed, ir.ImmArrayData,
		ir.ImmArrayElem, ir.ImmArrayCopy:
		p := immAs[ir.IndexPair](op)
		in.Imms = []wasm.Immediate{wasm.U32(p[0]), wasm.U32(p[1])}
		return in
	case ir.ImmMemArg:
		in.Imms = []wasm.Immediate{MemArg(immAs[ir.MemArg](op))}
		return in
	case ir.ImmMemArgLane:
		ml := immAs[ir.MemArgLane](op)
		in.Imms = []wasm.Immediate{MemArg(ml.MemArg), wasm.Byte(ml.Lane)}
		return in
	case ir.ImmI32:
		in.Imms = []wasm.Immediate{wasm.S32(immAs[ir.I32](op))}
		return in
	case ir.ImmI64:
		in.Imms = []wasm.Immediate{wasm.S64(immAs[ir.I64](op))}
		return in
	case ir.ImmF32:
		in.Imms = []wasm.Immediate{wasm.F32Bits(immAs[ir.F32](op))}
		return in
	case ir.ImmF64:
		in.Imms = []wasm.Immediate{wasm.F64Bits(immAs[ir.F64](op))}
		return in
	case ir.ImmV128, ir.ImmShuffle:
		v := immAs[ir.V128](op)
		in.Imms = []wasm.Immediate{wasm.Bytes(v[:])}
		return in
	case ir.ImmLane:
		in.Imms = []wasm.Immediate{wasm.Byte(immAs[ir.Lane](op))}
		return in
	case ir.ImmHeapType:
		in.Imms = []wasm.Immediate{HeapType(immAs[ir.HeapType](op), 0)}
		return in
	case ir.ImmSelectTypes:
		types := immAs[ir.SelectTypes](op)
		imms := make([]wasm.Immediate, 0, len(types)+1)
		imms = append(imms, wasm.U32(len(types)))
		for _, t := range types {
			imms = append(imms, ValType(t, 0))
		}
		in.Imms = imms
		return in
	case ir.ImmTryTable:
		tt := immAs[ir.TryTable](op)
		imms := make([]wasm.Immediate, 0, 2+3*len(tt.Catches))
		imms = append(imms, BlockType(tt.Block), wasm.U32(len(tt.Catches)))
		for _, c := range tt.Catches {
			imms = append(imms, catchImms(c)...)
		}
		in.Imms = imms
		return in
	case ir.ImmBrOnCast:
		bc := immAs[ir.BrOnCast](op)
		var flags byte
		if bc.From.Nullable {
			flags |= wasm.CastSrcNullable
		}
		if bc.To.Nullable {
			flags |= wasm.CastDstNullable
		}
		in.Imms = []wasm.Immediate{
			wasm.Byte(flags),
			wasm.U32(bc.Label),
			HeapType(bc.From.Heap, 0),
			HeapType(bc.To.Heap, 0),
		}
		return in
	case ir.ImmFence:
		in.Imms = []wasm.Immediate{wasm.Byte(Ordering(immAs[ir.Ordering](op)))}
		return in
	}
	unmapped("immediate kind", info.Imm)
	return wasm.Instruction{}
}

func immAs[T ir.Immediate](op ir.Operator) T {
	v, ok := op.Imm.(T)
	if !ok {
		unmapped("immediate", op)
	}
	return v
}

func catchImms(c ir.Catch) []wasm.Immediate {
	switch c.Kind {
	case ir.CatchOne:
		return []wasm.Immediate{wasm.Byte(wasm.CatchTag), wasm.U32(c.Tag), wasm.U32(c.Label)}
	case ir.CatchOneRef:
		return []wasm.Immediate{wasm.Byte(wasm.CatchTagRef), wasm.U32(c.Tag), wasm.U32(c.Label)}
	case ir.CatchAll:
		return []wasm.Immediate{wasm.Byte(wasm.CatchAll), wasm.U32(c.Label)}
	case ir.CatchAllRef:
		return []wasm.Immediate{wasm.Byte(wasm.CatchAllRef), wasm.U32(c.Label)}
	}
	unmapped("catch kind", c.Kind)
	return nil
}

// ValType lowers a value type. base resolves rec-group-relative indices.
func ValType(v ir.ValType, base uint32) wasm.ValType {
	switch v.Kind {
	case ir.KindI32:
		return wasm.ValType{Code: wasm.ValI32}
	case ir.KindI64:
		return wasm.ValType{Code: wasm.ValI64}
	case ir.KindF32:
		return wasm.ValType{Code: wasm.ValF32}
	case ir.KindF64:
		return wasm.ValType{Code: wasm.ValF64}
	case ir.KindV128:
		return wasm.ValType{Code: wasm.ValV128}
	case ir.KindRef:
		return RefType(v.Ref, base)
	}
	unmapped("value type", v.Kind)
	return wasm.ValType{}
}

// RefType lowers a reference type, using the single-byte shorthand for
// nullable unshared abstract types.
func RefType(r ir.RefType, base uint32) wasm.ValType {
	heap := HeapType(r.Heap, base)
	if r.Nullable && heap.IsAbstract() && !heap.Shared {
		return wasm.ValType{Code: heap.Byte()}
	}
	if r.Nullable {
		return wasm.ValType{Code: wasm.RefNullPrefix, Heap: heap}
	}
	return wasm.ValType{Code: wasm.RefPrefix, Heap: heap}
}

// HeapType lowers a heap type.
func HeapType(h ir.HeapType, base uint32) wasm.HeapType {
	if h.IsConcrete() {
		return wasm.HeapType{Value: int64(PackedIndex(h.Index, base)), Shared: h.Shared}
	}
	return wasm.AbstractHeap(AbstractHeapType(h.Abstract), h.Shared)
}

// AbstractHeapType returns the type byte of an abstract heap type.
func AbstractHeapType(a ir.AbstractHeapType) byte {
	switch a {
	case ir.HeapFunc:
		return wasm.HeapFunc
	case ir.HeapExtern:
		return wasm.HeapExtern
	case ir.HeapAny:
		return wasm.HeapAny
	case ir.HeapEq:
		return wasm.HeapEq
	case ir.HeapI31:
		return wasm.HeapI31
	case ir.HeapStruct:
		return wasm.HeapStruct
	case ir.HeapArray:
		return wasm.HeapArray
	case ir.HeapExn:
		return wasm.HeapExn
	case ir.HeapNoExn:
		return wasm.HeapNoExn
	case ir.HeapNone:
		return wasm.HeapNone
	case ir.HeapNoExtern:
		return wasm.HeapNoExtern
	case ir.HeapNoFunc:
		return wasm.HeapNoFunc
	case ir.HeapCont:
		return wasm.HeapCont
	case ir.HeapNoCont:
		return wasm.HeapNoCont
	}
	unmapped("abstract heap type", a)
	return 0
}

// PackedIndex resolves a type index against the base flat index of the
// enclosing rec group.
func PackedIndex(p ir.PackedIndex, base uint32) uint32 {
	if p.RecGroupRelative {
		return base + p.Index
	}
	return p.Index
}

// StorageType lowers a field's storage type.
func StorageType(s ir.StorageType, base uint32) wasm.StorageType {
	switch s.Packed {
	case ir.PackedNone:
		return wasm.StorageType{Val: ValType(s.Val, base)}
	case ir.PackedI8:
		return wasm.StorageType{Packed: wasm.PackedI8}
	case ir.PackedI16:
		return wasm.StorageType{Packed: wasm.PackedI16}
	}
	unmapped("storage type", s.Packed)
	return wasm.StorageType{}
}

// FieldType lowers a struct or array field.
func FieldType(f ir.FieldType, base uint32) wasm.FieldType {
	return wasm.FieldType{Storage: StorageType(f.Storage, base), Mutable: f.Mutable}
}

// ContType lowers a continuation type to its function type index.
func ContType(c ir.ContType, base uint32) uint32 {
	return PackedIndex(c.Type, base)
}

// CompositeType lowers a func, struct, array or cont definition. A kind
// whose definition pointer is nil is unmapped.
func CompositeType(c ir.CompositeType, base uint32) wasm.CompositeType {
	out := wasm.CompositeType{Shared: c.Shared}
	switch c.Kind {
	case ir.CompFunc:
		if c.Func == nil {
			break
		}
		out.Form = wasm.FormFunc
		out.Params = valTypes(c.Func.Params, base)
		out.Results = valTypes(c.Func.Results, base)
		return out
	case ir.CompStruct:
		if c.Struct == nil {
			break
		}
		out.Form = wasm.FormStruct
		out.Fields = make([]wasm.FieldType, len(c.Struct.Fields))
		for i, f := range c.Struct.Fields {
			out.Fields[i] = FieldType(f, base)
		}
		return out
	case ir.CompArray:
		if c.Array == nil {
			break
		}
		out.Form = wasm.FormArray
		out.Fields = []wasm.FieldType{FieldType(c.Array.Field, base)}
		return out
	case ir.CompCont:
		if c.Cont == nil {
			break
		}
		out.Form = wasm.FormCont
		out.Cont = ContType(*c.Cont, base)
		return out
	}
	unmapped("composite type", c.Kind)
	return out
}

func valTypes(types []ir.ValType, base uint32) []wasm.ValType {
	out := make([]wasm.ValType, len(types))
	for i, t := range types {
		out[i] = ValType(t, base)
	}
	return out
}

// SubType lowers a type definition.
func SubType(s ir.SubType, base uint32) wasm.SubType {
	out := wasm.SubType{Final: s.Final, Composite: CompositeType(s.Composite, base)}
	if s.Supertype != nil {
		out.Supertypes = []uint32{PackedIndex(*s.Supertype, base)}
	}
	return out
}

// RecGroup lowers a type section entry whose first type has flat index base.
func RecGroup(g ir.RecGroup, base uint32) wasm.RecGroup {
	out := wasm.RecGroup{Explicit: g.Explicit, Types: make([]wasm.SubType, len(g.Types))}
	for i, st := range g.Types {
		out.Types[i] = SubType(st, base)
	}
	return out
}

// BlockType lowers a block signature.
func BlockType(b ir.BlockType) wasm.BlockType {
	switch b.Kind {
	case ir.BlockEmpty:
		return wasm.BlockType{Empty: true}
	case ir.BlockValue:
		v := ValType(b.Val, 0)
		return wasm.BlockType{Val: &v}
	case ir.BlockFunc:
		return wasm.BlockType{Index: b.Index}
	}
	unmapped("block type", b.Kind)
	return wasm.BlockType{}
}

// MemArg lowers a memory access descriptor.
func MemArg(m ir.MemArg) wasm.MemArg {
	return wasm.MemArg{Offset: m.Offset, Align: m.Align, Memory: m.Memory}
}

// Ordering returns the wire byte of an atomic ordering.
func Ordering(o ir.Ordering) byte {
	switch o {
	case ir.SeqCst:
		return wasm.OrderSeqCst
	case ir.AcqRel:
		return wasm.OrderAcqRel
	}
	unmapped("ordering", o)
	return 0
}

// Limits lowers table or memory limits.
func Limits(l ir.Limits) wasm.Limits {
	return wasm.Limits{Min: l.Min, Max: l.Max, Shared: l.Shared, Is64: l.Is64}
}

// GlobalType lowers a global's type.
func GlobalType(g ir.GlobalType) wasm.GlobalType {
	return wasm.GlobalType{Val: ValType(g.Val, 0), Mutable: g.Mutable, Shared: g.Shared}
}

// ExternalKind returns the wire byte of an import or export kind.
func ExternalKind(k ir.ExternalKind) byte {
	switch k {
	case ir.ExternFunc:
		return wasm.KindFunc
	case ir.ExternTable:
		return wasm.KindTable
	case ir.ExternMemory:
		return wasm.KindMemory
	case ir.ExternGlobal:
		return wasm.KindGlobal
	case ir.ExternTag:
		return wasm.KindTag
	}
	unmapped("external kind", k)
	return 0
}
