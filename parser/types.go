package parser

import (
	"fmt"

	"github.com/wippyai/wasmarin/internal/binary"
	"github.com/wippyai/wasmarin/ir"
	"github.com/wippyai/wasmarin/wasm"
)

func isValTypeByte(b byte) bool {
	switch b {
	case wasm.ValI32, wasm.ValI64, wasm.ValF32, wasm.ValF64, wasm.ValV128,
		wasm.RefPrefix, wasm.RefNullPrefix:
		return true
	}
	_, ok := abstractHeap(b)
	return ok
}

func abstractHeap(b byte) (ir.AbstractHeapType, bool) {
	switch b {
	case wasm.HeapFunc:
		return ir.HeapFunc, true
	case wasm.HeapExtern:
		return ir.HeapExtern, true
	case wasm.HeapAny:
		return ir.HeapAny, true
	case wasm.HeapEq:
		return ir.HeapEq, true
	case wasm.HeapI31:
		return ir.HeapI31, true
	case wasm.HeapStruct:
		return ir.HeapStruct, true
	case wasm.HeapArray:
		return ir.HeapArray, true
	case wasm.HeapExn:
		return ir.HeapExn, true
	case wasm.HeapNoExn:
		return ir.HeapNoExn, true
	case wasm.HeapNone:
		return ir.HeapNone, true
	case wasm.HeapNoExtern:
		return ir.HeapNoExtern, true
	case wasm.HeapNoFunc:
		return ir.HeapNoFunc, true
	case wasm.HeapCont:
		return ir.HeapCont, true
	case wasm.HeapNoCont:
		return ir.HeapNoCont, true
	}
	return 0, false
}

func readValType(r *binary.Reader) (ir.ValType, error) {
	b, err := r.ReadByte()
	if err != nil {
		return ir.ValType{}, err
	}
	switch b {
	case wasm.ValI32:
		return ir.ValI32, nil
	case wasm.ValI64:
		return ir.ValI64, nil
	case wasm.ValF32:
		return ir.ValF32, nil
	case wasm.ValF64:
		return ir.ValF64, nil
	case wasm.ValV128:
		return ir.ValV128, nil
	case wasm.RefPrefix, wasm.RefNullPrefix:
		heap, err := readHeapType(r)
		if err != nil {
			return ir.ValType{}, err
		}
		return ir.RefVal(ir.RefType{Heap: heap, Nullable: b == wasm.RefNullPrefix}), nil
	}
	if a, ok := abstractHeap(b); ok {
		return ir.RefVal(ir.RefType{Heap: ir.Abstract(a), Nullable: true}), nil
	}
	return ir.ValType{}, fmt.Errorf("invalid value type 0x%02x", b)
}

func readValTypes(r *binary.Reader) ([]ir.ValType, error) {
	n, err := r.ReadU32()
	if err != nil {
		return nil, err
	}
	if int(n) > r.Len() {
		return nil, fmt.Errorf("%d value types exceed remaining input", n)
	}
	types := make([]ir.ValType, n)
	for i := range types {
		if types[i], err = readValType(r); err != nil {
			return nil, err
		}
	}
	return types, nil
}

func readRefType(r *binary.Reader) (ir.RefType, error) {
	v, err := readValType(r)
	if err != nil {
		return ir.RefType{}, err
	}
	if v.Kind != ir.KindRef {
		return ir.RefType{}, fmt.Errorf("expected reference type, got %s", v)
	}
	return v.Ref, nil
}

func readHeapType(r *binary.Reader) (ir.HeapType, error) {
	var h ir.HeapType
	b, err := r.PeekByte()
	if err != nil {
		return h, err
	}
	if b == wasm.SharedPrefix {
		_, _ = r.ReadByte()
		h.Shared = true
	}
	v, err := r.ReadS33()
	if err != nil {
		return h, err
	}
	if v >= 0 {
		h.Index = ir.ModuleIndex(uint32(v))
		return h, nil
	}
	a, ok := abstractHeap(byte(v + 0x80))
	if !ok || v < -0x40 {
		return h, fmt.Errorf("invalid heap type %d", v)
	}
	h.Abstract = a
	return h, nil
}

func readRecGroup(r *binary.Reader) (ir.RecGroup, error) {
	b, err := r.PeekByte()
	if err != nil {
		return ir.RecGroup{}, err
	}
	if b != wasm.FormRec {
		st, err := readSubType(r)
		if err != nil {
			return ir.RecGroup{}, err
		}
		return ir.RecGroup{Types: []ir.SubType{st}}, nil
	}
	_, _ = r.ReadByte()
	n, err := r.ReadU32()
	if err != nil {
		return ir.RecGroup{}, err
	}
	if int(n) > r.Len() {
		return ir.RecGroup{}, fmt.Errorf("rec group of %d types exceeds remaining input", n)
	}
	g := ir.RecGroup{Explicit: true, Types: make([]ir.SubType, n)}
	for i := range g.Types {
		if g.Types[i], err = readSubType(r); err != nil {
			return ir.RecGroup{}, fmt.Errorf("rec group type %d: %w", i, err)
		}
	}
	return g, nil
}

func readSubType(r *binary.Reader) (ir.SubType, error) {
	b, err := r.PeekByte()
	if err != nil {
		return ir.SubType{}, err
	}
	if b != wasm.FormSub && b != wasm.FormSubFinal {
		comp, err := readCompositeType(r)
		return ir.SubType{Final: true, Composite: comp}, err
	}
	_, _ = r.ReadByte()
	st := ir.SubType{Final: b == wasm.FormSubFinal}
	n, err := r.ReadU32()
	if err != nil {
		return ir.SubType{}, err
	}
	if n > 1 {
		return ir.SubType{}, fmt.Errorf("subtype declares %d supertypes, at most 1 allowed", n)
	}
	if n == 1 {
		idx, err := r.ReadU32()
		if err != nil {
			return ir.SubType{}, err
		}
		super := ir.ModuleIndex(idx)
		st.Supertype = &super
	}
	st.Composite, err = readCompositeType(r)
	return st, err
}

func readCompositeType(r *binary.Reader) (ir.CompositeType, error) {
	form, err := r.ReadByte()
	if err != nil {
		return ir.CompositeType{}, err
	}
	shared := false
	if form == wasm.SharedPrefix {
		shared = true
		if form, err = r.ReadByte(); err != nil {
			return ir.CompositeType{}, err
		}
	}

	c := ir.CompositeType{Shared: shared}
	switch form {
	case wasm.FormFunc:
		params, err := readValTypes(r)
		if err != nil {
			return c, err
		}
		results, err := readValTypes(r)
		if err != nil {
			return c, err
		}
		c.Kind = ir.CompFunc
		c.Func = &ir.FuncType{Params: params, Results: results}
	case wasm.FormStruct:
		n, err := r.ReadU32()
		if err != nil {
			return c, err
		}
		if int(n) > r.Len() {
			return c, fmt.Errorf("struct of %d fields exceeds remaining input", n)
		}
		fields := make([]ir.FieldType, n)
		for i := range fields {
			if fields[i], err = readFieldType(r); err != nil {
				return c, err
			}
		}
		c.Kind = ir.CompStruct
		c.Struct = &ir.StructType{Fields: fields}
	case wasm.FormArray:
		f, err := readFieldType(r)
		if err != nil {
			return c, err
		}
		c.Kind = ir.CompArray
		c.Array = &ir.ArrayType{Field: f}
	case wasm.FormCont:
		idx, err := r.ReadU32()
		if err != nil {
			return c, err
		}
		c.Kind = ir.CompCont
		c.Cont = &ir.ContType{Type: ir.ModuleIndex(idx)}
	default:
		return c, fmt.Errorf("invalid composite type form 0x%02x", form)
	}
	return c, nil
}

func readFieldType(r *binary.Reader) (ir.FieldType, error) {
	var f ir.FieldType
	b, err := r.PeekByte()
	if err != nil {
		return f, err
	}
	switch b {
	case wasm.PackedI8:
		_, _ = r.ReadByte()
		f.Storage.Packed = ir.PackedI8
	case wasm.PackedI16:
		_, _ = r.ReadByte()
		f.Storage.Packed = ir.PackedI16
	default:
		if f.Storage.Val, err = readValType(r); err != nil {
			return f, err
		}
	}
	mut, err := r.ReadByte()
	if err != nil {
		return f, err
	}
	if mut > 1 {
		return f, fmt.Errorf("invalid mutability 0x%02x", mut)
	}
	f.Mutable = mut == 1
	return f, nil
}

func readLimits(r *binary.Reader) (ir.Limits, error) {
	flags, err := r.ReadByte()
	if err != nil {
		return ir.Limits{}, err
	}
	if flags&^(wasm.LimitsHasMax|wasm.LimitsShared|wasm.Limits64) != 0 {
		return ir.Limits{}, fmt.Errorf("invalid limits flags 0x%02x", flags)
	}
	l := ir.Limits{
		Shared: flags&wasm.LimitsShared != 0,
		Is64:   flags&wasm.Limits64 != 0,
	}
	read := func() (uint64, error) {
		if l.Is64 {
			return r.ReadU64()
		}
		v, err := r.ReadU32()
		return uint64(v), err
	}
	if l.Min, err = read(); err != nil {
		return ir.Limits{}, err
	}
	if flags&wasm.LimitsHasMax != 0 {
		hi, err := read()
		if err != nil {
			return ir.Limits{}, err
		}
		if l.Min > hi {
			return ir.Limits{}, fmt.Errorf("limits min (%d) exceeds max (%d)", l.Min, hi)
		}
		l.Max = &hi
	}
	return l, nil
}

func readTableType(r *binary.Reader) (ir.TableType, error) {
	elem, err := readRefType(r)
	if err != nil {
		return ir.TableType{}, err
	}
	limits, err := readLimits(r)
	if err != nil {
		return ir.TableType{}, err
	}
	return ir.TableType{Elem: elem, Limits: limits}, nil
}

func readGlobalType(r *binary.Reader) (ir.GlobalType, error) {
	v, err := readValType(r)
	if err != nil {
		return ir.GlobalType{}, err
	}
	flags, err := r.ReadByte()
	if err != nil {
		return ir.GlobalType{}, err
	}
	if flags > 3 {
		return ir.GlobalType{}, fmt.Errorf("invalid global flags 0x%02x", flags)
	}
	return ir.GlobalType{Val: v, Mutable: flags&1 != 0, Shared: flags&2 != 0}, nil
}

func readTagType(r *binary.Reader) (ir.TagType, error) {
	attr, err := r.ReadByte()
	if err != nil {
		return ir.TagType{}, err
	}
	if attr != 0 {
		return ir.TagType{}, fmt.Errorf("invalid tag attribute 0x%02x", attr)
	}
	idx, err := r.ReadU32()
	if err != nil {
		return ir.TagType{}, err
	}
	return ir.TagType{Attribute: attr, Type: idx}, nil
}
