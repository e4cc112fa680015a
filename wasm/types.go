package wasm

import "github.com/wippyai/wasmarin/internal/binary"

// HeapType is the wire form of a heap type. Abstract types use their
// negative s33 value (the type byte sign-extended), concrete types their
// non-negative module type index.
type HeapType struct {
	Value  int64
	Shared bool
}

// AbstractHeap returns the heap type for an abstract type byte.
func AbstractHeap(b byte, shared bool) HeapType {
	return HeapType{Value: int64(b) - 0x80, Shared: shared}
}

// ConcreteHeap returns the heap type referring to a type index.
func ConcreteHeap(idx uint32) HeapType {
	return HeapType{Value: int64(idx)}
}

// IsAbstract reports whether h names an abstract heap type.
func (h HeapType) IsAbstract() bool {
	return h.Value < 0
}

// Byte returns the type byte of an abstract heap type.
func (h HeapType) Byte() byte {
	return byte(h.Value + 0x80)
}

// AppendTo writes the heap type.
func (h HeapType) AppendTo(w *binary.Writer) {
	if h.Shared {
		w.Byte(SharedPrefix)
	}
	w.WriteS64(h.Value)
}

// ValType is the wire form of a value type. Code is a number or vector
// type byte, an abstract heap byte for the nullable shorthand, or one of
// RefPrefix/RefNullPrefix followed by Heap.
type ValType struct {
	Code byte
	Heap HeapType
}

// AppendTo writes the value type.
func (v ValType) AppendTo(w *binary.Writer) {
	w.Byte(v.Code)
	if v.Code == RefPrefix || v.Code == RefNullPrefix {
		v.Heap.AppendTo(w)
	}
}

func appendValTypes(w *binary.Writer, types []ValType) {
	w.WriteU32(uint32(len(types)))
	for _, t := range types {
		t.AppendTo(w)
	}
}

// StorageType is a field's storage: a packed byte or a value type.
type StorageType struct {
	Packed byte
	Val    ValType
}

// AppendTo writes the storage type.
func (s StorageType) AppendTo(w *binary.Writer) {
	if s.Packed != 0 {
		w.Byte(s.Packed)
		return
	}
	s.Val.AppendTo(w)
}

// FieldType is a struct or array field.
type FieldType struct {
	Storage StorageType
	Mutable bool
}

// AppendTo writes the field type.
func (f FieldType) AppendTo(w *binary.Writer) {
	f.Storage.AppendTo(w)
	if f.Mutable {
		w.Byte(1)
	} else {
		w.Byte(0)
	}
}

// CompositeType is a func, struct, array or cont definition. Form selects
// which fields are meaningful.
type CompositeType struct {
	Params  []ValType
	Results []ValType
	Fields  []FieldType
	Cont    uint32
	Form    byte
	Shared  bool
}

// AppendTo writes the composite type.
func (c CompositeType) AppendTo(w *binary.Writer) {
	if c.Shared {
		w.Byte(SharedPrefix)
	}
	w.Byte(c.Form)
	switch c.Form {
	case FormFunc:
		appendValTypes(w, c.Params)
		appendValTypes(w, c.Results)
	case FormStruct:
		w.WriteU32(uint32(len(c.Fields)))
		for _, f := range c.Fields {
			f.AppendTo(w)
		}
	case FormArray:
		c.Fields[0].AppendTo(w)
	case FormCont:
		w.WriteU32(c.Cont)
	}
}

// SubType is a type definition with its finality and supertypes.
type SubType struct {
	Supertypes []uint32
	Composite  CompositeType
	Final      bool
}

// AppendTo writes the subtype, using the bare composite shorthand for
// final types without supertypes.
func (s SubType) AppendTo(w *binary.Writer) {
	if s.Final && len(s.Supertypes) == 0 {
		s.Composite.AppendTo(w)
		return
	}
	if s.Final {
		w.Byte(FormSubFinal)
	} else {
		w.Byte(FormSub)
	}
	w.WriteU32(uint32(len(s.Supertypes)))
	for _, p := range s.Supertypes {
		w.WriteU32(p)
	}
	s.Composite.AppendTo(w)
}

// RecGroup is one entry of the type section.
type RecGroup struct {
	Types    []SubType
	Explicit bool
}

// AppendTo writes the group as a rec scope when explicit, otherwise as its
// single standalone subtype.
func (g RecGroup) AppendTo(w *binary.Writer) {
	if !g.Explicit {
		g.Types[0].AppendTo(w)
		return
	}
	w.Byte(FormRec)
	w.WriteU32(uint32(len(g.Types)))
	for _, t := range g.Types {
		t.AppendTo(w)
	}
}

// Limits is the wire form of table and memory limits.
type Limits struct {
	Max    *uint64
	Min    uint64
	Shared bool
	Is64   bool
}

// AppendTo writes the flags byte and bounds.
func (l Limits) AppendTo(w *binary.Writer) {
	var flags byte
	if l.Max != nil {
		flags |= LimitsHasMax
	}
	if l.Shared {
		flags |= LimitsShared
	}
	if l.Is64 {
		flags |= Limits64
	}
	w.Byte(flags)
	w.WriteU64(l.Min)
	if l.Max != nil {
		w.WriteU64(*l.Max)
	}
}

// GlobalType is the wire form of a global's type.
type GlobalType struct {
	Val     ValType
	Mutable bool
	Shared  bool
}

// AppendTo writes the value type and the mutability flags.
func (g GlobalType) AppendTo(w *binary.Writer) {
	g.Val.AppendTo(w)
	var flags byte
	if g.Mutable {
		flags |= 0x01
	}
	if g.Shared {
		flags |= 0x02
	}
	w.Byte(flags)
}

// BlockType is a block signature: empty, a single value type, or a type
// index.
type BlockType struct {
	Val   *ValType
	Index uint32
	Empty bool
}

// AppendTo writes the block type.
func (b BlockType) AppendTo(w *binary.Writer) {
	switch {
	case b.Empty:
		w.Byte(BlockEmpty)
	case b.Val != nil:
		b.Val.AppendTo(w)
	default:
		w.WriteS64(int64(b.Index))
	}
}

// MemArg is a memory access descriptor. Align is the log2 alignment.
type MemArg struct {
	Offset uint64
	Align  uint32
	Memory uint32
}

// AppendTo writes the alignment flags, the memory index when it is not
// zero, and the offset.
func (m MemArg) AppendTo(w *binary.Writer) {
	if m.Memory != 0 {
		w.WriteU32(m.Align | MemArgHasMemory)
		w.WriteU32(m.Memory)
	} else {
		w.WriteU32(m.Align)
	}
	w.WriteU64(m.Offset)
}
