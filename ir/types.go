package ir

import "fmt"

// ValKind is the category of a value type.
type ValKind uint8

const (
	KindI32 ValKind = iota + 1
	KindI64
	KindF32
	KindF64
	KindV128
	KindRef
)

// ValType is a value type. Ref is only meaningful when Kind is KindRef.
type ValType struct {
	Ref  RefType
	Kind ValKind
}

// Predeclared value types.
var (
	ValI32       = ValType{Kind: KindI32}
	ValI64       = ValType{Kind: KindI64}
	ValF32       = ValType{Kind: KindF32}
	ValF64       = ValType{Kind: KindF64}
	ValV128      = ValType{Kind: KindV128}
	ValFuncRef   = ValType{Kind: KindRef, Ref: FuncRef}
	ValExternRef = ValType{Kind: KindRef, Ref: ExternRef}
)

// RefVal wraps a reference type as a value type.
func RefVal(r RefType) ValType {
	return ValType{Kind: KindRef, Ref: r}
}

func (v ValType) String() string {
	switch v.Kind {
	case KindI32:
		return "i32"
	case KindI64:
		return "i64"
	case KindF32:
		return "f32"
	case KindF64:
		return "f64"
	case KindV128:
		return "v128"
	case KindRef:
		return v.Ref.String()
	}
	return fmt.Sprintf("valtype(%d)", v.Kind)
}

// AbstractHeapType names one of the predefined heap types.
type AbstractHeapType uint8

const (
	HeapFunc AbstractHeapType = iota + 1
	HeapExtern
	HeapAny
	HeapEq
	HeapI31
	HeapStruct
	HeapArray
	HeapExn
	HeapNoExn
	HeapNone
	HeapNoExtern
	HeapNoFunc
	HeapCont
	HeapNoCont
)

var heapNames = [...]string{
	HeapFunc:     "func",
	HeapExtern:   "extern",
	HeapAny:      "any",
	HeapEq:       "eq",
	HeapI31:      "i31",
	HeapStruct:   "struct",
	HeapArray:    "array",
	HeapExn:      "exn",
	HeapNoExn:    "noexn",
	HeapNone:     "none",
	HeapNoExtern: "noextern",
	HeapNoFunc:   "nofunc",
	HeapCont:     "cont",
	HeapNoCont:   "nocont",
}

func (a AbstractHeapType) String() string {
	if int(a) < len(heapNames) && heapNames[a] != "" {
		return heapNames[a]
	}
	return fmt.Sprintf("heap(%d)", a)
}

// PackedIndex is a type index, either module-absolute or relative to the
// enclosing rec group. Relative indices only occur inside the type section.
type PackedIndex struct {
	Index            uint32
	RecGroupRelative bool
}

// ModuleIndex returns an absolute type index.
func ModuleIndex(i uint32) PackedIndex {
	return PackedIndex{Index: i}
}

// RecIndex returns an index relative to the enclosing rec group.
func RecIndex(i uint32) PackedIndex {
	return PackedIndex{Index: i, RecGroupRelative: true}
}

// HeapType is either abstract or a concrete type index.
type HeapType struct {
	Index    PackedIndex
	Abstract AbstractHeapType // zero for concrete types
	Shared   bool
}

// Abstract returns an unshared abstract heap type.
func Abstract(a AbstractHeapType) HeapType {
	return HeapType{Abstract: a}
}

// Concrete returns the heap type of a module type index.
func Concrete(idx uint32) HeapType {
	return HeapType{Index: ModuleIndex(idx)}
}

// IsConcrete reports whether h refers to a defined type.
func (h HeapType) IsConcrete() bool {
	return h.Abstract == 0
}

func (h HeapType) String() string {
	var s string
	switch {
	case !h.IsConcrete():
		s = h.Abstract.String()
	case h.Index.RecGroupRelative:
		s = fmt.Sprintf("rec.%d", h.Index.Index)
	default:
		s = fmt.Sprintf("%d", h.Index.Index)
	}
	if h.Shared {
		return "shared " + s
	}
	return s
}

// RefType is a reference value type.
type RefType struct {
	Heap     HeapType
	Nullable bool
}

// Common reference types.
var (
	FuncRef   = RefType{Nullable: true, Heap: Abstract(HeapFunc)}
	ExternRef = RefType{Nullable: true, Heap: Abstract(HeapExtern)}
)

func (r RefType) String() string {
	if r.Nullable {
		return "(ref null " + r.Heap.String() + ")"
	}
	return "(ref " + r.Heap.String() + ")"
}

// CompositeKind selects the shape of a composite type.
type CompositeKind uint8

const (
	CompFunc CompositeKind = iota + 1
	CompStruct
	CompArray
	CompCont
)

// FuncType is a function signature.
type FuncType struct {
	Params  []ValType
	Results []ValType
}

// PackedType is a narrow integer storage type for struct and array fields.
type PackedType uint8

const (
	PackedNone PackedType = iota
	PackedI8
	PackedI16
)

// StorageType is a field's storage, packed or a full value type.
type StorageType struct {
	Val    ValType
	Packed PackedType
}

// FieldType is a struct or array field.
type FieldType struct {
	Storage StorageType
	Mutable bool
}

// StructType is a sequence of fields.
type StructType struct {
	Fields []FieldType
}

// ArrayType is a homogeneous array.
type ArrayType struct {
	Field FieldType
}

// ContType is a continuation over a function type.
type ContType struct {
	Type PackedIndex
}

// CompositeType is one of func, struct, array or cont, selected by Kind.
type CompositeType struct {
	Func   *FuncType
	Struct *StructType
	Array  *ArrayType
	Cont   *ContType
	Kind   CompositeKind
	Shared bool
}

// FuncComposite wraps a signature as a composite type.
func FuncComposite(params, results []ValType) CompositeType {
	return CompositeType{Kind: CompFunc, Func: &FuncType{Params: params, Results: results}}
}

// SubType is a type definition. Final types without a supertype use the
// shorthand encoding.
type SubType struct {
	Supertype *PackedIndex
	Composite CompositeType
	Final     bool
}

// RecGroup is one entry of the type section. Implicit groups hold exactly
// one subtype and re-encode as a standalone declaration.
type RecGroup struct {
	Types    []SubType
	Explicit bool
}

// FuncGroup returns an implicit group holding one final function type.
func FuncGroup(params, results []ValType) RecGroup {
	return RecGroup{Types: []SubType{{Final: true, Composite: FuncComposite(params, results)}}}
}

// Limits bounds a table or memory.
type Limits struct {
	Max    *uint64
	Min    uint64
	Shared bool
	Is64   bool
}

// TableType is a table's element type and limits.
type TableType struct {
	Limits Limits
	Elem   RefType
}

// MemoryType is a memory's limits in pages.
type MemoryType struct {
	Limits Limits
}

// GlobalType is a global's value type and flags.
type GlobalType struct {
	Val     ValType
	Mutable bool
	Shared  bool
}

// TagType is an exception tag. Attribute 0 is the only defined kind.
type TagType struct {
	Type      uint32
	Attribute byte
}

// BlockKind selects the form of a block type.
type BlockKind uint8

const (
	BlockEmpty BlockKind = iota
	BlockValue
	BlockFunc
)

// BlockType is a block signature.
type BlockType struct {
	Val   ValType
	Index uint32
	Kind  BlockKind
}
