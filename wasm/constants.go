package wasm

// Module header.
const (
	Magic   uint32 = 0x6d736100 // \0asm
	Version uint32 = 0x01

	// LayerComponent is the layer field of a component binary header.
	LayerComponent uint16 = 0x01
)

// Section IDs
const (
	SectionCustom    byte = 0
	SectionType      byte = 1
	SectionImport    byte = 2
	SectionFunction  byte = 3
	SectionTable     byte = 4
	SectionMemory    byte = 5
	SectionGlobal    byte = 6
	SectionExport    byte = 7
	SectionStart     byte = 8
	SectionElement   byte = 9
	SectionCode      byte = 10
	SectionData      byte = 11
	SectionDataCount byte = 12
	SectionTag       byte = 13
)

var sectionNames = [...]string{
	SectionCustom:    "custom",
	SectionType:      "type",
	SectionImport:    "import",
	SectionFunction:  "function",
	SectionTable:     "table",
	SectionMemory:    "memory",
	SectionGlobal:    "global",
	SectionExport:    "export",
	SectionStart:     "start",
	SectionElement:   "element",
	SectionCode:      "code",
	SectionData:      "data",
	SectionDataCount: "data count",
	SectionTag:       "tag",
}

// SectionName returns the human-readable name of a section id.
func SectionName(id byte) string {
	if int(id) < len(sectionNames) {
		return sectionNames[id]
	}
	return "unknown"
}

// SectionOrder returns the position a non-custom section must occupy in a
// module. Tag sits between memory and global, data count before code.
func SectionOrder(id byte) int {
	switch id {
	case SectionType:
		return 1
	case SectionImport:
		return 2
	case SectionFunction:
		return 3
	case SectionTable:
		return 4
	case SectionMemory:
		return 5
	case SectionTag:
		return 6
	case SectionGlobal:
		return 7
	case SectionExport:
		return 8
	case SectionStart:
		return 9
	case SectionElement:
		return 10
	case SectionDataCount:
		return 11
	case SectionCode:
		return 12
	case SectionData:
		return 13
	default:
		return 0
	}
}

// External kinds
const (
	KindFunc   byte = 0x00
	KindTable  byte = 0x01
	KindMemory byte = 0x02
	KindGlobal byte = 0x03
	KindTag    byte = 0x04
)

// Number and vector types
const (
	ValI32  byte = 0x7F
	ValI64  byte = 0x7E
	ValF32  byte = 0x7D
	ValF64  byte = 0x7C
	ValV128 byte = 0x7B
)

// Packed storage types
const (
	PackedI8  byte = 0x78
	PackedI16 byte = 0x77
)

// Reference type prefixes
const (
	RefNullPrefix byte = 0x63 // (ref null ht)
	RefPrefix     byte = 0x64 // (ref ht)
	SharedPrefix  byte = 0x65
)

// Abstract heap types. As value types they double as the nullable
// reference shorthands, e.g. 0x70 is funcref.
const (
	HeapNoCont   byte = 0x75
	HeapNoExn    byte = 0x74
	HeapNoFunc   byte = 0x73
	HeapNoExtern byte = 0x72
	HeapNone     byte = 0x71
	HeapFunc     byte = 0x70
	HeapExtern   byte = 0x6F
	HeapAny      byte = 0x6E
	HeapEq       byte = 0x6D
	HeapI31      byte = 0x6C
	HeapStruct   byte = 0x6B
	HeapArray    byte = 0x6A
	HeapExn      byte = 0x69
	HeapCont     byte = 0x68
)

// Type section forms
const (
	FormFunc     byte = 0x60
	FormStruct   byte = 0x5F
	FormArray    byte = 0x5E
	FormCont     byte = 0x5D
	FormSubFinal byte = 0x4F
	FormSub      byte = 0x50
	FormRec      byte = 0x4E
)

// BlockEmpty is the empty block type.
const BlockEmpty byte = 0x40

// Opcode prefixes
const (
	PrefixGC     byte = 0xFB
	PrefixMisc   byte = 0xFC
	PrefixSIMD   byte = 0xFD
	PrefixAtomic byte = 0xFE
)

// OpEnd terminates blocks, bodies and constant expressions.
const OpEnd byte = 0x0B

// Limits flags
const (
	LimitsHasMax byte = 0x01
	LimitsShared byte = 0x02
	Limits64     byte = 0x04
)

// Table with explicit initializer: 0x40 0x00 tabletype expr
const TableInitPrefix byte = 0x40

// Element segment flag bits
const (
	ElemPassiveOrDeclared byte = 0x01
	ElemExplicitIndex     byte = 0x02 // active: table index follows; else declared
	ElemExpressions       byte = 0x04
)

// ElemKindFunc is the only elemkind of the index forms.
const ElemKindFunc byte = 0x00

// Data segment flags
const (
	DataActive         byte = 0x00
	DataPassive        byte = 0x01
	DataActiveExplicit byte = 0x02
)

// Memory argument flag marking an explicit memory index.
const MemArgHasMemory uint32 = 0x40

// Catch clause kinds of try_table
const (
	CatchTag    byte = 0x00
	CatchTagRef byte = 0x01
	CatchAll    byte = 0x02
	CatchAllRef byte = 0x03
)

// Cast flags of br_on_cast and br_on_cast_fail
const (
	CastSrcNullable byte = 0x01
	CastDstNullable byte = 0x02
)

// Atomic fence orderings
const (
	OrderSeqCst byte = 0x00
	OrderAcqRel byte = 0x01
)
