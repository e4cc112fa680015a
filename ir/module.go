package ir

// Module is the in-memory form of a core module. The order and length of
// every slice defines the index numbering other sections refer to.
type Module struct {
	Start          *uint32
	DataCount      *uint32
	TypeGroups     []RecGroup
	Imports        []Import
	Functions      []uint32 // type index per defined function
	Tables         []Table
	Memories       []MemoryType
	Tags           []TagType
	Globals        []Global
	Exports        []Export
	Elements       []Element
	Data           []DataSegment
	Code           []FunctionBody
	CustomSections []CustomSection
}

// ExternalKind is the kind of an import or export.
type ExternalKind byte

const (
	ExternFunc ExternalKind = iota
	ExternTable
	ExternMemory
	ExternGlobal
	ExternTag
)

func (k ExternalKind) String() string {
	switch k {
	case ExternFunc:
		return "func"
	case ExternTable:
		return "table"
	case ExternMemory:
		return "memory"
	case ExternGlobal:
		return "global"
	case ExternTag:
		return "tag"
	}
	return "unknown"
}

// ImportDesc is the imported entity. Only the field selected by Kind is set.
type ImportDesc struct {
	Table  *TableType
	Memory *MemoryType
	Global *GlobalType
	Tag    *TagType
	Func   uint32 // type index
	Kind   ExternalKind
}

// Import is a single module import.
type Import struct {
	Module string
	Name   string
	Desc   ImportDesc
}

// Export is a single module export.
type Export struct {
	Name  string
	Index uint32
	Kind  ExternalKind
}

// ConstExpr is an initializer expression as decoded, usually ending in end.
type ConstExpr []Operator

// Body returns the expression without one trailing end.
func (e ConstExpr) Body() []Operator {
	if n := len(e); n > 0 && e[n-1].Code == OpEnd {
		return e[:n-1]
	}
	return e
}

// Table is a defined table. Init is nil unless the table declares an
// explicit initializer.
type Table struct {
	Init ConstExpr
	Type TableType
}

// Global is a defined global.
type Global struct {
	Init ConstExpr
	Type GlobalType
}

// SegmentMode is how an element or data segment is applied.
type SegmentMode uint8

const (
	SegmentActive SegmentMode = iota
	SegmentPassive
	SegmentDeclared // element segments only
)

// ElementItems selects how element items are stored.
type ElementItems uint8

const (
	ItemsFuncs ElementItems = iota
	ItemsExprs
)

// Element is an element segment. Funcs holds indices when Items is
// ItemsFuncs, Exprs holds expressions otherwise.
type Element struct {
	Offset ConstExpr
	Funcs  []uint32
	Exprs  []ConstExpr
	Type   RefType
	Table  uint32
	Mode   SegmentMode
	Items  ElementItems
}

// Len returns the number of items.
func (e *Element) Len() int {
	if e.Items == ItemsExprs {
		return len(e.Exprs)
	}
	return len(e.Funcs)
}

// DataSegment is a data segment. Init aliases the parsed input.
type DataSegment struct {
	Offset ConstExpr
	Init   []byte
	Memory uint32
	Mode   SegmentMode
}

// Local is a run of Count locals of one type.
type Local struct {
	Type  ValType
	Count uint32
}

// FunctionBody is the code of one defined function.
type FunctionBody struct {
	Locals    []Local
	Operators []Operator
}

// NumLocals returns the number of declared locals, excluding parameters.
func (b *FunctionBody) NumLocals() uint64 {
	var n uint64
	for _, l := range b.Locals {
		n += uint64(l.Count)
	}
	return n
}

// CustomSection is a named custom section. Data aliases the parsed input.
type CustomSection struct {
	Name string
	Data []byte
}

// NumTypes returns the number of types across all rec groups.
func (m *Module) NumTypes() int {
	n := 0
	for _, g := range m.TypeGroups {
		n += len(g.Types)
	}
	return n
}

// Type returns the subtype at a flat type index.
func (m *Module) Type(idx uint32) *SubType {
	for gi := range m.TypeGroups {
		g := &m.TypeGroups[gi]
		if idx < uint32(len(g.Types)) {
			return &g.Types[idx]
		}
		idx -= uint32(len(g.Types))
	}
	return nil
}

// GroupBase returns the flat index of the first type of each rec group.
func (m *Module) GroupBase() []uint32 {
	bases := make([]uint32, len(m.TypeGroups))
	var next uint32
	for i, g := range m.TypeGroups {
		bases[i] = next
		next += uint32(len(g.Types))
	}
	return bases
}

// AddFuncType appends an implicit group holding the signature and returns
// its type index. An existing standalone function type with the same
// signature is reused.
func (m *Module) AddFuncType(params, results []ValType) uint32 {
	var idx uint32
	for _, g := range m.TypeGroups {
		if !g.Explicit && len(g.Types) == 1 {
			st := g.Types[0]
			if st.Final && st.Supertype == nil && st.Composite.Kind == CompFunc &&
				valTypesEqual(st.Composite.Func.Params, params) &&
				valTypesEqual(st.Composite.Func.Results, results) {
				return idx
			}
		}
		idx += uint32(len(g.Types))
	}
	m.TypeGroups = append(m.TypeGroups, FuncGroup(params, results))
	return idx
}

func valTypesEqual(a, b []ValType) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (m *Module) countImports(kind ExternalKind) int {
	count := 0
	for _, imp := range m.Imports {
		if imp.Desc.Kind == kind {
			count++
		}
	}
	return count
}

// NumImportedFuncs returns the number of imported functions.
func (m *Module) NumImportedFuncs() int { return m.countImports(ExternFunc) }

// NumImportedTables returns the number of imported tables.
func (m *Module) NumImportedTables() int { return m.countImports(ExternTable) }

// NumImportedMemories returns the number of imported memories.
func (m *Module) NumImportedMemories() int { return m.countImports(ExternMemory) }

// NumImportedGlobals returns the number of imported globals.
func (m *Module) NumImportedGlobals() int { return m.countImports(ExternGlobal) }

// NumImportedTags returns the number of imported tags.
func (m *Module) NumImportedTags() int { return m.countImports(ExternTag) }

// FuncTypeIndex returns the type index of a function in the function
// index space.
func (m *Module) FuncTypeIndex(funcIdx uint32) (uint32, bool) {
	for _, imp := range m.Imports {
		if imp.Desc.Kind != ExternFunc {
			continue
		}
		if funcIdx == 0 {
			return imp.Desc.Func, true
		}
		funcIdx--
	}
	if funcIdx < uint32(len(m.Functions)) {
		return m.Functions[funcIdx], true
	}
	return 0, false
}

// FuncType returns the signature of a function in the function index
// space, or nil if the index or its type is not a function type.
func (m *Module) FuncType(funcIdx uint32) *FuncType {
	typeIdx, ok := m.FuncTypeIndex(funcIdx)
	if !ok {
		return nil
	}
	st := m.Type(typeIdx)
	if st == nil || st.Composite.Kind != CompFunc {
		return nil
	}
	return st.Composite.Func
}

// ExportIndex finds an export by name.
func (m *Module) ExportIndex(name string) (Export, bool) {
	for _, e := range m.Exports {
		if e.Name == name {
			return e, true
		}
	}
	return Export{}, false
}
