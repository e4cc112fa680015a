package ir

import "fmt"

// Memory page limits
const (
	MemoryMaxPages32 = 65536
	MemoryMaxPages64 = 1 << 48
)

// Validate checks that every cross-reference in the module stays inside
// its index space. It does not type-check function bodies.
func (m *Module) Validate() error {
	spaces := NewIndexSpaces(m)
	checks := []func(*IndexSpaces) error{
		m.validateTypeIndices,
		m.validateFunctionIndices,
		m.validateTableIndices,
		m.validateMemoryIndices,
		m.validateGlobalIndices,
		m.validateTagIndices,
		m.validateExports,
		m.validateStart,
		m.validateDataCount,
		m.validateCodeCount,
		m.validateMemoryLimits,
		m.validateBodies,
	}
	for _, check := range checks {
		if err := check(spaces); err != nil {
			return err
		}
	}
	return nil
}

func (m *Module) validateTypeIndices(s *IndexSpaces) error {
	numTypes := s.Len(SpaceType)

	for gi, g := range m.TypeGroups {
		if len(g.Types) == 0 {
			return fmt.Errorf("rec group %d is empty", gi)
		}
		if !g.Explicit && len(g.Types) != 1 {
			return fmt.Errorf("implicit rec group %d has %d types", gi, len(g.Types))
		}
		for ti, st := range g.Types {
			if st.Supertype != nil && !packedInRange(*st.Supertype, numTypes, len(g.Types)) {
				return fmt.Errorf("rec group %d, type %d has invalid supertype %d", gi, ti, st.Supertype.Index)
			}
			if err := validateComposite(st.Composite); err != nil {
				return fmt.Errorf("rec group %d, type %d: %w", gi, ti, err)
			}
		}
	}

	for i, typeIdx := range m.Functions {
		if typeIdx >= numTypes {
			return fmt.Errorf("function %d references invalid type index %d (have %d types)", i, typeIdx, numTypes)
		}
		if st := m.Type(typeIdx); st.Composite.Kind != CompFunc {
			return fmt.Errorf("function %d references non-function type %d", i, typeIdx)
		}
	}

	for i, imp := range m.Imports {
		switch imp.Desc.Kind {
		case ExternFunc:
			if imp.Desc.Func >= numTypes {
				return fmt.Errorf("import %d (%s.%s) references invalid type index %d", i, imp.Module, imp.Name, imp.Desc.Func)
			}
		case ExternTag:
			if imp.Desc.Tag == nil || imp.Desc.Tag.Type >= numTypes {
				return fmt.Errorf("import %d (%s.%s) has invalid tag type", i, imp.Module, imp.Name)
			}
		case ExternTable:
			if imp.Desc.Table == nil {
				return fmt.Errorf("import %d (%s.%s) is missing its table type", i, imp.Module, imp.Name)
			}
		case ExternMemory:
			if imp.Desc.Memory == nil {
				return fmt.Errorf("import %d (%s.%s) is missing its memory type", i, imp.Module, imp.Name)
			}
		case ExternGlobal:
			if imp.Desc.Global == nil {
				return fmt.Errorf("import %d (%s.%s) is missing its global type", i, imp.Module, imp.Name)
			}
		default:
			return fmt.Errorf("import %d (%s.%s) has unknown kind %d", i, imp.Module, imp.Name, imp.Desc.Kind)
		}
	}

	for i, tag := range m.Tags {
		if tag.Type >= numTypes {
			return fmt.Errorf("tag %d references invalid type index %d", i, tag.Type)
		}
	}

	return nil
}

func packedInRange(p PackedIndex, numTypes uint32, groupLen int) bool {
	if p.RecGroupRelative {
		return p.Index < uint32(groupLen)
	}
	return p.Index < numTypes
}

func validateComposite(c CompositeType) error {
	switch c.Kind {
	case CompFunc:
		if c.Func == nil {
			return fmt.Errorf("func type without signature")
		}
	case CompStruct:
		if c.Struct == nil {
			return fmt.Errorf("struct type without fields")
		}
	case CompArray:
		if c.Array == nil {
			return fmt.Errorf("array type without element")
		}
	case CompCont:
		if c.Cont == nil {
			return fmt.Errorf("cont type without function type")
		}
	default:
		return fmt.Errorf("unknown composite kind %d", c.Kind)
	}
	return nil
}

func (m *Module) validateFunctionIndices(s *IndexSpaces) error {
	numFuncs := s.Len(SpaceFunc)

	if m.Start != nil && *m.Start >= numFuncs {
		return fmt.Errorf("start function index %d exceeds function count %d", *m.Start, numFuncs)
	}

	for i, elem := range m.Elements {
		if elem.Items != ItemsFuncs {
			continue
		}
		for j, funcIdx := range elem.Funcs {
			if funcIdx >= numFuncs {
				return fmt.Errorf("element %d, entry %d references invalid function index %d", i, j, funcIdx)
			}
		}
	}

	return m.validateExportKind(ExternFunc, numFuncs)
}

func (m *Module) validateTableIndices(s *IndexSpaces) error {
	numTables := s.Len(SpaceTable)

	for i, elem := range m.Elements {
		if elem.Mode == SegmentActive && elem.Table >= numTables {
			return fmt.Errorf("element %d references invalid table index %d", i, elem.Table)
		}
	}

	return m.validateExportKind(ExternTable, numTables)
}

func (m *Module) validateMemoryIndices(s *IndexSpaces) error {
	numMemories := s.Len(SpaceMemory)

	for i, data := range m.Data {
		if data.Mode == SegmentActive && data.Memory >= numMemories {
			return fmt.Errorf("data segment %d references invalid memory index %d", i, data.Memory)
		}
		if data.Mode == SegmentDeclared {
			return fmt.Errorf("data segment %d cannot be declarative", i)
		}
	}

	return m.validateExportKind(ExternMemory, numMemories)
}

func (m *Module) validateGlobalIndices(s *IndexSpaces) error {
	return m.validateExportKind(ExternGlobal, s.Len(SpaceGlobal))
}

func (m *Module) validateTagIndices(s *IndexSpaces) error {
	return m.validateExportKind(ExternTag, s.Len(SpaceTag))
}

func (m *Module) validateExportKind(kind ExternalKind, count uint32) error {
	for i, exp := range m.Exports {
		if exp.Kind == kind && exp.Index >= count {
			return fmt.Errorf("export %d (%s) references invalid %s index %d", i, exp.Name, kind, exp.Index)
		}
	}
	return nil
}

func (m *Module) validateExports(*IndexSpaces) error {
	seen := make(map[string]bool)
	for i, exp := range m.Exports {
		if exp.Kind > ExternTag {
			return fmt.Errorf("export %d (%s) has unknown kind %d", i, exp.Name, exp.Kind)
		}
		if seen[exp.Name] {
			return fmt.Errorf("duplicate export name %q at index %d", exp.Name, i)
		}
		seen[exp.Name] = true
	}
	return nil
}

func (m *Module) validateStart(*IndexSpaces) error {
	if m.Start == nil {
		return nil
	}

	funcType := m.FuncType(*m.Start)
	if funcType == nil {
		return fmt.Errorf("start function %d has no type", *m.Start)
	}

	if len(funcType.Params) != 0 || len(funcType.Results) != 0 {
		return fmt.Errorf("start function must have signature [] -> [], got [%d params] -> [%d results]",
			len(funcType.Params), len(funcType.Results))
	}

	return nil
}

func (m *Module) validateDataCount(*IndexSpaces) error {
	if m.DataCount != nil && *m.DataCount != uint32(len(m.Data)) {
		return fmt.Errorf("data count section declares %d segments, but data section has %d",
			*m.DataCount, len(m.Data))
	}
	return nil
}

func (m *Module) validateCodeCount(*IndexSpaces) error {
	if len(m.Code) != len(m.Functions) {
		return fmt.Errorf("code section has %d entries but function section has %d",
			len(m.Code), len(m.Functions))
	}
	return nil
}

func (m *Module) validateMemoryLimits(*IndexSpaces) error {
	for i, imp := range m.Imports {
		if imp.Desc.Kind == ExternMemory && imp.Desc.Memory != nil {
			if err := validateMemoryType(imp.Desc.Memory, i, true); err != nil {
				return err
			}
		}
	}
	for i := range m.Memories {
		if err := validateMemoryType(&m.Memories[i], i, false); err != nil {
			return err
		}
	}
	return nil
}

func validateMemoryType(mem *MemoryType, idx int, isImport bool) error {
	var maxPages uint64 = MemoryMaxPages32
	if mem.Limits.Is64 {
		maxPages = MemoryMaxPages64
	}

	prefix := "memory"
	if isImport {
		prefix = "imported memory"
	}

	if mem.Limits.Shared && mem.Limits.Max == nil {
		return fmt.Errorf("%s %d: shared memory must have maximum limit", prefix, idx)
	}
	if mem.Limits.Min > maxPages {
		return fmt.Errorf("%s %d: min pages %d exceeds maximum %d", prefix, idx, mem.Limits.Min, maxPages)
	}
	if mem.Limits.Max != nil {
		if *mem.Limits.Max > maxPages {
			return fmt.Errorf("%s %d: max pages %d exceeds maximum %d", prefix, idx, *mem.Limits.Max, maxPages)
		}
		if *mem.Limits.Max < mem.Limits.Min {
			return fmt.Errorf("%s %d: max pages %d below min %d", prefix, idx, *mem.Limits.Max, mem.Limits.Min)
		}
	}
	return nil
}

// validateBodies checks operator immediates that name module entities or
// locals, and that every body ends with end.
func (m *Module) validateBodies(s *IndexSpaces) error {
	numImported := uint32(m.NumImportedFuncs())
	for i := range m.Code {
		body := &m.Code[i]
		funcIdx := numImported + uint32(i)
		if n := len(body.Operators); n == 0 || body.Operators[n-1].Code != OpEnd {
			return fmt.Errorf("function %d body does not end with end", funcIdx)
		}
		numLocals := body.NumLocals()
		if ft := m.FuncType(funcIdx); ft != nil {
			numLocals += uint64(len(ft.Params))
		}
		for pos, op := range body.Operators {
			if err := checkOperator(op, s, numLocals); err != nil {
				return fmt.Errorf("function %d, operator %d (%s): %w", funcIdx, pos, op.Code, err)
			}
		}
	}
	return nil
}

func checkOperator(op Operator, s *IndexSpaces, numLocals uint64) error {
	if !op.Code.Valid() {
		return fmt.Errorf("unknown opcode")
	}
	var space Space
	switch op.Code.Info().Imm {
	case ImmFunc:
		space = SpaceFunc
	case ImmGlobal:
		space = SpaceGlobal
	case ImmType:
		space = SpaceType
	case ImmTag:
		space = SpaceTag
	case ImmTable:
		space = SpaceTable
	case ImmMemory:
		space = SpaceMemory
	case ImmLocal:
		idx, ok := op.Imm.(Index)
		if !ok {
			return fmt.Errorf("immediate %T, want Index", op.Imm)
		}
		if uint64(idx) >= numLocals {
			return fmt.Errorf("local %d out of range (have %d)", idx, numLocals)
		}
		return nil
	default:
		return nil
	}
	idx, ok := op.Imm.(Index)
	if !ok {
		return fmt.Errorf("immediate %T, want Index", op.Imm)
	}
	if uint32(idx) >= s.Len(space) {
		return fmt.Errorf("%s index %d out of range (have %d)", space, idx, s.Len(space))
	}
	return nil
}
