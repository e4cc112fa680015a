package ir

import (
	"strings"
	"testing"

	"github.com/wippyai/wasmarin/wasm"
)

func TestOpcodeTable(t *testing.T) {
	if NumOpCodes() < 500 {
		t.Fatalf("NumOpCodes() = %d, instruction set looks truncated", NumOpCodes())
	}

	names := make(map[string]OpCode)
	wire := make(map[[2]uint32]OpCode)
	for c := OpCode(0); int(c) < NumOpCodes(); c++ {
		info := c.Info()
		if info.Name == "" {
			t.Errorf("opcode %d has no name", c)
			continue
		}
		if prev, dup := names[info.Name]; dup {
			t.Errorf("%s: mnemonic shared with opcode %d", info.Name, prev)
		}
		names[info.Name] = c

		key := [2]uint32{uint32(info.Prefix), info.Code}
		if prev, dup := wire[key]; dup {
			t.Errorf("%s: wire code shared with %s", info.Name, prev)
		}
		wire[key] = c

		if info.Prefix != 0 && !info.IsPrefixed() {
			t.Errorf("%s: prefix 0x%02x is not a prefix byte", info.Name, info.Prefix)
		}
		if info.Prefix == 0 && info.Code > 0xFF {
			t.Errorf("%s: single-byte opcode 0x%x out of range", info.Name, info.Code)
		}

		if got, ok := Lookup(info.Name); !ok || got != c {
			t.Errorf("Lookup(%q) = %v, %v", info.Name, got, ok)
		}
		if got, ok := LookupWire(info.Prefix, info.Code); !ok || got != c {
			t.Errorf("LookupWire(0x%02x, 0x%x) = %v, %v, want %v", info.Prefix, info.Code, got, ok, c)
		}
	}
}

func TestOpcodeLookups(t *testing.T) {
	tests := []struct {
		name   string
		code   OpCode
		prefix byte
		wire   uint32
		imm    ImmKind
	}{
		{"i32.add", OpI32Add, 0, 0x6A, ImmNone},
		{"ref.null", OpRefNull, 0, 0xD0, ImmHeapType},
		{"memory.copy", OpMemoryCopy, wasm.PrefixMisc, 0x0A, ImmMemoryCopy},
		{"i8x16.shuffle", OpI8x16Shuffle, wasm.PrefixSIMD, 0x0D, ImmShuffle},
		{"atomic.fence", OpAtomicFence, wasm.PrefixAtomic, 0x03, ImmFence},
		{"struct.get", OpStructGet, wasm.PrefixGC, 0x02, ImmStructField},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := tt.code.Info()
			if info.Name != tt.name || info.Prefix != tt.prefix || info.Code != tt.wire || info.Imm != tt.imm {
				t.Errorf("Info() = %+v", info)
			}
			if tt.code.String() != tt.name {
				t.Errorf("String() = %q", tt.code.String())
			}
		})
	}

	if _, ok := Lookup("i32.frobnicate"); ok {
		t.Error("unknown mnemonic resolved")
	}
	if _, ok := LookupWire(0, 0xFF); ok {
		t.Error("0xff is not an opcode")
	}
	if _, ok := LookupWire(0, 0x1FF); ok {
		t.Error("out of range single-byte code resolved")
	}
	if _, ok := LookupWire(wasm.PrefixMisc, 0xFFFF); ok {
		t.Error("unknown misc sub-opcode resolved")
	}
	bad := OpCode(NumOpCodes())
	if bad.Valid() || !strings.HasPrefix(bad.String(), "opcode(") {
		t.Errorf("invalid opcode: Valid() = %v, String() = %q", bad.Valid(), bad.String())
	}
}

func TestOperatorString(t *testing.T) {
	if got := Op(OpNop).String(); got != "nop" {
		t.Errorf("nop = %q", got)
	}
	if got := I32Const(-7).String(); got != "i32.const -7" {
		t.Errorf("i32.const = %q", got)
	}
	if got := Call(3).String(); got != "call 3" {
		t.Errorf("call = %q", got)
	}
}

func TestConstExprBody(t *testing.T) {
	tests := []struct {
		name string
		expr ConstExpr
		want int
	}{
		{"terminated", ConstExpr{I32Const(1), End()}, 1},
		{"bare", ConstExpr{I32Const(1)}, 1},
		{"extended", ConstExpr{I32Const(1), I32Const(2), Op(OpI32Add), End()}, 3},
		{"empty", nil, 0},
		{"only end", ConstExpr{End()}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := tt.expr.Body()
			if len(body) != tt.want {
				t.Fatalf("Body() = %v, want %d operators", body, tt.want)
			}
			for _, op := range body {
				if op.Code == OpEnd {
					t.Error("Body() kept the terminator")
				}
			}
		})
	}
}

func importedModule() *Module {
	return &Module{
		TypeGroups: []RecGroup{FuncGroup([]ValType{ValI32}, []ValType{ValI32})},
		Imports: []Import{
			{Module: "env", Name: "f", Desc: ImportDesc{Kind: ExternFunc, Func: 0}},
			{Module: "env", Name: "g", Desc: ImportDesc{Kind: ExternGlobal, Global: &GlobalType{Val: ValI32}}},
			{Module: "env", Name: "m", Desc: ImportDesc{Kind: ExternMemory, Memory: &MemoryType{Limits: Limits{Min: 1}}}},
		},
		Functions: []uint32{0, 0},
		Globals: []Global{
			{Type: GlobalType{Val: ValI64}, Init: ConstExpr{I64Const(0), End()}},
		},
		Code: []FunctionBody{
			{Operators: []Operator{LocalGet(0), End()}},
			{Operators: []Operator{LocalGet(0), Call(0), End()}},
		},
	}
}

func TestIndexSpaces(t *testing.T) {
	m := importedModule()
	s := NewIndexSpaces(m)

	want := map[Space]uint32{
		SpaceType:   1,
		SpaceFunc:   3,
		SpaceTable:  0,
		SpaceMemory: 1,
		SpaceGlobal: 2,
		SpaceTag:    0,
	}
	for space, n := range want {
		if got := s.Len(space); got != n {
			t.Errorf("Len(%s) = %d, want %d", space, got, n)
		}
	}

	if idx := s.Alloc(SpaceGlobal); idx != 2 {
		t.Errorf("first global allocation = %d, want 2", idx)
	}
	if idx := s.Alloc(SpaceGlobal); idx != 3 {
		t.Errorf("second global allocation = %d, want 3", idx)
	}
	if got := s.Allocated(SpaceGlobal); got != 2 {
		t.Errorf("Allocated(global) = %d, want 2", got)
	}
	if got := s.Allocated(SpaceFunc); got != 0 {
		t.Errorf("Allocated(func) = %d, want 0", got)
	}
	if Space(99).String() != "unknown" {
		t.Error("unexpected name for unknown space")
	}
}

func TestFuncTypeLookup(t *testing.T) {
	m := importedModule()
	for idx := uint32(0); idx < 3; idx++ {
		ft := m.FuncType(idx)
		if ft == nil || len(ft.Params) != 1 || ft.Results[0] != ValI32 {
			t.Errorf("FuncType(%d) = %+v", idx, ft)
		}
	}
	if m.FuncType(3) != nil {
		t.Error("FuncType past the end should be nil")
	}
	if m.NumImportedFuncs() != 1 || m.NumImportedGlobals() != 1 || m.NumImportedMemories() != 1 {
		t.Error("unexpected import counts")
	}
}

func TestAddFuncType(t *testing.T) {
	m := &Module{TypeGroups: []RecGroup{
		{Explicit: true, Types: []SubType{
			{Final: true, Composite: FuncComposite(nil, nil)},
			{Final: true, Composite: CompositeType{Kind: CompStruct, Struct: &StructType{}}},
		}},
		FuncGroup([]ValType{ValI32}, nil),
	}}

	// a function type inside an explicit group is not reused
	if idx := m.AddFuncType(nil, nil); idx != 3 {
		t.Errorf("AddFuncType([] -> []) = %d, want 3", idx)
	}
	if idx := m.AddFuncType([]ValType{ValI32}, nil); idx != 2 {
		t.Errorf("AddFuncType([i32] -> []) = %d, want 2", idx)
	}
	if idx := m.AddFuncType(nil, nil); idx != 3 {
		t.Errorf("second AddFuncType([] -> []) = %d, want 3", idx)
	}
	if m.NumTypes() != 4 {
		t.Errorf("NumTypes() = %d, want 4", m.NumTypes())
	}
	if got := m.GroupBase(); len(got) != 3 || got[0] != 0 || got[1] != 2 || got[2] != 3 {
		t.Errorf("GroupBase() = %v", got)
	}
	if m.Type(1).Composite.Kind != CompStruct || m.Type(4) != nil {
		t.Error("Type() does not follow the flat numbering")
	}
}

func TestValidate(t *testing.T) {
	if err := importedModule().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	tests := []struct {
		name   string
		mutate func(*Module)
		want   string
	}{
		{"function type out of range", func(m *Module) { m.Functions[0] = 5 }, "invalid type index"},
		{"empty rec group", func(m *Module) {
			m.TypeGroups = append(m.TypeGroups, RecGroup{Explicit: true})
		}, "empty"},
		{"implicit group with two types", func(m *Module) {
			m.TypeGroups[0].Types = append(m.TypeGroups[0].Types, m.TypeGroups[0].Types[0])
		}, "implicit rec group"},
		{"relative supertype outside group", func(m *Module) {
			p := RecIndex(1)
			m.TypeGroups[0].Types[0].Supertype = &p
		}, "supertype"},
		{"func composite without signature", func(m *Module) {
			m.TypeGroups = append(m.TypeGroups, RecGroup{Types: []SubType{{Composite: CompositeType{Kind: CompFunc}}}})
		}, "without signature"},
		{"start out of range", func(m *Module) { m.Start = ptr(uint32(9)) }, "start function index"},
		{"start with params", func(m *Module) { m.Start = ptr(uint32(1)) }, "signature"},
		{"duplicate export", func(m *Module) {
			m.Exports = []Export{{Name: "a", Kind: ExternFunc}, {Name: "a", Kind: ExternGlobal}}
		}, "duplicate export"},
		{"export global out of range", func(m *Module) {
			m.Exports = []Export{{Name: "g", Kind: ExternGlobal, Index: 2}}
		}, "invalid global index"},
		{"data count mismatch", func(m *Module) { m.DataCount = ptr(uint32(1)) }, "data count"},
		{"missing body", func(m *Module) { m.Code = m.Code[:1] }, "code section"},
		{"body without end", func(m *Module) {
			m.Code[0].Operators = []Operator{LocalGet(0)}
		}, "does not end"},
		{"call out of range", func(m *Module) {
			m.Code[1].Operators = []Operator{Call(3), End()}
		}, "func index 3"},
		{"local out of range", func(m *Module) {
			m.Code[0].Operators = []Operator{LocalGet(1), End()}
		}, "local 1"},
		{"declared local in range", nil, ""},
		{"global.get out of range", func(m *Module) {
			m.Code[0].Operators = []Operator{GlobalGet(2), Op(OpDrop), LocalGet(0), End()}
		}, "global index 2"},
		{"shared memory without max", func(m *Module) {
			m.Memories = []MemoryType{{Limits: Limits{Min: 1, Shared: true}}}
		}, "shared memory"},
		{"memory too large", func(m *Module) {
			m.Memories = []MemoryType{{Limits: Limits{Min: MemoryMaxPages32 + 1}}}
		}, "exceeds maximum"},
		{"memory max below min", func(m *Module) {
			m.Memories = []MemoryType{{Limits: Limits{Min: 2, Max: ptr(uint64(1))}}}
		}, "below min"},
		{"64-bit memory above 4GiB", func(m *Module) {
			m.Memories = []MemoryType{{Limits: Limits{Min: MemoryMaxPages32 + 1, Is64: true}}}
		}, ""},
		{"import missing global type", func(m *Module) { m.Imports[1].Desc.Global = nil }, "missing its global type"},
		{"active element table out of range", func(m *Module) {
			m.Elements = []Element{{Mode: SegmentActive, Table: 0, Offset: ConstExpr{I32Const(0), End()}, Type: FuncRef}}
		}, "table"},
		{"active data memory out of range", func(m *Module) {
			m.Data = []DataSegment{{Mode: SegmentActive, Memory: 1, Offset: ConstExpr{I32Const(0), End()}}}
		}, "memory"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := importedModule()
			if tt.mutate != nil {
				tt.mutate(m)
			} else {
				m.Code[0].Locals = []Local{{Type: ValI64, Count: 1}}
				m.Code[0].Operators = []Operator{LocalGet(1), Op(OpDrop), LocalGet(0), End()}
			}
			err := m.Validate()
			if tt.want == "" {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestValTypeStrings(t *testing.T) {
	tests := []struct {
		v    ValType
		want string
	}{
		{ValI32, "i32"},
		{ValV128, "v128"},
		{ValFuncRef, "(ref null func)"},
		{RefVal(RefType{Heap: Concrete(4)}), "(ref 4)"},
		{RefVal(RefType{Nullable: true, Heap: HeapType{Index: RecIndex(1)}}), "(ref null rec.1)"},
		{RefVal(RefType{Heap: HeapType{Abstract: HeapAny, Shared: true}}), "(ref shared any)"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func ptr[T any](v T) *T { return &v }
