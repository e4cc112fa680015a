package encoder_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	werrors "github.com/wippyai/wasmarin/errors"
	"github.com/wippyai/wasmarin/encoder"
	"github.com/wippyai/wasmarin/features"
	"github.com/wippyai/wasmarin/internal/binary"
	"github.com/wippyai/wasmarin/ir"
	"github.com/wippyai/wasmarin/metering"
	"github.com/wippyai/wasmarin/parser"
	"github.com/wippyai/wasmarin/validate"
	"github.com/wippyai/wasmarin/wasm"
)

// addOneModule exports add_one(x) = x + global, with the mutable i32
// global initialized to 2 and exported as "global".
func addOneModule() *ir.Module {
	return &ir.Module{
		TypeGroups: []ir.RecGroup{ir.FuncGroup([]ir.ValType{ir.ValI32}, []ir.ValType{ir.ValI32})},
		Functions:  []uint32{0},
		Globals: []ir.Global{{
			Type: ir.GlobalType{Val: ir.ValI32, Mutable: true},
			Init: ir.ConstExpr{ir.I32Const(2), ir.End()},
		}},
		Exports: []ir.Export{
			{Name: "add_one", Kind: ir.ExternFunc, Index: 0},
			{Name: "global", Kind: ir.ExternGlobal, Index: 0},
		},
		Code: []ir.FunctionBody{{Operators: []ir.Operator{
			ir.LocalGet(0),
			ir.GlobalGet(0),
			ir.Op(ir.OpI32Add),
			ir.End(),
		}}},
	}
}

// copyModule exports "copy", which moves n bytes from offset 0 to
// offset 2 of a memory preloaded with "Hello world!_______-".
func copyModule(n int32) *ir.Module {
	return &ir.Module{
		TypeGroups: []ir.RecGroup{ir.FuncGroup(nil, nil)},
		Functions:  []uint32{0},
		Memories:   []ir.MemoryType{{Limits: ir.Limits{Min: 1}}},
		Exports: []ir.Export{
			{Name: "copy", Kind: ir.ExternFunc, Index: 0},
			{Name: "memory", Kind: ir.ExternMemory, Index: 0},
		},
		Code: []ir.FunctionBody{{Operators: []ir.Operator{
			ir.I32Const(2),
			ir.I32Const(0),
			ir.I32Const(n),
			ir.OpImm(ir.OpMemoryCopy, ir.IndexPair{0, 0}),
			ir.End(),
		}}},
		Data: []ir.DataSegment{{
			Mode:   ir.SegmentActive,
			Offset: ir.ConstExpr{ir.I32Const(0), ir.End()},
			Init:   []byte("Hello world!_______-"),
		}},
	}
}

func instantiate(t *testing.T, bin []byte) (context.Context, api.Module) {
	t.Helper()
	ctx := context.Background()
	rt := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
	t.Cleanup(func() { rt.Close(ctx) })
	mod, err := rt.Instantiate(ctx, bin)
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}
	return ctx, mod
}

func mutableGlobal(t *testing.T, mod api.Module, name string) api.MutableGlobal {
	t.Helper()
	g, ok := mod.ExportedGlobal(name).(api.MutableGlobal)
	if !ok {
		t.Fatalf("global %q is not exported as mutable", name)
	}
	return g
}

func callI32(t *testing.T, ctx context.Context, mod api.Module, name string, arg int32) (int32, error) {
	t.Helper()
	res, err := mod.ExportedFunction(name).Call(ctx, api.EncodeI32(arg))
	if err != nil {
		return 0, err
	}
	return api.DecodeI32(res[0]), nil
}

func metered() *encoder.Encoder {
	return encoder.New(encoder.WithMetering(metering.Config{}))
}

func TestAddOneUnmetered(t *testing.T) {
	ctx, mod := instantiate(t, encoder.New().Encode(addOneModule()))

	got, err := callI32(t, ctx, mod, "add_one", 2)
	if err != nil {
		t.Fatalf("add_one(2): %v", err)
	}
	if got != 4 {
		t.Errorf("add_one(2) = %d, want 4", got)
	}

	mutableGlobal(t, mod, "global").Set(api.EncodeI32(4))
	got, err = callI32(t, ctx, mod, "add_one", 1)
	if err != nil {
		t.Fatalf("add_one(1): %v", err)
	}
	if got != 5 {
		t.Errorf("add_one(1) = %d, want 5", got)
	}

	if mod.ExportedGlobal(metering.DefaultExportName) != nil {
		t.Error("unmetered module exports the remaining points global")
	}
}

func TestAddOneBudget(t *testing.T) {
	// add_one costs 3 points under unit cost: local.get, global.get and
	// i32.add, charged together at the final end.
	tests := []struct {
		name      string
		budget    int64
		trap      bool
		remaining int64
	}{
		{"enough", 4, false, 1},
		{"exact", 3, false, 0},
		{"exhausted", 2, true, -1},
		{"empty", 0, true, -3},
	}
	bin := metered().Encode(addOneModule())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, mod := instantiate(t, bin)
			points := mutableGlobal(t, mod, metering.DefaultExportName)
			points.Set(uint64(tt.budget))

			got, err := callI32(t, ctx, mod, "add_one", 2)
			if tt.trap {
				if err == nil {
					t.Fatal("expected trap")
				}
			} else {
				if err != nil {
					t.Fatalf("add_one(2): %v", err)
				}
				if got != 4 {
					t.Errorf("add_one(2) = %d, want 4", got)
				}
			}
			if rem := int64(points.Get()); rem != tt.remaining {
				t.Errorf("remaining = %d, want %d", rem, tt.remaining)
			}
		})
	}
}

func TestMeteredMemoryCopy(t *testing.T) {
	ctx, mod := instantiate(t, metered().Encode(copyModule(12)))
	points := mutableGlobal(t, mod, metering.DefaultExportName)
	points.Set(500)

	if _, err := mod.ExportedFunction("copy").Call(ctx); err != nil {
		t.Fatalf("copy: %v", err)
	}
	mem, ok := mod.Memory().Read(0, 20)
	if !ok {
		t.Fatal("memory read out of range")
	}
	if string(mem) != "HeHello world!_____-" {
		t.Errorf("memory = %q", mem)
	}
	if rem := int64(points.Get()); rem != 496 {
		t.Errorf("remaining = %d, want 496", rem)
	}
}

func TestMeteredBulkCost(t *testing.T) {
	cost := metering.WithBulk(metering.UnitCost, metering.BulkCost{Unit: 32, PerUnit: 13, Overhead: 3})
	enc := encoder.New(encoder.WithMetering(metering.Config{Cost: cost}))
	ctx, mod := instantiate(t, enc.Encode(copyModule(158)))
	points := mutableGlobal(t, mod, metering.DefaultExportName)
	points.Set(500)

	if _, err := mod.ExportedFunction("copy").Call(ctx); err != nil {
		t.Fatalf("copy: %v", err)
	}
	// three constants at 1 point each, then 68 for 158 bytes
	if rem := int64(points.Get()); rem != 500-3-68 {
		t.Errorf("remaining = %d, want %d", rem, 500-3-68)
	}
}

func TestMeteringLoopTrapsWhenBudgetRunsOut(t *testing.T) {
	// loop forever: (loop (br 0))
	m := &ir.Module{
		TypeGroups: []ir.RecGroup{ir.FuncGroup(nil, nil)},
		Functions:  []uint32{0},
		Exports:    []ir.Export{{Name: "spin", Kind: ir.ExternFunc}},
		Code: []ir.FunctionBody{{Operators: []ir.Operator{
			ir.OpImm(ir.OpLoop, ir.BlockType{Kind: ir.BlockEmpty}),
			ir.OpImm(ir.OpBr, ir.Index(0)),
			ir.End(),
			ir.End(),
		}}},
	}
	ctx, mod := instantiate(t, metered().Encode(m))
	points := mutableGlobal(t, mod, metering.DefaultExportName)
	points.Set(1000)

	if _, err := mod.ExportedFunction("spin").Call(ctx); err == nil {
		t.Fatal("expected trap")
	}
	if rem := int64(points.Get()); rem >= 0 {
		t.Errorf("remaining = %d, want a deficit", rem)
	}
}

func TestInjectionPlacementAfterImports(t *testing.T) {
	m := addOneModule()
	m.Imports = []ir.Import{{
		Module: "env", Name: "base",
		Desc: ir.ImportDesc{Kind: ir.ExternGlobal, Global: &ir.GlobalType{Val: ir.ValI32}},
	}}
	m.Globals = append(m.Globals, ir.Global{
		Type: ir.GlobalType{Val: ir.ValI64},
		Init: ir.ConstExpr{ir.I64Const(7), ir.End()},
	})
	// the body now reads the defined global at index 1
	m.Code[0].Operators[1] = ir.GlobalGet(1)
	m.Exports[1].Index = 1

	bin, info := metered().EncodeInfo(m)
	if info.Metering == nil || info.Metering.GlobalIndex != 3 {
		t.Fatalf("Info.Metering = %+v, want global 3", info.Metering)
	}

	got, err := parser.New(features.All(), parser.WithValidator(validate.Nop)).Parse(bin)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got.Globals) != 3 {
		t.Fatalf("globals = %d, want 3", len(got.Globals))
	}
	injected := got.Globals[2]
	if !injected.Type.Mutable || injected.Type.Val != ir.ValI64 {
		t.Errorf("injected global type = %+v", injected.Type)
	}
	exp, ok := got.ExportIndex(metering.DefaultExportName)
	if !ok {
		t.Fatal("remaining points export missing")
	}
	if exp.Kind != ir.ExternGlobal || exp.Index != 3 {
		t.Errorf("export = %+v, want global 3", exp)
	}
	if len(m.Globals) != 2 || len(m.Exports) != 2 {
		t.Error("Encode modified the model")
	}
}

func TestRoundTripRevalidates(t *testing.T) {
	elemModule := &ir.Module{
		TypeGroups: []ir.RecGroup{ir.FuncGroup(nil, nil)},
		Functions:  []uint32{0, 0},
		Tables:     []ir.Table{{Type: ir.TableType{Elem: ir.FuncRef, Limits: ir.Limits{Min: 2}}}},
		Start:      ptr(uint32(1)),
		Elements: []ir.Element{
			{Mode: ir.SegmentActive, Offset: ir.ConstExpr{ir.I32Const(0), ir.End()}, Funcs: []uint32{0, 1}, Type: ir.FuncRef},
			{Mode: ir.SegmentPassive, Items: ir.ItemsExprs, Type: ir.FuncRef, Exprs: []ir.ConstExpr{
				{ir.OpImm(ir.OpRefFunc, ir.Index(0)), ir.End()},
				{ir.OpImm(ir.OpRefNull, ir.Abstract(ir.HeapFunc)), ir.End()},
			}},
			{Mode: ir.SegmentDeclared, Funcs: []uint32{1}, Type: ir.FuncRef},
		},
		Code: []ir.FunctionBody{
			{Operators: []ir.Operator{
				ir.I32Const(0),
				ir.OpImm(ir.OpCallIndirect, ir.IndexPair{0, 0}),
				ir.End(),
			}},
			{Locals: []ir.Local{{Count: 2, Type: ir.ValI64}}, Operators: []ir.Operator{
				ir.OpImm(ir.OpBlock, ir.BlockType{Kind: ir.BlockEmpty}),
				ir.LocalGet(0),
				ir.OpImm(ir.OpLocalSet, ir.Index(1)),
				ir.End(),
				ir.End(),
			}},
		},
	}

	tests := []struct {
		name string
		m    *ir.Module
	}{
		{"add_one", addOneModule()},
		{"memory copy", copyModule(12)},
		{"tables and elements", elemModule},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := parser.New(features.All())
			first := encoder.New().Encode(tt.m)
			m, err := p.Parse(first)
			if err != nil {
				t.Fatalf("Parse: %v", err)
			}
			for _, enc := range []*encoder.Encoder{encoder.New(), metered()} {
				out := enc.Encode(m)
				if err := validate.NewWazero().Validate(out, features.All().Flags()); err != nil {
					t.Errorf("re-encoded module (metered=%v) rejected: %v", enc.Metered(), err)
				}
			}
		})
	}
}

func TestRecGroupFidelity(t *testing.T) {
	self := ir.RecIndex(0)
	node := ir.SubType{Composite: ir.CompositeType{Kind: ir.CompStruct, Struct: &ir.StructType{Fields: []ir.FieldType{
		{Storage: ir.StorageType{Val: ir.RefVal(ir.RefType{Nullable: true, Heap: ir.HeapType{Index: ir.RecIndex(1)}})}},
	}}}}
	leaf := ir.SubType{Final: true, Supertype: &self, Composite: ir.CompositeType{Kind: ir.CompStruct, Struct: &ir.StructType{Fields: []ir.FieldType{
		{Storage: ir.StorageType{Val: ir.RefVal(ir.RefType{Nullable: true, Heap: ir.HeapType{Index: ir.RecIndex(1)}})}},
		{Storage: ir.StorageType{Packed: ir.PackedI8}, Mutable: true},
	}}}}

	m := &ir.Module{TypeGroups: []ir.RecGroup{
		ir.FuncGroup(nil, nil),
		{Explicit: true, Types: []ir.SubType{node, leaf}},
		ir.FuncGroup([]ir.ValType{ir.ValI32}, nil),
	}}

	bin := encoder.New().Encode(m)
	got, err := parser.New(features.All(), parser.WithValidator(validate.Nop)).Parse(bin)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got.TypeGroups) != 3 {
		t.Fatalf("type groups = %d, want 3", len(got.TypeGroups))
	}
	for i, want := range []bool{false, true, false} {
		if got.TypeGroups[i].Explicit != want {
			t.Errorf("group %d explicit = %v, want %v", i, got.TypeGroups[i].Explicit, want)
		}
	}
	if got.NumTypes() != 4 {
		t.Errorf("NumTypes = %d, want 4", got.NumTypes())
	}

	// rec-relative indices resolve against the group's first index
	leafType := got.Type(2)
	if leafType.Supertype == nil || *leafType.Supertype != ir.ModuleIndex(1) {
		t.Errorf("leaf supertype = %v, want 1", leafType.Supertype)
	}
	field := leafType.Composite.Struct.Fields[0].Storage.Val.Ref.Heap
	if field.Index != ir.ModuleIndex(2) {
		t.Errorf("leaf field heap = %v, want 2", field)
	}
	if got.Type(3).Composite.Func.Params[0] != ir.ValI32 {
		t.Error("flat numbering shifted after the rec group")
	}
}

func TestConstExprStripsOneTrailingEnd(t *testing.T) {
	with := &ir.Module{Globals: []ir.Global{{
		Type: ir.GlobalType{Val: ir.ValI32},
		Init: ir.ConstExpr{ir.I32Const(1), ir.I32Const(2), ir.Op(ir.OpI32Add), ir.End()},
	}}}
	without := &ir.Module{Globals: []ir.Global{{
		Type: ir.GlobalType{Val: ir.ValI32},
		Init: ir.ConstExpr{ir.I32Const(1), ir.I32Const(2), ir.Op(ir.OpI32Add)},
	}}}

	a := encoder.New().Encode(with)
	b := encoder.New().Encode(without)
	if string(a) != string(b) {
		t.Errorf("encodings differ:\n% x\n% x", a, b)
	}

	got, err := parser.New(features.All(), parser.WithValidator(validate.Nop)).Parse(a)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	init := got.Globals[0].Init
	if len(init) != 4 {
		t.Fatalf("init = %v, want 4 operators", init)
	}
	for i, want := range with.Globals[0].Init {
		if init[i] != want {
			t.Errorf("operator %d = %v, want %v", i, init[i], want)
		}
	}
}

func sectionIDs(t *testing.T, bin []byte) []byte {
	t.Helper()
	r := binary.NewReader(bin[8:])
	var ids []byte
	for !r.EOF() {
		id, _ := r.ReadByte()
		size, err := r.ReadU32()
		if err != nil {
			t.Fatal(err)
		}
		if _, err := r.ReadBytes(int(size)); err != nil {
			t.Fatal(err)
		}
		ids = append(ids, id)
	}
	return ids
}

func TestSectionOrderAndOmission(t *testing.T) {
	m := copyModule(1)
	m.Tags = []ir.TagType{{Type: 0}}
	m.DataCount = ptr(uint32(1))
	m.CustomSections = []ir.CustomSection{{Name: "name", Data: []byte{0x01}}, {Name: "extra", Data: nil}}

	ids := sectionIDs(t, encoder.New().Encode(m))
	want := []byte{
		wasm.SectionType, wasm.SectionFunction, wasm.SectionMemory, wasm.SectionTag,
		wasm.SectionExport, wasm.SectionDataCount, wasm.SectionCode, wasm.SectionData,
		wasm.SectionCustom, wasm.SectionCustom,
	}
	if string(ids) != string(want) {
		t.Errorf("sections = %v, want %v", ids, want)
	}

	empty := encoder.New().Encode(&ir.Module{})
	if len(empty) != 8 {
		t.Errorf("empty module = % x, want header only", empty)
	}
}

func TestDataCountIsRejectedOnParse(t *testing.T) {
	m := copyModule(1)
	m.Data[0].Mode = ir.SegmentPassive
	m.DataCount = ptr(uint32(1))
	bin := encoder.New().Encode(m)

	_, err := parser.New(features.All(), parser.WithValidator(validate.Nop)).Parse(bin)
	if !errors.Is(err, werrors.ErrUnsupportedSection) {
		t.Fatalf("error = %v, want unsupported section", err)
	}
	var e *werrors.Error
	if !errors.As(err, &e) {
		t.Fatal("expected *errors.Error")
	}
	if e.Value != wasm.SectionDataCount {
		t.Errorf("section id = %v, want %d", e.Value, wasm.SectionDataCount)
	}
	if e.End-e.Offset != 3 || bin[e.Offset] != wasm.SectionDataCount {
		t.Errorf("range = %d..%d", e.Offset, e.End)
	}
}

func TestCustomSectionsAreVerbatim(t *testing.T) {
	m := addOneModule()
	payload := []byte{0xde, 0xad, 0xbe, 0xef}
	m.CustomSections = []ir.CustomSection{{Name: "producers", Data: payload}}

	got, err := parser.New(features.All()).Parse(encoder.New().Encode(m))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(got.CustomSections) != 1 {
		t.Fatalf("custom sections = %d", len(got.CustomSections))
	}
	cs := got.CustomSections[0]
	if cs.Name != "producers" || string(cs.Data) != string(payload) {
		t.Errorf("custom section = %q % x", cs.Name, cs.Data)
	}
}

func TestUnmappedOperatorPanics(t *testing.T) {
	tests := []struct {
		name string
		op   ir.Operator
	}{
		{"unknown opcode", ir.Operator{Code: ir.OpCode(ir.NumOpCodes() + 5)}},
		{"wrong immediate", ir.Operator{Code: ir.OpI32Const, Imm: ir.I64(1)}},
		{"missing immediate", ir.Operator{Code: ir.OpCall}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := addOneModule()
			m.Code[0].Operators = []ir.Operator{tt.op, ir.End()}

			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("expected panic")
				}
				err, ok := r.(error)
				if !ok || !errors.Is(err, werrors.ErrUnmapped) {
					t.Fatalf("panic value = %v, want unmapped error", r)
				}
				if !strings.Contains(err.Error(), "unmapped") {
					t.Errorf("message = %q", err.Error())
				}
			}()
			encoder.New().Encode(m)
		})
	}
}

func TestMeteringTwicePanics(t *testing.T) {
	once, err := parser.New(features.All()).Parse(metered().Encode(addOneModule()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic")
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value = %v", r)
		}
		var we *werrors.Error
		if !errors.As(err, &we) || we.Phase != werrors.PhaseInstrument || we.Kind != werrors.KindInvalidInput {
			t.Fatalf("panic value = %v, want instrument invalid_input", err)
		}
		if !strings.Contains(err.Error(), metering.DefaultExportName) {
			t.Errorf("message = %q", err.Error())
		}
	}()
	metered().Encode(once)
}

func TestMeteringUnderAnotherName(t *testing.T) {
	once, err := parser.New(features.All()).Parse(metered().Encode(addOneModule()))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	bin := encoder.New(encoder.WithMetering(metering.Config{ExportName: "gas"})).Encode(once)
	if _, err := parser.New(features.All()).Parse(bin); err != nil {
		t.Fatalf("second metering produced an invalid module: %v", err)
	}
}

func ptr[T any](v T) *T { return &v }
