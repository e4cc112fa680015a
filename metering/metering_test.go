package metering

import (
	"errors"
	"reflect"
	"testing"

	werrors "github.com/wippyai/wasmarin/errors"
	"github.com/wippyai/wasmarin/ir"
)

func newMeter(t *testing.T, cfg Config, m *ir.Module) *Meter {
	t.Helper()
	if m == nil {
		m = &ir.Module{}
	}
	return New(cfg, ir.NewIndexSpaces(m))
}

func charge(global uint32, points int64) []ir.Operator {
	return []ir.Operator{
		ir.GlobalGet(global),
		ir.I64Const(points),
		ir.Op(ir.OpI64Sub),
		ir.GlobalSet(global),
		ir.GlobalGet(global),
		ir.I64Const(0),
		ir.Op(ir.OpI64LtS),
		ir.OpImm(ir.OpIf, ir.BlockType{Kind: ir.BlockEmpty}),
		ir.Op(ir.OpUnreachable),
		ir.End(),
	}
}

func concat(parts ...[]ir.Operator) []ir.Operator {
	var out []ir.Operator
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func TestInstrumentStraightLine(t *testing.T) {
	m := newMeter(t, Config{}, nil)
	body := []ir.Operator{ir.LocalGet(0), ir.GlobalGet(0), ir.Op(ir.OpI32Add), ir.End()}

	got := m.Instrument(body)
	want := concat(body[:3], charge(0, 3), body[3:])
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Instrument:\n got %v\nwant %v", got, want)
	}
}

func TestInstrumentDoesNotModifyInput(t *testing.T) {
	m := newMeter(t, Config{}, nil)
	body := []ir.Operator{ir.I32Const(1), ir.Op(ir.OpDrop), ir.End()}
	orig := append([]ir.Operator(nil), body...)
	_ = m.Instrument(body)
	if !reflect.DeepEqual(body, orig) {
		t.Error("input body was modified")
	}
}

func TestInstrumentEmptyBody(t *testing.T) {
	m := newMeter(t, Config{}, nil)
	if got := m.Instrument(nil); len(got) != 0 {
		t.Errorf("empty body produced %d operators", len(got))
	}
}

func TestInstrumentBoundaries(t *testing.T) {
	m := newMeter(t, Config{}, nil)
	// loop: br_if back while the local is non-zero, then call and return
	body := []ir.Operator{
		ir.OpImm(ir.OpLoop, ir.BlockType{Kind: ir.BlockEmpty}),
		ir.LocalGet(0),
		ir.OpImm(ir.OpBrIf, ir.Index(0)),
		ir.End(),
		ir.Call(0),
		ir.Op(ir.OpReturn),
		ir.End(),
	}
	got := m.Instrument(body)
	want := concat(
		charge(0, 1), body[0:1], // loop
		body[1:2], charge(0, 2), body[2:3], // local.get + br_if
		charge(0, 0), body[3:4], // end of loop
		charge(0, 1), body[4:5], // call
		charge(0, 1), body[5:6], // return
		charge(0, 0), body[6:7], // end of function
	)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Instrument:\n got %v\nwant %v", got, want)
	}
}

func TestIsAccounting(t *testing.T) {
	accounting := map[string]bool{
		"loop": true, "end": true, "if": true, "else": true,
		"br": true, "br_if": true, "br_table": true,
		"br_on_cast": true, "br_on_cast_fail": true, "br_on_null": true, "br_on_non_null": true,
		"call": true, "call_indirect": true, "call_ref": true,
		"return_call": true, "return_call_indirect": true, "return_call_ref": true,
		"return": true,
		"throw": true, "throw_ref": true, "rethrow": true, "delegate": true,
		"catch": true, "catch_all": true,
	}
	for name := range accounting {
		if _, ok := ir.Lookup(name); !ok {
			t.Fatalf("unknown mnemonic %q", name)
		}
	}
	for c := ir.OpCode(0); int(c) < ir.NumOpCodes(); c++ {
		if got, want := IsAccounting(c), accounting[c.String()]; got != want {
			t.Errorf("IsAccounting(%s) = %v, want %v", c, got, want)
		}
	}
}

func TestInjectionPlacement(t *testing.T) {
	m := &ir.Module{
		Imports: []ir.Import{{
			Module: "env", Name: "g",
			Desc: ir.ImportDesc{Kind: ir.ExternGlobal, Global: &ir.GlobalType{Val: ir.ValI32}},
		}},
		Globals: []ir.Global{
			{Type: ir.GlobalType{Val: ir.ValI32}, Init: ir.ConstExpr{ir.I32Const(1), ir.End()}},
			{Type: ir.GlobalType{Val: ir.ValI64}, Init: ir.ConstExpr{ir.I64Const(2), ir.End()}},
		},
	}
	spaces := ir.NewIndexSpaces(m)
	meter := New(Config{}, spaces)

	inj := meter.Injected()
	if inj.GlobalIndex != 3 {
		t.Errorf("GlobalIndex = %d, want 3", inj.GlobalIndex)
	}
	if inj.ExportName != DefaultExportName {
		t.Errorf("ExportName = %q", inj.ExportName)
	}
	exp := meter.Export()
	if exp.Kind != ir.ExternGlobal || exp.Index != 3 || exp.Name != DefaultExportName {
		t.Errorf("Export = %+v", exp)
	}
	g := meter.Global()
	if !g.Type.Mutable || g.Type.Val != ir.ValI64 {
		t.Errorf("Global type = %+v", g.Type)
	}
	if len(g.Init.Body()) != 1 || g.Init.Body()[0] != ir.I64Const(0) {
		t.Errorf("Global init = %v", g.Init)
	}
	if spaces.Allocated(ir.SpaceGlobal) != 1 {
		t.Errorf("Allocated = %d, want 1", spaces.Allocated(ir.SpaceGlobal))
	}

	custom := New(Config{ExportName: "gas"}, ir.NewIndexSpaces(m))
	if custom.Export().Name != "gas" {
		t.Errorf("custom export name = %q", custom.Export().Name)
	}
}

func TestBulkCostPoints(t *testing.T) {
	b := BulkCost{Unit: 32, PerUnit: 13, Overhead: 3}
	tests := []struct {
		n    int64
		want int64
	}{
		{158, 68},
		{0, 3},
		{1, 16},
		{32, 16},
		{33, 29},
	}
	for _, tt := range tests {
		if got := b.Points(tt.n); got != tt.want {
			t.Errorf("Points(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestWithBulkUsesStaticLength(t *testing.T) {
	cost := WithBulk(UnitCost, BulkCost{Unit: 32, PerUnit: 13, Overhead: 3})
	m := newMeter(t, Config{Cost: cost}, nil)

	body := []ir.Operator{
		ir.I32Const(0),
		ir.I32Const(0),
		ir.I32Const(158),
		ir.OpImm(ir.OpMemoryCopy, ir.IndexPair{0, 0}),
		ir.End(),
	}
	got := m.Instrument(body)
	want := concat(body[:4], charge(0, 3+68), body[4:])
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Instrument:\n got %v\nwant %v", got, want)
	}

	unknown := cost(Charge{Op: ir.OpImm(ir.OpMemoryFill, ir.Index(0)), Size: -1})
	if unknown != 4 {
		t.Errorf("unknown length cost = %d, want 4", unknown)
	}
}

func TestCostTable(t *testing.T) {
	table, err := ParseCostTable([]byte(`
default: 2
ops:
  call: 10
bulk:
  - ops: [memory.copy]
    unit: 32
    per_unit: 13
    overhead: 3
`))
	if err != nil {
		t.Fatalf("ParseCostTable: %v", err)
	}
	fn, err := table.Func()
	if err != nil {
		t.Fatalf("Func: %v", err)
	}

	tests := []struct {
		name string
		c    Charge
		want int64
	}{
		{"default", Charge{Op: ir.Op(ir.OpNop), Size: -1}, 2},
		{"end is free", Charge{Op: ir.End(), Size: -1}, 0},
		{"override", Charge{Op: ir.Call(0), Size: -1}, 10},
		{"bulk", Charge{Op: ir.OpImm(ir.OpMemoryCopy, ir.IndexPair{}), Size: 158}, 68},
		{"bulk unknown size", Charge{Op: ir.OpImm(ir.OpMemoryCopy, ir.IndexPair{}), Size: -1}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fn(tt.c); got != tt.want {
				t.Errorf("cost = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCostTableErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown op", "ops:\n  frobnicate: 1\n"},
		{"negative", "ops:\n  nop: -1\n"},
		{"zero unit", "bulk:\n  - ops: [memory.fill]\n    unit: 0\n"},
		{"unknown bulk op", "bulk:\n  - ops: [nope]\n    unit: 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table, err := ParseCostTable([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("ParseCostTable: %v", err)
			}
			_, err = table.Func()
			var e *werrors.Error
			if !errors.As(err, &e) || e.Phase != werrors.PhaseConfig {
				t.Errorf("Func() error = %v, want config error", err)
			}
		})
	}

	if _, err := ParseCostTable([]byte("bogus: 1\n")); err == nil {
		t.Error("expected unknown key to be rejected")
	}
}

func TestEmptyCostTableIsUnitCost(t *testing.T) {
	table, err := ParseCostTable(nil)
	if err != nil {
		t.Fatalf("ParseCostTable: %v", err)
	}
	fn, err := table.Func()
	if err != nil {
		t.Fatal(err)
	}
	for _, op := range []ir.Operator{ir.Op(ir.OpNop), ir.End(), ir.Call(1)} {
		c := Charge{Op: op, Size: -1}
		if fn(c) != UnitCost(c) {
			t.Errorf("%s: got %d, want %d", op, fn(c), UnitCost(c))
		}
	}
}

func TestConfigCheck(t *testing.T) {
	m := &ir.Module{Exports: []ir.Export{{Name: DefaultExportName, Kind: ir.ExternGlobal}}}

	err := Config{}.Check(m)
	var we *werrors.Error
	if !errors.As(err, &we) || we.Phase != werrors.PhaseInstrument || we.Kind != werrors.KindInvalidInput {
		t.Fatalf("Check = %v, want instrument invalid_input", err)
	}
	if we.Value != DefaultExportName {
		t.Errorf("Value = %v", we.Value)
	}
	if err := (Config{ExportName: "gas"}).Check(m); err != nil {
		t.Errorf("Check with a free name = %v", err)
	}
	if err := (Config{}).Check(&ir.Module{}); err != nil {
		t.Errorf("Check on empty module = %v", err)
	}
}
