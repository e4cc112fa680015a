package wasmarin

import (
	"context"
	"errors"
	"testing"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"

	werrors "github.com/wippyai/wasmarin/errors"
	"github.com/wippyai/wasmarin/features"
	"github.com/wippyai/wasmarin/ir"
	"github.com/wippyai/wasmarin/metering"
)

// (func (export "spin") (param i32) (result i32)
//   (loop (br_if 0 (local.tee 0 (i32.sub (local.get 0) (i32.const 1)))))
//   local.get 0)
func spinModule() *ir.Module {
	return &ir.Module{
		TypeGroups: []ir.RecGroup{ir.FuncGroup([]ir.ValType{ir.ValI32}, []ir.ValType{ir.ValI32})},
		Functions:  []uint32{0},
		Exports:    []ir.Export{{Name: "spin", Kind: ir.ExternFunc}},
		Code: []ir.FunctionBody{{Operators: []ir.Operator{
			ir.OpImm(ir.OpLoop, ir.BlockType{Kind: ir.BlockEmpty}),
			ir.LocalGet(0),
			ir.I32Const(1),
			ir.Op(ir.OpI32Sub),
			ir.OpImm(ir.OpLocalTee, ir.Index(0)),
			ir.OpImm(ir.OpBrIf, ir.Index(0)),
			ir.End(),
			ir.LocalGet(0),
			ir.End(),
		}}},
	}
}

func TestParseEncodeRoundTrip(t *testing.T) {
	bin := Encode(spinModule())
	m, err := Parse(bin, features.None())
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(m.Code) != 1 || len(m.Code[0].Operators) != 9 {
		t.Fatalf("decoded body = %v", m.Code)
	}
	if again := Encode(m); string(again) != string(bin) {
		t.Errorf("re-encoding changed the binary:\n% x\n% x", bin, again)
	}
}

func TestParseRejectsGarbage(t *testing.T) {
	_, err := Parse([]byte("not wasm"), features.All())
	if !errors.Is(err, werrors.ErrValidation) {
		t.Errorf("error = %v, want validation error", err)
	}
}

func TestInstrumentBoundsLoops(t *testing.T) {
	out, injected, err := Instrument(Encode(spinModule()), features.None(), metering.Config{ExportName: "gas"})
	if err != nil {
		t.Fatalf("Instrument: %v", err)
	}
	if injected.ExportName != "gas" || injected.GlobalIndex != 0 {
		t.Errorf("Injected = %+v", injected)
	}

	ctx := context.Background()
	rt := wazero.NewRuntimeWithConfig(ctx, wazero.NewRuntimeConfigInterpreter())
	defer rt.Close(ctx)
	mod, err := rt.Instantiate(ctx, out)
	if err != nil {
		t.Fatalf("instantiate: %v", err)
	}
	gas := mod.ExportedGlobal("gas").(api.MutableGlobal)

	// each iteration charges 5 points at br_if
	gas.Set(1000)
	res, err := mod.ExportedFunction("spin").Call(ctx, api.EncodeI32(10))
	if err != nil {
		t.Fatalf("spin(10): %v", err)
	}
	if got := api.DecodeI32(res[0]); got != 0 {
		t.Errorf("spin(10) = %d", got)
	}
	if left := int64(gas.Get()); left != 1000-1-50-1 {
		t.Errorf("remaining = %d, want %d", left, 1000-1-50-1)
	}

	gas.Set(100)
	if _, err := mod.ExportedFunction("spin").Call(ctx, api.EncodeI32(1_000_000)); err == nil {
		t.Fatal("expected the budget to trap")
	}
	if left := int64(gas.Get()); left >= 0 {
		t.Errorf("remaining after trap = %d, want negative", left)
	}
}

func TestInstrumentPropagatesParseErrors(t *testing.T) {
	_, _, err := Instrument(nil, features.All(), metering.Config{})
	if err == nil {
		t.Fatal("expected error for empty input")
	}
}

func TestInstrumentRejectsMeteredModule(t *testing.T) {
	once, _, err := Instrument(Encode(spinModule()), features.All(), metering.Config{})
	if err != nil {
		t.Fatalf("Instrument: %v", err)
	}
	_, _, err = Instrument(once, features.All(), metering.Config{})
	var we *werrors.Error
	if !errors.As(err, &we) || we.Phase != werrors.PhaseInstrument {
		t.Fatalf("error = %v, want instrument error", err)
	}

	if _, _, err := Instrument(once, features.All(), metering.Config{ExportName: "gas2"}); err != nil {
		t.Errorf("Instrument under a new name: %v", err)
	}
}
