package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tetratelabs/wazero/api"

	"github.com/wippyai/wasmarin/encoder"
	werrors "github.com/wippyai/wasmarin/errors"
	"github.com/wippyai/wasmarin/features"
	"github.com/wippyai/wasmarin/ir"
	"github.com/wippyai/wasmarin/parser"
)

func addOneModule() *ir.Module {
	return &ir.Module{
		TypeGroups: []ir.RecGroup{ir.FuncGroup([]ir.ValType{ir.ValI32}, []ir.ValType{ir.ValI32})},
		Functions:  []uint32{0},
		Globals: []ir.Global{{
			Type: ir.GlobalType{Val: ir.ValI32, Mutable: true},
			Init: ir.ConstExpr{ir.I32Const(2), ir.End()},
		}},
		Exports: []ir.Export{{Name: "add_one", Kind: ir.ExternFunc, Index: 0}},
		Code: []ir.FunctionBody{{Operators: []ir.Operator{
			ir.LocalGet(0),
			ir.GlobalGet(0),
			ir.Op(ir.OpI32Add),
			ir.End(),
		}}},
	}
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func writeModule(t *testing.T) string {
	t.Helper()
	return writeFile(t, "add_one.wasm", encoder.New().Encode(addOneModule()))
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestInstrumentCommand(t *testing.T) {
	in := writeModule(t)
	out := filepath.Join(t.TempDir(), "metered.wasm")

	stdout, err := execute(t, "instrument", in, "-o", out, "--export", "gas")
	if err != nil {
		t.Fatalf("instrument: %v", err)
	}
	if !strings.Contains(stdout, `global 1 exported as "gas"`) {
		t.Errorf("output = %q", stdout)
	}

	bin, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	m, err := parser.New(features.All()).Parse(bin)
	if err != nil {
		t.Fatalf("metered module does not parse: %v", err)
	}
	if exp, ok := m.ExportIndex("gas"); !ok || exp.Kind != ir.ExternGlobal || exp.Index != 1 {
		t.Errorf("export = %+v, %v", exp, ok)
	}
}

func TestInstrumentTwice(t *testing.T) {
	in := writeModule(t)
	once := filepath.Join(t.TempDir(), "once.wasm")
	if _, err := execute(t, "instrument", in, "-o", once); err != nil {
		t.Fatalf("instrument: %v", err)
	}
	_, err := execute(t, "instrument", once, "-o", filepath.Join(t.TempDir(), "twice.wasm"))
	if err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("error = %v, want existing export", err)
	}
}

func TestInstrumentDefaultOutput(t *testing.T) {
	in := writeModule(t)
	if _, err := execute(t, "instrument", in); err != nil {
		t.Fatalf("instrument: %v", err)
	}
	if _, err := os.Stat(strings.TrimSuffix(in, ".wasm") + ".metered.wasm"); err != nil {
		t.Errorf("default output missing: %v", err)
	}
}

func TestRunCommand(t *testing.T) {
	in := writeModule(t)

	tests := []struct {
		name    string
		args    []string
		want    []string
		wantErr string
	}{
		{"call", []string{"run", in, "add_one", "41"}, []string{"result: 43", "remaining points: 999997 of 1000000"}, ""},
		{"exact budget", []string{"run", in, "add_one", "1", "--budget", "3"}, []string{"result: 3", "remaining points: 0 of 3"}, ""},
		{"out of gas", []string{"run", in, "add_one", "1", "--budget", "2"}, []string{"remaining points: -1 of 2"}, "out of gas"},
		{"unmetered", []string{"run", "--no-meter", in, "add_one", "--", "-1"}, []string{"result: 1"}, ""},
		{"list", []string{"run", in}, []string{"add_one(i32) -> (i32)"}, ""},
		{"unknown function", []string{"run", in, "nope"}, nil, "no exported function"},
		{"bad argument", []string{"run", in, "add_one", "x"}, nil, "argument 0"},
		{"arity", []string{"run", in, "add_one"}, nil, "takes 1 arguments"},
		{"negative budget", []string{"run", in, "add_one", "1", "--budget", "-5"}, nil, "must not be negative"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, tt.args...)
			if tt.wantErr == "" && err != nil {
				t.Fatalf("run: %v", err)
			}
			if tt.wantErr != "" && (err == nil || !strings.Contains(err.Error(), tt.wantErr)) {
				t.Fatalf("error = %v, want %q", err, tt.wantErr)
			}
			for _, w := range tt.want {
				if !strings.Contains(out, w) {
					t.Errorf("output %q does not contain %q", out, w)
				}
			}
		})
	}
}

func TestInspectCommand(t *testing.T) {
	in := writeModule(t)
	out, err := execute(t, "inspect", in, "--ops")
	if err != nil {
		t.Fatalf("inspect: %v", err)
	}
	for _, want := range []string{
		"(version 1)",
		"functions: 1 defined",
		"[0] (i32) -> (i32) locals=0 ops=4",
		"i32.add",
		"global mut i32",
		"func   add_one -> 0",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}
}

func TestConfigResolution(t *testing.T) {
	in := writeModule(t)
	costs := writeFile(t, "costs.yaml", []byte("default: 2\n"))
	cfg := writeFile(t, "wasmarin.yaml", []byte(
		"features: [none]\n"+
			"metering:\n"+
			"  export: from_config\n"+
			"  cost_table: "+costs+"\n"))

	t.Run("config file", func(t *testing.T) {
		out, err := execute(t, "--config", cfg, "instrument", in, "-o", filepath.Join(t.TempDir(), "x.wasm"))
		if err != nil {
			t.Fatalf("instrument: %v", err)
		}
		if !strings.Contains(out, `"from_config"`) {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("cost table from config", func(t *testing.T) {
		out, err := execute(t, "--config", cfg, "run", in, "add_one", "1", "--budget", "10")
		if err != nil {
			t.Fatalf("run: %v", err)
		}
		if !strings.Contains(out, "remaining points: 4 of 10") {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("environment beats config", func(t *testing.T) {
		t.Setenv("WASMARIN_METERING_EXPORT", "from_env")
		out, err := execute(t, "--config", cfg, "instrument", in, "-o", filepath.Join(t.TempDir(), "x.wasm"))
		if err != nil {
			t.Fatalf("instrument: %v", err)
		}
		if !strings.Contains(out, `"from_env"`) {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("flag beats environment", func(t *testing.T) {
		t.Setenv("WASMARIN_METERING_EXPORT", "from_env")
		out, err := execute(t, "instrument", in, "-o", filepath.Join(t.TempDir(), "x.wasm"), "--export", "from_flag")
		if err != nil {
			t.Fatalf("instrument: %v", err)
		}
		if !strings.Contains(out, `"from_flag"`) {
			t.Errorf("output = %q", out)
		}
	})

	t.Run("unknown feature", func(t *testing.T) {
		t.Setenv("WASMARIN_FEATURES", "simd,gc")
		if _, err := execute(t, "inspect", in); err == nil || !strings.Contains(err.Error(), "gc") {
			t.Errorf("error = %v, want unknown feature", err)
		}
	})

	t.Run("missing config", func(t *testing.T) {
		if _, err := execute(t, "--config", filepath.Join(t.TempDir(), "nope.yaml"), "inspect", in); err == nil {
			t.Error("expected error for missing config file")
		}
	})
}

func TestValidatorSelection(t *testing.T) {
	tags := writeFile(t, "tags.wasm", encoder.New().Encode(&ir.Module{
		TypeGroups: []ir.RecGroup{ir.FuncGroup(nil, nil)},
		Tags:       []ir.TagType{{Type: 0}},
	}))
	out := filepath.Join(t.TempDir(), "x.wasm")

	t.Run("default reports unchecked proposal", func(t *testing.T) {
		_, err := execute(t, "instrument", tags, "-o", out)
		if !errors.Is(err, werrors.ErrUnchecked) || !strings.Contains(err.Error(), "exceptions") {
			t.Errorf("error = %v, want unchecked exceptions", err)
		}
	})

	t.Run("flag", func(t *testing.T) {
		if _, err := execute(t, "instrument", tags, "-o", out, "--validator", "none"); err != nil {
			t.Errorf("instrument: %v", err)
		}
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("WASMARIN_VALIDATOR", "none")
		if _, err := execute(t, "inspect", tags); err != nil {
			t.Errorf("inspect: %v", err)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := execute(t, "inspect", tags, "--validator", "bogus")
		if err == nil || !strings.Contains(err.Error(), "unknown validator") {
			t.Errorf("error = %v, want unknown validator", err)
		}
	})
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.HasPrefix(out, "wasmarin version ") {
		t.Errorf("output = %q", out)
	}
}

func TestSplitList(t *testing.T) {
	got := splitList([]string{"all,-threads", " simd ", ""})
	want := []string{"all", "-threads", "simd"}
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("splitList = %q, want %q", got, want)
	}
}

func TestArgumentCodec(t *testing.T) {
	tests := []struct {
		in   string
		typ  api.ValueType
		want string
	}{
		{"-7", api.ValueTypeI32, "-7"},
		{"0xffffffff", api.ValueTypeI32, "-1"},
		{"9007199254740993", api.ValueTypeI64, "9007199254740993"},
		{"1.5", api.ValueTypeF32, "1.5"},
		{"-2.25", api.ValueTypeF64, "-2.25"},
	}
	for _, tt := range tests {
		v, err := encodeArg(tt.in, tt.typ)
		if err != nil {
			t.Errorf("encodeArg(%q): %v", tt.in, err)
			continue
		}
		if got := decodeResult(v, tt.typ); got != tt.want {
			t.Errorf("%s %q round trip = %q, want %q", api.ValueTypeName(tt.typ), tt.in, got, tt.want)
		}
	}
	if _, err := encodeArg("1", api.ValueTypeExternref); err == nil {
		t.Error("externref arguments should be rejected")
	}
}

type fakeCaller struct {
	name string
	args []string
	err  error
}

func (f *fakeCaller) call(_ context.Context, name string, args []string) (callResult, error) {
	f.name, f.args = name, args
	return callResult{values: []string{"42"}, remaining: 7, metered: true}, f.err
}

func press(t *testing.T, m *interactiveModel, keys ...tea.KeyMsg) {
	t.Helper()
	for _, k := range keys {
		_, cmd := m.Update(k)
		// run synchronous commands that report call results
		if cmd != nil && m.state != stateInputArgs {
			if msg, ok := cmd().(callResultMsg); ok {
				m.Update(msg)
			}
		}
	}
}

func TestInteractiveModel(t *testing.T) {
	funcs := []exportedFunc{
		{name: "add", params: []api.ValueType{api.ValueTypeI32, api.ValueTypeI32}, results: []api.ValueType{api.ValueTypeI32}},
		{name: "tick"},
	}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	t.Run("call without arguments", func(t *testing.T) {
		fc := &fakeCaller{}
		m := newInteractiveModel(context.Background(), fc, funcs, "m.wasm")
		press(t, m, tea.KeyMsg{Type: tea.KeyDown}, enter)
		if m.state != stateShowResult || fc.name != "tick" {
			t.Fatalf("state = %v, called %q", m.state, fc.name)
		}
		view := m.View()
		if !strings.Contains(view, "42") || !strings.Contains(view, "remaining points: 7") {
			t.Errorf("view = %q", view)
		}
		press(t, m, enter)
		if m.state != stateSelectFunc {
			t.Errorf("state after continue = %v", m.state)
		}
	})

	t.Run("arguments", func(t *testing.T) {
		fc := &fakeCaller{}
		m := newInteractiveModel(context.Background(), fc, funcs, "m.wasm")
		press(t, m, enter)
		if m.state != stateInputArgs || len(m.inputs) != 2 {
			t.Fatalf("state = %v with %d inputs", m.state, len(m.inputs))
		}
		m.inputs[0].SetValue("1")
		m.inputs[1].SetValue(" 2 ")
		_, cmd := m.Update(enter)
		m.Update(cmd())
		if fc.name != "add" || strings.Join(fc.args, ",") != "1,2" {
			t.Errorf("called %q with %q", fc.name, fc.args)
		}
	})

	t.Run("errors are shown", func(t *testing.T) {
		fc := &fakeCaller{err: errors.New("out of gas")}
		m := newInteractiveModel(context.Background(), fc, funcs, "m.wasm")
		press(t, m, tea.KeyMsg{Type: tea.KeyDown}, enter)
		if !strings.Contains(m.View(), "Error: out of gas") {
			t.Errorf("view = %q", m.View())
		}
	})

	t.Run("escape leaves argument entry", func(t *testing.T) {
		m := newInteractiveModel(context.Background(), &fakeCaller{}, funcs, "m.wasm")
		press(t, m, enter, tea.KeyMsg{Type: tea.KeyEsc})
		if m.state != stateSelectFunc || m.inputs != nil {
			t.Errorf("state = %v", m.state)
		}
	})
}
