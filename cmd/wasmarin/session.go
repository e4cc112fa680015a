package main

import (
	"context"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"

	"github.com/tetratelabs/wazero"
	"github.com/tetratelabs/wazero/api"
	"github.com/tetratelabs/wazero/imports/wasi_snapshot_preview1"
	"go.uber.org/zap"

	"github.com/wippyai/wasmarin/encoder"
	"github.com/wippyai/wasmarin/features"
	"github.com/wippyai/wasmarin/ir"
	"github.com/wippyai/wasmarin/metering"
	"github.com/wippyai/wasmarin/parser"
	"github.com/wippyai/wasmarin/validate"
)

// sessionConfig selects how a module is prepared and instantiated.
type sessionConfig struct {
	stdout io.Writer
	stderr io.Writer
	config
	budget int64
	meter  bool
	wasi   bool
}

// session is one instantiated module, metered unless disabled.
type session struct {
	rt     wazero.Runtime
	mod    api.Module
	points api.MutableGlobal // nil when unmetered
	log    *zap.Logger
	funcs  []exportedFunc
	budget int64
}

type exportedFunc struct {
	name    string
	params  []api.ValueType
	results []api.ValueType
}

func (f exportedFunc) String() string {
	return f.name + "(" + typeNames(f.params) + ") -> (" + typeNames(f.results) + ")"
}

func typeNames(types []api.ValueType) string {
	s := ""
	for i, t := range types {
		if i > 0 {
			s += ", "
		}
		s += api.ValueTypeName(t)
	}
	return s
}

// callResult is the outcome of one call.
type callResult struct {
	values    []string
	remaining int64
	metered   bool
}

func newSession(ctx context.Context, data []byte, cfg sessionConfig, log *zap.Logger) (*session, error) {
	bin := data
	var injected metering.Injected
	if cfg.meter {
		m, err := cfg.newParser(log).Parse(data)
		if err != nil {
			return nil, err
		}
		if err := cfg.Metering.Check(m); err != nil {
			return nil, err
		}
		var info encoder.Info
		bin, info = encoder.New(encoder.WithMetering(cfg.Metering), encoder.WithLogger(log.Named("encoder"))).EncodeInfo(m)
		injected = *info.Metering
		// the start function runs during instantiation, before the host
		// can set the global, so the budget goes into its initializer
		if bin, err = withInitialBudget(bin, injected, cfg.budget); err != nil {
			return nil, err
		}
	}

	rc := wazero.NewRuntimeConfig().WithCoreFeatures(cfg.Features.Flags().CoreFeatures())
	rt := wazero.NewRuntimeWithConfig(ctx, rc)
	if cfg.wasi {
		if _, err := wasi_snapshot_preview1.Instantiate(ctx, rt); err != nil {
			rt.Close(ctx)
			return nil, fmt.Errorf("instantiate wasi: %w", err)
		}
	}

	mc := wazero.NewModuleConfig().
		WithStdout(cfg.stdout).
		WithStderr(cfg.stderr).
		WithStartFunctions()
	mod, err := rt.InstantiateWithConfig(ctx, bin, mc)
	if err != nil {
		rt.Close(ctx)
		return nil, fmt.Errorf("instantiate: %w", err)
	}

	s := &session{rt: rt, mod: mod, log: log, budget: cfg.budget}
	if cfg.meter {
		g, ok := mod.ExportedGlobal(injected.ExportName).(api.MutableGlobal)
		if !ok {
			rt.Close(ctx)
			return nil, fmt.Errorf("metering global %q not exported", injected.ExportName)
		}
		s.points = g
	}

	for name, def := range mod.ExportedFunctionDefinitions() {
		s.funcs = append(s.funcs, exportedFunc{name: name, params: def.ParamTypes(), results: def.ResultTypes()})
	}
	sort.Slice(s.funcs, func(i, j int) bool { return s.funcs[i].name < s.funcs[j].name })
	return s, nil
}

// withInitialBudget rewrites the initializer of the injected global.
func withInitialBudget(bin []byte, injected metering.Injected, budget int64) ([]byte, error) {
	m, err := parser.New(features.All(), parser.WithValidator(validate.Nop)).Parse(bin)
	if err != nil {
		return nil, err
	}
	idx := int(injected.GlobalIndex) - m.NumImportedGlobals()
	if idx < 0 || idx >= len(m.Globals) {
		return nil, fmt.Errorf("metering global %d not defined by the module", injected.GlobalIndex)
	}
	m.Globals[idx].Init = ir.ConstExpr{ir.I64Const(budget), ir.End()}
	return encoder.New().Encode(m), nil
}

func (s *session) lookup(name string) (exportedFunc, bool) {
	for _, f := range s.funcs {
		if f.name == name {
			return f, true
		}
	}
	return exportedFunc{}, false
}

// call resets the budget, then invokes name with textual arguments.
func (s *session) call(ctx context.Context, name string, args []string) (callResult, error) {
	f, ok := s.lookup(name)
	if !ok {
		return callResult{}, fmt.Errorf("no exported function %q", name)
	}
	if len(args) != len(f.params) {
		return callResult{}, fmt.Errorf("%s takes %d arguments, got %d", f, len(f.params), len(args))
	}
	params := make([]uint64, len(args))
	for i, arg := range args {
		v, err := encodeArg(arg, f.params[i])
		if err != nil {
			return callResult{}, fmt.Errorf("argument %d: %w", i, err)
		}
		params[i] = v
	}

	if s.points != nil {
		s.points.Set(uint64(s.budget))
	}
	raw, err := s.mod.ExportedFunction(name).Call(ctx, params...)

	res := callResult{metered: s.points != nil}
	if s.points != nil {
		res.remaining = int64(s.points.Get())
	}
	s.log.Debug("call",
		zap.String("function", name),
		zap.Int64("remaining", res.remaining),
		zap.Error(err))
	if err != nil {
		if res.metered && res.remaining < 0 {
			return res, fmt.Errorf("out of gas (%d points over budget): %w", -res.remaining, err)
		}
		return res, err
	}
	for i, v := range raw {
		res.values = append(res.values, decodeResult(v, f.results[i]))
	}
	return res, nil
}

func (s *session) close(ctx context.Context) {
	_ = s.rt.Close(ctx)
}

func encodeArg(s string, t api.ValueType) (uint64, error) {
	switch t {
	case api.ValueTypeI32:
		v, err := strconv.ParseInt(s, 0, 32)
		if err != nil {
			// accept the unsigned range too
			u, uerr := strconv.ParseUint(s, 0, 32)
			if uerr != nil {
				return 0, err
			}
			return uint64(uint32(u)), nil
		}
		return api.EncodeI32(int32(v)), nil
	case api.ValueTypeI64:
		v, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			u, uerr := strconv.ParseUint(s, 0, 64)
			if uerr != nil {
				return 0, err
			}
			return u, nil
		}
		return api.EncodeI64(v), nil
	case api.ValueTypeF32:
		v, err := strconv.ParseFloat(s, 32)
		return api.EncodeF32(float32(v)), err
	case api.ValueTypeF64:
		v, err := strconv.ParseFloat(s, 64)
		return api.EncodeF64(v), err
	}
	return 0, fmt.Errorf("cannot pass %s from the command line", api.ValueTypeName(t))
}

func decodeResult(v uint64, t api.ValueType) string {
	switch t {
	case api.ValueTypeI32:
		return strconv.FormatInt(int64(api.DecodeI32(v)), 10)
	case api.ValueTypeI64:
		return strconv.FormatInt(int64(v), 10)
	case api.ValueTypeF32:
		return strconv.FormatFloat(float64(api.DecodeF32(v)), 'g', -1, 32)
	case api.ValueTypeF64:
		return strconv.FormatFloat(math.Float64frombits(v), 'g', -1, 64)
	}
	return fmt.Sprintf("%s(0x%x)", api.ValueTypeName(t), v)
}

func stdio(interactive bool) (io.Writer, io.Writer) {
	if interactive {
		// the TUI owns the terminal
		return io.Discard, io.Discard
	}
	return os.Stdout, os.Stderr
}
