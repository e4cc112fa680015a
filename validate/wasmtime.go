//go:build wasmtime && cgo

package validate

import (
	"github.com/bytecodealliance/wasmtime-go/v3"

	"github.com/wippyai/wasmarin/errors"
	"github.com/wippyai/wasmarin/features"
)

func init() {
	register("wasmtime", func() Validator { return NewWasmtime() })
}

// Wasmtime validates with wasmtime's compiler front end. It checks multi
// memory and memory64, which wazero cannot. Each call builds its own
// engine.
type Wasmtime struct{}

// NewWasmtime returns a validator backed by wasmtime.
func NewWasmtime() *Wasmtime {
	return &Wasmtime{}
}

// Validate checks data with an engine configured from flags. wasmtime
// requires bulk memory for reference types, so either enables both.
func (*Wasmtime) Validate(data []byte, flags features.Flags) error {
	cfg := wasmtime.NewConfig()
	refs := flags.BulkMemory || flags.ReferenceTypes
	cfg.SetWasmBulkMemory(refs)
	cfg.SetWasmReferenceTypes(refs)
	cfg.SetWasmThreads(flags.Threads)
	cfg.SetWasmSIMD(flags.SIMD)
	cfg.SetWasmMultiValue(flags.MultiValue)
	cfg.SetWasmMultiMemory(flags.MultiMemory)
	cfg.SetWasmMemory64(flags.Memory64)

	engine := wasmtime.NewEngineWithConfig(cfg)
	if err := wasmtime.ModuleValidate(engine, data); err != nil {
		return errors.Validation(err)
	}
	return nil
}

// Unchecked lists the enabled proposals this wasmtime release has no
// switch for.
func (*Wasmtime) Unchecked(flags features.Flags) []string {
	var out []string
	if flags.GCTypes {
		out = append(out, "gc_types")
	}
	if flags.TailCall {
		out = append(out, "tail_call")
	}
	if flags.Exceptions {
		out = append(out, "exceptions")
	}
	if flags.ExtendedConst {
		out = append(out, "extended_const")
	}
	if flags.RelaxedSIMD {
		out = append(out, "relaxed_simd")
	}
	return out
}
