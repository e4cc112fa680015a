// Package validate defines the module validator consulted before decoding
// and provides a wazero-backed implementation.
package validate

import (
	"context"
	"fmt"
	"sort"

	"github.com/tetratelabs/wazero"

	"github.com/wippyai/wasmarin/errors"
	"github.com/wippyai/wasmarin/features"
)

// Validator checks a binary module against a feature-gated rule set.
type Validator interface {
	Validate(data []byte, flags features.Flags) error
}

// Checker is implemented by validators that cannot check every proposal
// they are given. Unchecked lists the enabled proposals in flags that the
// validator rejects regardless of the flag, named as in
// features.Flags.Unsupported.
type Checker interface {
	Unchecked(flags features.Flags) []string
}

// Func adapts a function to the Validator interface.
type Func func(data []byte, flags features.Flags) error

// Validate calls f.
func (f Func) Validate(data []byte, flags features.Flags) error {
	return f(data, flags)
}

// Nop accepts every input. Use it for trusted inputs or when the caller has
// already validated the bytes.
var Nop Validator = Func(func([]byte, features.Flags) error { return nil })

// Wazero validates by compiling the module with wazero's interpreter.
// Each call builds and closes its own runtime, so a Wazero value is safe
// for concurrent use.
type Wazero struct{}

// NewWazero returns a validator backed by wazero.
func NewWazero() *Wazero {
	return &Wazero{}
}

// Unchecked returns flags.Unsupported.
func (*Wazero) Unchecked(flags features.Flags) []string {
	return flags.Unsupported()
}

// Validate compiles data with the core features derived from flags.
// Proposals wazero does not implement (see Flags.Unsupported) are rejected
// by the compiler when a module uses them, even if they are enabled.
func (*Wazero) Validate(data []byte, flags features.Flags) error {
	ctx := context.Background()
	cfg := wazero.NewRuntimeConfigInterpreter().WithCoreFeatures(flags.CoreFeatures())
	rt := wazero.NewRuntimeWithConfig(ctx, cfg)
	defer rt.Close(ctx)

	compiled, err := rt.CompileModule(ctx, data)
	if err != nil {
		return errors.Validation(err)
	}
	return compiled.Close(ctx)
}

var registry = map[string]func() Validator{
	"wazero": func() Validator { return NewWazero() },
	"none":   func() Validator { return Nop },
}

// register adds a named validator. It is only called from init functions.
func register(name string, fn func() Validator) {
	registry[name] = fn
}

// Names returns the sorted names accepted by ByName.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByName returns a new validator by name: "wazero", "none", and
// "wasmtime" in builds with the wasmtime tag.
func ByName(name string) (Validator, error) {
	fn, ok := registry[name]
	if !ok {
		return nil, errors.InvalidInput(errors.PhaseConfig, []string{"validator"},
			fmt.Sprintf("unknown validator %q (available: %v)", name, Names()))
	}
	return fn(), nil
}
