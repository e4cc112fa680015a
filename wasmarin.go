package wasmarin

import (
	"github.com/wippyai/wasmarin/encoder"
	"github.com/wippyai/wasmarin/features"
	"github.com/wippyai/wasmarin/ir"
	"github.com/wippyai/wasmarin/metering"
	"github.com/wippyai/wasmarin/parser"
)

// Parse validates data under fs with the wazero validator and decodes it.
// The module borrows data segment and custom section bytes from data.
func Parse(data []byte, fs features.Set) (*ir.Module, error) {
	return parser.New(fs).Parse(data)
}

// Encode serializes m without instrumentation.
func Encode(m *ir.Module) []byte {
	return encoder.New().Encode(m)
}

// Instrument parses data and re-encodes it with metering. The returned
// Injected names the remaining points global the host must set before
// calling into the module. Modules that already carry the metering export
// are rejected.
func Instrument(data []byte, fs features.Set, cfg metering.Config) ([]byte, metering.Injected, error) {
	m, err := Parse(data, fs)
	if err != nil {
		return nil, metering.Injected{}, err
	}
	if err := cfg.Check(m); err != nil {
		return nil, metering.Injected{}, err
	}
	out, info := encoder.New(encoder.WithMetering(cfg)).EncodeInfo(m)
	return out, *info.Metering, nil
}
