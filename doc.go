// Package wasmarin decodes WebAssembly core modules into an editable IR,
// optionally instruments them with gas metering, and encodes them back to
// the binary format.
//
// # Architecture Overview
//
//	wasmarin/            Root package with Parse, Encode and Instrument
//	├── parser/          Validate then decode binaries into the IR
//	├── ir/              Module model, instruction table, index spaces
//	├── opmap/           IR to wire descriptor mapping
//	├── encoder/         IR to binary, metered or not
//	├── metering/        Gas instrumentation and cost models
//	├── features/        Proposal flags and validator configuration
//	├── validate/        Validator interface, wazero and wasmtime validators
//	├── wasm/            Wire-level constants and instruction encoding
//	├── errors/          Structured error types for debugging
//	└── cmd/wasmarin/    Command line tool
//
// # Quick Start
//
// Meter a module and run it under a budget with wazero:
//
//	out, injected, err := wasmarin.Instrument(wasmBytes, features.All(), metering.Config{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	mod, err := rt.Instantiate(ctx, out)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	points := mod.ExportedGlobal(injected.ExportName).(api.MutableGlobal)
//	points.Set(1_000_000)
//
// A call that exhausts the budget traps with unreachable. The global then
// holds the deficit, so a negative value tells metering traps apart from
// other traps.
//
// # Metering
//
// Cost accumulates over straight-line code and is charged in one batch
// before every operator that can branch, call, return or end a block.
// Charges are static: each operator costs what the cost function returns
// for it. Bulk memory and table operations can be priced by length when
// the length is a constant:
//
//	cost := metering.WithBulk(metering.UnitCost,
//	    metering.BulkCost{Unit: 1, PerUnit: 2, Overhead: 4},
//	    ir.OpMemoryCopy, ir.OpMemoryFill)
//
// Cost tables can also be loaded from YAML:
//
//	default: 1
//	ops:
//	  call: 10
//	  end: 0
//	bulk:
//	  - ops: [memory.copy, memory.fill]
//	    unit: 1
//	    per_unit: 2
//	    overhead: 4
//
// # Error Handling
//
// Parse failures are *errors.Error values classified by phase and kind:
//
//	_, err := wasmarin.Parse(data, features.All())
//	switch {
//	case errors.Is(err, werrors.ErrValidation):
//	    // rejected by the validator
//	case errors.Is(err, werrors.ErrUnchecked):
//	    // uses a proposal the validator cannot check
//	case errors.Is(err, werrors.ErrUnsupportedSection):
//	    // component binaries, data count sections, unknown ids
//	case errors.Is(err, werrors.ErrDecode):
//	    // malformed input
//	}
package wasmarin
