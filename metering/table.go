package metering

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wippyai/wasmarin/errors"
	"github.com/wippyai/wasmarin/ir"
)

// CostTable is a declarative cost function loaded from YAML:
//
//	default: 1
//	ops:
//	  call: 5
//	  end: 0
//	bulk:
//	  - ops: [memory.copy, memory.fill]
//	    unit: 32
//	    per_unit: 13
//	    overhead: 3
//
// Operators are named by mnemonic. end costs 0 unless listed.
type CostTable struct {
	Default *int64           `yaml:"default"`
	Ops     map[string]int64 `yaml:"ops"`
	Bulk    []BulkEntry      `yaml:"bulk"`
}

// BulkEntry prices a group of length-dependent operators.
type BulkEntry struct {
	Ops      []string `yaml:"ops"`
	Unit     int64    `yaml:"unit"`
	PerUnit  int64    `yaml:"per_unit"`
	Overhead int64    `yaml:"overhead"`
}

// ParseCostTable decodes a YAML cost table.
func ParseCostTable(data []byte) (*CostTable, error) {
	return LoadCostTable(bytes.NewReader(data))
}

// LoadCostTable decodes a YAML cost table from r. Unknown keys are
// rejected.
func LoadCostTable(r io.Reader) (*CostTable, error) {
	var t CostTable
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && err != io.EOF {
		return nil, errors.Wrap(errors.PhaseConfig, errors.KindInvalidInput, err, "decode cost table")
	}
	return &t, nil
}

// LoadCostTableFile reads a YAML cost table from disk.
func LoadCostTableFile(path string) (*CostTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.New(errors.PhaseLoad, errors.KindNotFound).
			Path(path).
			Detail("open cost table").
			Cause(err).
			Build()
	}
	defer f.Close()
	return LoadCostTable(f)
}

// Func compiles the table. Mnemonics are resolved once, so unknown names
// fail here rather than during instrumentation.
func (t *CostTable) Func() (CostFunc, error) {
	def := int64(1)
	if t.Default != nil {
		def = *t.Default
	}
	if def < 0 {
		return nil, errors.InvalidInput(errors.PhaseConfig, []string{"default"}, "cost must not be negative")
	}

	costs := make([]int64, ir.NumOpCodes())
	for i := range costs {
		costs[i] = def
	}
	costs[ir.OpEnd] = 0
	for name, cost := range t.Ops {
		code, ok := ir.Lookup(name)
		if !ok {
			return nil, errors.InvalidInput(errors.PhaseConfig, []string{"ops", name}, "unknown operator")
		}
		if cost < 0 {
			return nil, errors.InvalidInput(errors.PhaseConfig, []string{"ops", name}, "cost must not be negative")
		}
		costs[code] = cost
	}

	base := CostFunc(func(c Charge) int64 {
		if !c.Op.Code.Valid() {
			return def
		}
		return costs[c.Op.Code]
	})

	fn := base
	for i, entry := range t.Bulk {
		path := []string{"bulk", fmt.Sprint(i)}
		if entry.Unit <= 0 {
			return nil, errors.InvalidInput(errors.PhaseConfig, append(path, "unit"), "unit must be positive")
		}
		if len(entry.Ops) == 0 {
			return nil, errors.InvalidInput(errors.PhaseConfig, append(path, "ops"), "no operators listed")
		}
		codes := make([]ir.OpCode, len(entry.Ops))
		for j, name := range entry.Ops {
			code, ok := ir.Lookup(name)
			if !ok {
				return nil, errors.InvalidInput(errors.PhaseConfig, append(path, "ops", name), "unknown operator")
			}
			codes[j] = code
		}
		fn = WithBulk(fn, BulkCost{Unit: entry.Unit, PerUnit: entry.PerUnit, Overhead: entry.Overhead}, codes...)
	}
	return fn, nil
}
