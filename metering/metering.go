// Package metering rewrites function bodies so that executing them draws
// down a "remaining points" budget held in an injected global.
//
// Cost accumulates over straight-line code and is charged in one batch at
// every accounting operator, that is every operator where control can
// leave or join straight-line order. The batch includes the accounting
// operator itself and is charged before the balance is checked, so the
// budget may go negative; after a trap the global holds the deficit.
package metering

import (
	"github.com/wippyai/wasmarin/errors"
	"github.com/wippyai/wasmarin/ir"
)

// DefaultExportName is the export bound to the remaining points global.
const DefaultExportName = "wasmarin_metering_remaining_points"

// Config selects the cost function and export name. Zero values select
// UnitCost and DefaultExportName.
type Config struct {
	Cost       CostFunc
	ExportName string
}

// Injected describes the entities metering adds to a module.
type Injected struct {
	ExportName  string
	GlobalIndex uint32
}

// Meter instruments the function bodies of one module. It is created once
// per encode and owns the index of the injected global.
type Meter struct {
	cost     CostFunc
	injected Injected
}

func (c Config) exportName() string {
	if c.ExportName == "" {
		return DefaultExportName
	}
	return c.ExportName
}

// Check reports whether m can be metered under c. The export name must be
// free, which also rejects modules that were metered before.
func (c Config) Check(m *ir.Module) error {
	name := c.exportName()
	if _, ok := m.ExportIndex(name); ok {
		return errors.New(errors.PhaseInstrument, errors.KindInvalidInput).
			Path("exports", name).
			Value(name).
			Detail("export %q already exists", name).
			Build()
	}
	return nil
}

// New allocates the remaining points global from spaces.
func New(cfg Config, spaces *ir.IndexSpaces) *Meter {
	m := &Meter{cost: cfg.Cost}
	if m.cost == nil {
		m.cost = UnitCost
	}
	m.injected.ExportName = cfg.exportName()
	m.injected.GlobalIndex = spaces.Alloc(ir.SpaceGlobal)
	return m
}

// Injected reports the global index and export name of the injected
// global.
func (m *Meter) Injected() Injected {
	return m.injected
}

// Global returns the declaration of the remaining points global: a
// mutable i64 initialized to zero.
func (m *Meter) Global() ir.Global {
	return ir.Global{
		Type: ir.GlobalType{Val: ir.ValI64, Mutable: true},
		Init: ir.ConstExpr{ir.I64Const(0), ir.End()},
	}
}

// Export returns the export binding the injected global.
func (m *Meter) Export() ir.Export {
	return ir.Export{
		Name:  m.injected.ExportName,
		Kind:  ir.ExternGlobal,
		Index: m.injected.GlobalIndex,
	}
}

// Instrument returns a new operator sequence with a charge emitted before
// every accounting operator. ops is not modified.
func (m *Meter) Instrument(ops []ir.Operator) []ir.Operator {
	out := make([]ir.Operator, 0, len(ops)+len(ops)/2)
	var accumulated int64
	for i, op := range ops {
		accumulated += m.cost(Charge{Op: op, Size: staticSize(ops, i)})
		if IsAccounting(op.Code) {
			out = m.appendCharge(out, accumulated)
			accumulated = 0
		}
		out = append(out, op)
	}
	return out
}

func (m *Meter) appendCharge(out []ir.Operator, points int64) []ir.Operator {
	g := m.injected.GlobalIndex
	return append(out,
		ir.GlobalGet(g),
		ir.I64Const(points),
		ir.Op(ir.OpI64Sub),
		ir.GlobalSet(g),
		ir.GlobalGet(g),
		ir.I64Const(0),
		ir.Op(ir.OpI64LtS),
		ir.OpImm(ir.OpIf, ir.BlockType{Kind: ir.BlockEmpty}),
		ir.Op(ir.OpUnreachable),
		ir.End(),
	)
}

// staticSize returns the operand of a constant pushed immediately before
// ops[i], or -1 when it is not statically known.
func staticSize(ops []ir.Operator, i int) int64 {
	if i == 0 {
		return -1
	}
	switch imm := ops[i-1].Imm.(type) {
	case ir.I32:
		if ops[i-1].Code == ir.OpI32Const && imm >= 0 {
			return int64(imm)
		}
	case ir.I64:
		if ops[i-1].Code == ir.OpI64Const && imm >= 0 {
			return int64(imm)
		}
	}
	return -1
}

// IsAccounting reports whether the balance is charged before code runs.
// These are the operators at which control can branch, call out, return,
// or join: block boundaries, branches, calls and exception control.
func IsAccounting(code ir.OpCode) bool {
	switch code {
	case ir.OpLoop, ir.OpEnd, ir.OpIf, ir.OpElse,
		ir.OpBr, ir.OpBrIf, ir.OpBrTable,
		ir.OpBrOnCast, ir.OpBrOnCastFail, ir.OpBrOnNull, ir.OpBrOnNonNull,
		ir.OpCall, ir.OpCallIndirect, ir.OpCallRef,
		ir.OpReturnCall, ir.OpReturnCallIndirect, ir.OpReturnCallRef,
		ir.OpReturn,
		ir.OpThrow, ir.OpThrowRef, ir.OpRethrow, ir.OpDelegate,
		ir.OpCatch, ir.OpCatchAll:
		return true
	}
	return false
}
