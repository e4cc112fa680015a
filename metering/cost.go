package metering

import "github.com/wippyai/wasmarin/ir"

// Charge is the input of a cost function. Size is the statically known
// length operand of a bulk operator, taken from a constant pushed right
// before it, or -1.
type Charge struct {
	Op   ir.Operator
	Size int64
}

// CostFunc prices one operator.
type CostFunc func(Charge) int64

// UnitCost charges 1 point per operator and nothing for end.
func UnitCost(c Charge) int64 {
	if c.Op.Code == ir.OpEnd {
		return 0
	}
	return 1
}

// BulkCost prices an operation over n bytes or elements in blocks of Unit,
// plus a flat Overhead.
type BulkCost struct {
	Unit     int64
	PerUnit  int64
	Overhead int64
}

// Points returns ceil(n/Unit)*PerUnit + Overhead.
func (b BulkCost) Points(n int64) int64 {
	if n <= 0 || b.Unit <= 0 {
		return b.Overhead
	}
	units := (n + b.Unit - 1) / b.Unit
	return units*b.PerUnit + b.Overhead
}

// DefaultBulkOps are the operators whose cost scales with a length operand.
var DefaultBulkOps = []ir.OpCode{
	ir.OpMemoryCopy,
	ir.OpMemoryFill,
	ir.OpMemoryInit,
	ir.OpTableCopy,
	ir.OpTableFill,
	ir.OpTableInit,
}

// WithBulk prices codes with bulk when their length is statically known.
// Unknown lengths cost base plus the bulk overhead. Every other operator
// is priced by base. With no codes, DefaultBulkOps are used.
func WithBulk(base CostFunc, bulk BulkCost, codes ...ir.OpCode) CostFunc {
	if len(codes) == 0 {
		codes = DefaultBulkOps
	}
	priced := make(map[ir.OpCode]bool, len(codes))
	for _, c := range codes {
		priced[c] = true
	}
	return func(c Charge) int64 {
		if !priced[c.Op.Code] {
			return base(c)
		}
		if c.Size < 0 {
			return base(c) + bulk.Overhead
		}
		return bulk.Points(c.Size)
	}
}
