package encoder

import (
	"testing"

	"github.com/wippyai/wasmarin/ir"
)

func TestElementFlags(t *testing.T) {
	anyRef := ir.RefType{Nullable: true, Heap: ir.Abstract(ir.HeapAny)}
	tests := []struct {
		name string
		elem ir.Element
		want byte
	}{
		{"active table 0 funcs", ir.Element{Mode: ir.SegmentActive}, 0},
		{"passive funcs", ir.Element{Mode: ir.SegmentPassive}, 1},
		{"active table 1 funcs", ir.Element{Mode: ir.SegmentActive, Table: 1}, 2},
		{"declared funcs", ir.Element{Mode: ir.SegmentDeclared}, 3},
		{"active table 0 funcref exprs", ir.Element{Mode: ir.SegmentActive, Items: ir.ItemsExprs, Type: ir.FuncRef}, 4},
		{"passive exprs", ir.Element{Mode: ir.SegmentPassive, Items: ir.ItemsExprs, Type: ir.FuncRef}, 5},
		{"active table 0 anyref exprs", ir.Element{Mode: ir.SegmentActive, Items: ir.ItemsExprs, Type: anyRef}, 6},
		{"active table 2 exprs", ir.Element{Mode: ir.SegmentActive, Items: ir.ItemsExprs, Type: ir.FuncRef, Table: 2}, 6},
		{"declared exprs", ir.Element{Mode: ir.SegmentDeclared, Items: ir.ItemsExprs, Type: ir.FuncRef}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := elementFlags(&tt.elem); got != tt.want {
				t.Errorf("elementFlags = %d, want %d", got, tt.want)
			}
		})
	}
}
