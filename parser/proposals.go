package parser

import "github.com/wippyai/wasmarin/ir"

// usedProposals reports which proposals outside the widely supported core
// a decoded module relies on. Keys match features.Names plus gc_types.
func usedProposals(m *ir.Module) map[string]bool {
	used := make(map[string]bool)

	memories := len(m.Memories)
	for _, imp := range m.Imports {
		d := imp.Desc
		switch d.Kind {
		case ir.ExternMemory:
			memories++
			if d.Memory.Limits.Is64 {
				used["memory64"] = true
			}
		case ir.ExternTable:
			if d.Table.Limits.Is64 {
				used["memory64"] = true
			}
			if !mvpRef(d.Table.Elem) {
				used["gc_types"] = true
			}
		case ir.ExternGlobal:
			if !mvpVal(d.Global.Val) {
				used["gc_types"] = true
			}
		case ir.ExternTag:
			used["exceptions"] = true
		}
	}
	if memories > 1 {
		used["multi_memory"] = true
	}
	for _, mem := range m.Memories {
		if mem.Limits.Is64 {
			used["memory64"] = true
		}
	}
	if len(m.Tags) > 0 {
		used["exceptions"] = true
	}

	for _, g := range m.TypeGroups {
		if g.Explicit {
			used["gc_types"] = true
		}
		for _, st := range g.Types {
			if !st.Final || st.Supertype != nil || st.Composite.Shared || st.Composite.Kind != ir.CompFunc {
				used["gc_types"] = true
				continue
			}
			for _, v := range st.Composite.Func.Params {
				if !mvpVal(v) {
					used["gc_types"] = true
				}
			}
			for _, v := range st.Composite.Func.Results {
				if !mvpVal(v) {
					used["gc_types"] = true
				}
			}
		}
	}

	var exprs []ir.ConstExpr
	for _, t := range m.Tables {
		if t.Type.Limits.Is64 {
			used["memory64"] = true
		}
		if !mvpRef(t.Type.Elem) {
			used["gc_types"] = true
		}
		exprs = append(exprs, t.Init)
	}
	for _, g := range m.Globals {
		if !mvpVal(g.Type.Val) {
			used["gc_types"] = true
		}
		exprs = append(exprs, g.Init)
	}
	for _, e := range m.Elements {
		if !mvpRef(e.Type) {
			used["gc_types"] = true
		}
		exprs = append(exprs, e.Offset)
		exprs = append(exprs, e.Exprs...)
	}
	for _, d := range m.Data {
		exprs = append(exprs, d.Offset)
	}
	for _, expr := range exprs {
		for _, op := range expr {
			switch op.Code {
			case ir.OpI32Add, ir.OpI32Sub, ir.OpI32Mul, ir.OpI64Add, ir.OpI64Sub, ir.OpI64Mul:
				used["extended_const"] = true
			}
		}
	}

	for _, body := range m.Code {
		for _, l := range body.Locals {
			if !mvpVal(l.Type) {
				used["gc_types"] = true
			}
		}
		for _, op := range body.Operators {
			switch op.Code {
			case ir.OpTry, ir.OpCatch, ir.OpThrow, ir.OpRethrow, ir.OpThrowRef,
				ir.OpDelegate, ir.OpCatchAll, ir.OpTryTable:
				used["exceptions"] = true
				continue
			case ir.OpReturnCall, ir.OpReturnCallIndirect, ir.OpReturnCallRef:
				used["tail_call"] = true
				continue
			}
			if op.Code >= ir.OpI8x16RelaxedSwizzle && op.Code <= ir.OpI32x4RelaxedDotI8x16I7x16AddS {
				used["relaxed_simd"] = true
			}
		}
	}
	return used
}

func mvpRef(r ir.RefType) bool {
	return r == ir.FuncRef || r == ir.ExternRef
}

func mvpVal(v ir.ValType) bool {
	return v.Kind != ir.KindRef || mvpRef(v.Ref)
}
