package parser

import (
	"fmt"

	"github.com/wippyai/wasmarin/internal/binary"
	"github.com/wippyai/wasmarin/ir"
	"github.com/wippyai/wasmarin/wasm"
)

// DecodeOperators decodes a flat instruction sequence. It does not check
// block nesting; Parse does that for function bodies.
func DecodeOperators(code []byte) ([]ir.Operator, error) {
	r := binary.NewReader(code)
	ops := make([]ir.Operator, 0, len(code)/2)
	for !r.EOF() {
		op, err := readOperator(r)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func readOperator(r *binary.Reader) (ir.Operator, error) {
	start := r.Position()
	b, err := r.ReadByte()
	if err != nil {
		return ir.Operator{}, err
	}

	var (
		code ir.OpCode
		ok   bool
	)
	if wasm.IsPrefix(b) {
		sub, err := r.ReadU32()
		if err != nil {
			return ir.Operator{}, err
		}
		code, ok = ir.LookupWire(b, sub)
		if !ok {
			return ir.Operator{}, fmt.Errorf("unknown opcode 0x%02x %d at offset %d", b, sub, start)
		}
	} else {
		code, ok = ir.LookupWire(0, uint32(b))
		if !ok {
			return ir.Operator{}, fmt.Errorf("unknown opcode 0x%02x at offset %d", b, start)
		}
	}

	imm, err := readImmediate(r, code.Info().Imm)
	if err != nil {
		return ir.Operator{}, fmt.Errorf("%s immediate: %w", code, err)
	}
	return ir.Operator{Code: code, Imm: imm}, nil
}

func readImmediate(r *binary.Reader, kind ir.ImmKind) (ir.Immediate, error) {
	switch kind {
	case ir.ImmNone:
		return nil, nil
	case ir.ImmBlock:
		return readBlockType(r)
	case ir.ImmLabel, ir.ImmFunc, ir.ImmType, ir.ImmLocal, ir.ImmGlobal,
		ir.ImmTable, ir.ImmMemory, ir.ImmTag, ir.ImmData, ir.ImmElem:
		idx, err := r.ReadU32()
		return ir.Index(idx), err
	case ir.ImmBrTable:
		n, err := r.ReadU32()
		if err != nil {
			return nil, err
		}
		if int(n) > r.Len() {
			return nil, fmt.Errorf("br_table with %d targets exceeds remaining input", n)
		}
		bt := ir.BrTable{Targets: make([]uint32, n)}
		for i := range bt.Targets {
			if bt.Targets[i], err = r.ReadU32(); err != nil {
				return nil, err
			}
		}
		bt.Default, err = r.ReadU32()
		return bt, err
	case ir.ImmCallIndirect, ir.ImmMemoryInit, ir.ImmMemoryCopy, ir.ImmTableInit,
		ir.ImmTableCopy, ir.ImmStructField, ir.ImmArrayFixed, ir.ImmArrayData,
		ir.ImmArrayElem, ir.ImmArrayCopy:
		var p ir.IndexPair
		var err error
		if p[0], err = r.ReadU32(); err != nil {
			return nil, err
		}
		p[1], err = r.ReadU32()
		return p, err
	case ir.ImmMemArg:
		return readMemArg(r)
	case ir.ImmMemArgLane:
		m, err := readMemArg(r)
		if err != nil {
			return nil, err
		}
		lane, err := r.ReadByte()
		return ir.MemArgLane{MemArg: m, Lane: lane}, err
	case ir.ImmI32:
		v, err := r.ReadS32()
		return ir.I32(v), err
	case ir.ImmI64:
		v, err := r.ReadS64()
		return ir.I64(v), err
	case ir.ImmF32:
		v, err := r.ReadF32Bits()
		return ir.F32(v), err
	case ir.ImmF64:
		v, err := r.ReadF64Bits()
		return ir.F64(v), err
	case ir.ImmV128, ir.ImmShuffle:
		raw, err := r.ReadBytes(16)
		if err != nil {
			return nil, err
		}
		var v ir.V128
		copy(v[:], raw)
		return v, nil
	case ir.ImmLane:
		lane, err := r.ReadByte()
		return ir.Lane(lane), err
	case ir.ImmHeapType:
		return readHeapType(r)
	case ir.ImmSelectTypes:
		types, err := readValTypes(r)
		return ir.SelectTypes(types), err
	case ir.ImmTryTable:
		return readTryTable(r)
	case ir.ImmBrOnCast:
		return readBrOnCast(r)
	case ir.ImmFence:
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		switch b {
		case wasm.OrderSeqCst:
			return ir.SeqCst, nil
		case wasm.OrderAcqRel:
			return ir.AcqRel, nil
		}
		return nil, fmt.Errorf("invalid memory ordering 0x%02x", b)
	}
	return nil, fmt.Errorf("unhandled immediate kind %d", kind)
}

func readMemArg(r *binary.Reader) (ir.MemArg, error) {
	flags, err := r.ReadU32()
	if err != nil {
		return ir.MemArg{}, err
	}
	var m ir.MemArg
	if flags&wasm.MemArgHasMemory != 0 {
		if m.Memory, err = r.ReadU32(); err != nil {
			return ir.MemArg{}, err
		}
		flags &^= wasm.MemArgHasMemory
	}
	if flags >= 64 {
		return ir.MemArg{}, fmt.Errorf("alignment exponent %d too large", flags)
	}
	m.Align = flags
	m.Offset, err = r.ReadU64()
	return m, err
}

func readBlockType(r *binary.Reader) (ir.BlockType, error) {
	b, err := r.PeekByte()
	if err != nil {
		return ir.BlockType{}, err
	}
	if b == wasm.BlockEmpty {
		_, _ = r.ReadByte()
		return ir.BlockType{Kind: ir.BlockEmpty}, nil
	}
	if isValTypeByte(b) {
		v, err := readValType(r)
		if err != nil {
			return ir.BlockType{}, err
		}
		return ir.BlockType{Kind: ir.BlockValue, Val: v}, nil
	}
	idx, err := r.ReadS33()
	if err != nil {
		return ir.BlockType{}, err
	}
	if idx < 0 {
		return ir.BlockType{}, fmt.Errorf("invalid block type %d", idx)
	}
	return ir.BlockType{Kind: ir.BlockFunc, Index: uint32(idx)}, nil
}

func readTryTable(r *binary.Reader) (ir.TryTable, error) {
	block, err := readBlockType(r)
	if err != nil {
		return ir.TryTable{}, err
	}
	n, err := r.ReadU32()
	if err != nil {
		return ir.TryTable{}, err
	}
	if int(n) > r.Len() {
		return ir.TryTable{}, fmt.Errorf("try_table with %d catches exceeds remaining input", n)
	}
	tt := ir.TryTable{Block: block, Catches: make([]ir.Catch, n)}
	for i := range tt.Catches {
		kind, err := r.ReadByte()
		if err != nil {
			return ir.TryTable{}, err
		}
		c := &tt.Catches[i]
		switch kind {
		case wasm.CatchTag:
			c.Kind = ir.CatchOne
		case wasm.CatchTagRef:
			c.Kind = ir.CatchOneRef
		case wasm.CatchAll:
			c.Kind = ir.CatchAll
		case wasm.CatchAllRef:
			c.Kind = ir.CatchAllRef
		default:
			return ir.TryTable{}, fmt.Errorf("invalid catch kind 0x%02x", kind)
		}
		if kind == wasm.CatchTag || kind == wasm.CatchTagRef {
			if c.Tag, err = r.ReadU32(); err != nil {
				return ir.TryTable{}, err
			}
		}
		if c.Label, err = r.ReadU32(); err != nil {
			return ir.TryTable{}, err
		}
	}
	return tt, nil
}

func readBrOnCast(r *binary.Reader) (ir.BrOnCast, error) {
	flags, err := r.ReadByte()
	if err != nil {
		return ir.BrOnCast{}, err
	}
	if flags&^(wasm.CastSrcNullable|wasm.CastDstNullable) != 0 {
		return ir.BrOnCast{}, fmt.Errorf("invalid cast flags 0x%02x", flags)
	}
	label, err := r.ReadU32()
	if err != nil {
		return ir.BrOnCast{}, err
	}
	from, err := readHeapType(r)
	if err != nil {
		return ir.BrOnCast{}, err
	}
	to, err := readHeapType(r)
	if err != nil {
		return ir.BrOnCast{}, err
	}
	return ir.BrOnCast{
		Label: label,
		From:  ir.RefType{Heap: from, Nullable: flags&wasm.CastSrcNullable != 0},
		To:    ir.RefType{Heap: to, Nullable: flags&wasm.CastDstNullable != 0},
	}, nil
}

// readConstExpr decodes an initializer up to and including its end.
func readConstExpr(r *binary.Reader) (ir.ConstExpr, error) {
	var expr ir.ConstExpr
	for {
		op, err := readOperator(r)
		if err != nil {
			return nil, err
		}
		expr = append(expr, op)
		if op.Code == ir.OpEnd {
			return expr, nil
		}
	}
}
