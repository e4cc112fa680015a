package parser

import (
	"fmt"

	"github.com/wippyai/wasmarin/internal/binary"
	"github.com/wippyai/wasmarin/ir"
	"github.com/wippyai/wasmarin/wasm"
)

// Upper bound on declared locals per function, matching common engines.
const maxFunctionLocals = 50000

// readCount reads a vector length and rejects lengths that cannot fit in
// the remaining payload, so corrupt counts never drive large allocations.
func readCount(r *binary.Reader) (uint32, error) {
	n, err := r.ReadU32()
	if err != nil {
		return 0, err
	}
	if int(n) > r.Len() {
		return 0, fmt.Errorf("vector of %d entries exceeds %d remaining bytes", n, r.Len())
	}
	return n, nil
}

func parseCustomSection(r *binary.Reader, m *ir.Module) error {
	name, err := r.ReadName()
	if err != nil {
		return err
	}
	m.CustomSections = append(m.CustomSections, ir.CustomSection{
		Name: name,
		Data: r.ReadRemaining(),
	})
	return nil
}

func parseTypeSection(r *binary.Reader, m *ir.Module) error {
	count, err := readCount(r)
	if err != nil {
		return err
	}
	m.TypeGroups = make([]ir.RecGroup, count)
	for i := range m.TypeGroups {
		if m.TypeGroups[i], err = readRecGroup(r); err != nil {
			return fmt.Errorf("type group %d: %w", i, err)
		}
	}
	return nil
}

func parseImportSection(r *binary.Reader, m *ir.Module) error {
	count, err := readCount(r)
	if err != nil {
		return err
	}
	m.Imports = make([]ir.Import, count)
	for i := range m.Imports {
		imp := &m.Imports[i]
		if imp.Module, err = r.ReadName(); err != nil {
			return err
		}
		if imp.Name, err = r.ReadName(); err != nil {
			return err
		}
		kind, err := r.ReadByte()
		if err != nil {
			return err
		}

		switch kind {
		case wasm.KindFunc:
			imp.Desc.Kind = ir.ExternFunc
			imp.Desc.Func, err = r.ReadU32()
		case wasm.KindTable:
			imp.Desc.Kind = ir.ExternTable
			var t ir.TableType
			t, err = readTableType(r)
			imp.Desc.Table = &t
		case wasm.KindMemory:
			imp.Desc.Kind = ir.ExternMemory
			var l ir.Limits
			l, err = readLimits(r)
			imp.Desc.Memory = &ir.MemoryType{Limits: l}
		case wasm.KindGlobal:
			imp.Desc.Kind = ir.ExternGlobal
			var g ir.GlobalType
			g, err = readGlobalType(r)
			imp.Desc.Global = &g
		case wasm.KindTag:
			imp.Desc.Kind = ir.ExternTag
			var t ir.TagType
			t, err = readTagType(r)
			imp.Desc.Tag = &t
		default:
			return fmt.Errorf("import %d: unknown kind 0x%02x", i, kind)
		}
		if err != nil {
			return fmt.Errorf("import %d (%s.%s): %w", i, imp.Module, imp.Name, err)
		}
	}
	return nil
}

func parseFunctionSection(r *binary.Reader, m *ir.Module) error {
	count, err := readCount(r)
	if err != nil {
		return err
	}
	m.Functions = make([]uint32, count)
	for i := range m.Functions {
		if m.Functions[i], err = r.ReadU32(); err != nil {
			return err
		}
	}
	return nil
}

func parseTableSection(r *binary.Reader, m *ir.Module) error {
	count, err := readCount(r)
	if err != nil {
		return err
	}
	m.Tables = make([]ir.Table, count)
	for i := range m.Tables {
		t := &m.Tables[i]
		b, err := r.PeekByte()
		if err != nil {
			return err
		}
		if b != wasm.TableInitPrefix {
			if t.Type, err = readTableType(r); err != nil {
				return fmt.Errorf("table %d: %w", i, err)
			}
			continue
		}
		_, _ = r.ReadByte()
		zero, err := r.ReadByte()
		if err != nil {
			return err
		}
		if zero != 0x00 {
			return fmt.Errorf("table %d: expected 0x00 after 0x40, got 0x%02x", i, zero)
		}
		if t.Type, err = readTableType(r); err != nil {
			return fmt.Errorf("table %d: %w", i, err)
		}
		if t.Init, err = readConstExpr(r); err != nil {
			return fmt.Errorf("table %d init: %w", i, err)
		}
	}
	return nil
}

func parseMemorySection(r *binary.Reader, m *ir.Module) error {
	count, err := readCount(r)
	if err != nil {
		return err
	}
	m.Memories = make([]ir.MemoryType, count)
	for i := range m.Memories {
		if m.Memories[i].Limits, err = readLimits(r); err != nil {
			return fmt.Errorf("memory %d: %w", i, err)
		}
	}
	return nil
}

func parseTagSection(r *binary.Reader, m *ir.Module) error {
	count, err := readCount(r)
	if err != nil {
		return err
	}
	m.Tags = make([]ir.TagType, count)
	for i := range m.Tags {
		if m.Tags[i], err = readTagType(r); err != nil {
			return fmt.Errorf("tag %d: %w", i, err)
		}
	}
	return nil
}

func parseGlobalSection(r *binary.Reader, m *ir.Module) error {
	count, err := readCount(r)
	if err != nil {
		return err
	}
	m.Globals = make([]ir.Global, count)
	for i := range m.Globals {
		g := &m.Globals[i]
		if g.Type, err = readGlobalType(r); err != nil {
			return fmt.Errorf("global %d: %w", i, err)
		}
		if g.Init, err = readConstExpr(r); err != nil {
			return fmt.Errorf("global %d init: %w", i, err)
		}
	}
	return nil
}

func parseExportSection(r *binary.Reader, m *ir.Module) error {
	count, err := readCount(r)
	if err != nil {
		return err
	}
	m.Exports = make([]ir.Export, count)
	for i := range m.Exports {
		exp := &m.Exports[i]
		if exp.Name, err = r.ReadName(); err != nil {
			return err
		}
		kind, err := r.ReadByte()
		if err != nil {
			return err
		}
		if kind > wasm.KindTag {
			return fmt.Errorf("export %d (%s): invalid kind 0x%02x", i, exp.Name, kind)
		}
		exp.Kind = ir.ExternalKind(kind)
		if exp.Index, err = r.ReadU32(); err != nil {
			return err
		}
	}
	return nil
}

func parseStartSection(r *binary.Reader, m *ir.Module) error {
	idx, err := r.ReadU32()
	if err != nil {
		return err
	}
	m.Start = &idx
	return nil
}

func parseElementSection(r *binary.Reader, m *ir.Module) error {
	count, err := readCount(r)
	if err != nil {
		return err
	}
	m.Elements = make([]ir.Element, count)
	for i := range m.Elements {
		if err := readElement(r, &m.Elements[i]); err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
	}
	return nil
}

// readElement decodes one segment. The flag bits select passive or
// declared (bit 0), an explicit table index or declared (bit 1), and
// expression items (bit 2).
func readElement(r *binary.Reader, e *ir.Element) error {
	flags, err := r.ReadU32()
	if err != nil {
		return err
	}
	if flags > 7 {
		return fmt.Errorf("invalid segment flags %d", flags)
	}
	passiveOrDeclared := byte(flags)&wasm.ElemPassiveOrDeclared != 0
	explicit := byte(flags)&wasm.ElemExplicitIndex != 0

	switch {
	case !passiveOrDeclared:
		e.Mode = ir.SegmentActive
	case explicit:
		e.Mode = ir.SegmentDeclared
	default:
		e.Mode = ir.SegmentPassive
	}
	if byte(flags)&wasm.ElemExpressions != 0 {
		e.Items = ir.ItemsExprs
	}

	if e.Mode == ir.SegmentActive {
		if explicit {
			if e.Table, err = r.ReadU32(); err != nil {
				return err
			}
		}
		if e.Offset, err = readConstExpr(r); err != nil {
			return fmt.Errorf("offset: %w", err)
		}
	}

	e.Type = ir.FuncRef
	if flags&0x03 != 0 {
		if e.Items == ir.ItemsExprs {
			if e.Type, err = readRefType(r); err != nil {
				return err
			}
		} else {
			kind, err := r.ReadByte()
			if err != nil {
				return err
			}
			if kind != wasm.ElemKindFunc {
				return fmt.Errorf("invalid element kind 0x%02x", kind)
			}
		}
	}

	n, err := readCount(r)
	if err != nil {
		return err
	}
	if e.Items == ir.ItemsExprs {
		e.Exprs = make([]ir.ConstExpr, n)
		for j := range e.Exprs {
			if e.Exprs[j], err = readConstExpr(r); err != nil {
				return fmt.Errorf("item %d: %w", j, err)
			}
		}
		return nil
	}
	e.Funcs = make([]uint32, n)
	for j := range e.Funcs {
		if e.Funcs[j], err = r.ReadU32(); err != nil {
			return err
		}
	}
	return nil
}

func parseCodeSection(r *binary.Reader, m *ir.Module) error {
	count, err := readCount(r)
	if err != nil {
		return err
	}
	m.Code = make([]ir.FunctionBody, count)
	for i := range m.Code {
		size, err := r.ReadU32()
		if err != nil {
			return err
		}
		br, err := r.Sub(int(size))
		if err != nil {
			return fmt.Errorf("function %d body: %w", i, err)
		}
		if err := readFunctionBody(br, &m.Code[i]); err != nil {
			return fmt.Errorf("function %d body: %w", i, err)
		}
	}
	return nil
}

func readFunctionBody(r *binary.Reader, body *ir.FunctionBody) error {
	groups, err := readCount(r)
	if err != nil {
		return err
	}
	body.Locals = make([]ir.Local, groups)
	var total uint64
	for i := range body.Locals {
		l := &body.Locals[i]
		if l.Count, err = r.ReadU32(); err != nil {
			return err
		}
		total += uint64(l.Count)
		if total > maxFunctionLocals {
			return fmt.Errorf("too many locals: %d", total)
		}
		if l.Type, err = readValType(r); err != nil {
			return err
		}
	}

	body.Operators = make([]ir.Operator, 0, r.Len()/2)
	depth := 0
	for {
		if r.EOF() {
			return fmt.Errorf("missing end of function")
		}
		op, err := readOperator(r)
		if err != nil {
			return err
		}
		body.Operators = append(body.Operators, op)
		switch op.Code {
		case ir.OpBlock, ir.OpLoop, ir.OpIf, ir.OpTry, ir.OpTryTable:
			depth++
		case ir.OpEnd:
			if depth == 0 {
				if !r.EOF() {
					return fmt.Errorf("%d trailing bytes after end of function", r.Len())
				}
				return nil
			}
			depth--
		case ir.OpDelegate:
			// delegate closes its try block
			depth--
		}
	}
}

func parseDataSection(r *binary.Reader, m *ir.Module) error {
	count, err := readCount(r)
	if err != nil {
		return err
	}
	m.Data = make([]ir.DataSegment, count)
	for i := range m.Data {
		d := &m.Data[i]
		flags, err := r.ReadU32()
		if err != nil {
			return err
		}
		if flags > 2 {
			return fmt.Errorf("data segment %d: invalid flags %d", i, flags)
		}
		switch byte(flags) {
		case wasm.DataActive:
			d.Mode = ir.SegmentActive
		case wasm.DataPassive:
			d.Mode = ir.SegmentPassive
		case wasm.DataActiveExplicit:
			d.Mode = ir.SegmentActive
			if d.Memory, err = r.ReadU32(); err != nil {
				return err
			}
		}
		if d.Mode == ir.SegmentActive {
			if d.Offset, err = readConstExpr(r); err != nil {
				return fmt.Errorf("data segment %d offset: %w", i, err)
			}
		}
		size, err := r.ReadU32()
		if err != nil {
			return err
		}
		if d.Init, err = r.ReadBytes(int(size)); err != nil {
			return fmt.Errorf("data segment %d: %w", i, err)
		}
	}
	return nil
}
