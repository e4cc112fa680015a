package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wippyai/wasmarin/ir"
	"github.com/wippyai/wasmarin/parser"
)

func (a *app) inspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <module.wasm>",
		Short: "Describe the sections of a module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops, _ := cmd.Flags().GetBool("ops")
			return a.inspect(args[0], ops)
		},
	}
	cmd.Flags().Bool("ops", false, "print the operators of every function body")
	return cmd
}

func (a *app) inspect(path string, showOps bool) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}
	p := cfg.newParser(a.log)
	m, err := p.ParseFile(path)
	if err != nil {
		return err
	}
	describe(a.out, newStyles(isTerminal(a.out)), path, p.Header(), m, showOps)
	return nil
}

func describe(w io.Writer, st styles, path string, h parser.Header, m *ir.Module, showOps bool) {
	fmt.Fprintf(w, "%s %s (version %d)\n", st.title.Render("module"), path, h.Version)

	fmt.Fprintf(w, "\n%s %d in %d rec groups\n", st.heading.Render("types:"), m.NumTypes(), len(m.TypeGroups))

	if len(m.Imports) > 0 {
		fmt.Fprintf(w, "\n%s\n", st.heading.Render("imports:"))
		for _, imp := range m.Imports {
			fmt.Fprintf(w, "  %-6s %s %s\n", imp.Desc.Kind,
				st.name.Render(imp.Module+"."+imp.Name), st.typ.Render(importType(m, imp)))
		}
	}

	base := uint32(m.NumImportedFuncs())
	fmt.Fprintf(w, "\n%s %d defined\n", st.heading.Render("functions:"), len(m.Functions))
	for i := range m.Code {
		idx := base + uint32(i)
		body := &m.Code[i]
		fmt.Fprintf(w, "  [%d] %s locals=%d ops=%d\n", idx,
			st.typ.Render(signature(m.FuncType(idx))), body.NumLocals(), len(body.Operators))
		if showOps {
			depth := 2
			for _, op := range body.Operators {
				switch op.Code {
				case ir.OpEnd, ir.OpElse, ir.OpCatch, ir.OpCatchAll, ir.OpDelegate:
					depth--
				}
				fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", max(depth, 1)), op)
				switch op.Code {
				case ir.OpBlock, ir.OpLoop, ir.OpIf, ir.OpElse, ir.OpTry, ir.OpTryTable, ir.OpCatch, ir.OpCatchAll:
					depth++
				}
			}
		}
	}

	if n := len(m.Tables) + len(m.Memories) + len(m.Globals) + len(m.Tags); n > 0 {
		fmt.Fprintf(w, "\n%s\n", st.heading.Render("definitions:"))
		for _, t := range m.Tables {
			fmt.Fprintf(w, "  table  %s %s\n", t.Type.Elem, limits(t.Type.Limits))
		}
		for _, mem := range m.Memories {
			fmt.Fprintf(w, "  memory %s\n", limits(mem.Limits))
		}
		for _, g := range m.Globals {
			fmt.Fprintf(w, "  global %s\n", globalType(g.Type))
		}
		for _, tag := range m.Tags {
			fmt.Fprintf(w, "  tag    type %d\n", tag.Type)
		}
	}

	if len(m.Exports) > 0 {
		fmt.Fprintf(w, "\n%s\n", st.heading.Render("exports:"))
		for _, e := range m.Exports {
			fmt.Fprintf(w, "  %-6s %s -> %d\n", e.Kind, st.name.Render(e.Name), e.Index)
		}
	}

	if m.Start != nil {
		fmt.Fprintf(w, "\n%s %d\n", st.heading.Render("start:"), *m.Start)
	}
	if len(m.Elements) > 0 || len(m.Data) > 0 {
		fmt.Fprintf(w, "\n%s %d element, %d data\n", st.heading.Render("segments:"), len(m.Elements), len(m.Data))
	}

	if len(m.CustomSections) > 0 {
		fmt.Fprintf(w, "\n%s\n", st.heading.Render("custom sections:"))
		for _, cs := range m.CustomSections {
			fmt.Fprintf(w, "  %s (%d bytes)\n", cs.Name, len(cs.Data))
		}
	}
}

func signature(ft *ir.FuncType) string {
	if ft == nil {
		return "(?)"
	}
	return "(" + valTypes(ft.Params) + ") -> (" + valTypes(ft.Results) + ")"
}

func valTypes(types []ir.ValType) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

func limits(l ir.Limits) string {
	s := fmt.Sprintf("min=%d", l.Min)
	if l.Max != nil {
		s += fmt.Sprintf(" max=%d", *l.Max)
	}
	if l.Is64 {
		s += " i64"
	}
	if l.Shared {
		s += " shared"
	}
	return s
}

func globalType(g ir.GlobalType) string {
	s := g.Val.String()
	if g.Mutable {
		s = "mut " + s
	}
	if g.Shared {
		s = "shared " + s
	}
	return s
}

func importType(m *ir.Module, imp ir.Import) string {
	d := imp.Desc
	switch d.Kind {
	case ir.ExternFunc:
		if st := m.Type(d.Func); st != nil && st.Composite.Kind == ir.CompFunc {
			return signature(st.Composite.Func)
		}
		return fmt.Sprintf("type %d", d.Func)
	case ir.ExternTable:
		return d.Table.Elem.String() + " " + limits(d.Table.Limits)
	case ir.ExternMemory:
		return limits(d.Memory.Limits)
	case ir.ExternGlobal:
		return globalType(*d.Global)
	case ir.ExternTag:
		return fmt.Sprintf("type %d", d.Tag.Type)
	}
	return ""
}
