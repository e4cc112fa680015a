// Package encoder serializes an ir.Module to the binary format, optionally
// metering every function body on the way out.
//
// Encoding a module produced by the parser always succeeds. A hand-built
// module holding a value with no wire form makes Encode panic with an
// *errors.Error of PhaseEncode and KindUnsupported.
package encoder

import (
	"time"

	"go.uber.org/zap"

	"github.com/wippyai/wasmarin/internal/binary"
	"github.com/wippyai/wasmarin/ir"
	"github.com/wippyai/wasmarin/metering"
	"github.com/wippyai/wasmarin/opmap"
	"github.com/wippyai/wasmarin/wasm"
)

// Option configures an Encoder.
type Option func(*Encoder)

// WithMetering enables metering with cfg.
func WithMetering(cfg metering.Config) Option {
	return func(e *Encoder) {
		e.metering = &cfg
	}
}

// WithLogger sets the logger used by one Encoder instead of the package
// logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Encoder) {
		e.log = l
	}
}

// Encoder holds immutable encoding options and is safe for concurrent use.
type Encoder struct {
	metering *metering.Config
	log      *zap.Logger
}

// New returns an Encoder. Without options it re-encodes modules unchanged.
func New(opts ...Option) *Encoder {
	e := &Encoder{}
	for _, opt := range opts {
		opt(e)
	}
	if e.log == nil {
		e.log = Logger()
	}
	return e
}

// Metered reports whether the encoder instruments function bodies.
func (e *Encoder) Metered() bool {
	return e.metering != nil
}

// Info describes one encoding.
type Info struct {
	// Metering is nil when metering is disabled.
	Metering *metering.Injected
	Size     int
}

// Encode serializes m. m is not modified.
func (e *Encoder) Encode(m *ir.Module) []byte {
	out, _ := e.EncodeInfo(m)
	return out
}

// EncodeInfo serializes m and reports what was injected. With metering on
// it panics with the error of metering.Config.Check when m already has
// the metering export; callers holding untrusted modules check first.
func (e *Encoder) EncodeInfo(m *ir.Module) ([]byte, Info) {
	start := time.Now()
	s := &state{module: m, payload: binary.NewWriter(), body: binary.NewWriter()}
	if e.metering != nil {
		if err := e.metering.Check(m); err != nil {
			panic(err)
		}
		s.meter = metering.New(*e.metering, ir.NewIndexSpaces(m))
	}

	w := binary.NewWriter()
	w.WriteU32LE(wasm.Magic)
	w.WriteU32LE(wasm.Version)

	for _, sec := range sectionWriters {
		s.payload.Reset()
		if sec.write(s) {
			w.Section(sec.id, s.payload.Bytes())
		}
	}
	for _, cs := range m.CustomSections {
		s.payload.Reset()
		s.payload.WriteName(cs.Name)
		s.payload.WriteBytes(cs.Data)
		w.Section(wasm.SectionCustom, s.payload.Bytes())
	}

	out := w.Bytes()
	info := Info{Size: len(out)}
	fields := []zap.Field{
		zap.Int("bytes", len(out)),
		zap.Int("functions", len(m.Code)),
		zap.Duration("elapsed", time.Since(start)),
	}
	if s.meter != nil {
		inj := s.meter.Injected()
		info.Metering = &inj
		fields = append(fields,
			zap.Uint32("metering_global", inj.GlobalIndex),
			zap.String("metering_export", inj.ExportName))
	}
	e.log.Debug("encoded module", fields...)
	return out, info
}

type state struct {
	module  *ir.Module
	meter   *metering.Meter
	payload *binary.Writer
	body    *binary.Writer
}

// sectionWriter fills s.payload and reports whether the section is
// emitted.
type sectionWriter struct {
	write func(s *state) bool
	id    byte
}

// Canonical order. Data count precedes code as the binary format requires.
var sectionWriters = []sectionWriter{
	{writeTypes, wasm.SectionType},
	{writeImports, wasm.SectionImport},
	{writeFunctions, wasm.SectionFunction},
	{writeTables, wasm.SectionTable},
	{writeMemories, wasm.SectionMemory},
	{writeTags, wasm.SectionTag},
	{writeGlobals, wasm.SectionGlobal},
	{writeExports, wasm.SectionExport},
	{writeStart, wasm.SectionStart},
	{writeElements, wasm.SectionElement},
	{writeDataCount, wasm.SectionDataCount},
	{writeCode, wasm.SectionCode},
	{writeData, wasm.SectionData},
}

func writeConstExpr(w *binary.Writer, expr ir.ConstExpr) {
	for _, op := range expr.Body() {
		opmap.Instruction(op).AppendTo(w)
	}
	w.Byte(wasm.OpEnd)
}

func writeTypes(s *state) bool {
	groups := s.module.TypeGroups
	if len(groups) == 0 {
		return false
	}
	bases := s.module.GroupBase()
	w := s.payload
	w.WriteU32(uint32(len(groups)))
	for i, g := range groups {
		opmap.RecGroup(g, bases[i]).AppendTo(w)
	}
	return true
}

func writeImports(s *state) bool {
	imports := s.module.Imports
	if len(imports) == 0 {
		return false
	}
	w := s.payload
	w.WriteU32(uint32(len(imports)))
	for _, imp := range imports {
		w.WriteName(imp.Module)
		w.WriteName(imp.Name)
		w.Byte(opmap.ExternalKind(imp.Desc.Kind))
		switch imp.Desc.Kind {
		case ir.ExternFunc:
			w.WriteU32(imp.Desc.Func)
		case ir.ExternTable:
			writeTableType(w, *imp.Desc.Table)
		case ir.ExternMemory:
			opmap.Limits(imp.Desc.Memory.Limits).AppendTo(w)
		case ir.ExternGlobal:
			opmap.GlobalType(*imp.Desc.Global).AppendTo(w)
		case ir.ExternTag:
			writeTagType(w, *imp.Desc.Tag)
		}
	}
	return true
}

func writeFunctions(s *state) bool {
	funcs := s.module.Functions
	if len(funcs) == 0 {
		return false
	}
	w := s.payload
	w.WriteU32(uint32(len(funcs)))
	for _, idx := range funcs {
		w.WriteU32(idx)
	}
	return true
}

func writeTableType(w *binary.Writer, t ir.TableType) {
	opmap.RefType(t.Elem, 0).AppendTo(w)
	opmap.Limits(t.Limits).AppendTo(w)
}

func writeTables(s *state) bool {
	tables := s.module.Tables
	if len(tables) == 0 {
		return false
	}
	w := s.payload
	w.WriteU32(uint32(len(tables)))
	for _, t := range tables {
		if t.Init == nil {
			writeTableType(w, t.Type)
			continue
		}
		w.Byte(wasm.TableInitPrefix)
		w.Byte(0x00)
		writeTableType(w, t.Type)
		writeConstExpr(w, t.Init)
	}
	return true
}

func writeMemories(s *state) bool {
	mems := s.module.Memories
	if len(mems) == 0 {
		return false
	}
	w := s.payload
	w.WriteU32(uint32(len(mems)))
	for _, mem := range mems {
		opmap.Limits(mem.Limits).AppendTo(w)
	}
	return true
}

func writeTagType(w *binary.Writer, t ir.TagType) {
	w.Byte(t.Attribute)
	w.WriteU32(t.Type)
}

func writeTags(s *state) bool {
	tags := s.module.Tags
	if len(tags) == 0 {
		return false
	}
	w := s.payload
	w.WriteU32(uint32(len(tags)))
	for _, t := range tags {
		writeTagType(w, t)
	}
	return true
}

func writeGlobals(s *state) bool {
	globals := s.module.Globals
	if s.meter != nil {
		globals = append(globals[:len(globals):len(globals)], s.meter.Global())
	}
	if len(globals) == 0 {
		return false
	}
	w := s.payload
	w.WriteU32(uint32(len(globals)))
	for _, g := range globals {
		opmap.GlobalType(g.Type).AppendTo(w)
		writeConstExpr(w, g.Init)
	}
	return true
}

func writeExports(s *state) bool {
	exports := s.module.Exports
	if s.meter != nil {
		exports = append(exports[:len(exports):len(exports)], s.meter.Export())
	}
	if len(exports) == 0 {
		return false
	}
	w := s.payload
	w.WriteU32(uint32(len(exports)))
	for _, exp := range exports {
		w.WriteName(exp.Name)
		w.Byte(opmap.ExternalKind(exp.Kind))
		w.WriteU32(exp.Index)
	}
	return true
}

func writeStart(s *state) bool {
	if s.module.Start == nil {
		return false
	}
	s.payload.WriteU32(*s.module.Start)
	return true
}

// elementFlags derives the canonical segment flags from content. Index
// lists use the elemkind forms; expression lists use the reftype forms,
// with flag 4 reserved for funcref segments on table 0.
func elementFlags(e *ir.Element) byte {
	var flags byte
	if e.Items == ir.ItemsExprs {
		flags |= wasm.ElemExpressions
	}
	switch e.Mode {
	case ir.SegmentPassive:
		flags |= wasm.ElemPassiveOrDeclared
	case ir.SegmentDeclared:
		flags |= wasm.ElemPassiveOrDeclared | wasm.ElemExplicitIndex
	case ir.SegmentActive:
		if e.Table != 0 || (e.Items == ir.ItemsExprs && e.Type != ir.FuncRef) {
			flags |= wasm.ElemExplicitIndex
		}
	}
	return flags
}

func writeElements(s *state) bool {
	elems := s.module.Elements
	if len(elems) == 0 {
		return false
	}
	w := s.payload
	w.WriteU32(uint32(len(elems)))
	for i := range elems {
		e := &elems[i]
		flags := elementFlags(e)
		w.WriteU32(uint32(flags))
		if e.Mode == ir.SegmentActive {
			if flags&wasm.ElemExplicitIndex != 0 {
				w.WriteU32(e.Table)
			}
			writeConstExpr(w, e.Offset)
		}
		if flags&(wasm.ElemPassiveOrDeclared|wasm.ElemExplicitIndex) != 0 {
			if e.Items == ir.ItemsExprs {
				opmap.RefType(e.Type, 0).AppendTo(w)
			} else {
				w.Byte(wasm.ElemKindFunc)
			}
		}
		w.WriteU32(uint32(e.Len()))
		if e.Items == ir.ItemsExprs {
			for _, expr := range e.Exprs {
				writeConstExpr(w, expr)
			}
			continue
		}
		for _, idx := range e.Funcs {
			w.WriteU32(idx)
		}
	}
	return true
}

func writeDataCount(s *state) bool {
	if s.module.DataCount == nil {
		return false
	}
	s.payload.WriteU32(*s.module.DataCount)
	return true
}

func writeCode(s *state) bool {
	code := s.module.Code
	if len(code) == 0 {
		return false
	}
	w := s.payload
	w.WriteU32(uint32(len(code)))
	for i := range code {
		s.body.Reset()
		writeBody(s.body, &code[i], s.meter)
		w.WriteU32(uint32(s.body.Len()))
		w.WriteBytes(s.body.Bytes())
	}
	return true
}

func writeBody(w *binary.Writer, body *ir.FunctionBody, meter *metering.Meter) {
	w.WriteU32(uint32(len(body.Locals)))
	for _, l := range body.Locals {
		w.WriteU32(l.Count)
		opmap.ValType(l.Type, 0).AppendTo(w)
	}
	ops := body.Operators
	if meter != nil {
		ops = meter.Instrument(ops)
	}
	for _, op := range ops {
		opmap.Instruction(op).AppendTo(w)
	}
}

func writeData(s *state) bool {
	data := s.module.Data
	if len(data) == 0 {
		return false
	}
	w := s.payload
	w.WriteU32(uint32(len(data)))
	for _, d := range data {
		switch {
		case d.Mode == ir.SegmentPassive:
			w.WriteU32(uint32(wasm.DataPassive))
		case d.Memory == 0:
			w.WriteU32(uint32(wasm.DataActive))
			writeConstExpr(w, d.Offset)
		default:
			w.WriteU32(uint32(wasm.DataActiveExplicit))
			w.WriteU32(d.Memory)
			writeConstExpr(w, d.Offset)
		}
		w.WriteU32(uint32(len(d.Init)))
		w.WriteBytes(d.Init)
	}
	return true
}
