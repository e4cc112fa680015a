// Package parser validates and decodes binary WebAssembly core modules into
// the ir model.
//
// Parsing is all or nothing. The validator runs over the whole input
// first; any failure, malformed section or unsupported payload aborts with
// a single *errors.Error and no module. A rejection caused by a proposal
// the validator cannot check is reported as errors.ErrUnchecked; pass a
// validator that supports it, or validate.Nop for trusted input.
package parser

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/wippyai/wasmarin/errors"
	"github.com/wippyai/wasmarin/features"
	"github.com/wippyai/wasmarin/internal/binary"
	"github.com/wippyai/wasmarin/ir"
	"github.com/wippyai/wasmarin/validate"
	"github.com/wippyai/wasmarin/wasm"
)

// Encoding is the kind of binary announced by the header.
type Encoding uint8

const (
	EncodingModule Encoding = iota
	EncodingComponent
)

func (e Encoding) String() string {
	if e == EncodingComponent {
		return "component"
	}
	return "module"
}

// Header is the preamble of a binary. Start and End delimit it in the
// input.
type Header struct {
	Version  uint16
	Encoding Encoding
	Start    int
	End      int
}

// ReadHeader decodes the magic and version of data.
func ReadHeader(data []byte) (Header, error) {
	r := binary.NewReader(data)
	magic, err := r.ReadU32LE()
	if err != nil {
		return Header{}, errors.Decode("header", r.Position(), err)
	}
	if magic != wasm.Magic {
		return Header{}, errors.New(errors.PhaseDecode, errors.KindMalformed).
			Section("header").
			Range(0, 4).
			Detail("invalid magic 0x%08x", magic).
			Build()
	}
	word, err := r.ReadU32LE()
	if err != nil {
		return Header{}, errors.Decode("header", r.Position(), err)
	}
	h := Header{Version: uint16(word), End: r.Position()}
	if uint16(word>>16) == wasm.LayerComponent {
		h.Encoding = EncodingComponent
	}
	return h, nil
}

// Option configures a Parser.
type Option func(*Parser)

// WithValidator replaces the default wazero validator.
func WithValidator(v validate.Validator) Option {
	return func(p *Parser) {
		p.validator = v
	}
}

// WithLogger sets the logger used by one Parser instead of the package
// logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Parser) {
		p.log = l
	}
}

// Parser decodes modules under a fixed feature set. A Parser records the
// header of the last input, so use one per goroutine.
type Parser struct {
	validator validate.Validator
	log       *zap.Logger
	header    Header
	features  features.Set
}

// New returns a Parser accepting the proposals in fs.
func New(fs features.Set, opts ...Option) *Parser {
	p := &Parser{features: fs}
	for _, opt := range opts {
		opt(p)
	}
	if p.validator == nil {
		p.validator = validate.NewWazero()
	}
	if p.log == nil {
		p.log = Logger()
	}
	return p
}

// Features returns the feature set the parser was built with.
func (p *Parser) Features() features.Set {
	return p.features
}

// Header returns the header recorded by the last successful Parse.
func (p *Parser) Header() Header {
	return p.header
}

// Parse validates data and decodes it. The returned module borrows data
// segment and custom section bytes from data.
func (p *Parser) Parse(data []byte) (*ir.Module, error) {
	start := time.Now()

	flags := p.features.Flags()
	if err := p.validator.Validate(data, flags); err != nil {
		p.log.Debug("validation failed", zap.Error(err))
		return nil, p.validationError(data, flags, err)
	}

	h, err := ReadHeader(data)
	if err != nil {
		return nil, err
	}
	if h.Encoding == EncodingComponent {
		return nil, errors.New(errors.PhaseDecode, errors.KindUnsupported).
			Section("header").
			Range(h.Start, h.End).
			Detail("component encoding (version %d) is not supported", h.Version).
			Build()
	}
	if uint32(h.Version) != wasm.Version {
		return nil, errors.New(errors.PhaseDecode, errors.KindMalformed).
			Section("header").
			Range(h.Start, h.End).
			Detail("unsupported version %d", h.Version).
			Build()
	}

	m, err := decodeSections(data, h.End)
	if err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, errors.Decode("module", len(data), err)
	}

	p.header = h
	p.log.Debug("parsed module",
		zap.Int("bytes", len(data)),
		zap.Int("types", m.NumTypes()),
		zap.Int("imports", len(m.Imports)),
		zap.Int("functions", len(m.Functions)),
		zap.Int("globals", len(m.Globals)),
		zap.Int("exports", len(m.Exports)),
		zap.Int("custom_sections", len(m.CustomSections)),
		zap.Duration("elapsed", time.Since(start)))
	return m, nil
}

// validationError classifies a validator rejection. When the validator
// declares proposals it cannot check and the module decodes while relying
// on some of them, the rejection is an ErrUnchecked naming them rather
// than an ErrValidation.
func (p *Parser) validationError(data []byte, flags features.Flags, err error) error {
	cause := err
	var verr *errors.Error
	if stderrors.As(err, &verr) && stderrors.Is(verr, errors.ErrValidation) && verr.Cause != nil {
		cause = verr.Cause
	} else if !stderrors.Is(err, errors.ErrValidation) {
		err = errors.Validation(err)
	}

	c, ok := p.validator.(validate.Checker)
	if !ok {
		return err
	}
	unchecked := c.Unchecked(flags)
	if len(unchecked) == 0 {
		return err
	}
	h, herr := ReadHeader(data)
	if herr != nil || h.Encoding != EncodingModule || uint32(h.Version) != wasm.Version {
		return err
	}
	m, derr := decodeSections(data, h.End)
	if derr != nil {
		return err
	}
	used := usedProposals(m)
	var names []string
	for _, name := range unchecked {
		if used[name] {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return err
	}
	p.log.Debug("module uses proposals the validator cannot check", zap.Strings("proposals", names))
	return errors.Unchecked(names, cause)
}

// ParseFile reads and parses a binary module from disk.
func (p *Parser) ParseFile(path string) (*ir.Module, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New(errors.PhaseLoad, errors.KindNotFound).
			Path(path).
			Detail("read module").
			Cause(err).
			Build()
	}
	return p.Parse(data)
}

type sectionParser func(*binary.Reader, *ir.Module) error

var sectionParsers = map[byte]sectionParser{
	wasm.SectionCustom:   parseCustomSection,
	wasm.SectionType:     parseTypeSection,
	wasm.SectionImport:   parseImportSection,
	wasm.SectionFunction: parseFunctionSection,
	wasm.SectionTable:    parseTableSection,
	wasm.SectionMemory:   parseMemorySection,
	wasm.SectionTag:      parseTagSection,
	wasm.SectionGlobal:   parseGlobalSection,
	wasm.SectionExport:   parseExportSection,
	wasm.SectionStart:    parseStartSection,
	wasm.SectionElement:  parseElementSection,
	wasm.SectionCode:     parseCodeSection,
	wasm.SectionData:     parseDataSection,
}

func decodeSections(data []byte, offset int) (*ir.Module, error) {
	r := binary.NewReader(data)
	if _, err := r.ReadBytes(offset); err != nil {
		return nil, errors.Decode("header", 0, err)
	}

	m := &ir.Module{}
	lastOrder := 0
	for !r.EOF() {
		start := r.Position()
		id, _ := r.ReadByte()
		size, err := r.ReadU32()
		if err != nil {
			return nil, decodeError("section header", r, err)
		}
		sr, err := r.Sub(int(size))
		if err != nil {
			return nil, decodeError(wasm.SectionName(id), r, err)
		}
		end := r.Position()

		parse, ok := sectionParsers[id]
		if !ok {
			// data count and unknown ids
			return nil, errors.UnsupportedSection(id, start, end)
		}

		if id != wasm.SectionCustom {
			order := wasm.SectionOrder(id)
			if order <= lastOrder {
				return nil, errors.New(errors.PhaseDecode, errors.KindMalformed).
					Section(wasm.SectionName(id)).
					Range(start, end).
					Detail("section out of order or duplicated").
					Build()
			}
			lastOrder = order
		}

		if err := parse(sr, m); err != nil {
			return nil, decodeError(wasm.SectionName(id), sr, err)
		}
		if !sr.EOF() {
			return nil, errors.New(errors.PhaseDecode, errors.KindMalformed).
				Section(wasm.SectionName(id)).
				Range(sr.Position(), end).
				Detail("%d unread bytes at end of section", sr.Len()).
				Build()
		}
	}
	return m, nil
}

func decodeError(section string, r *binary.Reader, err error) *errors.Error {
	offset := r.Position()
	var pe *binary.ParseError
	if stderrors.As(err, &pe) {
		offset = pe.Position
	}
	if stderrors.Is(err, io.EOF) && !stderrors.Is(err, io.ErrUnexpectedEOF) {
		err = fmt.Errorf("%w: %w", io.ErrUnexpectedEOF, err)
	}
	return errors.Decode(section, offset, err)
}
