package binary

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"
)

// Reader errors.
var (
	ErrOverflow    = errors.New("leb128: overflow")
	ErrInvalidUTF8 = errors.New("invalid UTF-8 in name")
)

// Reader decodes WASM primitives from a byte slice. Slices it returns alias
// the input; callers that mutate them must copy first.
type Reader struct {
	data []byte
	pos  int
	base int
}

// NewReader creates a Reader over data. Positions start at zero.
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Position returns the absolute byte position in the outermost input.
func (r *Reader) Position() int {
	return r.base + r.pos
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.data) - r.pos
}

// EOF reports whether every byte has been consumed.
func (r *Reader) EOF() bool {
	return r.pos >= len(r.data)
}

// Sub consumes the next n bytes and returns a Reader over them that keeps
// reporting absolute positions.
func (r *Reader) Sub(n int) (*Reader, error) {
	start := r.pos
	data, err := r.ReadBytes(n)
	if err != nil {
		return nil, err
	}
	return &Reader{data: data, base: r.base + start}, nil
}

// ReadByte reads a single byte and advances the position.
func (r *Reader) ReadByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	b := r.data[r.pos]
	r.pos++
	return b, nil
}

// PeekByte returns the next byte without consuming it.
func (r *Reader) PeekByte() (byte, error) {
	if r.pos >= len(r.data) {
		return 0, io.EOF
	}
	return r.data[r.pos], nil
}

// ReadBytes returns the next n bytes without copying.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > len(r.data)-r.pos {
		return nil, r.wrapError(io.ErrUnexpectedEOF)
	}
	b := r.data[r.pos : r.pos+n : r.pos+n]
	r.pos += n
	return b, nil
}

// ReadRemaining returns all unread bytes without copying.
func (r *Reader) ReadRemaining() []byte {
	b := r.data[r.pos:]
	r.pos = len(r.data)
	return b
}

func (r *Reader) readUnsigned(bits uint) (uint64, error) {
	var result uint64
	var shift uint
	for {
		b, err := r.ReadByte()
		if err != nil {
			return 0, r.wrapError(io.ErrUnexpectedEOF)
		}
		if shift+7 > bits && b>>(bits-shift) != 0 {
			// Bits past the target width must be zero.
			return 0, r.wrapError(ErrOverflow)
		}
		result |= uint64(b&0x7f) << shift
		if b&0x80 == 0 {
			return result, nil
		}
		shift += 7
		if shift >= bits {
			return 0, r.wrapError(ErrOverflow)
		}
	}
}

func (r *Reader) readSigned(bits uint) (int64, error) {
	var result int64
	var shift uint
	var b byte
	for {
		var err error
		b, err = r.ReadByte()
		if err != nil {
			return 0, r.wrapError(io.ErrUnexpectedEOF)
		}
		result |= int64(b&0x7f) << shift
		shift += 7
		if b&0x80 == 0 {
			break
		}
		if shift >= bits {
			return 0, r.wrapError(ErrOverflow)
		}
	}
	if shift < 64 && b&0x40 != 0 {
		result |= ^int64(0) << shift
	}
	if bits < 64 {
		min := -(int64(1) << (bits - 1))
		max := int64(1)<<(bits-1) - 1
		if result < min || result > max {
			return 0, r.wrapError(ErrOverflow)
		}
	}
	return result, nil
}

// ReadU32 reads an unsigned LEB128 encoded uint32.
func (r *Reader) ReadU32() (uint32, error) {
	v, err := r.readUnsigned(32)
	return uint32(v), err
}

// ReadU64 reads an unsigned LEB128 encoded uint64.
func (r *Reader) ReadU64() (uint64, error) {
	return r.readUnsigned(64)
}

// ReadS32 reads a signed LEB128 encoded int32.
func (r *Reader) ReadS32() (int32, error) {
	v, err := r.readSigned(32)
	return int32(v), err
}

// ReadS33 reads the signed 33-bit LEB128 used by block and heap types.
func (r *Reader) ReadS33() (int64, error) {
	return r.readSigned(33)
}

// ReadS64 reads a signed LEB128 encoded int64.
func (r *Reader) ReadS64() (int64, error) {
	return r.readSigned(64)
}

// ReadF32Bits reads a little-endian IEEE 754 single without converting it,
// so NaN payloads survive.
func (r *Reader) ReadF32Bits() (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadF64Bits reads a little-endian IEEE 754 double as raw bits.
func (r *Reader) ReadF64Bits() (uint64, error) {
	b, err := r.ReadBytes(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// ReadU32LE reads a little-endian uint32 (fixed 4 bytes).
func (r *Reader) ReadU32LE() (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// ReadName reads a UTF-8 encoded name (length-prefixed byte sequence).
func (r *Reader) ReadName() (string, error) {
	length, err := r.ReadU32()
	if err != nil {
		return "", err
	}
	data, err := r.ReadBytes(int(length))
	if err != nil {
		return "", err
	}
	if !utf8.Valid(data) {
		return "", r.wrapError(ErrInvalidUTF8)
	}
	return string(data), nil
}

func (r *Reader) wrapError(err error) error {
	return &ParseError{Position: r.Position(), Err: err}
}

// ParseError represents an error during binary parsing with position information.
type ParseError struct {
	Err      error
	Section  string
	Position int
}

func (e *ParseError) Error() string {
	if e.Section != "" {
		return fmt.Sprintf("wasm: %s at position %d: %v", e.Section, e.Position, e.Err)
	}
	return fmt.Sprintf("wasm: at position %d: %v", e.Position, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// WrapError creates a ParseError with the current position.
func (r *Reader) WrapError(section string, err error) error {
	return &ParseError{
		Position: r.Position(),
		Section:  section,
		Err:      err,
	}
}
