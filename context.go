// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package bytelayout

import (
	"encoding/binary"
	"math"
	"math/big"
	"unicode/utf16"
	"unicode/utf8"
)

// Context is an immutable view over a byte slice plus a current
// offset. It never mutates the underlying bytes and never copies them;
// At returns a new Context sharing the same backing slice, the way
// pe.File's methods all index into the one mmapped pe.data buffer.
type Context struct {
	bytes  []byte
	offset uint64
}

// New returns a Context over bytes at offset 0.
func New(bytes []byte) Context {
	return Context{bytes: bytes}
}

// NewAt returns a Context over bytes starting at the given offset.
func NewAt(bytes []byte, offset uint64) Context {
	return Context{bytes: bytes, offset: offset}
}

// At returns a new Context sharing this Context's bytes, repositioned
// to offset.
func (c Context) At(offset uint64) Context {
	return Context{bytes: c.bytes, offset: offset}
}

// Offset returns the Context's current offset.
func (c Context) Offset() uint64 {
	return c.offset
}

// Len returns the total length of the backing buffer.
func (c Context) Len() uint64 {
	return uint64(len(c.bytes))
}

// Remaining returns the number of bytes available from the current
// offset to the end of the buffer.
func (c Context) Remaining() uint64 {
	if c.offset >= c.Len() {
		return 0
	}
	return c.Len() - c.offset
}

// Bytes returns the count bytes starting at the current offset, or
// ErrReadOutOfRange if they don't fit in the buffer.
func (c Context) Bytes(count uint64) ([]byte, error) {
	if c.offset+count > c.Len() || c.offset+count < c.offset {
		return nil, ErrReadOutOfRange
	}
	return c.bytes[c.offset : c.offset+count], nil
}

func byteOrder(e Endian) binary.ByteOrder {
	if e == Little {
		return binary.LittleEndian
	}
	return binary.BigEndian
}

// ReadU8 reads one unsigned byte. Endianness is not meaningful for a
// single byte.
func (c Context) ReadU8() (uint8, error) {
	b, err := c.Bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// ReadI8 reads one signed byte.
func (c Context) ReadI8() (int8, error) {
	v, err := c.ReadU8()
	return int8(v), err
}

// ReadU16 reads a 16-bit unsigned integer under the given endian.
func (c Context) ReadU16(e Endian) (uint16, error) {
	b, err := c.Bytes(2)
	if err != nil {
		return 0, err
	}
	return byteOrder(e).Uint16(b), nil
}

// ReadI16 reads a 16-bit signed (two's-complement) integer.
func (c Context) ReadI16(e Endian) (int16, error) {
	v, err := c.ReadU16(e)
	return int16(v), err
}

// ReadU24 reads a 3-byte unsigned integer into a 32-bit carrier with
// the top 8 bits zero. Big-endian "b0 b1 b2" -> (b0<<16)|(b1<<8)|b2;
// little-endian "b0 b1 b2" -> b0|(b1<<8)|(b2<<16).
func (c Context) ReadU24(e Endian) (uint32, error) {
	b, err := c.Bytes(3)
	if err != nil {
		return 0, err
	}
	if e == Big {
		return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16, nil
}

// ReadU32 reads a 32-bit unsigned integer.
func (c Context) ReadU32(e Endian) (uint32, error) {
	b, err := c.Bytes(4)
	if err != nil {
		return 0, err
	}
	return byteOrder(e).Uint32(b), nil
}

// ReadI32 reads a 32-bit signed (two's-complement) integer.
func (c Context) ReadI32(e Endian) (int32, error) {
	v, err := c.ReadU32(e)
	return int32(v), err
}

// ReadU64 reads a 64-bit unsigned integer.
func (c Context) ReadU64(e Endian) (uint64, error) {
	b, err := c.Bytes(8)
	if err != nil {
		return 0, err
	}
	return byteOrder(e).Uint64(b), nil
}

// ReadI64 reads a 64-bit signed (two's-complement) integer.
func (c Context) ReadI64(e Endian) (int64, error) {
	v, err := c.ReadU64(e)
	return int64(v), err
}

// ReadU128 reads a 128-bit unsigned integer into a big.Int, applying
// endianness byte-wise across the 16-byte run.
func (c Context) ReadU128(e Endian) (*big.Int, error) {
	b, err := c.Bytes(16)
	if err != nil {
		return nil, err
	}
	buf := make([]byte, 16)
	copy(buf, b)
	if e == Little {
		for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
			buf[i], buf[j] = buf[j], buf[i]
		}
	}
	return new(big.Int).SetBytes(buf), nil
}

// ReadI128 reads a 128-bit signed (two's-complement) integer.
func (c Context) ReadI128(e Endian) (*big.Int, error) {
	u, err := c.ReadU128(e)
	if err != nil {
		return nil, err
	}
	signBit := new(big.Int).Rsh(u, 127)
	if signBit.Sign() == 0 {
		return u, nil
	}
	mod := new(big.Int).Lsh(big.NewInt(1), 128)
	return new(big.Int).Sub(u, mod), nil
}

// ReadF32 reads an IEEE-754 binary32 float, endian applied to the
// underlying bit pattern.
func (c Context) ReadF32(e Endian) (float32, error) {
	v, err := c.ReadU32(e)
	if err != nil {
		return 0, err
	}
	return math.Float32frombits(v), nil
}

// ReadF64 reads an IEEE-754 binary64 float, endian applied to the
// underlying bit pattern.
func (c Context) ReadF64(e Endian) (float64, error) {
	v, err := c.ReadU64(e)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(v), nil
}

// ReadASCII reads one byte as a permissive Latin-1-style code point:
// 0x00-0x7F is the ASCII code point, 0x80-0xFF maps to the same code
// point. Never fails on high bytes.
func (c Context) ReadASCII() (rune, int, error) {
	b, err := c.ReadU8()
	if err != nil {
		return 0, 0, err
	}
	return rune(b), 1, nil
}

// ReadUTF8 decodes one UTF-8 code point, returning the rune and the
// number of bytes it consumed.
func (c Context) ReadUTF8() (rune, int, error) {
	// utf8.DecodeRune wants up to utf8.UTFMax bytes available; hand it
	// whatever remains (it tolerates a short tail, reporting RuneError).
	avail := c.Remaining()
	if avail == 0 {
		return 0, 0, ErrReadOutOfRange
	}
	n := avail
	if n > utf8.UTFMax {
		n = utf8.UTFMax
	}
	b, err := c.Bytes(n)
	if err != nil {
		return 0, 0, err
	}
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size <= 1 {
		return 0, 0, ErrInvalidEncoding
	}
	return r, size, nil
}

// ReadUTF16 decodes one UTF-16 code unit under the given endian. If it
// is a high surrogate, the following unit is consumed as its low
// surrogate pair, producing a supplementary code point (byte length 4);
// otherwise byte length is 2. Fails on a lone low surrogate or a
// truncated pair.
func (c Context) ReadUTF16(e Endian) (rune, int, error) {
	first, err := c.ReadU16(e)
	if err != nil {
		return 0, 0, err
	}

	switch {
	case utf16.IsSurrogate(rune(first)):
		// utf16.IsSurrogate is true for both halves of a pair; decide
		// which half we have by range.
		if first >= 0xDC00 {
			// lone low surrogate
			return 0, 0, ErrInvalidEncoding
		}
		second, err := c.At(c.offset + 2).ReadU16(e)
		if err != nil {
			return 0, 0, ErrInvalidEncoding
		}
		r := utf16.DecodeRune(rune(first), rune(second))
		if r == utf8.RuneError {
			return 0, 0, ErrInvalidEncoding
		}
		return r, 4, nil
	default:
		return rune(first), 2, nil
	}
}

// ReadUTF32 reads a 4-byte UTF-32 code point, failing if the value is
// not a valid Unicode scalar (greater than U+10FFFF, or within the
// surrogate range U+D800-U+DFFF).
func (c Context) ReadUTF32(e Endian) (rune, error) {
	v, err := c.ReadU32(e)
	if err != nil {
		return 0, err
	}
	r := rune(v)
	if v > 0x10FFFF || (v >= 0xD800 && v <= 0xDFFF) {
		return 0, ErrInvalidEncoding
	}
	return r, nil
}
