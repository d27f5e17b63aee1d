// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package datatype

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding/unicode"

	bl "github.com/saferwall/bytelayout"
	"github.com/saferwall/bytelayout/reader"
	"github.com/saferwall/bytelayout/render"
	"github.com/saferwall/bytelayout/scalar"
)

// readRun reads count characters sequentially from ctx using r,
// returning the decoded characters and the total bytes consumed. Used
// by FixedString (count known up front) and, with count derived from
// the length prefix, by LPString.
func readRun(ctx bl.Context, r reader.CharacterReader, count uint64) ([]scalar.Character, uint64, error) {
	chars := make([]scalar.Character, 0, count)
	var consumed uint64
	cur := ctx
	for i := uint64(0); i < count; i++ {
		c, err := r.Read(cur)
		if err != nil {
			return nil, 0, err
		}
		chars = append(chars, c)
		consumed += uint64(c.ByteLength)
		cur = ctx.At(ctx.Offset() + consumed)
	}
	return chars, consumed, nil
}

// charByteLength sums each character's own byte length, excluding any
// terminator or prefix a caller may have consumed alongside them.
func charByteLength(chars []scalar.Character) uint64 {
	var n uint64
	for _, c := range chars {
		n += uint64(c.ByteLength)
	}
	return n
}

func charsToString(chars []scalar.Character) string {
	var b strings.Builder
	for _, c := range chars {
		b.WriteRune(c.Value)
	}
	return b.String()
}

// charsToStringFast takes the bulk-decode happy path for UTF-16
// through golang.org/x/text/encoding/unicode rather than reassembling
// the string one already-decoded rune at a time, per SPEC_FULL.md §3's
// x/text wiring. The per-character scan (readRun, ntStringField.scan) still
// owns the bit-exact byte-length accounting Children/BaseSize depend
// on; this only replaces the final string assembly, so a decoder
// failure silently falls back to the rune-by-rune form rather than
// failing a call that already succeeded once.
func charsToStringFast(ctx bl.Context, r reader.CharacterReader, chars []scalar.Character, consumed uint64) string {
	if r.Encoding != reader.UTF16 {
		return charsToString(chars)
	}
	raw, err := ctx.Bytes(consumed)
	if err != nil {
		return charsToString(chars)
	}
	enc := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)
	if r.Endian == bl.Big {
		enc = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)
	}
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return charsToString(chars)
	}
	return string(decoded)
}

// syntheticCharChildren builds the "synthetic array of characters"
// spec.md §4.5 describes for string Children: one leaf Type per
// decoded character, reusing the string's own reader/renderer.
func syntheticCharChildren(r reader.CharacterReader, rend render.CharacterRenderer, n int) []Child {
	out := make([]Child, n)
	for i := range out {
		out[i] = Child{Type: newInline(bl.NoAlign(), characterField{Reader: r, Renderer: rend})}
	}
	return out
}

// fixedStringField is the FixedString Type variant: a known character
// count read sequentially, grounded on
// original_source/h2datatype/src/simple/string/ (fixed-length sibling
// of lpstring.rs/ntstring.rs).
type fixedStringField struct {
	baseField
	Length   uint64
	Reader   reader.CharacterReader
	Renderer render.CharacterRenderer
}

// NewFixedString builds an inline FixedString Type of length characters.
func NewFixedString(alignment bl.Alignment, length uint64, r reader.CharacterReader, rend render.CharacterRenderer) Type {
	return newInline(alignment, fixedStringField{Length: length, Reader: r, Renderer: rend})
}

func (f fixedStringField) chars(ctx bl.Context) ([]scalar.Character, uint64, error) {
	return readRun(ctx, f.Reader, f.Length)
}

func (f fixedStringField) BaseSize(ctx bl.Context, data *Data) (uint64, error) {
	_, n, err := f.chars(ctx)
	return n, err
}

func (f fixedStringField) Children(ctx bl.Context, data *Data) ([]Child, error) {
	return syntheticCharChildren(f.Reader, f.Renderer, int(f.Length)), nil
}

func (f fixedStringField) ToDisplay(ctx bl.Context, data *Data) (string, error) {
	chars, _, err := f.chars(ctx)
	if err != nil {
		return "", err
	}
	return f.Renderer.RenderString(chars), nil
}

func (f fixedStringField) CanBeString() bool { return true }

func (f fixedStringField) ToString(ctx bl.Context, data *Data) (string, error) {
	chars, _, err := f.chars(ctx)
	if err != nil {
		return "", err
	}
	return charsToStringFast(ctx, f.Reader, chars, charByteLength(chars)), nil
}

// ntStringField is the NTString (NUL-terminated) Type variant,
// grounded on original_source/h2datatype/src/simple/string/ntstring.rs.
// The terminator is consumed as part of the range but excluded from
// the rendered/string value, per spec.md §4.5.
type ntStringField struct {
	baseField
	Reader   reader.CharacterReader
	Renderer render.CharacterRenderer
}

// NewNTString builds an inline NTString Type.
func NewNTString(alignment bl.Alignment, r reader.CharacterReader, rend render.CharacterRenderer) Type {
	return newInline(alignment, ntStringField{Reader: r, Renderer: rend})
}

// scan reads characters until (and including) the NUL terminator,
// returning the characters with the terminator stripped and the total
// consumed byte count including it.
func (f ntStringField) scan(ctx bl.Context) ([]scalar.Character, uint64, error) {
	var chars []scalar.Character
	var consumed uint64
	for {
		cur := ctx.At(ctx.Offset() + consumed)
		c, err := f.Reader.Read(cur)
		if err != nil {
			return nil, 0, fmt.Errorf("%w", bl.ErrUnterminatedString)
		}
		consumed += uint64(c.ByteLength)
		if c.Value == 0 {
			return chars, consumed, nil
		}
		chars = append(chars, c)
	}
}

func (f ntStringField) BaseSize(ctx bl.Context, data *Data) (uint64, error) {
	_, n, err := f.scan(ctx)
	return n, err
}

func (f ntStringField) Children(ctx bl.Context, data *Data) ([]Child, error) {
	chars, _, err := f.scan(ctx)
	if err != nil {
		return nil, err
	}
	return syntheticCharChildren(f.Reader, f.Renderer, len(chars)), nil
}

func (f ntStringField) ToDisplay(ctx bl.Context, data *Data) (string, error) {
	chars, _, err := f.scan(ctx)
	if err != nil {
		return "", err
	}
	return f.Renderer.RenderString(chars), nil
}

func (f ntStringField) CanBeString() bool { return true }

func (f ntStringField) ToString(ctx bl.Context, data *Data) (string, error) {
	chars, _, err := f.scan(ctx)
	if err != nil {
		return "", err
	}
	return charsToStringFast(ctx, f.Reader, chars, charByteLength(chars)), nil
}

// lpStringField is the LPString (length-prefixed) Type variant,
// grounded on original_source/h2datatype/src/simple/string/lpstring.rs.
// length = 0 is a valid, non-error empty string per spec.md §4.5.
type lpStringField struct {
	baseField
	Prefix   reader.IntegerReader
	Reader   reader.CharacterReader
	Renderer render.CharacterRenderer
}

// NewLPString builds an inline LPString Type. Fails
// ErrLengthPrefixOverflow at construction if prefix can't represent a
// usize, per spec.md §4.5 ("The prefix reader must satisfy
// can_be_usize").
func NewLPString(alignment bl.Alignment, prefix reader.IntegerReader, r reader.CharacterReader, rend render.CharacterRenderer) (Type, error) {
	if !prefix.CanBeUsize() {
		return Type{}, bl.ErrLengthPrefixOverflow
	}
	return newInline(alignment, lpStringField{Prefix: prefix, Reader: r, Renderer: rend}), nil
}

func (f lpStringField) length(ctx bl.Context) (uint64, uint64, error) {
	prefixSize, _ := f.Prefix.Size()
	v, err := f.Prefix.Read(ctx)
	if err != nil {
		return 0, 0, err
	}
	n, err := v.Uint64()
	if err != nil {
		return 0, 0, bl.ErrLengthPrefixOverflow
	}
	return n, uint64(prefixSize), nil
}

func (f lpStringField) chars(ctx bl.Context) ([]scalar.Character, uint64, error) {
	chars, _, bodyLen, err := f.charsAt(ctx)
	if err != nil {
		return nil, 0, err
	}
	prefixSize, _ := f.Prefix.Size()
	return chars, uint64(prefixSize) + bodyLen, nil
}

// charsAt additionally returns the body's own Context (past the length
// prefix), so ToString can hand it to charsToStringFast for a bulk
// UTF-16 decode without re-deriving the prefix offset.
func (f lpStringField) charsAt(ctx bl.Context) ([]scalar.Character, bl.Context, uint64, error) {
	length, prefixSize, err := f.length(ctx)
	if err != nil {
		return nil, bl.Context{}, 0, err
	}
	bodyCtx := ctx.At(ctx.Offset() + prefixSize)
	chars, bodyLen, err := readRun(bodyCtx, f.Reader, length)
	if err != nil {
		return nil, bl.Context{}, 0, err
	}
	return chars, bodyCtx, bodyLen, nil
}

func (f lpStringField) BaseSize(ctx bl.Context, data *Data) (uint64, error) {
	_, n, err := f.chars(ctx)
	return n, err
}

func (f lpStringField) Children(ctx bl.Context, data *Data) ([]Child, error) {
	chars, _, err := f.chars(ctx)
	if err != nil {
		return nil, err
	}
	return syntheticCharChildren(f.Reader, f.Renderer, len(chars)), nil
}

func (f lpStringField) ToDisplay(ctx bl.Context, data *Data) (string, error) {
	chars, _, err := f.chars(ctx)
	if err != nil {
		return "", err
	}
	return f.Renderer.RenderString(chars), nil
}

func (f lpStringField) CanBeString() bool { return true }

func (f lpStringField) ToString(ctx bl.Context, data *Data) (string, error) {
	chars, bodyCtx, _, err := f.charsAt(ctx)
	if err != nil {
		return "", err
	}
	return charsToStringFast(bodyCtx, f.Reader, chars, charByteLength(chars)), nil
}
