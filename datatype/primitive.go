// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package datatype

import (
	"fmt"

	bl "github.com/saferwall/bytelayout"
	"github.com/saferwall/bytelayout/reader"
	"github.com/saferwall/bytelayout/render"
	"github.com/saferwall/bytelayout/scalar"
	"github.com/saferwall/bytelayout/table"
)

// integerField is the Integer Type variant: an IntegerReader paired
// with an IntegerRenderer, grounded on
// original_source/h2datatype/src/simple/numeric/h2integer.rs's
// H2Integer (reader+formatter pair, statically sized per §3's table).
//
// ConstantsHint names a Constants table (registered in Data) to
// consult for a symbolic-name annotation: when the read value matches
// a registered constant, " /* NAME */" is appended to ToDisplay, per
// SPEC_FULL.md §5's "Constants table used for symbolic display"
// supplemented feature. It is optional and off by default (nil).
type integerField struct {
	baseField
	Reader        reader.IntegerReader
	Renderer      render.IntegerRenderer
	ConstantsHint *string
}

// NewInteger builds an inline Integer Type.
func NewInteger(alignment bl.Alignment, r reader.IntegerReader, f render.IntegerRenderer) Type {
	return newInline(alignment, integerField{Reader: r, Renderer: f})
}

// NewIntegerWithConstantsHint builds an inline Integer Type that
// annotates its display with a matching name from the named Constants
// table, if any, per SPEC_FULL.md §5.
func NewIntegerWithConstantsHint(alignment bl.Alignment, r reader.IntegerReader, f render.IntegerRenderer, constantsTable string) Type {
	return newInline(alignment, integerField{Reader: r, Renderer: f, ConstantsHint: &constantsTable})
}

func (f integerField) BaseSize(bl.Context, *Data) (uint64, error) {
	size, _ := f.Reader.Size()
	return uint64(size), nil
}

func (f integerField) ToDisplay(ctx bl.Context, data *Data) (string, error) {
	v, err := f.Reader.Read(ctx)
	if err != nil {
		return "", err
	}
	s, err := f.Renderer.RenderInteger(v)
	if err != nil {
		return "", err
	}
	if f.ConstantsHint == nil || data == nil {
		return s, nil
	}
	constants, ok := data.GetConstants(*f.ConstantsHint)
	if !ok {
		return s, nil
	}
	if name, ok := matchingConstantName(constants, v); ok {
		s = fmt.Sprintf("%s /* %s */", s, name)
	}
	return s, nil
}

func matchingConstantName(c *table.Constants, v scalar.Integer) (string, bool) {
	return c.MatchValue(v.BigInt())
}

func (f integerField) CanBeInteger() bool { return true }

func (f integerField) ToInteger(ctx bl.Context, data *Data) (scalar.Integer, error) {
	return f.Reader.Read(ctx)
}

// floatField is the Float Type variant.
type floatField struct {
	baseField
	Reader   reader.FloatReader
	Renderer render.FloatRenderer
}

// NewFloat builds an inline Float Type.
func NewFloat(alignment bl.Alignment, r reader.FloatReader, f render.FloatRenderer) Type {
	return newInline(alignment, floatField{Reader: r, Renderer: f})
}

func (f floatField) BaseSize(bl.Context, *Data) (uint64, error) {
	size, _ := f.Reader.Size()
	return uint64(size), nil
}

func (f floatField) ToDisplay(ctx bl.Context, data *Data) (string, error) {
	v, err := f.Reader.Read(ctx)
	if err != nil {
		return "", err
	}
	return f.Renderer.RenderFloat(v)
}

func (f floatField) CanBeFloat() bool { return true }

func (f floatField) ToFloat(ctx bl.Context, data *Data) (scalar.Float, error) {
	return f.Reader.Read(ctx)
}

// characterField is the Character Type variant. Its BaseSize must read
// the buffer for UTF-8/UTF-16, since those encodings aren't statically
// sized (per §3's "Static size?" table).
type characterField struct {
	baseField
	Reader   reader.CharacterReader
	Renderer render.CharacterRenderer
}

// NewCharacterType builds an inline Character Type. (Named NewCharacterType,
// not NewCharacter, to avoid colliding with scalar.NewCharacter.)
func NewCharacterType(alignment bl.Alignment, r reader.CharacterReader, f render.CharacterRenderer) Type {
	return newInline(alignment, characterField{Reader: r, Renderer: f})
}

func (f characterField) BaseSize(ctx bl.Context, data *Data) (uint64, error) {
	if size, ok := f.Reader.Size(); ok {
		return uint64(size), nil
	}
	v, err := f.Reader.Read(ctx)
	if err != nil {
		return 0, err
	}
	return uint64(v.ByteLength), nil
}

func (f characterField) ToDisplay(ctx bl.Context, data *Data) (string, error) {
	v, err := f.Reader.Read(ctx)
	if err != nil {
		return "", err
	}
	return f.Renderer.RenderCharacter(v)
}

func (f characterField) CanBeCharacter() bool { return true }

func (f characterField) ToCharacter(ctx bl.Context, data *Data) (scalar.Character, error) {
	return f.Reader.Read(ctx)
}

// enumField is the Enum Type variant: an IntegerReader paired with a
// reference to an Enums table registered in Data, grounded on
// original_source/h2datatype/src/data/enums.rs's lookup-by-value
// semantics. If the read value matches one or more registered names,
// ToDisplay shows the name(s) (duplicates permitted by design, per
// spec.md §4.6); otherwise it falls back to DefaultRenderer.
type enumField struct {
	baseField
	Reader          reader.IntegerReader
	EnumsTable      string
	DefaultRenderer render.IntegerRenderer
}

// NewEnum builds an inline Enum Type referencing the Enums table
// registered under enumsTable in Data.
func NewEnum(alignment bl.Alignment, r reader.IntegerReader, enumsTable string, fallback render.IntegerRenderer) Type {
	return newInline(alignment, enumField{Reader: r, EnumsTable: enumsTable, DefaultRenderer: fallback})
}

func (f enumField) BaseSize(bl.Context, *Data) (uint64, error) {
	size, _ := f.Reader.Size()
	return uint64(size), nil
}

func (f enumField) ToDisplay(ctx bl.Context, data *Data) (string, error) {
	v, err := f.Reader.Read(ctx)
	if err != nil {
		return "", err
	}
	enums, ok := data.GetEnums(f.EnumsTable)
	if ok {
		if names := enums.GetByValue(v.BigInt()); len(names) > 0 {
			return joinNames(names, ", "), nil
		}
	}
	return f.DefaultRenderer.RenderInteger(v)
}

func (f enumField) CanBeInteger() bool { return true }

func (f enumField) ToInteger(ctx bl.Context, data *Data) (scalar.Integer, error) {
	return f.Reader.Read(ctx)
}

// bitmaskField is the Bitmask Type variant: an IntegerReader paired
// with a reference to a Bitmasks table registered in Data, grounded on
// original_source/h2datatype/src/data/bitmasks.rs's ascending-bit-
// position iteration.
type bitmaskField struct {
	baseField
	Reader        reader.IntegerReader
	BitmasksTable string
}

// NewBitmask builds an inline Bitmask Type referencing the Bitmasks
// table registered under bitmasksTable in Data.
func NewBitmask(alignment bl.Alignment, r reader.IntegerReader, bitmasksTable string) Type {
	return newInline(alignment, bitmaskField{Reader: r, BitmasksTable: bitmasksTable})
}

func (f bitmaskField) BaseSize(bl.Context, *Data) (uint64, error) {
	size, _ := f.Reader.Size()
	return uint64(size), nil
}

func (f bitmaskField) ToDisplay(ctx bl.Context, data *Data) (string, error) {
	v, err := f.Reader.Read(ctx)
	if err != nil {
		return "", err
	}
	bitmasks, ok := data.GetBitmasks(f.BitmasksTable)
	if !ok {
		return "", fmt.Errorf("%w: %s", bl.ErrNameNotFound, f.BitmasksTable)
	}
	names, err := bitmasks.GetByValue(v.BigInt())
	if err != nil {
		return "", err
	}
	return joinNames(names, " | "), nil
}

func (f bitmaskField) CanBeInteger() bool { return true }

func (f bitmaskField) ToInteger(ctx bl.Context, data *Data) (scalar.Integer, error) {
	return f.Reader.Read(ctx)
}

func joinNames(names []string, sep string) string {
	out := ""
	for i, n := range names {
		if i > 0 {
			out += sep
		}
		out += n
	}
	return out
}
