// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package render

import (
	bl "github.com/saferwall/bytelayout"
	"github.com/saferwall/bytelayout/scalar"
)

// Kind tags which formatter family a Formatter applies.
type Kind int

// Formatter families, per spec.md §4.3/C5.
const (
	KindDefault Kind = iota
	KindHex
	KindOctal
	KindBinary
	KindScientific
)

// Formatter is the generic scalar -> string entry point described in
// spec.md §6 ("Formatter render(scalar) -> Result<string, Error>"),
// mirroring the original source's GenericFormatter enum: one value
// that can be handed any scalar family and dispatches per-family,
// failing ErrUnsupportedRender for a combination that doesn't apply
// (e.g. Hex on a Float).
type Formatter struct {
	Kind Kind

	// Hex/Octal/Binary
	Uppercase bool
	Prefix    bool
	Padded    bool

	// Binary only
	MinDigits int

	// Character only
	Character CharacterRenderer
}

// RenderInteger renders an integer scalar. Every Kind supports
// integers.
func (f Formatter) RenderInteger(v scalar.Integer) (string, error) {
	switch f.Kind {
	case KindDefault:
		return DefaultIntegerRenderer{}.RenderInteger(v)
	case KindHex:
		return HexIntegerRenderer{Uppercase: f.Uppercase, Prefix: f.Prefix, Padded: f.Padded}.RenderInteger(v)
	case KindOctal:
		return OctalIntegerRenderer{Prefix: f.Prefix, Padded: f.Padded}.RenderInteger(v)
	case KindBinary:
		return BinaryIntegerRenderer{Prefix: f.Prefix, Padded: f.Padded, MinDigits: f.MinDigits}.RenderInteger(v)
	case KindScientific:
		return ScientificIntegerRenderer{Uppercase: f.Uppercase}.RenderInteger(v)
	default:
		return "", bl.ErrUnsupportedRender
	}
}

// RenderFloat renders a float scalar. Only Default and Scientific
// apply; Hex/Octal/Binary fail ErrUnsupportedRender, per spec.md §4.3's
// error contract.
func (f Formatter) RenderFloat(v scalar.Float) (string, error) {
	switch f.Kind {
	case KindDefault:
		return DefaultFloatRenderer{}.RenderFloat(v)
	case KindScientific:
		return ScientificFloatRenderer{Uppercase: f.Uppercase}.RenderFloat(v)
	default:
		return "", bl.ErrUnsupportedRender
	}
}

// RenderCharacter renders a character scalar. Only Default applies;
// every other Kind fails ErrUnsupportedRender.
func (f Formatter) RenderCharacter(v scalar.Character) (string, error) {
	if f.Kind != KindDefault {
		return "", bl.ErrUnsupportedRender
	}
	return f.Character.RenderCharacter(v)
}

// NewDefault builds a Default Formatter.
func NewDefault() Formatter {
	return Formatter{Kind: KindDefault, Character: DefaultCharacterConfig()}
}

// NewHex builds a Hex Formatter.
func NewHex(uppercase, prefix, padded bool) Formatter {
	return Formatter{Kind: KindHex, Uppercase: uppercase, Prefix: prefix, Padded: padded}
}

// NewOctal builds an Octal Formatter.
func NewOctal(prefix, padded bool) Formatter {
	return Formatter{Kind: KindOctal, Prefix: prefix, Padded: padded}
}

// NewBinary builds a Binary Formatter.
func NewBinary(prefix, padded bool, minDigits int) Formatter {
	return Formatter{Kind: KindBinary, Prefix: prefix, Padded: padded, MinDigits: minDigits}
}

// NewScientific builds a Scientific Formatter.
func NewScientific(uppercase bool) Formatter {
	return Formatter{Kind: KindScientific, Uppercase: uppercase}
}
