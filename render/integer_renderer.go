// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package render holds the formatter family that turns a scalar value
// into text, grounded on
// original_source/generic-number/src/generic_formatter/*/mod.rs — one
// Go file per formatter family, mirroring the original's one-file-per-
// formatter layout.
package render

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/saferwall/bytelayout/scalar"
)

// IntegerRenderer renders a scalar.Integer to text. Each concrete
// renderer type below carries one formatter's configuration.
type IntegerRenderer interface {
	RenderInteger(v scalar.Integer) (string, error)
}

// DefaultIntegerRenderer renders the canonical base-10 form.
type DefaultIntegerRenderer struct{}

// RenderInteger implements IntegerRenderer.
func (DefaultIntegerRenderer) RenderInteger(v scalar.Integer) (string, error) {
	return v.String(), nil
}

// HexIntegerRenderer renders base-16.
type HexIntegerRenderer struct {
	Uppercase bool
	Prefix    bool
	Padded    bool
}

// RenderInteger implements IntegerRenderer. Padded pads to 2*byte_size
// hex digits. Negative values render their two's-complement bit
// pattern at the integer's declared width, matching how Rust's `{:x}`
// formats a signed integer.
func (f HexIntegerRenderer) RenderInteger(v scalar.Integer) (string, error) {
	s := twosComplementText(v, 16)
	if f.Padded {
		s = padLeft(s, 2*v.Size())
	}
	if f.Uppercase {
		s = strings.ToUpper(s)
	}
	if f.Prefix {
		s = "0x" + s
	}
	return s, nil
}

// OctalIntegerRenderer renders base-8.
type OctalIntegerRenderer struct {
	Prefix bool
	Padded bool
}

// octalWidths maps byte size -> digit count needed to hold the
// integer's full range in octal, per the teacher-adjacent
// original_source/src/sized_number/octal_options table (u8->3,
// u16->6, u24->8, u32->11, u64->22, u128->43).
var octalWidths = map[int]int{1: 3, 2: 6, 3: 8, 4: 11, 8: 22, 16: 43}

// RenderInteger implements IntegerRenderer.
func (f OctalIntegerRenderer) RenderInteger(v scalar.Integer) (string, error) {
	s := twosComplementText(v, 8)
	if f.Padded {
		s = padLeft(s, octalWidths[v.Size()])
	}
	if f.Prefix {
		s = "0o" + s
	}
	return s, nil
}

// BinaryIntegerRenderer renders base-2.
type BinaryIntegerRenderer struct {
	Prefix    bool
	Padded    bool
	MinDigits int
}

// RenderInteger implements IntegerRenderer. Padded pads to 8*byte_size
// bits; MinDigits independently pads to a user-chosen minimum.
func (f BinaryIntegerRenderer) RenderInteger(v scalar.Integer) (string, error) {
	s := twosComplementText(v, 2)
	width := f.MinDigits
	if f.Padded && v.Size()*8 > width {
		width = v.Size() * 8
	}
	s = padLeft(s, width)
	if f.Prefix {
		s = "0b" + s
	}
	return s, nil
}

// ScientificIntegerRenderer renders "mantissa[e|E]exponent".
type ScientificIntegerRenderer struct {
	Uppercase bool
}

// RenderInteger implements IntegerRenderer.
func (f ScientificIntegerRenderer) RenderInteger(v scalar.Integer) (string, error) {
	digits := new(big.Int).Abs(v.Value).String()
	return scientificFromDecimal(digits, v.IsNegative(), f.Uppercase), nil
}

// twosComplementText returns the unsigned magnitude in the given base
// for a non-negative Integer, or the two's-complement bit pattern (at
// the Integer's declared width) in that base for a negative one.
func twosComplementText(v scalar.Integer, base int) string {
	if !v.IsNegative() {
		return v.Value.Text(base)
	}
	bits := uint(v.Size() * 8)
	mod := new(big.Int).Lsh(big.NewInt(1), bits)
	wrapped := new(big.Int).Add(v.Value, mod)
	return wrapped.Text(base)
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// scientificFromDecimal converts a decimal-digit string (no sign, no
// leading zeros except "0" itself) into "d.ddd[e|E]exp" form, the same
// shape Rust's `{:e}`/`{:E}` produces for integers: strip trailing
// zeros from the digit run, keep the remaining digits as the mantissa,
// and the exponent is (total original digit count - 1).
func scientificFromDecimal(digits string, negative bool, uppercase bool) string {
	neg := ""
	if negative {
		neg = "-"
	}

	if digits == "0" {
		e := "e"
		if uppercase {
			e = "E"
		}
		return fmt.Sprintf("%s0%s0", neg, e)
	}

	exponent := len(digits) - 1
	trimmed := strings.TrimRight(digits, "0")
	if trimmed == "" {
		trimmed = "0"
	}

	mantissa := trimmed[:1]
	if len(trimmed) > 1 {
		mantissa += "." + trimmed[1:]
	}

	e := "e"
	if uppercase {
		e = "E"
	}
	return fmt.Sprintf("%s%s%s%d", neg, mantissa, e, exponent)
}
