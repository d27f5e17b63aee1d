// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package render

import (
	"strconv"
	"strings"

	"github.com/saferwall/bytelayout/scalar"
)

// FloatRenderer renders a scalar.Float to text.
type FloatRenderer interface {
	RenderFloat(v scalar.Float) (string, error)
}

// DefaultFloatRenderer renders the shortest round-tripping decimal
// form; NaN always renders as the literal string "NaN", per spec.md §3.
type DefaultFloatRenderer struct{}

// RenderFloat implements FloatRenderer.
func (DefaultFloatRenderer) RenderFloat(v scalar.Float) (string, error) {
	if v.IsNaN() {
		return "NaN", nil
	}
	bitSize := 64
	if v.Kind == scalar.F32 {
		bitSize = 32
	}
	return strconv.FormatFloat(v.Value, 'g', -1, bitSize), nil
}

// ScientificFloatRenderer renders "mantissa[e|E]exponent".
type ScientificFloatRenderer struct {
	Uppercase bool
}

// RenderFloat implements FloatRenderer.
func (f ScientificFloatRenderer) RenderFloat(v scalar.Float) (string, error) {
	if v.IsNaN() {
		return "NaN", nil
	}
	bitSize := 64
	if v.Kind == scalar.F32 {
		bitSize = 32
	}
	s := strconv.FormatFloat(v.Value, 'e', -1, bitSize)
	s = normalizeExponent(s)
	if f.Uppercase {
		s = strings.ToUpper(s)
	}
	return s, nil
}

// normalizeExponent turns Go's "1.5e+02"/"1.5e-02" into the spec's
// "1.5e2"/"1.5e-2": drop the '+' sign and any leading zeros in the
// exponent digits (keeping at least one digit).
func normalizeExponent(s string) string {
	idx := strings.IndexByte(s, 'e')
	if idx < 0 {
		return s
	}
	mantissa, exp := s[:idx], s[idx+1:]

	negative := false
	if len(exp) > 0 && (exp[0] == '+' || exp[0] == '-') {
		negative = exp[0] == '-'
		exp = exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	if negative {
		exp = "-" + exp
	}
	return mantissa + "e" + exp
}
