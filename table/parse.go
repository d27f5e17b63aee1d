// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package table holds the in-memory auxiliary tables (Enums, Bitmasks,
// Constants) that Enum/Bitmask Type variants consult when rendering,
// grounded on original_source/h2datatype/src/data/{enums,bitmasks,
// constants}.rs.
package table

import (
	"fmt"
	"math/big"
	"strings"
)

// ParseInteger parses a decimal, "0x"/"0X" hex, "0o"/"0O" octal, or
// "0b"/"0B" binary literal, with an optional leading '-', into its
// mathematical value. This is the parser spec.md §4.6 calls
// "Integer::from_str", used when loading a table from its string
// serialization form.
func ParseInteger(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("table: empty integer literal")
	}

	negative := false
	if s[0] == '-' || s[0] == '+' {
		negative = s[0] == '-'
		s = s[1:]
	}
	if s == "" {
		return nil, fmt.Errorf("table: malformed integer literal")
	}

	base := 10
	digits := s
	if len(s) > 2 && s[0] == '0' {
		switch s[1] {
		case 'x', 'X':
			base = 16
			digits = s[2:]
		case 'o', 'O':
			base = 8
			digits = s[2:]
		case 'b', 'B':
			base = 2
			digits = s[2:]
		}
	}

	v, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf("table: couldn't parse integer %q", s)
	}
	if negative {
		v.Neg(v)
	}
	return v, nil
}
