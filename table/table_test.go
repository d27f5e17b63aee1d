// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package table

import (
	"math/big"
	"testing"

	"github.com/saferwall/bytelayout/render"
)

func TestParseInteger(t *testing.T) {
	tests := []struct {
		in   string
		want int64
	}{
		{"100", 100},
		{"-100", -100},
		{"0x64", 100},
		{"0o144", 100},
		{"0b1100100", 100},
		{"-0x64", -100},
	}
	for _, tt := range tests {
		got, err := ParseInteger(tt.in)
		if err != nil {
			t.Fatalf("ParseInteger(%q) failed: %v", tt.in, err)
		}
		if got.Cmp(big.NewInt(tt.want)) != 0 {
			t.Errorf("ParseInteger(%q) = %s, want %d", tt.in, got.String(), tt.want)
		}
	}
}

func TestEnumsLookup(t *testing.T) {
	e, err := LoadEnums([]NamedValue{
		{"RED", "0"}, {"GREEN", "1"}, {"BLUE", "2"}, {"ALIAS_OF_RED", "0"},
	})
	if err != nil {
		t.Fatalf("LoadEnums failed: %v", err)
	}
	v, ok := e.GetByName("GREEN")
	if !ok || v.Cmp(big.NewInt(1)) != 0 {
		t.Errorf("GetByName(GREEN) = (%v, %v), want (1, true)", v, ok)
	}
	names := e.GetByValue(big.NewInt(0))
	if len(names) != 2 {
		t.Errorf("GetByValue(0) = %v, want 2 names", names)
	}
	if _, ok := e.GetByName("PURPLE"); ok {
		t.Error("GetByName(PURPLE) should not exist")
	}
}

func TestEnumsDuplicateNameRejected(t *testing.T) {
	_, err := LoadEnums([]NamedValue{{"A", "1"}, {"A", "2"}})
	if err == nil {
		t.Error("LoadEnums should reject a duplicate name")
	}
}

func TestBitmasksGetByValue(t *testing.T) {
	b, err := LoadBitmasks([]NamedValue{
		{"TEST1", "0"}, {"TEST2", "2"}, {"TEST3", "5"}, {"TEST4", "100"},
	})
	if err != nil {
		t.Fatalf("LoadBitmasks failed: %v", err)
	}

	flags, err := b.GetByValue(big.NewInt(1))
	if err != nil {
		t.Fatalf("GetByValue(1) failed: %v", err)
	}
	if len(flags) != 1 || flags[0] != "TEST1" {
		t.Errorf("GetByValue(1) = %v, want [TEST1]", flags)
	}

	flags, err = b.GetByValue(big.NewInt(5))
	if err != nil {
		t.Fatalf("GetByValue(5) failed: %v", err)
	}
	if len(flags) != 2 || flags[0] != "TEST1" || flags[1] != "TEST2" {
		t.Errorf("GetByValue(5) = %v, want [TEST1 TEST2]", flags)
	}

	// 7 = 0b111: bit 0 (TEST1), bit 1 (unmapped), bit 2 (TEST2) set.
	flags, err = b.GetByValue(big.NewInt(7))
	if err != nil {
		t.Fatalf("GetByValue(7) failed: %v", err)
	}
	if len(flags) != 2 {
		t.Errorf("GetByValue(7) without unknown renderer = %v, want 2 names", flags)
	}

	b.SetUnknownRenderer("Unknown_", render.HexIntegerRenderer{Prefix: true})
	flags, err = b.GetByValue(big.NewInt(7))
	if err != nil {
		t.Fatalf("GetByValue(7) failed: %v", err)
	}
	want := []string{"TEST1", "Unknown_0x2", "TEST2"}
	if len(flags) != len(want) {
		t.Fatalf("GetByValue(7) with unknown renderer = %v, want %v", flags, want)
	}
	for i := range want {
		if flags[i] != want[i] {
			t.Errorf("GetByValue(7)[%d] = %q, want %q", i, flags[i], want[i])
		}
	}
}

func TestBitmasksDuplicatePositionRejected(t *testing.T) {
	_, err := LoadBitmasks([]NamedValue{{"A", "1"}, {"B", "1"}})
	if err == nil {
		t.Error("LoadBitmasks should reject a duplicate position")
	}
}

func TestBitmasksPositionOutOfRange(t *testing.T) {
	_, err := LoadBitmasks([]NamedValue{{"A", "129"}})
	if err == nil {
		t.Error("LoadBitmasks should reject a position outside [0,127]")
	}
}

func TestConstantsAllowsDuplicateValues(t *testing.T) {
	c, err := LoadConstants([]NamedValue{{"A", "1"}, {"B", "1"}})
	if err != nil {
		t.Fatalf("LoadConstants failed: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestEnumsEntriesSortedByName(t *testing.T) {
	e, err := LoadEnums([]NamedValue{{"BLUE", "2"}, {"RED", "0"}, {"GREEN", "1"}})
	if err != nil {
		t.Fatalf("LoadEnums failed: %v", err)
	}
	entries := e.Entries()
	if len(entries) != 3 {
		t.Fatalf("len(Entries()) = %d, want 3", len(entries))
	}
	want := []string{"BLUE", "GREEN", "RED"}
	for i, name := range want {
		if entries[i].Name != name {
			t.Errorf("Entries()[%d].Name = %q, want %q", i, entries[i].Name, name)
		}
	}
}

func TestBitmasksEntriesSortedByName(t *testing.T) {
	b, err := LoadBitmasks([]NamedValue{{"WRITE", "1"}, {"READ", "0"}})
	if err != nil {
		t.Fatalf("LoadBitmasks failed: %v", err)
	}
	entries := b.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(Entries()) = %d, want 2", len(entries))
	}
	if entries[0].Name != "READ" || entries[0].Value != "0" {
		t.Errorf("Entries()[0] = %+v, want {READ 0}", entries[0])
	}
	if entries[1].Name != "WRITE" || entries[1].Value != "1" {
		t.Errorf("Entries()[1] = %+v, want {WRITE 1}", entries[1])
	}
}

func TestEnumsYAMLRoundTrip(t *testing.T) {
	e, err := LoadEnums([]NamedValue{{"TEST1", "0"}, {"TEST2", "2"}, {"TEST4", "0x64"}})
	if err != nil {
		t.Fatalf("LoadEnums failed: %v", err)
	}
	data, err := e.ToYAML()
	if err != nil {
		t.Fatalf("ToYAML failed: %v", err)
	}
	out, err := LoadEnumsFromYAML(data)
	if err != nil {
		t.Fatalf("LoadEnumsFromYAML failed: %v", err)
	}
	v, ok := out.GetByName("TEST4")
	if !ok || v.Cmp(big.NewInt(100)) != 0 {
		t.Errorf("GetByName(TEST4) after round trip = (%v, %v), want (100, true)", v, ok)
	}
}
