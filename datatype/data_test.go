// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package datatype

import (
	"errors"
	"testing"

	bl "github.com/saferwall/bytelayout"
	"github.com/saferwall/bytelayout/table"
)

func TestDataWithTypeRejectsDuplicateNames(t *testing.T) {
	data := NewData()
	if _, err := data.WithType("byte", u8(bl.NoAlign())); err != nil {
		t.Fatalf("WithType: %v", err)
	}
	if _, err := data.WithType("byte", u32(bl.NoAlign())); !errors.Is(err, bl.ErrDuplicateEntry) {
		t.Errorf("WithType duplicate error = %v, want ErrDuplicateEntry", err)
	}
}

func TestDataTypeRoundTrip(t *testing.T) {
	data := NewData()
	if data.HasType("byte") {
		t.Fatal("HasType(\"byte\") = true before registration")
	}
	if _, err := data.WithType("byte", u8(bl.NoAlign())); err != nil {
		t.Fatalf("WithType: %v", err)
	}
	if !data.HasType("byte") {
		t.Fatal("HasType(\"byte\") = false after registration")
	}
	if _, ok := data.GetType("byte"); !ok {
		t.Error("GetType(\"byte\") missing after registration")
	}
	if _, ok := data.GetType("missing"); ok {
		t.Error("GetType(\"missing\") found an entry that was never registered")
	}
}

func TestDataEnumsBitmasksConstantsRoundTrip(t *testing.T) {
	data := NewData()

	enums, err := table.LoadEnums([]table.NamedValue{{Name: "RED", Value: "1"}})
	if err != nil {
		t.Fatalf("LoadEnums: %v", err)
	}
	data.WithEnums("colors", enums)
	if _, ok := data.GetEnums("colors"); !ok {
		t.Error("GetEnums(\"colors\") missing after registration")
	}

	bitmasks, err := table.LoadBitmasks([]table.NamedValue{{Name: "READ", Value: "0"}})
	if err != nil {
		t.Fatalf("LoadBitmasks: %v", err)
	}
	data.WithBitmasks("perms", bitmasks)
	if _, ok := data.GetBitmasks("perms"); !ok {
		t.Error("GetBitmasks(\"perms\") missing after registration")
	}

	constants, err := table.LoadConstants([]table.NamedValue{{Name: "MAGIC", Value: "1"}})
	if err != nil {
		t.Fatalf("LoadConstants: %v", err)
	}
	data.WithConstants("magics", constants)
	if _, ok := data.GetConstants("magics"); !ok {
		t.Error("GetConstants(\"magics\") missing after registration")
	}
}
