// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package datatype

import (
	"testing"

	bl "github.com/saferwall/bytelayout"
	"github.com/saferwall/bytelayout/reader"
	"github.com/saferwall/bytelayout/render"
	"github.com/saferwall/bytelayout/scalar"
)

func TestPointerRelatedReportsAddressAndTarget(t *testing.T) {
	data := NewData()
	target := u32(bl.NoAlign())
	ptr := NewPointer(bl.NoAlign(), reader.NewIntegerReader(scalar.U32, bl.Little), render.HexIntegerRenderer{Prefix: true}, target)
	ctx := bl.New([]byte{0x10, 0x00, 0x00, 0x00})

	related, err := ptr.Related(ctx, data)
	if err != nil {
		t.Fatalf("Related: %v", err)
	}
	if len(related) != 1 {
		t.Fatalf("len(Related) = %d, want 1", len(related))
	}
	if related[0].Address != 0x10 {
		t.Errorf("Related[0].Address = %#x, want 0x10", related[0].Address)
	}
	wantSize, _ := related[0].Type.BaseSize(ctx, data)
	if wantSize != 4 {
		t.Errorf("Related[0].Type.BaseSize = %d, want 4 (didn't round-trip the target type)", wantSize)
	}

	canInt, err := ptr.CanBeInteger(data)
	if err != nil || !canInt {
		t.Fatalf("CanBeInteger = (%v, %v), want (true, nil)", canInt, err)
	}
	asInt, err := ptr.ToInteger(ctx, data)
	if err != nil {
		t.Fatalf("ToInteger: %v", err)
	}
	if got, _ := asInt.Uint64(); got != 0x10 {
		t.Errorf("ToInteger = %d, want 0x10", got)
	}

	display, err := ptr.ToDisplay(ctx, data)
	if err != nil {
		t.Fatalf("ToDisplay: %v", err)
	}
	if display != "0x10" {
		t.Errorf("ToDisplay = %q, want 0x10", display)
	}
}
