// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package datatype

import (
	"testing"

	bl "github.com/saferwall/bytelayout"
)

func TestIPv4Display(t *testing.T) {
	data := NewData()
	ty := NewIPv4(bl.NoAlign(), bl.Big)
	ctx := bl.New([]byte{192, 168, 1, 1})

	got, err := ty.ToDisplay(ctx, data)
	if err != nil {
		t.Fatalf("ToDisplay: %v", err)
	}
	if got != "192.168.1.1" {
		t.Errorf("ToDisplay = %q, want 192.168.1.1", got)
	}
}

func TestIPv4DisplayLittleEndianReverses(t *testing.T) {
	data := NewData()
	ty := NewIPv4(bl.NoAlign(), bl.Little)
	ctx := bl.New([]byte{1, 1, 168, 192})

	got, err := ty.ToDisplay(ctx, data)
	if err != nil {
		t.Fatalf("ToDisplay: %v", err)
	}
	if got != "192.168.1.1" {
		t.Errorf("ToDisplay = %q, want 192.168.1.1", got)
	}
}

func TestIPv6Display(t *testing.T) {
	data := NewData()
	ty := NewIPv6(bl.NoAlign(), bl.Big)
	ctx := bl.New([]byte{0x20, 0x01, 0x0d, 0xb8, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1})

	got, err := ty.ToDisplay(ctx, data)
	if err != nil {
		t.Fatalf("ToDisplay: %v", err)
	}
	if got != "2001:db8::1" {
		t.Errorf("ToDisplay = %q, want 2001:db8::1", got)
	}
}

func TestMAC48Display(t *testing.T) {
	data := NewData()
	ty := NewMAC48(bl.NoAlign(), bl.Big)
	ctx := bl.New([]byte{0x00, 0x1B, 0x44, 0x11, 0x3A, 0xB7})

	got, err := ty.ToDisplay(ctx, data)
	if err != nil {
		t.Fatalf("ToDisplay: %v", err)
	}
	if got != "00:1b:44:11:3a:b7" {
		t.Errorf("ToDisplay = %q, want 00:1b:44:11:3a:b7", got)
	}
}
