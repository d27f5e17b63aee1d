// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package datatype

import (
	"strings"
	"testing"

	bl "github.com/saferwall/bytelayout"
)

func TestUUIDDisplay(t *testing.T) {
	data := NewData()
	ty := NewUUID(bl.NoAlign())
	raw := []byte{
		0x12, 0x3e, 0x45, 0x67, 0xe8, 0x9b, 0x12, 0xd3,
		0xa4, 0x56, 0x42, 0x66, 0x14, 0x17, 0x40, 0x00,
	}
	got, err := ty.ToDisplay(bl.New(raw), data)
	if err != nil {
		t.Fatalf("ToDisplay: %v", err)
	}
	if want := "123e4567-e89b-12d3-a456-426614174000"; got != want {
		t.Errorf("ToDisplay = %q, want %q", got, want)
	}
}

func TestRGBDisplay(t *testing.T) {
	data := NewData()
	ty := NewRGB(bl.NoAlign())
	got, err := ty.ToDisplay(bl.New([]byte{0xff, 0x00, 0x80}), data)
	if err != nil {
		t.Fatalf("ToDisplay: %v", err)
	}
	if got != "#ff0080" {
		t.Errorf("ToDisplay = %q, want #ff0080", got)
	}
}

func TestBlobDisplayWithoutSniffing(t *testing.T) {
	data := NewData()
	ty := NewBlob(bl.NoAlign(), 3, false)
	got, err := ty.ToDisplay(bl.New([]byte{1, 2, 3}), data)
	if err != nil {
		t.Fatalf("ToDisplay: %v", err)
	}
	if got != "blob(3 bytes)" {
		t.Errorf("ToDisplay = %q, want \"blob(3 bytes)\"", got)
	}
}

func TestBlobDisplayWithSniffing(t *testing.T) {
	data := NewData()
	raw := []byte("%PDF-1.7\n%\xe2\xe3\xcf\xd3\n")
	ty := NewBlob(bl.NoAlign(), uint64(len(raw)), true)
	got, err := ty.ToDisplay(bl.New(raw), data)
	if err != nil {
		t.Fatalf("ToDisplay: %v", err)
	}
	if !strings.Contains(got, "pdf") {
		t.Errorf("ToDisplay = %q, want it to mention pdf", got)
	}
}

func TestPKCS7BlobFallsBackOnParseFailure(t *testing.T) {
	data := NewData()
	ty := NewPKCS7Blob(bl.NoAlign(), 4)
	got, err := ty.ToDisplay(bl.New([]byte{0, 1, 2, 3}), data)
	if err != nil {
		t.Fatalf("ToDisplay should not error on unparseable PKCS7 data: %v", err)
	}
	if !strings.Contains(got, "unparsed") {
		t.Errorf("ToDisplay = %q, want it to mention an unparsed fallback", got)
	}
}
