// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package datatype

import (
	"fmt"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"go.mozilla.org/pkcs7"

	bl "github.com/saferwall/bytelayout"
)

// uuidField is the UUID Type variant: 16 raw bytes rendered in
// canonical 8-4-4-4-12 hex form, per spec.md §6. Uses google/uuid for
// canonical formatting per SPEC_FULL.md §3.
type uuidField struct {
	baseField
}

// NewUUID builds an inline UUID Type.
func NewUUID(alignment bl.Alignment) Type {
	return newInline(alignment, uuidField{})
}

func (uuidField) BaseSize(bl.Context, *Data) (uint64, error) { return 16, nil }

func (uuidField) ToDisplay(ctx bl.Context, data *Data) (string, error) {
	raw, err := ctx.Bytes(16)
	if err != nil {
		return "", err
	}
	id, err := uuid.FromBytes(raw)
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// rgbField is the RGB Type variant: 3 raw bytes rendered as a
// "#rrggbb" lowercase hex triplet.
type rgbField struct {
	baseField
}

// NewRGB builds an inline RGB Type.
func NewRGB(alignment bl.Alignment) Type {
	return newInline(alignment, rgbField{})
}

func (rgbField) BaseSize(bl.Context, *Data) (uint64, error) { return 3, nil }

func (rgbField) ToDisplay(ctx bl.Context, data *Data) (string, error) {
	raw, err := ctx.Bytes(3)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("#%02x%02x%02x", raw[0], raw[1], raw[2]), nil
}

// blobField is the Blob Type variant: a fixed byte count with no
// further interpretation beyond an optional sniffed MIME type, per
// SPEC_FULL.md §3's mimetype wiring (grounded on icon.go's use of
// gabriel-vasile/mimetype to label an embedded icon's raw bytes).
type blobField struct {
	baseField
	Size      uint64
	SniffMIME bool
}

// NewBlob builds an inline Blob Type of size bytes. When sniffMIME is
// true, ToDisplay appends a detected content-type label.
func NewBlob(alignment bl.Alignment, size uint64, sniffMIME bool) Type {
	return newInline(alignment, blobField{Size: size, SniffMIME: sniffMIME})
}

func (f blobField) BaseSize(bl.Context, *Data) (uint64, error) { return f.Size, nil }

func (f blobField) ToDisplay(ctx bl.Context, data *Data) (string, error) {
	raw, err := ctx.Bytes(f.Size)
	if err != nil {
		return "", err
	}
	if !f.SniffMIME {
		return fmt.Sprintf("blob(%d bytes)", len(raw)), nil
	}
	mt := mimetype.Detect(raw)
	return fmt.Sprintf("blob(%d bytes, %s)", len(raw), mt.String()), nil
}

// pkcs7BlobField is the PKCS7Blob Type variant, a Blob specialization
// whose ToDisplay parses an embedded PKCS#7/Authenticode signature
// block, grounded on security.go's ParseSecurityDirectory +
// go.mozilla.org/pkcs7, per SPEC_FULL.md §3/§4.7.
type pkcs7BlobField struct {
	baseField
	Size uint64
}

// NewPKCS7Blob builds an inline PKCS7Blob Type of size bytes.
func NewPKCS7Blob(alignment bl.Alignment, size uint64) Type {
	return newInline(alignment, pkcs7BlobField{Size: size})
}

func (f pkcs7BlobField) BaseSize(bl.Context, *Data) (uint64, error) { return f.Size, nil }

func (f pkcs7BlobField) ToDisplay(ctx bl.Context, data *Data) (string, error) {
	raw, err := ctx.Bytes(f.Size)
	if err != nil {
		return "", err
	}
	p7, err := pkcs7.Parse(raw)
	if err != nil {
		return fmt.Sprintf("pkcs7(%d bytes, unparsed: %v)", len(raw), err), nil
	}
	if len(p7.Certificates) == 0 {
		return fmt.Sprintf("pkcs7(%d bytes, no certificates)", len(raw)), nil
	}
	return fmt.Sprintf("pkcs7(%d bytes, signer=%s)", len(raw), p7.Certificates[0].Subject.CommonName), nil
}
