// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package datatype

import (
	"fmt"
	"net"
	"strings"

	bl "github.com/saferwall/bytelayout"
)

func orderedBytes(raw []byte, e bl.Endian) []byte {
	if e != bl.Little {
		return raw
	}
	out := make([]byte, len(raw))
	for i, b := range raw {
		out[len(raw)-1-i] = b
	}
	return out
}

// ipv4Field is the IPv4 Type variant: 4 raw bytes rendered as decimal
// octets joined by '.', per spec.md §6's display-form invariant.
type ipv4Field struct {
	baseField
	Endian bl.Endian
}

// NewIPv4 builds an inline IPv4 Type.
func NewIPv4(alignment bl.Alignment, endian bl.Endian) Type {
	return newInline(alignment, ipv4Field{Endian: endian})
}

func (f ipv4Field) BaseSize(bl.Context, *Data) (uint64, error) { return 4, nil }

func (f ipv4Field) ToDisplay(ctx bl.Context, data *Data) (string, error) {
	raw, err := ctx.Bytes(4)
	if err != nil {
		return "", err
	}
	b := orderedBytes(raw, f.Endian)
	return net.IPv4(b[0], b[1], b[2], b[3]).String(), nil
}

// ipv6Field is the IPv6 Type variant: 16 raw bytes rendered in
// canonical lowercase colon-hex form with "::" zero-compression, per
// spec.md §6.
type ipv6Field struct {
	baseField
	Endian bl.Endian
}

// NewIPv6 builds an inline IPv6 Type.
func NewIPv6(alignment bl.Alignment, endian bl.Endian) Type {
	return newInline(alignment, ipv6Field{Endian: endian})
}

func (f ipv6Field) BaseSize(bl.Context, *Data) (uint64, error) { return 16, nil }

func (f ipv6Field) ToDisplay(ctx bl.Context, data *Data) (string, error) {
	raw, err := ctx.Bytes(16)
	if err != nil {
		return "", err
	}
	b := orderedBytes(raw, f.Endian)
	ip := net.IP(append([]byte(nil), b...))
	return ip.String(), nil
}

func macString(raw []byte) string {
	parts := make([]string, len(raw))
	for i, b := range raw {
		parts[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(parts, ":")
}

// mac48Field is the MAC-48 Type variant: 6 raw bytes rendered as
// lowercase colon-separated hex pairs.
type mac48Field struct {
	baseField
	Endian bl.Endian
}

// NewMAC48 builds an inline MAC-48 Type.
func NewMAC48(alignment bl.Alignment, endian bl.Endian) Type {
	return newInline(alignment, mac48Field{Endian: endian})
}

func (f mac48Field) BaseSize(bl.Context, *Data) (uint64, error) { return 6, nil }

func (f mac48Field) ToDisplay(ctx bl.Context, data *Data) (string, error) {
	raw, err := ctx.Bytes(6)
	if err != nil {
		return "", err
	}
	return macString(orderedBytes(raw, f.Endian)), nil
}

// mac64Field is the MAC-64 (EUI-64) Type variant: 8 raw bytes rendered
// as lowercase colon-separated hex pairs.
type mac64Field struct {
	baseField
	Endian bl.Endian
}

// NewMAC64 builds an inline MAC-64 Type.
func NewMAC64(alignment bl.Alignment, endian bl.Endian) Type {
	return newInline(alignment, mac64Field{Endian: endian})
}

func (f mac64Field) BaseSize(bl.Context, *Data) (uint64, error) { return 8, nil }

func (f mac64Field) ToDisplay(ctx bl.Context, data *Data) (string, error) {
	raw, err := ctx.Bytes(8)
	if err != nil {
		return "", err
	}
	return macString(orderedBytes(raw, f.Endian)), nil
}
