// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package datatype

import (
	"fmt"

	bl "github.com/saferwall/bytelayout"
)

// Resolve builds a Resolved snapshot of t at ctx using the default
// Options (DefaultMaxChildren/DefaultMaxDepth), per spec.md §4.5
// "Resolve". fieldName is nil for a resolution root; a parent struct
// or union passes its own field name when resolving a child.
func Resolve(t Type, ctx bl.Context, fieldName *string, data *Data) (*Resolved, error) {
	return ResolveWithOptions(t, ctx, fieldName, data, nil)
}

// ResolveWithOptions is Resolve with an explicit Options, letting a
// caller tighten or loosen the MaxChildren/MaxDepth bounds that guard
// against pathological inputs (a huge declared array length, or deeply
// nested composites), per SPEC_FULL.md §1's Options section.
func ResolveWithOptions(t Type, ctx bl.Context, fieldName *string, data *Data, opts *bl.Options) (*Resolved, error) {
	o := opts.WithDefaults()
	return resolveNode(t, ctx, fieldName, data, o, 0)
}

// resolveNode builds one Resolved node bottom-up, per spec.md §4.5's
// five numbered steps: base/aligned range, depth-first children,
// display, related, then the scalar projections - computed in
// left-to-right declaration order (spec.md §5's ordering guarantee),
// since childrenWithRange already returns them in that order.
func resolveNode(t Type, ctx bl.Context, fieldName *string, data *Data, o *bl.Options, depth int) (*Resolved, error) {
	if depth > o.MaxDepth {
		o.Logf("resolve: depth %d exceeds max %d, aborting", depth, o.MaxDepth)
		return nil, fmt.Errorf("%w: exceeded max resolution depth %d", bl.ErrCyclicReference, o.MaxDepth)
	}

	baseRange, err := t.BaseRange(ctx, data)
	if err != nil {
		return nil, err
	}
	alignedRange, err := t.AlignedRange(ctx, data)
	if err != nil {
		return nil, err
	}

	rangedChildren, err := t.childrenWithRange(ctx, data)
	if err != nil {
		return nil, err
	}
	if len(rangedChildren) > o.MaxChildren {
		o.Logf("resolve: %d children exceeds max %d, aborting", len(rangedChildren), o.MaxChildren)
		return nil, fmt.Errorf("%w: %d children exceeds max %d", bl.ErrInvalidConfiguration, len(rangedChildren), o.MaxChildren)
	}

	children := make([]Resolved, 0, len(rangedChildren))
	for _, c := range rangedChildren {
		var name *string
		if c.Name != "" {
			n := c.Name
			name = &n
		}
		child, err := resolveNode(c.Type, ctx.At(c.Range.Start), name, data, o, depth+1)
		if err != nil {
			return nil, err
		}
		children = append(children, *child)
	}

	display, err := t.ToDisplay(ctx, data)
	if err != nil {
		return nil, err
	}

	related, err := t.Related(ctx, data)
	if err != nil {
		return nil, err
	}

	r := &Resolved{
		BaseRange:    baseRange,
		AlignedRange: alignedRange,
		FieldName:    fieldName,
		Display:      display,
		Children:     children,
		Related:      related,
	}

	if can, _ := t.CanBeInteger(data); can {
		if v, err := t.ToInteger(ctx, data); err == nil {
			r.AsInteger = &v
		}
	}
	if can, _ := t.CanBeFloat(data); can {
		if v, err := t.ToFloat(ctx, data); err == nil {
			r.AsFloat = &v
		}
	}
	if can, _ := t.CanBeCharacter(data); can {
		if v, err := t.ToCharacter(ctx, data); err == nil {
			r.AsCharacter = &v
		}
	}
	if can, _ := t.CanBeString(data); can {
		if v, err := t.ToString(ctx, data); err == nil {
			r.AsString = &v
		}
	}

	return r, nil
}
