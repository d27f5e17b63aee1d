// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package bytelayout

import "github.com/saferwall/bytelayout/log"

// Default bounds applied when an Options value leaves them at zero,
// mirroring the teacher's Options defaulting pattern in file.go's New.
const (
	// DefaultMaxChildren bounds how many children a single composite
	// (array/struct/union) may expand to during resolution, guarding
	// against a maliciously or accidentally huge declared array length.
	DefaultMaxChildren = 1 << 20

	// DefaultMaxDepth bounds how deeply resolution may nest into
	// children (composite inside composite) before it gives up. Named
	// dereference chains are walked separately and are not counted.
	DefaultMaxDepth = 256
)

// Options configures a resolution run. A nil *Options is equivalent to
// a zero Options with defaults applied, the same way pe.Options works
// with pe.New/pe.NewBytes.
type Options struct {
	// MaxChildren bounds the number of children produced by any single
	// composite type. Zero means DefaultMaxChildren.
	MaxChildren int

	// MaxDepth bounds the nesting depth of the resolved tree. Zero means
	// DefaultMaxDepth.
	MaxDepth int

	// Logger receives diagnostic messages during resolution (malformed
	// but recoverable input, anomalies). A nil Logger disables logging.
	Logger log.Logger
}

// WithDefaults returns a copy of o with zero fields replaced by their
// defaults. A nil receiver returns a fresh default Options.
func (o *Options) WithDefaults() *Options {
	out := Options{}
	if o != nil {
		out = *o
	}
	if out.MaxChildren == 0 {
		out.MaxChildren = DefaultMaxChildren
	}
	if out.MaxDepth == 0 {
		out.MaxDepth = DefaultMaxDepth
	}
	return &out
}

// helper returns a log.Helper around o's Logger (nil-safe).
func (o *Options) helper() *log.Helper {
	if o == nil {
		return log.NewHelper(nil)
	}
	return log.NewHelper(o.Logger)
}

// Logf reports a recoverable anomaly at LevelWarn through o's Logger,
// if any. Callers outside this package (datatype's resolver) use this
// instead of helper since helper itself stays unexported.
func (o *Options) Logf(format string, args ...any) {
	o.helper().Warnf(format, args...)
}
