// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

package bytelayout

import (
	"os"

	mmap "github.com/edsrzf/mmap-go"
)

// fileContext keeps the mmap and file handle alive for the lifetime of
// a Context built from a path, the same pattern as pe.File holding
// pe.data (an mmap.MMap) and pe.f (an *os.File) side by side.
type fileContext struct {
	data mmap.MMap
	f    *os.File
}

// Close unmaps the file and closes the handle.
func (fc *fileContext) Close() error {
	var err error
	if fc.data != nil {
		err = fc.data.Unmap()
	}
	if fc.f != nil {
		if cerr := fc.f.Close(); err == nil {
			err = cerr
		}
	}
	return err
}

// NewContextFromFile memory-maps the file at path read-only and
// returns a Context over its bytes, plus a closer the caller must
// invoke once done. This mirrors pe.New's mmap.Map(f, mmap.RDONLY, 0)
// call, generalized from "open a PE" to "open any byte source".
func NewContextFromFile(path string) (Context, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return Context{}, nil, err
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return Context{}, nil, err
	}

	fc := &fileContext{data: data, f: f}
	return New(data), fc.Close, nil
}
