// Copyright 2018 Saferwall. All rights reserved.
// Use of this source code is governed by Apache v2 license
// license that can be found in the LICENSE file.

// Package log is a small leveled-logging abstraction, reconstructed
// from the calling pattern the teacher's own log sub-package exposes
// (NewStdLogger/NewFilter/FilterLevel/NewHelper): a client-supplied
// Logger, an optional level Filter wrapped around it, and a Helper
// that exposes Debugf/Infof/Warnf/Errorf convenience methods.
package log

import (
	"fmt"
	"io"
)

// Level is a logging severity.
type Level int

// Severity levels, lowest to highest.
const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Logger is the minimal sink every call site in this module writes
// through.
type Logger interface {
	Log(level Level, msg string) error
}

// stdLogger writes every record to an io.Writer as "LEVEL msg".
type stdLogger struct {
	w io.Writer
}

// NewStdLogger returns a Logger that writes to w.
func NewStdLogger(w io.Writer) Logger {
	return &stdLogger{w: w}
}

func (s *stdLogger) Log(level Level, msg string) error {
	_, err := fmt.Fprintf(s.w, "%s %s\n", level, msg)
	return err
}

// filter drops records below a minimum level before they reach the
// wrapped Logger.
type filter struct {
	next Logger
	min  Level
}

// FilterOption configures a Filter.
type FilterOption func(*filter)

// FilterLevel sets the minimum level a record must meet to pass the
// filter.
func FilterLevel(min Level) FilterOption {
	return func(f *filter) { f.min = min }
}

// NewFilter wraps next with the given options.
func NewFilter(next Logger, opts ...FilterOption) Logger {
	f := &filter{next: next, min: LevelInfo}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *filter) Log(level Level, msg string) error {
	if level < f.min {
		return nil
	}
	return f.next.Log(level, msg)
}

// Helper adds printf-style convenience methods around a Logger.
type Helper struct {
	logger Logger
}

// NewHelper wraps logger in a Helper. A nil logger makes every method
// a no-op, so callers can pass an optional *Helper without a nil
// check at every call site.
func NewHelper(logger Logger) *Helper {
	return &Helper{logger: logger}
}

func (h *Helper) log(level Level, format string, args ...any) {
	if h == nil || h.logger == nil {
		return
	}
	_ = h.logger.Log(level, fmt.Sprintf(format, args...))
}

// Debugf logs at LevelDebug.
func (h *Helper) Debugf(format string, args ...any) { h.log(LevelDebug, format, args...) }

// Infof logs at LevelInfo.
func (h *Helper) Infof(format string, args ...any) { h.log(LevelInfo, format, args...) }

// Warnf logs at LevelWarn.
func (h *Helper) Warnf(format string, args ...any) { h.log(LevelWarn, format, args...) }

// Errorf logs at LevelError.
func (h *Helper) Errorf(format string, args ...any) { h.log(LevelError, format, args...) }
