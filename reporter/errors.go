// Copyright 2025-2026 The LeekwarsParser Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package reporter

import (
	"errors"
	"fmt"

	"github.com/NyalephTheCat/LeekwarsParser/source"
)

// ErrInvalidSource is a sentinel error that is returned by formatting when
// errors were reported but the configured reporter never returned a non-nil
// error.
var ErrInvalidSource = errors.New("parse failed: invalid LeekScript source")

// SourcePos identifies a location in a source file.
type SourcePos struct {
	Filename string
	// Line and Col are 1-indexed; Col counts grapheme clusters.
	Line, Col int
	// Offset is the 0-indexed byte offset.
	Offset int
}

// PosOf returns the SourcePos of the given byte offset in f.
func PosOf(f *source.File, offset int) SourcePos {
	loc := f.Location(offset)
	return SourcePos{
		Filename: f.Path(),
		Line:     loc.Line,
		Col:      loc.Column,
		Offset:   loc.Offset,
	}
}

// String implements [fmt.Stringer].
func (p SourcePos) String() string {
	if p.Line <= 0 || p.Col <= 0 {
		return p.Filename
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Col)
}

// ErrorWithPos is an error about a source file that includes information about
// the location in the file that caused the error.
//
// The value of Error() will contain both the SourcePos and Underlying error.
// The value of Unwrap() will only be the Underlying error.
type ErrorWithPos interface {
	error
	GetPosition() SourcePos
	Unwrap() error
}

// Error creates a new ErrorWithPos from the given error and source position.
func Error(pos SourcePos, err error) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: err}
}

// Errorf creates a new ErrorWithPos whose underlying error is created using the
// given message format and arguments (via fmt.Errorf).
func Errorf(pos SourcePos, format string, args ...any) ErrorWithPos {
	return errorWithSourcePos{pos: pos, underlying: fmt.Errorf(format, args...)}
}

type errorWithSourcePos struct {
	underlying error
	pos        SourcePos
}

func (e errorWithSourcePos) Error() string {
	return fmt.Sprintf("%v: %v", e.pos, e.underlying)
}

func (e errorWithSourcePos) GetPosition() SourcePos {
	return e.pos
}

func (e errorWithSourcePos) Unwrap() error {
	return e.underlying
}

var _ ErrorWithPos = errorWithSourcePos{}
