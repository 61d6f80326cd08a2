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

// Package source provides the source files handled by the parser, along with
// the bookkeeping needed to turn byte offsets into line and column positions.
package source

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rivo/uniseg"
	"github.com/tidwall/btree"
)

// File is a source code file being parsed.
//
// Files are immutable once created. A nil *File behaves like an empty file
// with the path name "".
type File struct {
	path, text string

	once sync.Once
	// Maps the byte offset at which each line starts to its 1-indexed line
	// number. Built lazily on the first position query.
	lines btree.Map[int, int]
}

// NewFile constructs a new source file.
func NewFile(path, text string) *File {
	return &File{path: path, text: text}
}

// Path returns this file's filesystem path.
//
// It doesn't need to be a real path; it is only used in diagnostics.
func (f *File) Path() string {
	if f == nil {
		return ""
	}
	return f.path
}

// Text returns this file's textual contents.
func (f *File) Text() string {
	if f == nil {
		return ""
	}
	return f.text
}

// Span is a shorthand for creating a new Span.
func (f *File) Span(start, end int) Span {
	return Span{File: f, Start: start, End: end}
}

// Location resolves a byte offset into a full Location.
//
// Columns are counted in grapheme clusters, so that a column matches what a
// user sees in an editor. This operation is O(log n) in the number of lines.
func (f *File) Location(offset int) Location {
	if f == nil || offset <= 0 {
		return Location{Offset: 0, Line: 1, Column: 1}
	}
	if offset > len(f.text) {
		offset = len(f.text)
	}

	f.once.Do(f.buildLines)

	start, line := 0, 1
	f.lines.Descend(offset, func(key, value int) bool {
		start, line = key, value
		return false
	})

	return Location{
		Offset: offset,
		Line:   line,
		Column: uniseg.GraphemeClusterCount(f.text[start:offset]) + 1,
	}
}

func (f *File) buildLines() {
	f.lines.Set(0, 1)
	line := 1
	text := f.text
	offset := 0
	for {
		nl := strings.IndexByte(text, '\n')
		if nl < 0 {
			return
		}
		offset += nl + 1
		text = text[nl+1:]
		line++
		f.lines.Set(offset, line)
	}
}

// Location is a user-displayable location within a source code file.
type Location struct {
	// The byte offset for this location.
	Offset int

	// The line and column for this location, 1-indexed.
	Line, Column int
}

// String implements [fmt.Stringer].
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// Span is a half-open range of bytes within a File.
type Span struct {
	File       *File
	Start, End int
}

// IsZero returns whether this is the zero span.
func (s Span) IsZero() bool {
	return s.File == nil && s.Start == 0 && s.End == 0
}

// Text returns the text this span covers.
func (s Span) Text() string {
	return s.File.Text()[s.Start:s.End]
}

// StartLoc returns the location of the first byte of this span.
func (s Span) StartLoc() Location {
	return s.File.Location(s.Start)
}

// String implements [fmt.Stringer].
func (s Span) String() string {
	return fmt.Sprintf("%s:%v", s.File.Path(), s.StartLoc())
}
