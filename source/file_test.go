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

package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NyalephTheCat/LeekwarsParser/source"
)

func TestLocation(t *testing.T) {
	t.Parallel()

	file := source.NewFile("a.ls", "ab\nce\u0301d\n\nx")
	tests := []struct {
		offset     int
		line, col  int
		wantOffset int
	}{
		{offset: -1, line: 1, col: 1, wantOffset: 0},
		{offset: 0, line: 1, col: 1},
		{offset: 2, line: 1, col: 3},
		{offset: 3, line: 2, col: 1},
		{offset: 7, line: 2, col: 3}, // After "cé" with a combining accent.
		{offset: 9, line: 3, col: 1},
		{offset: 10, line: 4, col: 1},
		{offset: 11, line: 4, col: 2},
		{offset: 100, line: 4, col: 2, wantOffset: 11},
	}
	for _, test := range tests {
		loc := file.Location(test.offset)
		want := test.wantOffset
		if want == 0 && test.offset > 0 {
			want = test.offset
		}
		assert.Equal(t, source.Location{Offset: want, Line: test.line, Column: test.col}, loc, "offset %d", test.offset)
	}
}

func TestSpan(t *testing.T) {
	t.Parallel()

	file := source.NewFile("a.ls", "var x\n= 1")
	span := file.Span(4, 9)
	assert.Equal(t, "x\n= 1", span.Text())
	assert.Equal(t, "1:5", span.StartLoc().String())
	assert.Equal(t, "2:4", file.Location(span.End).String())
	assert.Equal(t, "a.ls:1:5", span.String())
	assert.False(t, span.IsZero())
	assert.True(t, source.Span{}.IsZero())
}

func TestNilFile(t *testing.T) {
	t.Parallel()

	var file *source.File
	assert.Equal(t, "", file.Path())
	assert.Equal(t, "", file.Text())
	assert.Equal(t, source.Location{Line: 1, Column: 1}, file.Location(5))
}
