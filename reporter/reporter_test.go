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

package reporter_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NyalephTheCat/LeekwarsParser/reporter"
	"github.com/NyalephTheCat/LeekwarsParser/source"
)

func TestErrorWithPos(t *testing.T) {
	t.Parallel()

	sentinel := errors.New("boom")
	pos := reporter.PosOf(source.NewFile("a.ls", "x\n  y"), 4)
	assert.Equal(t, reporter.SourcePos{Filename: "a.ls", Line: 2, Col: 3, Offset: 4}, pos)

	err := reporter.Error(pos, sentinel)
	assert.EqualError(t, err, "a.ls:2:3: boom")
	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, pos, err.GetPosition())

	assert.Equal(t, "a.ls", reporter.SourcePos{Filename: "a.ls"}.String())
}

func TestHandlerDefault(t *testing.T) {
	t.Parallel()

	h := reporter.NewHandler(nil)
	first := reporter.Errorf(reporter.SourcePos{Filename: "a.ls", Line: 1, Col: 1}, "first")
	second := reporter.Errorf(reporter.SourcePos{Filename: "b.ls", Line: 1, Col: 1}, "second")

	require.Equal(t, first, h.HandleError(first))
	assert.Equal(t, first, h.HandleError(second))
	assert.Equal(t, first, h.Error())
}

func TestHandlerCollecting(t *testing.T) {
	t.Parallel()

	var (
		mu       sync.Mutex
		errs     []reporter.ErrorWithPos
		warnings []reporter.ErrorWithPos
	)
	rep := reporter.NewReporter(
		func(err reporter.ErrorWithPos) error {
			mu.Lock()
			defer mu.Unlock()
			errs = append(errs, err)
			return nil
		},
		func(err reporter.ErrorWithPos) {
			mu.Lock()
			defer mu.Unlock()
			warnings = append(warnings, err)
		},
	)
	h := reporter.NewHandler(rep)
	assert.NoError(t, h.Error())

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = h.HandleError(reporter.Errorf(reporter.SourcePos{Filename: "a.ls"}, "bad"))
			h.HandleWarning(reporter.SourcePos{Filename: "a.ls"}, errors.New("odd"))
		}()
	}
	wg.Wait()

	assert.Len(t, errs, 8)
	assert.Len(t, warnings, 8)
	assert.ErrorIs(t, h.Error(), reporter.ErrInvalidSource)
}

func TestHandlerUnpositioned(t *testing.T) {
	t.Parallel()

	var reported bool
	h := reporter.NewHandler(reporter.NewReporter(func(reporter.ErrorWithPos) error {
		reported = true
		return nil
	}, nil))

	err := errors.New("io failure")
	assert.Equal(t, err, h.HandleError(err))
	assert.False(t, reported)
	assert.Equal(t, err, h.Error())
}
