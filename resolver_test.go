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

package leekscript_test

import (
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	leekscript "github.com/NyalephTheCat/LeekwarsParser"
)

func memFS(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for path, text := range files {
		require.NoError(t, afero.WriteFile(fsys, path, []byte(text), 0o644))
	}
	return fsys
}

func read(t *testing.T, r leekscript.Resolver, path string) string {
	t.Helper()
	res, err := r.FindFileByPath(path)
	require.NoError(t, err)
	require.NotNil(t, res.Source)
	data, err := io.ReadAll(res.Source)
	require.NoError(t, err)
	if c, ok := res.Source.(io.Closer); ok {
		require.NoError(t, c.Close())
	}
	return string(data)
}

func TestSourceResolver(t *testing.T) {
	t.Parallel()

	fsys := memFS(t, map[string]string{
		"lib/util.ls":   "util;",
		"src/main.ls":   "main;",
		"src/util.ls":   "shadowed;",
		"other/skip.ls": "skip;",
	})

	r := &leekscript.SourceResolver{Accessor: leekscript.FSAccessor(fsys)}
	assert.Equal(t, "main;", read(t, r, "src/main.ls"))

	r = &leekscript.SourceResolver{
		ImportPaths: []string{"lib", "src"},
		Accessor:    leekscript.FSAccessor(fsys),
	}
	assert.Equal(t, "util;", read(t, r, "util.ls"))
	assert.Equal(t, "main;", read(t, r, "main.ls"))

	_, err := r.FindFileByPath("skip.ls")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestCompositeResolver(t *testing.T) {
	t.Parallel()

	first := errors.New("first")
	r := leekscript.CompositeResolver{
		leekscript.ResolverFunc(func(string) (leekscript.SearchResult, error) {
			return leekscript.SearchResult{}, first
		}),
		&leekscript.SourceResolver{
			Accessor: leekscript.FSAccessor(memFS(t, map[string]string{"a.ls": "a;"})),
		},
	}
	assert.Equal(t, "a;", read(t, r, "a.ls"))

	_, err := r.FindFileByPath("b.ls")
	assert.ErrorIs(t, err, first)

	_, err = leekscript.CompositeResolver(nil).FindFileByPath("a.ls")
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestGlob(t *testing.T) {
	t.Parallel()

	fsys := memFS(t, map[string]string{
		"ai/main.ls":          "",
		"ai/lib/move.ls":      "",
		"ai/lib/deep/path.ls": "",
		"ai/notes.txt":        "",
		"other.ls":            "",
	})

	paths, err := leekscript.Glob(fsys, "ai/**/*.ls")
	require.NoError(t, err)
	assert.Equal(t, []string{"ai/lib/deep/path.ls", "ai/lib/move.ls", "ai/main.ls"}, paths)

	paths, err = leekscript.Glob(fsys, "*.ls", "ai/*.ls", "ai/main.ls")
	require.NoError(t, err)
	assert.Equal(t, []string{"ai/main.ls", "other.ls"}, paths)

	_, err = leekscript.Glob(fsys, "ai/[")
	assert.Error(t, err)
}
