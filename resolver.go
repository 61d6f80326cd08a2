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

package leekscript

import (
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/afero"

	"github.com/NyalephTheCat/LeekwarsParser/ast"
)

// Resolver is used by the formatter to load the files it is asked to format.
type Resolver interface {
	// FindFileByPath searches for information for the given file path. If no
	// result is available, it should return a non-nil error, such as
	// fs.ErrNotExist.
	FindFileByPath(string) (SearchResult, error)
}

// SearchResult represents information about a file. Exactly one of its fields
// should be set. If both are, Program is used.
type SearchResult struct {
	// Source code for the file. If it is also an io.Closer, the formatter
	// closes it once it has been read.
	Source io.Reader
	// An already-converted syntax tree for the file.
	Program *ast.Program
}

// ResolverFunc is a simple function type that implements Resolver.
type ResolverFunc func(string) (SearchResult, error)

var _ Resolver = ResolverFunc(nil)

// FindFileByPath implements Resolver.
func (f ResolverFunc) FindFileByPath(path string) (SearchResult, error) {
	return f(path)
}

// CompositeResolver is a slice of resolvers, which are consulted in order
// until one can supply a result. If none of the constituent resolvers can
// supply a result, the error returned by the first resolver is returned. If
// the slice of resolvers is empty, fs.ErrNotExist is always returned.
type CompositeResolver []Resolver

var _ Resolver = CompositeResolver(nil)

// FindFileByPath implements Resolver.
func (f CompositeResolver) FindFileByPath(path string) (SearchResult, error) {
	if len(f) == 0 {
		return SearchResult{}, fs.ErrNotExist
	}
	var firstErr error
	for _, res := range f {
		r, err := res.FindFileByPath(path)
		if err == nil {
			return r, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return SearchResult{}, firstErr
}

// SourceResolver can resolve file names by returning source code. It uses an
// optional list of import paths to search. By default, it searches the file
// system.
type SourceResolver struct {
	// Optional list of import paths. If present and not empty, then all file
	// paths to find are assumed to be relative to one of these paths. If nil
	// or empty, all file paths to find are assumed to be relative to the
	// current working directory.
	ImportPaths []string
	// Optional function for returning a file's contents. If nil, then
	// os.Open is used to open files on the file system.
	Accessor func(path string) (io.ReadCloser, error)
}

var _ Resolver = (*SourceResolver)(nil)

// FindFileByPath implements Resolver.
func (r *SourceResolver) FindFileByPath(path string) (SearchResult, error) {
	if len(r.ImportPaths) == 0 {
		reader, err := r.accessFile(path)
		if err != nil {
			return SearchResult{}, err
		}
		return SearchResult{Source: reader}, nil
	}

	var e error
	for _, importPath := range r.ImportPaths {
		reader, err := r.accessFile(filepath.Join(importPath, path))
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				e = err
				continue
			}
			return SearchResult{}, err
		}
		return SearchResult{Source: reader}, nil
	}
	return SearchResult{}, e
}

func (r *SourceResolver) accessFile(path string) (io.ReadCloser, error) {
	if r.Accessor != nil {
		return r.Accessor(path)
	}
	return os.Open(path)
}

// FSAccessor returns a file accessor, suitable for [SourceResolver], that
// opens files from the given file system.
func FSAccessor(fsys afero.Fs) func(string) (io.ReadCloser, error) {
	return func(path string) (io.ReadCloser, error) {
		return fsys.Open(path)
	}
}

// Glob expands doublestar patterns, such as "scripts/**/*.leek", against the
// given file system. The result is sorted and free of duplicates.
func Glob(fsys afero.Fs, patterns ...string) ([]string, error) {
	iofs := afero.NewIOFS(fsys)
	var paths []string
	for _, pattern := range patterns {
		matches, err := doublestar.Glob(iofs, filepath.ToSlash(pattern), doublestar.WithFilesOnly())
		if err != nil {
			return nil, err
		}
		paths = append(paths, matches...)
	}
	slices.Sort(paths)
	return slices.Compact(paths), nil
}
