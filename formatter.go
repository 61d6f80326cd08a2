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
	"context"
	"fmt"
	"io"
	"runtime"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/semaphore"

	"github.com/NyalephTheCat/LeekwarsParser/ast"
	"github.com/NyalephTheCat/LeekwarsParser/grammar"
	"github.com/NyalephTheCat/LeekwarsParser/printer"
	"github.com/NyalephTheCat/LeekwarsParser/reporter"
	"github.com/NyalephTheCat/LeekwarsParser/source"
)

// Formatter parses and prints LeekScript files. Its only required field is
// Resolver.
type Formatter struct {
	// Resolves path names into source code or syntax trees.
	Resolver Resolver
	// The maximum parallelism to use when processing files. If unspecified or
	// set to a non-positive value, then min(runtime.NumCPU(),
	// runtime.GOMAXPROCS(-1)) will be used.
	MaxParallelism int
	// A custom error and warning reporter. If unspecified a default reporter
	// is used. A default reporter fails on the first error and ignores all
	// warnings.
	Reporter reporter.Reporter
	// The options used to print files. If nil, [printer.DefaultOptions] is
	// used, and each file is printed back exactly as it was read.
	Options *printer.Options
	// Receives a debug entry for each processed file, and a warning for each
	// failure. If nil, nothing is logged.
	Logger logrus.FieldLogger
}

// Result is the outcome of formatting a single file.
type Result struct {
	// The path the file was resolved from.
	Path string
	// The file's syntax tree.
	Program *ast.Program
	// The printed file.
	Output string
}

// Format parses and prints the given files. Results are returned in the same
// order as paths; a path given more than once is only processed once.
//
// If the reporter returns an error, or a file cannot be resolved, processing
// stops and that error is returned. If errors were reported but the reporter
// returned nil for all of them, [reporter.ErrInvalidSource] is returned.
func (f *Formatter) Format(ctx context.Context, paths ...string) ([]Result, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	par := f.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}

	options := printer.DefaultOptions()
	if f.Options != nil {
		options = *f.Options
	}

	e := executor{
		f:       f,
		h:       reporter.NewHandler(f.Reporter),
		s:       semaphore.NewWeighted(int64(par)),
		log:     f.logger(),
		options: options,
		cancel:  cancel,
		results: map[string]*result{},
	}

	results := make([]*result, len(paths))
	for i, path := range paths {
		results[i] = e.format(ctx, path)
	}

	out := make([]Result, len(paths))
	for i, r := range results {
		<-r.ready
		out[i] = r.res
	}
	if err := e.failure(); err != nil {
		return nil, err
	}
	if err := e.h.Error(); err != nil {
		return nil, err
	}
	return out, nil
}

func (f *Formatter) logger() logrus.FieldLogger {
	if f.Logger != nil {
		return f.Logger
	}
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

type result struct {
	ready chan struct{}
	res   Result
}

type executor struct {
	f       *Formatter
	h       *reporter.Handler
	s       *semaphore.Weighted
	log     logrus.FieldLogger
	options printer.Options
	cancel  context.CancelFunc

	// Only touched by Format's goroutine.
	results map[string]*result

	mu  sync.Mutex
	err error
}

// abort records the first failure and stops all pending work.
func (e *executor) abort(err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.err == nil {
		e.err = err
	}
	e.cancel()
}

func (e *executor) failure() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

func (e *executor) format(ctx context.Context, path string) *result {
	if r := e.results[path]; r != nil {
		return r
	}
	r := &result{ready: make(chan struct{})}
	e.results[path] = r
	go e.doFormat(ctx, path, r)
	return r
}

func (e *executor) doFormat(ctx context.Context, path string, r *result) {
	defer close(r.ready)
	if err := e.s.Acquire(ctx, 1); err != nil {
		e.abort(err)
		return
	}
	defer e.s.Release(1)

	log := e.log.WithField("path", path)
	res, err := e.formatFile(path)
	if err != nil {
		log.WithError(err).Warn("cannot format file")
		e.abort(err)
		return
	}
	if res.Program == nil {
		log.Warn("skipped file with errors")
	} else {
		log.WithFields(logrus.Fields{
			"bytes":      len(res.Output),
			"statements": len(res.Program.Statements),
		}).Debug("formatted file")
	}
	r.res = res
}

func (e *executor) formatFile(path string) (Result, error) {
	sr, err := e.f.Resolver.FindFileByPath(path)
	if err != nil {
		return Result{}, err
	}
	defer func() {
		if c, ok := sr.Source.(io.Closer); ok {
			_ = c.Close()
		}
	}()

	prog := sr.Program
	if prog == nil {
		if sr.Source == nil {
			return Result{}, fmt.Errorf("search result for %q has neither source nor program", path)
		}
		var text strings.Builder
		if _, err := io.Copy(&text, sr.Source); err != nil {
			return Result{}, fmt.Errorf("reading %q: %w", path, err)
		}
		prog, err = e.parse(path, text.String())
		if err != nil || prog == nil {
			return Result{Path: path}, err
		}
	}

	if len(prog.Statements) == 0 {
		e.h.HandleWarning(reporter.SourcePos{Filename: path, Line: 1, Col: 1}, ErrEmptySource)
	}
	return Result{
		Path:    path,
		Program: prog,
		Output:  printer.Print(e.options, prog),
	}, nil
}

// parse parses a file, passing failures through the handler. A failure the
// reporter chooses to ignore yields a nil program and no error, so that
// processing can continue with other files; Format still fails once all files
// are done.
func (e *executor) parse(path, text string) (*ast.Program, error) {
	tree, err := grammar.Parse(source.NewFile(path, text), grammar.Root)
	if err == nil {
		var prog *ast.Program
		if prog, err = ast.Convert(tree); err == nil {
			return prog, nil
		}
	}
	return nil, e.h.HandleError(err)
}
