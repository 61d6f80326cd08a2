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

package printer

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Options controls what the printer does to trivia.
//
// The zero Options strips comments; use [DefaultOptions] for a printer that
// reproduces its input exactly.
type Options struct {
	// KeepComments, when true, prints comments. When false they are dropped
	// and the whitespace around them is kept.
	KeepComments bool `yaml:"keep_comments"`

	// SimplifyWhitespace, when true, normalizes every whitespace run: tabs
	// become an indentation unit, runs of spaces collapse to one, blank lines
	// are dropped, and each remaining line is indented by one unit.
	//
	// A whitespace run holding only a line break prints as nothing, so code
	// after a line comment can be pulled into the comment when comments are
	// kept; the output is then no longer equivalent to the input.
	SimplifyWhitespace bool `yaml:"simplify_whitespace"`

	// Compact and Indent are reserved for layout control and are currently
	// ignored.
	Compact bool `yaml:"compact"`
	Indent  int  `yaml:"indent"`
}

// DefaultOptions returns the options under which printing a tree reproduces
// the text it was parsed from.
func DefaultOptions() Options {
	return Options{KeepComments: true}
}

// LoadOptions decodes YAML options on top of [DefaultOptions]. Unknown keys
// are an error.
func LoadOptions(data []byte) (Options, error) {
	opts := DefaultOptions()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		if len(bytes.TrimSpace(data)) == 0 {
			return opts, nil
		}
		return Options{}, fmt.Errorf("printer: invalid options: %w", err)
	}
	return opts, nil
}

// withDefaults returns a copy of opts with default values applied.
func (opts Options) withDefaults() Options {
	if opts.Indent <= 0 {
		opts.Indent = len(indentUnit)
	}
	return opts
}
