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
	"fmt"
	"strings"

	"github.com/coregx/coregex"
)

// indentUnit replaces tabs, and prefixes each line, of simplified
// whitespace.
const indentUnit = "    "

var spaceRuns = mustCompile(` {2,}`)

// SimplifyWhitespace normalizes a run of whitespace the way the printer does
// when [Options.SimplifyWhitespace] is set.
//
// Simplifying is idempotent.
func SimplifyWhitespace(text string) string {
	text = strings.ReplaceAll(text, "\t", indentUnit)

	var lines []string
	for line := range strings.SplitSeq(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		line = spaceRuns.ReplaceAllString(line, " ")
		if line == "" {
			continue
		}
		lines = append(lines, indentUnit+line)
	}
	return strings.Join(lines, "\n")
}

func mustCompile(pattern string) *coregex.Regexp {
	re, err := coregex.Compile(pattern)
	if err != nil {
		panic(fmt.Sprintf("printer: invalid pattern %q: %v", pattern, err))
	}
	return re
}
