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

package ast

import "errors"

var (
	// ErrNoMatch is returned when a grammar node does not have the shape a
	// payload expects. Optional slots and repetitions treat it as absence.
	ErrNoMatch = errors.New("node does not match")

	// ErrStatementUnrecognized is returned when a statement's grammar node
	// has no counterpart in the tree. It is never treated as absence: the
	// grammar accepted something the tree cannot represent.
	ErrStatementUnrecognized = errors.New("unrecognized statement")
)
