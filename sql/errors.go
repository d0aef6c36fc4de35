// Copyright 2020-2021 Dolthub, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package sql

import "gopkg.in/src-d/go-errors.v1"

// Sentinel error kinds raised by the filter core. Collaborator errors
// (from Evaluate, from Select, from a
// Store scan) are never wrapped in one of these; they propagate verbatim.
var (
	// ErrUnimplemented is raised for an expression shape or operator the
	// Predicate Checker does not recognize. Fatal for the current query
	// step; never silently treated as false.
	ErrUnimplemented = errors.NewKind("unimplemented: %s")

	// ErrInvalidOperandColumns describes a mismatched column arity between
	// the left and right sides of an IN test (e.g. a scalar compared
	// against a tuple). No code in this module raises it.
	ErrInvalidOperandColumns = errors.NewKind("invalid operand column count, left has %d and right has %d")

	// ErrUnsupportedInOperand describes an IN right-hand side of a shape
	// that cannot be iterated (not a list, not a subquery, not a tuple).
	// No code in this module raises it: InTuple and InSubquery carry their
	// right-hand sides as typed fields.
	ErrUnsupportedInOperand = errors.NewKind("in operand of unsupported type %T")

	// ErrSubqueryTooManyColumns is raised when a subquery used as the
	// right-hand side of IN projects more than one column.
	ErrSubqueryTooManyColumns = errors.NewKind("subquery used in IN must return exactly one column, got %d")

	// ErrTooManySubqueryRows is raised by the subquery bridge when
	// Config.MaxSubqueryRows is exceeded while scanning for an IN match.
	ErrTooManySubqueryRows = errors.NewKind("subquery produced more than %d rows while evaluating IN")

	// ErrSubqueryTooManyRows is raised when a Subquery is evaluated in
	// scalar position (anywhere other than the right-hand side of IN) and
	// produces more than one row.
	ErrSubqueryTooManyRows = errors.NewKind("subquery used as an expression returned more than one row")
)
