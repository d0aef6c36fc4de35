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

// Expression is the Scalar Evaluator contract: given the current frame
// chain, it returns a comparable tagged value or an error.
// Identifiers (via the frame chain), literals and arithmetic implement it,
// and so do the comparison and IN-test nodes, whose Eval returns a Go bool.
// The Predicate Checker handles And/Or/Not/Nested itself and calls Eval
// for every other node.
type Expression interface {
	// Eval returns the expression's value for the row bound at the
	// innermost level of frame (which may itself chain outward into
	// enclosing, possibly correlated, scopes).
	Eval(ctx *Context, frame *Frame) (interface{}, error)
	// Resolved reports whether every identifier the expression touches
	// has been bound to a concrete frame position.
	Resolved() bool
	// String renders the expression the way it would appear in SQL.
	String() string
}

// Node is the minimal shape of a query-plan step the filter core composes
// with: something that can be iterated row by row, optionally correlated
// against an enclosing frame chain. Lexing/parsing, query planning and
// storage internals build the Node tree; this core only consumes it.
type Node interface {
	// Schema describes the columns this node's rows carry.
	Schema() Schema
	// RowIter opens an iterator over this node's rows. outer is the
	// enclosing frame chain this node's evaluation should be correlated
	// against (nil for an uncorrelated top-level query); it is threaded
	// through to any Filter nested inside this node's subtree.
	RowIter(ctx *Context, outer *Frame) (RowIter, error)
	String() string
}

// RowIter produces rows one at a time. Next returns ErrEndOfRows once
// exhausted.
type RowIter interface {
	Next(ctx *Context) (Row, error)
	Close(ctx *Context) error
}

// Store is the read-only collaborator that resolves a table identifier to
// its rows: scan_rows(table) for whatever a FROM clause or a subquery
// names. The filter
// core never calls Store directly — only transitively, through a Node's
// RowIter (see sql/plan.ResolvedTable).
type Store interface {
	Scan(ctx *Context, table string) (RowIter, error)
}

// ErrEndOfRows is returned by a RowIter's Next once it is exhausted. It is
// not one of the checker's own error kinds: it is the iteration-protocol
// sentinel every RowIter in this module uses in place of io.EOF, so that
// callers don't need to import the standard io package just to recognize
// end-of-rows.
var ErrEndOfRows = endOfRows{}

type endOfRows struct{}

func (endOfRows) Error() string { return "end of rows" }
