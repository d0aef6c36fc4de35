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

package plan

import (
	"fmt"

	"github.com/sqlcore/wherefilter/sql"
)

// JoinLevel is one table's contribution to a join pipeline's row, supplied
// by the caller (a join row iterator, typically) rather than assembled by
// Filter itself. A chain of JoinLevel values nests into a Frame chain in
// order: chain[0] is the outermost table of the join, chain[len-1] the
// most recently joined, matching the order a left-deep join plan produces
// them in.
type JoinLevel struct {
	Alias   string
	Columns sql.Schema
	Row     sql.Row
}

// Filter is the Join-Row Filter / Filter Handle: a WHERE expression bound
// to nothing in particular until Check or CheckJoined supplies the rows to
// test it against. Two entry points exist because a single-table scan and
// a join pipeline hand the filter their rows differently, not because the
// underlying test differs — both ultimately just build a Frame chain and
// hand it to the Predicate Checker.
type Filter struct {
	Where sql.Expression
	Child sql.Node
}

// NewFilter builds a Filter over child, testing Where against each of
// child's rows.
func NewFilter(where sql.Expression, child sql.Node) *Filter {
	return &Filter{Where: where, Child: child}
}

func (f *Filter) Children() []sql.Node { return []sql.Node{f.Child} }

func (f *Filter) Schema() sql.Schema { return f.Child.Schema() }

func (f *Filter) String() string { return fmt.Sprintf("Filter(%s)", f.Where) }

// RowIter filters f.Child's rows through Check, passing outer through
// unchanged so a Filter nested inside a correlated subquery's plan still
// sees the enclosing query's frame chain.
func (f *Filter) RowIter(ctx *sql.Context, outer *sql.Frame) (sql.RowIter, error) {
	child, err := f.Child.RowIter(ctx, outer)
	if err != nil {
		return nil, err
	}
	return &filterIter{filter: f, child: child, outer: outer, schema: f.Child.Schema()}, nil
}

// Check tests a single, unjoined row: the common case of a WHERE clause
// evaluated directly over a table scan's rows. parent chains outward to
// whatever correlated scope encloses this filter, or nil at the top level.
func (f *Filter) Check(ctx *sql.Context, parent *sql.Frame, alias string, columns sql.Schema, row sql.Row) (bool, error) {
	frame := sql.NewFrame(alias, columns, row, parent)
	return checkExpr(ctx, frame, f.Where)
}

// CheckJoined tests a row assembled from a join pipeline's per-table
// levels, nesting them onto parent in order (see JoinLevel). This is also
// the home of the folded-in "blended filter" case: a correlated
// subquery's own FROM-clause levels arrive as more entries in chain,
// nested on top of the outer query's already-bound parent, rather than as
// a separate code path.
func (f *Filter) CheckJoined(ctx *sql.Context, parent *sql.Frame, chain []JoinLevel) (bool, error) {
	frame := parent
	for _, lvl := range chain {
		frame = sql.NewFrame(lvl.Alias, lvl.Columns, lvl.Row, frame)
	}
	return checkExpr(ctx, frame, f.Where)
}

type filterIter struct {
	filter *Filter
	child  sql.RowIter
	outer  *sql.Frame
	schema sql.Schema
}

func (i *filterIter) Next(ctx *sql.Context) (sql.Row, error) {
	for {
		row, err := i.child.Next(ctx)
		if err != nil {
			return nil, err
		}
		ok, err := i.filter.Check(ctx, i.outer, "", i.schema, row)
		if err != nil {
			return nil, err
		}
		if ok {
			return row, nil
		}
	}
}

func (i *filterIter) Close(ctx *sql.Context) error { return i.child.Close(ctx) }
