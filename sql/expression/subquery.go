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

package expression

import (
	"fmt"

	"github.com/sqlcore/wherefilter/sql"
)

// Subquery wraps a plan subtree so it can appear where an Expression is
// expected: as a scalar operand, or as the right-hand side of InSubquery.
// Its own Resolved/String only speak to the wrapper; the wrapped Node's
// tree is always considered resolved once built, since planning and
// parsing happen upstream of this core.
type Subquery struct {
	Query sql.Node
}

// NewSubquery wraps query for use as an expression operand.
func NewSubquery(query sql.Node) *Subquery {
	return &Subquery{Query: query}
}

func (s *Subquery) Resolved() bool { return true }

func (s *Subquery) String() string { return fmt.Sprintf("(%s)", s.Query) }

// Eval runs the subquery in scalar position: frame becomes the outer frame
// correlated rows may reference, and the result is the first column of the
// first row. Zero rows evaluate to NULL; more than one row is always an
// error here, since a scalar context has nowhere to put a second row.
// InSubquery.Eval and EvalMultiple do not go through Eval and read as
// many rows as they need.
func (s *Subquery) Eval(ctx *sql.Context, frame *sql.Frame) (interface{}, error) {
	iter, err := s.Query.RowIter(ctx, frame)
	if err != nil {
		return nil, err
	}
	defer iter.Close(ctx)

	row, err := iter.Next(ctx)
	if err == sql.ErrEndOfRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	extra, err := iter.Next(ctx)
	if err != nil && err != sql.ErrEndOfRows {
		return nil, err
	}
	if err == nil {
		_ = extra
		return nil, sql.ErrSubqueryTooManyRows.New()
	}

	if len(row) == 0 {
		return nil, nil
	}
	return row[0], nil
}

// EvalMultiple runs the subquery to completion and returns every row's
// first column, honoring ctx.Config.MaxSubqueryRows as a guard against an
// unbounded correlated scan. Unlike InSubquery.Eval's row-by-row scan,
// this always materializes the full result set; callers that only need
// to test membership should prefer InSubquery.Eval instead.
func (s *Subquery) EvalMultiple(ctx *sql.Context, frame *sql.Frame) ([]interface{}, error) {
	iter, err := s.Query.RowIter(ctx, frame)
	if err != nil {
		return nil, err
	}
	defer iter.Close(ctx)

	limit := 0
	if ctx.Config != nil {
		limit = ctx.Config.MaxSubqueryRows
	}

	var values []interface{}
	for {
		row, err := iter.Next(ctx)
		if err == sql.ErrEndOfRows {
			return values, nil
		}
		if err != nil {
			return nil, err
		}
		if limit > 0 && len(values) >= limit {
			return nil, sql.ErrTooManySubqueryRows.New(limit)
		}
		if len(row) == 0 {
			values = append(values, nil)
			continue
		}
		values = append(values, row[0])
	}
}

// InSubquery is `expr IN (subquery)` / `expr NOT IN (subquery)`. The
// subquery's column count is enforced at construction-adjacent Eval
// time rather than when the Subquery is built, since Schema() is only
// meaningful once the wrapped Node is fully resolved.
type InSubquery struct {
	Left     sql.Expression
	Subquery *Subquery
	Negated  bool
}

// NewInSubquery builds an IN-subquery test.
func NewInSubquery(left sql.Expression, negated bool, subquery *Subquery) *InSubquery {
	return &InSubquery{Left: left, Subquery: subquery, Negated: negated}
}

func (s *InSubquery) Resolved() bool { return s.Left.Resolved() }

// Eval scans the subquery row by row, comparing each row's first column
// to Left as soon as it's produced, and stops at whichever comes first: a
// match or a row-production error. A later row's error never displaces an
// already-found match.
func (s *InSubquery) Eval(ctx *sql.Context, frame *sql.Frame) (interface{}, error) {
	if schema := s.Subquery.Query.Schema(); len(schema) != 1 {
		return nil, sql.ErrSubqueryTooManyColumns.New(len(schema))
	}

	target, err := s.Left.Eval(ctx, frame)
	if err != nil {
		return nil, err
	}

	iter, err := s.Subquery.Query.RowIter(ctx, frame)
	if err != nil {
		return nil, err
	}
	defer iter.Close(ctx)

	limit := 0
	if ctx.Config != nil {
		limit = ctx.Config.MaxSubqueryRows
	}

	seen := 0
	for {
		row, err := iter.Next(ctx)
		if err == sql.ErrEndOfRows {
			return s.Negated, nil
		}
		if err != nil {
			return nil, err
		}
		if limit > 0 && seen >= limit {
			return nil, sql.ErrTooManySubqueryRows.New(limit)
		}
		seen++

		var v interface{}
		if len(row) > 0 {
			v = row[0]
		}
		eq, err := sql.EqualValues(target, v)
		if err != nil {
			return nil, err
		}
		if eq {
			return !s.Negated, nil
		}
	}
}

func (s *InSubquery) String() string {
	not := ""
	if s.Negated {
		not = "NOT "
	}
	return fmt.Sprintf("(%s %sIN %s)", s.Left, not, s.Subquery)
}
