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

// CrossJoin is the nested-loop Cartesian product of Left and Right, the
// join pipeline a Filter sits on top of to turn it into an inner join.
// Its own rows are never filtered; that is Filter's job.
type CrossJoin struct {
	Left, Right sql.Node
}

// NewCrossJoin builds the Cartesian product of left and right.
func NewCrossJoin(left, right sql.Node) *CrossJoin {
	return &CrossJoin{Left: left, Right: right}
}

func (j *CrossJoin) Children() []sql.Node { return []sql.Node{j.Left, j.Right} }

func (j *CrossJoin) Schema() sql.Schema {
	return append(append(sql.Schema{}, j.Left.Schema()...), j.Right.Schema()...)
}

func (j *CrossJoin) String() string { return fmt.Sprintf("CrossJoin(%s, %s)", j.Left, j.Right) }

func (j *CrossJoin) RowIter(ctx *sql.Context, outer *sql.Frame) (sql.RowIter, error) {
	left, err := j.Left.RowIter(ctx, outer)
	if err != nil {
		return nil, err
	}
	return &crossJoinIter{join: j, left: left, outer: outer, ctx: ctx}, nil
}

type crossJoinIter struct {
	join  *CrossJoin
	left  sql.RowIter
	right sql.RowIter
	outer *sql.Frame
	ctx   *sql.Context

	leftRow sql.Row
}

func (i *crossJoinIter) Next(ctx *sql.Context) (sql.Row, error) {
	for {
		if i.right == nil {
			row, err := i.left.Next(ctx)
			if err != nil {
				return nil, err
			}
			i.leftRow = row

			right, err := i.join.Right.RowIter(ctx, i.outer)
			if err != nil {
				return nil, err
			}
			i.right = right
		}

		rightRow, err := i.right.Next(ctx)
		if err == sql.ErrEndOfRows {
			if cerr := i.right.Close(ctx); cerr != nil {
				return nil, cerr
			}
			i.right = nil
			continue
		}
		if err != nil {
			return nil, err
		}

		row := make(sql.Row, 0, len(i.leftRow)+len(rightRow))
		row = append(row, i.leftRow...)
		row = append(row, rightRow...)
		return row, nil
	}
}

func (i *crossJoinIter) Close(ctx *sql.Context) error {
	if i.right != nil {
		if err := i.right.Close(ctx); err != nil {
			return err
		}
	}
	return i.left.Close(ctx)
}

// InnerJoin is a CrossJoin with Cond applied row by row through the
// Predicate Checker, both sides bound into a single two-level Frame chain
// (Left outermost, Right innermost) so Cond can reference either side's
// columns by alias — a join pipeline feeding rows into the checker one
// join level at a time.
type InnerJoin struct {
	Left, Right sql.Node
	Cond        sql.Expression
}

// NewInnerJoin builds an inner join of left and right on cond.
func NewInnerJoin(left, right sql.Node, cond sql.Expression) *InnerJoin {
	return &InnerJoin{Left: left, Right: right, Cond: cond}
}

func (j *InnerJoin) Children() []sql.Node { return []sql.Node{j.Left, j.Right} }

func (j *InnerJoin) Schema() sql.Schema {
	return append(append(sql.Schema{}, j.Left.Schema()...), j.Right.Schema()...)
}

func (j *InnerJoin) String() string {
	return fmt.Sprintf("InnerJoin(%s, %s, %s)", j.Left, j.Right, j.Cond)
}

func (j *InnerJoin) RowIter(ctx *sql.Context, outer *sql.Frame) (sql.RowIter, error) {
	cross, err := NewCrossJoin(j.Left, j.Right).RowIter(ctx, outer)
	if err != nil {
		return nil, err
	}
	return &innerJoinIter{
		join:        j,
		child:       cross,
		outer:       outer,
		leftSchema:  j.Left.Schema(),
		rightSchema: j.Right.Schema(),
		filter:      &Filter{Where: j.Cond},
	}, nil
}

type innerJoinIter struct {
	join        *InnerJoin
	child       sql.RowIter
	outer       *sql.Frame
	leftSchema  sql.Schema
	rightSchema sql.Schema
	filter      *Filter
}

func (i *innerJoinIter) Next(ctx *sql.Context) (sql.Row, error) {
	for {
		row, err := i.child.Next(ctx)
		if err != nil {
			return nil, err
		}

		chain := []JoinLevel{
			{Columns: i.leftSchema, Row: row[:len(i.leftSchema)]},
			{Columns: i.rightSchema, Row: row[len(i.leftSchema):]},
		}
		ok, err := i.filter.CheckJoined(ctx, i.outer, chain)
		if err != nil {
			return nil, err
		}
		if ok {
			return row, nil
		}
	}
}

func (i *innerJoinIter) Close(ctx *sql.Context) error { return i.child.Close(ctx) }
