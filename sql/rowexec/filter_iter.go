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

package rowexec

import (
	"github.com/sqlcore/wherefilter/sql"
	"github.com/sqlcore/wherefilter/sql/plan"
)

// FilterIter wraps a child row iterator produced anywhere in a join
// pipeline with a *plan.Filter, assembling the join chain for the row
// just produced and calling Filter.CheckJoined on it. It is the standalone
// form of what plan.Filter.RowIter already does inline for the single-table
// case; callers building an iterator chain by hand outside a plan.Node
// tree (a join executor, the demo binary) use this one instead of
// reaching into plan.Filter's unexported iterator.
type FilterIter struct {
	Filter *plan.Filter
	Child  sql.RowIter
	Outer  *sql.Frame

	// Assemble builds the JoinLevel chain for a row the child just
	// produced. Supplied by the caller because only it knows how the
	// child's flat row splits across the tables being joined.
	Assemble func(row sql.Row) []plan.JoinLevel
}

func (i *FilterIter) Next(ctx *sql.Context) (sql.Row, error) {
	for {
		row, err := i.Child.Next(ctx)
		if err != nil {
			return nil, err
		}

		spanCtx, span := ctx.StartSpan("filter.check")
		ok, err := i.Filter.CheckJoined(spanCtx, i.Outer, i.Assemble(row))
		span.Finish()
		if err != nil {
			if ctx.Logger != nil && sql.ErrUnimplemented.Is(err) {
				ctx.Logger.WithError(err).Error("filter step failed")
			}
			return nil, err
		}
		if ok {
			return row, nil
		}
	}
}

func (i *FilterIter) Close(ctx *sql.Context) error { return i.Child.Close(ctx) }
