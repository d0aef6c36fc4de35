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

// subquerySelect is the select(...) collaborator: it opens the subquery's
// row iterator with outer threaded through as the correlated enclosing
// frame chain, which is the one channel a subquery has back to the rows
// of the query it's nested inside. A "filter.subquery" span brackets the
// open, separate from any "filter.check" span. expression.InSubquery.Eval
// opens its subquery's row iterator directly rather than through this
// function, so an IN (subquery) evaluated by the checker gets no
// "filter.subquery" span.
func subquerySelect(ctx *sql.Context, sub *plan.SubqueryAlias, outer *sql.Frame) (sql.RowIter, error) {
	spanCtx, span := ctx.StartSpan("filter.subquery")
	defer span.Finish()
	return sub.RowIter(spanCtx, outer)
}
