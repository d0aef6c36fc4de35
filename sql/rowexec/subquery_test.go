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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlcore/wherefilter/sql"
	"github.com/sqlcore/wherefilter/sql/expression"
	"github.com/sqlcore/wherefilter/sql/plan"
)

func TestSubquerySelect(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	schema := sql.Schema{{Name: "t", Source: "foo"}}
	store := newStoreWith("foo", schema, sql.NewRow("one"), sql.NewRow("two"))

	alias := plan.NewSubqueryAlias("sub", "", plan.NewResolvedTable("foo", schema, store))

	iter, err := subquerySelect(ctx, alias, nil)
	require.NoError(err)

	rows := collectRows(t, ctx, iter)
	require.Len(rows, 2)
}

func TestSubquerySelectCorrelated(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	innerSchema := sql.Schema{{Name: "t", Source: "foo"}}
	store := newStoreWith("foo", innerSchema, sql.NewRow("one"), sql.NewRow("two"))

	filtered := plan.NewFilter(
		expression.NewEquals(
			expression.NewGetField("t"),
			expression.NewQualifiedGetField("outer", "want"),
		),
		plan.NewResolvedTable("foo", innerSchema, store),
	)
	alias := plan.NewSubqueryAlias("sub", "", filtered)

	outer := sql.NewFrame("outer", sql.Schema{{Name: "want"}}, sql.Row{"two"}, nil)

	iter, err := subquerySelect(ctx, alias, outer)
	require.NoError(err)

	rows := collectRows(t, ctx, iter)
	require.Equal([]sql.Row{{"two"}}, rows)
}
