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
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlcore/wherefilter/memory"
	"github.com/sqlcore/wherefilter/sql"
	"github.com/sqlcore/wherefilter/sql/expression"
)

func TestSubqueryAliasSchema(t *testing.T) {
	require := require.New(t)

	store := memory.NewStore()
	tableSchema := sql.Schema{
		{Name: "foo", Source: "bar"},
		{Name: "baz", Source: "bar"},
	}
	insertData(store, "bar", tableSchema)

	subquery := NewProject(
		[]sql.Expression{
			expression.NewGetField("foo"),
			expression.NewGetField("baz"),
		},
		NewResolvedTable("bar", tableSchema, store),
	)

	require.Equal(
		sql.Schema{
			{Name: "foo", Source: "alias"},
			{Name: "baz", Source: "alias"},
		},
		NewSubqueryAlias("alias", "", subquery).Schema(),
	)
}
