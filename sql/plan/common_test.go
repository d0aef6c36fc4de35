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
)

var lSchema = sql.Schema{
	{Name: "lcol1", Source: "left"},
	{Name: "lcol2", Source: "left"},
}

var rSchema = sql.Schema{
	{Name: "rcol1", Source: "right"},
	{Name: "rcol2", Source: "right"},
}

func insertData(store *memory.Store, name string, schema sql.Schema, rows ...sql.Row) *memory.Table {
	table := store.CreateTable(name, schema)
	for _, r := range rows {
		table.Insert(r)
	}
	return table
}

func collectRows(t *testing.T, ctx *sql.Context, node sql.Node) []sql.Row {
	t.Helper()
	require := require.New(t)

	iter, err := node.RowIter(ctx, nil)
	require.NoError(err)
	defer iter.Close(ctx)

	var rows []sql.Row
	for {
		row, err := iter.Next(ctx)
		if err == sql.ErrEndOfRows {
			return rows
		}
		require.NoError(err)
		rows = append(rows, row)
	}
}
