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

	"github.com/sqlcore/wherefilter/memory"
	"github.com/sqlcore/wherefilter/sql"
)

func collectRows(t *testing.T, ctx *sql.Context, iter sql.RowIter) []sql.Row {
	t.Helper()
	require := require.New(t)
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

func newStoreWith(name string, schema sql.Schema, rows ...sql.Row) *memory.Store {
	store := memory.NewStore()
	table := store.CreateTable(name, schema)
	for _, r := range rows {
		table.Insert(r)
	}
	return store
}
