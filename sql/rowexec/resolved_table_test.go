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
	"github.com/sqlcore/wherefilter/sql/plan"
)

func TestScanTable(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	schema := sql.Schema{{Name: "col1", Source: "test"}}
	store := newStoreWith("test", schema, sql.NewRow(1), sql.NewRow(2))

	table := plan.NewResolvedTable("test", schema, store)
	iter, err := ScanTable(ctx, table)
	require.NoError(err)

	rows := collectRows(t, ctx, iter)
	require.Len(rows, 2)
}

func TestScanTableMissing(t *testing.T) {
	require := require.New(t)
	ctx := sql.NewEmptyContext()

	schema := sql.Schema{{Name: "col1", Source: "test"}}
	store := newStoreWith("test", schema)

	table := plan.NewResolvedTable("missing", schema, store)
	_, err := ScanTable(ctx, table)
	require.Error(err)
	require.Contains(err.Error(), "missing")
}
