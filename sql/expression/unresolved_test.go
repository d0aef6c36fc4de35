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

package expression_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlcore/wherefilter/sql"
	"github.com/sqlcore/wherefilter/sql/expression"
)

func TestUnresolvedColumn(t *testing.T) {
	require := require.New(t)

	col := expression.NewUnresolvedColumn("test_col")
	require.False(col.Resolved())
	require.Equal("test_col", col.String())

	_, err := col.Eval(sql.NewEmptyContext(), nil)
	require.Error(err)
	require.True(expression.ErrUnresolvedColumn.Is(err))
}

func TestUnresolvedColumnInsideComposite(t *testing.T) {
	require := require.New(t)

	col := expression.NewUnresolvedColumn("test_col")
	eq := expression.NewEquals(col, col)
	require.False(eq.Resolved())

	not := expression.NewNot(col)
	require.False(not.Resolved())
}
