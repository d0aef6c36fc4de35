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

func TestComposedExpressionTree(t *testing.T) {
	require := require.New(t)
	frame := sql.NewFrame("t", sql.Schema{
		{Name: "col3", Source: "t"},
		{Name: "col4", Source: "t"},
		{Name: "col5", Source: "t"},
	}, sql.Row{111, false, 111}, nil)

	eq := expression.NewEquals(expression.NewGetField("col3"), expression.NewLiteral(111))
	dis := expression.NewEquals(
		expression.NewNot(expression.NewGetField("col4")),
		expression.NewEquals(expression.NewGetField("col3"), expression.NewGetField("col5")),
	)

	require.Equal(true, eval(t, eq, frame))
	require.Equal(true, eval(t, dis, frame))

	frame2 := sql.NewFrame("t", sql.Schema{
		{Name: "col3", Source: "t"},
		{Name: "col4", Source: "t"},
		{Name: "col5", Source: "t"},
	}, sql.Row{222, true, 111}, nil)

	require.Equal(false, eval(t, eq, frame2))
	require.Equal(true, eval(t, dis, frame2))
}
