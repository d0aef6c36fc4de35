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

func TestTupleSingleElementCollapses(t *testing.T) {
	require := require.New(t)

	tuple := expression.NewTuple(expression.NewLiteral(42))
	v := eval(t, tuple, nil)
	require.Equal(42, v)
}

func TestTupleMultipleElements(t *testing.T) {
	require := require.New(t)

	tuple := expression.NewTuple(
		expression.NewLiteral(1),
		expression.NewLiteral(2),
		expression.NewLiteral(3),
	)
	v := eval(t, tuple, nil)
	require.Equal([]interface{}{1, 2, 3}, v)
}

func TestTupleResolved(t *testing.T) {
	require := require.New(t)

	resolved := expression.NewTuple(expression.NewLiteral(1), expression.NewLiteral(2))
	require.True(resolved.Resolved())

	unresolved := expression.NewTuple(expression.NewLiteral(1), expression.NewUnresolvedColumn("x"))
	require.False(unresolved.Resolved())
}

func TestTupleString(t *testing.T) {
	require := require.New(t)

	tuple := expression.NewTuple(expression.NewLiteral(1), expression.NewLiteral(2))
	require.Equal("(1, 2)", tuple.String())
}

func TestTuplePropagatesError(t *testing.T) {
	require := require.New(t)

	tuple := expression.NewTuple(expression.NewLiteral(1), &errLiteral{err: errBoom})
	_, err := tuple.Eval(sql.NewEmptyContext(), nil)
	require.Equal(errBoom, err)
}
