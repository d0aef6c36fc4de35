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

func TestPlus(t *testing.T) {
	require := require.New(t)

	require.Equal(int64(2), eval(t, expression.NewPlus(expression.NewLiteral(1), expression.NewLiteral(1)), nil))
	require.Equal(2.5, eval(t, expression.NewPlus(expression.NewLiteral(1.0), expression.NewLiteral(1.5)), nil))
	require.Nil(eval(t, expression.NewPlus(expression.NewLiteral(nil), expression.NewLiteral(1)), nil))
}

func TestMinus(t *testing.T) {
	require := require.New(t)

	require.Equal(int64(1), eval(t, expression.NewMinus(expression.NewLiteral(3), expression.NewLiteral(2)), nil))
}

func TestMult(t *testing.T) {
	require := require.New(t)

	require.Equal(int64(6), eval(t, expression.NewMult(expression.NewLiteral(2), expression.NewLiteral(3)), nil))
}

func TestDiv(t *testing.T) {
	require := require.New(t)

	require.Equal(2.5, eval(t, expression.NewDiv(expression.NewLiteral(5), expression.NewLiteral(2)), nil))
}

func TestDivByZero(t *testing.T) {
	require := require.New(t)

	_, err := expression.NewDiv(expression.NewLiteral(1), expression.NewLiteral(0)).Eval(sql.NewEmptyContext(), nil)
	require.Error(err)
	require.True(expression.ErrDivisionByZero.Is(err))
}

func TestMod(t *testing.T) {
	require := require.New(t)

	require.Equal(int64(1), eval(t, expression.NewMod(expression.NewLiteral(7), expression.NewLiteral(3)), nil))
}

func TestModByZero(t *testing.T) {
	require := require.New(t)

	_, err := expression.NewMod(expression.NewLiteral(1), expression.NewLiteral(0)).Eval(sql.NewEmptyContext(), nil)
	require.Error(err)
	require.True(expression.ErrDivisionByZero.Is(err))
}

func TestArithmeticNotNumeric(t *testing.T) {
	require := require.New(t)

	_, err := expression.NewPlus(expression.NewLiteral("abc"), expression.NewLiteral(1)).Eval(sql.NewEmptyContext(), nil)
	require.Error(err)
	require.True(expression.ErrNotNumeric.Is(err))
}

func TestArithmeticString(t *testing.T) {
	require := require.New(t)

	a := expression.NewLiteral(1)
	b := expression.NewLiteral(2)

	require.Equal("(1 + 2)", expression.NewPlus(a, b).String())
	require.Equal("(1 - 2)", expression.NewMinus(a, b).String())
	require.Equal("(1 * 2)", expression.NewMult(a, b).String())
	require.Equal("(1 / 2)", expression.NewDiv(a, b).String())
	require.Equal("(1 % 2)", expression.NewMod(a, b).String())
}
