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
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlcore/wherefilter/sql"
	"github.com/sqlcore/wherefilter/sql/expression"
)

var errCheckerBoom = errors.New("boom")

// errExpr always fails to Eval, used to tell apart short-circuit
// evaluation (the erroring arm is never reached, so its error never
// surfaces) from total evaluation (it is reached, and does surface).
type errExpr struct{}

func (errExpr) Resolved() bool { return true }
func (errExpr) String() string { return "err" }
func (errExpr) Eval(ctx *sql.Context, frame *sql.Frame) (interface{}, error) {
	return nil, errCheckerBoom
}

func TestCheckAndShortCircuitsByDefault(t *testing.T) {
	require := require.New(t)
	frame := sql.NewFrame("t", nil, nil, nil)

	and := expression.NewAnd(expression.NewLiteral(false), errExpr{})
	ok, err := checkExpr(sql.NewEmptyContext(), frame, and)
	require.NoError(err)
	require.False(ok)
}

func TestCheckAndTotalEvaluationSurfacesError(t *testing.T) {
	require := require.New(t)
	frame := sql.NewFrame("t", nil, nil, nil)

	and := expression.NewAnd(expression.NewLiteral(false), errExpr{})
	ctx := sql.NewEmptyContext()
	ctx.Config = &sql.Config{StrictBooleanEval: true}

	_, err := checkExpr(ctx, frame, and)
	require.Equal(errCheckerBoom, err)
}

func TestCheckOrShortCircuitsByDefault(t *testing.T) {
	require := require.New(t)
	frame := sql.NewFrame("t", nil, nil, nil)

	or := expression.NewOr(expression.NewLiteral(true), errExpr{})
	ok, err := checkExpr(sql.NewEmptyContext(), frame, or)
	require.NoError(err)
	require.True(ok)
}

func TestCheckOrTotalEvaluationSurfacesError(t *testing.T) {
	require := require.New(t)
	frame := sql.NewFrame("t", nil, nil, nil)

	or := expression.NewOr(expression.NewLiteral(true), errExpr{})
	ctx := sql.NewEmptyContext()
	ctx.Config = &sql.Config{StrictBooleanEval: true}

	_, err := checkExpr(ctx, frame, or)
	require.Equal(errCheckerBoom, err)
}
