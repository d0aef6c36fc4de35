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
	"github.com/sqlcore/wherefilter/sql"
	"github.com/sqlcore/wherefilter/sql/expression"
)

// checkExpr is the Predicate Checker: given a bound frame, it walks expr
// recursively and returns whether the row passes. And/Or/Not/Nested are
// special-cased here rather than left to their own Expression.Eval,
// because this is the one place Config.StrictBooleanEval's total-evaluation
// override can apply; every other node shape is evaluated through the
// ordinary Expression contract and asserted to be boolean-valued, with an
// unrecognized shape (one that evaluates to something other than a bool)
// surfacing as ErrUnimplemented rather than a silently false row.
func checkExpr(ctx *sql.Context, frame *sql.Frame, expr sql.Expression) (bool, error) {
	switch e := expr.(type) {
	case *expression.And:
		return checkAnd(ctx, frame, e)
	case *expression.Or:
		return checkOr(ctx, frame, e)
	case *expression.Not:
		v, err := checkExpr(ctx, frame, e.Child)
		if err != nil {
			return false, err
		}
		return !v, nil
	case *expression.Nested:
		return checkExpr(ctx, frame, e.Child)
	default:
		return checkLeaf(ctx, frame, expr)
	}
}

// checkLeaf handles every boolean-producing node that doesn't need its own
// recursive treatment: comparisons, InTuple/HashInTuple, InSubquery. They
// already return a Go bool from Eval, so the checker just asserts the
// shape instead of re-implementing each operator.
func checkLeaf(ctx *sql.Context, frame *sql.Frame, expr sql.Expression) (bool, error) {
	v, err := expr.Eval(ctx, frame)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, sql.ErrUnimplemented.New(expr.String())
	}
	return b, nil
}

func checkAnd(ctx *sql.Context, frame *sql.Frame, e *expression.And) (bool, error) {
	if !strictBooleanEval(ctx) {
		l, err := checkExpr(ctx, frame, e.Left)
		if err != nil {
			return false, err
		}
		if !l {
			return false, nil
		}
		return checkExpr(ctx, frame, e.Right)
	}

	l, lerr := checkExpr(ctx, frame, e.Left)
	r, rerr := checkExpr(ctx, frame, e.Right)
	if lerr != nil {
		return false, lerr
	}
	if rerr != nil {
		return false, rerr
	}
	return l && r, nil
}

func checkOr(ctx *sql.Context, frame *sql.Frame, e *expression.Or) (bool, error) {
	if !strictBooleanEval(ctx) {
		l, err := checkExpr(ctx, frame, e.Left)
		if err != nil {
			return false, err
		}
		if l {
			return true, nil
		}
		return checkExpr(ctx, frame, e.Right)
	}

	l, lerr := checkExpr(ctx, frame, e.Left)
	r, rerr := checkExpr(ctx, frame, e.Right)
	if lerr != nil {
		return false, lerr
	}
	if rerr != nil {
		return false, rerr
	}
	return l || r, nil
}

func strictBooleanEval(ctx *sql.Context) bool {
	return ctx.Config != nil && ctx.Config.StrictBooleanEval
}
