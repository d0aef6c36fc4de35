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

package expression

import (
	"fmt"

	"github.com/sqlcore/wherefilter/sql"
)

// And implements the `AND` operator. Eval short-circuits: if Left is
// false, Right is never evaluated. The Predicate Checker has its own
// total-evaluation path (sql/plan, gated by Config.StrictBooleanEval) for
// callers that need both sides' errors surfaced even when Left alone
// decides the result; Eval here is the default, short-circuiting
// behavior.
type And struct {
	Left, Right sql.Expression
}

// NewAnd builds an And node.
func NewAnd(left, right sql.Expression) *And {
	return &And{Left: left, Right: right}
}

func (a *And) Resolved() bool { return a.Left.Resolved() && a.Right.Resolved() }

func (a *And) Eval(ctx *sql.Context, frame *sql.Frame) (interface{}, error) {
	l, err := evalBool(ctx, frame, a.Left)
	if err != nil {
		return nil, err
	}
	if !l {
		return false, nil
	}
	return evalBool(ctx, frame, a.Right)
}

func (a *And) String() string { return fmt.Sprintf("(%s AND %s)", a.Left, a.Right) }

// Or implements the `OR` operator, short-circuiting when Left is true.
type Or struct {
	Left, Right sql.Expression
}

// NewOr builds an Or node.
func NewOr(left, right sql.Expression) *Or {
	return &Or{Left: left, Right: right}
}

func (o *Or) Resolved() bool { return o.Left.Resolved() && o.Right.Resolved() }

func (o *Or) Eval(ctx *sql.Context, frame *sql.Frame) (interface{}, error) {
	l, err := evalBool(ctx, frame, o.Left)
	if err != nil {
		return nil, err
	}
	if l {
		return true, nil
	}
	return evalBool(ctx, frame, o.Right)
}

func (o *Or) String() string { return fmt.Sprintf("(%s OR %s)", o.Left, o.Right) }

// evalBool evaluates a boolean-position sub-expression and asserts the
// result's shape, used by And/Or/Not's own short-circuiting Eval. It does
// not enforce the "unknown node shape is Unimplemented" rule — that
// enforcement belongs to the Predicate Checker's recursion entry point,
// not to an arbitrary nested Eval call.
func evalBool(ctx *sql.Context, frame *sql.Frame, e sql.Expression) (bool, error) {
	v, err := e.Eval(ctx, frame)
	if err != nil {
		return false, err
	}
	b, _ := v.(bool)
	return b, nil
}
