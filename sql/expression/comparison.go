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

// comparison is the shared shape of the six comparison operators
// (Eq, NotEq, Lt, LtEq, Gt, GtEq). Left and Right are evaluated
// through the Scalar Evaluator — left then right — and the resulting
// tagged values are compared with sql.CompareValues.
type comparison struct {
	Left, Right sql.Expression
}

func (c *comparison) Resolved() bool { return c.Left.Resolved() && c.Right.Resolved() }

// evalOperands evaluates both sides in order and reports whether either
// side was NULL, in which case SQL's three-valued comparison semantics
// say the comparison itself is unknown (reported here as (0, false)).
func (c *comparison) evalOperands(ctx *sql.Context, frame *sql.Frame) (cmp int, ok bool, err error) {
	l, err := c.Left.Eval(ctx, frame)
	if err != nil {
		return 0, false, err
	}
	r, err := c.Right.Eval(ctx, frame)
	if err != nil {
		return 0, false, err
	}
	return sql.CompareValues(l, r)
}

// Equals is the `=` operator.
type Equals struct{ comparison }

// NewEquals builds an Equals comparison.
func NewEquals(left, right sql.Expression) *Equals {
	return &Equals{comparison{Left: left, Right: right}}
}

// Eval implements sql.Expression. The Predicate Checker calls it like any
// other boolean-valued leaf, and it works the same way anywhere else in a
// larger expression tree.
func (e *Equals) Eval(ctx *sql.Context, frame *sql.Frame) (interface{}, error) {
	cmp, ok, err := e.evalOperands(ctx, frame)
	if err != nil {
		return nil, err
	}
	if !ok {
		return false, nil
	}
	return cmp == 0, nil
}

func (e *Equals) String() string { return fmt.Sprintf("(%s = %s)", e.Left, e.Right) }

// NotEquals is the `<>` / `!=` operator.
type NotEquals struct{ comparison }

func NewNotEquals(left, right sql.Expression) *NotEquals {
	return &NotEquals{comparison{Left: left, Right: right}}
}

func (e *NotEquals) Eval(ctx *sql.Context, frame *sql.Frame) (interface{}, error) {
	cmp, ok, err := e.evalOperands(ctx, frame)
	if err != nil {
		return nil, err
	}
	if !ok {
		return false, nil
	}
	return cmp != 0, nil
}

func (e *NotEquals) String() string { return fmt.Sprintf("(%s <> %s)", e.Left, e.Right) }

// LessThan is the `<` operator.
type LessThan struct{ comparison }

func NewLessThan(left, right sql.Expression) *LessThan {
	return &LessThan{comparison{Left: left, Right: right}}
}

func (e *LessThan) Eval(ctx *sql.Context, frame *sql.Frame) (interface{}, error) {
	cmp, ok, err := e.evalOperands(ctx, frame)
	if err != nil {
		return nil, err
	}
	if !ok {
		return false, nil
	}
	return cmp < 0, nil
}

func (e *LessThan) String() string { return fmt.Sprintf("(%s < %s)", e.Left, e.Right) }

// LessThanOrEqual is the `<=` operator.
type LessThanOrEqual struct{ comparison }

func NewLessThanOrEqual(left, right sql.Expression) *LessThanOrEqual {
	return &LessThanOrEqual{comparison{Left: left, Right: right}}
}

func (e *LessThanOrEqual) Eval(ctx *sql.Context, frame *sql.Frame) (interface{}, error) {
	cmp, ok, err := e.evalOperands(ctx, frame)
	if err != nil {
		return nil, err
	}
	if !ok {
		return false, nil
	}
	return cmp <= 0, nil
}

func (e *LessThanOrEqual) String() string { return fmt.Sprintf("(%s <= %s)", e.Left, e.Right) }

// GreaterThan is the `>` operator.
type GreaterThan struct{ comparison }

func NewGreaterThan(left, right sql.Expression) *GreaterThan {
	return &GreaterThan{comparison{Left: left, Right: right}}
}

func (e *GreaterThan) Eval(ctx *sql.Context, frame *sql.Frame) (interface{}, error) {
	cmp, ok, err := e.evalOperands(ctx, frame)
	if err != nil {
		return nil, err
	}
	if !ok {
		return false, nil
	}
	return cmp > 0, nil
}

func (e *GreaterThan) String() string { return fmt.Sprintf("(%s > %s)", e.Left, e.Right) }

// GreaterThanOrEqual is the `>=` operator.
type GreaterThanOrEqual struct{ comparison }

func NewGreaterThanOrEqual(left, right sql.Expression) *GreaterThanOrEqual {
	return &GreaterThanOrEqual{comparison{Left: left, Right: right}}
}

func (e *GreaterThanOrEqual) Eval(ctx *sql.Context, frame *sql.Frame) (interface{}, error) {
	cmp, ok, err := e.evalOperands(ctx, frame)
	if err != nil {
		return nil, err
	}
	if !ok {
		return false, nil
	}
	return cmp >= 0, nil
}

func (e *GreaterThanOrEqual) String() string { return fmt.Sprintf("(%s >= %s)", e.Left, e.Right) }
