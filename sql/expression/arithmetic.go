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

	"github.com/spf13/cast"

	"github.com/sqlcore/wherefilter/sql"
)

// arithmetic is the shared shape of the binary arithmetic operators: a
// comparison-style operand pair evaluated left-then-right, coerced to
// numeric through spf13/cast the same way comparison does. NULL on
// either side makes the whole expression NULL, matching SQL's usual
// arithmetic propagation.
type arithmetic struct {
	Left, Right sql.Expression
}

func (a *arithmetic) Resolved() bool { return a.Left.Resolved() && a.Right.Resolved() }

// operands evaluates Left, then Right, and reports whether either was
// NULL; when Left is NULL, Right is not evaluated. When
// both sides cast cleanly to int64, isInt is true and the integer values
// are also returned, so a caller (Plus/Minus/Mult) can keep integer
// results integer instead of always widening to float64.
func (a *arithmetic) operands(ctx *sql.Context, frame *sql.Frame) (lf, rf float64, li, ri int64, isInt, isNull bool, err error) {
	l, err := a.Left.Eval(ctx, frame)
	if err != nil {
		return 0, 0, 0, 0, false, false, err
	}
	if l == nil {
		return 0, 0, 0, 0, false, true, nil
	}
	r, err := a.Right.Eval(ctx, frame)
	if err != nil {
		return 0, 0, 0, 0, false, false, err
	}
	if r == nil {
		return 0, 0, 0, 0, false, true, nil
	}

	lf, err = cast.ToFloat64E(l)
	if err != nil {
		return 0, 0, 0, 0, false, false, ErrNotNumeric.New(l)
	}
	rf, err = cast.ToFloat64E(r)
	if err != nil {
		return 0, 0, 0, 0, false, false, ErrNotNumeric.New(r)
	}

	if isIntegral(l) && isIntegral(r) {
		li, _ = cast.ToInt64E(l)
		ri, _ = cast.ToInt64E(r)
		isInt = true
	}

	return lf, rf, li, ri, isInt, false, nil
}

// isIntegral reports whether v's Go type is one of the integer kinds,
// as opposed to a float or a numeric string. Used to decide whether an
// arithmetic result should stay an integer or widen to float64 — cast's
// own ToInt64E would happily truncate a float, which is the wrong
// signal for that decision.
func isIntegral(v interface{}) bool {
	switch v.(type) {
	case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return true
	default:
		return false
	}
}

// Plus is the `+` operator.
type Plus struct{ arithmetic }

// NewPlus builds a Plus node.
func NewPlus(left, right sql.Expression) *Plus {
	return &Plus{arithmetic{Left: left, Right: right}}
}

func (p *Plus) Eval(ctx *sql.Context, frame *sql.Frame) (interface{}, error) {
	lf, rf, li, ri, isInt, isNull, err := p.operands(ctx, frame)
	if err != nil || isNull {
		return nil, err
	}
	if isInt {
		return li + ri, nil
	}
	return lf + rf, nil
}

func (p *Plus) String() string { return fmt.Sprintf("(%s + %s)", p.Left, p.Right) }

// Minus is the `-` operator.
type Minus struct{ arithmetic }

// NewMinus builds a Minus node.
func NewMinus(left, right sql.Expression) *Minus {
	return &Minus{arithmetic{Left: left, Right: right}}
}

func (m *Minus) Eval(ctx *sql.Context, frame *sql.Frame) (interface{}, error) {
	lf, rf, li, ri, isInt, isNull, err := m.operands(ctx, frame)
	if err != nil || isNull {
		return nil, err
	}
	if isInt {
		return li - ri, nil
	}
	return lf - rf, nil
}

func (m *Minus) String() string { return fmt.Sprintf("(%s - %s)", m.Left, m.Right) }

// Mult is the `*` operator.
type Mult struct{ arithmetic }

// NewMult builds a Mult node.
func NewMult(left, right sql.Expression) *Mult {
	return &Mult{arithmetic{Left: left, Right: right}}
}

func (m *Mult) Eval(ctx *sql.Context, frame *sql.Frame) (interface{}, error) {
	lf, rf, li, ri, isInt, isNull, err := m.operands(ctx, frame)
	if err != nil || isNull {
		return nil, err
	}
	if isInt {
		return li * ri, nil
	}
	return lf * rf, nil
}

func (m *Mult) String() string { return fmt.Sprintf("(%s * %s)", m.Left, m.Right) }

// Div is the `/` operator. Division always produces a float64, matching
// SQL's `/` (as opposed to integer div), even when both operands are
// integers.
type Div struct{ arithmetic }

// NewDiv builds a Div node.
func NewDiv(left, right sql.Expression) *Div {
	return &Div{arithmetic{Left: left, Right: right}}
}

func (d *Div) Eval(ctx *sql.Context, frame *sql.Frame) (interface{}, error) {
	lf, rf, _, _, _, isNull, err := d.operands(ctx, frame)
	if err != nil || isNull {
		return nil, err
	}
	if rf == 0 {
		return nil, ErrDivisionByZero.New()
	}
	return lf / rf, nil
}

func (d *Div) String() string { return fmt.Sprintf("(%s / %s)", d.Left, d.Right) }

// Mod is the `%` operator, defined over integer operands.
type Mod struct{ arithmetic }

// NewMod builds a Mod node.
func NewMod(left, right sql.Expression) *Mod {
	return &Mod{arithmetic{Left: left, Right: right}}
}

func (m *Mod) Eval(ctx *sql.Context, frame *sql.Frame) (interface{}, error) {
	_, _, li, ri, isInt, isNull, err := m.operands(ctx, frame)
	if err != nil || isNull {
		return nil, err
	}
	if !isInt {
		return nil, ErrNotNumeric.New("non-integer operand to %")
	}
	if ri == 0 {
		return nil, ErrDivisionByZero.New()
	}
	return li % ri, nil
}

func (m *Mod) String() string { return fmt.Sprintf("(%s %% %s)", m.Left, m.Right) }
