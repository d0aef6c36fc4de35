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

import "github.com/sqlcore/wherefilter/sql"

// Literal is a constant scalar value baked into the expression tree by the
// parser (out of scope here) — a number, a string, a boolean, or NULL.
type Literal struct {
	Value interface{}
}

// NewLiteral wraps a constant value as an Expression.
func NewLiteral(value interface{}) *Literal {
	return &Literal{Value: value}
}

// Eval always returns the literal's value; it never touches frame.
func (l *Literal) Eval(ctx *sql.Context, frame *sql.Frame) (interface{}, error) {
	return l.Value, nil
}

// Resolved is always true: a literal carries no identifier to resolve.
func (l *Literal) Resolved() bool { return true }

func (l *Literal) String() string {
	if l.Value == nil {
		return "NULL"
	}
	if s, ok := l.Value.(string); ok {
		return "'" + s + "'"
	}
	return stringify(l.Value)
}
