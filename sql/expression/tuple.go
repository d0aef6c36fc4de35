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
	"strings"

	"github.com/sqlcore/wherefilter/sql"
)

// Tuple is an ordered group of expressions evaluated together into a
// []interface{}. InTuple does not use it: InTuple keeps its list as
// separate expressions. A single-element Tuple evaluates to that element's
// bare value rather than a one-element slice, so callers don't have to
// unwrap it.
type Tuple struct {
	Elements []sql.Expression
}

// NewTuple groups expressions into a Tuple.
func NewTuple(elements ...sql.Expression) *Tuple {
	return &Tuple{Elements: elements}
}

func (t *Tuple) Resolved() bool {
	for _, e := range t.Elements {
		if !e.Resolved() {
			return false
		}
	}
	return true
}

func (t *Tuple) Eval(ctx *sql.Context, frame *sql.Frame) (interface{}, error) {
	if len(t.Elements) == 1 {
		return t.Elements[0].Eval(ctx, frame)
	}
	values := make([]interface{}, len(t.Elements))
	for i, e := range t.Elements {
		v, err := e.Eval(ctx, frame)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}
	return values, nil
}

func (t *Tuple) String() string {
	parts := make([]string, len(t.Elements))
	for i, e := range t.Elements {
		parts[i] = e.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
