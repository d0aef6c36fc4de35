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

// Nested is a parenthesised wrapper; semantically transparent in every
// respect, kept as its own node only because the parser (out of scope
// here) records parenthesisation for String() fidelity.
type Nested struct {
	Child sql.Expression
}

// NewNested wraps child in parentheses.
func NewNested(child sql.Expression) *Nested {
	return &Nested{Child: child}
}

func (n *Nested) Resolved() bool { return n.Child.Resolved() }

func (n *Nested) Eval(ctx *sql.Context, frame *sql.Frame) (interface{}, error) {
	return n.Child.Eval(ctx, frame)
}

func (n *Nested) String() string { return fmt.Sprintf("(%s)", n.Child) }
