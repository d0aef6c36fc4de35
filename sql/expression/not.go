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

// Not implements the only unary boolean operator the checker recognizes.
type Not struct {
	Child sql.Expression
}

// NewNot builds a Not node.
func NewNot(child sql.Expression) *Not {
	return &Not{Child: child}
}

func (n *Not) Resolved() bool { return n.Child.Resolved() }

func (n *Not) Eval(ctx *sql.Context, frame *sql.Frame) (interface{}, error) {
	v, err := evalBool(ctx, frame, n.Child)
	if err != nil {
		return nil, err
	}
	return !v, nil
}

func (n *Not) String() string { return fmt.Sprintf("(NOT %s)", n.Child) }
