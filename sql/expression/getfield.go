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

// GetField is a resolved column reference: an alias (possibly empty for a
// bare, unqualified name) and a column name, resolved by name against the
// current frame chain at Eval time, rather than by a fixed row index,
// because the frame chain — not a single flattened join row — is what
// this core resolves identifiers against.
type GetField struct {
	Table  string
	Column string
}

// NewGetField builds a bare (unqualified) column reference.
func NewGetField(column string) *GetField {
	return &GetField{Column: column}
}

// NewQualifiedGetField builds an alias-qualified column reference.
func NewQualifiedGetField(table, column string) *GetField {
	return &GetField{Table: table, Column: column}
}

// Eval resolves the field against frame, walking outward through
// correlated parent scopes when necessary. An unresolved name propagates
// like any other evaluation error.
func (f *GetField) Eval(ctx *sql.Context, frame *sql.Frame) (interface{}, error) {
	v, ok := frame.Resolve(f.Table, f.Column)
	if !ok {
		return nil, ErrColumnNotFound.New(f.String())
	}
	return v, nil
}

// Resolved is always true: by the time a GetField exists, the parser/
// resolver (out of scope here) has already bound it to a name. Whether
// that name is actually present in the frame at Eval time is a runtime
// concern, not a Resolved() concern.
func (f *GetField) Resolved() bool { return true }

func (f *GetField) String() string {
	if f.Table == "" {
		return f.Column
	}
	return fmt.Sprintf("%s.%s", f.Table, f.Column)
}
