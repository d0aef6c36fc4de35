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
	"fmt"

	"github.com/sqlcore/wherefilter/sql"
)

// SubqueryAlias renames a subquery's output relation, the way `(SELECT ...)
// AS alias` does: the rows are exactly the child's, but every column's
// owning alias becomes AliasName, which is what lets a query correlate
// against `alias.column` once the subquery has been flattened into a join
// or used as a derived table.
type SubqueryAlias struct {
	AliasName string
	TableName string
	Child     sql.Node
}

// NewSubqueryAlias wraps child under name, recording textName purely for
// String() fidelity.
func NewSubqueryAlias(name, textName string, child sql.Node) *SubqueryAlias {
	return &SubqueryAlias{AliasName: name, TableName: textName, Child: child}
}

func (a *SubqueryAlias) Children() []sql.Node { return []sql.Node{a.Child} }

func (a *SubqueryAlias) Schema() sql.Schema {
	child := a.Child.Schema()
	schema := make(sql.Schema, len(child))
	for i, c := range child {
		schema[i] = &sql.Column{Name: c.Name, Source: a.AliasName}
	}
	return schema
}

func (a *SubqueryAlias) String() string { return fmt.Sprintf("SubqueryAlias(%s)", a.AliasName) }

// RowIter is fully transparent: renaming a relation doesn't change its
// rows, only the alias identifiers used to resolve its columns.
func (a *SubqueryAlias) RowIter(ctx *sql.Context, outer *sql.Frame) (sql.RowIter, error) {
	return a.Child.RowIter(ctx, outer)
}
