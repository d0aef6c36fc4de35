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

// ResolvedTable is the leaf of every plan tree in this package: a table
// name already bound to a concrete sql.Store, ready to scan. It is the
// plan-side stand-in for whatever the upstream query planner (out of
// scope here) resolves a FROM-clause identifier to.
type ResolvedTable struct {
	Name        string
	TableSchema sql.Schema
	Store       sql.Store
}

// NewResolvedTable builds a ResolvedTable bound to store.
func NewResolvedTable(name string, schema sql.Schema, store sql.Store) *ResolvedTable {
	return &ResolvedTable{Name: name, TableSchema: schema, Store: store}
}

func (t *ResolvedTable) Children() []sql.Node { return nil }

func (t *ResolvedTable) Schema() sql.Schema { return t.TableSchema }

func (t *ResolvedTable) String() string { return fmt.Sprintf("Table(%s)", t.Name) }

// RowIter scans the table from Store. outer is accepted for interface
// compliance but unused: a leaf scan has nothing beneath it to correlate
// against — a Filter wrapping this table is what turns outer into frame
// resolution, not the scan itself.
func (t *ResolvedTable) RowIter(ctx *sql.Context, outer *sql.Frame) (sql.RowIter, error) {
	return t.Store.Scan(ctx, t.Name)
}
