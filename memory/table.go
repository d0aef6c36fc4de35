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

package memory

import (
	"sync"

	"github.com/sqlcore/wherefilter/sql"
)

// Table is a named, schema-typed slice of rows, safe for concurrent
// Insert and Scan.
type Table struct {
	mu     sync.RWMutex
	name   string
	schema sql.Schema
	rows   []sql.Row
}

// Name returns the table's name.
func (t *Table) Name() string { return t.name }

// Schema returns the table's column list.
func (t *Table) Schema() sql.Schema { return t.schema }

// Insert appends row to the table. It does not validate row against
// Schema: callers own that, the same way a real storage engine's write
// path — out of scope here — would.
func (t *Table) Insert(row sql.Row) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rows = append(t.rows, row)
}

func (t *Table) rowIter() sql.RowIter {
	t.mu.RLock()
	defer t.mu.RUnlock()

	snapshot := make([]sql.Row, len(t.rows))
	copy(snapshot, t.rows)
	return &tableIter{rows: snapshot}
}

type tableIter struct {
	rows []sql.Row
	pos  int
}

func (i *tableIter) Next(ctx *sql.Context) (sql.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if i.pos >= len(i.rows) {
		return nil, sql.ErrEndOfRows
	}
	row := i.rows[i.pos]
	i.pos++
	return row, nil
}

func (i *tableIter) Close(ctx *sql.Context) error { return nil }
