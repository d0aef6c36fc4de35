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

// Package memory is the Store collaborator used to exercise the filtering
// core end to end without a real storage engine attached: a table keyed by
// name, holding a schema and a slice of rows.
package memory

import (
	"sync"

	"github.com/sqlcore/wherefilter/sql"
)

// Store is a name-keyed collection of in-memory tables.
type Store struct {
	mu     sync.RWMutex
	tables map[string]*Table
}

// NewStore builds an empty Store.
func NewStore() *Store {
	return &Store{tables: make(map[string]*Table)}
}

// CreateTable registers an empty table under name and returns it for
// callers to populate with Insert.
func (s *Store) CreateTable(name string, schema sql.Schema) *Table {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &Table{name: name, schema: schema}
	s.tables[name] = t
	return t
}

// Table looks up a previously created table by name.
func (s *Store) Table(name string) (*Table, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.tables[name]
	return t, ok
}

// Scan implements sql.Store, returning a snapshot iterator over table's
// current rows.
func (s *Store) Scan(ctx *sql.Context, table string) (sql.RowIter, error) {
	t, ok := s.Table(table)
	if !ok {
		return nil, ErrTableNotFound.New(table)
	}
	return t.rowIter(), nil
}
