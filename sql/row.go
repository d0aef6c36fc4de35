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

package sql

import "github.com/mitchellh/hashstructure"

// Row is an ordered sequence of cell values, positionally aligned with a
// Schema.
type Row []interface{}

// NewRow builds a Row from a list of values.
func NewRow(values ...interface{}) Row {
	return Row(values)
}

// Copy returns a shallow copy of the row, safe to hold onto past the
// lifetime of the iterator that produced it.
func (r Row) Copy() Row {
	c := make(Row, len(r))
	copy(c, r)
	return c
}

// Hash returns a content hash of the row's values, useful for callers
// that need a cheap identity key for a whole row (e.g. de-duplicating
// rows produced by a join) without comparing every column individually.
func (r Row) Hash() (uint64, error) {
	return hashstructure.Hash([]interface{}(r), nil)
}

// Column describes one named cell position within a Schema.
type Column struct {
	// Name is the column identifier as it appears unqualified in SQL.
	Name string
	// Source is the alias of the table (or derived relation) that owns
	// this column, used for alias-qualified resolution.
	Source string
}

// Schema is an ordered list of column descriptors, positionally aligned
// with a Row.
type Schema []*Column

// Names returns the bare column names in order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, c := range s {
		names[i] = c.Name
	}
	return names
}
