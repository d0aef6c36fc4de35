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

// Frame is one lexical binding level: a table alias, the ordered column
// list it projects, the current row of values, and a link to the frame
// that encloses it. Frames are immutable once built, and form a singly
// linked chain from innermost (the frame passed in) to outermost (the
// root query, or an enclosing correlated query). A Frame never outlives
// the filter call whose row it was built for; it borrows Columns and Row
// rather than copying them.
type Frame struct {
	Alias   string
	Columns Schema
	Row     Row
	Parent  *Frame
}

// NewFrame builds one binding level on top of parent. parent must already
// be fully constructed, which is what keeps a frame chain acyclic: a
// frame's parent always exists before the frame itself does.
func NewFrame(alias string, columns Schema, row Row, parent *Frame) *Frame {
	return &Frame{Alias: alias, Columns: columns, Row: row, Parent: parent}
}

// Resolve looks up a column's value, walking the chain from f outward.
// An empty table resolves a bare name against frames innermost-first,
// returning the first frame that binds it. A non-empty table resolves
// against the first frame (searching outward) that binds it under that
// table: either because the frame's own Alias matches, or because one of
// its columns carries that Source — the latter lets a single Frame level
// span several joined tables (a CrossJoin's combined schema, say) without
// each table needing its own Frame level just to be alias-addressable.
func (f *Frame) Resolve(table, column string) (interface{}, bool) {
	if table == "" {
		for cur := f; cur != nil; cur = cur.Parent {
			if v, ok := cur.local(column); ok {
				return v, true
			}
		}
		return nil, false
	}
	for cur := f; cur != nil; cur = cur.Parent {
		if v, ok := cur.qualifiedLocal(table, column); ok {
			return v, true
		}
	}
	return nil, false
}

func (f *Frame) local(column string) (interface{}, bool) {
	for i, c := range f.Columns {
		if c.Name == column && i < len(f.Row) {
			return f.Row[i], true
		}
	}
	return nil, false
}

func (f *Frame) qualifiedLocal(table, column string) (interface{}, bool) {
	for i, c := range f.Columns {
		if c.Name != column || i >= len(f.Row) {
			continue
		}
		if f.Alias == table || c.Source == table {
			return f.Row[i], true
		}
	}
	return nil, false
}
