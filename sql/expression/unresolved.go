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

import "github.com/sqlcore/wherefilter/sql"

// UnresolvedColumn stands in for a column reference the resolver (out of
// scope here) hasn't yet bound to a frame position — present so that a
// not-yet-fully-resolved tree (Resolved(), String()) behaves sensibly in
// tests that build one.
type UnresolvedColumn struct {
	Name string
}

// NewUnresolvedColumn builds an unresolved column placeholder.
func NewUnresolvedColumn(name string) *UnresolvedColumn {
	return &UnresolvedColumn{Name: name}
}

// Eval always fails: an unresolved column must never reach the checker.
func (c *UnresolvedColumn) Eval(ctx *sql.Context, frame *sql.Frame) (interface{}, error) {
	return nil, ErrUnresolvedColumn.New(c.Name)
}

// Resolved is always false.
func (c *UnresolvedColumn) Resolved() bool { return false }

func (c *UnresolvedColumn) String() string { return c.Name }
