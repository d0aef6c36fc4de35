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
	"strings"
	"sync"

	"github.com/sqlcore/wherefilter/sql"
)

// InTuple is `expr IN (list)` / `expr NOT IN (list)`. Eval evaluates Left
// once, then walks List in source order, returning on the first match; any error
// evaluating a list element short-circuits the scan with that error, even
// if a later element would otherwise have matched.
type InTuple struct {
	Left    sql.Expression
	List    []sql.Expression
	Negated bool
}

// NewInTuple builds an IN-list test.
func NewInTuple(left sql.Expression, negated bool, list ...sql.Expression) *InTuple {
	return &InTuple{Left: left, List: list, Negated: negated}
}

func (t *InTuple) Resolved() bool {
	if !t.Left.Resolved() {
		return false
	}
	for _, e := range t.List {
		if !e.Resolved() {
			return false
		}
	}
	return true
}

func (t *InTuple) Eval(ctx *sql.Context, frame *sql.Frame) (interface{}, error) {
	target, err := t.Left.Eval(ctx, frame)
	if err != nil {
		return nil, err
	}
	for _, e := range t.List {
		v, err := e.Eval(ctx, frame)
		if err != nil {
			return nil, err
		}
		eq, err := sql.EqualValues(target, v)
		if err != nil {
			return nil, err
		}
		if eq {
			return !t.Negated, nil
		}
	}
	return t.Negated, nil
}

func (t *InTuple) String() string {
	parts := make([]string, len(t.List))
	for i, e := range t.List {
		parts[i] = e.String()
	}
	not := ""
	if t.Negated {
		not = "NOT "
	}
	return fmt.Sprintf("(%s %sIN (%s))", t.Left, not, strings.Join(parts, ", "))
}

// HashInTuple is the index-assisted variant of InTuple for lists made
// entirely of Literal elements: since literals never error on Eval, the
// per-element evaluation order that InTuple's error propagation cares
// about is moot, and membership can be tested against a
// hash set built once instead of scanned linearly on every row. Keys come
// from sql.NormalizeForHash, so the result matches InTuple's for numbers
// across widths and for numbers against numeric strings, but not on every
// input: numeric-looking strings match by numeric value ('1.0' matches
// '1'), a non-numeric string never matches a boolean ('true' does not
// match true), and list elements that cannot
// be normalized are skipped where InTuple would return an error.
type HashInTuple struct {
	Left    sql.Expression
	List    []*Literal
	Negated bool

	once sync.Once
	set  map[string]struct{}
}

// NewHashInTuple builds a hash-assisted IN-list test. Callers should only
// use this when every list element is a Literal; NewInTuple must be used
// otherwise.
func NewHashInTuple(left sql.Expression, negated bool, list ...*Literal) *HashInTuple {
	return &HashInTuple{Left: left, List: list, Negated: negated}
}

func (t *HashInTuple) Resolved() bool { return t.Left.Resolved() }

func (t *HashInTuple) build() {
	t.set = make(map[string]struct{}, len(t.List))
	for _, lit := range t.List {
		if lit.Value == nil {
			continue
		}
		key, err := sql.NormalizeForHash(lit.Value)
		if err != nil {
			continue
		}
		t.set[key] = struct{}{}
	}
}

func (t *HashInTuple) Eval(ctx *sql.Context, frame *sql.Frame) (interface{}, error) {
	t.once.Do(t.build)
	target, err := t.Left.Eval(ctx, frame)
	if err != nil {
		return nil, err
	}
	if target == nil {
		return t.Negated, nil
	}
	key, err := sql.NormalizeForHash(target)
	if err != nil {
		return nil, err
	}
	_, found := t.set[key]
	return found != t.Negated, nil
}

func (t *HashInTuple) String() string {
	parts := make([]string, len(t.List))
	for i, e := range t.List {
		parts[i] = e.String()
	}
	not := ""
	if t.Negated {
		not = "NOT "
	}
	return fmt.Sprintf("(%s %sIN (%s))", t.Left, not, strings.Join(parts, ", "))
}
