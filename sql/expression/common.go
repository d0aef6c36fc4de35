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

// Package expression provides the concrete Expression node types
// sql/plan's predicate checker composes: scalar leaves (Literal,
// GetField) evaluated through the Expression contract, arithmetic, and
// the boolean-position node shapes: And, Or, Not and Nested, which the
// checker recognizes by type, and InTuple, InSubquery and the
// comparisons, which it evaluates through Eval.
package expression

import "fmt"

func stringify(v interface{}) string {
	return fmt.Sprintf("%v", v)
}
