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

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrColumnNotFound is a Scalar Evaluator failure: the identifier
	// could not be resolved against any frame in the chain.
	ErrColumnNotFound = errors.NewKind("column not found: %s")

	// ErrUnresolvedColumn is returned by an UnresolvedColumn that reaches
	// Eval without ever having been bound to a GetField — a programming
	// error in whatever built the expression tree, not a normal runtime
	// failure.
	ErrUnresolvedColumn = errors.NewKind("column %q is unresolved")

	// ErrNotNumeric is returned when an arithmetic operand can't be
	// coerced to a number by spf13/cast.
	ErrNotNumeric = errors.NewKind("%v is not a numeric value")

	// ErrDivisionByZero is returned by Div and Mod when the right-hand
	// operand is zero.
	ErrDivisionByZero = errors.NewKind("division by zero")
)
