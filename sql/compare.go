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

import (
	"fmt"
	"reflect"

	"github.com/spf13/cast"
)

// CompareValues orders two scalar values the way the Scalar Evaluator's
// comparison contract requires: NULL (a Go nil on either side) compares
// as "unknown" and is reported back to the
// caller via the ok return rather than an arbitrary ordering, matching
// SQL's three-valued comparison semantics. Values of the same underlying
// kind compare directly; values of differing kinds (an int literal
// against a numeric column stored as string, say) are coerced to float64
// through spf13/cast, and when either side is not numeric their string
// forms are compared instead, so that `id = 3` and `id = '3'` behave the
// way a SQL engine's users expect.
func CompareValues(a, b interface{}) (cmp int, ok bool, err error) {
	if a == nil || b == nil {
		return 0, false, nil
	}
	if reflect.TypeOf(a) == reflect.TypeOf(b) {
		return compareSameKind(a, b)
	}

	af, aerr := cast.ToFloat64E(a)
	bf, berr := cast.ToFloat64E(b)
	if aerr == nil && berr == nil {
		return compareFloats(af, bf), true, nil
	}

	as, aerr := cast.ToStringE(a)
	bs, berr := cast.ToStringE(b)
	if aerr != nil || berr != nil {
		return 0, false, fmt.Errorf("cannot compare values of type %T and %T", a, b)
	}
	return compareStrings(as, bs), true, nil
}

func compareSameKind(a, b interface{}) (int, bool, error) {
	switch av := a.(type) {
	case int:
		return compareInts(int64(av), int64(b.(int))), true, nil
	case int32:
		return compareInts(int64(av), int64(b.(int32))), true, nil
	case int64:
		return compareInts(av, b.(int64)), true, nil
	case float32:
		return compareFloats(float64(av), float64(b.(float32))), true, nil
	case float64:
		return compareFloats(av, b.(float64)), true, nil
	case string:
		return compareStrings(av, b.(string)), true, nil
	case bool:
		bv := b.(bool)
		if av == bv {
			return 0, true, nil
		}
		if !av && bv {
			return -1, true, nil
		}
		return 1, true, nil
	default:
		as, aerr := cast.ToStringE(a)
		bs, berr := cast.ToStringE(b)
		if aerr != nil || berr != nil {
			return 0, false, fmt.Errorf("cannot compare values of type %T", a)
		}
		return compareStrings(as, bs), true, nil
	}
}

func compareInts(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

func compareStrings(a, b string) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// EqualValues reports whether two scalar values are equal under the same
// coercion rules as CompareValues, treating either side being NULL as not
// equal (never true, never confidently false) — callers needing
// three-valued logic should use CompareValues's ok return directly.
func EqualValues(a, b interface{}) (bool, error) {
	cmp, ok, err := CompareValues(a, b)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}
	return cmp == 0, nil
}

// NormalizeForHash renders a value into a canonical string so that a hash
// of the normalized form can stand in for an EqualValues comparison in the
// common cases. Every value spf13/cast can convert to float64 (numbers of
// any width, numeric strings, booleans) normalizes to its float64 decimal
// form, so int32(1), int64(1) and "1" hash identically; every other value
// normalizes through spf13/cast's string conversion. The two do not agree
// on every input: "1" and "1.0" normalize identically although
// EqualValues compares two strings as text, and the string "true"
// normalizes apart from the boolean true although EqualValues finds them
// equal.
func NormalizeForHash(v interface{}) (string, error) {
	if v == nil {
		return "", fmt.Errorf("cannot hash a NULL value")
	}
	if f, err := cast.ToFloat64E(v); err == nil {
		return fmt.Sprintf("n:%v", f), nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", err
	}
	return "s:" + s, nil
}
