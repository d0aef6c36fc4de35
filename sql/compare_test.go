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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompareValues(t *testing.T) {
	testCases := []struct {
		name string
		a, b interface{}
		cmp  int
		ok   bool
	}{
		{"ints equal", int64(1), int64(1), 0, true},
		{"ints less", int64(1), int64(2), -1, true},
		{"ints greater", int64(2), int64(1), 1, true},
		{"floats", 1.5, 2.5, -1, true},
		{"strings", "a", "b", -1, true},
		{"cross kind numeric", int64(3), "3", 0, true},
		{"cross kind numeric unequal", int64(3), "4", -1, true},
		{"left nil", nil, int64(1), 0, false},
		{"right nil", int64(1), nil, 0, false},
		{"both nil", nil, nil, 0, false},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			cmp, ok, err := CompareValues(tt.a, tt.b)
			require.NoError(err)
			require.Equal(tt.ok, ok)
			if ok {
				require.Equal(tt.cmp, cmp)
			}
		})
	}
}

func TestEqualValues(t *testing.T) {
	require := require.New(t)

	eq, err := EqualValues(int64(3), "3")
	require.NoError(err)
	require.True(eq)

	eq, err = EqualValues(int64(3), nil)
	require.NoError(err)
	require.False(eq)

	eq, err = EqualValues("a", "b")
	require.NoError(err)
	require.False(eq)
}

func TestNormalizeForHash(t *testing.T) {
	require := require.New(t)

	a, err := NormalizeForHash(int64(1))
	require.NoError(err)
	b, err := NormalizeForHash("1")
	require.NoError(err)
	require.Equal(a, b)

	c, err := NormalizeForHash(int32(1))
	require.NoError(err)
	require.Equal(a, c)

	d, err := NormalizeForHash("abc")
	require.NoError(err)
	e, err := NormalizeForHash("xyz")
	require.NoError(err)
	require.NotEqual(d, e)

	_, err = NormalizeForHash(nil)
	require.Error(err)
}
