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

package expression_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sqlcore/wherefilter/sql"
)

var errBoom = errors.New("boom")

func eval(t *testing.T, e sql.Expression, frame *sql.Frame) interface{} {
	t.Helper()
	v, err := e.Eval(sql.NewEmptyContext(), frame)
	require.NoError(t, err)
	return v
}
