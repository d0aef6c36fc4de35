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

package rowexec

import (
	"github.com/pkg/errors"

	"github.com/sqlcore/wherefilter/sql"
	"github.com/sqlcore/wherefilter/sql/plan"
)

// ScanTable opens table's row iterator through its Store, annotating any
// scan failure with the table identifier before it propagates.
// plan.ResolvedTable itself calls Store.Scan directly and leaves errors
// unannotated; this is the entry point callers outside a plan.Node tree
// (the demo binary, a join executor assembling ResolvedTable scans by
// hand) should use instead.
func ScanTable(ctx *sql.Context, table *plan.ResolvedTable) (sql.RowIter, error) {
	iter, err := table.Store.Scan(ctx, table.Name)
	if err != nil {
		return nil, errors.Wrapf(err, "scanning table %q", table.Name)
	}
	return iter, nil
}
