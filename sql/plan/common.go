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

// Package plan composes sql.Expression trees and sql.Node trees into
// something a row iterator can drive: the Join-Row Filter (Filter), the
// Predicate Checker that sits behind it (checkExpr), and the handful of
// plan nodes (Project, ResolvedTable, SubqueryAlias) needed to exercise a
// WHERE clause and a correlated IN (subquery) end to end.
package plan
