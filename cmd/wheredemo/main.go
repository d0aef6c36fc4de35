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

// Command wheredemo builds a tiny two-table database in memory and runs a
// WHERE clause with an IN (subquery) against it, printing the rows that
// pass.
//
// > go run ./cmd/wheredemo --config wheredemo.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/sqlcore/wherefilter/memory"
	"github.com/sqlcore/wherefilter/sql"
	"github.com/sqlcore/wherefilter/sql/expression"
	"github.com/sqlcore/wherefilter/sql/plan"
	"github.com/sqlcore/wherefilter/sql/rowexec"
)

var (
	dbTableName = "orders"
	lookupTable = "vip_customers"
	configPath  = flag.String("config", "", "path to a YAML Config file (optional)")
)

func main() {
	flag.Parse()

	cfg := sql.DefaultConfig()
	if *configPath != "" {
		loaded, err := sql.LoadConfig(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, "loading config:", err)
			os.Exit(1)
		}
		cfg = loaded
	}

	ctx := sql.NewContext(context.Background(), sql.WithConfig(cfg))

	store := buildStore()

	ordersSchema := sql.Schema{
		{Name: "customer", Source: "orders"},
		{Name: "amount", Source: "orders"},
	}
	orders := plan.NewResolvedTable(dbTableName, ordersSchema, store)

	vipSchema := sql.Schema{{Name: "name", Source: lookupTable}}
	vipScan := plan.NewResolvedTable(lookupTable, vipSchema, store)
	vipNames := plan.NewProject(
		[]sql.Expression{expression.NewGetField("name")},
		vipScan,
	)

	where := expression.NewAnd(
		expression.NewGreaterThan(
			expression.NewGetField("amount"),
			expression.NewLiteral(100),
		),
		expression.NewInSubquery(
			expression.NewGetField("customer"),
			false,
			expression.NewSubquery(vipNames),
		),
	)

	filter := plan.NewFilter(where, orders)

	scan, err := rowexec.ScanTable(ctx, orders)
	if err != nil {
		fmt.Fprintln(os.Stderr, "opening scan:", err)
		os.Exit(1)
	}

	iter := &rowexec.FilterIter{
		Filter: filter,
		Child:  scan,
		Assemble: func(row sql.Row) []plan.JoinLevel {
			return []plan.JoinLevel{{Columns: ordersSchema, Row: row}}
		},
	}
	defer iter.Close(ctx)

	for {
		row, err := iter.Next(ctx)
		if err == sql.ErrEndOfRows {
			break
		}
		if err != nil {
			ctx.Logger.WithError(err).Error("filter step failed")
			os.Exit(1)
		}
		fmt.Println(row)
	}
}

func buildStore() *memory.Store {
	store := memory.NewStore()

	orders := store.CreateTable(dbTableName, sql.Schema{
		{Name: "customer", Source: dbTableName},
		{Name: "amount", Source: dbTableName},
	})
	orders.Insert(sql.NewRow("alice", 150))
	orders.Insert(sql.NewRow("bob", 50))
	orders.Insert(sql.NewRow("carol", 200))

	vip := store.CreateTable(lookupTable, sql.Schema{
		{Name: "name", Source: lookupTable},
	})
	vip.Insert(sql.NewRow("alice"))
	vip.Insert(sql.NewRow("carol"))

	return store
}
