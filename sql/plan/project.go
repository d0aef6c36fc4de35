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

package plan

import (
	"fmt"
	"strings"

	"github.com/sqlcore/wherefilter/sql"
	"github.com/sqlcore/wherefilter/sql/expression"
)

// Project narrows a child Node's rows down to a list of expressions,
// evaluated against each child row in turn. It exists only so tests (and
// the demo binary) can build a realistic small plan tree around a Filter;
// projection proper is out of scope for the filtering core.
type Project struct {
	Projections []sql.Expression
	Child       sql.Node
}

// NewProject builds a Project over child.
func NewProject(projections []sql.Expression, child sql.Node) *Project {
	return &Project{Projections: projections, Child: child}
}

func (p *Project) Children() []sql.Node { return []sql.Node{p.Child} }

// Schema names each projected column after the GetField it came from when
// it is one, falling back to the expression's own String() otherwise; the
// owning alias is always the Project's own output, not the child's.
func (p *Project) Schema() sql.Schema {
	schema := make(sql.Schema, len(p.Projections))
	for i, e := range p.Projections {
		name := e.String()
		if gf, ok := e.(*expression.GetField); ok {
			name = gf.Column
		}
		schema[i] = &sql.Column{Name: name}
	}
	return schema
}

func (p *Project) String() string {
	parts := make([]string, len(p.Projections))
	for i, e := range p.Projections {
		parts[i] = e.String()
	}
	return fmt.Sprintf("Project(%s)", strings.Join(parts, ", "))
}

func (p *Project) RowIter(ctx *sql.Context, outer *sql.Frame) (sql.RowIter, error) {
	child, err := p.Child.RowIter(ctx, outer)
	if err != nil {
		return nil, err
	}
	return &projectIter{project: p, child: child, outer: outer, schema: p.Child.Schema()}, nil
}

type projectIter struct {
	project *Project
	child   sql.RowIter
	outer   *sql.Frame
	schema  sql.Schema
}

func (i *projectIter) Next(ctx *sql.Context) (sql.Row, error) {
	row, err := i.child.Next(ctx)
	if err != nil {
		return nil, err
	}
	frame := sql.NewFrame("", i.schema, row, i.outer)
	out := make(sql.Row, len(i.project.Projections))
	for idx, e := range i.project.Projections {
		v, err := e.Eval(ctx, frame)
		if err != nil {
			return nil, err
		}
		out[idx] = v
	}
	return out, nil
}

func (i *projectIter) Close(ctx *sql.Context) error { return i.child.Close(ctx) }
