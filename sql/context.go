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
	"context"

	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
)

// Context threads cancellation, structured logging and tracing through a
// single query step, the way the checker's callers (row iterators, the
// subquery bridge) observe it. The Predicate Checker itself never reads
// Span or Logger directly; it only ever forwards a *Context unchanged to
// Evaluate and Select.
type Context struct {
	context.Context
	Logger *logrus.Entry
	Span   opentracing.Span
	Config *Config
}

// NewContext wraps a standard context.Context for use by the filter core
// and its collaborators.
func NewContext(ctx context.Context, opts ...ContextOption) *Context {
	c := &Context{Logger: logrus.NewEntry(logrus.StandardLogger()), Config: DefaultConfig(), Context: ctx}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewEmptyContext returns a Context suitable for tests and for embedding
// callers that have no request-scoped context.Context of their own.
func NewEmptyContext() *Context {
	return NewContext(context.Background())
}

// ContextOption customizes a Context at construction time.
type ContextOption func(*Context)

// WithLogger overrides the default logrus entry.
func WithLogger(l *logrus.Entry) ContextOption {
	return func(c *Context) { c.Logger = l }
}

// WithSpan attaches a tracing span, typically a child span already started
// by the caller around a filter.check/filter.subquery boundary.
func WithSpan(s opentracing.Span) ContextOption {
	return func(c *Context) { c.Span = s }
}

// WithConfig overrides the default engine configuration.
func WithConfig(cfg *Config) ContextOption {
	return func(c *Context) { c.Config = cfg }
}

// StartSpan starts (and the caller must finish) a child span under c.Span,
// or a root span if none is set, returning a new *Context carrying it so
// nested calls pick it up without mutating the parent. sql/rowexec uses
// this to open "filter.check" and "filter.subquery" spans around a row's
// filter step.
func (c *Context) StartSpan(operation string) (*Context, opentracing.Span) {
	return c.span(operation)
}

func (c *Context) span(operation string) (*Context, opentracing.Span) {
	var span opentracing.Span
	if c.Span != nil {
		span = opentracing.StartSpan(operation, opentracing.ChildOf(c.Span.Context()))
	} else {
		span = opentracing.StartSpan(operation)
	}
	child := *c
	child.Span = span
	return &child, span
}
