// Copyright 2025-2026 The Catalyst-Go Authors
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

// Package rule implements the convergence driven engine that rewrites a
// plan by sequentially executing named batches of rules until each batch
// reaches a fixed point or exhausts its iteration budget.
package rule

// Plan is the minimum a value must provide to be driven by the executor:
// deep cloning with value semantics and structural equality. Rules are
// typically written against the richer node capability in pkg/tree, but
// the executor itself requires only these two.
type Plan[T any] interface {
	// Clone returns a deep copy whose subsequent mutation cannot affect
	// the original.
	Clone() T
	// Equal reports structural equality with other.
	Equal(other T) bool
}

// Rule is a named, total transformation of a plan. Apply returns the
// replacement plan and true when the rule fired, or false when the rule
// does not apply to the given plan. Rules must never fail; a rule that
// cannot construct a valid replacement reports false instead.
type Rule[T Plan[T]] interface {
	Name() string
	Apply(plan T) (T, bool)
}

type funcRule[T Plan[T]] struct {
	name string
	fn   func(T) (T, bool)
}

func (r *funcRule[T]) Name() string { return r.name }

func (r *funcRule[T]) Apply(plan T) (T, bool) { return r.fn(plan) }

// New adapts a plain function to a named Rule.
func New[T Plan[T]](name string, fn func(T) (T, bool)) Rule[T] {
	return &funcRule[T]{name: name, fn: fn}
}

// Batch is a named, ordered group of rules sharing one strategy. Within
// one iteration the rules run in declaration order, each seeing the output
// of the previous one.
type Batch[T Plan[T]] struct {
	Name     string
	Strategy Strategy
	Rules    []Rule[T]
}
