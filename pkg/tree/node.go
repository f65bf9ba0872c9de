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

// Package tree defines what it means for a value to be a node in a finite,
// acyclic, ordered tree and provides the traversal, search and rewrite
// algebra built only on that capability. Plan representations across the
// optimizer implement Node once and get the whole algebra for free.
package tree

import "fmt"

// Node is a value participating in a finite, acyclic, ordered tree.
// Children are exclusively owned by their parent; child order is
// semantically meaningful and preserved by every operation in this package.
// Nothing here mutates a node in place, rewrites always produce new values.
type Node interface {
	fmt.Stringer

	// NodeName returns the short display label used by the tree printer.
	NodeName() string
	// Children returns the ordered immediate children. Callers must not
	// modify the returned slice.
	Children() []Node
	// WithChildren returns a shallow copy of this node with its immediate
	// children replaced by the given ones, leaving the receiver untouched.
	// Implementations may reject child counts that are invalid for the
	// node kind.
	WithChildren(children []Node) Node
	// Clone returns a deep copy whose subsequent mutation cannot affect
	// the original.
	Clone() Node
	// Equal reports deep structural equality: label and children are
	// compared recursively, in order.
	Equal(other Node) bool
}

// IsLeaf reports whether n has no children.
func IsLeaf(n Node) bool {
	return len(n.Children()) == 0
}

// Find returns the first node in pre-order depth-first traversal for which
// pred holds, short-circuiting the search. The second result is false when
// no node matches.
func Find(n Node, pred func(Node) bool) (Node, bool) {
	if pred(n) {
		return n, true
	}
	for _, child := range n.Children() {
		if found, ok := Find(child, pred); ok {
			return found, true
		}
	}
	return nil, false
}

// Foreach invokes visit on every node, self before children, children left
// to right.
func Foreach(n Node, visit func(Node)) {
	visit(n)
	for _, child := range n.Children() {
		Foreach(child, visit)
	}
}

// ForeachUp invokes visit on every node, children left to right before self.
func ForeachUp(n Node, visit func(Node)) {
	for _, child := range n.Children() {
		ForeachUp(child, visit)
	}
	visit(n)
}

// Map returns f applied to every node in pre-order.
func Map[R any](n Node, f func(Node) R) []R {
	var res []R
	Foreach(n, func(m Node) {
		res = append(res, f(m))
	})
	return res
}

// FlatMap applies f to every node in pre-order and concatenates the
// returned sequences in traversal order.
func FlatMap[R any](n Node, f func(Node) []R) []R {
	var res []R
	Foreach(n, func(m Node) {
		res = append(res, f(m)...)
	})
	return res
}

// Collect applies the partial function f to every node in pre-order and
// keeps the results for which f reports true, preserving order.
func Collect[R any](n Node, f func(Node) (R, bool)) []R {
	var res []R
	Foreach(n, func(m Node) {
		if r, ok := f(m); ok {
			res = append(res, r)
		}
	})
	return res
}

// CollectLeaves returns deep copies of all leaf nodes in pre-order.
func CollectLeaves(n Node) []Node {
	return Collect(n, func(m Node) (Node, bool) {
		if IsLeaf(m) {
			return m.Clone(), true
		}
		return nil, false
	})
}

// MapChildren returns a copy of n in which every immediate child has been
// replaced by f(child). Children beyond depth 1 are untouched by this
// operation itself; recursion, if any, is the caller's responsibility.
func MapChildren(n Node, f func(Node) Node) Node {
	children := n.Children()
	if len(children) == 0 {
		return n.WithChildren(nil)
	}
	mapped := make([]Node, len(children))
	for i, child := range children {
		mapped[i] = f(child)
	}
	return n.WithChildren(mapped)
}
