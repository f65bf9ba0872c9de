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

package tree

// Transform is a partial rewrite of a single node. Returning false means
// the rewrite does not apply at this node and it is kept as is. A Transform
// must be side-effect free and must not mutate its input.
type Transform func(Node) (Node, bool)

// TransformDown returns a copy of n where rule has been applied recursively
// to it and all of its children, pre-order. The rule is applied to the
// current node first; when it yields a replacement, recursion continues on
// the replacement's children (the replaced position itself is not revisited).
// The input tree is never mutated.
func TransformDown(n Node, rule Transform) Node {
	recurse := func(child Node) Node {
		return TransformDown(child, rule)
	}
	if replaced, ok := rule(n); ok {
		return MapChildren(replaced, recurse)
	}
	return MapChildren(n, recurse)
}

// TransformUp returns a copy of n where rule has been applied recursively
// first to all of its children and then to itself, post-order. When the
// rule does not apply to the node with already transformed children, that
// node is the result, so the output may still differ from the input if any
// child changed. The input tree is never mutated.
func TransformUp(n Node, rule Transform) Node {
	updated := MapChildren(n, func(child Node) Node {
		return TransformUp(child, rule)
	})
	if replaced, ok := rule(updated); ok {
		return replaced
	}
	return updated
}
