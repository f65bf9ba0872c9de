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

package planner

import (
	"github.com/catalyst-go/catalyst/internal/expr"
	"github.com/catalyst-go/catalyst/pkg/tree"
)

// constantFolding replaces foldable subtrees with the literal they
// evaluate to, bottom-up.
type constantFolding struct{}

func (r *constantFolding) Name() string {
	return "constantFolding"
}

func (r *constantFolding) Apply(plan tree.Node) (tree.Node, bool) {
	applied := false
	res := tree.TransformUp(plan, func(n tree.Node) (tree.Node, bool) {
		e, ok := n.(*expr.Expr)
		if !ok || e.IsLiteral() {
			return nil, false
		}
		folded, ok := expr.Fold(e)
		if !ok {
			return nil, false
		}
		applied = true
		return folded, true
	})
	if !applied {
		return nil, false
	}
	return res, true
}

// booleanSimplification rewrites boolean operators with a constant
// operand: double negation, and/or identity and domination.
type booleanSimplification struct{}

func (r *booleanSimplification) Name() string {
	return "booleanSimplification"
}

func (r *booleanSimplification) Apply(plan tree.Node) (tree.Node, bool) {
	applied := false
	res := tree.TransformUp(plan, func(n tree.Node) (tree.Node, bool) {
		e, ok := n.(*expr.Expr)
		if !ok || !e.Resolved() {
			return nil, false
		}
		if s, ok := simplifyBoolean(e); ok {
			applied = true
			return s, true
		}
		return nil, false
	})
	if !applied {
		return nil, false
	}
	return res, true
}

func simplifyBoolean(e *expr.Expr) (*expr.Expr, bool) {
	switch e.Op() {
	case expr.NOT:
		child := e.ChildExpr(0)
		if child.Op() == expr.NOT {
			return child.ChildExpr(0), true
		}
	case expr.AND:
		left, right := e.ChildExpr(0), e.ChildExpr(1)
		if isBoolLit(left, true) {
			return right, true
		}
		if isBoolLit(right, true) {
			return left, true
		}
		// dropping the other side is only safe when it cannot have
		// side effects on repeated evaluation
		if isBoolLit(left, false) && right.Deterministic() {
			return expr.BoolLit(false), true
		}
		if isBoolLit(right, false) && left.Deterministic() {
			return expr.BoolLit(false), true
		}
	case expr.OR:
		left, right := e.ChildExpr(0), e.ChildExpr(1)
		if isBoolLit(left, false) {
			return right, true
		}
		if isBoolLit(right, false) {
			return left, true
		}
		if isBoolLit(left, true) && right.Deterministic() {
			return expr.BoolLit(true), true
		}
		if isBoolLit(right, true) && left.Deterministic() {
			return expr.BoolLit(true), true
		}
	}
	return nil, false
}

func isBoolLit(e *expr.Expr, v bool) bool {
	return e.IsLiteral() && !e.Literal().IsNull() && e.Literal().Value() == v
}
