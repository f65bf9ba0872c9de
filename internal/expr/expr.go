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

// Package expr is the scalar expression catalog: arithmetic, comparison
// and logical operators over typed literals. Expressions form a closed set
// of kinds on a single immutable node type, so equality is structural and
// needs no runtime type identification. Every expression implements
// tree.Node and therefore the whole traversal and rewrite algebra.
package expr

import (
	"fmt"

	"github.com/catalyst-go/catalyst/pkg/tree"
	"github.com/catalyst-go/catalyst/pkg/types"
)

// Kind enumerates the operator kinds of the catalog.
type Kind int

const (
	LITERAL Kind = iota
	ADD
	SUB
	MUL
	DIV
	GT
	LT
	GTE
	LTE
	EQ
	AND
	OR
	NOT
)

var kindNames = map[Kind]string{
	LITERAL: "literal",
	ADD:     "add",
	SUB:     "subtract",
	MUL:     "multiply",
	DIV:     "divide",
	GT:      "greater than",
	LT:      "less than",
	GTE:     "greater than or equal",
	LTE:     "less than or equal",
	EQ:      "equals",
	AND:     "and",
	OR:      "or",
	NOT:     "not",
}

var kindSymbols = map[Kind]string{
	ADD: "+",
	SUB: "-",
	MUL: "*",
	DIV: "/",
	GT:  ">",
	LT:  "<",
	GTE: ">=",
	LTE: "<=",
	EQ:  "==",
	AND: "&&",
	OR:  "||",
	NOT: "!",
}

func arity(op Kind) int {
	switch op {
	case LITERAL:
		return 0
	case NOT:
		return 1
	default:
		return 2
	}
}

// Expr is an immutable expression node. The zero value is not valid, use
// the constructors.
type Expr struct {
	op       Kind
	children []*Expr
	lit      *Literal
}

func newBinary(op Kind, left, right *Expr) *Expr {
	return &Expr{op: op, children: []*Expr{left, right}}
}

// Arithmetic expressions.

func Add(left, right *Expr) *Expr { return newBinary(ADD, left, right) }

func Sub(left, right *Expr) *Expr { return newBinary(SUB, left, right) }

func Mul(left, right *Expr) *Expr { return newBinary(MUL, left, right) }

func Div(left, right *Expr) *Expr { return newBinary(DIV, left, right) }

// Comparison and logical expressions.

func Gt(left, right *Expr) *Expr { return newBinary(GT, left, right) }

func Lt(left, right *Expr) *Expr { return newBinary(LT, left, right) }

func Gte(left, right *Expr) *Expr { return newBinary(GTE, left, right) }

func Lte(left, right *Expr) *Expr { return newBinary(LTE, left, right) }

func Eq(left, right *Expr) *Expr { return newBinary(EQ, left, right) }

func And(left, right *Expr) *Expr { return newBinary(AND, left, right) }

func Or(left, right *Expr) *Expr { return newBinary(OR, left, right) }

func Not(child *Expr) *Expr { return &Expr{op: NOT, children: []*Expr{child}} }

// Op returns the operator kind of this expression.
func (e *Expr) Op() Kind { return e.op }

// IsLiteral reports whether this expression is a literal value.
func (e *Expr) IsLiteral() bool { return e.op == LITERAL }

// Literal returns the literal payload, nil for non-literal expressions.
func (e *Expr) Literal() *Literal {
	return e.lit
}

// ChildExpr returns the i-th operand without the tree.Node indirection.
func (e *Expr) ChildExpr(i int) *Expr {
	return e.children[i]
}

// Foldable reports whether the expression is a candidate for static
// evaluation before the query is executed: literals always are, operators
// are when all of their children are.
func (e *Expr) Foldable() bool {
	if e.op == LITERAL {
		return true
	}
	for _, c := range e.children {
		if !c.Foldable() {
			return false
		}
	}
	return true
}

// Deterministic reports whether the expression always returns the same
// result for fixed child inputs. Everything in this closed catalog is
// deterministic as long as its children are; literals carry no hidden
// state.
func (e *Expr) Deterministic() bool {
	for _, c := range e.children {
		if !c.Deterministic() {
			return false
		}
	}
	return true
}

// Nullable reports whether evaluating the expression can produce null:
// binary operators when either side is nullable, not when its child is,
// literals when they hold null.
func (e *Expr) Nullable() bool {
	if e.op == LITERAL {
		return e.lit.IsNull()
	}
	for _, c := range e.children {
		if c.Nullable() {
			return true
		}
	}
	return false
}

// Resolved reports whether type checking against the children succeeded.
// Literals are always resolved. Arithmetic and comparison operators
// require both children resolved with the same output type. Logical
// operators additionally require boolean inputs.
func (e *Expr) Resolved() bool {
	switch e.op {
	case LITERAL:
		return true
	case NOT:
		c := e.children[0]
		return c.Resolved() && c.OutputType().Equal(types.Boolean)
	case AND, OR:
		l, r := e.children[0], e.children[1]
		return l.Resolved() && r.Resolved() &&
			l.OutputType().Equal(types.Boolean) && r.OutputType().Equal(types.Boolean)
	default:
		l, r := e.children[0], e.children[1]
		return l.Resolved() && r.Resolved() && l.OutputType().Equal(r.OutputType())
	}
}

// OutputType returns the data type of the result of evaluating this
// expression. Querying the type of an unresolved expression is a contract
// violation; the result is meaningful only when Resolved reports true.
func (e *Expr) OutputType() types.DataType {
	switch e.op {
	case LITERAL:
		return e.lit.dataType
	case ADD, SUB, MUL, DIV:
		return e.children[0].OutputType()
	default:
		return types.Boolean
	}
}

// tree.Node implementation.

func (e *Expr) NodeName() string {
	return kindNames[e.op]
}

func (e *Expr) String() string {
	switch e.op {
	case LITERAL:
		return e.lit.String()
	case NOT:
		return fmt.Sprintf("!(%s)", e.children[0])
	default:
		return fmt.Sprintf("(%s %s %s)", e.children[0], kindSymbols[e.op], e.children[1])
	}
}

func (e *Expr) Children() []tree.Node {
	res := make([]tree.Node, len(e.children))
	for i, c := range e.children {
		res[i] = c
	}
	return res
}

func (e *Expr) WithChildren(children []tree.Node) tree.Node {
	if len(children) != arity(e.op) {
		panic(fmt.Sprintf("expression %s requires %d children, got %d", e.NodeName(), arity(e.op), len(children)))
	}
	cp := &Expr{op: e.op, lit: e.lit}
	if len(children) > 0 {
		cp.children = make([]*Expr, len(children))
		for i, c := range children {
			cp.children[i] = c.(*Expr)
		}
	}
	return cp
}

func (e *Expr) Clone() tree.Node {
	return e.cloneExpr()
}

func (e *Expr) cloneExpr() *Expr {
	cp := &Expr{op: e.op}
	if e.lit != nil {
		lit := *e.lit
		cp.lit = &lit
	}
	if len(e.children) > 0 {
		cp.children = make([]*Expr, len(e.children))
		for i, c := range e.children {
			cp.children[i] = c.cloneExpr()
		}
	}
	return cp
}

func (e *Expr) Equal(other tree.Node) bool {
	o, ok := other.(*Expr)
	if !ok {
		return false
	}
	return e.equalExpr(o)
}

func (e *Expr) equalExpr(o *Expr) bool {
	if e.op != o.op || len(e.children) != len(o.children) {
		return false
	}
	if e.op == LITERAL {
		return e.lit.Equal(o.lit)
	}
	for i := range e.children {
		if !e.children[i].equalExpr(o.children[i]) {
			return false
		}
	}
	return true
}
