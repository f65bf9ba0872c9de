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

package expr

import "github.com/catalyst-go/catalyst/pkg/types"

// Fold statically evaluates a resolved, foldable expression down to a
// literal. Null operands propagate with SQL semantics: arithmetic and
// comparisons over null yield a typed null, and/or use three valued logic.
// The second result is false when the expression cannot be evaluated,
// e.g. it is unresolved, not foldable, or divides by zero; the caller is
// expected to leave such expressions untouched.
func Fold(e *Expr) (*Expr, bool) {
	if e.op == LITERAL {
		return e, true
	}
	if !e.Resolved() || !e.Foldable() {
		return nil, false
	}
	lits := make([]*Literal, len(e.children))
	for i, c := range e.children {
		folded, ok := Fold(c)
		if !ok {
			return nil, false
		}
		lits[i] = folded.lit
	}
	switch e.op {
	case ADD, SUB, MUL, DIV:
		return foldArith(e.op, lits[0], lits[1])
	case GT, LT, GTE, LTE, EQ:
		return foldCompare(e.op, lits[0], lits[1])
	case AND, OR:
		return foldAndOr(e.op, lits[0], lits[1])
	case NOT:
		return foldNot(lits[0])
	}
	return nil, false
}

type integer interface {
	int8 | int16 | int32 | int64
}

type ordered interface {
	int8 | int16 | int32 | int64 | float32 | float64 | string
}

func arithInt[T integer](op Kind, a, b T) (T, bool) {
	switch op {
	case ADD:
		return a + b, true
	case SUB:
		return a - b, true
	case MUL:
		return a * b, true
	case DIV:
		if b == 0 {
			return 0, false
		}
		return a / b, true
	}
	return 0, false
}

func arithFloat[T float32 | float64](op Kind, a, b T) (T, bool) {
	switch op {
	case ADD:
		return a + b, true
	case SUB:
		return a - b, true
	case MUL:
		return a * b, true
	case DIV:
		// folding must not introduce inf or nan
		if b == 0 {
			return 0, false
		}
		return a / b, true
	}
	return 0, false
}

func foldArith(op Kind, l, r *Literal) (*Expr, bool) {
	if l.IsNull() || r.IsNull() {
		return NullLit(l.dataType), true
	}
	switch a := l.value.(type) {
	case int8:
		if v, ok := arithInt(op, a, r.value.(int8)); ok {
			return ByteLit(v), true
		}
	case int16:
		if v, ok := arithInt(op, a, r.value.(int16)); ok {
			return ShortLit(v), true
		}
	case int32:
		if v, ok := arithInt(op, a, r.value.(int32)); ok {
			return IntLit(v), true
		}
	case int64:
		if v, ok := arithInt(op, a, r.value.(int64)); ok {
			return LongLit(v), true
		}
	case float32:
		if v, ok := arithFloat(op, a, r.value.(float32)); ok {
			return FloatLit(v), true
		}
	case float64:
		if v, ok := arithFloat(op, a, r.value.(float64)); ok {
			return DoubleLit(v), true
		}
	}
	// arithmetic over bool or string never folds
	return nil, false
}

func cmpOrdered[T ordered](op Kind, a, b T) (bool, bool) {
	switch op {
	case GT:
		return a > b, true
	case LT:
		return a < b, true
	case GTE:
		return a >= b, true
	case LTE:
		return a <= b, true
	case EQ:
		return a == b, true
	}
	return false, false
}

func foldCompare(op Kind, l, r *Literal) (*Expr, bool) {
	if l.IsNull() || r.IsNull() {
		return NullLit(types.Boolean), true
	}
	switch a := l.value.(type) {
	case bool:
		// booleans only support equality
		if op == EQ {
			return BoolLit(a == r.value.(bool)), true
		}
	case int8:
		if v, ok := cmpOrdered(op, a, r.value.(int8)); ok {
			return BoolLit(v), true
		}
	case int16:
		if v, ok := cmpOrdered(op, a, r.value.(int16)); ok {
			return BoolLit(v), true
		}
	case int32:
		if v, ok := cmpOrdered(op, a, r.value.(int32)); ok {
			return BoolLit(v), true
		}
	case int64:
		if v, ok := cmpOrdered(op, a, r.value.(int64)); ok {
			return BoolLit(v), true
		}
	case float32:
		if v, ok := cmpOrdered(op, a, r.value.(float32)); ok {
			return BoolLit(v), true
		}
	case float64:
		if v, ok := cmpOrdered(op, a, r.value.(float64)); ok {
			return BoolLit(v), true
		}
	case string:
		if v, ok := cmpOrdered(op, a, r.value.(string)); ok {
			return BoolLit(v), true
		}
	}
	return nil, false
}

func foldAndOr(op Kind, l, r *Literal) (*Expr, bool) {
	lv, lok := l.value.(bool)
	rv, rok := r.value.(bool)
	switch op {
	case AND:
		if (lok && !lv) || (rok && !rv) {
			return BoolLit(false), true
		}
		if !lok || !rok {
			return NullLit(types.Boolean), true
		}
		return BoolLit(true), true
	case OR:
		if (lok && lv) || (rok && rv) {
			return BoolLit(true), true
		}
		if !lok || !rok {
			return NullLit(types.Boolean), true
		}
		return BoolLit(false), true
	}
	return nil, false
}

func foldNot(l *Literal) (*Expr, bool) {
	if l.IsNull() {
		return NullLit(types.Boolean), true
	}
	return BoolLit(!l.value.(bool)), true
}
