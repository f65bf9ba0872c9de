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

import (
	"strconv"

	"github.com/catalyst-go/catalyst/pkg/types"
)

// Literal is a typed constant, possibly null. value holds the Go
// representation matching the data type (int8 for byte, int32 for int,
// float32 for float, ...) or nil for null.
type Literal struct {
	dataType types.DataType
	value    any
}

func newLit(dataType types.DataType, value any) *Expr {
	return &Expr{op: LITERAL, lit: &Literal{dataType: dataType, value: value}}
}

func BoolLit(v bool) *Expr { return newLit(types.Boolean, v) }

func ByteLit(v int8) *Expr { return newLit(types.Byte, v) }

func ShortLit(v int16) *Expr { return newLit(types.Short, v) }

func IntLit(v int32) *Expr { return newLit(types.Integer, v) }

func LongLit(v int64) *Expr { return newLit(types.Long, v) }

func FloatLit(v float32) *Expr { return newLit(types.Float, v) }

func DoubleLit(v float64) *Expr { return newLit(types.Double, v) }

func StringLit(v string) *Expr { return newLit(types.String, v) }

// NullLit creates a null literal of the given type.
func NullLit(dataType types.DataType) *Expr { return newLit(dataType, nil) }

// Type returns the data type of the literal.
func (l *Literal) Type() types.DataType { return l.dataType }

// Value returns the Go value of the literal, nil when null.
func (l *Literal) Value() any { return l.value }

// IsNull reports whether the literal holds no value.
func (l *Literal) IsNull() bool { return l.value == nil }

// Equal compares type and value.
func (l *Literal) Equal(o *Literal) bool {
	return l.dataType.Equal(o.dataType) && l.value == o.value
}

func (l *Literal) String() string {
	if l.IsNull() {
		return "null"
	}
	switch v := l.value.(type) {
	case bool:
		return strconv.FormatBool(v)
	case int8:
		return strconv.FormatInt(int64(v), 10)
	case int16:
		return strconv.FormatInt(int64(v), 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int64:
		return strconv.FormatInt(v, 10)
	case float32:
		return formatFloatLit(strconv.FormatFloat(float64(v), 'f', -1, 32))
	case float64:
		return formatFloatLit(strconv.FormatFloat(v, 'f', -1, 64))
	case string:
		return strconv.Quote(v)
	default:
		return "invalid"
	}
}

// formatFloatLit keeps a trailing ".0" on whole floats so that float
// literals remain visually distinct from integer ones.
func formatFloatLit(s string) string {
	for _, c := range s {
		if c == '.' || c == 'e' || c == 'E' {
			return s
		}
	}
	return s + ".0"
}
