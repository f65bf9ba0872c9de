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

package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAtomic(t *testing.T) {
	for _, dt := range []DataType{Boolean, Byte, Short, Integer, Long, Float, Double, String} {
		assert.True(t, dt.IsAtomic(), dt.String())
		assert.False(t, dt.IsStruct(), dt.String())
	}
	assert.False(t, Struct().IsAtomic())
	assert.True(t, Struct().IsStruct())
}

func TestTypeName(t *testing.T) {
	tests := map[string]DataType{
		"bool":   Boolean,
		"byte":   Byte,
		"short":  Short,
		"int":    Integer,
		"long":   Long,
		"float":  Float,
		"double": Double,
		"string": String,
	}
	for expected, dt := range tests {
		assert.Equal(t, expected, dt.String())
	}
}

func TestDefaultSize(t *testing.T) {
	assert.Equal(t, 1, Boolean.DefaultSize())
	assert.Equal(t, 1, Byte.DefaultSize())
	assert.Equal(t, 2, Short.DefaultSize())
	assert.Equal(t, 4, Integer.DefaultSize())
	assert.Equal(t, 8, Long.DefaultSize())
	assert.Equal(t, 4, Float.DefaultSize())
	assert.Equal(t, 8, Double.DefaultSize())
	assert.Equal(t, 20, String.DefaultSize())
	assert.Equal(t, 24, Struct().AddField("a", Integer).AddField("b", String).DefaultSize())
}

func TestStructBuilder(t *testing.T) {
	schema := Struct().
		AddField("a", Integer).
		AddFieldN("b", Integer, false).
		Add(NewField("c", Integer))

	assert.True(t, schema.Equal(Struct(
		NewField("a", Integer).WithNullable(true),
		NewField("b", Integer).WithNullable(false),
		NewField("c", Integer).WithNullable(true),
	)))
}

func TestStructNumFields(t *testing.T) {
	schema := Struct()
	assert.Equal(t, 0, schema.NumFields())

	schema = schema.AddField("a", Integer).AddField("b", String)
	assert.Equal(t, 2, schema.NumFields())

	assert.Panics(t, func() { Integer.NumFields() })
}

func TestStructDisplay(t *testing.T) {
	schema := Struct().
		AddField("a", Integer).
		AddField("b", Struct().
			AddField("c", String).
			AddField("d", Double),
		)
	assert.Equal(t, "struct<a:int,b:struct<c:string,d:double>>", schema.String())
}

func TestStructTreeString(t *testing.T) {
	schema := Struct().
		AddField("a", Integer).
		AddField("b", Double).
		AddField("c", String).
		AddField("d", Struct().
			AddField("x", Byte).
			AddField("y", Short).
			AddFieldN("z", Boolean, false),
		).
		AddFieldN("e", Float, false).
		AddFieldN("f", Long, false)

	expected := strings.Join([]string{
		"root",
		" |- a: int (nullable = true)",
		" |- b: double (nullable = true)",
		" |- c: string (nullable = true)",
		" |- d: struct (nullable = true)",
		"    |- x: byte (nullable = true)",
		"    |- y: short (nullable = true)",
		"    |- z: bool (nullable = false)",
		" |- e: float (nullable = false)",
		" |- f: long (nullable = false)",
	}, "\n")
	assert.Equal(t, expected, schema.TreeString())

	assert.Panics(t, func() { String.TreeString() })
}

func TestEqual(t *testing.T) {
	assert.True(t, Integer.Equal(Integer))
	assert.False(t, Integer.Equal(Long))
	assert.True(t, Struct().AddField("a", Integer).Equal(Struct().AddField("a", Integer)))
	assert.False(t, Struct().AddField("a", Integer).Equal(Struct().AddField("a", Long)))
	assert.False(t, Struct().AddField("a", Integer).Equal(Struct().AddFieldN("a", Integer, false)))
	assert.False(t, Struct().AddField("a", Integer).Equal(Integer))
}

func TestStructField(t *testing.T) {
	field := NewField("field_name", Integer)
	assert.Equal(t, "field_name", field.Name())
	assert.True(t, field.Type().Equal(Integer))
	assert.True(t, field.Nullable())

	field = field.WithNullable(false)
	assert.False(t, field.Nullable())

	assert.Equal(t, "StructField(field_name, int, false)", field.String())
}
