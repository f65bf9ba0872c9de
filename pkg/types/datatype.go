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

// Package types defines the data types understood by the optimizer, a
// small relational catalog of atomic types plus nested structs.
package types

import (
	"fmt"
	"strings"
)

type typeKind int

const (
	kindBoolean typeKind = iota
	kindByte
	kindShort
	kindInteger
	kindLong
	kindFloat
	kindDouble
	kindString
	kindStruct
)

// DataType is one of the atomic types below or a struct of named fields.
// Atomic values compare with Equal; structs compare field by field.
type DataType struct {
	kind   typeKind
	fields []StructField
}

var (
	Boolean = DataType{kind: kindBoolean}
	Byte    = DataType{kind: kindByte}
	Short   = DataType{kind: kindShort}
	Integer = DataType{kind: kindInteger}
	Long    = DataType{kind: kindLong}
	Float   = DataType{kind: kindFloat}
	Double  = DataType{kind: kindDouble}
	String  = DataType{kind: kindString}
)

// Struct creates a new struct type with the given fields.
func Struct(fields ...StructField) DataType {
	return DataType{kind: kindStruct, fields: fields}
}

// Add returns a copy of this struct type with the field appended.
// Panics if the type is not a struct.
func (t DataType) Add(field StructField) DataType {
	t.mustStruct()
	fields := make([]StructField, 0, len(t.fields)+1)
	fields = append(fields, t.fields...)
	fields = append(fields, field)
	return Struct(fields...)
}

// AddField appends a nullable field with the given name and type.
func (t DataType) AddField(name string, dataType DataType) DataType {
	return t.Add(NewField(name, dataType))
}

// AddFieldN appends a field with an explicit nullable flag.
func (t DataType) AddFieldN(name string, dataType DataType, nullable bool) DataType {
	return t.Add(NewField(name, dataType).WithNullable(nullable))
}

// DefaultSize returns the default size in bytes of a value of this type,
// used for size estimation.
func (t DataType) DefaultSize() int {
	switch t.kind {
	case kindBoolean, kindByte:
		return 1
	case kindShort:
		return 2
	case kindInteger, kindFloat:
		return 4
	case kindLong, kindDouble:
		return 8
	case kindString:
		return 20
	default:
		size := 0
		for _, f := range t.fields {
			size += f.dataType.DefaultSize()
		}
		return size
	}
}

// NumFields returns the number of fields in this struct type.
// Panics if the type is not a struct.
func (t DataType) NumFields() int {
	t.mustStruct()
	return len(t.fields)
}

// Fields returns the fields of this struct type.
// Panics if the type is not a struct.
func (t DataType) Fields() []StructField {
	t.mustStruct()
	return t.fields
}

// IsStruct reports whether this type is a struct.
func (t DataType) IsStruct() bool {
	return t.kind == kindStruct
}

// IsAtomic reports whether this type represents a single non-nested value.
func (t DataType) IsAtomic() bool {
	return t.kind != kindStruct
}

// Equal reports whether both types are the same, comparing struct fields
// recursively.
func (t DataType) Equal(other DataType) bool {
	if t.kind != other.kind || len(t.fields) != len(other.fields) {
		return false
	}
	for i := range t.fields {
		f, o := t.fields[i], other.fields[i]
		if f.name != o.name || f.nullable != o.nullable || !f.dataType.Equal(o.dataType) {
			return false
		}
	}
	return true
}

func (t DataType) typeName() string {
	switch t.kind {
	case kindBoolean:
		return "bool"
	case kindByte:
		return "byte"
	case kindShort:
		return "short"
	case kindInteger:
		return "int"
	case kindLong:
		return "long"
	case kindFloat:
		return "float"
	case kindDouble:
		return "double"
	case kindString:
		return "string"
	default:
		return "struct"
	}
}

func (t DataType) String() string {
	if !t.IsStruct() {
		return t.typeName()
	}
	var sb strings.Builder
	sb.WriteString("struct<")
	for i, f := range t.fields {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(f.name)
		sb.WriteString(":")
		sb.WriteString(f.dataType.String())
	}
	sb.WriteString(">")
	return sb.String()
}

// TreeString renders a struct schema as an indented tree.
// Panics if the type is not a struct.
func (t DataType) TreeString() string {
	t.mustStruct()
	lines := []string{"root"}
	lines = t.printTree(" |", lines)
	return strings.Join(lines, "\n")
}

func (t DataType) printTree(prefix string, lines []string) []string {
	if !t.IsStruct() {
		return lines
	}
	for _, f := range t.fields {
		lines = f.printTree(prefix, lines)
	}
	return lines
}

func (t DataType) mustStruct() {
	if !t.IsStruct() {
		panic(fmt.Sprintf("%s is not a struct type", t.typeName()))
	}
}

// StructField is a field inside a struct type: a name, a data type, and
// whether values of the field can be null.
type StructField struct {
	name     string
	dataType DataType
	nullable bool
}

// NewField creates a struct field, nullable by default.
func NewField(name string, dataType DataType) StructField {
	return StructField{name: name, dataType: dataType, nullable: true}
}

func (f StructField) Name() string { return f.name }

func (f StructField) Type() DataType { return f.dataType }

func (f StructField) Nullable() bool { return f.nullable }

// WithNullable returns a copy of the field marked nullable or not.
func (f StructField) WithNullable(nullable bool) StructField {
	f.nullable = nullable
	return f
}

func (f StructField) String() string {
	return fmt.Sprintf("StructField(%s, %s, %t)", f.name, f.dataType, f.nullable)
}

func (f StructField) printTree(prefix string, lines []string) []string {
	lines = append(lines, fmt.Sprintf("%s- %s: %s (nullable = %t)",
		prefix, f.name, f.dataType.typeName(), f.nullable))
	return f.dataType.printTree("   "+prefix, lines)
}
