// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

// Package schema defines the language-agnostic record schema model.
//
// A Schema is an ordered list of named Records. Each Record holds an ordered
// list of Fields carrying the raw source key, a semantic type, and a required
// flag. The model is constructed once and never mutated afterwards; all
// target-language concerns (naming, nullability syntax, annotations) live in
// the translate packages.
package schema

// Kind identifies a scalar semantic type.
type Kind int

// Scalar kinds.
const (
	String Kind = iota
	Int
	Float
	Bool
)

// String returns the schema-level name of the kind.
func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	case Bool:
		return "bool"
	default:
		return "unknown"
	}
}

// Type is the semantic type of a field. Exactly one of Scalar, Optional,
// Ref, or Any implements it.
type Type interface {
	isType()
}

// Scalar is a primitive semantic type.
type Scalar struct {
	Kind Kind
}

// Optional wraps another semantic type as nullable/absent-allowed.
type Optional struct {
	Inner Type
}

// Ref is a reference to another named record in the same schema.
type Ref struct {
	Record string
}

// Any is an opaque value with no declared structure.
type Any struct{}

func (Scalar) isType()   {}
func (Optional) isType() {}
func (Ref) isType()      {}
func (Any) isType()      {}

// Field is a single record member.
// Key is the raw source key, kept verbatim for round-tripping.
type Field struct {
	Key      string
	Type     Type
	Required bool
}

// Record is a named, ordered group of fields.
type Record struct {
	Name   string
	Fields []Field
}

// Schema is an ordered collection of records. Field and record order match
// the source declaration order.
type Schema struct {
	Records []Record
}

// Record returns the record with the given name, if present.
func (s *Schema) Record(name string) (*Record, bool) {
	for i := range s.Records {
		if s.Records[i].Name == name {
			return &s.Records[i], true
		}
	}
	return nil, false
}
