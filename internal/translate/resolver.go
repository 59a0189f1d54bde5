// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package translate

import "github.com/dtoforge/cli/internal/schema"

// TypeResolver converts semantic types to target-language type strings and
// naming conventions. Each target implements this interface to control how a
// schema maps to its output syntax.
type TypeResolver interface {
	// ScalarType maps a scalar kind to a target type string.
	// Unknown kinds must fail with a TypeMapError, never fall back to Any.
	ScalarType(k schema.Kind) (string, error)

	// OptionalType wraps a type string in the target's nullable syntax.
	// Targets that mark optionality on the field itself (e.g. a "?" suffix
	// on the identifier) return inner unchanged.
	OptionalType(inner string) string

	// RefType returns the type string referencing a named record.
	RefType(name string) string

	// AnyType returns the target's most permissive type.
	AnyType() string

	// FormatTypeName formats a record name as a target type name.
	FormatTypeName(name string) string

	// EnrichField applies language-specific post-processing to a planned
	// field, typically filling Tag with an annotation or default suffix.
	// Called once per field after identifier and type resolution.
	EnrichField(f *Field)
}

// Target bundles the identifier profile and type resolver for one language.
type Target struct {
	Profile Profile
	Types   TypeResolver
}
