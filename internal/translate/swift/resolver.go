// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

// Package swift renders schemas as Codable Swift struct definitions.
package swift

import (
	"github.com/dtoforge/cli/internal/schema"
	"github.com/dtoforge/cli/internal/translate"
)

func target() translate.Target {
	return translate.Target{
		Profile: translate.Profile{
			Name:       "swift",
			Convention: translate.CamelCase,
			Reserved: translate.ReservedWords(
				"class", "deinit", "enum", "extension", "func", "import",
				"init", "let", "protocol", "static", "struct", "subscript",
				"typealias", "var", "break", "case", "continue", "default",
				"defer", "do", "else", "fallthrough", "for", "guard", "if",
				"in", "repeat", "return", "switch", "where", "while", "as",
				"Any", "catch", "false", "is", "nil", "rethrows", "super",
				"self", "Self", "throw", "throws", "true", "try",
			),
		},
		Types: &resolver{},
	}
}

type resolver struct{}

func (r *resolver) ScalarType(k schema.Kind) (string, error) {
	switch k {
	case schema.String:
		return "String", nil
	case schema.Int:
		return "Int", nil
	case schema.Float:
		return "Double", nil
	case schema.Bool:
		return "Bool", nil
	default:
		return "", &translate.TypeMapError{Kind: k.String()}
	}
}

func (r *resolver) OptionalType(inner string) string {
	return inner + "?"
}

func (r *resolver) RefType(name string) string {
	return translate.ToPascalCase(name)
}

func (r *resolver) AnyType() string {
	return "JSONValue"
}

func (r *resolver) FormatTypeName(name string) string {
	return translate.ToPascalCase(name)
}

func (r *resolver) EnrichField(*translate.Field) {}
