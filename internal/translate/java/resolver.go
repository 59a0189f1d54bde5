// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

// Package java renders schemas as Jackson-annotated Java class definitions.
package java

import (
	"github.com/dtoforge/cli/internal/schema"
	"github.com/dtoforge/cli/internal/translate"
)

func target() translate.Target {
	return translate.Target{
		Profile: translate.Profile{
			Name:       "java",
			Convention: translate.CamelCase,
			Reserved: translate.ReservedWords(
				"abstract", "assert", "boolean", "break", "byte", "case",
				"catch", "char", "class", "const", "continue", "default",
				"do", "double", "else", "enum", "extends", "final",
				"finally", "float", "for", "goto", "if", "implements",
				"import", "instanceof", "int", "interface", "long",
				"native", "new", "package", "private", "protected",
				"public", "return", "short", "static", "strictfp", "super",
				"switch", "synchronized", "this", "throw", "throws",
				"transient", "try", "void", "volatile", "while",
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
		return "Long", nil
	case schema.Float:
		return "Double", nil
	case schema.Bool:
		return "Boolean", nil
	default:
		return "", &translate.TypeMapError{Kind: k.String()}
	}
}

func (r *resolver) OptionalType(inner string) string {
	return "Optional<" + inner + ">"
}

func (r *resolver) RefType(name string) string {
	return translate.ToPascalCase(name)
}

func (r *resolver) AnyType() string {
	return "JsonNode"
}

func (r *resolver) FormatTypeName(name string) string {
	return translate.ToPascalCase(name)
}

func (r *resolver) EnrichField(*translate.Field) {}
