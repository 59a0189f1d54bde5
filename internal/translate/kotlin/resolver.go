// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

// Package kotlin renders schemas as Kotlin data class definitions.
package kotlin

import (
	"github.com/dtoforge/cli/internal/schema"
	"github.com/dtoforge/cli/internal/translate"
)

func target() translate.Target {
	return translate.Target{
		Profile: translate.Profile{
			Name:       "kotlin",
			Convention: translate.CamelCase,
			Reserved: translate.ReservedWords(
				"as", "break", "class", "continue", "do", "else", "false",
				"for", "fun", "if", "in", "interface", "is", "null",
				"object", "package", "return", "super", "this", "throw",
				"true", "try", "typealias", "val", "var", "when", "while",
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
	return inner + "?"
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

// EnrichField defaults optional constructor parameters to null. Required
// fields stay positional, which the plan's ordering makes legal.
func (r *resolver) EnrichField(f *translate.Field) {
	if !f.Required {
		f.Tag = " = null"
	}
}
