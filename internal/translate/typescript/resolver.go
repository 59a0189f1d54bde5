// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

// Package typescript renders schemas as TypeScript interface definitions.
package typescript

import (
	"github.com/dtoforge/cli/internal/schema"
	"github.com/dtoforge/cli/internal/translate"
)

func target() translate.Target {
	return translate.Target{
		Profile: translate.Profile{
			Name:       "typescript",
			Convention: translate.CamelCase,
			Reserved: translate.ReservedWords(
				"break", "case", "catch", "class", "const", "continue",
				"debugger", "default", "delete", "do", "else", "enum",
				"export", "extends", "false", "finally", "for", "function",
				"if", "import", "in", "instanceof", "new", "null", "return",
				"super", "switch", "this", "throw", "true", "try", "typeof",
				"var", "void", "while", "with", "as", "implements",
				"interface", "let", "package", "private", "protected",
				"public", "static", "yield", "any", "boolean", "number",
				"string", "symbol", "type", "from", "of",
			),
		},
		Types: &resolver{},
	}
}

type resolver struct{}

func (r *resolver) ScalarType(k schema.Kind) (string, error) {
	switch k {
	case schema.String:
		return "string", nil
	case schema.Int, schema.Float:
		return "number", nil
	case schema.Bool:
		return "boolean", nil
	default:
		return "", &translate.TypeMapError{Kind: k.String()}
	}
}

// OptionalType returns inner unchanged: TypeScript marks optionality with a
// "?" on the property name, handled by the template.
func (r *resolver) OptionalType(inner string) string {
	return inner
}

func (r *resolver) RefType(name string) string {
	return translate.ToPascalCase(name)
}

func (r *resolver) AnyType() string {
	return "unknown"
}

func (r *resolver) FormatTypeName(name string) string {
	return translate.ToPascalCase(name)
}

func (r *resolver) EnrichField(*translate.Field) {}
