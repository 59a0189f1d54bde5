// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

// Package gotypes renders schemas as Go struct definitions.
package gotypes

import (
	"github.com/dtoforge/cli/internal/schema"
	"github.com/dtoforge/cli/internal/translate"
)

func target() translate.Target {
	return translate.Target{
		Profile: translate.Profile{
			Name:       "gotypes",
			Convention: translate.PascalCase,
			// Go keywords are all lowercase and can never collide with an
			// exported field, but the set still guards the escape path.
			Reserved: translate.ReservedWords(
				"break", "case", "chan", "const", "continue", "default",
				"defer", "else", "fallthrough", "for", "func", "go", "goto",
				"if", "import", "interface", "map", "package", "range",
				"return", "select", "struct", "switch", "type", "var",
			),
			DigitPrefix: "Field",
		},
		Types: &resolver{},
	}
}

type resolver struct{}

func (r *resolver) ScalarType(k schema.Kind) (string, error) {
	switch k {
	case schema.String:
		return "string", nil
	case schema.Int:
		return "int64", nil
	case schema.Float:
		return "float64", nil
	case schema.Bool:
		return "bool", nil
	default:
		return "", &translate.TypeMapError{Kind: k.String()}
	}
}

func (r *resolver) OptionalType(inner string) string {
	return "*" + inner
}

func (r *resolver) RefType(name string) string {
	return translate.ToPascalCase(name)
}

func (r *resolver) AnyType() string {
	return "json.RawMessage"
}

func (r *resolver) FormatTypeName(name string) string {
	return translate.ToPascalCase(name)
}

// EnrichField sets the json struct tag. The tag always carries the raw
// source key, so decoding round-trips regardless of the exported name.
func (r *resolver) EnrichField(f *translate.Field) {
	tag := f.SourceKey
	if !f.Required {
		tag += ",omitempty"
	}
	f.Tag = "`json:\"" + tag + "\"`"
}
