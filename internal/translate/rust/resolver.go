// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

// Package rust renders schemas as serde-annotated Rust struct definitions.
package rust

import (
	"strings"

	"github.com/dtoforge/cli/internal/schema"
	"github.com/dtoforge/cli/internal/translate"
)

func target() translate.Target {
	return translate.Target{
		Profile: translate.Profile{
			Name:       "rust",
			Convention: translate.SnakeCase,
			Reserved: translate.ReservedWords(
				"as", "break", "const", "continue", "crate", "else", "enum",
				"extern", "false", "fn", "for", "if", "impl", "in", "let",
				"loop", "match", "mod", "move", "mut", "pub", "ref",
				"return", "self", "Self", "static", "struct", "super",
				"trait", "true", "type", "unsafe", "use", "where", "while",
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
		return "i64", nil
	case schema.Float:
		return "f64", nil
	case schema.Bool:
		return "bool", nil
	default:
		return "", &translate.TypeMapError{Kind: k.String()}
	}
}

func (r *resolver) OptionalType(inner string) string {
	return "Option<" + inner + ">"
}

func (r *resolver) RefType(name string) string {
	return translate.ToPascalCase(name)
}

func (r *resolver) AnyType() string {
	return "Value"
}

func (r *resolver) FormatTypeName(name string) string {
	return translate.ToPascalCase(name)
}

// EnrichField collects serde attributes into the field tag: skip/default for
// optional fields, rename for fields whose identifier left the source key.
func (r *resolver) EnrichField(f *translate.Field) {
	var attrs []string
	if !f.Required {
		attrs = append(attrs, "default", `skip_serializing_if = "Option::is_none"`)
	}
	if f.Renamed {
		attrs = append(attrs, `rename = "`+f.SourceKey+`"`)
	}
	f.Tag = strings.Join(attrs, ", ")
}
