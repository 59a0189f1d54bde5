// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

// Package python renders schemas as Python dataclass definitions.
package python

import (
	"github.com/dtoforge/cli/internal/schema"
	"github.com/dtoforge/cli/internal/translate"
)

func target() translate.Target {
	return translate.Target{
		Profile: translate.Profile{
			Name:       "python",
			Convention: translate.SnakeCase,
			Reserved: translate.ReservedWords(
				"False", "None", "True", "and", "as", "assert", "async",
				"await", "break", "class", "continue", "def", "del", "elif",
				"else", "except", "finally", "for", "from", "global", "if",
				"import", "in", "is", "lambda", "nonlocal", "not", "or",
				"pass", "raise", "return", "try", "while", "with", "yield",
			),
		},
		Types: &resolver{},
	}
}

type resolver struct{}

func (r *resolver) ScalarType(k schema.Kind) (string, error) {
	switch k {
	case schema.String:
		return "str", nil
	case schema.Int:
		return "int", nil
	case schema.Float:
		return "float", nil
	case schema.Bool:
		return "bool", nil
	default:
		return "", &translate.TypeMapError{Kind: k.String()}
	}
}

func (r *resolver) OptionalType(inner string) string {
	return "Optional[" + inner + "]"
}

func (r *resolver) RefType(name string) string {
	return translate.ToPascalCase(name)
}

func (r *resolver) AnyType() string {
	return "Any"
}

func (r *resolver) FormatTypeName(name string) string {
	return translate.ToPascalCase(name)
}

// EnrichField fills the default suffix. Defaults are strictly a function of
// the required flag; renaming only switches the suffix to a field() call so
// the original key rides along as dataclass metadata.
func (r *resolver) EnrichField(f *translate.Field) {
	switch {
	case f.Renamed && f.Required:
		f.Tag = ` = field(metadata={"json_key": "` + f.SourceKey + `"})`
	case f.Renamed:
		f.Tag = ` = field(default=None, metadata={"json_key": "` + f.SourceKey + `"})`
	case !f.Required:
		f.Tag = " = None"
	}
}
