// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package translate

import "strings"

// Convention is a target-language identifier naming convention.
type Convention int

// Supported naming conventions.
const (
	SnakeCase Convention = iota
	CamelCase
	PascalCase
)

// Profile describes one target language's identifier constraints.
// Profiles are plain data; the same resolver logic runs against all of them.
type Profile struct {
	// Name is the target identifier, e.g. "python".
	Name string

	// Convention is the field naming convention of the target.
	Convention Convention

	// Reserved holds the target's reserved words.
	Reserved map[string]bool

	// EscapeSuffix is appended to an identifier that collides with a
	// reserved word. Defaults to "_".
	EscapeSuffix string

	// DigitPrefix is prepended when normalization yields an identifier
	// starting with a digit. Defaults to "_".
	DigitPrefix string
}

func (p Profile) escapeSuffix() string {
	if p.EscapeSuffix == "" {
		return "_"
	}
	return p.EscapeSuffix
}

func (p Profile) digitPrefix() string {
	if p.DigitPrefix == "" {
		return "_"
	}
	return p.DigitPrefix
}

// ReservedWords builds a Profile.Reserved set from a word list.
func ReservedWords(words ...string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

// splitWords breaks a raw source key into lowercase-agnostic word runs.
// Any non-alphanumeric character is a separator.
func splitWords(key string) []string {
	return strings.FieldsFunc(key, func(r rune) bool {
		return (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9')
	})
}

// joinWords assembles words into an identifier per the convention.
func joinWords(words []string, c Convention) string {
	switch c {
	case SnakeCase:
		lower := make([]string, len(words))
		for i, w := range words {
			lower[i] = strings.ToLower(w)
		}
		return strings.Join(lower, "_")
	case CamelCase:
		var sb strings.Builder
		for i, w := range words {
			if i == 0 {
				sb.WriteString(strings.ToLower(w))
			} else {
				sb.WriteString(capitalize(w))
			}
		}
		return sb.String()
	case PascalCase:
		var sb strings.Builder
		for _, w := range words {
			sb.WriteString(capitalize(w))
		}
		return sb.String()
	default:
		return strings.Join(words, "_")
	}
}

func capitalize(w string) string {
	if w == "" {
		return ""
	}
	return strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
}

// ToPascalCase converts a snake_case or kebab-case name to PascalCase.
// Used by targets for type names.
func ToPascalCase(s string) string {
	return joinWords(splitWords(s), PascalCase)
}
