// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package translate

// Ident is the result of resolving a raw source key against a target profile.
// SourceKey is kept verbatim so renderers can emit round-trip metadata when
// Renamed is true.
type Ident struct {
	Name      string
	SourceKey string
	Renamed   bool
}

// ResolveIdent maps a raw source key to a valid identifier under the profile.
//
// The key is normalized into the profile's naming convention, prefixed when
// it would start with a digit, and escaped with a single suffix when it
// collides with a reserved word. The result is a pure function of its inputs:
// no registry of previously seen identifiers is consulted. Per-record
// collision detection happens in BuildPlan.
func ResolveIdent(rawKey string, p Profile) (Ident, error) {
	if rawKey == "" {
		return Ident{}, &SchemaError{Reason: "empty field key"}
	}

	words := splitWords(rawKey)
	if len(words) == 0 {
		// Keys made entirely of punctuation still need a name.
		words = []string{"field"}
	}

	name := joinWords(words, p.Convention)
	if name[0] >= '0' && name[0] <= '9' {
		name = p.digitPrefix() + name
	}

	if p.Reserved[name] {
		escaped := name + p.escapeSuffix()
		if p.Reserved[escaped] {
			return Ident{}, &EscapeError{Ident: escaped}
		}
		name = escaped
	}

	return Ident{
		Name:      name,
		SourceKey: rawKey,
		Renamed:   name != rawKey,
	}, nil
}
