// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package translate

// Plan is the renderer-ready representation of a schema for one target.
// Renderers consume only the plan, never the raw schema.
type Plan struct {
	// Target names the profile the plan was built for.
	Target string

	// Types holds one definition per record, dependencies first.
	Types []TypeDef
}

// TypeDef is a single type definition in the plan.
type TypeDef struct {
	Name   string
	Fields []Field
}

// Field is a fully resolved record member.
type Field struct {
	// Name is the resolved target identifier.
	Name string

	// SourceKey is the raw key from the schema, kept for round-tripping.
	SourceKey string

	// Renamed is true when Name differs from SourceKey; renderers must then
	// emit metadata binding Name back to SourceKey.
	Renamed bool

	// Type is the resolved target type expression, optional wrapper included.
	Type string

	// Required mirrors the schema's required flag.
	Required bool

	// Tag is a language-specific annotation or default suffix, set by the
	// target's EnrichField.
	Tag string
}

// HasRenames reports whether any field in the definition was renamed.
func (d TypeDef) HasRenames() bool {
	for _, f := range d.Fields {
		if f.Renamed {
			return true
		}
	}
	return false
}
