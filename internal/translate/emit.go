// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package translate

import (
	"fmt"

	"github.com/dtoforge/cli/internal/schema"
)

// BuildPlan turns a schema into an emission plan for one target.
//
// Records are ordered so every referenced record precedes the records that
// reference it, stable with respect to declaration order. Within each record,
// required fields precede optional fields, again stable. Any resolution
// failure aborts the whole plan; a partial plan is never returned.
func BuildPlan(s *schema.Schema, target Target) (*Plan, error) {
	ordered, err := sortRecords(s)
	if err != nil {
		return nil, err
	}

	plan := &Plan{Target: target.Profile.Name}
	for _, rec := range ordered {
		def, err := buildType(rec, target)
		if err != nil {
			return nil, fmt.Errorf("record %q: %w", rec.Name, err)
		}
		plan.Types = append(plan.Types, def)
	}
	return plan, nil
}

func buildType(rec *schema.Record, target Target) (TypeDef, error) {
	fields := make([]Field, 0, len(rec.Fields))
	byIdent := make(map[string]string, len(rec.Fields))

	for _, f := range rec.Fields {
		id, err := ResolveIdent(f.Key, target.Profile)
		if err != nil {
			return TypeDef{}, fmt.Errorf("field %q: %w", f.Key, err)
		}
		if prev, ok := byIdent[id.Name]; ok {
			return TypeDef{}, &SchemaError{Reason: fmt.Sprintf(
				"fields %q and %q both resolve to identifier %q", prev, f.Key, id.Name)}
		}
		byIdent[id.Name] = f.Key

		t := f.Type
		if !f.Required {
			t = ensureOptional(t)
		}
		typeStr, err := mapType(t, target.Types)
		if err != nil {
			return TypeDef{}, fmt.Errorf("field %q: %w", f.Key, err)
		}

		pf := Field{
			Name:      id.Name,
			SourceKey: id.SourceKey,
			Renamed:   id.Renamed,
			Type:      typeStr,
			Required:  f.Required,
		}
		target.Types.EnrichField(&pf)
		fields = append(fields, pf)
	}

	return TypeDef{
		Name:   target.Types.FormatTypeName(rec.Name),
		Fields: partitionRequired(fields),
	}, nil
}

// partitionRequired moves required fields before optional ones, preserving
// relative order within each group. Targets with trailing-default parameter
// rules depend on this.
func partitionRequired(fields []Field) []Field {
	ordered := make([]Field, 0, len(fields))
	for _, f := range fields {
		if f.Required {
			ordered = append(ordered, f)
		}
	}
	for _, f := range fields {
		if !f.Required {
			ordered = append(ordered, f)
		}
	}
	return ordered
}

// ensureOptional wraps t in an Optional unless it already is one, so an
// explicit Optional type and required=false do not double-wrap.
func ensureOptional(t schema.Type) schema.Type {
	if _, ok := t.(schema.Optional); ok {
		return t
	}
	return schema.Optional{Inner: t}
}

func mapType(t schema.Type, r TypeResolver) (string, error) {
	switch tt := t.(type) {
	case schema.Scalar:
		return r.ScalarType(tt.Kind)
	case schema.Optional:
		inner, err := mapType(tt.Inner, r)
		if err != nil {
			return "", err
		}
		return r.OptionalType(inner), nil
	case schema.Ref:
		return r.RefType(tt.Record), nil
	case schema.Any:
		return r.AnyType(), nil
	case nil:
		return "", &TypeMapError{Kind: "nil"}
	default:
		return "", &TypeMapError{Kind: fmt.Sprintf("%T", t)}
	}
}

// sortRecords returns records dependency-first. Duplicate names, references
// to unknown records, and reference cycles (including self-references) are
// schema errors.
func sortRecords(s *schema.Schema) ([]*schema.Record, error) {
	index := make(map[string]*schema.Record, len(s.Records))
	for i := range s.Records {
		rec := &s.Records[i]
		if _, dup := index[rec.Name]; dup {
			return nil, &SchemaError{Reason: fmt.Sprintf("duplicate record name %q", rec.Name)}
		}
		index[rec.Name] = rec
	}

	const (
		unvisited = iota
		visiting
		done
	)
	state := make(map[string]int, len(s.Records))
	ordered := make([]*schema.Record, 0, len(s.Records))

	var visit func(rec *schema.Record) error
	visit = func(rec *schema.Record) error {
		switch state[rec.Name] {
		case visiting:
			return &SchemaError{Reason: fmt.Sprintf("record %q participates in a reference cycle", rec.Name)}
		case done:
			return nil
		}
		state[rec.Name] = visiting

		for _, f := range rec.Fields {
			dep, ok := recordRef(f.Type)
			if !ok {
				continue
			}
			child, known := index[dep]
			if !known {
				return &SchemaError{Reason: fmt.Sprintf("record %q references unknown record %q", rec.Name, dep)}
			}
			if err := visit(child); err != nil {
				return err
			}
		}

		state[rec.Name] = done
		ordered = append(ordered, rec)
		return nil
	}

	for i := range s.Records {
		if err := visit(&s.Records[i]); err != nil {
			return nil, err
		}
	}
	return ordered, nil
}

// recordRef extracts the referenced record name from a type, looking through
// Optional wrappers.
func recordRef(t schema.Type) (string, bool) {
	for {
		switch tt := t.(type) {
		case schema.Ref:
			return tt.Record, true
		case schema.Optional:
			t = tt.Inner
		default:
			return "", false
		}
	}
}
