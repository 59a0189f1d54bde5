// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtoforge/cli/internal/schema"
)

func TestBuildSchema_Nested(t *testing.T) {
	rule := &RuleFile{
		Version: SupportedVersion,
		Mappings: []*Mapping{
			{Target: "id", Type: "string", Required: true},
			{Target: "user.name", Type: "string", Required: true},
			{Target: "user.age", Type: "int"},
			{Target: "note"},
		},
	}

	s, err := BuildSchema(rule, "Order")
	require.NoError(t, err)
	require.Len(t, s.Records, 2)

	// Children first, root last.
	user := s.Records[0]
	root := s.Records[1]
	assert.Equal(t, "OrderUser", user.Name)
	assert.Equal(t, "Order", root.Name)

	require.Len(t, user.Fields, 2)
	assert.Equal(t, schema.Field{Key: "name", Type: schema.Scalar{Kind: schema.String}, Required: true}, user.Fields[0])
	assert.Equal(t, schema.Field{Key: "age", Type: schema.Scalar{Kind: schema.Int}}, user.Fields[1])

	require.Len(t, root.Fields, 3)
	assert.Equal(t, schema.Field{Key: "id", Type: schema.Scalar{Kind: schema.String}, Required: true}, root.Fields[0])
	// The nested field is required because its subtree has a required leaf.
	assert.Equal(t, schema.Field{Key: "user", Type: schema.Ref{Record: "OrderUser"}, Required: true}, root.Fields[1])
	assert.Equal(t, schema.Field{Key: "note", Type: schema.Any{}}, root.Fields[2])
}

func TestBuildSchema_OptionalNestedRecord(t *testing.T) {
	rule := &RuleFile{
		Version: SupportedVersion,
		Mappings: []*Mapping{
			{Target: "id", Type: "string", Required: true},
			{Target: "extra.hint", Type: "string"},
		},
	}

	s, err := BuildSchema(rule, "Doc")
	require.NoError(t, err)

	root := s.Records[len(s.Records)-1]
	assert.False(t, root.Fields[1].Required, "a subtree with no required leaf stays optional")
}

func TestBuildSchema_OptionalityRules(t *testing.T) {
	// A field is optional only when it has no required flag, no literal value,
	// and no default.
	rule := &RuleFile{
		Version: SupportedVersion,
		Mappings: []*Mapping{
			{Target: "a", Type: "string", Required: true},
			{Target: "b", Type: "string", Value: "fixed"},
			{Target: "c", Type: "string", Default: "fallback"},
			{Target: "d", Type: "string"},
		},
	}

	s, err := BuildSchema(rule, "R")
	require.NoError(t, err)

	root := s.Records[0]
	assert.True(t, root.Fields[0].Required)
	assert.True(t, root.Fields[1].Required)
	assert.True(t, root.Fields[2].Required)
	assert.False(t, root.Fields[3].Required)
}

func TestBuildSchema_BaseNameFallback(t *testing.T) {
	rule := &RuleFile{
		Version:  SupportedVersion,
		Output:   &Output{Name: "Invoice"},
		Mappings: []*Mapping{{Target: "id", Type: "string"}},
	}

	s, err := BuildSchema(rule, "")
	require.NoError(t, err)
	assert.Equal(t, "Invoice", s.Records[0].Name)

	rule.Output = nil
	s, err = BuildSchema(rule, "")
	require.NoError(t, err)
	assert.Equal(t, "Record", s.Records[0].Name)
}

func TestBuildSchema_NameCollision(t *testing.T) {
	// "a_b" and the path a.b both pascalize to the same record name; the
	// second gets a numeric suffix.
	rule := &RuleFile{
		Version: SupportedVersion,
		Mappings: []*Mapping{
			{Target: "a_b.v", Type: "string"},
			{Target: "a.b.c", Type: "string"},
		},
	}

	s, err := BuildSchema(rule, "X")
	require.NoError(t, err)

	var names []string
	for _, rec := range s.Records {
		names = append(names, rec.Name)
	}
	assert.Equal(t, []string{"XAB", "XAB_2", "XA", "X"}, names)
}

func TestBuildSchema_Errors(t *testing.T) {
	tests := []struct {
		name     string
		mappings []*Mapping
		wantMsg  string
	}{
		{
			"duplicate target",
			[]*Mapping{{Target: "id"}, {Target: "id"}},
			"duplicate target",
		},
		{
			"object conflict",
			[]*Mapping{{Target: "user", Type: "string"}, {Target: "user.name"}},
			"conflicts with a non-object field",
		},
		{
			"index segment",
			[]*Mapping{{Target: "items[0]"}},
			"index segments are not allowed",
		},
		{
			"unsupported type",
			[]*Mapping{{Target: "id", Type: "uuid"}},
			`unsupported type "uuid"`,
		},
		{
			"bad path",
			[]*Mapping{{Target: "a..b"}},
			"empty",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rule := &RuleFile{Version: SupportedVersion, Mappings: tt.mappings}
			_, err := BuildSchema(rule, "R")
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}
