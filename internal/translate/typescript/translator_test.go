// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package typescript

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtoforge/cli/internal/schema"
)

func testSchema() *schema.Schema {
	return &schema.Schema{Records: []schema.Record{
		{Name: "user", Fields: []schema.Field{
			{Key: "user_name", Type: schema.Scalar{Kind: schema.String}, Required: true},
			{Key: "age", Type: schema.Scalar{Kind: schema.Int}},
			{Key: "meta", Type: schema.Any{}},
		}},
		{Name: "order", Fields: []schema.Field{
			{Key: "id", Type: schema.Scalar{Kind: schema.String}, Required: true},
			{Key: "user", Type: schema.Ref{Record: "user"}, Required: true},
			{Key: "price", Type: schema.Scalar{Kind: schema.Float}},
		}},
	}}
}

func TestTranslate(t *testing.T) {
	out, err := (&Translator{}).Translate(testSchema())
	require.NoError(t, err)
	got := string(out)

	assert.Contains(t, got, "export interface User {")
	assert.Contains(t, got, "export interface Order {")

	// Optionality is a "?" on the property, not a wrapper type.
	assert.Contains(t, got, "  age?: number;")
	assert.Contains(t, got, "  price?: number;")
	assert.Contains(t, got, "  meta?: unknown;")
	assert.Contains(t, got, "  id: string;")
	assert.Contains(t, got, "  user: User;")

	// Renamed field carries the source key in a doc comment.
	assert.Contains(t, got, "  /** json: \"user_name\" */\n  userName: string;")

	assert.Less(t, strings.Index(got, "interface User"), strings.Index(got, "interface Order"))
}

func TestTranslate_ReservedKey(t *testing.T) {
	s := &schema.Schema{Records: []schema.Record{
		{Name: "token", Fields: []schema.Field{
			{Key: "class", Type: schema.Scalar{Kind: schema.String}, Required: true},
		}},
	}}

	out, err := (&Translator{}).Translate(s)
	require.NoError(t, err)
	assert.Contains(t, string(out), "  /** json: \"class\" */\n  class_: string;")
}

func TestTranslate_Idempotent(t *testing.T) {
	first, err := (&Translator{}).Translate(testSchema())
	require.NoError(t, err)
	second, err := (&Translator{}).Translate(testSchema())
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestMetadata(t *testing.T) {
	tr := &Translator{}
	assert.Equal(t, "typescript", tr.Name())
	assert.Equal(t, ".ts", tr.FileExtension())
}
