// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package rust

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
			{Key: "userName", Type: schema.Scalar{Kind: schema.String}, Required: true},
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

	assert.True(t, strings.HasPrefix(got, "use serde::{Deserialize, Serialize};\n"))
	assert.Contains(t, got, "use serde_json::Value;")

	assert.Contains(t, got, "#[derive(Debug, Clone, Serialize, Deserialize)]\npub struct User {")
	assert.Contains(t, got, "pub struct Order {")

	assert.Contains(t, got, "    pub id: String,")
	assert.Contains(t, got, "    pub user: User,")

	// Renamed required field keeps only the rename attribute.
	assert.Contains(t, got, "    #[serde(rename = \"userName\")]\n    pub username: String,")

	// Optional fields get default + skip, and Option wrapping.
	assert.Contains(t, got, "    #[serde(default, skip_serializing_if = \"Option::is_none\")]\n    pub age: Option<i64>,")
	assert.Contains(t, got, "    pub meta: Option<Value>,")
	assert.Contains(t, got, "    pub price: Option<f64>,")

	assert.Less(t, strings.Index(got, "struct User"), strings.Index(got, "struct Order"))
}

func TestTranslate_OptionalRenamed(t *testing.T) {
	s := &schema.Schema{Records: []schema.Record{
		{Name: "event", Fields: []schema.Field{
			{Key: "event-type", Type: schema.Scalar{Kind: schema.String}},
		}},
	}}

	out, err := (&Translator{}).Translate(s)
	require.NoError(t, err)
	assert.Contains(t, string(out),
		"    #[serde(default, skip_serializing_if = \"Option::is_none\", rename = \"event-type\")]\n    pub event_type: Option<String>,")
}

func TestTranslate_NoValueImportWhenUnused(t *testing.T) {
	s := &schema.Schema{Records: []schema.Record{
		{Name: "point", Fields: []schema.Field{
			{Key: "x", Type: schema.Scalar{Kind: schema.Float}, Required: true},
		}},
	}}

	out, err := (&Translator{}).Translate(s)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "serde_json")
}

func TestMetadata(t *testing.T) {
	tr := &Translator{}
	assert.Equal(t, "rust", tr.Name())
	assert.Equal(t, ".rs", tr.FileExtension())
}
