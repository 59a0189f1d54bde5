// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package java

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtoforge/cli/internal/schema"
)

func testSchema() *schema.Schema {
	return &schema.Schema{Records: []schema.Record{
		{Name: "order", Fields: []schema.Field{
			{Key: "id", Type: schema.Scalar{Kind: schema.String}, Required: true},
			{Key: "user", Type: schema.Ref{Record: "user"}, Required: true},
			{Key: "price", Type: schema.Scalar{Kind: schema.Float}},
			{Key: "meta", Type: schema.Any{}},
		}},
		{Name: "user", Fields: []schema.Field{
			{Key: "user_name", Type: schema.Scalar{Kind: schema.String}, Required: true},
			{Key: "age", Type: schema.Scalar{Kind: schema.Int}},
		}},
	}}
}

func TestTranslate(t *testing.T) {
	out, err := (&Translator{}).Translate(testSchema())
	require.NoError(t, err)
	got := string(out)

	assert.True(t, strings.HasPrefix(got, "import com.fasterxml.jackson.annotation.JsonProperty;\n"))
	assert.Contains(t, got, "import com.fasterxml.jackson.databind.JsonNode;")
	assert.Contains(t, got, "import java.util.Optional;")

	// The root record is the only public class and sorts last.
	assert.Contains(t, got, "\nclass User {")
	assert.Contains(t, got, "\npublic class Order {")
	assert.Less(t, strings.Index(got, "class User"), strings.Index(got, "class Order"))

	assert.Contains(t, got, "    public String id;")
	assert.Contains(t, got, "    public User user;")
	assert.Contains(t, got, "    public Optional<Double> price;")
	assert.Contains(t, got, "    public Optional<JsonNode> meta;")
	assert.Contains(t, got, "    @JsonProperty(\"user_name\")\n    public String userName;")
	assert.Contains(t, got, "    public Optional<Long> age;")
}

func TestTranslate_SingleRecordIsPublic(t *testing.T) {
	s := &schema.Schema{Records: []schema.Record{
		{Name: "point", Fields: []schema.Field{
			{Key: "x", Type: schema.Scalar{Kind: schema.Float}, Required: true},
		}},
	}}

	out, err := (&Translator{}).Translate(s)
	require.NoError(t, err)
	got := string(out)

	assert.True(t, strings.HasPrefix(got, "public class Point {"))
	assert.NotContains(t, got, "import")
}

func TestTranslate_ReservedKey(t *testing.T) {
	s := &schema.Schema{Records: []schema.Record{
		{Name: "token", Fields: []schema.Field{
			{Key: "class", Type: schema.Scalar{Kind: schema.String}, Required: true},
		}},
	}}

	out, err := (&Translator{}).Translate(s)
	require.NoError(t, err)
	assert.Contains(t, string(out), "    @JsonProperty(\"class\")\n    public String class_;")
}

func TestMetadata(t *testing.T) {
	tr := &Translator{}
	assert.Equal(t, "java", tr.Name())
	assert.Equal(t, ".java", tr.FileExtension())
}
