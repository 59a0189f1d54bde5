// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindString(t *testing.T) {
	assert.Equal(t, "string", String.String())
	assert.Equal(t, "int", Int.String())
	assert.Equal(t, "float", Float.String())
	assert.Equal(t, "bool", Bool.String())
	assert.Equal(t, "unknown", Kind(42).String())
}

func TestSchemaRecord(t *testing.T) {
	s := &Schema{Records: []Record{
		{Name: "user"},
		{Name: "order"},
	}}

	rec, ok := s.Record("order")
	require.True(t, ok)
	assert.Equal(t, "order", rec.Name)

	_, ok = s.Record("missing")
	assert.False(t, ok)
}
