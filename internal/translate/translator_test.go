// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dtoforge/cli/internal/schema"
)

type stubTranslator struct {
	name string
	ext  string
}

func (s *stubTranslator) Name() string { return s.name }

func (s *stubTranslator) FileExtension() string { return s.ext }

func (s *stubTranslator) Translate(*schema.Schema) ([]byte, error) { return nil, nil }

func TestRegister(t *testing.T) {
	reg := make(Register)
	reg.Add(&stubTranslator{name: "python", ext: ".py"})
	reg.Add(&stubTranslator{name: "rust", ext: ".rs"})
	reg.Add(&stubTranslator{name: "java", ext: ".java"})

	tr, err := reg.Get("rust")
	require.NoError(t, err)
	assert.Equal(t, ".rs", tr.FileExtension())

	_, err = reg.Get("cobol")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown target")

	assert.Equal(t, []string{"java", "python", "rust"}, reg.Available())
}

func TestToPascalCase(t *testing.T) {
	assert.Equal(t, "OrderItem", ToPascalCase("order_item"))
	assert.Equal(t, "OrderItem", ToPascalCase("order-item"))
	assert.Equal(t, "Order", ToPascalCase("order"))
	assert.Equal(t, "", ToPascalCase(""))
}
