// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package typescript

import (
	"bytes"
	"embed"
	"fmt"
	"text/template"

	"github.com/dtoforge/cli/internal/schema"
	"github.com/dtoforge/cli/internal/translate"
)

//go:embed typescript.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "typescript.go.tmpl"))

// Translator renders schemas as TypeScript interfaces.
type Translator struct{}

// Name returns the target identifier.
func (t *Translator) Name() string { return "typescript" }

// FileExtension returns the file extension for TypeScript files.
func (t *Translator) FileExtension() string { return ".ts" }

// Translate converts a schema to TypeScript interface definitions.
func (t *Translator) Translate(s *schema.Schema) ([]byte, error) {
	plan, err := translate.BuildPlan(s, target())
	if err != nil {
		return nil, fmt.Errorf("failed to build emission plan: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "typescript.go.tmpl", plan); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return append(bytes.TrimRight(buf.Bytes(), "\n"), '\n'), nil
}
