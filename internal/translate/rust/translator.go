// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package rust

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/dtoforge/cli/internal/schema"
	"github.com/dtoforge/cli/internal/translate"
)

//go:embed rust.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "rust.go.tmpl"))

// Translator renders schemas as Rust structs.
type Translator struct{}

// Name returns the target identifier.
func (t *Translator) Name() string { return "rust" }

// FileExtension returns the file extension for Rust files.
func (t *Translator) FileExtension() string { return ".rs" }

// Translate converts a schema to serde-ready Rust struct definitions.
func (t *Translator) Translate(s *schema.Schema) ([]byte, error) {
	plan, err := translate.BuildPlan(s, target())
	if err != nil {
		return nil, fmt.Errorf("failed to build emission plan: %w", err)
	}

	data := struct {
		Types      []translate.TypeDef
		NeedsValue bool
	}{Types: plan.Types}

	for _, def := range plan.Types {
		for _, f := range def.Fields {
			if strings.Contains(f.Type, "Value") {
				data.NeedsValue = true
			}
		}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "rust.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return append(bytes.TrimRight(buf.Bytes(), "\n"), '\n'), nil
}
