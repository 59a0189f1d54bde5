// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package gotypes

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/dtoforge/cli/internal/schema"
	"github.com/dtoforge/cli/internal/translate"
)

//go:embed gotypes.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "gotypes.go.tmpl"))

// Translator renders schemas as Go structs.
type Translator struct {
	// Package is the emitted package name. Defaults to "dto".
	Package string
}

// Name returns the target identifier.
func (t *Translator) Name() string { return "gotypes" }

// FileExtension returns the file extension for Go files.
func (t *Translator) FileExtension() string { return ".go" }

// Translate converts a schema to Go struct definitions.
func (t *Translator) Translate(s *schema.Schema) ([]byte, error) {
	plan, err := translate.BuildPlan(s, target())
	if err != nil {
		return nil, fmt.Errorf("failed to build emission plan: %w", err)
	}

	pkg := t.Package
	if pkg == "" {
		pkg = "dto"
	}

	data := struct {
		Package   string
		Types     []translate.TypeDef
		NeedsJSON bool
	}{Package: pkg, Types: plan.Types}

	for _, def := range plan.Types {
		for _, f := range def.Fields {
			if strings.Contains(f.Type, "json.RawMessage") {
				data.NeedsJSON = true
			}
		}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "gotypes.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return append(bytes.TrimRight(buf.Bytes(), "\n"), '\n'), nil
}
