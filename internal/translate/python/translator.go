// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package python

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/dtoforge/cli/internal/schema"
	"github.com/dtoforge/cli/internal/translate"
)

//go:embed python.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "python.go.tmpl"))

// Translator renders schemas as Python dataclasses.
type Translator struct{}

// Name returns the target identifier.
func (t *Translator) Name() string { return "python" }

// FileExtension returns the file extension for Python files.
func (t *Translator) FileExtension() string { return ".py" }

// Translate converts a schema to dataclass definitions.
func (t *Translator) Translate(s *schema.Schema) ([]byte, error) {
	plan, err := translate.BuildPlan(s, target())
	if err != nil {
		return nil, fmt.Errorf("failed to build emission plan: %w", err)
	}

	data := struct {
		Types      []translate.TypeDef
		NeedsField bool
		Typing     string
	}{Types: plan.Types}

	var typing []string
	needsOptional := false
	needsAny := false
	for _, def := range plan.Types {
		for _, f := range def.Fields {
			if f.Renamed {
				data.NeedsField = true
			}
			if strings.Contains(f.Type, "Optional[") {
				needsOptional = true
			}
			if strings.Contains(f.Type, "Any") {
				needsAny = true
			}
		}
	}
	if needsOptional {
		typing = append(typing, "Optional")
	}
	if needsAny {
		typing = append(typing, "Any")
	}
	data.Typing = strings.Join(typing, ", ")

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "python.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return append(bytes.TrimRight(buf.Bytes(), "\n"), '\n'), nil
}
