// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package java

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/dtoforge/cli/internal/schema"
	"github.com/dtoforge/cli/internal/translate"
)

//go:embed java.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "java.go.tmpl"))

// Translator renders schemas as Java classes.
type Translator struct{}

// Name returns the target identifier.
func (t *Translator) Name() string { return "java" }

// FileExtension returns the file extension for Java files.
func (t *Translator) FileExtension() string { return ".java" }

type classDef struct {
	translate.TypeDef
	// Public marks the root class; Java allows one public class per file,
	// and the root record sorts last in the dependency-first plan.
	Public bool
}

// Translate converts a schema to Jackson-annotated class definitions.
func (t *Translator) Translate(s *schema.Schema) ([]byte, error) {
	plan, err := translate.BuildPlan(s, target())
	if err != nil {
		return nil, fmt.Errorf("failed to build emission plan: %w", err)
	}

	data := struct {
		Types         []classDef
		NeedsProperty bool
		NeedsNode     bool
		NeedsOptional bool
	}{}

	for i, def := range plan.Types {
		data.Types = append(data.Types, classDef{
			TypeDef: def,
			Public:  i == len(plan.Types)-1,
		})
		for _, f := range def.Fields {
			if f.Renamed {
				data.NeedsProperty = true
			}
			if strings.Contains(f.Type, "JsonNode") {
				data.NeedsNode = true
			}
			if strings.Contains(f.Type, "Optional<") {
				data.NeedsOptional = true
			}
		}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "java.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return append(bytes.TrimRight(bytes.TrimLeft(buf.Bytes(), "\n"), "\n"), '\n'), nil
}
