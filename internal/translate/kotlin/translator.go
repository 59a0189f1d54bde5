// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package kotlin

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/dtoforge/cli/internal/schema"
	"github.com/dtoforge/cli/internal/translate"
)

//go:embed kotlin.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("").Funcs(template.FuncMap{
	"last": func(i int, fields []translate.Field) bool {
		return i == len(fields)-1
	},
}).ParseFS(tmplFS, "kotlin.go.tmpl"))

// Translator renders schemas as Kotlin data classes.
type Translator struct{}

// Name returns the target identifier.
func (t *Translator) Name() string { return "kotlin" }

// FileExtension returns the file extension for Kotlin files.
func (t *Translator) FileExtension() string { return ".kt" }

// Translate converts a schema to Kotlin data class definitions.
func (t *Translator) Translate(s *schema.Schema) ([]byte, error) {
	plan, err := translate.BuildPlan(s, target())
	if err != nil {
		return nil, fmt.Errorf("failed to build emission plan: %w", err)
	}

	data := struct {
		Types         []translate.TypeDef
		NeedsProperty bool
		NeedsNode     bool
	}{Types: plan.Types}

	for _, def := range plan.Types {
		for _, f := range def.Fields {
			if f.Renamed {
				data.NeedsProperty = true
			}
			if strings.Contains(f.Type, "JsonNode") {
				data.NeedsNode = true
			}
		}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "kotlin.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	return append(bytes.TrimRight(bytes.TrimLeft(buf.Bytes(), "\n"), "\n"), '\n'), nil
}
