// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package swift

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/dtoforge/cli/internal/schema"
	"github.com/dtoforge/cli/internal/translate"
)

//go:embed swift.go.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.ParseFS(tmplFS, "swift.go.tmpl"))

// Translator renders schemas as Codable Swift structs.
type Translator struct{}

// Name returns the target identifier.
func (t *Translator) Name() string { return "swift" }

// FileExtension returns the file extension for Swift files.
func (t *Translator) FileExtension() string { return ".swift" }

// Translate converts a schema to Codable struct definitions. A struct that
// renames any field gets a full CodingKeys enum; Codable ignores members
// missing from a partial one, so every field is listed.
func (t *Translator) Translate(s *schema.Schema) ([]byte, error) {
	plan, err := translate.BuildPlan(s, target())
	if err != nil {
		return nil, fmt.Errorf("failed to build emission plan: %w", err)
	}

	data := struct {
		Types          []translate.TypeDef
		NeedsJSONValue bool
	}{Types: plan.Types}

	for _, def := range plan.Types {
		for _, f := range def.Fields {
			if strings.Contains(f.Type, "JSONValue") {
				data.NeedsJSONValue = true
			}
		}
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "swift.go.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}

	out := bytes.TrimRight(buf.Bytes(), "\n")
	if data.NeedsJSONValue {
		out = append(out, "\n\n"...)
		out = append(out, strings.TrimRight(jsonValueEnum, "\n")...)
	}
	return append(out, '\n'), nil
}

// jsonValueEnum is a self-contained Codable representation of arbitrary JSON,
// emitted whenever a schema field is opaque.
const jsonValueEnum = `enum JSONValue: Codable {
    case string(String)
    case number(Double)
    case bool(Bool)
    case object([String: JSONValue])
    case array([JSONValue])
    case null

    init(from decoder: Decoder) throws {
        let container = try decoder.singleValueContainer()
        if container.decodeNil() {
            self = .null
        } else if let value = try? container.decode(Bool.self) {
            self = .bool(value)
        } else if let value = try? container.decode(Double.self) {
            self = .number(value)
        } else if let value = try? container.decode(String.self) {
            self = .string(value)
        } else if let value = try? container.decode([String: JSONValue].self) {
            self = .object(value)
        } else if let value = try? container.decode([JSONValue].self) {
            self = .array(value)
        } else {
            throw DecodingError.typeMismatch(JSONValue.self, DecodingError.Context(codingPath: decoder.codingPath, debugDescription: "Unsupported JSON value"))
        }
    }

    func encode(to encoder: Encoder) throws {
        var container = encoder.singleValueContainer()
        switch self {
        case .string(let value):
            try container.encode(value)
        case .number(let value):
            try container.encode(value)
        case .bool(let value):
            try container.encode(value)
        case .object(let value):
            try container.encode(value)
        case .array(let value):
            try container.encode(value)
        case .null:
            try container.encodeNil()
        }
    }
}
`
