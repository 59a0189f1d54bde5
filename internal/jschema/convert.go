// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

// Package jschema adapts JSON Schema documents to the record schema model.
//
// Only the structural subset survives the conversion: object types with
// properties, required lists, $defs and local $refs, and the four scalar
// kinds. Anything else (arrays, unions, conditionals, external refs) is
// rejected rather than approximated.
package jschema

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"sort"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"

	"github.com/dtoforge/cli/internal/schema"
	"github.com/dtoforge/cli/internal/translate"
)

// Loader reads JSON Schema files from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads a JSON Schema file and converts it into a record schema
// rooted at rootName. YAML and JSON are supported, chosen by extension.
func (l *Loader) LoadFile(filePath, rootName string) (*schema.Schema, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	raw, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	var js jsonschema.Schema
	var keyOrder map[string][]string

	switch {
	case strings.HasSuffix(filePath, ".yaml") || strings.HasSuffix(filePath, ".yml"):
		// Round-trip through JSON so the schema's json tags apply.
		var doc any
		if err := yaml.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse schema: %w", err)
		}
		jsonBytes, err := json.Marshal(doc)
		if err != nil {
			return nil, fmt.Errorf("failed to convert schema: %w", err)
		}
		if err := json.Unmarshal(jsonBytes, &js); err != nil {
			return nil, fmt.Errorf("failed to parse schema: %w", err)
		}
		keyOrder, err = ExtractKeyOrderYAML(raw)
		if err != nil {
			return nil, err
		}
	case strings.HasSuffix(filePath, ".json"):
		if err := json.Unmarshal(raw, &js); err != nil {
			return nil, fmt.Errorf("failed to parse schema: %w", err)
		}
		keyOrder = ExtractKeyOrderJSON(raw)
	default:
		return nil, fmt.Errorf("format not supported: %s", filePath)
	}

	return Convert(&js, keyOrder, rootName)
}

// converter tracks naming state while walking a JSON Schema document.
type converter struct {
	keyOrder map[string][]string
	used     map[string]bool
	out      *schema.Schema
}

// Convert translates a parsed JSON Schema into a record schema. keyOrder
// restores property declaration order (see ExtractKeyOrderJSON); a nil map
// falls back to alphabetical order. Inline nested objects are extracted as
// named records.
func Convert(js *jsonschema.Schema, keyOrder map[string][]string, rootName string) (*schema.Schema, error) {
	if rootName == "" {
		rootName = "Record"
	}

	c := &converter{
		keyOrder: keyOrder,
		used:     map[string]bool{},
		out:      &schema.Schema{},
	}

	defNames := make([]string, 0, len(js.Defs))
	for name := range js.Defs {
		defNames = append(defNames, name)
	}
	sort.Strings(defNames)

	for _, name := range defNames {
		recName := c.claimName(translate.ToPascalCase(name))
		rec, err := c.convertObject(js.Defs[name], "$defs."+name, recName)
		if err != nil {
			return nil, fmt.Errorf("$defs.%s: %w", name, err)
		}
		c.out.Records = append(c.out.Records, rec)
	}

	rootRec, err := c.convertObject(js, "", c.claimName(rootName))
	if err != nil {
		return nil, err
	}
	c.out.Records = append(c.out.Records, rootRec)

	return c.out, nil
}

func (c *converter) convertObject(js *jsonschema.Schema, path, recName string) (schema.Record, error) {
	if js.Type != "object" && !(js.Type == "" && len(js.Properties) > 0) {
		return schema.Record{}, fmt.Errorf("not an object schema")
	}

	required := make(map[string]bool, len(js.Required))
	for _, name := range js.Required {
		required[name] = true
	}

	rec := schema.Record{Name: recName}
	for _, propName := range c.orderedProps(js, path) {
		prop := js.Properties[propName]

		propPath := "properties." + propName
		if path != "" {
			propPath = path + "." + propPath
		}

		typ, err := c.convertType(prop, propName, propPath)
		if err != nil {
			return schema.Record{}, fmt.Errorf("property %q: %w", propName, err)
		}

		rec.Fields = append(rec.Fields, schema.Field{
			Key:      propName,
			Type:     typ,
			Required: required[propName],
		})
	}
	return rec, nil
}

func (c *converter) convertType(js *jsonschema.Schema, propName, path string) (schema.Type, error) {
	if js == nil {
		return nil, fmt.Errorf("missing schema")
	}

	if js.Ref != "" {
		name, ok := strings.CutPrefix(js.Ref, "#/$defs/")
		if !ok {
			return nil, fmt.Errorf("unsupported $ref %q", js.Ref)
		}
		return schema.Ref{Record: translate.ToPascalCase(name)}, nil
	}

	// Inline nested objects become named records.
	if js.Type == "object" || (js.Type == "" && len(js.Properties) > 0) {
		recName := c.claimName(translate.ToPascalCase(propName))
		rec, err := c.convertObject(js, path, recName)
		if err != nil {
			return nil, err
		}
		c.out.Records = append(c.out.Records, rec)
		return schema.Ref{Record: recName}, nil
	}

	switch js.Type {
	case "string":
		return schema.Scalar{Kind: schema.String}, nil
	case "integer":
		return schema.Scalar{Kind: schema.Int}, nil
	case "number":
		return schema.Scalar{Kind: schema.Float}, nil
	case "boolean":
		return schema.Scalar{Kind: schema.Bool}, nil
	case "":
		return schema.Any{}, nil
	default:
		return nil, fmt.Errorf("unsupported schema type %q", js.Type)
	}
}

// orderedProps returns property names in declaration order when known,
// alphabetical otherwise.
func (c *converter) orderedProps(js *jsonschema.Schema, path string) []string {
	orderPath := "properties"
	if path != "" {
		orderPath = path + ".properties"
	}

	if order, ok := c.keyOrder[orderPath]; ok {
		seen := make(map[string]bool, len(order))
		result := make([]string, 0, len(js.Properties))
		for _, key := range order {
			if _, exists := js.Properties[key]; exists {
				result = append(result, key)
				seen[key] = true
			}
		}
		// Keys missing from the raw order still need a slot.
		rest := make([]string, 0)
		for key := range js.Properties {
			if !seen[key] {
				rest = append(rest, key)
			}
		}
		sort.Strings(rest)
		return append(result, rest...)
	}

	keys := make([]string, 0, len(js.Properties))
	for key := range js.Properties {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// claimName returns name, or a numbered variant when already taken.
func (c *converter) claimName(name string) string {
	if name == "" {
		name = "Record"
	}
	unique := name
	for suffix := 2; c.used[unique]; suffix++ {
		unique = fmt.Sprintf("%s%d", name, suffix)
	}
	c.used[unique] = true
	return unique
}
