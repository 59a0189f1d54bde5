// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package jschema

import (
	"bytes"
	"encoding/json"
	"strings"

	"gopkg.in/yaml.v3"
)

// ExtractKeyOrderJSON parses raw JSON and extracts the order of keys for all
// "properties" objects. It returns a map from schema path (e.g. "properties",
// "$defs.address.properties") to ordered property names. Parsed schema
// structs hold properties in maps, so declaration order only survives through
// the raw bytes.
func ExtractKeyOrderJSON(raw []byte) map[string][]string {
	result := make(map[string][]string)

	var extract func(dec *json.Decoder, path string)
	extract = func(dec *json.Decoder, path string) {
		token, err := dec.Token()
		if err != nil {
			return
		}
		t, ok := token.(json.Delim)
		if !ok {
			return
		}
		switch t {
		case '{':
			var keys []string
			for dec.More() {
				keyToken, err := dec.Token()
				if err != nil {
					return
				}
				key, ok := keyToken.(string)
				if !ok {
					continue
				}
				keys = append(keys, key)

				newPath := key
				if path != "" {
					newPath = path + "." + key
				}
				extract(dec, newPath)
			}
			_, _ = dec.Token()
			if isPropertiesPath(path) {
				result[path] = keys
			}
		case '[':
			for dec.More() {
				extract(dec, path)
			}
			_, _ = dec.Token()
		}
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	extract(dec, "")
	return result
}

// ExtractKeyOrderYAML is ExtractKeyOrderJSON for YAML input.
func ExtractKeyOrderYAML(raw []byte) (map[string][]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}

	result := make(map[string][]string)

	var walk func(n *yaml.Node, path string)
	walk = func(n *yaml.Node, path string) {
		switch n.Kind {
		case yaml.DocumentNode:
			for _, c := range n.Content {
				walk(c, path)
			}
		case yaml.MappingNode:
			var keys []string
			for i := 0; i+1 < len(n.Content); i += 2 {
				key := n.Content[i].Value
				keys = append(keys, key)

				newPath := key
				if path != "" {
					newPath = path + "." + key
				}
				walk(n.Content[i+1], newPath)
			}
			if isPropertiesPath(path) {
				result[path] = keys
			}
		case yaml.SequenceNode:
			for _, c := range n.Content {
				walk(c, path)
			}
		}
	}

	walk(&doc, "")
	return result, nil
}

func isPropertiesPath(path string) bool {
	return path == "properties" || strings.HasSuffix(path, ".properties")
}
