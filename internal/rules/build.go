// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package rules

import (
	"fmt"
	"strings"

	"github.com/dtoforge/cli/internal/schema"
	"github.com/dtoforge/cli/internal/translate"
)

// node is an intermediate tree built from mapping target paths before record
// names exist.
type node struct {
	fields []nodeField
}

type nodeField struct {
	key      string
	typ      schema.Type // nil when child is set
	child    *node
	optional bool
}

// BuildSchema derives a record schema from the rule file's mapping targets.
// baseName names the root record; nested records are named from the base
// name plus their Pascal-cased path segments, deduplicated with a numeric
// suffix. Records are ordered children-first, root last.
func BuildSchema(rule *RuleFile, baseName string) (*schema.Schema, error) {
	if baseName == "" {
		baseName = "Record"
		if rule.Output != nil && rule.Output.Name != "" {
			baseName = rule.Output.Name
		}
	}

	root := &node{}
	for _, m := range rule.Mappings {
		tokens, err := ParsePath(m.Target)
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", m.Target, err)
		}

		keys := make([]string, 0, len(tokens))
		for _, tok := range tokens {
			if !tok.IsKey {
				return nil, fmt.Errorf("target %q: index segments are not allowed", m.Target)
			}
			keys = append(keys, tok.Key)
		}

		typ, err := mappingType(m)
		if err != nil {
			return nil, fmt.Errorf("target %q: %w", m.Target, err)
		}
		optional := !(m.Required || m.Value != nil || m.Default != nil)

		if err := root.insert(keys, typ, optional); err != nil {
			return nil, fmt.Errorf("target %q: %w", m.Target, err)
		}
	}

	reg := newNameRegistry(baseName)
	out := &schema.Schema{}
	collectRecords(root, nil, reg, out)
	return out, nil
}

func mappingType(m *Mapping) (schema.Type, error) {
	switch m.Type {
	case "string":
		return schema.Scalar{Kind: schema.String}, nil
	case "int":
		return schema.Scalar{Kind: schema.Int}, nil
	case "float":
		return schema.Scalar{Kind: schema.Float}, nil
	case "bool":
		return schema.Scalar{Kind: schema.Bool}, nil
	case "":
		return schema.Any{}, nil
	default:
		return nil, fmt.Errorf("unsupported type %q", m.Type)
	}
}

func (n *node) insert(keys []string, typ schema.Type, optional bool) error {
	if len(keys) == 0 {
		return fmt.Errorf("target path is invalid")
	}

	key := keys[0]
	if len(keys) == 1 {
		for _, f := range n.fields {
			if f.key == key {
				return fmt.Errorf("duplicate target %q", key)
			}
		}
		n.fields = append(n.fields, nodeField{key: key, typ: typ, optional: optional})
		return nil
	}

	for i := range n.fields {
		if n.fields[i].key != key {
			continue
		}
		if n.fields[i].child == nil {
			return fmt.Errorf("target %q conflicts with a non-object field", key)
		}
		return n.fields[i].child.insert(keys[1:], typ, optional)
	}

	child := &node{}
	if err := child.insert(keys[1:], typ, optional); err != nil {
		return err
	}
	n.fields = append(n.fields, nodeField{key: key, child: child})
	return nil
}

// hasRequired reports whether any leaf in the subtree is required. A nested
// record field is itself required exactly when this holds.
func (n *node) hasRequired() bool {
	for _, f := range n.fields {
		if f.child != nil {
			if f.child.hasRequired() {
				return true
			}
		} else if !f.optional {
			return true
		}
	}
	return false
}

// collectRecords converts the tree into named records, children first.
func collectRecords(n *node, path []string, reg *nameRegistry, out *schema.Schema) string {
	rec := schema.Record{Name: reg.nameFor(path)}

	for _, f := range n.fields {
		if f.child != nil {
			childPath := append(append([]string{}, path...), f.key)
			childName := collectRecords(f.child, childPath, reg, out)
			rec.Fields = append(rec.Fields, schema.Field{
				Key:      f.key,
				Type:     schema.Ref{Record: childName},
				Required: f.child.hasRequired(),
			})
			continue
		}
		rec.Fields = append(rec.Fields, schema.Field{
			Key:      f.key,
			Type:     f.typ,
			Required: !f.optional,
		})
	}

	out.Records = append(out.Records, rec)
	return rec.Name
}

// nameRegistry assigns unique record names from tree paths.
type nameRegistry struct {
	base  string
	used  map[string]bool
	names map[string]string
}

func newNameRegistry(base string) *nameRegistry {
	return &nameRegistry{
		base:  base,
		used:  make(map[string]bool),
		names: make(map[string]string),
	}
}

func (r *nameRegistry) nameFor(path []string) string {
	key := strings.Join(path, "\x00")
	if name, ok := r.names[key]; ok {
		return name
	}

	name := r.base
	for _, segment := range path {
		name += translate.ToPascalCase(segment)
	}
	if name == "" {
		name = "Record"
	}

	unique := name
	for suffix := 2; r.used[unique]; suffix++ {
		unique = fmt.Sprintf("%s_%d", name, suffix)
	}
	r.used[unique] = true
	r.names[key] = unique
	return unique
}
