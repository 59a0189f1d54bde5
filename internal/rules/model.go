// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

// Package rules loads transformation rule files and derives record schemas
// from their mapping targets.
package rules

// RuleFile is a parsed transformation rule file.
type RuleFile struct {
	Version  int        `yaml:"version" json:"version"`
	Output   *Output    `yaml:"output,omitempty" json:"output,omitempty"`
	Mappings []*Mapping `yaml:"mappings" json:"mappings"`
}

// Output carries output-level settings of a rule file.
type Output struct {
	// Name overrides the default root record name.
	Name string `yaml:"name,omitempty" json:"name,omitempty"`
}

// Mapping describes one output field of the transformation.
type Mapping struct {
	// Target is the dotted path of the output field.
	Target string `yaml:"target" json:"target"`

	// Source is the input path the value is taken from, if any.
	Source string `yaml:"source,omitempty" json:"source,omitempty"`

	// Value is a literal value for the field.
	Value any `yaml:"value,omitempty" json:"value,omitempty"`

	// Type constrains the field's value type: string, int, float, or bool.
	// An absent type means the field carries opaque JSON.
	Type string `yaml:"type,omitempty" json:"type,omitempty"`

	// Required marks the field as mandatory in the output.
	Required bool `yaml:"required,omitempty" json:"required,omitempty"`

	// Default is the value used when the source is absent.
	Default any `yaml:"default,omitempty" json:"default,omitempty"`
}
