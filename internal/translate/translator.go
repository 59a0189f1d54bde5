// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

// Package translate turns record schemas into target-language type
// definitions. The core is a pure pipeline: identifier resolution against a
// target Profile, semantic-type mapping through a per-target TypeResolver,
// and plan assembly in BuildPlan. Concrete targets live in subpackages and
// render plans through embedded templates.
package translate

import (
	"fmt"
	"sort"

	"github.com/dtoforge/cli/internal/schema"
)

// Translator is implemented once per target language.
type Translator interface {
	// Name returns the target identifier (e.g. "python", "gotypes").
	Name() string

	// Translate renders the schema as source text for the target.
	// Calls are hermetic: no state survives between invocations, and an
	// error means nothing was generated.
	Translate(s *schema.Schema) ([]byte, error)

	// FileExtension returns the output file extension (e.g. ".py").
	FileExtension() string
}

// Register maps target names to translators.
type Register map[string]Translator

// Add registers a translator under its own name.
func (r Register) Add(t Translator) {
	r[t.Name()] = t
}

// Get retrieves a translator by target name.
func (r Register) Get(name string) (Translator, error) {
	t, ok := r[name]
	if !ok {
		return nil, fmt.Errorf("unknown target: %s", name)
	}
	return t, nil
}

// Available returns all registered target names, sorted.
func (r Register) Available() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
