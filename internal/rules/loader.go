// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package rules

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// SupportedVersion is the rule file format version this build understands.
const SupportedVersion = 1

// Loader reads rule files from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and parses a rule file. The format is determined from the
// file extension: .yaml/.yml or .json.
func (l *Loader) LoadFile(filePath string) (*RuleFile, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	return Parse(data, filePath)
}

// Parse decodes rule file bytes. filePath is used only to pick the decoder.
func Parse(data []byte, filePath string) (*RuleFile, error) {
	var rule RuleFile

	switch {
	case strings.HasSuffix(filePath, ".yaml") || strings.HasSuffix(filePath, ".yml"):
		if err := yaml.Unmarshal(data, &rule); err != nil {
			return nil, fmt.Errorf("failed to parse rule file: %w", err)
		}
	case strings.HasSuffix(filePath, ".json"):
		if err := json.Unmarshal(data, &rule); err != nil {
			return nil, fmt.Errorf("failed to parse rule file: %w", err)
		}
	default:
		return nil, fmt.Errorf("format not supported: %s", filePath)
	}

	if rule.Version != SupportedVersion {
		return nil, fmt.Errorf("unsupported rule file version %d", rule.Version)
	}
	if len(rule.Mappings) == 0 {
		return nil, fmt.Errorf("rule file has no mappings")
	}
	for i, m := range rule.Mappings {
		if m == nil || m.Target == "" {
			return nil, fmt.Errorf("mapping %d has no target", i)
		}
	}

	return &rule, nil
}
