// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DTO Forge Authors

package translate

import "fmt"

// SchemaError reports a structurally invalid schema: an empty field key,
// a duplicate or unknown record reference, a reference cycle, or two fields
// of one record resolving to the same emitted identifier.
type SchemaError struct {
	Reason string
}

func (e *SchemaError) Error() string {
	return "schema error: " + e.Reason
}

// TypeMapError reports a semantic type the target cannot represent.
// It is always terminal; unsupported types are never coerced to Any.
type TypeMapError struct {
	Kind string
}

func (e *TypeMapError) Error() string {
	return fmt.Sprintf("unsupported semantic type %q", e.Kind)
}

// EscapeError reports that escaping a reserved word produced an identifier
// that is itself reserved. The resolver never loops looking for a free name.
type EscapeError struct {
	Ident string
}

func (e *EscapeError) Error() string {
	return fmt.Sprintf("reserved-word escape %q is itself reserved", e.Ident)
}
