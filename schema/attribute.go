/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"github.com/google/uuid"

	"github.com/suparena/recordstore/codec"
)

// KeyRole marks an attribute's part in the table's primary key.
type KeyRole string

const (
	// KeyNone marks a plain, non-key attribute.
	KeyNone KeyRole = ""
	// KeyHash marks the partition key attribute. Every definition has exactly one.
	KeyHash KeyRole = "hash"
	// KeyRange marks the sort key attribute. A definition has at most one.
	KeyRange KeyRole = "range"
)

// Attribute describes one declared attribute of a record definition:
// its name, semantic type, wire-level storage name, key role, and an
// optional default applied when a record is constructed without a value.
// Attributes are immutable once the definition is finalized.
type Attribute struct {
	// Name is the in-memory attribute name.
	Name string
	// Type selects the codec used at the store boundary.
	Type codec.Type
	// StorageName is the wire-level key; defaults to Name.
	StorageName string
	// Role is the attribute's part in the primary key, if any.
	Role KeyRole
	// Default, when non-nil, produces a value for newly constructed records
	// that did not receive one.
	Default func() any
	// Options carries database-specific type options, opaque to this layer.
	Options map[string]string
}

// UUIDString is a default generator producing a random UUID string.
// Typically used for string hash keys.
func UUIDString() any {
	return uuid.NewString()
}

// StaticDefault returns a default generator that always yields v.
func StaticDefault(v any) func() any {
	return func() any { return v }
}
