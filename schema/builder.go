/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"fmt"

	"github.com/suparena/recordstore/codec"
	"github.com/suparena/recordstore/errors"
)

// Builder assembles a record definition one attribute at a time and produces
// an immutable Definition. A Builder is not safe for concurrent use;
// definitions are normally built once, at type declaration time.
type Builder struct {
	tableName string
	attrs     []Attribute
	names     map[string]struct{}
	storage   map[string]struct{}
	hasHash   bool
	hasRange  bool
	def       *Definition
}

// NewBuilder creates a Builder for the named table.
func NewBuilder(tableName string) *Builder {
	return &Builder{
		tableName: tableName,
		names:     make(map[string]struct{}),
		storage:   make(map[string]struct{}),
	}
}

// AttributeOption customizes a declared attribute.
type AttributeOption func(*Attribute)

// WithStorageName sets the wire-level key for the attribute. When unset, the
// attribute name itself is used on the wire.
func WithStorageName(name string) AttributeOption {
	return func(a *Attribute) { a.StorageName = name }
}

// HashKey marks the attribute as the table's partition key.
func HashKey() AttributeOption {
	return func(a *Attribute) { a.Role = KeyHash }
}

// RangeKey marks the attribute as the table's sort key.
func RangeKey() AttributeOption {
	return func(a *Attribute) { a.Role = KeyRange }
}

// WithDefault sets a default value generator for the attribute.
func WithDefault(fn func() any) AttributeOption {
	return func(a *Attribute) { a.Default = fn }
}

// WithOptions attaches database-specific type options to the attribute.
func WithOptions(opts map[string]string) AttributeOption {
	return func(a *Attribute) { a.Options = opts }
}

// Attribute declares an attribute on the definition under construction.
// It fails with a DuplicateAttributeError when the name or storage name
// collides with an earlier declaration, and with a DuplicateKeyRoleError
// when a second hash or range key is declared.
func (b *Builder) Attribute(name string, t codec.Type, opts ...AttributeOption) error {
	if b.def != nil {
		return fmt.Errorf("definition for table %q already finalized", b.tableName)
	}
	if _, err := codec.Lookup(t); err != nil {
		return err
	}

	attr := Attribute{Name: name, Type: t, StorageName: name}
	for _, opt := range opts {
		opt(&attr)
	}

	if _, exists := b.names[attr.Name]; exists {
		return errors.NewDuplicateAttributeError(attr.Name)
	}
	if _, exists := b.storage[attr.StorageName]; exists {
		return errors.NewDuplicateAttributeError(attr.StorageName)
	}

	switch attr.Role {
	case KeyHash:
		if b.hasHash {
			return errors.NewDuplicateKeyRoleError("hash")
		}
		b.hasHash = true
	case KeyRange:
		if b.hasRange {
			return errors.NewDuplicateKeyRoleError("range")
		}
		b.hasRange = true
	}

	b.names[attr.Name] = struct{}{}
	b.storage[attr.StorageName] = struct{}{}
	b.attrs = append(b.attrs, attr)
	return nil
}

// Finalize produces the immutable Definition. It is idempotent: repeated
// calls return the same Definition. A definition without a hash key can
// never satisfy the key resolver, so finalizing one fails.
func (b *Builder) Finalize() (*Definition, error) {
	if b.def != nil {
		return b.def, nil
	}
	if !b.hasHash {
		return nil, fmt.Errorf("table %q: %w", b.tableName, errors.ErrMissingHashKey)
	}

	def := &Definition{
		tableName: b.tableName,
		attrs:     make([]Attribute, len(b.attrs)),
		byName:    make(map[string]int, len(b.attrs)),
		byStorage: make(map[string]int, len(b.attrs)),
	}
	copy(def.attrs, b.attrs)
	for i, a := range def.attrs {
		def.byName[a.Name] = i
		def.byStorage[a.StorageName] = i
		switch a.Role {
		case KeyHash:
			def.hashKeyName = a.Name
		case KeyRange:
			def.rangeKeyName = a.Name
		}
	}

	b.def = def
	return def, nil
}
