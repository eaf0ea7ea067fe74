/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package record

import (
	"github.com/suparena/recordstore/codec"
	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/schema"
)

// Record is a live instance bound to a record definition. It holds the
// current attribute values plus the dirty-tracking state that remembers the
// last known-persisted snapshot. Values are native semantic types (a date
// attribute holds a date value, not a string); conversion to wire format
// happens only at the store boundary.
//
// A Record is owned by a single logical caller at a time. Concurrent Set or
// Save on the same instance is undefined; the shared definition, by contrast,
// is immutable and safe to read from any goroutine.
type Record struct {
	def        *schema.Definition
	values     map[string]any
	snapshot   map[string]snapshotEntry
	forceDirty map[string]struct{}
}

// snapshotEntry is the last-known-clean state of one attribute. set is false
// when the attribute was unset at snapshot time; the store distinguishes
// "no value" from any concrete value, so the tracking state must too.
type snapshotEntry struct {
	value any
	set   bool
}

// New constructs a record bound to def with the given initial values.
// Declared defaults fill attributes the caller left unset. The clean snapshot
// starts empty, so every set attribute is dirty relative to "unset" — this is
// the "new, unsaved" state.
func New(def *schema.Definition, initial map[string]any) (*Record, error) {
	rec := &Record{
		def:        def,
		values:     make(map[string]any, len(initial)),
		snapshot:   make(map[string]snapshotEntry),
		forceDirty: make(map[string]struct{}),
	}

	for name, v := range initial {
		if err := rec.Set(name, v); err != nil {
			return nil, err
		}
	}

	for _, attr := range def.Attributes() {
		if attr.Default == nil {
			continue
		}
		if _, set := rec.values[attr.Name]; set {
			continue
		}
		rec.values[attr.Name] = attr.Default()
	}

	return rec, nil
}

// loaded constructs a record from values that came back from the store.
// Defaults are not applied; the caller marks the record clean.
func loaded(def *schema.Definition, values map[string]any) *Record {
	return &Record{
		def:        def,
		values:     values,
		snapshot:   make(map[string]snapshotEntry),
		forceDirty: make(map[string]struct{}),
	}
}

// Definition returns the shared, read-only definition this record is bound to.
func (r *Record) Definition() *schema.Definition {
	return r.def
}

// Set updates the current value of a declared attribute. Setting nil unsets
// the attribute, which omits it from any subsequent save. The clean snapshot
// is untouched; dirtiness is computed against it, not stored.
func (r *Record) Set(name string, v any) error {
	if _, ok := r.def.Attribute(name); !ok {
		return errors.NewUnknownAttributeError(name)
	}
	if codec.IsAbsent(v) {
		delete(r.values, name)
		return nil
	}
	r.values[name] = v
	return nil
}

// Get returns the current value of an attribute and whether it is set.
func (r *Record) Get(name string) (any, bool) {
	v, ok := r.values[name]
	return v, ok
}

// Values returns a copy of the current attribute values.
func (r *Record) Values() map[string]any {
	values := make(map[string]any, len(r.values))
	for name, v := range r.values {
		values[name] = v
	}
	return values
}
