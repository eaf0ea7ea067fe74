/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package record

import (
	"reflect"

	"github.com/suparena/recordstore/errors"
)

// Dirty reports whether the named attribute differs from its clean snapshot,
// or has been explicitly marked dirty. Comparison is by value, not identity:
// two dates with the same calendar value are clean. An attribute with no
// snapshot entry is compared against "unset".
func (r *Record) Dirty(name string) bool {
	if _, forced := r.forceDirty[name]; forced {
		return true
	}

	cur, curSet := r.values[name]
	entry := r.snapshot[name]
	if curSet != entry.set {
		return true
	}
	if !curSet {
		return false
	}
	return !reflect.DeepEqual(cur, entry.value)
}

// Was returns the attribute's last clean snapshot value, or nil when the
// attribute had no value at the last save or load. MarkDirty does not move
// this baseline: after an in-place mutation plus MarkDirty, Was still
// reports the value the store last acknowledged.
func (r *Record) Was(name string) any {
	return r.snapshot[name].value
}

// DirtyNames returns the names of all dirty attributes in declaration order.
func (r *Record) DirtyNames() []string {
	var names []string
	for _, attr := range r.def.Attributes() {
		if r.Dirty(attr.Name) {
			names = append(names, attr.Name)
		}
	}
	return names
}

// Changed reports whether any attribute is dirty.
func (r *Record) Changed() bool {
	for _, attr := range r.def.Attributes() {
		if r.Dirty(attr.Name) {
			return true
		}
	}
	return false
}

// MarkDirty forces the named attribute dirty without touching its snapshot.
// This is the explicit signal for values mutated in place (a slice appended
// to, a map written through) where the snapshot comparison alone would not
// notice the change.
func (r *Record) MarkDirty(name string) error {
	if _, ok := r.def.Attribute(name); !ok {
		return errors.NewUnknownAttributeError(name)
	}
	r.forceDirty[name] = struct{}{}
	return nil
}

// MarkClean snapshots the current value of every declared attribute as the
// new clean baseline and clears all forced-dirty flags. Persistence
// operations call this after the store acknowledges a save or load.
func (r *Record) MarkClean() {
	r.snapshot = make(map[string]snapshotEntry, len(r.def.Attributes()))
	for _, attr := range r.def.Attributes() {
		v, set := r.values[attr.Name]
		r.snapshot[attr.Name] = snapshotEntry{value: v, set: set}
	}
	r.forceDirty = make(map[string]struct{})
}

// Rollback restores the named attributes (or all declared attributes, when
// none are named) to their last clean snapshot and clears their forced-dirty
// flags. Attributes that have never been snapshotted are left as they are.
func (r *Record) Rollback(names ...string) {
	if len(names) == 0 {
		for _, attr := range r.def.Attributes() {
			names = append(names, attr.Name)
		}
	}

	for _, name := range names {
		if entry, ok := r.snapshot[name]; ok {
			if entry.set {
				r.values[name] = entry.value
			} else {
				delete(r.values, name)
			}
		}
		delete(r.forceDirty, name)
	}
}
