/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"fmt"
	"strings"

	"github.com/suparena/recordstore/codec"
	"github.com/suparena/recordstore/datastore"
	"github.com/suparena/recordstore/errors"
)

// Definition is the schema for one storage table: the table name, the ordered
// attribute declarations, and the derived key attribute names. Definitions
// are immutable after Finalize and safe for concurrent reads by any number
// of record instances.
type Definition struct {
	tableName    string
	attrs        []Attribute
	byName       map[string]int
	byStorage    map[string]int
	hashKeyName  string
	rangeKeyName string
}

// TableName returns the storage table this definition maps to.
func (d *Definition) TableName() string {
	return d.tableName
}

// Attributes returns the declared attributes in declaration order.
func (d *Definition) Attributes() []Attribute {
	attrs := make([]Attribute, len(d.attrs))
	copy(attrs, d.attrs)
	return attrs
}

// Attribute returns the declaration for the named attribute.
func (d *Definition) Attribute(name string) (Attribute, bool) {
	i, ok := d.byName[name]
	if !ok {
		return Attribute{}, false
	}
	return d.attrs[i], true
}

// HashKeyName returns the partition key attribute name.
func (d *Definition) HashKeyName() string {
	return d.hashKeyName
}

// RangeKeyName returns the sort key attribute name, or "" when the
// definition has no range key.
func (d *Definition) RangeKeyName() string {
	return d.rangeKeyName
}

// KeyNames returns the required key attribute names, hash key first.
func (d *Definition) KeyNames() []string {
	names := []string{d.hashKeyName}
	if d.rangeKeyName != "" {
		names = append(names, d.rangeKeyName)
	}
	return names
}

// ResolveKey validates that every required key attribute has a value in the
// provided mapping and returns the store-ready key. The hash key is always
// required; the range key is required iff the definition declares one.
// When any are missing it fails with a KeyMissingError naming them in
// declaration order, before anything is encoded — callers rely on this to
// guarantee no partial request ever reaches the store client.
func (d *Definition) ResolveKey(provided map[string]any) (datastore.Item, error) {
	required := d.KeyNames()

	var missing []string
	for _, name := range required {
		if codec.IsAbsent(provided[name]) {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, errors.NewKeyMissingError(missing)
	}

	key := make(datastore.Item, len(required))
	for _, name := range required {
		attr := d.attrs[d.byName[name]]
		av, err := codec.Encode(attr.Type, attr.Name, provided[name])
		if err != nil {
			return nil, err
		}
		key[attr.StorageName] = av
	}
	return key, nil
}

// MarshalItem converts the full set of current values to wire format,
// keyed by storage name. Absent attributes are omitted entirely.
func (d *Definition) MarshalItem(values map[string]any) (datastore.Item, error) {
	item := make(datastore.Item, len(values))
	for _, attr := range d.attrs {
		av, err := codec.Encode(attr.Type, attr.Name, values[attr.Name])
		if err != nil {
			return nil, err
		}
		if av == nil {
			continue
		}
		item[attr.StorageName] = av
	}
	return item, nil
}

// UnmarshalItem converts a raw wire item back to native values keyed by
// attribute name. Wire attributes the definition does not declare are
// ignored, matching how the store's own unmarshaler treats unknown fields.
func (d *Definition) UnmarshalItem(item datastore.Item) (map[string]any, error) {
	values := make(map[string]any, len(item))
	for _, attr := range d.attrs {
		av, ok := item[attr.StorageName]
		if !ok {
			continue
		}
		v, err := codec.Decode(attr.Type, attr.Name, av)
		if err != nil {
			return nil, err
		}
		values[attr.Name] = v
	}
	return values, nil
}

// KeyString renders the key attributes of the provided values for display,
// e.g. "id=5, date=2015-12-15".
func (d *Definition) KeyString(values map[string]any) string {
	parts := make([]string, 0, 2)
	for _, name := range d.KeyNames() {
		parts = append(parts, fmt.Sprintf("%s=%v", name, values[name]))
	}
	return strings.Join(parts, ", ")
}
