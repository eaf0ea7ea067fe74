/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package record

import (
	"context"

	"github.com/suparena/recordstore/datastore"
	"github.com/suparena/recordstore/errors"
	"github.com/suparena/recordstore/schema"
)

// Store executes persistence operations for one record definition against a
// datastore client. Every operation validates keys locally before anything
// is sent: a request with missing key attributes never reaches the client.
// Errors from the client itself propagate unchanged — this layer adds
// validation, not resilience.
type Store struct {
	client datastore.Client
	def    *schema.Definition
}

// NewStore binds a definition to a datastore client.
func NewStore(client datastore.Client, def *schema.Definition) *Store {
	return &Store{client: client, def: def}
}

// Definition returns the definition this store persists.
func (s *Store) Definition() *schema.Definition {
	return s.def
}

// New constructs a new, unsaved record for this store's definition.
func (s *Store) New(initial map[string]any) (*Record, error) {
	return New(s.def, initial)
}

// Save writes the record's full current state to the store (dirty or not —
// put semantics replace the whole item) and, once the store acknowledges,
// marks the record clean. Key resolution runs first: a KeyMissingError
// aborts before any value is marshaled.
func (s *Store) Save(ctx context.Context, rec *Record) error {
	if _, err := s.def.ResolveKey(rec.values); err != nil {
		return err
	}

	item, err := s.def.MarshalItem(rec.values)
	if err != nil {
		return err
	}

	if err := s.client.PutItem(ctx, s.def.TableName(), item); err != nil {
		return err
	}

	rec.MarkClean()
	return nil
}

// Find fetches the record identified by the key attributes in criteria.
// A missing item is (nil, nil), a normal outcome rather than an error.
// A found record is unmarshaled into a fresh instance and marked clean.
func (s *Store) Find(ctx context.Context, criteria map[string]any) (*Record, error) {
	key, err := s.def.ResolveKey(criteria)
	if err != nil {
		return nil, err
	}

	raw, err := s.client.GetItem(ctx, s.def.TableName(), key)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}

	values, err := s.def.UnmarshalItem(raw)
	if err != nil {
		return nil, err
	}

	rec := loaded(s.def, values)
	rec.MarkClean()
	return rec, nil
}

// Delete removes the record's backing item, identified by its current key
// values. The record's tracking state is left untouched: the instance is
// logically stale after a successful delete, and its lifetime is the
// caller's concern.
func (s *Store) Delete(ctx context.Context, rec *Record) error {
	key, err := s.def.ResolveKey(rec.values)
	if err != nil {
		return err
	}
	return s.client.DeleteItem(ctx, s.def.TableName(), key)
}

// Reload re-fetches the record using its current key values, replaces its
// values with the stored ones, and marks it clean. Unlike Find, a missing
// backing item is an error here: the caller asserted the record exists.
func (s *Store) Reload(ctx context.Context, rec *Record) error {
	found, err := s.Find(ctx, rec.values)
	if err != nil {
		return err
	}
	if found == nil {
		return errors.NewNotFoundError(s.def.TableName(), s.def.KeyString(rec.values))
	}

	rec.values = found.values
	rec.MarkClean()
	return nil
}
