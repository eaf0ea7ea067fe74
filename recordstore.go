/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package recordstore

import (
	"fmt"
	"sync"

	"github.com/suparena/recordstore/datastore"
	"github.com/suparena/recordstore/record"
	"github.com/suparena/recordstore/schema"
)

// RecordStore binds record definitions to one datastore client. It is the
// application-level entry point: register each table's definition once at
// startup, then open per-table stores wherever records are persisted.
//
// All methods are safe for concurrent use.
type RecordStore struct {
	mu     sync.RWMutex
	client datastore.Client
	defs   map[string]*schema.Definition
}

// New creates a RecordStore over the given datastore client.
func New(client datastore.Client) *RecordStore {
	return &RecordStore{
		client: client,
		defs:   make(map[string]*schema.Definition),
	}
}

// Register adds a finalized definition, keyed by its table name.
func (rs *RecordStore) Register(def *schema.Definition) error {
	rs.mu.Lock()
	defer rs.mu.Unlock()

	table := def.TableName()
	if _, exists := rs.defs[table]; exists {
		return fmt.Errorf("definition for table %q already registered", table)
	}
	rs.defs[table] = def
	return nil
}

// Definition retrieves the registered definition for a table.
func (rs *RecordStore) Definition(table string) (*schema.Definition, error) {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	def, exists := rs.defs[table]
	if !exists {
		return nil, fmt.Errorf("definition for table %q not found", table)
	}
	return def, nil
}

// Open returns a record store for the named table, bound to this store's
// client.
func (rs *RecordStore) Open(table string) (*record.Store, error) {
	def, err := rs.Definition(table)
	if err != nil {
		return nil, err
	}
	return record.NewStore(rs.client, def), nil
}

// Tables returns the names of all registered tables.
func (rs *RecordStore) Tables() []string {
	rs.mu.RLock()
	defer rs.mu.RUnlock()

	tables := make([]string, 0, len(rs.defs))
	for table := range rs.defs {
		tables = append(tables, table)
	}
	return tables
}
