/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package mock provides an in-memory recording implementation of the
// datastore.Client interface for testing
package mock

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/recordstore/datastore"
)

// Call records one operation dispatched to the mock client. Tests assert on
// the call log to verify both what was sent and — for validation failures —
// that nothing was sent at all.
type Call struct {
	// Op is the operation name: PutItem, GetItem, DeleteItem, or Page.
	Op string
	// Table is the table the operation addressed.
	Table string
	// Input is the item (PutItem) or key (GetItem, DeleteItem) sent.
	Input datastore.Item
}

// Client is an in-memory recording implementation of datastore.Client.
type Client struct {
	mu        sync.RWMutex
	keyNames  map[string][]string
	tables    map[string]*table
	calls     []Call
	putErr    error
	getErr    error
	deleteErr error
	pageErr   error
}

type table struct {
	order []string
	items map[string]datastore.Item
}

// New creates a new mock Client.
func New() *Client {
	return &Client{
		keyNames: make(map[string][]string),
		tables:   make(map[string]*table),
	}
}

// WithKeyNames tells the mock which storage names form the table's key, so
// PutItem can index stored items and GetItem can find them again.
func (c *Client) WithKeyNames(tableName string, names ...string) *Client {
	c.keyNames[tableName] = names
	return c
}

// WithPutError makes PutItem return an error
func (c *Client) WithPutError(err error) *Client {
	c.putErr = err
	return c
}

// WithGetError makes GetItem return an error
func (c *Client) WithGetError(err error) *Client {
	c.getErr = err
	return c
}

// WithDeleteError makes DeleteItem return an error
func (c *Client) WithDeleteError(err error) *Client {
	c.deleteErr = err
	return c
}

// WithPageError makes Page return an error
func (c *Client) WithPageError(err error) *Client {
	c.pageErr = err
	return c
}

// Seed stores an item directly, without recording a call.
func (c *Client) Seed(tableName string, item datastore.Item) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.store(tableName, item)
}

// Calls returns a copy of the recorded call log in dispatch order.
func (c *Client) Calls() []Call {
	c.mu.RLock()
	defer c.mu.RUnlock()

	calls := make([]Call, len(c.calls))
	copy(calls, c.calls)
	return calls
}

// CallCount returns how many calls of any kind the client has received.
func (c *Client) CallCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.calls)
}

// PutItem stores a full item and records the call.
func (c *Client) PutItem(ctx context.Context, tableName string, item datastore.Item) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, Call{Op: "PutItem", Table: tableName, Input: item})
	if c.putErr != nil {
		return c.putErr
	}

	c.store(tableName, item)
	return nil
}

// GetItem looks up an item by key and records the call. A missing item is
// (nil, nil), matching the contract of datastore.Client.
func (c *Client) GetItem(ctx context.Context, tableName string, key datastore.Item) (datastore.Item, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, Call{Op: "GetItem", Table: tableName, Input: key})
	if c.getErr != nil {
		return nil, c.getErr
	}

	tbl, ok := c.tables[tableName]
	if !ok {
		return nil, nil
	}
	item, ok := tbl.items[renderKey(key)]
	if !ok {
		return nil, nil
	}
	return item, nil
}

// DeleteItem removes an item by key and records the call.
func (c *Client) DeleteItem(ctx context.Context, tableName string, key datastore.Item) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, Call{Op: "DeleteItem", Table: tableName, Input: key})
	if c.deleteErr != nil {
		return c.deleteErr
	}

	tbl, ok := c.tables[tableName]
	if !ok {
		return nil
	}
	ck := renderKey(key)
	if _, ok := tbl.items[ck]; ok {
		delete(tbl.items, ck)
		for i, existing := range tbl.order {
			if existing == ck {
				tbl.order = append(tbl.order[:i], tbl.order[i+1:]...)
				break
			}
		}
	}
	return nil
}

// Page returns all stored items of the table as a single page, in insertion
// order, and records the call. The request's key condition is not evaluated;
// tests that need selective pages should seed selectively.
func (c *Client) Page(ctx context.Context, tableName string, req *datastore.PageRequest) (*datastore.PageResult, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.calls = append(c.calls, Call{Op: "Page", Table: tableName, Input: nil})
	if c.pageErr != nil {
		return nil, c.pageErr
	}

	result := &datastore.PageResult{}
	tbl, ok := c.tables[tableName]
	if !ok {
		return result, nil
	}
	for _, ck := range tbl.order {
		result.Items = append(result.Items, tbl.items[ck])
	}
	return result, nil
}

// store indexes an item by its key attributes. Caller holds the lock.
func (c *Client) store(tableName string, item datastore.Item) {
	tbl, ok := c.tables[tableName]
	if !ok {
		tbl = &table{items: make(map[string]datastore.Item)}
		c.tables[tableName] = tbl
	}

	key := item
	if names, ok := c.keyNames[tableName]; ok {
		key = make(datastore.Item, len(names))
		for _, name := range names {
			if av, ok := item[name]; ok {
				key[name] = av
			}
		}
	}

	ck := renderKey(key)
	if _, exists := tbl.items[ck]; !exists {
		tbl.order = append(tbl.order, ck)
	}
	tbl.items[ck] = item
}

// renderKey produces a canonical string for a key map so items can be
// indexed and looked up regardless of attribute ordering.
func renderKey(key datastore.Item) string {
	parts := make([]string, 0, len(key))
	for name, av := range key {
		parts = append(parts, fmt.Sprintf("%s=%s", name, renderValue(av)))
	}
	sort.Strings(parts)
	return strings.Join(parts, "|")
}

func renderValue(av types.AttributeValue) string {
	switch tv := av.(type) {
	case *types.AttributeValueMemberS:
		return "S:" + tv.Value
	case *types.AttributeValueMemberN:
		return "N:" + tv.Value
	case *types.AttributeValueMemberBOOL:
		return fmt.Sprintf("BOOL:%v", tv.Value)
	default:
		return fmt.Sprintf("%v", av)
	}
}
