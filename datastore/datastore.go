/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Item is the store's native representation of a record: storage names mapped
// to tagged attribute values. Absent attributes are not present in the map;
// explicit NULL tags never appear.
type Item = map[string]types.AttributeValue

// Client is the boundary to the underlying store. Implementations execute the
// raw calls and return raw tagged responses; all key and type validation
// happens above this interface, so a Client never sees a partially-built
// request. Client errors propagate to callers unchanged — no retry, wrapping,
// or backoff is applied at this layer.
type Client interface {
	// PutItem writes a full item to the named table.
	PutItem(ctx context.Context, table string, item Item) error

	// GetItem fetches the item with the given key. A missing item is
	// (nil, nil), not an error.
	GetItem(ctx context.Context, table string, key Item) (Item, error)

	// DeleteItem removes the item with the given key.
	DeleteItem(ctx context.Context, table string, key Item) error

	// Page executes one page of a query and returns the raw items plus the
	// continuation key, if any.
	Page(ctx context.Context, table string, req *PageRequest) (*PageResult, error)
}

// PageRequest describes one page of a query against a table or index.
type PageRequest struct {
	// KeyConditionExpression is the primary condition for the query.
	KeyConditionExpression string
	// ExpressionAttributeValues contains the values for expression placeholders.
	ExpressionAttributeValues map[string]types.AttributeValue
	// FilterExpression is an optional filter expression.
	FilterExpression *string
	// IndexName is optional if you wish to query a secondary index.
	IndexName *string
	// Limit defines an optional limit for the page.
	Limit *int32
	// StartKey continues a previous page; nil starts from the beginning.
	StartKey Item
	// ScanIndexForward specifies the order for index traversal.
	// If true (default), traversal is in ascending order.
	ScanIndexForward *bool
}

// PageResult holds one page of raw items. A nil LastKey means the result set
// is exhausted; otherwise pass it as the next request's StartKey.
type PageResult struct {
	Items   []Item
	LastKey Item
}
