/*
Package datastore defines the client boundary for RecordStore's persistence layer.

The main interface is Client, which exposes the raw store operations the
mapping layer needs:

	type Client interface {
	    PutItem(ctx context.Context, table string, item Item) error
	    GetItem(ctx context.Context, table string, key Item) (Item, error)
	    DeleteItem(ctx context.Context, table string, key Item) error
	    Page(ctx context.Context, table string, req *PageRequest) (*PageResult, error)
	}

Implementations:
  - ddb: DynamoDB implementation built on aws-sdk-go-v2
  - mock: in-memory recording implementation for testing

Items are maps from storage names to DynamoDB tagged attribute values.
Validation (key presence, type conversion) is the caller's responsibility;
a Client only ever receives fully-built requests, and its errors are
propagated unchanged.
*/
package datastore
