/*
Package recordstore provides a record-mapping persistence layer for Go
applications over DynamoDB-shaped stores, with declared attribute schemas,
per-attribute dirty tracking, and key-validated save/find/delete operations.

The library follows a declare -> bind -> operate workflow:
  - Declare: build a record definition per table (in code or from YAML),
    naming each attribute's semantic type, storage name, and key role
  - Bind: register definitions in a RecordStore over one datastore client
  - Operate: open per-table stores and work with live, dirty-tracked records

Key Features:
  - Semantic attribute types with symmetric wire codecs (integer, string,
    boolean, date, datetime, string lists, maps)
  - Hash/range key declarations with local validation; a request with
    missing key attributes never reaches the store
  - Snapshot-based dirty tracking with explicit MarkDirty for in-place
    mutations, plus attribute-level rollback
  - Semantic error types for better error handling
  - Thread-safe definition management
  - A recording mock client for testing

Basic Usage:

	// Declare a definition
	b := schema.NewBuilder("Posts")
	b.Attribute("id", codec.Int, schema.HashKey())
	b.Attribute("date", codec.Date, schema.RangeKey())
	b.Attribute("body", codec.String)
	def, _ := b.Finalize()

	// Bind it to a client
	rs := recordstore.New(client)
	rs.Register(def)

	// Operate on records
	posts, _ := rs.Open("Posts")
	rec, _ := posts.New(map[string]any{"id": 1, "date": "2015-12-14", "body": "Hello!"})
	err := posts.Save(ctx, rec)

For more information, see the documentation at https://github.com/suparena/recordstore
*/
package recordstore
