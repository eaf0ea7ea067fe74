/*
Package schema declares record definitions: the typed attributes of a storage
table, their key roles, and the conversion of whole items to and from wire
format.

A definition is built once, at record-type declaration time, and is immutable
afterward:

	builder := schema.NewBuilder("Posts")
	builder.Attribute("id", codec.Int, schema.HashKey())
	builder.Attribute("date", codec.Date, schema.RangeKey())
	builder.Attribute("body", codec.String)
	builder.Attribute("flag", codec.Bool, schema.WithStorageName("my_boolean"))
	def, err := builder.Finalize()

Declarations enforce uniqueness of names and storage names, a single hash
key, and at most one range key. Finalize is idempotent and the resulting
Definition is safe for concurrent reads.

The definition is also the key resolver. ResolveKey validates that every
required key attribute is present and non-nil before anything is encoded,
failing with a KeyMissingError that names the missing attributes in
declaration order:

	key, err := def.ResolveKey(map[string]any{"id": 5})
	// err: missing keys: date

Definitions can also be loaded from YAML schema documents with ParseYAML or
LoadYAMLFile; see cmd/schemadump for the document shape.
*/
package schema
