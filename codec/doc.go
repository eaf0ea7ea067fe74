/*
Package codec implements the attribute type registry for RecordStore.

Each semantic attribute type (integer, string, boolean, date, datetime, and
the composite list/map variants) has a Codec that converts between native Go
values and DynamoDB's tagged attribute values:

	Int        <-> types.AttributeValueMemberN (decimal string)
	String     <-> types.AttributeValueMemberS
	Bool       <-> types.AttributeValueMemberBOOL
	Date       <-> types.AttributeValueMemberS ("2006-01-02")
	DateTime   <-> types.AttributeValueMemberS (RFC 3339)
	StringList <-> types.AttributeValueMemberL of S members
	Map        <-> types.AttributeValueMemberM

Codecs are looked up through a process-wide registry:

	av, err := codec.Encode(codec.Int, "id", 42)
	// av is &types.AttributeValueMemberN{Value: "42"}

	v, err := codec.Decode(codec.Date, "date", av)
	// v is a strfmt.Date

Conversions are strict in both directions: a value outside the type's valid
domain produces a TypeMismatchError and is never coerced. Absent native
values (nil, nil pointers, nil slices/maps) encode to nothing at all — the
attribute is omitted from the wire item rather than written as a NULL tag.

Custom codecs can be installed with Register during initialization. Register
panics on duplicate registration; the built-in types are registered by this
package's init.
*/
package codec
