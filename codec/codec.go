/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codec

import (
	"fmt"
	"reflect"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// Type identifies the semantic type of a declared attribute.
type Type string

// Supported semantic types.
const (
	Int        Type = "integer"
	String     Type = "string"
	Bool       Type = "boolean"
	Date       Type = "date"
	DateTime   Type = "datetime"
	StringList Type = "string_list"
	Map        Type = "map"
)

// Codec converts between native values and the store's tagged attribute values.
// Both directions are total over the type's valid domain and return a
// TypeMismatchError outside it. Values are never silently coerced.
type Codec interface {
	// Encode converts a native value to a tagged attribute value.
	Encode(attr string, v any) (types.AttributeValue, error)
	// Decode converts a tagged attribute value back to its native form.
	Decode(attr string, av types.AttributeValue) (any, error)
}

// codecRegistry holds the mapping from a semantic type to its codec.
var codecRegistry = make(map[Type]Codec)

// Register registers a codec for a semantic type.
// If a codec is already registered for the type, it panics to prevent accidental overrides.
func Register(t Type, c Codec) {
	if _, exists := codecRegistry[t]; exists {
		panic(fmt.Sprintf("codec registry: codec for type %q already registered", t))
	}
	codecRegistry[t] = c
}

// Lookup returns the registered codec for the given semantic type.
// If no codec is registered, it returns an error.
func Lookup(t Type) (Codec, error) {
	c, ok := codecRegistry[t]
	if !ok {
		return nil, fmt.Errorf("codec registry: no codec registered for type %q", t)
	}
	return c, nil
}

// Encode converts a native value to its tagged wire form. An absent native
// value (nil, or a nil pointer/slice/map) yields a nil attribute value with no
// error; the attribute must then be omitted from the wire item entirely. The
// store distinguishes "no attribute" from "empty attribute", and explicit NULL
// tags are never produced.
func Encode(t Type, attr string, v any) (types.AttributeValue, error) {
	if IsAbsent(v) {
		return nil, nil
	}
	c, err := Lookup(t)
	if err != nil {
		return nil, err
	}
	return c.Encode(attr, indirect(v))
}

// Decode converts a tagged wire value back to its native form. Absent entries
// never reach Decode; the store omits them from returned items.
func Decode(t Type, attr string, av types.AttributeValue) (any, error) {
	c, err := Lookup(t)
	if err != nil {
		return nil, err
	}
	return c.Decode(attr, av)
}

// IsAbsent reports whether a native value counts as "not set". The key
// resolver uses the same notion of absence as Encode.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// indirect unwraps a non-nil pointer so codecs only see plain values.
func indirect(v any) any {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		return rv.Elem().Interface()
	}
	return v
}
