/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package codec

import (
	"strconv"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"

	"github.com/suparena/recordstore/errors"
)

func init() {
	Register(Int, intCodec{})
	Register(String, stringCodec{})
	Register(Bool, boolCodec{})
	Register(Date, dateCodec{})
	Register(DateTime, dateTimeCodec{})
	Register(StringList, stringListCodec{})
	Register(Map, mapCodec{})
}

// intCodec maps integers to the numeric-string wire tag.
type intCodec struct{}

func (intCodec) Encode(attr string, v any) (types.AttributeValue, error) {
	var n int64
	switch tv := v.(type) {
	case int:
		n = int64(tv)
	case int32:
		n = int64(tv)
	case int64:
		n = tv
	default:
		return nil, errors.NewTypeMismatchError(attr, "integer", v)
	}
	return &types.AttributeValueMemberN{Value: strconv.FormatInt(n, 10)}, nil
}

func (intCodec) Decode(attr string, av types.AttributeValue) (any, error) {
	num, ok := av.(*types.AttributeValueMemberN)
	if !ok {
		return nil, errors.NewTypeMismatchError(attr, "integer", av)
	}
	n, err := strconv.ParseInt(num.Value, 10, 64)
	if err != nil {
		// Non-integer numeric strings are rejected, not truncated
		return nil, errors.NewTypeMismatchError(attr, "integer", num.Value)
	}
	return n, nil
}

// stringCodec maps strings to the string wire tag; identity mapping.
type stringCodec struct{}

func (stringCodec) Encode(attr string, v any) (types.AttributeValue, error) {
	s, ok := v.(string)
	if !ok {
		return nil, errors.NewTypeMismatchError(attr, "string", v)
	}
	return &types.AttributeValueMemberS{Value: s}, nil
}

func (stringCodec) Decode(attr string, av types.AttributeValue) (any, error) {
	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return nil, errors.NewTypeMismatchError(attr, "string", av)
	}
	return s.Value, nil
}

// boolCodec maps booleans to the boolean wire tag; identity mapping.
type boolCodec struct{}

func (boolCodec) Encode(attr string, v any) (types.AttributeValue, error) {
	b, ok := v.(bool)
	if !ok {
		return nil, errors.NewTypeMismatchError(attr, "boolean", v)
	}
	return &types.AttributeValueMemberBOOL{Value: b}, nil
}

func (boolCodec) Decode(attr string, av types.AttributeValue) (any, error) {
	b, ok := av.(*types.AttributeValueMemberBOOL)
	if !ok {
		return nil, errors.NewTypeMismatchError(attr, "boolean", av)
	}
	return b.Value, nil
}

// dateCodec maps calendar dates to a string wire tag in RFC3339 full-date
// form (YYYY-MM-DD). The native value is strfmt.Date; plain strings are
// accepted on encode after validation.
type dateCodec struct{}

// parseDate reads a calendar date in RFC3339 full-date form via the
// strfmt.Date text contract.
func parseDate(s string) (strfmt.Date, error) {
	var d strfmt.Date
	err := d.UnmarshalText([]byte(s))
	return d, err
}

func (dateCodec) Encode(attr string, v any) (types.AttributeValue, error) {
	switch tv := v.(type) {
	case strfmt.Date:
		return &types.AttributeValueMemberS{Value: tv.String()}, nil
	case string:
		d, err := parseDate(tv)
		if err != nil {
			return nil, errors.NewTypeMismatchError(attr, "date", v)
		}
		return &types.AttributeValueMemberS{Value: d.String()}, nil
	default:
		return nil, errors.NewTypeMismatchError(attr, "date", v)
	}
}

func (dateCodec) Decode(attr string, av types.AttributeValue) (any, error) {
	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return nil, errors.NewTypeMismatchError(attr, "date", av)
	}
	d, err := parseDate(s.Value)
	if err != nil {
		return nil, errors.NewTypeMismatchError(attr, "date", s.Value)
	}
	return d, nil
}

// dateTimeCodec maps timestamps to a string wire tag in RFC3339 form.
// The native value is strfmt.DateTime; plain strings are accepted on encode.
type dateTimeCodec struct{}

func (dateTimeCodec) Encode(attr string, v any) (types.AttributeValue, error) {
	switch tv := v.(type) {
	case strfmt.DateTime:
		return &types.AttributeValueMemberS{Value: tv.String()}, nil
	case string:
		dt, err := strfmt.ParseDateTime(tv)
		if err != nil {
			return nil, errors.NewTypeMismatchError(attr, "datetime", v)
		}
		return &types.AttributeValueMemberS{Value: dt.String()}, nil
	default:
		return nil, errors.NewTypeMismatchError(attr, "datetime", v)
	}
}

func (dateTimeCodec) Decode(attr string, av types.AttributeValue) (any, error) {
	s, ok := av.(*types.AttributeValueMemberS)
	if !ok {
		return nil, errors.NewTypeMismatchError(attr, "datetime", av)
	}
	dt, err := strfmt.ParseDateTime(s.Value)
	if err != nil {
		return nil, errors.NewTypeMismatchError(attr, "datetime", s.Value)
	}
	return dt, nil
}

// stringListCodec maps []string to a list wire tag of string members.
type stringListCodec struct{}

func (stringListCodec) Encode(attr string, v any) (types.AttributeValue, error) {
	list, ok := v.([]string)
	if !ok {
		return nil, errors.NewTypeMismatchError(attr, "string list", v)
	}
	members := make([]types.AttributeValue, 0, len(list))
	for _, s := range list {
		members = append(members, &types.AttributeValueMemberS{Value: s})
	}
	return &types.AttributeValueMemberL{Value: members}, nil
}

func (stringListCodec) Decode(attr string, av types.AttributeValue) (any, error) {
	l, ok := av.(*types.AttributeValueMemberL)
	if !ok {
		return nil, errors.NewTypeMismatchError(attr, "string list", av)
	}
	list := make([]string, 0, len(l.Value))
	for _, member := range l.Value {
		s, ok := member.(*types.AttributeValueMemberS)
		if !ok {
			return nil, errors.NewTypeMismatchError(attr, "string list", member)
		}
		list = append(list, s.Value)
	}
	return list, nil
}

// mapCodec maps map[string]any to a map wire tag, delegating the nested
// values to the SDK attributevalue marshaler.
type mapCodec struct{}

func (mapCodec) Encode(attr string, v any) (types.AttributeValue, error) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, errors.NewTypeMismatchError(attr, "map", v)
	}
	inner, err := attributevalue.MarshalMap(m)
	if err != nil {
		return nil, errors.NewTypeMismatchError(attr, "map", v)
	}
	return &types.AttributeValueMemberM{Value: inner}, nil
}

func (mapCodec) Decode(attr string, av types.AttributeValue) (any, error) {
	m, ok := av.(*types.AttributeValueMemberM)
	if !ok {
		return nil, errors.NewTypeMismatchError(attr, "map", av)
	}
	out := make(map[string]any, len(m.Value))
	if err := attributevalue.UnmarshalMap(m.Value, &out); err != nil {
		return nil, errors.NewTypeMismatchError(attr, "map", av)
	}
	return out, nil
}
