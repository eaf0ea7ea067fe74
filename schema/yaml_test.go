/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package schema

import (
	"testing"

	"github.com/suparena/recordstore/errors"
)

const sampleSchema = `
tables:
  - table: Posts
    attributes:
      - name: id
        type: integer
        key: hash
      - name: date
        type: date
        key: range
      - name: body
        type: string
        storage: body_text
      - name: published
        type: boolean
  - table: Sessions
    attributes:
      - name: token
        type: string
        key: hash
        default: uuid
      - name: status
        type: string
        default: active
`

func TestParseYAML(t *testing.T) {
	defs, err := ParseYAML([]byte(sampleSchema))
	if err != nil {
		t.Fatalf("ParseYAML failed: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("Expected 2 definitions, got %d", len(defs))
	}

	posts := defs[0]
	if posts.TableName() != "Posts" {
		t.Errorf("Expected table \"Posts\", got %q", posts.TableName())
	}
	if posts.HashKeyName() != "id" || posts.RangeKeyName() != "date" {
		t.Errorf("Expected keys id/date, got %q/%q", posts.HashKeyName(), posts.RangeKeyName())
	}
	body, ok := posts.Attribute("body")
	if !ok {
		t.Fatal("Expected body attribute")
	}
	if body.StorageName != "body_text" {
		t.Errorf("Expected storage name \"body_text\", got %q", body.StorageName)
	}

	sessions := defs[1]
	token, _ := sessions.Attribute("token")
	if token.Default == nil {
		t.Fatal("Expected uuid default on token")
	}
	if token.Default() == token.Default() {
		t.Error("Expected uuid default to produce distinct values")
	}
	status, _ := sessions.Attribute("status")
	if status.Default == nil || status.Default() != "active" {
		t.Error("Expected static default \"active\" on status")
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"not yaml", ":\n-"},
		{"no tables", "tables: []"},
		{"unnamed table", "tables:\n  - attributes:\n      - name: id\n        type: string\n        key: hash"},
		{"unknown key role", "tables:\n  - table: T\n    attributes:\n      - name: id\n        type: string\n        key: primary"},
		{"unknown type", "tables:\n  - table: T\n    attributes:\n      - name: id\n        type: geopoint\n        key: hash"},
		{"no hash key", "tables:\n  - table: T\n    attributes:\n      - name: id\n        type: string"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseYAML([]byte(tt.doc)); err == nil {
				t.Error("Expected error")
			}
		})
	}
}

func TestParseYAMLDuplicateAttribute(t *testing.T) {
	doc := `
tables:
  - table: T
    attributes:
      - name: id
        type: string
        key: hash
      - name: id
        type: string
`
	_, err := ParseYAML([]byte(doc))
	if !errors.IsDuplicateAttribute(err) {
		t.Errorf("Expected duplicate attribute error, got %v", err)
	}
}
