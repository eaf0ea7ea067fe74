/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package recordstore

import (
	"context"
	"testing"

	"github.com/suparena/recordstore/codec"
	"github.com/suparena/recordstore/datastore/mock"
	"github.com/suparena/recordstore/schema"
)

func postsDefinition(t *testing.T) *schema.Definition {
	t.Helper()

	builder := schema.NewBuilder("Posts")
	if err := builder.Attribute("id", codec.Int, schema.HashKey()); err != nil {
		t.Fatalf("declare id: %v", err)
	}
	if err := builder.Attribute("body", codec.String); err != nil {
		t.Fatalf("declare body: %v", err)
	}
	def, err := builder.Finalize()
	if err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	return def
}

func TestRegisterAndOpen(t *testing.T) {
	rs := New(mock.New().WithKeyNames("Posts", "id"))

	def := postsDefinition(t)
	if err := rs.Register(def); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	got, err := rs.Definition("Posts")
	if err != nil {
		t.Fatalf("Definition failed: %v", err)
	}
	if got != def {
		t.Error("Expected the registered definition back")
	}

	posts, err := rs.Open("Posts")
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	rec, err := posts.New(map[string]any{"id": 1, "body": "Hello!"})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := posts.Save(context.Background(), rec); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	found, err := posts.Find(context.Background(), map[string]any{"id": 1})
	if err != nil {
		t.Fatalf("Find failed: %v", err)
	}
	if found == nil {
		t.Fatal("Expected the saved record to be found")
	}
}

func TestRegisterDuplicateTable(t *testing.T) {
	rs := New(mock.New())

	if err := rs.Register(postsDefinition(t)); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	err := rs.Register(postsDefinition(t))
	if err == nil {
		t.Fatal("Expected error registering duplicate table")
	}
	expected := `definition for table "Posts" already registered`
	if err.Error() != expected {
		t.Errorf("Expected message %q, got %q", expected, err.Error())
	}
}

func TestUnknownTable(t *testing.T) {
	rs := New(mock.New())

	if _, err := rs.Definition("Nope"); err == nil {
		t.Error("Expected error for unknown table")
	}
	if _, err := rs.Open("Nope"); err == nil {
		t.Error("Expected error for unknown table")
	}
}

func TestTables(t *testing.T) {
	rs := New(mock.New())
	if err := rs.Register(postsDefinition(t)); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	tables := rs.Tables()
	if len(tables) != 1 || tables[0] != "Posts" {
		t.Errorf("Expected [Posts], got %v", tables)
	}
}
