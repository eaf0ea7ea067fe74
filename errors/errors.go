/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Common sentinel errors
var (
	// ErrKeyMissing is returned when a persistence operation is attempted
	// without all required key attributes present
	ErrKeyMissing = errors.New("missing key attributes")

	// ErrTypeMismatch is returned when a value cannot be converted to or
	// from its declared attribute type
	ErrTypeMismatch = errors.New("attribute type mismatch")

	// ErrDuplicateAttribute is returned when a schema declares two attributes
	// with the same name or storage name
	ErrDuplicateAttribute = errors.New("duplicate attribute")

	// ErrDuplicateKeyRole is returned when a schema declares more than one
	// hash key or more than one range key
	ErrDuplicateKeyRole = errors.New("duplicate key role")

	// ErrMissingHashKey is returned when a schema is finalized without a hash key
	ErrMissingHashKey = errors.New("no hash key declared")

	// ErrUnknownAttribute is returned when an operation references an
	// attribute the schema does not declare
	ErrUnknownAttribute = errors.New("unknown attribute")

	// ErrNotFound is returned when a record that is expected to exist
	// is no longer present in the store
	ErrNotFound = errors.New("record not found")
)

// KeyMissingError reports the key attributes absent from a persistence request.
// Missing names are kept in declaration order, hash key before range key.
type KeyMissingError struct {
	Missing []string
}

func (e *KeyMissingError) Error() string {
	return fmt.Sprintf("missing keys: %s", strings.Join(e.Missing, ", "))
}

func (e *KeyMissingError) Is(target error) bool {
	return target == ErrKeyMissing
}

// TypeMismatchError reports a value outside the valid domain of its attribute type.
type TypeMismatchError struct {
	Attribute string
	Expected  string
	Value     any
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("attribute %q: expected %s, got %v (%T)", e.Attribute, e.Expected, e.Value, e.Value)
}

func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// DuplicateAttributeError reports a name or storage name collision at schema build time.
type DuplicateAttributeError struct {
	Name string
}

func (e *DuplicateAttributeError) Error() string {
	return fmt.Sprintf("attribute %q already declared", e.Name)
}

func (e *DuplicateAttributeError) Is(target error) bool {
	return target == ErrDuplicateAttribute
}

// DuplicateKeyRoleError reports a second hash or range key declaration.
type DuplicateKeyRoleError struct {
	Role string
}

func (e *DuplicateKeyRoleError) Error() string {
	return fmt.Sprintf("%s key already declared", e.Role)
}

func (e *DuplicateKeyRoleError) Is(target error) bool {
	return target == ErrDuplicateKeyRole
}

// UnknownAttributeError reports an operation on an undeclared attribute.
type UnknownAttributeError struct {
	Name string
}

func (e *UnknownAttributeError) Error() string {
	return fmt.Sprintf("attribute %q is not declared", e.Name)
}

func (e *UnknownAttributeError) Is(target error) bool {
	return target == ErrUnknownAttribute
}

// NotFoundError reports a record missing from the backing store.
type NotFoundError struct {
	Table string
	Key   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("record with key %q not found in table %q", e.Key, e.Table)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Helper functions for creating errors

// NewKeyMissingError creates a new KeyMissingError
func NewKeyMissingError(missing []string) error {
	return &KeyMissingError{Missing: missing}
}

// NewTypeMismatchError creates a new TypeMismatchError
func NewTypeMismatchError(attribute, expected string, value any) error {
	return &TypeMismatchError{Attribute: attribute, Expected: expected, Value: value}
}

// NewDuplicateAttributeError creates a new DuplicateAttributeError
func NewDuplicateAttributeError(name string) error {
	return &DuplicateAttributeError{Name: name}
}

// NewDuplicateKeyRoleError creates a new DuplicateKeyRoleError
func NewDuplicateKeyRoleError(role string) error {
	return &DuplicateKeyRoleError{Role: role}
}

// NewUnknownAttributeError creates a new UnknownAttributeError
func NewUnknownAttributeError(name string) error {
	return &UnknownAttributeError{Name: name}
}

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(table, key string) error {
	return &NotFoundError{Table: table, Key: key}
}

// IsKeyMissing checks if an error is a key missing error
func IsKeyMissing(err error) bool {
	return errors.Is(err, ErrKeyMissing)
}

// IsTypeMismatch checks if an error is a type mismatch error
func IsTypeMismatch(err error) bool {
	return errors.Is(err, ErrTypeMismatch)
}

// IsDuplicateAttribute checks if an error is a duplicate attribute error
func IsDuplicateAttribute(err error) bool {
	return errors.Is(err, ErrDuplicateAttribute)
}

// IsDuplicateKeyRole checks if an error is a duplicate key role error
func IsDuplicateKeyRole(err error) bool {
	return errors.Is(err, ErrDuplicateKeyRole)
}

// IsUnknownAttribute checks if an error is an unknown attribute error
func IsUnknownAttribute(err error) bool {
	return errors.Is(err, ErrUnknownAttribute)
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
