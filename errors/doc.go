/*
Package errors provides semantic error types for the RecordStore library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrKeyMissing         = errors.New("missing key attributes")
	    ErrTypeMismatch       = errors.New("attribute type mismatch")
	    ErrDuplicateAttribute = errors.New("duplicate attribute")
	    ErrDuplicateKeyRole   = errors.New("duplicate key role")
	    ErrMissingHashKey     = errors.New("no hash key declared")
	    ErrUnknownAttribute   = errors.New("unknown attribute")
	    ErrNotFound           = errors.New("record not found")
	)

Usage:

	// Check error type
	err := posts.Save(ctx, rec)
	if err != nil {
	    if errors.IsKeyMissing(err) {
	        // Key attributes were absent; nothing was sent to the store
	        return fmt.Errorf("post is missing its key: %w", err)
	    }
	    return err
	}

	// Create typed errors
	err := errors.NewKeyMissingError([]string{"id", "date"})
	err := errors.NewTypeMismatchError("count", "integer", "abc")
	err := errors.NewNotFoundError("Posts", "id=7")

Key and type validation errors are always raised locally, before any network
call. Errors returned by the underlying store client are propagated unchanged
and carry no type from this package.

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
