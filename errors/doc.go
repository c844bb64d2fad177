/*
Package errors provides semantic error types for the RelStore library.

The package defines common error scenarios with specific types that can be
checked using the standard errors.Is() function or the provided helper functions.

Common Errors:

	var (
	    ErrNotFound      = errors.New("item not found")
	    ErrAlreadyExists = errors.New("item already exists")
	    ErrInvalidInput  = errors.New("invalid input")
	    ErrNoTableName   = errors.New("no table name registered for type")
	    ErrDecode        = errors.New("stored item not decodable")
	)

Usage:

	// Create typed errors
	err := errors.NewValidationError("age", "expected int64")
	err := errors.NewDecodeError("u1", parseErr)

	// Check error type
	if errors.IsValidationError(err) {
	    // reject the query
	}

Note that point lookups for an absent key are not an error at all: the store
returns a nil item. The sentinels above exist for callers layering their own
semantics (for example wrapping a duplicate-key execution failure into
ErrAlreadyExists at an application boundary).

The error types implement the error interface and support wrapping,
making them compatible with Go's standard error handling patterns.
*/
package errors
