package library

import (
	"errors"
	"fmt"
)

// Errors returned by Library operations. Callers branch with
// errors.Is; operations wrap these with %w to carry the offending
// key. Every error is immediate and non-retryable: it reports caller
// misuse or a business rule violation, never a transient failure.
var (
	// ErrInvalidArgument is returned when a caller supplies a
	// structurally invalid key (empty ISBN or user ID).
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrAlreadyExists is returned on an identity collision at insert.
	ErrAlreadyExists = errors.New("already exists")

	// ErrNotFound is returned when a referenced ISBN or user ID has no
	// record. The entity-specific variants below tell the two apart.
	ErrNotFound = errors.New("not found")

	// ErrConflict is returned when a removal is blocked by dependent
	// state: a checked-out book, or a patron with outstanding loans.
	ErrConflict = errors.New("conflict with current state")

	// ErrUnavailable is returned when a book exists but is currently
	// checked out.
	ErrUnavailable = errors.New("book is not available")

	// ErrNotOwned is returned when a return is attempted by a patron
	// who does not hold that loan.
	ErrNotOwned = errors.New("book not borrowed by this user")

	// Entity-specific "not found" errors.

	// ErrBookNotFound indicates the requested ISBN has no record.
	ErrBookNotFound = fmt.Errorf("%w: book", ErrNotFound)

	// ErrUserNotFound indicates the requested user ID has no record.
	ErrUserNotFound = fmt.Errorf("%w: user", ErrNotFound)
)

// IsNotFound checks if the error is any kind of "not found" error,
// including the entity-specific variants.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if the error reports a removal blocked by
// dependent state.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}
