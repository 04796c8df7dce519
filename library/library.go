// Package library implements an in-memory catalog of books and
// patrons with borrow/return bookkeeping.
package library

import (
	"fmt"
	"strings"
	"sync"

	"github.com/jinzhu/copier"
)

// Library is the aggregate owning every book and patron record. All
// mutation goes through its methods; callers only ever receive deep
// copies, so returned records can be modified freely without touching
// catalog state.
//
// One coarse lock guards each operation. Operations are map lookups
// and short linear scans, so finer-grained locking buys nothing.
type Library struct {
	mu    sync.RWMutex
	books map[string]*Book
	users map[string]*User
}

// New creates an empty library.
func New() *Library {
	return &Library{
		books: make(map[string]*Book),
		users: make(map[string]*User),
	}
}

// ------------------ Book management ------------------

// AddBook inserts a new book keyed by its ISBN. The stored record is
// a copy of b.
func (l *Library) AddBook(b *Book) error {
	if b == nil || b.ISBN == "" {
		return fmt.Errorf("%w: isbn cannot be empty", ErrInvalidArgument)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.books[b.ISBN]; ok {
		return fmt.Errorf("%w: book %q", ErrAlreadyExists, b.ISBN)
	}
	cp := *b
	l.books[cp.ISBN] = &cp
	return nil
}

// RemoveBook deletes the book with the given ISBN. A checked-out book
// cannot be removed.
func (l *Library) RemoveBook(isbn string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.books[isbn]
	if !ok {
		return fmt.Errorf("%w %q", ErrBookNotFound, isbn)
	}
	if !b.Available {
		return fmt.Errorf("%w: book %q is checked out", ErrConflict, isbn)
	}
	delete(l.books, isbn)
	return nil
}

// GetBook returns a snapshot of the book with the given ISBN.
func (l *Library) GetBook(isbn string) (*Book, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	b, ok := l.books[isbn]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrBookNotFound, isbn)
	}
	cp := *b
	return &cp, nil
}

// SearchByTitle returns snapshots of every book whose title contains
// partial, case-insensitively. An empty string matches the whole
// catalog. Result order is unspecified.
func (l *Library) SearchByTitle(partial string) []*Book {
	return l.search(partial, func(b *Book) string { return b.Title })
}

// SearchByAuthor is SearchByTitle for the author field.
func (l *Library) SearchByAuthor(partial string) []*Book {
	return l.search(partial, func(b *Book) string { return b.Author })
}

func (l *Library) search(partial string, field func(*Book) string) []*Book {
	q := strings.ToLower(partial)

	l.mu.RLock()
	defer l.mu.RUnlock()

	var results []*Book
	for _, b := range l.books {
		if strings.Contains(strings.ToLower(field(b)), q) {
			cp := *b
			results = append(results, &cp)
		}
	}
	return results
}

// Books returns snapshots of every book in unspecified order.
func (l *Library) Books() ([]*Book, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	books := make([]*Book, 0, len(l.books))
	for _, b := range l.books {
		cp := *b
		books = append(books, &cp)
	}
	return books, nil
}

// ------------------ User management ------------------

// AddUser registers a new patron keyed by their ID. The stored record
// is a deep copy of u.
func (l *Library) AddUser(u *User) error {
	if u == nil || u.ID == "" {
		return fmt.Errorf("%w: user ID cannot be empty", ErrInvalidArgument)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.users[u.ID]; ok {
		return fmt.Errorf("%w: user %q", ErrAlreadyExists, u.ID)
	}
	rec, err := copyUser(u)
	if err != nil {
		return err
	}
	if rec.Borrowed == nil {
		rec.Borrowed = make(map[string]bool)
	}
	l.users[rec.ID] = rec
	return nil
}

// RemoveUser deletes the patron with the given ID. A patron with
// outstanding loans cannot be removed.
func (l *Library) RemoveUser(id string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	u, ok := l.users[id]
	if !ok {
		return fmt.Errorf("%w %q", ErrUserNotFound, id)
	}
	if u.BorrowedCount() > 0 {
		return fmt.Errorf("%w: user %q still has %d borrowed book(s)", ErrConflict, id, u.BorrowedCount())
	}
	delete(l.users, id)
	return nil
}

// GetUser returns a snapshot of the patron with the given ID,
// including a copy of their borrowed set.
func (l *Library) GetUser(id string) (*User, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	u, ok := l.users[id]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUserNotFound, id)
	}
	return copyUser(u)
}

// Users returns snapshots of every patron in unspecified order.
func (l *Library) Users() ([]*User, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	users := make([]*User, 0, len(l.users))
	for _, u := range l.users {
		cp, err := copyUser(u)
		if err != nil {
			return nil, err
		}
		users = append(users, cp)
	}
	return users, nil
}

// ------------------ Circulation ------------------

// BorrowBook checks the book out to the patron. The availability flag
// and the borrowed set update under the same lock, so the two can
// never be observed out of step.
func (l *Library) BorrowBook(userID, isbn string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	u, ok := l.users[userID]
	if !ok {
		return fmt.Errorf("%w %q", ErrUserNotFound, userID)
	}
	b, ok := l.books[isbn]
	if !ok {
		return fmt.Errorf("%w %q", ErrBookNotFound, isbn)
	}
	if !b.Available {
		return fmt.Errorf("%w: %q", ErrUnavailable, isbn)
	}

	b.Available = false
	u.BorrowBook(isbn)
	return nil
}

// ReturnBook checks the book back in. Only the patron who holds the
// loan can return it.
func (l *Library) ReturnBook(userID, isbn string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	u, ok := l.users[userID]
	if !ok {
		return fmt.Errorf("%w %q", ErrUserNotFound, userID)
	}
	b, ok := l.books[isbn]
	if !ok {
		return fmt.Errorf("%w %q", ErrBookNotFound, isbn)
	}
	if !u.HasBorrowed(isbn) {
		return fmt.Errorf("%w: user %q, book %q", ErrNotOwned, userID, isbn)
	}

	u.ReturnBook(isbn)
	b.Available = true
	return nil
}

// copyUser deep-copies a patron record, borrowed set included.
func copyUser(u *User) (*User, error) {
	out := &User{}
	if err := copier.CopyWithOption(out, u, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("copy user record: %w", err)
	}
	return out, nil
}
