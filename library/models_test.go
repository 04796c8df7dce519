package library

import (
	"sort"
	"testing"
)

func TestNewBookIsAvailable(t *testing.T) {
	b := NewBook("ISBN-001", "Title", "Author")
	if !b.Available {
		t.Fatalf("new books must be available")
	}
}

func TestUserBorrowSetIdempotent(t *testing.T) {
	u := NewUser("U001", "Alice")

	u.BorrowBook("ISBN-001")
	u.BorrowBook("ISBN-001")
	if got := u.BorrowedCount(); got != 1 {
		t.Fatalf("want 1 borrowed book, got %d", got)
	}

	u.ReturnBook("ISBN-404") // absent, no-op
	if got := u.BorrowedCount(); got != 1 {
		t.Fatalf("want 1 borrowed book after no-op return, got %d", got)
	}

	u.ReturnBook("ISBN-001")
	if u.HasBorrowed("ISBN-001") {
		t.Fatalf("ISBN-001 should be gone after return")
	}
}

func TestUserBorrowNilSet(t *testing.T) {
	// A zero-value user must not panic on borrow.
	var u User
	u.BorrowBook("ISBN-001")
	if !u.HasBorrowed("ISBN-001") {
		t.Fatalf("borrow on zero-value user lost the ISBN")
	}
}

func TestListBorrowedSnapshot(t *testing.T) {
	u := NewUser("U001", "Alice")
	u.BorrowBook("ISBN-002")
	u.BorrowBook("ISBN-001")

	got := u.ListBorrowed()
	sort.Strings(got)
	want := []string{"ISBN-001", "ISBN-002"}
	if len(got) != len(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("want %v, got %v", want, got)
		}
	}

	// Mutating the snapshot must not touch the set.
	got[0] = "ISBN-999"
	if !u.HasBorrowed("ISBN-001") {
		t.Fatalf("set mutated through snapshot")
	}
}
