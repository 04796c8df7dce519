package library

import (
	"fmt"
	"testing"

	"pgregory.net/rapid"
)

// checkConsistency asserts that every book's availability flag agrees
// with the union of all borrowed sets: a book is unavailable iff
// exactly one patron holds its ISBN.
func checkConsistency(t *rapid.T, lib *Library) {
	holders := make(map[string]int)
	for _, u := range lib.users {
		for isbn := range u.Borrowed {
			holders[isbn]++
			b, ok := lib.books[isbn]
			if !ok {
				t.Fatalf("user %s holds unknown book %s", u.ID, isbn)
			}
			if b.Available {
				t.Fatalf("book %s is held but marked available", isbn)
			}
		}
	}
	for isbn, n := range holders {
		if n > 1 {
			t.Fatalf("book %s held by %d users at once", isbn, n)
		}
	}
	for isbn, b := range lib.books {
		if !b.Available && holders[isbn] != 1 {
			t.Fatalf("book %s unavailable but held by %d users", isbn, holders[isbn])
		}
	}
}

func TestAvailabilityConsistencyUnderRandomOps(t *testing.T) {
	isbns := []string{"ISBN-001", "ISBN-002", "ISBN-003", "ISBN-004", "ISBN-005", "ISBN-404"}
	userIDs := []string{"U001", "U002", "U003", "U404"}

	rapid.Check(t, func(t *rapid.T) {
		lib := New()
		for i := 0; i < 5; i++ {
			if err := lib.AddBook(NewBook(isbns[i], fmt.Sprintf("Book %d", i), "Author")); err != nil {
				t.Fatalf("seed book: %v", err)
			}
		}
		for i := 0; i < 3; i++ {
			if err := lib.AddUser(NewUser(userIDs[i], fmt.Sprintf("Patron %d", i))); err != nil {
				t.Fatalf("seed user: %v", err)
			}
		}

		steps := rapid.IntRange(1, 200).Draw(t, "steps")
		for i := 0; i < steps; i++ {
			op := rapid.IntRange(0, 5).Draw(t, "op")
			isbn := rapid.SampledFrom(isbns).Draw(t, "isbn")
			id := rapid.SampledFrom(userIDs).Draw(t, "user")

			// Errors are expected along the way (missing records,
			// unavailable books); only consistency matters here.
			switch op {
			case 0:
				_ = lib.BorrowBook(id, isbn)
			case 1:
				_ = lib.ReturnBook(id, isbn)
			case 2:
				_ = lib.RemoveBook(isbn)
			case 3:
				_ = lib.AddBook(NewBook(isbn, "Replacement Copy", "Author"))
			case 4:
				_ = lib.RemoveUser(id)
			case 5:
				_ = lib.AddUser(NewUser(id, "Returning Patron"))
			}

			checkConsistency(t, lib)
		}
	})
}
