package library

// Book represents a catalog entry and its current availability.
// The ISBN is the sole identity key and never changes after creation.
type Book struct {
	ISBN      string `json:"isbn"`
	Title     string `json:"title"`
	Author    string `json:"author"`
	Available bool   `json:"available"`
}

// NewBook creates a book that is available for checkout.
func NewBook(isbn, title, author string) *Book {
	return &Book{
		ISBN:      isbn,
		Title:     title,
		Author:    author,
		Available: true,
	}
}

// User represents a registered patron together with the set of ISBNs
// they currently have checked out.
type User struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Borrowed map[string]bool `json:"borrowed_books,omitempty"`
}

// NewUser creates a patron with an empty borrowed set.
func NewUser(id, name string) *User {
	return &User{
		ID:       id,
		Name:     name,
		Borrowed: make(map[string]bool),
	}
}

// HasBorrowed reports whether the patron currently holds isbn.
func (u *User) HasBorrowed(isbn string) bool {
	return u.Borrowed[isbn]
}

// BorrowBook records isbn in the borrowed set. Inserting an ISBN that
// is already present is a no-op; availability checks live in Library.
func (u *User) BorrowBook(isbn string) {
	if u.Borrowed == nil {
		u.Borrowed = make(map[string]bool)
	}
	u.Borrowed[isbn] = true
}

// ReturnBook removes isbn from the borrowed set. Removing an absent
// ISBN is a no-op; ownership checks live in Library.
func (u *User) ReturnBook(isbn string) {
	delete(u.Borrowed, isbn)
}

// ListBorrowed returns a snapshot of the borrowed ISBNs in
// unspecified order.
func (u *User) ListBorrowed() []string {
	out := make([]string, 0, len(u.Borrowed))
	for isbn := range u.Borrowed {
		out = append(out, isbn)
	}
	return out
}

// BorrowedCount returns how many books the patron currently holds.
func (u *User) BorrowedCount() int {
	return len(u.Borrowed)
}
