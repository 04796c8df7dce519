package main

import (
	"encoding/json"
	"fmt"
	"os"

	"library-catalog/library"

	"github.com/google/uuid"
)

// Classic catalog used to exercise the REPL without typing books in
// by hand. Keys are ISBNs, values are [title, author].
var bookMetadata = map[string][2]string{
	"ISBN-0001": {"1984", "George Orwell"},
	"ISBN-0002": {"Animal Farm", "George Orwell"},
	"ISBN-0003": {"The Diary of a Young Girl", "Anne Frank"},
	"ISBN-0004": {"The Art of War", "Sun Tzu"},
	"ISBN-0005": {"The Fellowship of the Ring", "J.R.R. Tolkien"},
	"ISBN-0006": {"The Two Towers", "J.R.R. Tolkien"},
	"ISBN-0007": {"The Return of the King", "J.R.R. Tolkien"},
	"ISBN-0008": {"Romeo and Juliet", "William Shakespeare"},
	"ISBN-0009": {"The Three Musketeers", "Alexandre Dumas"},
	"ISBN-0010": {"The Three Little Pigs", "Traditional"},
}

var patrons = []string{"Alice", "Bob", "Charlie"}

func main() {
	out := "catalog.seed.json"
	if len(os.Args) > 1 {
		out = os.Args[1]
	}

	data := &library.CatalogData{}
	for isbn, meta := range bookMetadata {
		data.Books = append(data.Books, library.NewBook(isbn, meta[0], meta[1]))
	}
	for _, name := range patrons {
		id := "U-" + uuid.NewString()[:8]
		data.Users = append(data.Users, library.NewUser(id, name))
	}

	// Sanity-check the generated catalog by importing it.
	if err := library.New().ImportData(data); err != nil {
		fmt.Fprintf(os.Stderr, "generated catalog is invalid: %v\n", err)
		os.Exit(1)
	}

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "encode catalog: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(out, raw, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write %s: %v\n", out, err)
		os.Exit(1)
	}

	fmt.Printf("Wrote %d books and %d users to %s\n", len(data.Books), len(data.Users), out)
}
