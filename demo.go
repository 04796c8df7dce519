package main

import (
	"fmt"

	"library-catalog/library"

	"github.com/spf13/cobra"
)

func demoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Scripted walkthrough of the catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo()
		},
	}
}

func runDemo() error {
	lib := library.New()

	books := []*library.Book{
		library.NewBook("ISBN-A", "Learn C++", "Author A"),
		library.NewBook("ISBN-B", "Data Structures", "Author B"),
		library.NewBook("ISBN-C", "Databases", "Author C"),
	}
	for _, b := range books {
		if err := lib.AddBook(b); err != nil {
			return err
		}
	}
	if err := lib.AddUser(library.NewUser("U100", "Charlie")); err != nil {
		return err
	}
	if err := lib.AddUser(library.NewUser("U200", "Dana")); err != nil {
		return err
	}

	fmt.Println("=== Library catalog demo ===")
	displayBooks(lib)
	displayUsers(lib)

	fmt.Println("\nCharlie (U100) borrows ISBN-A...")
	if err := lib.BorrowBook("U100", "ISBN-A"); err != nil {
		return err
	}
	displayBooks(lib)

	fmt.Println("\nDana (U200) tries to borrow ISBN-A while it is out:")
	if err := lib.BorrowBook("U200", "ISBN-A"); err != nil {
		fmt.Printf("  refused: %v\n", err)
	}

	fmt.Println("\nCharlie returns ISBN-A...")
	if err := lib.ReturnBook("U100", "ISBN-A"); err != nil {
		return err
	}
	displayBooks(lib)

	fmt.Println("\nSearch for 'Data':")
	for _, b := range lib.SearchByTitle("Data") {
		printBook(b)
	}

	return nil
}
