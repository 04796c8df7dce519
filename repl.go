package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"library-catalog/library"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

func replCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive catalog session",
		RunE: func(cmd *cobra.Command, args []string) error {
			lib := library.New()
			loadSeed(lib)
			runREPL(lib)
			return nil
		},
	}
}

// loadSeed fills the library from the configured seed file, if any.
// A bad seed is reported and the session starts empty.
func loadSeed(lib *library.Library) {
	if cfg.SeedFile == "" {
		return
	}
	data, err := library.LoadCatalogFile(cfg.SeedFile)
	if err != nil {
		slog.Warn("could not load seed catalog, starting empty", "file", cfg.SeedFile, "error", err)
		return
	}
	if err := lib.ImportData(data); err != nil {
		slog.Warn("seed catalog rejected, starting empty", "file", cfg.SeedFile, "error", err)
		return
	}
	slog.Info("seed catalog loaded", "file", cfg.SeedFile, "books", len(data.Books), "users", len(data.Users))
}

func runREPL(lib *library.Library) {
	scanner := bufio.NewScanner(os.Stdin)

	fmt.Println("Welcome to the library catalog!")
	printHelp()

	for {
		fmt.Print("\n> ")
		if !scanner.Scan() {
			break
		}
		cmd := strings.TrimSpace(scanner.Text())

		switch cmd {
		case "add book":
			handleAddBook(scanner, lib)
		case "add user":
			handleAddUser(scanner, lib)
		case "list books":
			displayBooks(lib)
		case "list users":
			displayUsers(lib)
		case "search title":
			handleSearch(scanner, lib.SearchByTitle)
		case "search author":
			handleSearch(scanner, lib.SearchByAuthor)
		case "get book":
			handleGetBook(scanner, lib)
		case "get user":
			handleGetUser(scanner, lib)
		case "borrow":
			handleBorrow(scanner, lib)
		case "return":
			handleReturn(scanner, lib)
		case "remove book":
			handleRemoveBook(scanner, lib)
		case "remove user":
			handleRemoveUser(scanner, lib)
		case "help":
			printHelp()
		case "exit", "quit":
			fmt.Println("Goodbye!")
			return
		case "":
			continue
		default:
			fmt.Printf("Unknown command: %s (type 'help' for the command list)\n", cmd)
		}
	}
}

func printHelp() {
	fmt.Println("Available commands:")
	fmt.Println("  Books:       add book, remove book, get book, list books")
	fmt.Println("  Search:      search title, search author")
	fmt.Println("  Users:       add user, remove user, get user, list users")
	fmt.Println("  Circulation: borrow, return")
	fmt.Println("  System:      help, exit")
}

func prompt(sc *bufio.Scanner, label string) string {
	fmt.Print(label)
	if !sc.Scan() {
		return ""
	}
	return strings.TrimSpace(sc.Text())
}

func handleAddBook(sc *bufio.Scanner, lib *library.Library) {
	isbn := prompt(sc, "ISBN: ")
	title := prompt(sc, "Title: ")
	author := prompt(sc, "Author: ")

	if err := lib.AddBook(library.NewBook(isbn, title, author)); err != nil {
		fmt.Printf("Error adding book: %v\n", err)
		return
	}
	fmt.Printf("Added '%s' by %s (ISBN %s)\n", title, author, isbn)
}

func handleAddUser(sc *bufio.Scanner, lib *library.Library) {
	id := prompt(sc, "User ID (leave blank to generate one): ")
	if id == "" {
		id = "U-" + uuid.NewString()[:8]
	}
	name := prompt(sc, "Name: ")

	if err := lib.AddUser(library.NewUser(id, name)); err != nil {
		fmt.Printf("Error adding user: %v\n", err)
		return
	}
	fmt.Printf("Registered '%s' with ID %s\n", name, id)
}

func handleSearch(sc *bufio.Scanner, search func(string) []*library.Book) {
	query := prompt(sc, "Query: ")

	books := search(query)
	if len(books) == 0 {
		fmt.Printf("No books found matching '%s'.\n", query)
		return
	}

	fmt.Printf("Found %d book(s) matching '%s':\n", len(books), query)
	for _, b := range books {
		printBook(b)
	}
}

func handleGetBook(sc *bufio.Scanner, lib *library.Library) {
	isbn := prompt(sc, "ISBN: ")
	b, err := lib.GetBook(isbn)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	printBook(b)
}

func handleGetUser(sc *bufio.Scanner, lib *library.Library) {
	id := prompt(sc, "User ID: ")
	u, err := lib.GetUser(id)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	printUser(u)
}

func handleBorrow(sc *bufio.Scanner, lib *library.Library) {
	id := prompt(sc, "User ID: ")
	isbn := prompt(sc, "ISBN: ")

	if err := lib.BorrowBook(id, isbn); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Checked out %s to %s\n", isbn, id)
}

func handleReturn(sc *bufio.Scanner, lib *library.Library) {
	id := prompt(sc, "User ID: ")
	isbn := prompt(sc, "ISBN: ")

	if err := lib.ReturnBook(id, isbn); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	fmt.Printf("Returned %s from %s\n", isbn, id)
}

func handleRemoveBook(sc *bufio.Scanner, lib *library.Library) {
	if err := authorizeAdmin(cfg.AdminPasswordHash); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	isbn := prompt(sc, "ISBN: ")

	if err := lib.RemoveBook(isbn); err != nil {
		fmt.Printf("Error removing book: %v\n", err)
		return
	}
	fmt.Printf("Removed book %s\n", isbn)
}

func handleRemoveUser(sc *bufio.Scanner, lib *library.Library) {
	if err := authorizeAdmin(cfg.AdminPasswordHash); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	id := prompt(sc, "User ID: ")

	if err := lib.RemoveUser(id); err != nil {
		fmt.Printf("Error removing user: %v\n", err)
		return
	}
	fmt.Printf("Removed user %s\n", id)
}

func displayBooks(lib *library.Library) {
	books, err := lib.Books()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(books) == 0 {
		fmt.Println("The catalog is empty.")
		return
	}

	fmt.Printf("Library books (%d):\n", len(books))
	fmt.Printf("%-15s %-35s %-25s %-10s\n", "ISBN", "Title", "Author", "Available")
	fmt.Println(strings.Repeat("-", 88))
	for _, b := range books {
		availStr := "Yes"
		if !b.Available {
			availStr = "No"
		}
		fmt.Printf("%-15s %-35s %-25s %-10s\n",
			b.ISBN, truncateString(b.Title, 35), truncateString(b.Author, 25), availStr)
	}
}

func displayUsers(lib *library.Library) {
	users, err := lib.Users()
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}
	if len(users) == 0 {
		fmt.Println("No users registered.")
		return
	}

	fmt.Printf("Users (%d):\n", len(users))
	fmt.Printf("%-12s %-30s %s\n", "ID", "Name", "Borrowed")
	fmt.Println(strings.Repeat("-", 60))
	for _, u := range users {
		borrowed := "none"
		if isbns := u.ListBorrowed(); len(isbns) > 0 {
			borrowed = strings.Join(isbns, ", ")
		}
		fmt.Printf("%-12s %-30s %s\n", u.ID, truncateString(u.Name, 30), borrowed)
	}
}

func printBook(b *library.Book) {
	avail := "Yes"
	if !b.Available {
		avail = "No"
	}
	fmt.Printf("ISBN: %s, Title: %s, Author: %s, Available: %s\n", b.ISBN, b.Title, b.Author, avail)
}

func printUser(u *library.User) {
	fmt.Printf("User ID: %s, Name: %s, Borrowed count: %d\n", u.ID, u.Name, u.BorrowedCount())
}

func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}
