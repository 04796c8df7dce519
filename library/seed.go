package library

import (
	"encoding/json"
	"fmt"
	"os"
)

// CatalogData is the on-disk shape of a seed catalog. Seed files are
// demo fixtures loaded once at startup; the library never writes
// state back out.
type CatalogData struct {
	Books []*Book `json:"books"`
	Users []*User `json:"users"`
}

// LoadCatalogFile reads a seed catalog from a JSON file.
func LoadCatalogFile(path string) (*CatalogData, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	var data CatalogData
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &data, nil
}

// ImportData adds every seed record through the regular AddBook and
// AddUser paths so identity checks still apply. Seed patrons always
// start with no loans. The first bad record aborts the import.
func (l *Library) ImportData(data *CatalogData) error {
	for _, b := range data.Books {
		if err := l.AddBook(NewBook(b.ISBN, b.Title, b.Author)); err != nil {
			return fmt.Errorf("import book %q: %w", b.ISBN, err)
		}
	}
	for _, u := range data.Users {
		if err := l.AddUser(NewUser(u.ID, u.Name)); err != nil {
			return fmt.Errorf("import user %q: %w", u.ID, err)
		}
	}
	return nil
}
