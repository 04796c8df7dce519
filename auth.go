package main

import (
	"fmt"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

// readPassword securely reads a passphrase with masking.
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	raw, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		return "", err
	}
	fmt.Println() // Add newline after masked input
	return strings.TrimSpace(string(raw)), nil
}

// authorizeAdmin prompts for the admin passphrase when one is
// configured. With no hash configured every command is allowed.
func authorizeAdmin(hash string) error {
	if hash == "" {
		return nil
	}
	pass, err := readPassword("Admin passphrase: ")
	if err != nil {
		return fmt.Errorf("failed to read passphrase: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass)); err != nil {
		return fmt.Errorf("passphrase rejected")
	}
	return nil
}

func hashPasswordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash-password",
		Short: "Generate a bcrypt hash for the admin_password_hash setting",
		RunE: func(cmd *cobra.Command, args []string) error {
			pass, err := readPassword("Enter admin passphrase: ")
			if err != nil {
				return fmt.Errorf("failed to read passphrase: %w", err)
			}
			if pass == "" {
				return fmt.Errorf("passphrase cannot be empty")
			}
			hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("hash passphrase: %w", err)
			}
			fmt.Println(string(hash))
			return nil
		},
	}
}
