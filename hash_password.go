package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/camden-git/totenbilder/models"
)

func newHashPasswordCmd() *cobra.Command {
	var username, password string
	cmd := &cobra.Command{
		Use:   "hash-password",
		Short: "Generate a bcrypt hash and the SQL to set it for an administrator",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHashPassword(cmd.InOrStdin(), cmd.OutOrStdout(), username, password)
		},
	}
	cmd.Flags().StringVarP(&username, "username", "u", "", "Account name (prompted when empty)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "New password (prompted when empty)")
	return cmd
}

func runHashPassword(in io.Reader, out io.Writer, username, password string) error {
	reader := bufio.NewReader(in)
	fmt.Fprintln(out, "--- Password Hash Generator ---")

	var err error
	if username == "" {
		if username, err = prompt(reader, out, "Enter the username (e.g., admin): "); err != nil {
			return err
		}
	}
	if password == "" {
		if password, err = prompt(reader, out, "Enter the new password: "); err != nil {
			return err
		}
	}
	if password == "" {
		return errors.New("password cannot be empty")
	}

	hash, err := models.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	fmt.Fprintln(out)
	fmt.Fprintf(out, "Username: %s\n", username)
	fmt.Fprintf(out, "Hash:     %s\n", hash)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run this SQL command in your database to update the user:")
	fmt.Fprintf(out, "UPDATE users SET pass = '%s' WHERE name = '%s';\n", hash, strings.ReplaceAll(username, "'", "''"))
	return nil
}

func prompt(r *bufio.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)
	line, err := r.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
