// Command hashpassword prints the ADMIN_USERNAME and ADMIN_PASSWORD_HASH
// lines for a .env file.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/orrya/backend/pkg/auth"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/term"
)

func main() {
	username := flag.String("username", "", "admin username (prompted when empty)")
	password := flag.String("password", "", "admin password (prompted when empty)")
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost")
	flag.Parse()

	if err := run(os.Stdin, os.Stdout, os.Stderr, *username, *password, *cost); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run(in *os.File, out, prompt io.Writer, username, password string, cost int) error {
	reader := bufio.NewReader(in)
	if username == "" {
		fmt.Fprint(prompt, "Admin username: ")
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read username: %w", err)
		}
		username = strings.TrimSpace(line)
	}
	if username == "" {
		return errors.New("username must not be empty")
	}

	if password == "" {
		p, err := readPassword(in, reader, prompt)
		if err != nil {
			return err
		}
		password = p
	}

	hash, err := auth.HashPassword(password, cost)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "ADMIN_USERNAME=%s\n", username)
	fmt.Fprintf(out, "ADMIN_PASSWORD_HASH=%s\n", hash)
	return nil
}

// readPassword prompts twice without echo on a terminal, and reads one line
// otherwise.
func readPassword(in *os.File, reader *bufio.Reader, prompt io.Writer) (string, error) {
	fd := int(in.Fd())
	if !term.IsTerminal(fd) {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read password: %w", err)
		}
		return strings.TrimRight(line, "\r\n"), nil
	}

	fmt.Fprint(prompt, "Admin password: ")
	first, err := term.ReadPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	fmt.Fprint(prompt, "Confirm password: ")
	second, err := term.ReadPassword(fd)
	fmt.Fprintln(prompt)
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	if string(first) != string(second) {
		return "", errors.New("passwords do not match")
	}
	return string(first), nil
}
