// Command adduser creates a user with a wallet directly in the database.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/budget-planner/backend/internal/config"
	"github.com/budget-planner/backend/internal/models"
	"github.com/budget-planner/backend/internal/password"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg := config.Load()

	fs := flag.NewFlagSet("adduser", flag.ContinueOnError)
	fs.SetOutput(stderr)

	login := fs.String("login", "", "Login, 5-20 latin letters, digits or _")
	name := fs.String("name", "", "Display name (defaults to the login)")
	passwordFlag := fs.String("password", "", "Password (optional, will prompt if omitted)")
	dbURL := fs.String("db", cfg.DatabaseURL, "Database file or postgres:// URL")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *login == "" {
		fmt.Fprintln(stdout, "Usage: adduser -login <login> [-name <name>] [-password <password>] [-db <database>]")
		fs.PrintDefaults()
		return errors.New("missing required flags: login")
	}

	if *name == "" {
		*name = *login
	}

	pw := *passwordFlag
	if pw == "" {
		fmt.Fprint(stdout, "Password: ")
		var err error
		pw, err = readPassword(stdin)
		if err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Fprintln(stdout)
	}

	// The command prints its own result, gorm warnings would only clutter it
	zerolog.SetGlobalLevel(zerolog.ErrorLevel)

	db, err := models.Connect(*dbURL)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	err = models.CheckSignUp(db, *login, pw)
	if errors.Is(err, models.ErrLoginTaken) {
		return fmt.Errorf("user %s already exists", *login)
	}
	if err != nil {
		return err
	}

	hash, err := password.Hasher{Rounds: cfg.PasswordHashRounds}.Hash(pw)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user, wallet, err := models.CreateUserWithWallet(db, *name, *login, hash)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Fprintf(stdout, "User %s created successfully with ID %d and wallet %d\n", user.Login, user.ID, wallet.ID)
	return nil
}

func readPassword(stdin io.Reader) (string, error) {
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		bytePassword, err := term.ReadPassword(int(f.Fd()))
		if err != nil {
			return "", err
		}
		return string(bytePassword), nil
	}

	// Pipes and tests
	scanner := bufio.NewScanner(stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
