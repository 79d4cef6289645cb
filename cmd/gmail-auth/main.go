// Command gmail-auth runs the one-time OAuth consent flow and writes the token
// file the API server reads when GMAIL_TOKEN_FILE is set.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/justsurfingit/jobboard/internal/auth"
	"github.com/justsurfingit/jobboard/internal/config"
)

func main() {
	cfg := config.Load()
	if err := run(context.Background(), cfg.Gmail, os.Stdin, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cfg config.GmailConfig, in io.Reader, out io.Writer) error {
	if cfg.CredentialsFile == "" || cfg.TokenFile == "" {
		return errors.New("GMAIL_CREDENTIALS_FILE and GMAIL_TOKEN_FILE must be set")
	}

	authURL, err := auth.AuthURL(cfg.CredentialsFile)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n---------------------------------------------------------\n")
	fmt.Fprintf(out, "OPEN THIS LINK TO AUTHORIZE GMAIL ACCESS:\n%v\n", authURL)
	fmt.Fprintf(out, "---------------------------------------------------------\n")
	fmt.Fprintf(out, "Paste the code here: ")

	code, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("read authorization code: %w", err)
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return errors.New("no authorization code given")
	}

	if err := auth.ExchangeAndSave(ctx, cfg.CredentialsFile, cfg.TokenFile, code); err != nil {
		return err
	}
	fmt.Fprintf(out, "Token saved to %s\n", cfg.TokenFile)
	return nil
}
