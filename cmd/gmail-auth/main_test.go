package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/justsurfingit/jobboard/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunRequiresPaths(t *testing.T) {
	err := run(context.Background(), config.GmailConfig{}, strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorContains(t, err, "GMAIL_CREDENTIALS_FILE")
}

func TestRunPrintsURLAndRejectsEmptyCode(t *testing.T) {
	dir := t.TempDir()
	creds := filepath.Join(dir, "credentials.json")
	require.NoError(t, os.WriteFile(creds, []byte(`{"installed":{
		"client_id":"cli-test","client_secret":"s",
		"auth_uri":"https://accounts.google.com/o/oauth2/auth",
		"token_uri":"https://oauth2.googleapis.com/token",
		"redirect_uris":["http://localhost"]}}`), 0o600))

	var out bytes.Buffer
	err := run(context.Background(), config.GmailConfig{
		CredentialsFile: creds,
		TokenFile:       filepath.Join(dir, "token.json"),
	}, strings.NewReader("\n"), &out)

	assert.ErrorContains(t, err, "no authorization code")
	assert.Contains(t, out.String(), "client_id=cli-test")
	assert.NoFileExists(t, filepath.Join(dir, "token.json"))
}
