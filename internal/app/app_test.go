package app_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/justsurfingit/jobboard/internal/app"
	"github.com/justsurfingit/jobboard/internal/config"
	"github.com/justsurfingit/jobboard/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() config.Config {
	return config.Config{
		Port:             "0",
		GinMode:          "test",
		Database:         config.DatabaseConfig{Driver: "sqlite", DSN: testutils.MemoryDSN()},
		SeedCatalog:      true,
		SessionSlot:      "currentUser",
		LogLevel:         "error",
		CORSAllowOrigins: []string{"*"},
	}
}

func TestNewWiresServices(t *testing.T) {
	a, err := app.New(context.Background(), testConfig())
	require.NoError(t, err)
	defer a.Close()

	assert.Nil(t, a.LLM, "extraction is off without an api key")
	assert.Nil(t, a.Email.GmailClient)
	assert.Equal(t, ":0", a.Addr())

	jobs, err := a.Jobs.ListJobs(context.Background())
	require.NoError(t, err)
	assert.Len(t, jobs, 6)

	w := httptest.NewRecorder()
	a.Router().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/jobs?category=Engineering", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, strings.Count(w.Body.String(), `"category":"Engineering"`))
}

func TestNewWithoutSeed(t *testing.T) {
	cfg := testConfig()
	cfg.SeedCatalog = false

	a, err := app.New(context.Background(), cfg)
	require.NoError(t, err)
	defer a.Close()

	users, err := a.Admin.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Empty(t, users)
}

func TestNewRejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.LogLevel = "loud"
	_, err := app.New(context.Background(), cfg)
	assert.Error(t, err)

	cfg = testConfig()
	cfg.Database.Driver = "oracle"
	_, err = app.New(context.Background(), cfg)
	assert.Error(t, err)
}
