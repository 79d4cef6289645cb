package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultPostgresDSN = "host=localhost user=postgres password=password dbname=jobboard port=5432 sslmode=disable"

type Config struct {
	Port    string
	GinMode string

	Database DatabaseConfig

	SeedCatalog      bool
	SimulatedLatency time.Duration
	SessionSlot      string

	LogLevel       string
	LogDevelopment bool

	CORSAllowOrigins []string

	Gemini GeminiConfig
	Gmail  GmailConfig
}

type DatabaseConfig struct {
	Driver string // sqlite | postgres
	DSN    string
}

type GeminiConfig struct {
	APIKey string
	Model  string
}

func (c GeminiConfig) Enabled() bool { return c.APIKey != "" }

type GmailConfig struct {
	CredentialsFile string
	TokenFile       string
	Sender          string
}

func (c GmailConfig) Enabled() bool { return c.CredentialsFile != "" && c.TokenFile != "" }

// Load reads .env (if present) and then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("config: ignoring .env: %v", err)
	}
	return FromEnv()
}

// FromEnv builds the configuration from environment variables only.
func FromEnv() Config {
	driver := strings.ToLower(getEnv("DB_DRIVER", "sqlite"))
	dsn := getEnv("DB_DSN", "")
	if dsn == "" {
		if driver == "postgres" {
			dsn = defaultPostgresDSN
		} else {
			dsn = "file::memory:?cache=shared"
		}
	}

	return Config{
		Port:    getEnv("PORT", "8080"),
		GinMode: getEnv("GIN_MODE", ""),
		Database: DatabaseConfig{
			Driver: driver,
			DSN:    dsn,
		},
		SeedCatalog:      getEnvBool("SEED_CATALOG", true),
		SimulatedLatency: getEnvDuration("SIMULATED_LATENCY", 0),
		SessionSlot:      getEnv("SESSION_SLOT", "currentUser"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogDevelopment:   getEnvBool("LOG_DEVELOPMENT", false),
		CORSAllowOrigins: getEnvList("CORS_ALLOW_ORIGINS", []string{"*"}),
		Gemini: GeminiConfig{
			APIKey: getEnv("GEMINI_API_KEY", ""),
			Model:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		},
		Gmail: GmailConfig{
			CredentialsFile: getEnv("GMAIL_CREDENTIALS_FILE", ""),
			TokenFile:       getEnv("GMAIL_TOKEN_FILE", ""),
			Sender:          getEnv("GMAIL_SENDER", ""),
		},
	}
}

func getEnv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d >= 0 {
			return d
		}
	}
	return def
}

func getEnvList(key string, def []string) []string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
