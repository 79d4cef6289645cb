// Package app wires configuration, storage, services and transport into one
// application value.
package app

import (
	"context"
	"errors"
	"fmt"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/jobboard/internal/auth"
	"github.com/justsurfingit/jobboard/internal/catalog"
	"github.com/justsurfingit/jobboard/internal/config"
	"github.com/justsurfingit/jobboard/internal/database"
	"github.com/justsurfingit/jobboard/internal/feed"
	"github.com/justsurfingit/jobboard/internal/handlers"
	"github.com/justsurfingit/jobboard/internal/logging"
	"github.com/justsurfingit/jobboard/internal/services"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"google.golang.org/api/gmail/v1"
	"gorm.io/gorm"
)

type App struct {
	Config config.Config
	Log    *zap.Logger
	DB     *gorm.DB

	Tracker      *services.Tracker
	Sessions     *services.SessionService
	Jobs         *services.JobService
	Applications *services.ApplicationService
	Admin        *services.AdminService
	LLM          *services.LLMService
	Email        *services.EmailService
	Feed         *feed.Hub
}

// New builds the application. Optional integrations that are not configured
// or fail to start are disabled with a warning.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	log, err := logging.New(cfg.LogLevel, cfg.LogDevelopment)
	if err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg.Database, log)
	if err != nil {
		_ = log.Sync()
		return nil, err
	}

	if cfg.SeedCatalog {
		seeded, err := database.Seed(ctx, db, catalog.Default())
		if err != nil {
			return nil, multierr.Append(err, database.Close(db))
		}
		log.Info("catalog seeding", zap.Bool("inserted", seeded))
	}

	a := &App{
		Config:  cfg,
		Log:     log,
		DB:      db,
		Tracker: services.NewTracker(cfg.SimulatedLatency),
		Feed:    feed.NewHub(log.Named("feed")),
	}

	var gmailClient *gmail.Service
	if cfg.Gmail.Enabled() {
		gmailClient, err = auth.NewGmailService(ctx, cfg.Gmail.CredentialsFile, cfg.Gmail.TokenFile)
		if err != nil {
			log.Warn("gmail notifications disabled", zap.Error(err))
		}
	}
	a.Email = services.NewEmailService(gmailClient, cfg.Gmail.Sender, log.Named("email"))

	if cfg.Gemini.Enabled() {
		a.LLM, err = services.NewLLMService(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model, catalog.Categories)
		if err != nil {
			log.Warn("job extraction disabled", zap.Error(err))
		}
	}

	a.Sessions = services.NewSessionService(db, log.Named("session"), a.Tracker, cfg.SessionSlot)
	a.Jobs = services.NewJobService(db, log.Named("jobs"), a.Tracker, a.Feed)
	a.Applications = services.NewApplicationService(db, log.Named("applications"), a.Tracker, a.Email)
	a.Admin = services.NewAdminService(db)

	return a, nil
}

func (a *App) Router() *gin.Engine {
	if a.Config.GinMode != "" {
		gin.SetMode(a.Config.GinMode)
	}
	return handlers.NewRouter(handlers.Deps{
		Log:          a.Log.Named("http"),
		AllowOrigins: a.Config.CORSAllowOrigins,
		Tracker:      a.Tracker,
		Sessions:     a.Sessions,
		Jobs:         a.Jobs,
		Applications: a.Applications,
		Admin:        a.Admin,
		LLM:          a.LLM,
		Feed:         a.Feed,
	})
}

func (a *App) Addr() string {
	return fmt.Sprintf(":%s", a.Config.Port)
}

// Close releases the database and flushes the logger.
func (a *App) Close() error {
	err := database.Close(a.DB)
	if syncErr := a.Log.Sync(); syncErr != nil && !isStdSyncError(syncErr) {
		err = multierr.Append(err, syncErr)
	}
	return err
}

// Sync on a terminal stdout/stderr fails with EINVAL or ENOTTY.
func isStdSyncError(err error) bool {
	return errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.ENOTTY)
}
