package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/justsurfingit/jobboard/internal/database"
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const notifyTimeout = 5 * time.Second

// Notifier tells an applicant that their application changed status.
type Notifier interface {
	NotifyStatusChange(ctx context.Context, app *models.Application, job *models.Job) error
}

type ApplicationService struct {
	DB       *gorm.DB
	Log      *zap.Logger
	Tracker  *Tracker
	Notifier Notifier
}

func NewApplicationService(db *gorm.DB, log *zap.Logger, tracker *Tracker, notifier Notifier) *ApplicationService {
	return &ApplicationService{
		DB:       db,
		Log:      log,
		Tracker:  tracker,
		Notifier: notifier,
	}
}

// ApplyToJob records a new pending application. The job is not looked up and
// repeated applications by the same user are accepted.
func (s *ApplicationService) ApplyToJob(ctx context.Context, jobID string, req *dtos.ApplicationRequest) (*models.Application, error) {
	var app models.Application
	err := s.Tracker.Do(ctx, func() error {
		return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			seq, id, err := database.NextID(tx, database.SeqApplications)
			if err != nil {
				return err
			}
			app = models.Application{
				ID:          id,
				Seq:         seq,
				JobID:       jobID,
				UserID:      req.UserID,
				Name:        req.Name,
				Email:       req.Email,
				CoverLetter: req.CoverLetter,
				ResumeURL:   optional(req.ResumeURL),
				Status:      models.StatusPending,
				CreatedAt:   time.Now().UTC(),
			}
			return tx.Create(&app).Error
		})
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("application submitted",
		zap.String("application_id", app.ID),
		zap.String("job_id", app.JobID),
		zap.String("user_id", app.UserID),
	)
	return &app, nil
}

// UpdateApplicationStatus overwrites the status. Any status may follow any
// other; only membership in the closed set is checked.
func (s *ApplicationService) UpdateApplicationStatus(ctx context.Context, id string, status models.ApplicationStatus) (*models.Application, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("status %q: %w", status, ErrValidation)
	}

	var app models.Application
	var previous models.ApplicationStatus
	err := s.Tracker.Do(ctx, func() error {
		return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			err := tx.Where("id = ?", id).First(&app).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("application %q: %w", id, ErrNotFound)
			}
			if err != nil {
				return err
			}
			previous = app.Status
			app.Status = status
			return tx.Model(&app).Update("status", status).Error
		})
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("application status updated",
		zap.String("application_id", app.ID),
		zap.String("from", string(previous)),
		zap.String("to", string(status)),
	)
	if previous != status {
		s.notify(ctx, &app)
	}
	return &app, nil
}

func (s *ApplicationService) GetApplicationByID(ctx context.Context, id string) (*models.Application, error) {
	var app models.Application
	err := s.DB.WithContext(ctx).Where("id = ?", id).First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("application %q: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *ApplicationService) ListApplications(ctx context.Context) ([]models.Application, error) {
	return s.list(ctx, nil)
}

func (s *ApplicationService) GetUserApplications(ctx context.Context, userID string) ([]models.Application, error) {
	return s.list(ctx, map[string]any{"user_id": userID})
}

func (s *ApplicationService) GetJobApplications(ctx context.Context, jobID string) ([]models.Application, error) {
	return s.list(ctx, map[string]any{"job_id": jobID})
}

func (s *ApplicationService) list(ctx context.Context, where map[string]any) ([]models.Application, error) {
	q := s.DB.WithContext(ctx).Order("seq ASC")
	if len(where) > 0 {
		q = q.Where(where)
	}
	var apps []models.Application
	if err := q.Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// notify is best effort: a failed notification never fails the update.
func (s *ApplicationService) notify(ctx context.Context, app *models.Application) {
	if s.Notifier == nil {
		return
	}

	var job models.Job
	if err := findJob(s.DB.WithContext(ctx), app.JobID, &job); err != nil {
		s.Log.Debug("skipping notification, job missing", zap.String("job_id", app.JobID), zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(ctx, notifyTimeout)
	defer cancel()
	if err := s.Notifier.NotifyStatusChange(ctx, app, &job); err != nil {
		s.Log.Warn("status notification failed", zap.String("application_id", app.ID), zap.Error(err))
	}
}
