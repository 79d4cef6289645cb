package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/justsurfingit/jobboard/internal/database"
	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// EventPublisher receives every change made to the job collection.
type EventPublisher interface {
	Publish(event models.JobEvent)
}

// JobService manages job postings and the filtered view over them. The view
// is recomputed with the last applied criteria whenever the collection changes.
type JobService struct {
	DB        *gorm.DB
	Log       *zap.Logger
	Tracker   *Tracker
	Publisher EventPublisher

	mu       sync.RWMutex
	criteria models.JobFilter
	filtered []models.Job
	primed   bool
}

func NewJobService(db *gorm.DB, log *zap.Logger, tracker *Tracker, publisher EventPublisher) *JobService {
	return &JobService{
		DB:        db,
		Log:       log,
		Tracker:   tracker,
		Publisher: publisher,
	}
}

func (s *JobService) CreateJob(ctx context.Context, req *dtos.JobCreationRequest) (*models.Job, error) {
	jobType := models.JobType(req.Type)
	if !jobType.Valid() {
		return nil, fmt.Errorf("job type %q: %w", req.Type, ErrValidation)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	var job models.Job
	err := s.Tracker.Do(ctx, func() error {
		return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			seq, id, err := database.NextID(tx, database.SeqJobs)
			if err != nil {
				return err
			}
			job = models.Job{
				ID:           id,
				Seq:          seq,
				Title:        req.Title,
				Company:      req.Company,
				Location:     req.Location,
				Description:  req.Description,
				Requirements: append([]string(nil), req.Requirements...),
				Salary:       req.Salary,
				Category:     req.Category,
				Type:         jobType,
				EmployerID:   req.EmployerID,
				CreatedAt:    time.Now().UTC(),
				Deadline:     req.Deadline,
				IsActive:     isActive,
			}
			return tx.Create(&job).Error
		})
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("job created", zap.String("job_id", job.ID), zap.String("employer_id", job.EmployerID))
	s.changed(ctx, models.JobEventCreated, job.ID, &job)
	return &job, nil
}

// UpdateJob shallow-merges the set fields of req onto the job. The job must
// exist before anything is written.
func (s *JobService) UpdateJob(ctx context.Context, id string, req *dtos.JobUpdateRequest) (*models.Job, error) {
	if req.Type != nil && !models.JobType(*req.Type).Valid() {
		return nil, fmt.Errorf("job type %q: %w", *req.Type, ErrValidation)
	}

	var job models.Job
	err := s.Tracker.Do(ctx, func() error {
		return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := findJob(tx, id, &job); err != nil {
				return err
			}
			req.Apply(&job)
			return tx.Save(&job).Error
		})
	})
	if err != nil {
		return nil, err
	}

	s.Log.Info("job updated", zap.String("job_id", job.ID), zap.Bool("is_active", job.IsActive))
	s.changed(ctx, models.JobEventUpdated, job.ID, &job)
	return &job, nil
}

// DeleteJob removes the job if present. Applications that reference it are
// left alone.
func (s *JobService) DeleteJob(ctx context.Context, id string) error {
	var removed int64
	err := s.Tracker.Do(ctx, func() error {
		res := s.DB.WithContext(ctx).Where("id = ?", id).Delete(&models.Job{})
		removed = res.RowsAffected
		return res.Error
	})
	if err != nil {
		return err
	}
	if removed == 0 {
		return nil
	}

	s.Log.Info("job deleted", zap.String("job_id", id))
	s.changed(ctx, models.JobEventDeleted, id, nil)
	return nil
}

func (s *JobService) GetJobByID(ctx context.Context, id string) (*models.Job, error) {
	var job models.Job
	if err := findJob(s.DB.WithContext(ctx), id, &job); err != nil {
		return nil, err
	}
	return &job, nil
}

// ListJobs returns the whole collection, oldest first.
func (s *JobService) ListJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := s.DB.WithContext(ctx).Order("seq ASC").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *JobService) ListEmployerJobs(ctx context.Context, employerID string) ([]models.Job, error) {
	var jobs []models.Job
	err := s.DB.WithContext(ctx).Where("employer_id = ?", employerID).Order("seq ASC").Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// FilterJobs makes criteria the current criteria and returns the matching
// jobs in collection order.
func (s *JobService) FilterJobs(ctx context.Context, criteria models.JobFilter) ([]models.Job, error) {
	jobs, err := s.ListJobs(ctx)
	if err != nil {
		return nil, err
	}
	filtered := criteria.Apply(jobs)

	s.mu.Lock()
	s.criteria = criteria
	s.filtered = filtered
	s.primed = true
	s.mu.Unlock()

	return cloneJobs(filtered), nil
}

// FilteredJobs returns the view derived from the current criteria.
func (s *JobService) FilteredJobs(ctx context.Context) (models.JobFilter, []models.Job, error) {
	s.mu.RLock()
	criteria, filtered, primed := s.criteria, s.filtered, s.primed
	s.mu.RUnlock()

	if !primed {
		var err error
		if filtered, err = s.FilterJobs(ctx, criteria); err != nil {
			return criteria, nil, err
		}
		return criteria, filtered, nil
	}
	return criteria, cloneJobs(filtered), nil
}

func (s *JobService) CurrentFilters() models.JobFilter {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criteria
}

func (s *JobService) changed(ctx context.Context, eventType, jobID string, job *models.Job) {
	if _, err := s.FilterJobs(ctx, s.CurrentFilters()); err != nil {
		s.Log.Warn("refresh filtered jobs", zap.Error(err))
	}
	if s.Publisher != nil {
		s.Publisher.Publish(models.JobEvent{
			EventType: eventType,
			JobID:     jobID,
			Job:       job,
			CreatedAt: time.Now().UTC(),
		})
	}
}

func findJob(db *gorm.DB, id string, job *models.Job) error {
	err := db.Where("id = ?", id).First(job).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("job %q: %w", id, ErrNotFound)
	}
	return err
}

// cloneJobs copies jobs deeply enough that callers cannot reach the cached view.
func cloneJobs(jobs []models.Job) []models.Job {
	out := make([]models.Job, len(jobs))
	for i, job := range jobs {
		job.Requirements = append([]string(nil), job.Requirements...)
		if job.Salary != nil {
			salary := *job.Salary
			job.Salary = &salary
		}
		if job.Deadline != nil {
			deadline := *job.Deadline
			job.Deadline = &deadline
		}
		out[i] = job
	}
	return out
}
