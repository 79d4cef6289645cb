package dtos

import (
	"time"

	"github.com/justsurfingit/jobboard/internal/models"
)

type JobExtractionRequest struct {
	RawText string `json:"raw_text" binding:"required"`
	URL     string `json:"url"`
}

type JobCreationRequest struct {
	Title        string   `json:"title" binding:"required"`
	Company      string   `json:"company" binding:"required"`
	Location     string   `json:"location" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Requirements []string `json:"requirements" binding:"required,min=1,dive,notblank"`
	Category     string   `json:"category" binding:"required"`
	Type         string   `json:"type" binding:"required,oneof=full-time part-time contract remote"`

	// Optional Fields
	Salary     *string    `json:"salary"`
	Deadline   *time.Time `json:"deadline"`
	IsActive   *bool      `json:"is_active"`   // Defaults to true when omitted
	EmployerID string     `json:"employer_id"` // Defaults to the session user
}

// JobUpdateRequest is a shallow patch: nil fields are left untouched. JSON
// null cannot be told apart from an absent field, so an empty salary clears
// the salary and clear_deadline removes the deadline.
type JobUpdateRequest struct {
	Title         *string    `json:"title" binding:"omitempty,notblank"`
	Company       *string    `json:"company" binding:"omitempty,notblank"`
	Location      *string    `json:"location"`
	Description   *string    `json:"description"`
	Requirements  []string   `json:"requirements" binding:"omitempty,dive,notblank"`
	Salary        *string    `json:"salary"`
	Category      *string    `json:"category"`
	Type          *string    `json:"type" binding:"omitempty,oneof=full-time part-time contract remote"`
	Deadline      *time.Time `json:"deadline"`
	ClearDeadline bool       `json:"clear_deadline"`
	IsActive      *bool      `json:"is_active"`
}

// Apply merges the set fields of r onto job.
func (r *JobUpdateRequest) Apply(job *models.Job) {
	if r.Title != nil {
		job.Title = *r.Title
	}
	if r.Company != nil {
		job.Company = *r.Company
	}
	if r.Location != nil {
		job.Location = *r.Location
	}
	if r.Description != nil {
		job.Description = *r.Description
	}
	if r.Requirements != nil {
		job.Requirements = append([]string(nil), r.Requirements...)
	}
	if r.Salary != nil {
		if *r.Salary == "" {
			job.Salary = nil
		} else {
			salary := *r.Salary
			job.Salary = &salary
		}
	}
	if r.Category != nil {
		job.Category = *r.Category
	}
	if r.Type != nil {
		job.Type = models.JobType(*r.Type)
	}
	if r.ClearDeadline {
		job.Deadline = nil
	} else if r.Deadline != nil {
		deadline := *r.Deadline
		job.Deadline = &deadline
	}
	if r.IsActive != nil {
		job.IsActive = *r.IsActive
	}
}

type CatalogOptions struct {
	Categories []string         `json:"categories"`
	Types      []models.JobType `json:"types"`
	Locations  []string         `json:"locations"`
}

type FilteredJobsResponse struct {
	Criteria models.JobFilter `json:"criteria"`
	Jobs     []models.Job     `json:"jobs"`
}
