package dtos_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/justsurfingit/jobboard/internal/dtos"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededJob() models.Job {
	salary := "$100,000"
	deadline := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)
	return models.Job{
		ID:           "1",
		Title:        "Engineer",
		Requirements: []string{"Go"},
		Salary:       &salary,
		Deadline:     &deadline,
		IsActive:     true,
	}
}

func TestJobUpdateApply(t *testing.T) {
	tests := []struct {
		name  string
		patch string
		check func(t *testing.T, job models.Job)
	}{
		{
			name:  "absent fields untouched",
			patch: `{"title":"Lead Engineer"}`,
			check: func(t *testing.T, job models.Job) {
				assert.Equal(t, "Lead Engineer", job.Title)
				require.NotNil(t, job.Salary)
				assert.Equal(t, "$100,000", *job.Salary)
				assert.NotNil(t, job.Deadline)
				assert.True(t, job.IsActive)
			},
		},
		{
			name:  "null salary is absent",
			patch: `{"salary":null}`,
			check: func(t *testing.T, job models.Job) {
				require.NotNil(t, job.Salary)
			},
		},
		{
			name:  "empty salary clears",
			patch: `{"salary":""}`,
			check: func(t *testing.T, job models.Job) {
				assert.Nil(t, job.Salary)
			},
		},
		{
			name:  "new salary",
			patch: `{"salary":"$90,000"}`,
			check: func(t *testing.T, job models.Job) {
				require.NotNil(t, job.Salary)
				assert.Equal(t, "$90,000", *job.Salary)
			},
		},
		{
			name:  "clear deadline",
			patch: `{"clear_deadline":true}`,
			check: func(t *testing.T, job models.Job) {
				assert.Nil(t, job.Deadline)
			},
		},
		{
			name:  "clear wins over new deadline",
			patch: `{"deadline":"2025-01-01T00:00:00Z","clear_deadline":true}`,
			check: func(t *testing.T, job models.Job) {
				assert.Nil(t, job.Deadline)
			},
		},
		{
			name:  "deactivate",
			patch: `{"is_active":false}`,
			check: func(t *testing.T, job models.Job) {
				assert.False(t, job.IsActive)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dtos.JobUpdateRequest
			require.NoError(t, json.Unmarshal([]byte(tt.patch), &req))
			job := seededJob()
			req.Apply(&job)
			tt.check(t, job)
		})
	}
}

func TestJobUpdateApplyDoesNotShareRequestMemory(t *testing.T) {
	req := dtos.JobUpdateRequest{Requirements: []string{"Rust"}, Salary: func() *string { s := "$1"; return &s }()}
	job := seededJob()
	req.Apply(&job)

	req.Requirements[0] = "changed"
	*req.Salary = "changed"
	assert.Equal(t, []string{"Rust"}, job.Requirements)
	assert.Equal(t, "$1", *job.Salary)
}
