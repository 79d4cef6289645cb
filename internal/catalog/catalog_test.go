package catalog

import (
	"testing"

	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDefault_Shape(t *testing.T) {
	c := Default()
	assert.Len(t, c.Users, 3)
	assert.Len(t, c.Jobs, 6)
	assert.Len(t, c.Applications, 2)
	assert.Len(t, Categories, 10)
	assert.Len(t, JobTypes, 4)
	assert.Len(t, Locations, 8)
	require.NoError(t, c.Validate())
}

func TestDefault_TwoEngineeringJobs(t *testing.T) {
	got := models.JobFilter{Category: "Engineering"}.Apply(Default().Jobs)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "2", got[1].ID)
}

func TestDefault_ReturnsCopies(t *testing.T) {
	a := Default()
	a.Jobs[0].Title = "changed"
	a.Jobs[0].Requirements[0] = "changed"
	b := Default()
	assert.Equal(t, "Senior Frontend Developer", b.Jobs[0].Title)
	assert.Equal(t, "Minimum 4 years of experience with React", b.Jobs[0].Requirements[0])
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	c := Default()
	c.Users = append(c.Users, models.User{ID: "1", Email: "admin@example.com", Role: "guest"})
	c.Jobs = append(c.Jobs, models.Job{ID: "6", Type: "internship"})

	err := c.Validate()
	require.Error(t, err)
	assert.Len(t, multierr.Errors(err), 5)
}
