package database_test

import (
	"context"
	"testing"

	"github.com/justsurfingit/jobboard/internal/catalog"
	"github.com/justsurfingit/jobboard/internal/config"
	"github.com/justsurfingit/jobboard/internal/database"
	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestConnect_UnsupportedDriver(t *testing.T) {
	_, err := database.Connect(config.DatabaseConfig{Driver: "oracle", DSN: "x"}, zap.NewNop())
	assert.Error(t, err)
}

func TestSeed_LoadsCatalogOnce(t *testing.T) {
	ctx := context.Background()
	db := testutils.NewDB(t)

	seeded, err := database.Seed(ctx, db, catalog.Default())
	require.NoError(t, err)
	assert.True(t, seeded)

	seeded, err = database.Seed(ctx, db, catalog.Default())
	require.NoError(t, err)
	assert.False(t, seeded)

	var users, jobs, apps int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	require.NoError(t, db.Model(&models.Job{}).Count(&jobs).Error)
	require.NoError(t, db.Model(&models.Application{}).Count(&apps).Error)
	assert.Equal(t, int64(3), users)
	assert.Equal(t, int64(6), jobs)
	assert.Equal(t, int64(2), apps)
}

func TestSeed_RoundTripsJobFields(t *testing.T) {
	db := testutils.NewSeededDB(t)

	var job models.Job
	require.NoError(t, db.First(&job, "id = ?", "1").Error)
	want := catalog.Default().Jobs[0]
	assert.Equal(t, want.Requirements, job.Requirements)
	require.NotNil(t, job.Salary)
	assert.Equal(t, *want.Salary, *job.Salary)
	require.NotNil(t, job.Deadline)
	assert.True(t, want.Deadline.Equal(*job.Deadline))
	assert.True(t, job.IsActive)
	assert.Equal(t, models.JobTypeFullTime, job.Type)
}

func TestNextID_ContinuesAfterSeed(t *testing.T) {
	db := testutils.NewSeededDB(t)

	err := db.Transaction(func(tx *gorm.DB) error {
		seq, id, err := database.NextID(tx, database.SeqApplications)
		require.NoError(t, err)
		assert.Equal(t, uint64(3), seq)
		assert.Equal(t, "3", id)

		_, id, err = database.NextID(tx, database.SeqApplications)
		require.NoError(t, err)
		assert.Equal(t, "4", id)

		_, id, err = database.NextID(tx, database.SeqJobs)
		require.NoError(t, err)
		assert.Equal(t, "7", id)
		return nil
	})
	require.NoError(t, err)
}

func TestNextID_StartsAtOne(t *testing.T) {
	db := testutils.NewDB(t)

	_, id, err := database.NextID(db, "widgets")
	require.NoError(t, err)
	assert.Equal(t, "1", id)
}

func TestSetSequence_NeverMovesBackwards(t *testing.T) {
	db := testutils.NewDB(t)

	require.NoError(t, database.SetSequence(db, "widgets", 10))
	require.NoError(t, database.SetSequence(db, "widgets", 4))

	_, id, err := database.NextID(db, "widgets")
	require.NoError(t, err)
	assert.Equal(t, "11", id)
}
