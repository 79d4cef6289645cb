package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
)

func TestNotifyWithoutClientIsSkipped(t *testing.T) {
	svc := NewEmailService(nil, "", zap.NewNop())
	err := svc.NotifyStatusChange(context.Background(),
		&models.Application{ID: "1", Email: "a@example.com", Status: models.StatusReviewed},
		&models.Job{Title: "Engineer", Company: "Acme"},
	)
	assert.NoError(t, err)
}

func TestEncodeMessage(t *testing.T) {
	raw := encodeMessage("jobs@acme.test", "jane@example.com", "Hi", "Body text")
	decoded, err := base64.URLEncoding.DecodeString(raw)
	require.NoError(t, err)

	msg := string(decoded)
	assert.Contains(t, msg, "From: jobs@acme.test\r\n")
	assert.Contains(t, msg, "To: jane@example.com\r\n")
	assert.Contains(t, msg, "Subject: Hi\r\n")
	assert.Contains(t, msg, "\r\n\r\nBody text")
}

func TestRetry(t *testing.T) {
	t.Run("stops on client error", func(t *testing.T) {
		calls := 0
		err := retry(context.Background(), 3, time.Millisecond, func() error {
			calls++
			return &googleapi.Error{Code: 403}
		})
		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries transient errors", func(t *testing.T) {
		calls := 0
		err := retry(context.Background(), 3, time.Millisecond, func() error {
			calls++
			if calls < 3 {
				return &googleapi.Error{Code: 503}
			}
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("gives up", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := retry(context.Background(), 2, time.Millisecond, func() error { return cause })
		assert.ErrorIs(t, err, cause)
		assert.EqualError(t, err, fmt.Sprintf("failed after 2 attempts: %v", cause))
	})

	t.Run("stops waiting when the context ends", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cause := &googleapi.Error{Code: 503}
		calls := 0
		start := time.Now()
		err := retry(ctx, 3, time.Hour, func() error {
			calls++
			cancel()
			return cause
		})
		assert.Less(t, time.Since(start), time.Second)
		assert.Equal(t, 1, calls)
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, err, cause)
	})
}
