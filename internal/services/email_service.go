package services

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/justsurfingit/jobboard/internal/models"
	"go.uber.org/zap"
	"google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
)

// EmailService sends applicant notifications through the Gmail API. With no
// client configured every notification is skipped.
type EmailService struct {
	GmailClient *gmail.Service
	Sender      string
	Log         *zap.Logger
}

func NewEmailService(gmailClient *gmail.Service, sender string, log *zap.Logger) *EmailService {
	if gmailClient == nil {
		log.Warn("Gmail notifications disabled (no client). Check credentials.")
	}
	return &EmailService{
		GmailClient: gmailClient,
		Sender:      sender,
		Log:         log,
	}
}

func (s *EmailService) NotifyStatusChange(ctx context.Context, app *models.Application, job *models.Job) error {
	if s.GmailClient == nil {
		return nil
	}

	subject := fmt.Sprintf("Update on your application to %s", job.Company)
	body := fmt.Sprintf(
		"Hello %s,\n\nThe status of your application for %q at %s is now: %s.\n",
		app.Name, job.Title, job.Company, app.Status,
	)
	msg := &gmail.Message{Raw: encodeMessage(s.Sender, app.Email, subject, body)}

	err := retry(ctx, 3, 500*time.Millisecond, func() error {
		_, err := s.GmailClient.Users.Messages.Send("me", msg).Context(ctx).Do()
		return err
	})
	if err != nil {
		return fmt.Errorf("send status email: %w", err)
	}

	s.Log.Info("status email sent", zap.String("application_id", app.ID), zap.String("to", app.Email))
	return nil
}

func encodeMessage(from, to, subject, body string) string {
	var b strings.Builder
	if from != "" {
		fmt.Fprintf(&b, "From: %s\r\n", from)
	}
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"UTF-8\"\r\n\r\n")
	b.WriteString(body)
	return base64.URLEncoding.EncodeToString([]byte(b.String()))
}

// retry executes f with exponential backoff. Client errors (4xx) are not
// retried, and waiting stops as soon as ctx is done.
func retry(ctx context.Context, attempts int, sleep time.Duration, f func() error) error {
	var err error
	for i := 0; i < attempts; i++ {
		if err = f(); err == nil {
			return nil
		}
		if isPermanentError(err) {
			return err
		}
		if i < attempts-1 {
			timer := time.NewTimer(sleep)
			select {
			case <-ctx.Done():
				timer.Stop()
				return fmt.Errorf("gave up after %d attempts: %w", i+1, errors.Join(err, ctx.Err()))
			case <-timer.C:
			}
			sleep *= 2
		}
	}
	return fmt.Errorf("failed after %d attempts: %w", attempts, err)
}

func isPermanentError(err error) bool {
	var gErr *googleapi.Error
	if errors.As(err, &gErr) {
		return gErr.Code >= 400 && gErr.Code < 500
	}
	return false
}
