package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/justsurfingit/jobboard/internal/models"
	"github.com/justsurfingit/jobboard/internal/services"
	"github.com/justsurfingit/jobboard/internal/testutils"
	"go.uber.org/zap"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []models.JobEvent
}

func (p *recordingPublisher) Publish(event models.JobEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
}

func (p *recordingPublisher) Events() []models.JobEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]models.JobEvent(nil), p.events...)
}

type recordingNotifier struct {
	mu        sync.Mutex
	calls     []models.Application
	deadlines []bool
	err       error
}

func (n *recordingNotifier) NotifyStatusChange(ctx context.Context, app *models.Application, _ *models.Job) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	_, hasDeadline := ctx.Deadline()
	n.calls = append(n.calls, *app)
	n.deadlines = append(n.deadlines, hasDeadline)
	return n.err
}

type fixture struct {
	sessions     *services.SessionService
	jobs         *services.JobService
	applications *services.ApplicationService
	admin        *services.AdminService
	publisher    *recordingPublisher
	notifier     *recordingNotifier
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := testutils.NewSeededDB(t)
	log := zap.NewNop()
	tracker := services.NewTracker(0)
	pub := &recordingPublisher{}
	notifier := &recordingNotifier{}

	return &fixture{
		sessions:     services.NewSessionService(db, log, tracker, "currentUser"),
		jobs:         services.NewJobService(db, log, tracker, pub),
		applications: services.NewApplicationService(db, log, tracker, notifier),
		admin:        services.NewAdminService(db),
		publisher:    pub,
		notifier:     notifier,
	}
}

func ids(jobs []models.Job) []string {
	out := make([]string, len(jobs))
	for i, j := range jobs {
		out[i] = j.ID
	}
	return out
}

func ptr[T any](v T) *T { return &v }
