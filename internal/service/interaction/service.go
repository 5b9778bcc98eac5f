// Package interaction implements the interaction-log use cases: appending
// notes to a contact's history, editing and deleting them, the per-day
// grouped listing and the recent-activity digest.
package interaction

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/asmirnova/circleback/internal/domain"
)

type logRepo interface {
	Append(ctx context.Context, contactID uuid.UUID, date time.Time, text string) (*domain.InteractionLog, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.InteractionLog, error)
	UpdateText(ctx context.Context, id uuid.UUID, text string) (*domain.InteractionLog, error)
	UpdateDate(ctx context.Context, id uuid.UUID, date time.Time) (*domain.InteractionLog, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
	ListByContact(ctx context.Context, contactID uuid.UUID) ([]domain.InteractionLog, error)
	ListSince(ctx context.Context, since time.Time) ([]domain.RecentLog, error)
}

type contactRepo interface {
	Touch(ctx context.Context, id uuid.UUID) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DefaultDigestDays is the window, in days, of the recent-activity digest.
const DefaultDigestDays = 7

// Service provides interaction-log operations.
type Service struct {
	logs     logRepo
	contacts contactRepo
	tx       txManager
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new Interaction service.
func NewService(log *slog.Logger, logs logRepo, contacts contactRepo, tx txManager) *Service {
	return &Service{
		logs:     logs,
		contacts: contacts,
		tx:       tx,
		log:      log.With("service", "interaction"),
		now:      time.Now,
	}
}

// truncateToDay drops the time-of-day component; log dates are calendar days.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
