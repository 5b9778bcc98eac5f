// Package stats derives reporting figures from the interaction history.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/asmirnova/circleback/internal/domain"
)

type lastInteractionRepo interface {
	LastInteractions(ctx context.Context) ([]domain.LastInteraction, error)
}

// Service provides statistics over the contact book.
type Service struct {
	logs lastInteractionRepo
	log  *slog.Logger
	now  func() time.Time
}

// NewService creates a new Stats service.
func NewService(log *slog.Logger, logs lastInteractionRepo) *Service {
	return &Service{
		logs: logs,
		log:  log.With("service", "stats"),
		now:  time.Now,
	}
}

// DaysSinceLastInteraction reports, for every contact with at least one log,
// how many whole calendar days have passed since the newest one. Contacts
// that were never interacted with do not appear. Records are ordered by day
// count descending, longest-quiet contacts first; ties keep alphabetical
// order.
func (s *Service) DaysSinceLastInteraction(ctx context.Context) ([]domain.ActivityRecord, error) {
	lasts, err := s.logs.LastInteractions(ctx)
	if err != nil {
		return nil, fmt.Errorf("days since last interaction: %w", err)
	}

	today := truncateToDay(s.now())

	records := make([]domain.ActivityRecord, 0, len(lasts))
	for _, li := range lasts {
		days := int(today.Sub(truncateToDay(li.LastDate)).Hours() / 24)
		if days < 0 {
			days = 0
		}
		records = append(records, domain.ActivityRecord{
			Name:     li.Name,
			DayCount: days,
		})
	}

	// The repo yields alphabetical order, a stable sort preserves it on ties.
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].DayCount > records[j].DayCount
	})

	return records, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
