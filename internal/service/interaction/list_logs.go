package interaction

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/asmirnova/circleback/internal/domain"
)

// ListGrouped returns a contact's full history as day groups, oldest day
// first; inside a day logs keep their append order.
func (s *Service) ListGrouped(ctx context.Context, contactID uuid.UUID) ([]domain.DayGroup, error) {
	if contactID == uuid.Nil {
		return nil, domain.NewValidationError("contact_id", "required")
	}

	logs, err := s.logs.ListByContact(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	groups := make([]domain.DayGroup, 0)
	for _, l := range logs {
		n := len(groups)
		if n == 0 || !groups[n-1].Date.Equal(l.Date) {
			groups = append(groups, domain.DayGroup{Date: l.Date})
			n++
		}
		groups[n-1].Logs = append(groups[n-1].Logs, l)
	}

	return groups, nil
}

// RecentDigest returns the activity of the last days calendar days grouped
// per contact, contacts in alphabetical order and each contact's texts in
// chronological order. A non-positive days falls back to DefaultDigestDays.
func (s *Service) RecentDigest(ctx context.Context, days int) ([]domain.ContactDigest, error) {
	if days <= 0 {
		days = DefaultDigestDays
	}

	since := truncateToDay(s.now()).AddDate(0, 0, -days)

	recent, err := s.logs.ListSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("recent digest: %w", err)
	}

	digests := make([]domain.ContactDigest, 0)
	for _, rl := range recent {
		n := len(digests)
		if n == 0 || digests[n-1].ContactID != rl.ContactID {
			digests = append(digests, domain.ContactDigest{
				ContactID:   rl.ContactID,
				ContactName: rl.ContactName,
			})
			n++
		}
		digests[n-1].Texts = append(digests[n-1].Texts, rl.Text)
	}

	return digests, nil
}
