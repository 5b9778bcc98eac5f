package contact

import (
	"context"
	"fmt"

	"github.com/asmirnova/circleback/internal/domain"
)

// ListContacts returns the whole contact book ordered by name.
func (s *Service) ListContacts(ctx context.Context) ([]*domain.Contact, error) {
	contacts, err := s.contacts.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	return contacts, nil
}

// RecentContacts returns up to limit contacts ordered by their most recent
// interaction, newest first. Contacts that never had an interaction are not
// included. A non-positive limit falls back to MaxRecentLimit.
func (s *Service) RecentContacts(ctx context.Context, limit int) ([]*domain.Contact, error) {
	if limit <= 0 || limit > MaxRecentLimit {
		limit = MaxRecentLimit
	}

	contacts, err := s.contacts.RecentByInteraction(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("recent contacts: %w", err)
	}

	return contacts, nil
}
