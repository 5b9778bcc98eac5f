package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/asmirnova/circleback/internal/domain"
	"github.com/asmirnova/circleback/internal/service/contact/fuzzy"
)

// SearchContacts finds contacts whose names approximately match the query.
// Matching is case-insensitive and tolerant of typos; results come back
// best match first. A zero limit or cutoff uses the resolver defaults.
func (s *Service) SearchContacts(ctx context.Context, input SearchContactsInput) ([]*domain.Contact, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	names, err := s.contacts.Names(ctx)
	if err != nil {
		return nil, fmt.Errorf("search contacts: %w", err)
	}

	cutoff := input.Cutoff
	if cutoff == 0 {
		cutoff = fuzzy.DefaultCutoff
	}
	matches := fuzzy.CloseMatches(strings.TrimSpace(input.Query), names, input.Limit, cutoff)

	result := make([]*domain.Contact, 0, len(matches))
	for _, name := range matches {
		c, err := s.contacts.GetByName(ctx, name)
		if err != nil {
			// The contact may have been deleted between the two queries.
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("search contacts: %w", err)
		}
		result = append(result, c)
	}

	return result, nil
}
