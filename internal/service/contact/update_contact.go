package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/asmirnova/circleback/internal/domain"
)

// UpdateContact applies a partial update to a contact. Renaming onto a name
// another contact already holds fails with domain.ErrAlreadyExists and leaves
// both contacts untouched.
func (s *Service) UpdateContact(ctx context.Context, input UpdateContactInput) (*domain.Contact, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	params := domain.ContactUpdateParams{
		Telegram:      input.Telegram,
		Phone:         input.Phone,
		Birthday:      input.Birthday,
		ClearBirthday: input.ClearBirthday,
	}
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		params.Name = &trimmed
	}

	updated, err := s.contacts.Update(ctx, input.ContactID, params)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) && params.Name != nil {
			return nil, fmt.Errorf("contact %q already exists: %w", *params.Name, domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("update contact: %w", err)
	}

	s.log.InfoContext(ctx, "contact updated",
		slog.String("contact_id", updated.ID.String()),
		slog.String("name", updated.Name),
	)

	return updated, nil
}
