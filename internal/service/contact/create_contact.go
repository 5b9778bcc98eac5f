package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/asmirnova/circleback/internal/domain"
)

// CreateContact creates a new contact. The name must be unique across the
// whole book; the database constraint decides, so two concurrent creates with
// the same name cannot both succeed.
func (s *Service) CreateContact(ctx context.Context, input CreateContactInput) (*domain.Contact, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.contacts.Create(ctx, &domain.Contact{
		Name:     strings.TrimSpace(input.Name),
		Telegram: trimOrNil(input.Telegram),
		Phone:    trimOrNil(input.Phone),
		Birthday: input.Birthday,
	})
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("contact %q already exists: %w", strings.TrimSpace(input.Name), domain.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("create contact: %w", err)
	}

	s.log.InfoContext(ctx, "contact created",
		slog.String("contact_id", created.ID.String()),
		slog.String("name", created.Name),
	)

	return created, nil
}
