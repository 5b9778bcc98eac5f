package contact

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/asmirnova/circleback/internal/domain"
)

// GetContact returns a single contact by ID.
func (s *Service) GetContact(ctx context.Context, contactID uuid.UUID) (*domain.Contact, error) {
	if contactID == uuid.Nil {
		return nil, domain.NewValidationError("contact_id", "required")
	}

	c, err := s.contacts.GetByID(ctx, contactID)
	if err != nil {
		return nil, fmt.Errorf("get contact: %w", err)
	}

	return c, nil
}

// GetContactByName returns the contact whose name matches exactly.
// The lookup is case-sensitive; callers wanting approximate matching
// should use SearchContacts.
func (s *Service) GetContactByName(ctx context.Context, name string) (*domain.Contact, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.NewValidationError("name", "required")
	}

	c, err := s.contacts.GetByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("get contact by name: %w", err)
	}

	return c, nil
}
