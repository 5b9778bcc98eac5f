package contact

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/asmirnova/circleback/internal/domain"
)

// DeleteContact removes a contact together with all its interaction logs.
// Deleting a contact that does not exist is not an error; the returned
// bool reports whether a row was actually removed.
func (s *Service) DeleteContact(ctx context.Context, contactID uuid.UUID) (bool, error) {
	if contactID == uuid.Nil {
		return false, domain.NewValidationError("contact_id", "required")
	}

	deleted, err := s.contacts.Delete(ctx, contactID)
	if err != nil {
		return false, fmt.Errorf("delete contact: %w", err)
	}

	if deleted {
		s.log.InfoContext(ctx, "contact deleted",
			slog.String("contact_id", contactID.String()),
		)
	}

	return deleted, nil
}
