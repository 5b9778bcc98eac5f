// Package contact implements contact book use cases: CRUD over contacts,
// fuzzy name search and the recently-interacted listing.
package contact

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/asmirnova/circleback/internal/domain"
)

type contactRepo interface {
	Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error)
	GetByName(ctx context.Context, name string) (*domain.Contact, error)
	List(ctx context.Context) ([]*domain.Contact, error)
	Names(ctx context.Context) ([]string, error)
	RecentByInteraction(ctx context.Context, limit int) ([]*domain.Contact, error)
	Update(ctx context.Context, id uuid.UUID, params domain.ContactUpdateParams) (*domain.Contact, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

const (
	// MaxRecentLimit caps the recently-interacted listing.
	MaxRecentLimit = 50
	// MaxSearchLimit caps the fuzzy search result size.
	MaxSearchLimit = 25
)

// Service provides contact management operations.
type Service struct {
	contacts contactRepo
	log      *slog.Logger
}

// NewService creates a new Contact service.
func NewService(log *slog.Logger, contacts contactRepo) *Service {
	return &Service{
		contacts: contacts,
		log:      log.With("service", "contact"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
