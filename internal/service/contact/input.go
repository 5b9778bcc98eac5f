package contact

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/asmirnova/circleback/internal/domain"
)

// CreateContactInput holds the parameters for creating a contact.
type CreateContactInput struct {
	Name     string
	Telegram *string
	Phone    *string
	Birthday *time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateContactInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 200 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
	}
	if i.Telegram != nil && len(strings.TrimSpace(*i.Telegram)) > 100 {
		errs = append(errs, domain.FieldError{Field: "telegram", Message: "max 100 characters"})
	}
	if i.Phone != nil && len(strings.TrimSpace(*i.Phone)) > 50 {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "max 50 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateContactInput holds the parameters for a partial contact update.
// Nil pointer fields are left unchanged; ptr("") on telegram/phone clears
// the field; ClearBirthday removes the stored birthday.
type UpdateContactInput struct {
	ContactID     uuid.UUID
	Name          *string
	Telegram      *string
	Phone         *string
	Birthday      *time.Time
	ClearBirthday bool
}

// Validate checks all fields and collects all errors.
func (i UpdateContactInput) Validate() error {
	var errs []domain.FieldError

	if i.ContactID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "contact_id", Message: "required"})
	}
	if i.Name == nil && i.Telegram == nil && i.Phone == nil && i.Birthday == nil && !i.ClearBirthday {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
		}
		if len(name) > 200 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "max 200 characters"})
		}
	}
	if i.Telegram != nil && len(*i.Telegram) > 100 {
		errs = append(errs, domain.FieldError{Field: "telegram", Message: "max 100 characters"})
	}
	if i.Phone != nil && len(*i.Phone) > 50 {
		errs = append(errs, domain.FieldError{Field: "phone", Message: "max 50 characters"})
	}
	if i.Birthday != nil && i.ClearBirthday {
		errs = append(errs, domain.FieldError{Field: "birthday", Message: "cannot set and clear at the same time"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// SearchContactsInput holds the parameters for a fuzzy name search.
// A zero Cutoff uses the resolver default.
type SearchContactsInput struct {
	Query  string
	Limit  int
	Cutoff float64
}

// Validate checks all fields and collects all errors.
func (i SearchContactsInput) Validate() error {
	var errs []domain.FieldError

	if strings.TrimSpace(i.Query) == "" {
		errs = append(errs, domain.FieldError{Field: "q", Message: "required"})
	}
	if i.Limit < 0 || i.Limit > MaxSearchLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 25"})
	}
	if i.Cutoff < 0 || i.Cutoff > 1 {
		errs = append(errs, domain.FieldError{Field: "cutoff", Message: "must be between 0 and 1"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
