package interaction

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/asmirnova/circleback/internal/domain"
)

// MaxLogTextLength bounds a single log's text.
const MaxLogTextLength = 4000

// AddLogInput holds the parameters for appending a log to a contact.
// Empty marks an intentionally empty entry (the interaction happened but
// nothing was written down); without it blank text is rejected.
type AddLogInput struct {
	ContactID uuid.UUID
	Text      string
	Empty     bool
	Date      *time.Time // nil = today
}

// Validate checks all fields and collects all errors.
func (i AddLogInput) Validate() error {
	var errs []domain.FieldError

	if i.ContactID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "contact_id", Message: "required"})
	}
	if !i.Empty && strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required unless empty is set"})
	}
	if len(i.Text) > MaxLogTextLength {
		errs = append(errs, domain.FieldError{Field: "text", Message: "max 4000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditLogTextInput holds the parameters for replacing a log's text.
type EditLogTextInput struct {
	LogID uuid.UUID
	Text  string
	Empty bool
}

// Validate checks all fields and collects all errors.
func (i EditLogTextInput) Validate() error {
	var errs []domain.FieldError

	if i.LogID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "log_id", Message: "required"})
	}
	if !i.Empty && strings.TrimSpace(i.Text) == "" {
		errs = append(errs, domain.FieldError{Field: "text", Message: "required unless empty is set"})
	}
	if len(i.Text) > MaxLogTextLength {
		errs = append(errs, domain.FieldError{Field: "text", Message: "max 4000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditLogDateInput holds the parameters for moving a log to another day.
type EditLogDateInput struct {
	LogID uuid.UUID
	Date  time.Time
}

// Validate checks all fields and collects all errors.
func (i EditLogDateInput) Validate() error {
	var errs []domain.FieldError

	if i.LogID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "log_id", Message: "required"})
	}
	if i.Date.IsZero() {
		errs = append(errs, domain.FieldError{Field: "date", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
