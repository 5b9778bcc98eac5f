package domain

import (
	"time"

	"github.com/google/uuid"
)

// Contact is a person in the address book. Name is unique across all
// contacts; the database constraint is the source of truth for that.
type Contact struct {
	ID        uuid.UUID
	Name      string
	Telegram  *string
	Phone     *string
	Birthday  *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ContactUpdateParams carries a partial update. Nil means "leave unchanged".
// For the optional fields, ptr("") clears the value (NULL in the database);
// Birthday uses ClearBirthday for the same purpose because the zero time is
// not distinguishable from "unset" through a pointer alone.
type ContactUpdateParams struct {
	Name          *string
	Telegram      *string
	Phone         *string
	Birthday      *time.Time
	ClearBirthday bool
}

// IsEmpty reports whether the update would change nothing.
func (p ContactUpdateParams) IsEmpty() bool {
	return p.Name == nil && p.Telegram == nil && p.Phone == nil &&
		p.Birthday == nil && !p.ClearBirthday
}
