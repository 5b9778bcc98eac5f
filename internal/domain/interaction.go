package domain

import (
	"time"

	"github.com/google/uuid"
)

// InteractionLog is one timestamped note about a contact. Logs are owned by
// exactly one contact and are removed when the contact is deleted.
// Seq is a stable per-contact ordinal used for user-facing references
// ("log #3"); it never changes once assigned.
type InteractionLog struct {
	ID        uuid.UUID
	ContactID uuid.UUID
	Date      time.Time
	Text      string
	Seq       int
	CreatedAt time.Time
}

// DayGroup is one calendar day of a contact's history, oldest first inside
// the listing.
type DayGroup struct {
	Date time.Time
	Logs []InteractionLog
}

// RecentLog is a log row joined with its owning contact's name, produced by
// the digest query over a date window.
type RecentLog struct {
	ContactID   uuid.UUID
	ContactName string
	Date        time.Time
	Text        string
	Seq         int
}

// LastInteraction pairs a contact with the date of its newest log.
type LastInteraction struct {
	ContactID uuid.UUID
	Name      string
	LastDate  time.Time
}

// ContactDigest is the recent activity of one contact: the log texts written
// within the digest window, newest contact first in the overall listing.
type ContactDigest struct {
	ContactID   uuid.UUID
	ContactName string
	Texts       []string
}

// ActivityRecord pairs a contact with the number of whole days since its
// most recent interaction log. Derived on demand, never persisted.
type ActivityRecord struct {
	Name     string `json:"name"`
	DayCount int    `json:"day_count"`
}
