package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/asmirnova/circleback/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedContact creates a contact with a unique name.
// Returns the filled domain.Contact.
func SeedContact(t *testing.T, pool *pgxpool.Pool) domain.Contact {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	telegram := "@contact_" + suffix
	contact := domain.Contact{
		ID:        uuid.New(),
		Name:      "Contact " + suffix,
		Telegram:  &telegram,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO contacts (id, name, telegram, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		contact.ID, contact.Name, *contact.Telegram, contact.CreatedAt, contact.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedContact insert: %v", err)
	}

	return contact
}

// SeedLog creates an interaction log for a contact on the given date with
// the next free seq number. Returns the filled domain.InteractionLog.
func SeedLog(t *testing.T, pool *pgxpool.Pool, contactID uuid.UUID, date time.Time, text string) domain.InteractionLog {
	t.Helper()
	ctx := context.Background()

	var l domain.InteractionLog
	err := pool.QueryRow(ctx,
		`INSERT INTO logs (contact_id, date, text, seq)
		 SELECT $1, $2, $3, COALESCE(MAX(seq), 0) + 1
		 FROM logs WHERE contact_id = $1
		 RETURNING id, contact_id, date, text, seq, created_at`,
		contactID, date, text,
	).Scan(&l.ID, &l.ContactID, &l.Date, &l.Text, &l.Seq, &l.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedLog insert: %v", err)
	}

	return l
}
