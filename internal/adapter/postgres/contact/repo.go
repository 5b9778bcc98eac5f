// Package contact implements the contact repository using PostgreSQL.
// The contacts_name_unique constraint is the source of truth for name
// uniqueness: violations surface as domain.ErrAlreadyExists from the
// INSERT/UPDATE itself, inside the caller's transaction, so there is no
// check-then-write race.
package contact

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/asmirnova/circleback/internal/adapter/postgres"
	"github.com/asmirnova/circleback/internal/domain"
)

// Repo provides contact persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new contact repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const contactColumns = `id, name, telegram, phone, birthday, created_at, updated_at`

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO contacts (name, telegram, phone, birthday)
VALUES ($1, $2, $3, $4)
RETURNING ` + contactColumns

const getByIDSQL = `
SELECT ` + contactColumns + `
FROM contacts
WHERE id = $1`

const getByNameSQL = `
SELECT ` + contactColumns + `
FROM contacts
WHERE name = $1`

const listSQL = `
SELECT ` + contactColumns + `
FROM contacts
ORDER BY name`

const namesSQL = `
SELECT name
FROM contacts
ORDER BY name`

const deleteSQL = `DELETE FROM contacts WHERE id = $1`

const touchSQL = `UPDATE contacts SET updated_at = now() WHERE id = $1`

const recentByInteractionSQL = `
SELECT c.id, c.name, c.telegram, c.phone, c.birthday, c.created_at, c.updated_at
FROM contacts c
JOIN logs l ON l.contact_id = c.id
GROUP BY c.id
ORDER BY MAX(l.date) DESC, c.name
LIMIT $1`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a contact by primary key.
// Returns domain.ErrNotFound if the contact does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanContact(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "contact", id.String())
	}

	return c, nil
}

// GetByName returns a contact by its exact, case-sensitive name.
// Returns domain.ErrNotFound if no contact carries that name.
func (r *Repo) GetByName(ctx context.Context, name string) (*domain.Contact, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanContact(querier.QueryRow(ctx, getByNameSQL, name))
	if err != nil {
		return nil, postgres.MapError(err, "contact", name)
	}

	return c, nil
}

// List returns all contacts ordered by name.
// Returns an empty slice (not nil) when the book is empty.
func (r *Repo) List(ctx context.Context) ([]*domain.Contact, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSQL)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}
	defer rows.Close()

	result, err := scanContacts(rows)
	if err != nil {
		return nil, fmt.Errorf("list contacts: %w", err)
	}

	return result, nil
}

// Names returns all contact names ordered alphabetically. This is the
// candidate set handed to the fuzzy resolver; it keeps search from loading
// full rows when only names are compared.
func (r *Repo) Names(ctx context.Context) ([]string, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, namesSQL)
	if err != nil {
		return nil, fmt.Errorf("list contact names: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list contact names: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list contact names: %w", err)
	}

	if names == nil {
		names = []string{}
	}

	return names, nil
}

// RecentByInteraction returns up to limit contacts ordered by their most
// recent interaction log, newest first. Contacts with no logs are excluded.
func (r *Repo) RecentByInteraction(ctx context.Context, limit int) ([]*domain.Contact, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, recentByInteractionSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("recent contacts: %w", err)
	}
	defer rows.Close()

	result, err := scanContacts(rows)
	if err != nil {
		return nil, fmt.Errorf("recent contacts: %w", err)
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new contact and returns the persisted record.
// Returns domain.ErrAlreadyExists if a contact with the same name exists.
func (r *Repo) Create(ctx context.Context, c *domain.Contact) (*domain.Contact, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanContact(querier.QueryRow(ctx, createSQL,
		c.Name,
		ptrStringToPgText(c.Telegram),
		ptrStringToPgText(c.Phone),
		ptrTimeToPgDate(c.Birthday),
	))
	if err != nil {
		return nil, postgres.MapError(err, "contact", c.Name)
	}

	return created, nil
}

// Update applies a partial update built with squirrel: only supplied fields
// are touched. ptr("") on telegram/phone and ClearBirthday set NULL.
// Returns domain.ErrNotFound if the contact does not exist and
// domain.ErrAlreadyExists if a renamed contact collides with another name.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, params domain.ContactUpdateParams) (*domain.Contact, error) {
	if params.IsEmpty() {
		return r.GetByID(ctx, id)
	}

	update := sq.Update("contacts").
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING " + contactColumns).
		PlaceholderFormat(sq.Dollar)

	if params.Name != nil {
		update = update.Set("name", *params.Name)
	}
	if params.Telegram != nil {
		update = update.Set("telegram", emptyToNull(*params.Telegram))
	}
	if params.Phone != nil {
		update = update.Set("phone", emptyToNull(*params.Phone))
	}
	switch {
	case params.ClearBirthday:
		update = update.Set("birthday", nil)
	case params.Birthday != nil:
		update = update.Set("birthday", pgtype.Date{Time: *params.Birthday, Valid: true})
	}

	sqlStr, args, err := update.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build contact update: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.pool)

	updated, err := scanContact(querier.QueryRow(ctx, sqlStr, args...))
	if err != nil {
		return nil, postgres.MapError(err, "contact", id.String())
	}

	return updated, nil
}

// Touch bumps a contact's updated_at timestamp. Used when an interaction log
// is appended so the parent row reflects the activity.
// Returns domain.ErrNotFound if the contact does not exist.
func (r *Repo) Touch(ctx context.Context, id uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, touchSQL, id)
	if err != nil {
		return postgres.MapError(err, "contact", id.String())
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("contact %s: %w", id, domain.ErrNotFound)
	}

	return nil
}

// Delete removes a contact; owned logs go with it via ON DELETE CASCADE.
// Returns false (not an error) if the id does not exist, so delete is idempotent.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return false, postgres.MapError(err, "contact", id.String())
	}

	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanContact(row pgx.Row) (*domain.Contact, error) {
	var (
		id        uuid.UUID
		name      string
		telegram  pgtype.Text
		phone     pgtype.Text
		birthday  pgtype.Date
		createdAt time.Time
		updatedAt time.Time
	)

	if err := row.Scan(&id, &name, &telegram, &phone, &birthday, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	return buildContact(id, name, telegram, phone, birthday, createdAt, updatedAt), nil
}

func scanContacts(rows pgx.Rows) ([]*domain.Contact, error) {
	var result []*domain.Contact
	for rows.Next() {
		var (
			id        uuid.UUID
			name      string
			telegram  pgtype.Text
			phone     pgtype.Text
			birthday  pgtype.Date
			createdAt time.Time
			updatedAt time.Time
		)

		if err := rows.Scan(&id, &name, &telegram, &phone, &birthday, &createdAt, &updatedAt); err != nil {
			return nil, err
		}
		result = append(result, buildContact(id, name, telegram, phone, birthday, createdAt, updatedAt))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []*domain.Contact{}
	}

	return result, nil
}

func buildContact(id uuid.UUID, name string, telegram, phone pgtype.Text, birthday pgtype.Date, createdAt, updatedAt time.Time) *domain.Contact {
	c := &domain.Contact{
		ID:        id,
		Name:      name,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}

	if telegram.Valid {
		c.Telegram = &telegram.String
	}
	if phone.Valid {
		c.Phone = &phone.String
	}
	if birthday.Valid {
		t := birthday.Time
		c.Birthday = &t
	}

	return c
}

// ---------------------------------------------------------------------------
// pgtype helpers
// ---------------------------------------------------------------------------

// ptrStringToPgText converts a *string to pgtype.Text (nil -> NULL).
func ptrStringToPgText(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// ptrTimeToPgDate converts a *time.Time to pgtype.Date (nil -> NULL).
func ptrTimeToPgDate(t *time.Time) pgtype.Date {
	if t == nil {
		return pgtype.Date{}
	}
	return pgtype.Date{Time: *t, Valid: true}
}

// emptyToNull maps "" to NULL so ptr("") clears an optional text column.
func emptyToNull(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}
