// Package interaction implements the interaction-log repository using
// PostgreSQL. Logs are append-only in normal operation; seq numbers are
// assigned at insert time and guarded by the (contact_id, seq) unique
// constraint.
package interaction

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/asmirnova/circleback/internal/adapter/postgres"
	"github.com/asmirnova/circleback/internal/domain"
)

// Repo provides interaction-log persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new interaction-log repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const logColumns = `id, contact_id, date, text, seq, created_at`

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

// appendSQL assigns the next per-contact seq in the same statement as the
// insert. Under a racing append the (contact_id, seq) constraint rejects the
// loser, which the service retries inside a fresh transaction.
const appendSQL = `
INSERT INTO logs (contact_id, date, text, seq)
SELECT $1, $2, $3, COALESCE(MAX(seq), 0) + 1
FROM logs
WHERE contact_id = $1
RETURNING ` + logColumns

const getByIDSQL = `
SELECT ` + logColumns + `
FROM logs
WHERE id = $1`

const updateTextSQL = `
UPDATE logs
SET text = $2
WHERE id = $1
RETURNING ` + logColumns

const updateDateSQL = `
UPDATE logs
SET date = $2
WHERE id = $1
RETURNING ` + logColumns

const deleteSQL = `DELETE FROM logs WHERE id = $1`

const listByContactSQL = `
SELECT ` + logColumns + `
FROM logs
WHERE contact_id = $1
ORDER BY date, seq`

const listSinceSQL = `
SELECT l.contact_id, c.name, l.date, l.text, l.seq
FROM logs l
JOIN contacts c ON c.id = l.contact_id
WHERE l.date >= $1
ORDER BY c.name, l.date, l.seq`

const lastInteractionsSQL = `
SELECT c.id, c.name, MAX(l.date)
FROM contacts c
JOIN logs l ON l.contact_id = c.id
GROUP BY c.id, c.name
ORDER BY c.name`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append inserts a log for a contact with the next free seq number.
// Returns domain.ErrNotFound if the contact does not exist (FK violation).
func (r *Repo) Append(ctx context.Context, contactID uuid.UUID, date time.Time, text string) (*domain.InteractionLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanLog(querier.QueryRow(ctx, appendSQL, contactID, date, text))
	if err != nil {
		return nil, postgres.MapError(err, "log", contactID.String())
	}

	return l, nil
}

// UpdateText replaces a log's text.
// Returns domain.ErrNotFound if the log does not exist.
func (r *Repo) UpdateText(ctx context.Context, id uuid.UUID, text string) (*domain.InteractionLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanLog(querier.QueryRow(ctx, updateTextSQL, id, text))
	if err != nil {
		return nil, postgres.MapError(err, "log", id.String())
	}

	return l, nil
}

// UpdateDate moves a log to another calendar date.
// Returns domain.ErrNotFound if the log does not exist.
func (r *Repo) UpdateDate(ctx context.Context, id uuid.UUID, date time.Time) (*domain.InteractionLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanLog(querier.QueryRow(ctx, updateDateSQL, id, date))
	if err != nil {
		return nil, postgres.MapError(err, "log", id.String())
	}

	return l, nil
}

// Delete removes a log by id.
// Returns false (not an error) if the id does not exist.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := querier.Exec(ctx, deleteSQL, id)
	if err != nil {
		return false, postgres.MapError(err, "log", id.String())
	}

	return tag.RowsAffected() > 0, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a log by primary key.
// Returns domain.ErrNotFound if the log does not exist.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.InteractionLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	l, err := scanLog(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "log", id.String())
	}

	return l, nil
}

// ListByContact returns all logs for a contact in chronological order
// (date ascending, then seq). Returns an empty slice when there are none.
func (r *Repo) ListByContact(ctx context.Context, contactID uuid.UUID) ([]domain.InteractionLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listByContactSQL, contactID)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	defer rows.Close()

	result, err := scanLogs(rows)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	return result, nil
}

// ListSince returns logs dated on or after since, joined with contact names,
// ordered by contact name then chronology. Used by the recent-logs digest.
func (r *Repo) ListSince(ctx context.Context, since time.Time) ([]domain.RecentLog, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, listSinceSQL, since)
	if err != nil {
		return nil, fmt.Errorf("list logs since: %w", err)
	}
	defer rows.Close()

	var result []domain.RecentLog
	for rows.Next() {
		var rl domain.RecentLog
		if err := rows.Scan(&rl.ContactID, &rl.ContactName, &rl.Date, &rl.Text, &rl.Seq); err != nil {
			return nil, fmt.Errorf("list logs since: %w", err)
		}
		result = append(result, rl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list logs since: %w", err)
	}

	if result == nil {
		result = []domain.RecentLog{}
	}

	return result, nil
}

// LastInteractions returns, for every contact that has at least one log,
// the date of the most recent one.
func (r *Repo) LastInteractions(ctx context.Context) ([]domain.LastInteraction, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := querier.Query(ctx, lastInteractionsSQL)
	if err != nil {
		return nil, fmt.Errorf("last interactions: %w", err)
	}
	defer rows.Close()

	var result []domain.LastInteraction
	for rows.Next() {
		var li domain.LastInteraction
		if err := rows.Scan(&li.ContactID, &li.Name, &li.LastDate); err != nil {
			return nil, fmt.Errorf("last interactions: %w", err)
		}
		result = append(result, li)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("last interactions: %w", err)
	}

	if result == nil {
		result = []domain.LastInteraction{}
	}

	return result, nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanLog(row pgx.Row) (*domain.InteractionLog, error) {
	var l domain.InteractionLog
	if err := row.Scan(&l.ID, &l.ContactID, &l.Date, &l.Text, &l.Seq, &l.CreatedAt); err != nil {
		return nil, err
	}
	return &l, nil
}

func scanLogs(rows pgx.Rows) ([]domain.InteractionLog, error) {
	var result []domain.InteractionLog
	for rows.Next() {
		var l domain.InteractionLog
		if err := rows.Scan(&l.ID, &l.ContactID, &l.Date, &l.Text, &l.Seq, &l.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if result == nil {
		result = []domain.InteractionLog{}
	}

	return result, nil
}
