package interaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/asmirnova/circleback/internal/domain"
)

// AddLog appends a log to a contact's history, assigning the next free
// sequence number. The append and the bump of the contact's updated_at run
// in one transaction.
func (s *Service) AddLog(ctx context.Context, input AddLogInput) (*domain.InteractionLog, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Text)
	if input.Empty {
		text = ""
	}

	date := truncateToDay(s.now())
	if input.Date != nil {
		date = truncateToDay(*input.Date)
	}

	var created *domain.InteractionLog
	run := func() error {
		return s.tx.RunInTx(ctx, func(txCtx context.Context) error {
			var appendErr error
			created, appendErr = s.logs.Append(txCtx, input.ContactID, date, text)
			if appendErr != nil {
				return fmt.Errorf("append log: %w", appendErr)
			}

			if touchErr := s.contacts.Touch(txCtx, input.ContactID); touchErr != nil {
				return fmt.Errorf("touch contact: %w", touchErr)
			}

			return nil
		})
	}

	err := run()
	// Two appends racing on the same contact collide on (contact_id, seq).
	// One fresh transaction recomputes MAX(seq) and resolves it; a second
	// collision is reported as internal, not as a conflict the caller caused.
	if errors.Is(err, domain.ErrAlreadyExists) {
		s.log.WarnContext(ctx, "log sequence collision, retrying",
			slog.String("contact_id", input.ContactID.String()),
		)
		err = run()
		if errors.Is(err, domain.ErrAlreadyExists) {
			return nil, fmt.Errorf("log sequence conflict for contact %s: %w",
				input.ContactID, domain.ErrInternal)
		}
	}
	if err != nil {
		return nil, err
	}

	s.log.InfoContext(ctx, "log appended",
		slog.String("contact_id", input.ContactID.String()),
		slog.String("log_id", created.ID.String()),
		slog.Int("seq", created.Seq),
	)

	return created, nil
}
