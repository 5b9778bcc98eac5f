package interaction

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/asmirnova/circleback/internal/domain"
)

// GetLog returns a single log by ID.
func (s *Service) GetLog(ctx context.Context, logID uuid.UUID) (*domain.InteractionLog, error) {
	if logID == uuid.Nil {
		return nil, domain.NewValidationError("log_id", "required")
	}

	l, err := s.logs.GetByID(ctx, logID)
	if err != nil {
		return nil, fmt.Errorf("get log: %w", err)
	}

	return l, nil
}

// EditLogText replaces a log's text. Seq and date stay as they were.
func (s *Service) EditLogText(ctx context.Context, input EditLogTextInput) (*domain.InteractionLog, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(input.Text)
	if input.Empty {
		text = ""
	}

	updated, err := s.logs.UpdateText(ctx, input.LogID, text)
	if err != nil {
		return nil, fmt.Errorf("edit log text: %w", err)
	}

	s.log.InfoContext(ctx, "log text edited",
		slog.String("log_id", updated.ID.String()),
	)

	return updated, nil
}

// EditLogDate moves a log to another calendar day.
func (s *Service) EditLogDate(ctx context.Context, input EditLogDateInput) (*domain.InteractionLog, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.logs.UpdateDate(ctx, input.LogID, truncateToDay(input.Date))
	if err != nil {
		return nil, fmt.Errorf("edit log date: %w", err)
	}

	s.log.InfoContext(ctx, "log date edited",
		slog.String("log_id", updated.ID.String()),
		slog.String("date", updated.Date.Format("2006-01-02")),
	)

	return updated, nil
}

// DeleteLog removes a log by ID. The returned bool reports whether a row
// was actually removed; deleting an unknown id is not an error.
func (s *Service) DeleteLog(ctx context.Context, logID uuid.UUID) (bool, error) {
	if logID == uuid.Nil {
		return false, domain.NewValidationError("log_id", "required")
	}

	deleted, err := s.logs.Delete(ctx, logID)
	if err != nil {
		return false, fmt.Errorf("delete log: %w", err)
	}

	if deleted {
		s.log.InfoContext(ctx, "log deleted",
			slog.String("log_id", logID.String()),
		)
	}

	return deleted, nil
}
