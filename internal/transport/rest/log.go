package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/asmirnova/circleback/internal/domain"
	"github.com/asmirnova/circleback/internal/service/interaction"
)

// logService defines the minimal interface needed by LogHandler.
type logService interface {
	AddLog(ctx context.Context, input interaction.AddLogInput) (*domain.InteractionLog, error)
	GetLog(ctx context.Context, logID uuid.UUID) (*domain.InteractionLog, error)
	EditLogText(ctx context.Context, input interaction.EditLogTextInput) (*domain.InteractionLog, error)
	EditLogDate(ctx context.Context, input interaction.EditLogDateInput) (*domain.InteractionLog, error)
	DeleteLog(ctx context.Context, logID uuid.UUID) (bool, error)
	ListGrouped(ctx context.Context, contactID uuid.UUID) ([]domain.DayGroup, error)
	RecentDigest(ctx context.Context, days int) ([]domain.ContactDigest, error)
}

// LogHandler serves interaction-log REST endpoints.
type LogHandler struct {
	svc logService
	log *slog.Logger
}

// NewLogHandler creates a LogHandler.
func NewLogHandler(svc logService, logger *slog.Logger) *LogHandler {
	return &LogHandler{svc: svc, log: logger.With("handler", "log")}
}

type addLogRequest struct {
	Text  string  `json:"text"`
	Empty bool    `json:"empty"`
	Date  *string `json:"date"` // YYYY-MM-DD, defaults to today
}

type editLogRequest struct {
	Text  *string `json:"text"`
	Empty bool    `json:"empty"`
	Date  *string `json:"date"` // YYYY-MM-DD
}

type logResponse struct {
	ID        string `json:"id"`
	ContactID string `json:"contact_id"`
	Date      string `json:"date"`
	Text      string `json:"text"`
	Seq       int    `json:"seq"`
	CreatedAt string `json:"created_at"`
}

type dayGroupResponse struct {
	Date string        `json:"date"`
	Logs []logResponse `json:"logs"`
}

type historyResponse struct {
	Days []dayGroupResponse `json:"days"`
}

type digestEntryResponse struct {
	ContactID   string   `json:"contact_id"`
	ContactName string   `json:"contact_name"`
	Texts       []string `json:"texts"`
}

type digestResponse struct {
	Contacts []digestEntryResponse `json:"contacts"`
}

// Add handles POST /api/v1/contacts/{id}/logs.
func (h *LogHandler) Add(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	var req addLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	date, err := parseOptionalDate(req.Date, "date")
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	created, err := h.svc.AddLog(r.Context(), interaction.AddLogInput{
		ContactID: contactID,
		Text:      req.Text,
		Empty:     req.Empty,
		Date:      date,
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toLogResponse(created))
}

// Get handles GET /api/v1/logs/{id}.
func (h *LogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	l, err := h.svc.GetLog(r.Context(), id)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toLogResponse(l))
}

// Edit handles PATCH /api/v1/logs/{id}. Text and date can be changed in one
// request; each change goes through its own service call.
func (h *LogHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	var req editLogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	if req.Text == nil && !req.Empty && req.Date == nil {
		handleError(r.Context(), w, h.log, domain.NewValidationError("input", "at least one field must be provided"))
		return
	}

	var updated *domain.InteractionLog

	if req.Text != nil || req.Empty {
		text := ""
		if req.Text != nil {
			text = *req.Text
		}
		updated, err = h.svc.EditLogText(r.Context(), interaction.EditLogTextInput{
			LogID: id,
			Text:  text,
			Empty: req.Empty,
		})
		if err != nil {
			handleError(r.Context(), w, h.log, err)
			return
		}
	}

	if req.Date != nil {
		date, err := parseOptionalDate(req.Date, "date")
		if err != nil {
			handleError(r.Context(), w, h.log, err)
			return
		}
		updated, err = h.svc.EditLogDate(r.Context(), interaction.EditLogDateInput{
			LogID: id,
			Date:  *date,
		})
		if err != nil {
			handleError(r.Context(), w, h.log, err)
			return
		}
	}

	writeJSON(w, http.StatusOK, toLogResponse(updated))
}

// Delete handles DELETE /api/v1/logs/{id}.
func (h *LogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	deleted, err := h.svc.DeleteLog(r.Context(), id)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}

// History handles GET /api/v1/contacts/{id}/logs.
func (h *LogHandler) History(w http.ResponseWriter, r *http.Request) {
	contactID, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	groups, err := h.svc.ListGrouped(r.Context(), contactID)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	resp := historyResponse{Days: make([]dayGroupResponse, 0, len(groups))}
	for _, g := range groups {
		dg := dayGroupResponse{
			Date: g.Date.Format(dateLayout),
			Logs: make([]logResponse, 0, len(g.Logs)),
		}
		for i := range g.Logs {
			dg.Logs = append(dg.Logs, toLogResponse(&g.Logs[i]))
		}
		resp.Days = append(resp.Days, dg)
	}

	writeJSON(w, http.StatusOK, resp)
}

// Recent handles GET /api/v1/logs/recent?days=N.
func (h *LogHandler) Recent(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", 0)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	digests, err := h.svc.RecentDigest(r.Context(), days)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	resp := digestResponse{Contacts: make([]digestEntryResponse, 0, len(digests))}
	for _, d := range digests {
		resp.Contacts = append(resp.Contacts, digestEntryResponse{
			ContactID:   d.ContactID.String(),
			ContactName: d.ContactName,
			Texts:       d.Texts,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

func toLogResponse(l *domain.InteractionLog) logResponse {
	return logResponse{
		ID:        l.ID.String(),
		ContactID: l.ContactID.String(),
		Date:      l.Date.Format(dateLayout),
		Text:      l.Text,
		Seq:       l.Seq,
		CreatedAt: l.CreatedAt.Format(time.RFC3339),
	}
}
