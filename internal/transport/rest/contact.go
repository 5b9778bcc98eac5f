package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/asmirnova/circleback/internal/domain"
	"github.com/asmirnova/circleback/internal/service/contact"
)

// contactService defines the minimal interface needed by ContactHandler.
type contactService interface {
	CreateContact(ctx context.Context, input contact.CreateContactInput) (*domain.Contact, error)
	GetContact(ctx context.Context, contactID uuid.UUID) (*domain.Contact, error)
	GetContactByName(ctx context.Context, name string) (*domain.Contact, error)
	UpdateContact(ctx context.Context, input contact.UpdateContactInput) (*domain.Contact, error)
	DeleteContact(ctx context.Context, contactID uuid.UUID) (bool, error)
	ListContacts(ctx context.Context) ([]*domain.Contact, error)
	SearchContacts(ctx context.Context, input contact.SearchContactsInput) ([]*domain.Contact, error)
	RecentContacts(ctx context.Context, limit int) ([]*domain.Contact, error)
}

// ContactHandler serves contact REST endpoints.
type ContactHandler struct {
	svc contactService
	log *slog.Logger
}

// NewContactHandler creates a ContactHandler.
func NewContactHandler(svc contactService, logger *slog.Logger) *ContactHandler {
	return &ContactHandler{svc: svc, log: logger.With("handler", "contact")}
}

const dateLayout = "2006-01-02"

type createContactRequest struct {
	Name     string  `json:"name"`
	Telegram *string `json:"telegram"`
	Phone    *string `json:"phone"`
	Birthday *string `json:"birthday"` // YYYY-MM-DD
}

type updateContactRequest struct {
	Name          *string `json:"name"`
	Telegram      *string `json:"telegram"`
	Phone         *string `json:"phone"`
	Birthday      *string `json:"birthday"` // YYYY-MM-DD
	ClearBirthday bool    `json:"clear_birthday"`
}

type contactResponse struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Telegram  *string `json:"telegram,omitempty"`
	Phone     *string `json:"phone,omitempty"`
	Birthday  *string `json:"birthday,omitempty"`
	CreatedAt string  `json:"created_at"`
	UpdatedAt string  `json:"updated_at"`
}

type contactListResponse struct {
	Contacts []contactResponse `json:"contacts"`
}

// Create handles POST /api/v1/contacts.
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	birthday, err := parseOptionalDate(req.Birthday, "birthday")
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	created, err := h.svc.CreateContact(r.Context(), contact.CreateContactInput{
		Name:     req.Name,
		Telegram: req.Telegram,
		Phone:    req.Phone,
		Birthday: birthday,
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, toContactResponse(created))
}

// Get handles GET /api/v1/contacts/{id}.
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	c, err := h.svc.GetContact(r.Context(), id)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toContactResponse(c))
}

// GetByName handles GET /api/v1/contacts/find?name=.
func (h *ContactHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.GetContactByName(r.Context(), r.URL.Query().Get("name"))
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toContactResponse(c))
}

// List handles GET /api/v1/contacts.
func (h *ContactHandler) List(w http.ResponseWriter, r *http.Request) {
	contacts, err := h.svc.ListContacts(r.Context())
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toContactListResponse(contacts))
}

// Search handles GET /api/v1/contacts/search?q=...&limit=N&cutoff=F.
func (h *ContactHandler) Search(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}
	cutoff, err := queryFloat(r, "cutoff", 0)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	contacts, err := h.svc.SearchContacts(r.Context(), contact.SearchContactsInput{
		Query:  r.URL.Query().Get("q"),
		Limit:  limit,
		Cutoff: cutoff,
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toContactListResponse(contacts))
}

// Recent handles GET /api/v1/contacts/recent?limit=N.
func (h *ContactHandler) Recent(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 0)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	contacts, err := h.svc.RecentContacts(r.Context(), limit)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toContactListResponse(contacts))
}

// Update handles PATCH /api/v1/contacts/{id}.
func (h *ContactHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	var req updateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		return
	}

	birthday, err := parseOptionalDate(req.Birthday, "birthday")
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	updated, err := h.svc.UpdateContact(r.Context(), contact.UpdateContactInput{
		ContactID:     id,
		Name:          req.Name,
		Telegram:      req.Telegram,
		Phone:         req.Phone,
		Birthday:      birthday,
		ClearBirthday: req.ClearBirthday,
	})
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toContactResponse(updated))
}

// Delete handles DELETE /api/v1/contacts/{id}.
func (h *ContactHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id")
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	deleted, err := h.svc.DeleteContact(r.Context(), id)
	if err != nil {
		handleError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"deleted": deleted})
}

// ---------------------------------------------------------------------------
// Helpers shared with the log handler
// ---------------------------------------------------------------------------

func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		return uuid.Nil, domain.NewValidationError(name, "must be a valid UUID")
	}
	return id, nil
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}

func queryFloat(r *http.Request, name string, fallback float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be a number")
	}
	return f, nil
}

func parseOptionalDate(s *string, field string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, *s)
	if err != nil {
		return nil, domain.NewValidationError(field, "must be YYYY-MM-DD")
	}
	return &t, nil
}

func toContactResponse(c *domain.Contact) contactResponse {
	resp := contactResponse{
		ID:        c.ID.String(),
		Name:      c.Name,
		Telegram:  c.Telegram,
		Phone:     c.Phone,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
	if c.Birthday != nil {
		b := c.Birthday.Format(dateLayout)
		resp.Birthday = &b
	}
	return resp
}

func toContactListResponse(contacts []*domain.Contact) contactListResponse {
	out := contactListResponse{Contacts: make([]contactResponse, 0, len(contacts))}
	for _, c := range contacts {
		out.Contacts = append(out.Contacts, toContactResponse(c))
	}
	return out
}
