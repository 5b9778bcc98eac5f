// Package client is the typed HTTP client the bot front end uses to call the
// API. API error statuses are mapped back onto the domain sentinels so bot
// code can branch with errors.Is instead of inspecting status codes.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/asmirnova/circleback/internal/domain"
)

// tokenMinter issues a fresh service token for outgoing requests.
type tokenMinter interface {
	Mint(subject string) (string, error)
}

// ServiceName is the token subject the bot presents to the API.
const ServiceName = "bot"

// Client calls the circleback API on behalf of the bot.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     tokenMinter
	log        *slog.Logger
}

// New creates a Client. baseURL points at the API prefix, e.g.
// "http://localhost:8080/api/v1".
func New(baseURL string, tokens tokenMinter, logger *slog.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		tokens:     tokens,
		log:        logger.With("adapter", "apiclient"),
	}
}

// ---------------------------------------------------------------------------
// Wire types (mirror the REST responses)
// ---------------------------------------------------------------------------

// Contact is the API representation of a contact.
type Contact struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Telegram *string `json:"telegram,omitempty"`
	Phone    *string `json:"phone,omitempty"`
	Birthday *string `json:"birthday,omitempty"`
}

// Log is the API representation of one interaction log.
type Log struct {
	ID        string `json:"id"`
	ContactID string `json:"contact_id"`
	Date      string `json:"date"`
	Text      string `json:"text"`
	Seq       int    `json:"seq"`
}

// DayGroup is one calendar day of a contact's history.
type DayGroup struct {
	Date string `json:"date"`
	Logs []Log  `json:"logs"`
}

// Digest is one contact's recent activity.
type Digest struct {
	ContactID   string   `json:"contact_id"`
	ContactName string   `json:"contact_name"`
	Texts       []string `json:"texts"`
}

// ContactParams carries the writable contact fields for create and update.
type ContactParams struct {
	Name          *string `json:"name,omitempty"`
	Telegram      *string `json:"telegram,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Birthday      *string `json:"birthday,omitempty"`
	ClearBirthday bool    `json:"clear_birthday,omitempty"`
}

// LogParams carries the writable log fields.
type LogParams struct {
	Text  *string `json:"text,omitempty"`
	Empty bool    `json:"empty,omitempty"`
	Date  *string `json:"date,omitempty"`
}

type contactList struct {
	Contacts []Contact `json:"contacts"`
}

type history struct {
	Days []DayGroup `json:"days"`
}

type digestList struct {
	Contacts []Digest `json:"contacts"`
}

type activityList struct {
	Records []domain.ActivityRecord `json:"records"`
}

type deleteResult struct {
	Deleted bool `json:"deleted"`
}

// ---------------------------------------------------------------------------
// Contact calls
// ---------------------------------------------------------------------------

// CreateContact creates a new contact.
func (c *Client) CreateContact(ctx context.Context, name string, params ContactParams) (*Contact, error) {
	params.Name = &name
	var out Contact
	if err := c.call(ctx, http.MethodPost, "/contacts", params, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetContact returns a contact by id.
func (c *Client) GetContact(ctx context.Context, id string) (*Contact, error) {
	var out Contact
	if err := c.call(ctx, http.MethodGet, "/contacts/"+url.PathEscape(id), nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetContactByName returns the contact with exactly this name.
func (c *Client) GetContactByName(ctx context.Context, name string) (*Contact, error) {
	q := url.Values{}
	q.Set("name", name)
	var out Contact
	if err := c.call(ctx, http.MethodGet, "/contacts/find?"+q.Encode(), nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListContacts returns the whole contact book ordered by name.
func (c *Client) ListContacts(ctx context.Context) ([]Contact, error) {
	var out contactList
	if err := c.call(ctx, http.MethodGet, "/contacts", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out.Contacts, nil
}

// SearchContacts returns contacts with names similar to query, best first.
// Zero limit and cutoff fall back to the server defaults.
func (c *Client) SearchContacts(ctx context.Context, query string, limit int, cutoff float64) ([]Contact, error) {
	q := url.Values{}
	q.Set("q", query)
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}
	if cutoff > 0 {
		q.Set("cutoff", strconv.FormatFloat(cutoff, 'g', -1, 64))
	}
	var out contactList
	if err := c.call(ctx, http.MethodGet, "/contacts/search?"+q.Encode(), nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out.Contacts, nil
}

// RecentContacts returns contacts ordered by most recent interaction.
func (c *Client) RecentContacts(ctx context.Context, limit int) ([]Contact, error) {
	path := "/contacts/recent"
	if limit > 0 {
		path += "?limit=" + fmt.Sprint(limit)
	}
	var out contactList
	if err := c.call(ctx, http.MethodGet, path, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out.Contacts, nil
}

// UpdateContact applies a partial update to a contact.
func (c *Client) UpdateContact(ctx context.Context, id string, params ContactParams) (*Contact, error) {
	var out Contact
	if err := c.call(ctx, http.MethodPatch, "/contacts/"+url.PathEscape(id), params, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteContact removes a contact and its logs. Returns whether anything
// was actually deleted.
func (c *Client) DeleteContact(ctx context.Context, id string) (bool, error) {
	var out deleteResult
	if err := c.call(ctx, http.MethodDelete, "/contacts/"+url.PathEscape(id), nil, http.StatusOK, &out); err != nil {
		return false, err
	}
	return out.Deleted, nil
}

// ---------------------------------------------------------------------------
// Log calls
// ---------------------------------------------------------------------------

// AddLog appends a log to a contact's history.
func (c *Client) AddLog(ctx context.Context, contactID string, params LogParams) (*Log, error) {
	var out Log
	path := "/contacts/" + url.PathEscape(contactID) + "/logs"
	if err := c.call(ctx, http.MethodPost, path, params, http.StatusCreated, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetLog returns a log by id.
func (c *Client) GetLog(ctx context.Context, id string) (*Log, error) {
	var out Log
	if err := c.call(ctx, http.MethodGet, "/logs/"+url.PathEscape(id), nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// EditLog changes a log's text and/or date.
func (c *Client) EditLog(ctx context.Context, id string, params LogParams) (*Log, error) {
	var out Log
	if err := c.call(ctx, http.MethodPatch, "/logs/"+url.PathEscape(id), params, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteLog removes a log. Returns whether anything was actually deleted.
func (c *Client) DeleteLog(ctx context.Context, id string) (bool, error) {
	var out deleteResult
	if err := c.call(ctx, http.MethodDelete, "/logs/"+url.PathEscape(id), nil, http.StatusOK, &out); err != nil {
		return false, err
	}
	return out.Deleted, nil
}

// History returns a contact's logs grouped by day.
func (c *Client) History(ctx context.Context, contactID string) ([]DayGroup, error) {
	var out history
	path := "/contacts/" + url.PathEscape(contactID) + "/logs"
	if err := c.call(ctx, http.MethodGet, path, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out.Days, nil
}

// RecentDigest returns per-contact activity of the last days calendar days.
func (c *Client) RecentDigest(ctx context.Context, days int) ([]Digest, error) {
	path := "/logs/recent"
	if days > 0 {
		path += "?days=" + fmt.Sprint(days)
	}
	var out digestList
	if err := c.call(ctx, http.MethodGet, path, nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out.Contacts, nil
}

// DaysSinceLastInteraction returns the activity report records.
func (c *Client) DaysSinceLastInteraction(ctx context.Context) ([]domain.ActivityRecord, error) {
	var out activityList
	if err := c.call(ctx, http.MethodGet, "/stats/days-since-last-interaction", nil, http.StatusOK, &out); err != nil {
		return nil, err
	}
	return out.Records, nil
}

// ---------------------------------------------------------------------------
// Transport plumbing
// ---------------------------------------------------------------------------

// call performs one API request: mints a token, sends the payload, retries
// once on 5xx or network failure, and decodes the response into out.
func (c *Client) call(ctx context.Context, method, path string, payload any, wantStatus int, out any) error {
	var body []byte
	if payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("apiclient: encode payload: %w", err)
		}
	}

	token, err := c.tokens.Mint(ServiceName)
	if err != nil {
		return fmt.Errorf("apiclient: mint token: %w", err)
	}

	resp, err := c.doWithRetry(ctx, method, c.baseURL+path, token, body)
	if err != nil {
		c.log.ErrorContext(ctx, "api request failed",
			slog.String("method", method),
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("apiclient: %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return c.statusError(method, path, resp)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("apiclient: decode response: %w", err)
		}
	}

	return nil
}

// doWithRetry executes the request with a single retry on 5xx or network
// errors. The request is rebuilt per attempt so the body can be resent.
func (c *Client) doWithRetry(ctx context.Context, method, reqURL, token string, body []byte) (*http.Response, error) {
	do := func() (*http.Response, error) {
		var reader io.Reader
		if body != nil {
			reader = bytes.NewReader(body)
		}
		req, err := http.NewRequestWithContext(ctx, method, reqURL, reader)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Authorization", "Bearer "+token)
		if body != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		return c.httpClient.Do(req)
	}

	resp, err := do()

	shouldRetry := err != nil || resp.StatusCode >= 500
	if !shouldRetry {
		return resp, nil
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	c.log.WarnContext(ctx, "api retry",
		slog.String("url", reqURL),
		slog.String("reason", reason),
	)

	time.Sleep(500 * time.Millisecond)

	return do()
}

// statusError maps an unexpected API status onto a domain sentinel, keeping
// the server's message when the error envelope can be decoded.
func (c *Client) statusError(method, path string, resp *http.Response) error {
	message := ""
	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err == nil {
		message = envelope.Error.Message
	}
	if message == "" {
		message = http.StatusText(resp.StatusCode)
	}

	var sentinel error
	switch {
	case resp.StatusCode == http.StatusNotFound:
		sentinel = domain.ErrNotFound
	case resp.StatusCode == http.StatusConflict:
		sentinel = domain.ErrAlreadyExists
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		sentinel = domain.ErrValidation
	case resp.StatusCode == http.StatusUnauthorized:
		sentinel = domain.ErrUnauthorized
	case resp.StatusCode >= 500:
		sentinel = domain.ErrInternal
	default:
		sentinel = domain.ErrUnknown
	}

	return fmt.Errorf("apiclient: %s %s: %s: %w", method, path, message, sentinel)
}
