// Package bot assembles the chat-facing helper on top of the API client and
// the MarkdownV2 renderer. It owns the front-end policy knobs: message size
// budget, fuzzy search limits, and the digest window.
package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/asmirnova/circleback/internal/bot/client"
	"github.com/asmirnova/circleback/internal/bot/render"
	"github.com/asmirnova/circleback/internal/config"
	"github.com/asmirnova/circleback/internal/domain"
)

// TokenMinter issues a fresh service token for outgoing API requests.
type TokenMinter interface {
	Mint(subject string) (string, error)
}

// api is the slice of the API client the helper consumes.
type api interface {
	GetContactByName(ctx context.Context, name string) (*client.Contact, error)
	SearchContacts(ctx context.Context, query string, limit int, cutoff float64) ([]client.Contact, error)
	ListContacts(ctx context.Context) ([]client.Contact, error)
	History(ctx context.Context, contactID string) ([]client.DayGroup, error)
	RecentDigest(ctx context.Context, days int) ([]client.Digest, error)
	DaysSinceLastInteraction(ctx context.Context) ([]domain.ActivityRecord, error)
}

// Helper resolves chat queries against the API and renders replies.
type Helper struct {
	api api
	cfg config.BotConfig
	log *slog.Logger
}

// New creates a Helper talking to the API at cfg.APIBaseURL.
func New(cfg config.BotConfig, tokens TokenMinter, logger *slog.Logger) *Helper {
	return &Helper{
		api: client.New(cfg.APIBaseURL, tokens, logger),
		cfg: cfg,
		log: logger.With("component", "bot"),
	}
}

// ResolveContact finds the contact a user meant: exact name first, then a
// fuzzy search constrained by the configured limit and similarity cutoff.
// Returns ErrNotFound when neither yields a match.
func (h *Helper) ResolveContact(ctx context.Context, query string) (*client.Contact, error) {
	c, err := h.api.GetContactByName(ctx, query)
	if err == nil {
		return c, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("resolve contact: %w", err)
	}

	matches, err := h.api.SearchContacts(ctx, query, h.cfg.SearchLimit, h.cfg.SimilarityCutoff)
	if err != nil {
		return nil, fmt.Errorf("resolve contact: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("resolve contact %q: %w", query, domain.ErrNotFound)
	}
	h.log.DebugContext(ctx, "resolved contact by fuzzy match",
		slog.String("query", query),
		slog.String("name", matches[0].Name))
	return &matches[0], nil
}

// ContactCard renders the card of the contact matching query.
func (h *Helper) ContactCard(ctx context.Context, query string) (string, error) {
	c, err := h.ResolveContact(ctx, query)
	if err != nil {
		return "", err
	}
	return render.ContactCard(c), nil
}

// History renders the full interaction history of the contact matching
// query, windowed to the configured message limit.
func (h *Helper) History(ctx context.Context, query string) (string, error) {
	c, err := h.ResolveContact(ctx, query)
	if err != nil {
		return "", err
	}
	days, err := h.api.History(ctx, c.ID)
	if err != nil {
		return "", fmt.Errorf("history for %q: %w", c.Name, err)
	}
	return render.HistoryMessage(c.Name, days, h.cfg.MessageLimit), nil
}

// Digest renders the recent-activity digest over the configured window.
func (h *Helper) Digest(ctx context.Context) (string, error) {
	digests, err := h.api.RecentDigest(ctx, h.cfg.DigestDays)
	if err != nil {
		return "", fmt.Errorf("digest: %w", err)
	}
	return render.DigestMessage(digests), nil
}

// ActivityReport renders the days-since-last-interaction report with
// telegram handles pulled from the contact book.
func (h *Helper) ActivityReport(ctx context.Context) (string, error) {
	records, err := h.api.DaysSinceLastInteraction(ctx)
	if err != nil {
		return "", fmt.Errorf("activity report: %w", err)
	}
	contacts, err := h.api.ListContacts(ctx)
	if err != nil {
		return "", fmt.Errorf("activity report: %w", err)
	}

	handles := make(map[string]string, len(contacts))
	for _, c := range contacts {
		if c.Telegram != nil {
			handles[c.Name] = *c.Telegram
		}
	}
	return render.ActivityReport(records, func(name string) string {
		return handles[name]
	}), nil
}
