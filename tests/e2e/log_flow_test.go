//go:build e2e

package e2e_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/asmirnova/circleback/internal/bot/client"
	"github.com/asmirnova/circleback/internal/bot/render"
	"github.com/asmirnova/circleback/internal/domain"
)

func day(offset int) string {
	return time.Now().UTC().AddDate(0, 0, offset).Format("2006-01-02")
}

func TestLogFlow(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	contact, err := ts.API.CreateContact(ctx, uniqueName("Oleg"), client.ContactParams{})
	require.NoError(t, err)

	// Two logs on an older day, one on a recent day.
	older := day(-10)
	recent := day(-1)

	first, err := ts.API.AddLog(ctx, contact.ID, client.LogParams{
		Text: strPtr("met at the conference"),
		Date: strPtr(older),
	})
	require.NoError(t, err)
	require.Equal(t, 1, first.Seq)
	require.Equal(t, older, first.Date)

	second, err := ts.API.AddLog(ctx, contact.ID, client.LogParams{
		Text: strPtr("followed up by email"),
		Date: strPtr(older),
	})
	require.NoError(t, err)
	require.Equal(t, 2, second.Seq)

	third, err := ts.API.AddLog(ctx, contact.ID, client.LogParams{
		Text: strPtr("coffee"),
		Date: strPtr(recent),
	})
	require.NoError(t, err)
	require.Equal(t, 3, third.Seq)

	// History is grouped by day, oldest day first, seq order within a day.
	days, err := ts.API.History(ctx, contact.ID)
	require.NoError(t, err)
	require.Len(t, days, 2)
	require.Equal(t, older, days[0].Date)
	require.Len(t, days[0].Logs, 2)
	require.Equal(t, "met at the conference", days[0].Logs[0].Text)
	require.Equal(t, "followed up by email", days[0].Logs[1].Text)
	require.Equal(t, recent, days[1].Date)
	require.Len(t, days[1].Logs, 1)

	// The bot-side rendering of this history fits one message and keeps
	// chronological order.
	message := render.HistoryMessage(contact.Name, days, 0)
	require.Contains(t, message, "📋 Logs for")
	require.Less(t, strings.Index(message, "met at the conference"), strings.Index(message, "coffee"))

	// Text edit keeps the seq number.
	edited, err := ts.API.EditLog(ctx, first.ID, client.LogParams{
		Text: strPtr("met at the conference, exchanged cards"),
	})
	require.NoError(t, err)
	require.Equal(t, 1, edited.Seq)
	require.Equal(t, "met at the conference, exchanged cards", edited.Text)

	// Date edit moves the log to another day group.
	moved, err := ts.API.EditLog(ctx, third.ID, client.LogParams{
		Date: strPtr(older),
	})
	require.NoError(t, err)
	require.Equal(t, older, moved.Date)

	days, err = ts.API.History(ctx, contact.ID)
	require.NoError(t, err)
	require.Len(t, days, 1)
	require.Len(t, days[0].Logs, 3)

	// Delete is idempotent.
	deleted, err := ts.API.DeleteLog(ctx, second.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	deleted, err = ts.API.DeleteLog(ctx, second.ID)
	require.NoError(t, err)
	require.False(t, deleted)

	_, err = ts.API.GetLog(ctx, second.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)

	// Deleting the contact cascades to its logs.
	_, err = ts.API.DeleteContact(ctx, contact.ID)
	require.NoError(t, err)

	_, err = ts.API.GetLog(ctx, first.ID)
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEmptyLogMarker(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	contact, err := ts.API.CreateContact(ctx, uniqueName("Rita"), client.ContactParams{})
	require.NoError(t, err)

	// Blank text without the empty flag is rejected.
	_, err = ts.API.AddLog(ctx, contact.ID, client.LogParams{Text: strPtr("   ")})
	require.ErrorIs(t, err, domain.ErrValidation)

	// The empty flag records a contact touch without content.
	empty, err := ts.API.AddLog(ctx, contact.ID, client.LogParams{Empty: true})
	require.NoError(t, err)
	require.Equal(t, "", empty.Text)
	require.Equal(t, day(0), empty.Date)
}

func TestRecentDigestAndStats(t *testing.T) {
	ts := setupTestServer(t)
	ctx := context.Background()

	name := uniqueName("Sveta")
	contact, err := ts.API.CreateContact(ctx, name, client.ContactParams{
		Telegram: strPtr("@sveta"),
	})
	require.NoError(t, err)

	_, err = ts.API.AddLog(ctx, contact.ID, client.LogParams{
		Text: strPtr("walk in the park"),
		Date: strPtr(day(-2)),
	})
	require.NoError(t, err)

	_, err = ts.API.AddLog(ctx, contact.ID, client.LogParams{
		Text: strPtr("ancient history"),
		Date: strPtr(day(-60)),
	})
	require.NoError(t, err)

	// Only the log inside the window shows up in the digest.
	digest, err := ts.API.RecentDigest(ctx, 7)
	require.NoError(t, err)

	var entry *client.Digest
	for i := range digest {
		if digest[i].ContactID == contact.ID {
			entry = &digest[i]
		}
	}
	require.NotNil(t, entry, "contact missing from digest")
	require.Equal(t, name, entry.ContactName)
	require.Equal(t, []string{"walk in the park"}, entry.Texts)

	// Stats report the days since the newest log.
	records, err := ts.API.DaysSinceLastInteraction(ctx)
	require.NoError(t, err)

	var rec *domain.ActivityRecord
	for i := range records {
		if records[i].Name == name {
			rec = &records[i]
		}
	}
	require.NotNil(t, rec, "contact missing from stats")
	require.Equal(t, 2, rec.DayCount)

	// Contact shows up in the recency listing after logging.
	recents, err := ts.API.RecentContacts(ctx, 50)
	require.NoError(t, err)

	found := false
	for _, c := range recents {
		if c.ID == contact.ID {
			found = true
		}
	}
	require.True(t, found, "contact missing from recent listing")

	// The activity report resolves telegram handles through the API, the way
	// the bot composes it.
	report := render.ActivityReport(records, func(n string) string {
		c, err := ts.API.GetContactByName(ctx, n)
		if err != nil || c.Telegram == nil {
			return ""
		}
		return *c.Telegram
	})
	require.Contains(t, report, `\(@sveta\)`)
}
