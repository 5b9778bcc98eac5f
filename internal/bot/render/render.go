// Package render formats API data into Telegram MarkdownV2 messages for the
// bot front end. Everything here is pure string transformation; the only
// collaborator is the per-name telegram lookup in ActivityReport.
package render

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/asmirnova/circleback/internal/bot/client"
	"github.com/asmirnova/circleback/internal/domain"
)

// MaxMessageBytes is the per-message size budget enforced by the transport.
const MaxMessageBytes = 4000

var markdownEscapeRe = regexp.MustCompile("([_*\\[\\]()~`>#+\\-=|{}.!])")

// EscapeMarkdownV2 backslash-escapes every MarkdownV2 special character.
func EscapeMarkdownV2(s string) string {
	return markdownEscapeRe.ReplaceAllString(s, `\$1`)
}

// Spoiler wraps text in a reveal-on-demand marker.
func Spoiler(s string) string {
	return "||" + s + "||"
}

// IsEmptyLogText reports whether text is the empty-log marker or blank.
func IsEmptyLogText(s string) bool {
	return s == "" || s == "||||"
}

// ContactCard renders one contact as a card with the optional channel lines.
func ContactCard(c *client.Contact) string {
	lines := []string{
		"*" + EscapeMarkdownV2(c.Name) + "*",
		"",
	}
	if c.Telegram != nil && *c.Telegram != "" {
		lines = append(lines, "✈️ Telegram: "+EscapeMarkdownV2(*c.Telegram))
	}
	if c.Phone != nil && *c.Phone != "" {
		lines = append(lines, "📞 Phone: "+EscapeMarkdownV2(*c.Phone))
	}
	if c.Birthday != nil && *c.Birthday != "" {
		lines = append(lines, "🎉 Birthday: "+EscapeMarkdownV2(*c.Birthday))
	}
	return strings.Join(lines, "\n")
}

// ContactList renders the contact book as sorted "— name (telegram)" rows.
func ContactList(contacts []client.Contact) string {
	rows := make([]string, 0, len(contacts))
	for _, c := range contacts {
		name := EscapeMarkdownV2(c.Name)
		if c.Telegram != nil && *c.Telegram != "" {
			rows = append(rows, fmt.Sprintf(`— %s \(%s\)`, name, EscapeMarkdownV2(*c.Telegram)))
		} else {
			rows = append(rows, "— "+name)
		}
	}
	sort.Strings(rows)
	return strings.Join(rows, "\n")
}

// LogLines renders a contact's day-grouped history into display lines,
// oldest day first: a date header line per day, then one numbered line per
// log. The leading newline on each header line produces a blank line between
// days once the lines are joined.
func LogLines(days []client.DayGroup) []string {
	var lines []string
	for _, day := range days {
		lines = append(lines, "\n*"+EscapeMarkdownV2(day.Date)+":*")
		for _, l := range day.Logs {
			lines = append(lines, fmt.Sprintf("— %d: %s", l.Seq, EscapeMarkdownV2(l.Text)))
		}
	}
	return lines
}

// WindowLines returns the longest trailing run of lines whose newline join
// fits in maxBytes. Join length only shrinks as the start index grows, so a
// binary search over the start index finds the smallest one that fits. When
// even the last line alone is over budget it is returned anyway rather than
// failing. A single leading newline is stripped from the result.
func WindowLines(lines []string, maxBytes int) string {
	if len(lines) == 0 {
		return ""
	}

	p1, p2 := 0, len(lines)-1
	for p1 < p2 {
		m := (p1 + p2) / 2
		if len(strings.Join(lines[m:], "\n")) > maxBytes {
			p1 = m + 1
		} else {
			p2 = m
		}
	}

	text := strings.Join(lines[p1:], "\n")
	return strings.TrimPrefix(text, "\n")
}

// HistoryMessage renders a contact's history, windowed to maxBytes and
// hidden behind a spoiler. A non-positive maxBytes uses MaxMessageBytes.
func HistoryMessage(name string, days []client.DayGroup, maxBytes int) string {
	if maxBytes <= 0 {
		maxBytes = MaxMessageBytes
	}
	body := Spoiler(WindowLines(LogLines(days), maxBytes))
	return fmt.Sprintf("📋 Logs for *%s*:\n\n%s", EscapeMarkdownV2(name), body)
}

// DigestMessage renders the recent-activity digest: a header per contact and
// one row per non-empty log text, hidden behind a spoiler.
func DigestMessage(digests []client.Digest) string {
	var lines []string
	for _, d := range digests {
		lines = append(lines, "\n*"+EscapeMarkdownV2(d.ContactName)+":*")
		for _, text := range d.Texts {
			if IsEmptyLogText(text) {
				continue
			}
			lines = append(lines, "— "+EscapeMarkdownV2(text))
		}
	}
	text := strings.TrimPrefix(strings.Join(lines, "\n"), "\n")
	return Spoiler(text)
}

// Activity tier thresholds in days.
const (
	recentTierMax  = 7
	averageTierMax = 30
)

// ActivityReport renders days-since-last-interaction records grouped into
// activity tiers. Records are sorted by day count descending, and each tier
// header is emitted exactly once, right before the first record that falls
// into it. The header-emitted flags are carried across the whole pass so a
// header can never repeat. telegramOf resolves a contact's telegram handle
// and may return "" when the contact has none.
func ActivityReport(records []domain.ActivityRecord, telegramOf func(name string) string) string {
	sorted := make([]domain.ActivityRecord, len(records))
	copy(sorted, records)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].DayCount > sorted[j].DayCount
	})

	var (
		lines       []string
		recentSeen  bool
		averageSeen bool
		longSeen    bool
	)
	header := func(dayCount int) {
		switch {
		case dayCount < recentTierMax:
			if !recentSeen {
				recentSeen = true
				lines = append(lines, "", "*Recent:*")
			}
		case dayCount < averageTierMax:
			if !averageSeen {
				averageSeen = true
				lines = append(lines, "", "*Average:*")
			}
		default:
			if !longSeen {
				longSeen = true
				lines = append(lines, "", "*Long:*")
			}
		}
	}

	for _, rec := range sorted {
		header(rec.DayCount)
		row := fmt.Sprintf("— %d days: %s", rec.DayCount, EscapeMarkdownV2(rec.Name))
		if tg := telegramOf(rec.Name); tg != "" {
			row += fmt.Sprintf(` \(%s\)`, EscapeMarkdownV2(tg))
		}
		lines = append(lines, row)
	}

	return strings.TrimPrefix(strings.Join(lines, "\n"), "\n")
}
