// Package markdown holds the text conversions between user content and the
// markup dialects we exchange with external services.
package markdown

import (
	"html"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-telegram/bot"
)

// Reserved lists every character Telegram MarkdownV2 treats as markup.
const Reserved = "_*[]()~`>#+-=|{}.!"

// Escape prefixes every reserved MarkdownV2 character with a backslash.
// Already escaped text gets escaped again, so apply it exactly once per field.
// Bytes that are not valid UTF-8 are copied unchanged.
func Escape(s string) string {
	if utf8.ValidString(s) {
		return bot.EscapeMarkdown(s)
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/4)
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteString(bot.EscapeMarkdown(s[start:i]))
			b.WriteByte(s[i])
			i++
			start = i
			continue
		}
		i += size
	}
	b.WriteString(bot.EscapeMarkdown(s[start:]))

	return b.String()
}

// Unescape drops the backslash in front of every reserved character. It is the
// inverse of Escape. All reserved characters are ASCII, so it works on bytes.
func Unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) && strings.IndexByte(Reserved, s[i+1]) >= 0 {
			i++
		}
		b.WriteByte(s[i])
	}

	return b.String()
}

var (
	boldRe   = regexp.MustCompile(`\*\*(.*?)\*\*`)
	italicRe = regexp.MustCompile(`\*(.*?)\*`)
)

// ToHTML converts the small markdown subset generated text uses into display HTML.
// The input is HTML-escaped first, so only the tags produced here survive.
func ToHTML(s string) string {
	s = html.EscapeString(s)
	s = boldRe.ReplaceAllString(s, "<strong>$1</strong>")
	s = italicRe.ReplaceAllString(s, "<em>$1</em>")

	return strings.ReplaceAll(s, "\n", "<br/>")
}
