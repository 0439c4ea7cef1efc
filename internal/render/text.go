package render

import (
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/publicsuffix"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const DefaultExcerptLength = 150

var (
	markdownPunct = regexp.MustCompile("[#*`_~\\[\\]()]")
	newlineRuns   = regexp.MustCompile(`\n+`)
	trailingWord  = regexp.MustCompile(`\s+\S*$`)
	nonSlugRunes  = regexp.MustCompile(`[^a-z0-9]+`)
)

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("January 2, 2006")
}

// FormatDateISO renders t the way feeds and <time datetime> expect.
func FormatDateISO(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// Excerpt strips markdown punctuation from content, folds line breaks and cuts
// the result to at most max runes on a word boundary.
func Excerpt(content string, max int) string {
	plain := markdownPunct.ReplaceAllString(content, "")
	plain = strings.TrimSpace(newlineRuns.ReplaceAllString(plain, " "))
	if utf8.RuneCountInString(plain) <= max {
		return plain
	}
	cut := string([]rune(plain)[:max])
	return trailingWord.ReplaceAllString(cut, "") + "..."
}

func Truncate(text string, max int) string {
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	return string([]rune(text)[:max]) + "..."
}

func PostURL(slug string) string { return "/blog/" + slug }

// ValidURL reports whether raw is an absolute URL.
func ValidURL(raw string) bool {
	u, err := url.Parse(raw)
	return err == nil && u.Scheme != "" && (u.Host != "" || u.Opaque != "")
}

// Title capitalises each word. Casers keep state, so each call gets its own.
func Title(s string) string { return cases.Title(language.English).String(s) }

// LinkLabel shortens a link to its registrable domain, e.g.
// https://github.com/alexchen/blog -> github.com.
func LinkLabel(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return raw
	}
	host := u.Hostname()
	if d, err := publicsuffix.EffectiveTLDPlusOne(host); err == nil {
		return d
	}
	return host
}

// Slugify turns a title into a URL-safe slug. Titles with no ASCII letters
// or digits produce an empty string.
func Slugify(title string) string {
	s := nonSlugRunes.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(s, "-")
}
