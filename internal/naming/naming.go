// Package naming derives deterministic local filenames from remote image
// URLs according to a NamingPolicy template.
package naming

import (
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/vaultink/pasteimg/internal/model"
)

// Fallbacks when the URL yields no usable stem or extension
const (
	FallbackStem     = "image"
	DefaultExtension = "jpg"
)

// Time layouts for the {timestamp} and {date} placeholders
const (
	TimestampLayout = "2006-01-02T15-04-05"
	DateLayout      = "2006-01-02"
)

// now is swapped out in tests for deterministic output.
var now = time.Now

var (
	nonAlnumRun = regexp.MustCompile(`[^a-zA-Z0-9]+`)
	hyphenRun   = regexp.MustCompile(`-{2,}`)
)

// Generate produces a sanitized local filename for rawURL under the given
// policy. The URL is assumed to have passed classification; malformed input
// still yields a usable name rather than panicking.
//
// Each placeholder is substituted at most once (first occurrence only). That
// matches the historical behavior consumers rely on and is deliberate.
func Generate(rawURL string, policy model.NamingPolicy) string {
	stem, ext := splitSource(rawURL)
	cleaned := cleanStem(stem)

	timestamp := ""
	if policy.UseTimestamp {
		timestamp = now().Format(TimestampLayout)
	}
	date := now().Format(DateLayout)

	name := policy.FormatTemplate
	name = strings.Replace(name, model.PlaceholderName, cleaned, 1)
	name = strings.Replace(name, model.PlaceholderTimestamp, timestamp, 1)
	name = strings.Replace(name, model.PlaceholderDate, date, 1)

	name = hyphenRun.ReplaceAllString(name, "-")
	name = strings.TrimSuffix(name, "-")

	// An empty template result falls back to the cleaned stem.
	if strings.TrimSpace(name) == "" {
		name = cleaned
	}

	return name + "." + ext
}

// splitSource extracts the raw stem and lower-cased extension from the URL
// path. Percent-encoded characters are intentionally NOT decoded; the escaped
// form feeds into cleaning so e.g. "%20" becomes "-20".
func splitSource(rawURL string) (stem, ext string) {
	stem = FallbackStem
	if u, err := url.Parse(rawURL); err == nil {
		path := u.EscapedPath()
		segments := strings.Split(path, "/")
		if last := segments[len(segments)-1]; last != "" {
			stem = last
		}
	}

	// Defensive: the path alone should already exclude query and fragment
	if i := strings.IndexAny(stem, "?#"); i >= 0 {
		stem = stem[:i]
	}

	ext = DefaultExtension
	if i := strings.LastIndex(stem, "."); i >= 0 {
		if e := stem[i+1:]; e != "" {
			ext = strings.ToLower(e)
		}
		stem = stem[:i]
	}
	return stem, ext
}

// cleanStem replaces every maximal run of characters outside [a-zA-Z0-9] with
// a single hyphen, trims leading/trailing hyphens, and lower-cases the
// result. An empty result substitutes the literal fallback stem.
func cleanStem(stem string) string {
	cleaned := nonAlnumRun.ReplaceAllString(stem, "-")
	cleaned = strings.Trim(cleaned, "-")
	cleaned = strings.ToLower(cleaned)
	if cleaned == "" {
		return FallbackStem
	}
	return cleaned
}
