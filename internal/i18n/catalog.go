// Package i18n resolves the display language of a request and looks up UI strings.
package i18n

import (
	"maps"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// Supported languages. English is the fallback for everything.
const (
	English = "en"
	Telugu  = "te"
)

// CookieName and QueryParam carry an explicit language choice.
const (
	CookieName = "lang"
	QueryParam = "lang"
)

// Catalog holds the string tables and the Accept-Language matcher.
type Catalog struct {
	tables  map[string]map[string]string
	codes   []string
	matcher language.Matcher
}

// NewCatalog returns the built-in English and Telugu catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		tables: map[string]map[string]string{
			English: english,
			Telugu:  telugu,
		},
		codes: []string{English, Telugu},
		// The first tag is the matcher's default.
		matcher: language.NewMatcher([]language.Tag{language.English, language.MustParse(Telugu)}),
	}
}

// Supported lists the language codes in preference order.
func (c *Catalog) Supported() []string {
	return slices.Clone(c.codes)
}

// IsSupported reports whether lang has a string table.
func (c *Catalog) IsSupported(lang string) bool {
	_, ok := c.tables[lang]
	return ok
}

// Text returns key in lang, falling back to English and then to the key itself.
func (c *Catalog) Text(lang, key string) string {
	if s, ok := c.tables[lang][key]; ok {
		return s
	}
	if s, ok := c.tables[English][key]; ok {
		return s
	}
	return key
}

// Strings returns the full table for lang with English filling any gaps.
func (c *Catalog) Strings(lang string) map[string]string {
	out := maps.Clone(c.tables[English])
	if lang != English {
		maps.Copy(out, c.tables[lang])
	}
	return out
}

// Match picks the best supported language for an Accept-Language header value.
func (c *Catalog) Match(acceptLanguage string) string {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return English
	}
	_, idx, confidence := c.matcher.Match(tags...)
	if confidence == language.No {
		return English
	}
	return c.codes[idx]
}

// Resolve applies the per-request order: query parameter, cookie, Accept-Language, English.
// Unsupported explicit choices are skipped.
func (c *Catalog) Resolve(query, cookie, acceptLanguage string) string {
	for _, candidate := range []string{query, cookie} {
		candidate = strings.ToLower(strings.TrimSpace(candidate))
		if c.IsSupported(candidate) {
			return candidate
		}
	}
	if acceptLanguage != "" {
		return c.Match(acceptLanguage)
	}
	return English
}
