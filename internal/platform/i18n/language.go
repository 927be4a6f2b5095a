// Package i18n resolves display text for the two supported languages.
//
// Translation keys form a closed enumeration (Key) and every language table is
// materialized into a fixed array indexed by Key when the catalog loads, so a
// lookup is a bounds check plus an index. A key absent from a language's table
// resolves to the key string itself; lookups never fail.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is one of the supported display languages.
type Language uint8

const (
	// English is the default display language.
	English Language = iota
	// Bangla is the secondary display language.
	Bangla

	languageCount
)

// Default is the language a fresh shell starts with.
const Default = English

var languageTags = [languageCount]language.Tag{
	English: language.English,
	Bangla:  language.Bengali,
}

var languageCodes = [languageCount]string{
	English: "en",
	Bangla:  "bn",
}

var matcher = language.NewMatcher(languageTags[:])

// Languages returns the supported languages in display order.
func Languages() []Language {
	return []Language{English, Bangla}
}

// Supported reports whether l is a member of the supported set.
func (l Language) Supported() bool {
	return l < languageCount
}

// Code returns the two-letter code ("en", "bn").
func (l Language) Code() string {
	if !l.Supported() {
		return languageCodes[Default]
	}
	return languageCodes[l]
}

// String implements fmt.Stringer.
func (l Language) String() string {
	return l.Code()
}

// Tag returns the BCP 47 tag for the language.
func (l Language) Tag() language.Tag {
	if !l.Supported() {
		return languageTags[Default]
	}
	return languageTags[l]
}

// Other returns the language the navbar toggle switches to.
func (l Language) Other() Language {
	switch l {
	case English:
		return Bangla
	case Bangla:
		return English
	default:
		return Default
	}
}

// ParseLanguage maps a BCP 47 tag or code to a supported language.
// Regional variants ("bn-BD", "en-US") resolve to their base language.
func ParseLanguage(value string) (Language, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default, false
	}
	tag, err := language.Parse(value)
	if err != nil {
		return Default, false
	}
	base, _ := tag.Base()
	for idx, supported := range languageTags {
		supportedBase, _ := supported.Base()
		if base == supportedBase {
			return Language(idx), true
		}
	}
	return Default, false
}

// MatchAcceptLanguage picks the best supported language for an
// Accept-Language header value.
func MatchAcceptLanguage(header string) Language {
	header = strings.TrimSpace(header)
	if header == "" {
		return Default
	}
	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return Default
	}
	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No || idx < 0 || idx >= int(languageCount) {
		return Default
	}
	return Language(idx)
}
