package i18n

// Locale is the active display language of one shell bound to a resolver.
// It is not safe for concurrent use; the owning shell serializes access.
type Locale struct {
	lang     Language
	resolver *Resolver
}

// NewLocale starts a locale in lang, or in Default when lang is unsupported.
// A nil resolver selects DefaultResolver.
func NewLocale(lang Language, resolver *Resolver) *Locale {
	if !lang.Supported() {
		lang = Default
	}
	if resolver == nil {
		resolver = DefaultResolver()
	}
	return &Locale{lang: lang, resolver: resolver}
}

// Language returns the active language.
func (l *Locale) Language() Language {
	return l.lang
}

// Switch makes lang active. Unsupported values are ignored and reported as
// false; switching to the active language is a no-op that reports true.
func (l *Locale) Switch(lang Language) bool {
	if !lang.Supported() {
		return false
	}
	l.lang = lang
	return true
}

// Toggle switches to the other supported language and returns it.
func (l *Locale) Toggle() Language {
	l.lang = l.lang.Other()
	return l.lang
}

// T translates a key identifier in the active language.
func (l *Locale) T(name string) string {
	return l.resolver.Translate(name, l.lang)
}

// Text translates key in the active language.
func (l *Locale) Text(key Key) string {
	return l.resolver.Text(key, l.lang)
}

// Format renders a templated key in the active language.
func (l *Locale) Format(key Key, data map[string]any) string {
	return l.resolver.Format(key, l.lang, data)
}
