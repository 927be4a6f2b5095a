// Package i18nhttp applies request language hints to the visitor's shell.
package i18nhttp

import (
	"net/http"
	"strings"

	"github.com/louisbranch/emergencyhelp/internal/platform/i18n"
	"github.com/louisbranch/emergencyhelp/internal/services/web/shell"
)

// LangParam is the query parameter used to select a language.
const LangParam = "lang"

// QueryLanguage returns the supported language named by ?lang=.
func QueryLanguage(r *http.Request) (i18n.Language, bool) {
	if r == nil || r.URL == nil {
		return i18n.Default, false
	}
	value := strings.TrimSpace(r.URL.Query().Get(LangParam))
	if value == "" {
		return i18n.Default, false
	}
	return i18n.ParseLanguage(value)
}

// Negotiate picks a language for a brand-new shell from Accept-Language.
func Negotiate(s *shell.Shell, r *http.Request) {
	if s == nil || r == nil {
		return
	}
	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		s.SwitchLanguage(i18n.MatchAcceptLanguage(accept))
	}
}

// Middleware switches the shell's language when the request carries
// ?lang= and echoes the active language in Content-Language. It must run
// inside the shell middleware.
func Middleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := shell.MustFromContext(r.Context())
			if lang, ok := QueryLanguage(r); ok {
				s.SwitchLanguage(lang)
			}
			w.Header().Set("Content-Language", s.Language().Code())
			next.ServeHTTP(w, r)
		})
	}
}
