// Package flash carries a one-time notice across a redirect in a cookie.
//
// The cookie stores only a kind and a catalog key ("success.sos_sent"), never
// display text, so the notice renders in whatever language the next page
// uses and a forged cookie cannot inject markup.
package flash

import (
	"net/http"
	"strings"

	"github.com/louisbranch/emergencyhelp/internal/platform/i18n"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/requestmeta"
)

// CookieName is the cookie carrying the pending notice.
const CookieName = "eh_flash"

const separator = "."

// Kind selects how a notice is styled.
type Kind string

const (
	KindSuccess Kind = "success"
	KindInfo    Kind = "info"
	KindError   Kind = "error"
)

func (k Kind) valid() bool {
	switch k {
	case KindSuccess, KindInfo, KindError:
		return true
	}
	return false
}

// Notice is one pending message.
type Notice struct {
	Kind Kind
	Key  i18n.Key
}

// NoticeSuccess creates a success notice for key.
func NoticeSuccess(key i18n.Key) Notice {
	return Notice{Kind: KindSuccess, Key: key}
}

// NoticeError creates an error notice for key.
func NoticeError(key i18n.Key) Notice {
	return Notice{Kind: KindError, Key: key}
}

// Message resolves the notice text through locale.
func (n Notice) Message(locale *i18n.Locale) string {
	if locale == nil {
		return n.Key.String()
	}
	return locale.Text(n.Key)
}

func (n Notice) encode() (string, bool) {
	name := n.Key.String()
	if name == "" || !n.Kind.valid() {
		return "", false
	}
	return string(n.Kind) + separator + name, true
}

func decode(raw string) (Notice, bool) {
	kind, name, ok := strings.Cut(strings.TrimSpace(raw), separator)
	if !ok {
		return Notice{}, false
	}
	key, ok := i18n.ParseKey(name)
	if !ok {
		return Notice{}, false
	}
	notice := Notice{Kind: Kind(strings.ToLower(kind)), Key: key}
	if !notice.Kind.valid() {
		return Notice{}, false
	}
	return notice, true
}

// Write stores notice for the next page render. Invalid notices are dropped.
func Write(w http.ResponseWriter, r *http.Request, notice Notice, policy requestmeta.SchemePolicy) {
	if w == nil {
		return
	}
	value, ok := notice.encode()
	if !ok {
		return
	}
	http.SetCookie(w, cookie(r, policy, value, 0))
}

// ReadAndClear returns the pending notice, if any, and expires the cookie
// even when its value is unusable.
func ReadAndClear(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy) (Notice, bool) {
	if r == nil {
		return Notice{}, false
	}
	stored, err := r.Cookie(CookieName)
	if err != nil {
		return Notice{}, false
	}
	if w != nil {
		http.SetCookie(w, cookie(r, policy, "", -1))
	}
	return decode(stored.Value)
}

func cookie(r *http.Request, policy requestmeta.SchemePolicy, value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   requestmeta.IsHTTPSWithPolicy(r, policy),
		SameSite: http.SameSiteLaxMode,
	}
}
