package language

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/louisbranch/emergencyhelp/internal/platform/i18n"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routepath"
	"github.com/louisbranch/emergencyhelp/internal/testkit/webfakes"
)

func postLanguage(form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, routepath.Language, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestSwitchLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		start    i18n.Language
		form     url.Values
		want     i18n.Language
		location string
	}{
		{name: "toggle to bangla", start: i18n.English, form: url.Values{"next": {"/donors?blood_group=O-"}}, want: i18n.Bangla, location: "/donors?blood_group=O-"},
		{name: "toggle back to english", start: i18n.Bangla, form: url.Values{}, want: i18n.English, location: "/"},
		{name: "explicit language", start: i18n.English, form: url.Values{"lang": {"bn"}, "next": {"/first-aid"}}, want: i18n.Bangla, location: "/first-aid"},
		{name: "explicit current language keeps it", start: i18n.Bangla, form: url.Values{"lang": {"bn"}}, want: i18n.Bangla, location: "/"},
		{name: "unsupported language ignored", start: i18n.English, form: url.Values{"lang": {"fr"}}, want: i18n.English, location: "/"},
		{name: "foreign next rejected", start: i18n.English, form: url.Values{"next": {"https://evil.example"}}, want: i18n.Bangla, location: "/"},
	}

	m, err := New(requestmeta.SchemePolicy{}).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			sh := webfakes.NewShell(t)
			sh.SwitchLanguage(tc.start)
			rr := webfakes.Serve(m.Handler, sh, postLanguage(tc.form))
			if rr.Code != http.StatusSeeOther {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
			}
			if got := rr.Header().Get("Location"); got != tc.location {
				t.Fatalf("Location = %q, want %q", got, tc.location)
			}
			if got := sh.Language(); got != tc.want {
				t.Fatalf("language = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSwitchLanguageRejectsGet(t *testing.T) {
	t.Parallel()

	m, _ := New(requestmeta.SchemePolicy{}).Mount()
	rr := webfakes.Serve(m.Handler, webfakes.NewShell(t), httptest.NewRequest(http.MethodGet, routepath.Language, nil))
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
}
