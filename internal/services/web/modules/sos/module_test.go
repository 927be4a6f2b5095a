package sos

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	flashnotice "github.com/louisbranch/emergencyhelp/internal/services/web/platform/flash"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routepath"
	"github.com/louisbranch/emergencyhelp/internal/services/web/session"
	"github.com/louisbranch/emergencyhelp/internal/services/web/shell"
	"github.com/louisbranch/emergencyhelp/internal/services/web/storage"
	"github.com/louisbranch/emergencyhelp/internal/testkit/webfakes"
)

func postSOS(next string) *http.Request {
	form := url.Values{}
	if next != "" {
		form.Set(routepath.NextQueryKey, next)
	}
	req := httptest.NewRequest(http.MethodPost, routepath.SOS, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func TestTriggerActivatesIndicatorAndRecordsAlert(t *testing.T) {
	t.Parallel()

	store := webfakes.NewStore()
	m, err := New(store, nil, requestmeta.SchemePolicy{}).Mount()
	if err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	sh := webfakes.NewShell(t)
	signedIn := webfakes.SignIn(sh, session.RolePatient)
	events, cancel := sh.Events().Subscribe()
	defer cancel()

	rr := webfakes.Serve(m.Handler, sh, postSOS("/donors"))
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != "/donors" {
		t.Fatalf("Location = %q, want /donors", got)
	}
	if !strings.Contains(rr.Header().Get("Set-Cookie"), flashnotice.CookieName+"=") {
		t.Fatalf("expected flash cookie, got %q", rr.Header().Get("Set-Cookie"))
	}
	if !sh.SOS().Active() {
		t.Fatal("expected indicator to be active")
	}
	if got := <-events; got.Type != shell.EventSOS || !got.Active {
		t.Fatalf("event = %+v, want active sos", got)
	}
	if store.AlertCount() != 1 {
		t.Fatalf("alerts = %d, want 1", store.AlertCount())
	}
	alert := store.Alerts[0]
	if alert.ID == "" || alert.ShellID != sh.ID() || alert.AccountID != signedIn.ID {
		t.Fatalf("alert = %+v", alert)
	}
}

func TestTriggerSucceedsWhenAlertStoreFails(t *testing.T) {
	t.Parallel()

	store := webfakes.NewStore()
	store.AlertErr = errors.New("disk full")
	m, _ := New(store, nil, requestmeta.SchemePolicy{}).Mount()
	sh := webfakes.NewShell(t)

	rr := webfakes.Serve(m.Handler, sh, postSOS("https://evil.example/"))
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	if got := rr.Header().Get("Location"); got != routepath.Root {
		t.Fatalf("Location = %q, want root", got)
	}
	if !sh.SOS().Active() {
		t.Fatal("expected indicator to be active")
	}
}

func TestTriggerWithoutStore(t *testing.T) {
	t.Parallel()

	m, _ := New(nil, nil, requestmeta.SchemePolicy{}).Mount()
	sh := webfakes.NewShell(t)
	req := postSOS("")
	req.Header.Set("HX-Request", "true")

	rr := webfakes.Serve(m.Handler, sh, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if got := rr.Header().Get("HX-Location"); got != routepath.Root {
		t.Fatalf("HX-Location = %q, want root", got)
	}
	if !sh.SOS().Active() {
		t.Fatal("expected indicator to be active")
	}
}

func TestTriggerRejectsMalformedForm(t *testing.T) {
	t.Parallel()

	store := webfakes.NewStore()
	m, _ := New(store, nil, requestmeta.SchemePolicy{}).Mount()
	sh := webfakes.NewShell(t)
	req := httptest.NewRequest(http.MethodPost, routepath.SOS, strings.NewReader("next=%zz"))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rr := webfakes.Serve(m.Handler, sh, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if sh.SOS().Active() {
		t.Fatal("indicator triggered by a malformed form")
	}
	if store.AlertCount() != 0 {
		t.Fatalf("alerts = %d, want 0", store.AlertCount())
	}
}

type recordingNotifier struct {
	alerts []storage.SOSAlert
}

func (n *recordingNotifier) Notify(alert storage.SOSAlert) bool {
	n.alerts = append(n.alerts, alert)
	return true
}

func TestTriggerNotifiesRespondersEvenWhenStoreFails(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		store *webfakes.Store
	}{
		{name: "recorded", store: webfakes.NewStore()},
		{name: "store down", store: func() *webfakes.Store {
			s := webfakes.NewStore()
			s.AlertErr = errors.New("disk full")
			return s
		}()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			notifier := &recordingNotifier{}
			m, _ := New(tc.store, notifier, requestmeta.SchemePolicy{}).Mount()
			sh := webfakes.NewShell(t)

			rr := webfakes.Serve(m.Handler, sh, postSOS(""))
			if rr.Code != http.StatusSeeOther {
				t.Fatalf("status = %d, want %d", rr.Code, http.StatusSeeOther)
			}
			if len(notifier.alerts) != 1 {
				t.Fatalf("notified = %d, want 1", len(notifier.alerts))
			}
			if got := notifier.alerts[0]; got.ID == "" || got.ShellID != sh.ID() || got.AccountID != "" {
				t.Fatalf("alert = %+v", got)
			}
		})
	}
}
