package shell

import (
	"context"
	"testing"

	"github.com/louisbranch/emergencyhelp/internal/platform/i18n"
	"github.com/louisbranch/emergencyhelp/internal/services/web/navigation"
	"github.com/louisbranch/emergencyhelp/internal/services/web/session"
)

func TestNewShellStartsAnonymousInDefaultLanguage(t *testing.T) {
	t.Parallel()

	s := New("s1", Config{DefaultLanguage: i18n.Bangla})
	defer s.Close()

	if s.ID() != "s1" {
		t.Fatalf("ID() = %q", s.ID())
	}
	if s.Session() != nil {
		t.Fatal("new shell has a session")
	}
	if s.Language() != i18n.Bangla {
		t.Fatalf("Language() = %s, want bn", s.Language())
	}
	if got := s.T("dashboard"); got != "ড্যাশবোর্ড" {
		t.Fatalf("T(dashboard) = %q", got)
	}
	if s.SOS().Active() {
		t.Fatal("new shell has SOS active")
	}
}

func TestShellLoginLogoutFlow(t *testing.T) {
	t.Parallel()

	s := New("s1", Config{})
	defer s.Close()
	events, cancel := s.Events().Subscribe()
	defer cancel()

	if action := s.Navigate("/profile"); action.Verb != navigation.Replace || action.Location != "/login?next=%2Fprofile" {
		t.Fatalf("Navigate(/profile) = %+v", action)
	}

	s.SetSession(&session.Session{ID: "u1", Name: "Rahim", Role: session.RoleDonor})
	if got := s.ResumeAfterLogin(""); got != "/profile" {
		t.Fatalf("ResumeAfterLogin() = %q", got)
	}
	if action := s.Navigate("/profile"); action.Verb != navigation.Render {
		t.Fatalf("Navigate(/profile) after login = %+v", action)
	}

	s.Logout()
	if s.Session() != nil {
		t.Fatal("session survived logout")
	}

	var sawSignIn, sawSignOut, sawNavigate bool
	for len(events) > 0 {
		e := <-events
		switch {
		case e.Type == EventSession && e.SignedIn:
			sawSignIn = true
		case e.Type == EventSession && !e.SignedIn:
			sawSignOut = true
		case e.Type == EventNavigate && e.Location == "/login?next=%2Fprofile":
			sawNavigate = true
		}
	}
	if !sawSignIn || !sawSignOut || !sawNavigate {
		t.Fatalf("events signIn=%v signOut=%v navigate=%v", sawSignIn, sawSignOut, sawNavigate)
	}
}

func TestShellLanguageSwitching(t *testing.T) {
	t.Parallel()

	s := New("s1", Config{})
	defer s.Close()
	events, cancel := s.Events().Subscribe()
	defer cancel()

	before := s.T("blood_donor")
	if !s.SwitchLanguage(i18n.Bangla) {
		t.Fatal("SwitchLanguage(bn) = false")
	}
	if !s.SwitchLanguage(i18n.Bangla) {
		t.Fatal("repeated SwitchLanguage(bn) = false")
	}
	if s.SwitchLanguage(i18n.Language(7)) {
		t.Fatal("SwitchLanguage(unsupported) = true")
	}
	if got := s.ToggleLanguage(); got != i18n.English {
		t.Fatalf("ToggleLanguage() = %s", got)
	}
	if got := s.T("blood_donor"); got != before {
		t.Fatalf("round trip = %q, want %q", got, before)
	}

	if got := len(events); got != 2 {
		t.Fatalf("language events = %d, want 2 (idempotent switch publishes nothing)", got)
	}
}

func TestShellCloseCancelsSOSAndDisconnectsSubscribers(t *testing.T) {
	t.Parallel()

	s := New("s1", Config{})
	events, _ := s.Events().Subscribe()
	s.SOS().Trigger()
	s.Close()

	if s.SOS().Active() {
		t.Fatal("SOS active after Close")
	}
	for range events {
	}
	if s.Events().Subscribers() != 0 {
		t.Fatal("subscribers survived Close")
	}
}

func TestContextHelpers(t *testing.T) {
	t.Parallel()

	if _, ok := FromContext(context.Background()); ok {
		t.Fatal("FromContext(empty) = ok")
	}

	s := New("s1", Config{})
	defer s.Close()
	ctx := WithShell(context.Background(), s)
	if got := MustFromContext(ctx); got != s {
		t.Fatal("MustFromContext returned a different shell")
	}

	defer func() {
		if recover() == nil {
			t.Fatal("MustFromContext outside middleware did not panic")
		}
	}()
	MustFromContext(context.Background())
}
