package modules

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	webauth "github.com/louisbranch/emergencyhelp/internal/services/web/auth"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routepath"
	"github.com/louisbranch/emergencyhelp/internal/testkit/webfakes"
)

func TestDefaultModulesOrder(t *testing.T) {
	t.Parallel()

	want := []string{"public", "donors", "auth-login", "auth-register", "auth-logout", "profile", "admin", "language", "sos"}
	got := DefaultModules(Dependencies{})
	if len(got) != len(want) {
		t.Fatalf("module count = %d, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID() != id {
			t.Fatalf("module[%d] id = %q, want %q", i, got[i].ID(), id)
		}
	}
}

func TestStreamModulesOrder(t *testing.T) {
	t.Parallel()

	got := StreamModules(Dependencies{})
	if len(got) != 3 || got[0].ID() != "events" || got[1].ID() != "health" || got[2].ID() != "assets" {
		t.Fatalf("stream modules = %v", moduleIDs(got))
	}
}

func TestAllModulesHaveUniquePrefixes(t *testing.T) {
	t.Parallel()

	store := webfakes.NewStore()
	deps := Dependencies{Store: store, Directory: webauth.NewDirectory(store)}
	seen := map[string]string{}
	for _, m := range append(DefaultModules(deps), StreamModules(deps)...) {
		mount, err := m.Mount()
		if err != nil {
			t.Fatalf("module %q mount error = %v", m.ID(), err)
		}
		if mount.Prefix == "" || mount.Handler == nil {
			t.Fatalf("module %q mount is incomplete: %+v", m.ID(), mount)
		}
		if owner, ok := seen[mount.Prefix]; ok {
			t.Fatalf("prefix %q mounted by %q and %q", mount.Prefix, owner, m.ID())
		}
		seen[mount.Prefix] = m.ID()
	}
}

func TestModulesWithoutStoreDegradeGracefully(t *testing.T) {
	t.Parallel()

	for _, m := range StreamModules(Dependencies{}) {
		if m.ID() != "health" {
			continue
		}
		mount, _ := m.Mount()
		rr := httptest.NewRecorder()
		mount.Handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, routepath.Health, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("health without store status = %d", rr.Code)
		}
	}

	sh := webfakes.NewShell(t)
	for _, m := range DefaultModules(Dependencies{}) {
		if m.ID() != "auth-login" {
			continue
		}
		mount, _ := m.Mount()
		req := httptest.NewRequest(http.MethodPost, routepath.Login, strings.NewReader("email=a@example.com"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		rr := webfakes.Serve(mount.Handler, sh, req)
		if rr.Code != http.StatusServiceUnavailable {
			t.Fatalf("login without directory status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
		}
	}
}

func moduleIDs(list []Module) []string {
	ids := make([]string, 0, len(list))
	for _, m := range list {
		ids = append(ids, m.ID())
	}
	return ids
}
