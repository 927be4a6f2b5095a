package webfakes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/louisbranch/emergencyhelp/internal/services/web/routeguard"
	"github.com/louisbranch/emergencyhelp/internal/services/web/session"
	"github.com/louisbranch/emergencyhelp/internal/services/web/shell"
)

// NewShell returns a shell using the default route table, closed when the
// test ends.
func NewShell(t testing.TB) *shell.Shell {
	t.Helper()
	sh := shell.New("test-shell", shell.Config{Routes: routeguard.DefaultTable()})
	t.Cleanup(sh.Close)
	return sh
}

// WithShell attaches sh to req.
func WithShell(req *http.Request, sh *shell.Shell) *http.Request {
	return req.WithContext(shell.WithShell(req.Context(), sh))
}

// Serve runs handler for req within sh and returns the recorded response.
func Serve(handler http.Handler, sh *shell.Shell, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, WithShell(req, sh))
	return rr
}

// SignIn sets a session with role on sh and returns it.
func SignIn(sh *shell.Shell, role session.Role) *session.Session {
	s := &session.Session{ID: "acct-" + string(role), Name: "Test " + string(role), Email: string(role) + "@example.com", Role: role}
	sh.SetSession(s)
	return s
}
