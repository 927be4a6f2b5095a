package httpx

import (
	"bytes"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/emergencyhelp/internal/platform/id"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/requestmeta"
)

func TestChainAppliesMiddlewareInOrder(t *testing.T) {
	t.Parallel()

	called := ""
	mw1 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called += "1"
			next.ServeHTTP(w, r)
		})
	}
	mw2 := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called += "2"
			next.ServeHTTP(w, r)
		})
	}

	h := Chain(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called += "h"
		w.WriteHeader(http.StatusNoContent)
	}), mw1, nil, mw2)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNoContent {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNoContent)
	}
	if called != "12h" {
		t.Fatalf("call order = %q, want %q", called, "12h")
	}

	rr = httptest.NewRecorder()
	Chain(nil).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("nil handler status = %d", rr.Code)
	}
}

func TestRequestID(t *testing.T) {
	t.Parallel()

	var seen string
	h := RequestID()(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = RequestIDFrom(r)
	}))

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if !id.Valid(seen) || rr.Header().Get("X-Request-ID") != seen {
		t.Fatalf("generated id = %q header = %q", seen, rr.Header().Get("X-Request-ID"))
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "req-1")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if seen != "req-1" || rr.Header().Get("X-Request-ID") != "req-1" {
		t.Fatalf("incoming id not preserved: %q", seen)
	}
	if RequestIDFrom(nil) != "-" {
		t.Fatal("RequestIDFrom(nil) != -")
	}
}

func TestRecoverPanicLogsRequestContext(t *testing.T) {
	var buffer bytes.Buffer
	previous := log.Writer()
	log.SetOutput(&buffer)
	t.Cleanup(func() { log.SetOutput(previous) })

	h := RecoverPanic()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	req := httptest.NewRequest(http.MethodGet, "/profile", nil)
	req.Header.Set("X-Request-ID", "req-9")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", rr.Code)
	}
	for _, marker := range []string{"panic recovered", "method=GET", "path=/profile", "request_id=req-9", "panic=boom"} {
		if !strings.Contains(buffer.String(), marker) {
			t.Fatalf("log missing %q: %q", marker, buffer.String())
		}
	}
}

func TestSameOrigin(t *testing.T) {
	t.Parallel()

	h := SameOrigin(requestmeta.SchemePolicy{})(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name   string
		method string
		origin string
		want   int
	}{
		{name: "get passes", method: http.MethodGet, want: http.StatusNoContent},
		{name: "post same origin", method: http.MethodPost, origin: "http://example.com", want: http.StatusNoContent},
		{name: "post foreign origin", method: http.MethodPost, origin: "http://evil.test", want: http.StatusForbidden},
		{name: "post no origin", method: http.MethodPost, want: http.StatusForbidden},
	}
	for _, tc := range tests {
		req := httptest.NewRequest(tc.method, "http://example.com/sos", nil)
		if tc.origin != "" {
			req.Header.Set("Origin", tc.origin)
		}
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		if rr.Code != tc.want {
			t.Fatalf("%s: status = %d, want %d", tc.name, rr.Code, tc.want)
		}
	}
}

func TestWriteRedirect(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteRedirect(rr, httptest.NewRequest(http.MethodPost, "/login", nil), "/profile")
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/profile" {
		t.Fatalf("redirect = %d %q", rr.Code, rr.Header().Get("Location"))
	}

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.Header.Set("HX-Request", "true")
	rr = httptest.NewRecorder()
	WriteRedirect(rr, req, "/profile")
	if rr.Code != http.StatusOK || rr.Header().Get("HX-Location") != "/profile" || rr.Header().Get("Location") != "" {
		t.Fatalf("htmx redirect = %d %v", rr.Code, rr.Header())
	}
	WriteRedirect(nil, req, "/")
}

func TestWriteReplace(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteReplace(rr, httptest.NewRequest(http.MethodGet, "/profile", nil), "/login?next=%2Fprofile")
	if rr.Code != http.StatusSeeOther || rr.Header().Get("Location") != "/login?next=%2Fprofile" {
		t.Fatalf("replace = %d %q", rr.Code, rr.Header().Get("Location"))
	}

	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("HX-Request", "true")
	rr = httptest.NewRecorder()
	WriteReplace(rr, req, "/")
	if rr.Header().Get("HX-Replace-Url") != "/" || rr.Header().Get("HX-Location") != "/" {
		t.Fatalf("htmx replace headers = %v", rr.Header())
	}
	if IsHTMXRequest(nil) {
		t.Fatal("IsHTMXRequest(nil) = true")
	}
}
