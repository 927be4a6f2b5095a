// Package httpx holds the middleware and redirect helpers shared by the
// emergency help web handlers.
package httpx

import (
	"log"
	"net/http"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/louisbranch/emergencyhelp/internal/platform/id"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/requestmeta"
)

const (
	headerHTMX       = "HX-Request"
	headerHXLocation = "HX-Location"
	headerHXReplace  = "HX-Replace-Url"
	headerRequestID  = "X-Request-ID"
)

// Middleware wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

// Chain wraps handler so the first middleware runs first. Nil entries are
// skipped.
func Chain(handler http.Handler, middleware ...Middleware) http.Handler {
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	for i := len(middleware) - 1; i >= 0; i-- {
		if mw := middleware[i]; mw != nil {
			handler = mw(handler)
		}
	}
	return handler
}

func orNotFound(next http.Handler) http.Handler {
	if next == nil {
		return http.NotFoundHandler()
	}
	return next
}

// RequestID tags every request with a correlation id. An incoming
// X-Request-ID is kept; otherwise a fresh opaque id is minted.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		next = orNotFound(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			rid := strings.TrimSpace(r.Header.Get(headerRequestID))
			if rid == "" {
				rid = newRequestID()
				r.Header.Set(headerRequestID, rid)
			}
			w.Header().Set(headerRequestID, rid)
			next.ServeHTTP(w, r)
		})
	}
}

func newRequestID() string {
	rid, err := id.NewID()
	if err != nil {
		return "t" + strconv.FormatInt(time.Now().UnixNano(), 36)
	}
	return rid
}

// RequestIDFrom returns the correlation id set by RequestID, or "-".
func RequestIDFrom(r *http.Request) string {
	if r == nil {
		return "-"
	}
	if rid := strings.TrimSpace(r.Header.Get(headerRequestID)); rid != "" {
		return rid
	}
	return "-"
}

// RecoverPanic logs a handler panic with its stack and answers 500.
func RecoverPanic() Middleware {
	return func(next http.Handler) http.Handler {
		next = orNotFound(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				log.Printf("panic recovered method=%s path=%s request_id=%s panic=%v stack=%s",
					r.Method, r.URL.Path, RequestIDFrom(r), recovered, strings.TrimSpace(string(debug.Stack())))
				w.WriteHeader(http.StatusInternalServerError)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// SameOrigin refuses form posts that did not come from this host.
func SameOrigin(policy requestmeta.SchemePolicy) Middleware {
	return func(next http.Handler) http.Handler {
		next = orNotFound(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if safeMethod(r.Method) || requestmeta.SameOrigin(r, policy) {
				next.ServeHTTP(w, r)
				return
			}
			log.Printf("cross-origin request rejected method=%s path=%s request_id=%s", r.Method, r.URL.Path, RequestIDFrom(r))
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
		})
	}
}

func safeMethod(method string) bool {
	return method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions
}

// IsHTMXRequest reports whether r was issued by htmx.
func IsHTMXRequest(r *http.Request) bool {
	return r != nil && r.Header.Get(headerHTMX) == "true"
}

// WriteRedirect sends the client to location after a form submission. The
// 303 makes the follow-up a GET regardless of the submitted method.
func WriteRedirect(w http.ResponseWriter, r *http.Request, location string) {
	if w == nil {
		return
	}
	if IsHTMXRequest(r) {
		w.Header().Set(headerHXLocation, location)
		w.WriteHeader(http.StatusOK)
		return
	}
	w.Header().Set("Location", location)
	w.WriteHeader(http.StatusSeeOther)
}

// WriteReplace sends the client to location replacing the current history
// entry, so "back" cannot return to the blocked screen.
func WriteReplace(w http.ResponseWriter, r *http.Request, location string) {
	if w != nil && IsHTMXRequest(r) {
		w.Header().Set(headerHXReplace, location)
	}
	WriteRedirect(w, r, location)
}
