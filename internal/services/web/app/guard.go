package app

import (
	"log"
	"net/http"

	"github.com/louisbranch/emergencyhelp/internal/services/web/navigation"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/httpx"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routeguard"
	"github.com/louisbranch/emergencyhelp/internal/services/web/shell"
)

// requireRoute runs the route guard before any module handler. Page loads
// move the shell's active screen; form posts are checked against the same
// table without touching navigation state.
func requireRoute(routes *routeguard.Table) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sh := shell.MustFromContext(r.Context())

			var action navigation.Action
			if isNavigation(r) {
				action = sh.Navigate(r.URL.RequestURI())
			} else {
				action = navigation.Apply(routes.Evaluate(sh.Session(), r.URL.Path))
			}
			if action.Verb == navigation.Replace {
				log.Printf("route guard redirect method=%s path=%s location=%s request_id=%s", r.Method, r.URL.Path, action.Location, httpx.RequestIDFrom(r))
				httpx.WriteReplace(w, r, action.Location)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isNavigation(r *http.Request) bool {
	return r.Method == http.MethodGet || r.Method == http.MethodHead
}
