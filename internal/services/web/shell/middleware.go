package shell

import (
	"log"
	"net/http"

	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/shellcookie"
)

// OnCreate runs once for every shell created by the middleware, with the
// request that created it.
type OnCreate func(*Shell, *http.Request)

// Middleware attaches the visitor's shell to the request context and holds
// the shell's lock until the handler returns. A visitor without a valid
// cookie gets a fresh shell and a new cookie.
func Middleware(reg *Registry, cookies *shellcookie.Codec, onCreate ...OnCreate) func(http.Handler) http.Handler {
	if reg == nil || cookies == nil {
		panic("shell: middleware requires a registry and a cookie codec")
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			shellID, _ := cookies.Read(r)
			lease, err := reg.Acquire(r.Context(), shellID)
			if err != nil {
				log.Printf("shell acquire failed path=%s err=%v", r.URL.Path, err)
				http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
				return
			}
			defer lease.Release()

			if lease.Created {
				if err := cookies.Write(w, r, lease.Shell.ID()); err != nil {
					log.Printf("shell cookie write failed shell_id=%s err=%v", lease.Shell.ID(), err)
				}
				for _, fn := range onCreate {
					if fn != nil {
						fn(lease.Shell, r)
					}
				}
			}
			next.ServeHTTP(w, r.WithContext(WithShell(r.Context(), lease.Shell)))
		})
	}
}
