// Package assets serves the embedded stylesheet.
package assets

import (
	"io/fs"
	"net/http"
	"strings"

	module "github.com/louisbranch/emergencyhelp/internal/services/web/module"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routepath"
)

// Module provides GET /static/. Asset requests never touch a shell.
type Module struct {
	files fs.FS
}

// New returns the assets module over files.
func New(files fs.FS) Module {
	return Module{files: files}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "assets"
}

// Mount wires the static file server. A nil filesystem serves nothing.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	if m.files == nil {
		mux.Handle("GET "+routepath.StaticPrefix, http.NotFoundHandler())
		return module.Mount{Prefix: routepath.StaticPrefix, Handler: mux}, nil
	}
	files := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(m.files)))
	mux.Handle("GET "+routepath.StaticPrefix, withStaticHeaders(files))
	return module.Mount{Prefix: routepath.StaticPrefix, Handler: mux}, nil
}

// withStaticHeaders pins content types for known assets and refuses
// directory listings.
func withStaticHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		path := strings.ToLower(r.URL.Path)
		if strings.HasSuffix(path, "/") {
			http.NotFound(w, r)
			return
		}
		switch {
		case strings.HasSuffix(path, ".css"):
			w.Header().Set("Content-Type", "text/css; charset=utf-8")
		case strings.HasSuffix(path, ".svg"):
			w.Header().Set("Content-Type", "image/svg+xml")
		}
		w.Header().Set("Cache-Control", "public, max-age=3600")
		next.ServeHTTP(w, r)
	})
}
