// Package health exposes the liveness probe.
package health

import (
	"context"
	"log"
	"net/http"
	"time"

	module "github.com/louisbranch/emergencyhelp/internal/services/web/module"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routepath"
)

const pingTimeout = 2 * time.Second

// Pinger checks a backing dependency.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Module provides GET /up. It runs without a shell so probes do not mint
// visitor state.
type Module struct {
	pinger Pinger
}

// New returns the health module. A nil pinger reports healthy.
func New(pinger Pinger) Module {
	return Module{pinger: pinger}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "health"
}

// Mount wires the probe route.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET "+routepath.Health, m.handleUp)
	return module.Mount{Prefix: routepath.Health, Handler: mux}, nil
}

func (m Module) handleUp(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if m.pinger != nil {
		ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
		defer cancel()
		if err := m.pinger.Ping(ctx); err != nil {
			log.Printf("health: ping failed: %v", err)
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte("UNAVAILABLE"))
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
