// Package public serves the screens every visitor can reach: home, first-aid
// guides and the emergency service listings.
package public

import (
	"net/http"

	module "github.com/louisbranch/emergencyhelp/internal/services/web/module"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routepath"
	"github.com/louisbranch/emergencyhelp/internal/services/web/storage"
)

// Module provides the root public routes and the not-found fallback.
type Module struct {
	stats  storage.StatsStore
	policy requestmeta.SchemePolicy
}

// New returns the public module. stats feeds the home page counters.
func New(stats storage.StatsStore, policy requestmeta.SchemePolicy) Module {
	return Module{stats: stats, policy: policy}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "public"
}

// Mount wires public routes under the root prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.stats, modulehandler.NewBase(m.policy)))
	return module.Mount{Prefix: routepath.Root, Handler: mux}, nil
}
