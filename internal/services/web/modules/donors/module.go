// Package donors serves the public donor search.
package donors

import (
	"net/http"

	module "github.com/louisbranch/emergencyhelp/internal/services/web/module"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routepath"
	"github.com/louisbranch/emergencyhelp/internal/services/web/storage"
)

// Module provides the donor listing.
type Module struct {
	donors storage.DonorStore
	policy requestmeta.SchemePolicy
}

// New returns the donors module.
func New(donors storage.DonorStore, policy requestmeta.SchemePolicy) Module {
	return Module{donors: donors, policy: policy}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "donors"
}

// Mount wires the donor search route.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := handlers{Base: modulehandler.NewBase(m.policy), donors: m.donors}
	mux.HandleFunc("GET "+routepath.Donors, h.handleSearch)
	return module.Mount{Prefix: routepath.Donors, Handler: mux}, nil
}
