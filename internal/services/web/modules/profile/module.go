// Package profile serves the signed-in visitor's profile.
package profile

import (
	"net/http"

	"github.com/louisbranch/emergencyhelp/internal/platform/i18n"
	module "github.com/louisbranch/emergencyhelp/internal/services/web/module"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routepath"
	"github.com/louisbranch/emergencyhelp/internal/services/web/templates"
)

// Module provides the profile page. The route table keeps anonymous
// visitors out before the handler runs.
type Module struct {
	policy requestmeta.SchemePolicy
}

// New returns the profile module.
func New(policy requestmeta.SchemePolicy) Module {
	return Module{policy: policy}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "profile"
}

// Mount wires the profile route.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := handlers{Base: modulehandler.NewBase(m.policy)}
	mux.HandleFunc("GET "+routepath.Profile, h.handleProfile)
	return module.Mount{Prefix: routepath.Profile, Handler: mux}, nil
}

type handlers struct {
	modulehandler.Base
}

func (h handlers) handleProfile(w http.ResponseWriter, r *http.Request) {
	if h.Shell(r).Session() == nil {
		h.Redirect(w, r, routepath.LoginWithNext(routepath.Profile), nil)
		return
	}
	page := h.Page(r, i18n.MyProfile)
	h.WritePage(w, r, page, http.StatusOK, templates.Profile(page))
}
