// Package admin serves the admin dashboard.
package admin

import (
	"net/http"

	"github.com/louisbranch/emergencyhelp/internal/platform/i18n"
	module "github.com/louisbranch/emergencyhelp/internal/services/web/module"
	apperrors "github.com/louisbranch/emergencyhelp/internal/services/web/platform/errors"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routepath"
	"github.com/louisbranch/emergencyhelp/internal/services/web/session"
	"github.com/louisbranch/emergencyhelp/internal/services/web/storage"
	"github.com/louisbranch/emergencyhelp/internal/services/web/templates"
)

// Module provides the admin dashboard.
type Module struct {
	stats  storage.StatsStore
	policy requestmeta.SchemePolicy
}

// New returns the admin module.
func New(stats storage.StatsStore, policy requestmeta.SchemePolicy) Module {
	return Module{stats: stats, policy: policy}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "admin"
}

// Mount wires the dashboard route.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := handlers{Base: modulehandler.NewBase(m.policy), stats: m.stats}
	mux.HandleFunc("GET "+routepath.Admin, h.handleDashboard)
	return module.Mount{Prefix: routepath.Admin, Handler: mux}, nil
}

type handlers struct {
	modulehandler.Base
	stats storage.StatsStore
}

func (h handlers) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if !h.Shell(r).Session().HasRole(session.RoleAdmin) {
		h.WriteError(w, r, apperrors.E(apperrors.KindForbidden, "admin role required"))
		return
	}
	if h.stats == nil {
		h.WriteError(w, r, apperrors.E(apperrors.KindUnavailable, "stats store is not configured"))
		return
	}
	stats, err := h.stats.Stats(r.Context())
	if err != nil {
		h.WriteError(w, r, err)
		return
	}
	page := h.Page(r, i18n.AdminPanel)
	h.WritePage(w, r, page, http.StatusOK, templates.Admin(page, stats))
}
