package modules

import (
	webauth "github.com/louisbranch/emergencyhelp/internal/services/web/auth"
	"github.com/louisbranch/emergencyhelp/internal/services/web/modules/admin"
	"github.com/louisbranch/emergencyhelp/internal/services/web/modules/assets"
	"github.com/louisbranch/emergencyhelp/internal/services/web/modules/auth"
	"github.com/louisbranch/emergencyhelp/internal/services/web/modules/donors"
	"github.com/louisbranch/emergencyhelp/internal/services/web/modules/events"
	"github.com/louisbranch/emergencyhelp/internal/services/web/modules/health"
	"github.com/louisbranch/emergencyhelp/internal/services/web/modules/language"
	"github.com/louisbranch/emergencyhelp/internal/services/web/modules/profile"
	"github.com/louisbranch/emergencyhelp/internal/services/web/modules/public"
	"github.com/louisbranch/emergencyhelp/internal/services/web/modules/sos"
	"github.com/louisbranch/emergencyhelp/internal/services/web/static"
	"github.com/louisbranch/emergencyhelp/internal/services/web/storage"
)

// DefaultModules returns the modules served inside a visitor shell, behind
// the route guard.
func DefaultModules(deps Dependencies) []Module {
	var (
		stats  storage.StatsStore
		donorS storage.DonorStore
		alerts storage.AlertStore
	)
	if deps.Store != nil {
		stats, donorS, alerts = deps.Store, deps.Store, deps.Store
	}
	var (
		authenticator webauth.Authenticator
		registrar     webauth.Registrar
	)
	if deps.Directory != nil {
		authenticator, registrar = deps.Directory, deps.Directory
	}
	return []Module{
		public.New(stats, deps.Policy),
		donors.New(donorS, deps.Policy),
		auth.NewLogin(authenticator, deps.Policy),
		auth.NewRegister(registrar, deps.Policy),
		auth.NewLogout(deps.Policy),
		profile.New(deps.Policy),
		admin.New(stats, deps.Policy),
		language.New(deps.Policy),
		sos.New(alerts, deps.Relay, deps.Policy),
	}
}

// StreamModules returns the modules served without a shell lease: the event
// socket, the health probe and the static assets.
func StreamModules(deps Dependencies) []Module {
	return []Module{
		events.New(deps.Watcher, deps.Cookies),
		health.New(deps.pinger()),
		assets.New(static.FS),
	}
}
