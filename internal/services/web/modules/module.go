// Package modules composes the feature modules of the web service.
package modules

import (
	webauth "github.com/louisbranch/emergencyhelp/internal/services/web/auth"
	module "github.com/louisbranch/emergencyhelp/internal/services/web/module"
	"github.com/louisbranch/emergencyhelp/internal/services/web/modules/events"
	"github.com/louisbranch/emergencyhelp/internal/services/web/modules/health"
	"github.com/louisbranch/emergencyhelp/internal/services/web/modules/sos"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/emergencyhelp/internal/services/web/storage"
)

// Mount aliases the module mount contract.
type Mount = module.Mount

// Module aliases the module interface contract.
type Module = module.Module

// Dependencies carries what the registry needs to build every module. Each
// module receives only the narrow interface it consumes.
type Dependencies struct {
	Store     storage.Store
	Directory *webauth.Directory
	Policy    requestmeta.SchemePolicy
	// Relay forwards SOS alerts to responders. Nil keeps alerts local.
	Relay sos.Notifier

	// Shell event stream.
	Watcher events.Watcher
	Cookies events.ShellReader
}

func (d Dependencies) pinger() health.Pinger {
	if d.Store == nil {
		return nil
	}
	return d.Store
}
