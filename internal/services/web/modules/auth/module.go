// Package auth serves login, registration and logout. Each route group is
// its own module so the composer sees one prefix per mount.
package auth

import (
	"net/http"
	"strings"

	webauth "github.com/louisbranch/emergencyhelp/internal/services/web/auth"
	module "github.com/louisbranch/emergencyhelp/internal/services/web/module"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routepath"
)

// Module provides one auth route group.
type Module struct {
	authenticator  webauth.Authenticator
	registrar      webauth.Registrar
	policy         requestmeta.SchemePolicy
	id             string
	prefix         string
	registerRoutes func(*http.ServeMux, handlers)
}

// NewLogin returns the login module.
func NewLogin(authenticator webauth.Authenticator, policy requestmeta.SchemePolicy) Module {
	return newAuthModule("auth-login", routepath.Login, registerLoginRoutes, authenticator, nil, policy)
}

// NewRegister returns the registration module.
func NewRegister(registrar webauth.Registrar, policy requestmeta.SchemePolicy) Module {
	return newAuthModule("auth-register", routepath.Register, registerRegisterRoutes, nil, registrar, policy)
}

// NewLogout returns the logout module.
func NewLogout(policy requestmeta.SchemePolicy) Module {
	return newAuthModule("auth-logout", routepath.Logout, registerLogoutRoutes, nil, nil, policy)
}

func newAuthModule(
	id string,
	prefix string,
	registerRoutes func(*http.ServeMux, handlers),
	authenticator webauth.Authenticator,
	registrar webauth.Registrar,
	policy requestmeta.SchemePolicy,
) Module {
	return Module{
		authenticator:  authenticator,
		registrar:      registrar,
		policy:         policy,
		id:             strings.TrimSpace(id),
		prefix:         strings.TrimSpace(prefix),
		registerRoutes: registerRoutes,
	}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (m Module) ID() string {
	if m.id == "" {
		return "auth"
	}
	return m.id
}

// Mount wires the module's route group.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := handlers{
		Base:          modulehandler.NewBase(m.policy),
		authenticator: m.authenticator,
		registrar:     m.registrar,
	}
	if m.registerRoutes != nil {
		m.registerRoutes(mux, h)
	}
	return module.Mount{Prefix: m.prefix, Handler: mux}, nil
}
