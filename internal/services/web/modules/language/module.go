// Package language switches the visitor's display language.
package language

import (
	"net/http"
	"strings"

	"github.com/louisbranch/emergencyhelp/internal/platform/i18n"
	module "github.com/louisbranch/emergencyhelp/internal/services/web/module"
	"github.com/louisbranch/emergencyhelp/internal/services/web/navigation"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/modulehandler"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routepath"
)

// Module provides the language switch endpoint.
type Module struct {
	policy requestmeta.SchemePolicy
}

// New returns the language module.
func New(policy requestmeta.SchemePolicy) Module {
	return Module{policy: policy}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (Module) ID() string {
	return "language"
}

// Mount wires the language switch route.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	h := handlers{Base: modulehandler.NewBase(m.policy)}
	mux.HandleFunc("POST "+routepath.Language, h.handleSwitch)
	return module.Mount{Prefix: routepath.Language, Handler: mux}, nil
}

type handlers struct {
	modulehandler.Base
}

// handleSwitch activates the posted language, or toggles to the other one
// when none is given. Unsupported values leave the language unchanged.
func (h handlers) handleSwitch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		h.WriteError(w, r, err)
		return
	}
	sh := h.Shell(r)
	if raw := strings.TrimSpace(r.PostFormValue(routepath.LangQueryKey)); raw != "" {
		if lang, ok := i18n.ParseLanguage(raw); ok {
			sh.SwitchLanguage(lang)
		}
	} else {
		sh.ToggleLanguage()
	}
	h.Redirect(w, r, navigation.SafeNext(r.PostFormValue(routepath.NextQueryKey), routepath.Root), nil)
}
