// Package app composes feature modules into the root HTTP handler.
package app

import (
	"fmt"
	"log"
	"net/http"

	module "github.com/louisbranch/emergencyhelp/internal/services/web/module"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/httpx"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/i18nhttp"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/observability"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/shellcookie"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routeguard"
	"github.com/louisbranch/emergencyhelp/internal/services/web/shell"
)

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	// Modules run inside a visitor shell, behind the route guard.
	Modules []module.Module
	// StreamModules run without a shell lease.
	StreamModules []module.Module

	Registry *shell.Registry
	Cookies  *shellcookie.Codec
	Routes   *routeguard.Table
	OnCreate []shell.OnCreate

	RequestSchemePolicy requestmeta.SchemePolicy
	Logger              *log.Logger
}

// Compose builds the root HTTP handler. Every module prefix must be unique
// across both groups.
func Compose(input ComposeInput) (http.Handler, error) {
	if input.Registry == nil {
		return nil, fmt.Errorf("shell registry is required")
	}
	if input.Cookies == nil {
		return nil, fmt.Errorf("shell cookie codec is required")
	}
	routes := input.Routes
	if routes == nil {
		routes = routeguard.DefaultTable()
	}

	root := http.NewServeMux()
	shellMux := http.NewServeMux()
	seen := make(map[string]string)

	for _, feature := range input.StreamModules {
		if feature == nil {
			return nil, fmt.Errorf("stream module is nil")
		}
		if mount, err := feature.Mount(); err == nil && mount.Prefix == "/" {
			return nil, fmt.Errorf("stream module %q cannot own the root prefix", feature.ID())
		}
		if err := mountModule(root, feature, seen); err != nil {
			return nil, err
		}
	}
	for _, feature := range input.Modules {
		if feature == nil {
			return nil, fmt.Errorf("module is nil")
		}
		if err := mountModule(shellMux, feature, seen); err != nil {
			return nil, err
		}
	}

	root.Handle("/", httpx.Chain(shellMux,
		shell.Middleware(input.Registry, input.Cookies, input.OnCreate...),
		i18nhttp.Middleware(),
		requireRoute(routes),
	))

	return httpx.Chain(root,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.RequestLogger(input.Logger),
		observability.Tracing(),
		httpx.SameOrigin(input.RequestSchemePolicy),
	), nil
}

func mountModule(mux *http.ServeMux, feature module.Module, seen map[string]string) error {
	mount, prefix, err := resolveMount(feature)
	if err != nil {
		return err
	}
	if previous, ok := seen[prefix]; ok {
		return fmt.Errorf("module %q duplicates prefix %q owned by module %q", feature.ID(), prefix, previous)
	}
	seen[prefix] = feature.ID()
	mux.Handle(prefix, mount.Handler)
	return nil
}

func resolveMount(feature module.Module) (module.Mount, string, error) {
	mount, err := feature.Mount()
	if err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if err := mount.Validate(); err != nil {
		return module.Mount{}, "", fmt.Errorf("mount module %q prefix %q: %w", feature.ID(), mount.Prefix, err)
	}
	return mount, mount.Prefix, nil
}
