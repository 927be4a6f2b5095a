// Package module is the contract between a feature area and the composer
// that mounts it.
package module

import (
	"errors"
	"net/http"
	"strings"
)

// Mount is where a module attaches to the router. A prefix ending in "/"
// owns its subtree; any other prefix owns exactly that path.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Validate checks that m can be registered on a ServeMux as a literal path.
func (m Mount) Validate() error {
	switch {
	case m.Prefix == "":
		return errors.New("prefix is required")
	case strings.TrimSpace(m.Prefix) != m.Prefix:
		return errors.New("prefix must not include surrounding whitespace")
	case !strings.HasPrefix(m.Prefix, "/"):
		return errors.New("prefix must begin with /")
	case strings.ContainsAny(m.Prefix, " {}"):
		return errors.New("prefix must be a literal path")
	case m.Handler == nil:
		return errors.New("handler is required")
	}
	return nil
}

// Module is one feature area: donors, sos, auth and so on.
type Module interface {
	ID() string
	Mount() (Mount, error)
}
