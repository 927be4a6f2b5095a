// Package modulehandler provides a composable base for web module handlers.
//
// Every module handler reaches the visitor's shell, renders pages in the
// shell's language and writes errors the same way. Modules embed Base rather
// than duplicating that scaffold.
package modulehandler

import (
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/emergencyhelp/internal/platform/i18n"
	flashnotice "github.com/louisbranch/emergencyhelp/internal/services/web/platform/flash"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/httpx"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/pagerender"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/weberror"
	"github.com/louisbranch/emergencyhelp/internal/services/web/shell"
	"github.com/louisbranch/emergencyhelp/internal/services/web/templates"
)

// Base carries the request scheme policy shared by module handlers.
type Base struct {
	policy requestmeta.SchemePolicy
}

// NewBase builds a handler base.
func NewBase(policy requestmeta.SchemePolicy) Base {
	return Base{policy: policy}
}

// Shell returns the visitor's shell. It panics when the handler is served
// outside the shell middleware.
func (b Base) Shell(r *http.Request) *shell.Shell {
	return shell.MustFromContext(r.Context())
}

// Page builds the layout context for r with a translated title.
func (b Base) Page(r *http.Request, title i18n.Key) templates.PageContext {
	return pagerender.Context(r, title)
}

// WritePage renders body inside the page chrome (HTMX-aware).
func (b Base) WritePage(w http.ResponseWriter, r *http.Request, page templates.PageContext, statusCode int, body templ.Component) {
	if err := pagerender.Write(w, r, b.policy, page, statusCode, body); err != nil {
		b.WriteError(w, r, err)
	}
}

// WriteError renders a localized error response.
func (b Base) WriteError(w http.ResponseWriter, r *http.Request, err error) {
	weberror.WriteModuleError(w, r, err, b.policy)
}

// WriteNotFound renders the 404 page within the chrome.
func (b Base) WriteNotFound(w http.ResponseWriter, r *http.Request) {
	pagerender.WriteError(w, r, b.policy, http.StatusNotFound, "")
}

// Redirect sends the visitor to location after a form submission, leaving
// notice for the next page.
func (b Base) Redirect(w http.ResponseWriter, r *http.Request, location string, notice *flashnotice.Notice) {
	if notice != nil {
		flashnotice.Write(w, r, *notice, b.policy)
	}
	httpx.WriteRedirect(w, r, location)
}
