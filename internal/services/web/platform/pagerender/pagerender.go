// Package pagerender centralizes page rendering for both full-page and HTMX
// requests.
package pagerender

import (
	"bytes"
	"net/http"
	"time"

	"github.com/a-h/templ"
	"github.com/louisbranch/emergencyhelp/internal/platform/i18n"
	flashnotice "github.com/louisbranch/emergencyhelp/internal/services/web/platform/flash"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/httpx"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/emergencyhelp/internal/services/web/shell"
	"github.com/louisbranch/emergencyhelp/internal/services/web/templates"
)

// Now is the clock used for the footer year.
var Now = time.Now

// Context builds the layout context for r from the visitor's shell.
func Context(r *http.Request, title i18n.Key) templates.PageContext {
	sh := shell.MustFromContext(r.Context())
	return templates.PageContext{
		Lang:        sh.Language(),
		Loc:         sh.Locale(),
		Title:       sh.Text(title),
		CurrentPath: r.URL.Path,
		Session:     sh.Session(),
		SOSActive:   sh.SOS().Active(),
		Year:        Now().Year(),
	}
}

// Write renders body inside the page chrome. HTMX requests receive only the
// main element; a pending flash notice is consumed into the toast either way.
func Write(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy, page templates.PageContext, statusCode int, body templ.Component) error {
	if w == nil {
		return nil
	}
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	if body == nil {
		body = templ.NopComponent
	}
	if notice, ok := flashnotice.ReadAndClear(w, r, policy); ok {
		var locale *i18n.Locale
		if sh, found := shell.FromContext(r.Context()); found {
			locale = sh.Locale()
		}
		page.Toast = &templates.Toast{Kind: string(notice.Kind), Message: notice.Message(locale)}
	}

	ctx := templ.WithChildren(r.Context(), body)
	root := templates.Layout(page)
	if httpx.IsHTMXRequest(r) {
		root = templates.Main(page)
	}
	var buf bytes.Buffer
	if err := root.Render(ctx, &buf); err != nil {
		return err
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Language", page.Lang.Code())
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}

// WriteError renders the error page for statusCode.
func WriteError(w http.ResponseWriter, r *http.Request, policy requestmeta.SchemePolicy, statusCode int, message string) {
	page := Context(r, i18n.Title)
	page.Title = templates.ErrorTitle(page, statusCode)
	if err := Write(w, r, policy, page, statusCode, templates.ErrorPage(page, statusCode, message)); err != nil {
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}
