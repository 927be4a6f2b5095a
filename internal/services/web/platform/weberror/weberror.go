// Package weberror renders error responses for web modules.
package weberror

import (
	"log"
	"net/http"

	"github.com/louisbranch/emergencyhelp/internal/platform/i18n"
	apperrors "github.com/louisbranch/emergencyhelp/internal/services/web/platform/errors"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/pagerender"
	"github.com/louisbranch/emergencyhelp/internal/services/web/platform/requestmeta"
	"github.com/louisbranch/emergencyhelp/internal/services/web/shell"
)

// PublicMessage resolves a visitor-safe message for err. Only errors carrying
// a display key expose text; everything else falls back to the status text.
func PublicMessage(locale *i18n.Locale, err error) string {
	if err == nil {
		return ""
	}
	if key, ok := apperrors.LocalizationKey(err); ok && locale != nil {
		return locale.Text(key)
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WriteModuleError writes the error page for err with its mapped status.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, policy requestmeta.SchemePolicy) {
	if w == nil || err == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		log.Printf("web request failed method=%s path=%s status=%d err=%v", r.Method, r.URL.Path, statusCode, err)
	}
	var locale *i18n.Locale
	if sh, ok := shell.FromContext(r.Context()); ok {
		locale = sh.Locale()
	}
	pagerender.WriteError(w, r, policy, statusCode, PublicMessage(locale, err))
}
