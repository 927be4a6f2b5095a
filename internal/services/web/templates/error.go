package templates

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/louisbranch/emergencyhelp/internal/platform/i18n"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routepath"
)

// ErrorTitle returns the page title for an error status.
func ErrorTitle(page PageContext, statusCode int) string {
	if statusCode == http.StatusNotFound {
		return page.T(i18n.NotFound)
	}
	return http.StatusText(normalizeErrorStatus(statusCode))
}

// ErrorPage renders an error message with a link back home.
func ErrorPage(page PageContext, statusCode int, message string) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.open("section", "class", "error", "data-status", http.StatusText(normalizeErrorStatus(statusCode)))
		m.element("h1", ErrorTitle(page, statusCode))
		if message != "" {
			m.element("p", message)
		}
		m.element("a", page.T(i18n.Title), "href", routepath.Root)
		m.close("section")
	})
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode >= 400 && statusCode < 600 && http.StatusText(statusCode) != "" {
		return statusCode
	}
	return http.StatusInternalServerError
}
