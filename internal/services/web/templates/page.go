// Package templates renders the HTML pages of the web service.
package templates

import (
	"github.com/louisbranch/emergencyhelp/internal/platform/i18n"
	"github.com/louisbranch/emergencyhelp/internal/services/web/session"
)

// Localizer provides translated strings for components.
type Localizer interface {
	Text(key i18n.Key) string
	Format(key i18n.Key, data map[string]any) string
}

// Toast is a one-time notice shown above the page content.
type Toast struct {
	Kind    string
	Message string
}

// PageContext provides shared layout context for pages.
type PageContext struct {
	Lang        i18n.Language
	Loc         Localizer
	Title       string
	CurrentPath string
	Session     *session.Session
	SOSActive   bool
	Toast       *Toast
	Year        int
}

// T returns the translated string for key, or the key name without a
// localizer.
func (p PageContext) T(key i18n.Key) string {
	if p.Loc == nil {
		return key.String()
	}
	return p.Loc.Text(key)
}

// F formats the templated message for key.
func (p PageContext) F(key i18n.Key, data map[string]any) string {
	if p.Loc == nil {
		return key.String()
	}
	return p.Loc.Format(key, data)
}

// SignedIn reports whether the page renders for an authenticated visitor.
func (p PageContext) SignedIn() bool {
	return p.Session != nil
}

// HasRole reports whether the signed-in visitor holds role.
func (p PageContext) HasRole(role session.Role) bool {
	return p.Session.HasRole(role)
}

// ComposePageTitle appends the application name to a page title.
func ComposePageTitle(title, appName string) string {
	if title == "" || title == appName {
		return appName
	}
	return title + " | " + appName
}

// RoleLabel returns the translated name of role.
func RoleLabel(p PageContext, role session.Role) string {
	switch role {
	case session.RoleDonor:
		return p.T(i18n.RoleDonor)
	case session.RolePatient:
		return p.T(i18n.RolePatient)
	case session.RoleVolunteer:
		return p.T(i18n.RoleVolunteer)
	case session.RoleAdmin:
		return p.T(i18n.RoleAdmin)
	default:
		return string(role)
	}
}
