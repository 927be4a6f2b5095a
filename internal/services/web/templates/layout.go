package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/emergencyhelp/internal/platform/i18n"
	"github.com/louisbranch/emergencyhelp/internal/platform/icons"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routepath"
	"github.com/louisbranch/emergencyhelp/internal/services/web/session"
)

// MainID is the element HTMX swaps when it requests a fragment.
const MainID = "main"

const htmxScript = "https://unpkg.com/htmx.org@2.0.4"

// Layout renders the full document around the children in ctx.
func Layout(page PageContext) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		appName := page.T(i18n.Title)
		m.raw("<!DOCTYPE html>")
		m.open("html", "lang", page.Lang.Code())
		m.raw("<head>")
		m.raw(`<meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.element("title", ComposePageTitle(page.Title, appName))
		m.open("link", "rel", "stylesheet", "href", routepath.Stylesheet)
		m.open("script", "src", htmxScript, "defer", "defer")
		m.close("script")
		m.raw("</head>")
		m.open("body", "hx-boost", "true", "hx-target", "#"+MainID, "hx-select", "#"+MainID, "hx-swap", "outerHTML")
		m.raw(icons.LucideSprite())
		m.render(ctx, Navbar(page))
		m.render(ctx, Main(page))
		m.render(ctx, Footer(page))
		m.render(ctx, SOSButton(page))
		m.raw("</body></html>")
	})
}

// Main renders the swappable main element: the toast, then the children.
func Main(page PageContext) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.open("main", "id", MainID, "data-path", page.CurrentPath)
		if page.Toast != nil && page.Toast.Message != "" {
			m.element("div", page.Toast.Message, "class", "toast toast-"+page.Toast.Kind, "role", "status")
		}
		m.render(ctx, templ.GetChildren(ctx))
		m.close("main")
	})
}

// Navbar renders the top navigation. Items depend on the session role.
func Navbar(page PageContext) templ.Component {
	return component(func(ctx context.Context, m *markup) {
		m.open("nav", "class", "navbar")
		m.element("a", page.T(i18n.Title), "href", routepath.Root, "class", "brand")
		m.element("a", page.T(i18n.BloodDonor), "href", routepath.Donors)
		m.element("a", page.T(i18n.FirstAid), "href", routepath.FirstAid)
		if page.HasRole(session.RoleVolunteer) {
			m.iconLink(icons.Tasks, page.T(i18n.Tasks), "href", routepath.Profile, "class", "nav-tasks")
		}

		m.open("form", "method", "post", "action", routepath.Language, "class", "nav-language")
		m.open("input", "type", "hidden", "name", routepath.NextQueryKey, "value", page.CurrentPath)
		m.iconButton(icons.Language, page.T(i18n.LanguageToggle), "type", "submit")
		m.close("form")

		if page.SignedIn() {
			if page.HasRole(session.RoleAdmin) {
				m.iconLink(icons.Dashboard, page.T(i18n.Dashboard), "href", routepath.Admin, "class", "nav-admin")
			}
			m.iconLink(icons.Profile, page.Session.Name, "href", routepath.Profile, "class", "nav-profile")
			m.open("form", "method", "post", "action", routepath.Logout, "class", "nav-logout")
			m.iconButton(icons.LogOut, page.T(i18n.Logout), "type", "submit")
			m.close("form")
		} else {
			m.element("a", page.T(i18n.Login), "href", routepath.Login)
			m.element("a", page.T(i18n.Register), "href", routepath.Register, "class", "nav-register")
		}
		m.close("nav")
	})
}

// SOSButton renders the floating SOS form and its active state.
func SOSButton(page PageContext) templ.Component {
	return component(func(_ context.Context, m *markup) {
		class := "sos"
		if page.SOSActive {
			class = "sos sos-active"
		}
		m.open("form", "method", "post", "action", routepath.SOS, "class", class, "hx-boost", "false")
		m.open("input", "type", "hidden", "name", routepath.NextQueryKey, "value", page.CurrentPath)
		m.iconButton(icons.SOS, page.T(i18n.SOS), "type", "submit", "title", page.T(i18n.WomenSafety))
		if page.SOSActive {
			m.element("span", page.T(i18n.SOSActive), "class", "sos-status", "role", "status")
		}
		m.close("form")
	})
}

// Footer renders the page footer.
func Footer(page PageContext) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.open("footer", "class", "footer")
		m.element("h3", page.T(i18n.Title))
		m.element("p", page.T(i18n.FooterAbout))
		m.raw("<div class=\"footer-links\">")
		m.element("a", page.T(i18n.BloodBank), "href", routepath.Donors)
		m.element("a", page.T(i18n.AmbulanceServices), "href", routepath.Service("ambulance"))
		m.element("a", page.T(i18n.FirstAidGuides), "href", routepath.FirstAid)
		m.element("a", page.T(i18n.JoinAsDonor), "href", routepath.Register)
		m.raw("</div>")
		m.element("p", "© "+strconv.Itoa(page.Year)+" "+page.T(i18n.Title)+". "+page.T(i18n.AllRightsReserved), "class", "copyright")
		m.close("footer")
	})
}
