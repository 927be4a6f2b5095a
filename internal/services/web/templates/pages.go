package templates

import (
	"context"
	"strconv"

	"github.com/a-h/templ"
	"github.com/louisbranch/emergencyhelp/internal/platform/i18n"
	"github.com/louisbranch/emergencyhelp/internal/platform/icons"
	"github.com/louisbranch/emergencyhelp/internal/services/web/directory"
	"github.com/louisbranch/emergencyhelp/internal/services/web/routepath"
	"github.com/louisbranch/emergencyhelp/internal/services/web/session"
	"github.com/louisbranch/emergencyhelp/internal/services/web/storage"
)

// HomeView is the data of the landing page.
type HomeView struct {
	Cards []directory.Card
	Stats storage.Stats
}

// Home renders the landing page: hero, service cards and impact counters.
func Home(page PageContext, view HomeView) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.raw(`<section class="hero">`)
		m.element("h1", page.T(i18n.Title))
		m.element("p", page.T(i18n.Tagline), "class", "tagline")
		if page.SignedIn() {
			m.element("p", page.F(i18n.Welcome, map[string]any{"Name": page.Session.Name}), "class", "welcome")
		}
		m.raw(`</section>`)

		m.raw(`<section class="cards">`)
		for _, card := range view.Cards {
			m.iconLink(card.Icon, page.T(card.Label), "href", card.Path, "class", "card card-"+string(card.Kind))
		}
		m.raw(`</section>`)

		m.raw(`<section class="impact">`)
		m.element("h2", page.T(i18n.ImpactStats))
		stat(m, page.T(i18n.VerifiedDonors), view.Stats.Donors)
		stat(m, page.T(i18n.Users), view.Stats.Accounts)
		stat(m, page.T(i18n.EmergencyCalls), view.Stats.Alerts)
		m.raw(`</section>`)
	})
}

func stat(m *markup, label string, value int) {
	m.raw(`<div class="stat">`)
	m.element("strong", strconv.Itoa(value))
	m.element("span", label)
	m.raw(`</div>`)
}

// DonorsView is the data of the donor search page.
type DonorsView struct {
	Filter     storage.DonorFilter
	Donors     []storage.Donor
	Suggestion string
}

// Donors renders the donor search form and its results.
func Donors(page PageContext, view DonorsView) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.element("h1", page.T(i18n.SearchDonors))
		m.open("form", "method", "get", "action", routepath.Donors, "class", "donor-search")
		m.element("label", page.T(i18n.BloodGroup), "for", routepath.BloodGroupQuery)
		m.open("select", "id", routepath.BloodGroupQuery, "name", routepath.BloodGroupQuery)
		option(m, "", page.T(i18n.AnyOption), view.Filter.BloodGroup == "")
		for _, group := range session.BloodGroups() {
			option(m, string(group), string(group), view.Filter.BloodGroup == group)
		}
		m.close("select")
		m.element("label", page.T(i18n.Location), "for", routepath.LocationQuery)
		m.open("input", "id", routepath.LocationQuery, "name", routepath.LocationQuery, "type", "text", "value", view.Filter.Location)
		m.iconButton(icons.Search, page.T(i18n.Search), "type", "submit")
		m.close("form")

		if len(view.Donors) == 0 {
			m.element("p", page.T(i18n.NoDonors), "class", "empty")
			if view.Suggestion != "" {
				m.open("p", "class", "suggestion")
				m.iconLink(icons.Location, page.F(i18n.DidYouMean, map[string]any{"Location": view.Suggestion}),
					"href", routepath.DonorSearch(string(view.Filter.BloodGroup), view.Suggestion))
				m.close("p")
			}
			return
		}
		m.raw(`<ul class="donors">`)
		for _, donor := range view.Donors {
			m.open("li", "class", "donor", "data-id", donor.ID)
			m.element("strong", donor.Name)
			m.element("span", string(donor.BloodGroup), "class", "blood-group")
			m.open("span", "class", "location")
			m.icon(icons.Location)
			m.text(donor.Location)
			m.close("span")
			m.element("a", donor.Phone, "href", "tel:"+donor.Phone)
			if donor.Available {
				m.open("span", "class", "available")
				m.icon(icons.Verified)
				m.text(page.T(i18n.Available))
				m.close("span")
			} else {
				m.element("span", page.T(i18n.Unavailable), "class", "unavailable")
			}
			m.close("li")
		}
		m.raw(`</ul>`)
	})
}

func option(m *markup, value, label string, selected bool) {
	if selected {
		m.open("option", "value", value, "selected", "selected")
	} else {
		m.open("option", "value", value)
	}
	m.text(label)
	m.close("option")
}

// FirstAid renders the first-aid guides.
func FirstAid(page PageContext, guides []directory.Guide) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.element("h1", page.T(i18n.FirstAidGuides))
		for _, guide := range guides {
			m.open("article", "id", guide.ID, "class", "guide")
			m.element("h2", guide.Title)
			m.element("span", guide.Category, "class", "category")
			m.raw("<ol>")
			for _, step := range guide.Steps {
				m.raw("<li>")
				m.element("strong", step.Title)
				m.element("p", step.Description)
				m.raw("</li>")
			}
			m.raw("</ol>")
			m.close("article")
		}
	})
}

// Service renders the provider listing of one emergency service.
func Service(page PageContext, service directory.Service) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.element("h1", page.T(service.Label))
		m.open("ul", "class", "providers", "data-kind", string(service.Kind))
		for _, provider := range service.Providers {
			m.raw("<li>")
			m.element("strong", provider.Name)
			m.element("span", provider.Location, "class", "location")
			m.element("a", provider.Phone, "href", "tel:"+provider.Phone)
			m.raw("</li>")
		}
		m.close("ul")
	})
}

// LoginView is the data of the login form.
type LoginView struct {
	Email string
	Next  string
	Error string
}

// Login renders the login form.
func Login(page PageContext, view LoginView) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.element("h1", page.T(i18n.Login))
		formError(m, view.Error)
		m.open("form", "method", "post", "action", routepath.Login, "class", "login")
		if view.Next != "" {
			m.open("input", "type", "hidden", "name", routepath.NextQueryKey, "value", view.Next)
		}
		field(m, "email", page.T(i18n.Email), "email", view.Email)
		m.element("button", page.T(i18n.Login), "type", "submit")
		m.close("form")
		m.element("a", page.T(i18n.Register), "href", routepath.Register)
	})
}

// RegisterForm holds the submitted registration values.
type RegisterForm struct {
	Name       string
	Email      string
	Phone      string
	Role       string
	BloodGroup string
	Location   string
}

// RegisterView is the data of the registration form.
type RegisterView struct {
	Form  RegisterForm
	Error string
}

// Register renders the registration form.
func Register(page PageContext, view RegisterView) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.element("h1", page.T(i18n.Register))
		formError(m, view.Error)
		m.open("form", "method", "post", "action", routepath.Register, "class", "register")
		field(m, "name", page.T(i18n.Name), "text", view.Form.Name)
		field(m, "email", page.T(i18n.Email), "email", view.Form.Email)
		field(m, "phone", page.T(i18n.Phone), "tel", view.Form.Phone)

		m.element("label", page.T(i18n.Role), "for", "role")
		m.open("select", "id", "role", "name", "role")
		for _, role := range session.Roles() {
			if role == session.RoleAdmin {
				continue
			}
			option(m, string(role), RoleLabel(page, role), view.Form.Role == string(role))
		}
		m.close("select")

		m.element("label", page.T(i18n.BloodGroup), "for", "blood_group")
		m.open("select", "id", "blood_group", "name", "blood_group")
		option(m, "", page.T(i18n.AnyOption), view.Form.BloodGroup == "")
		for _, group := range session.BloodGroups() {
			option(m, string(group), string(group), view.Form.BloodGroup == string(group))
		}
		m.close("select")

		field(m, "location", page.T(i18n.Location), "text", view.Form.Location)
		m.element("button", page.T(i18n.Register), "type", "submit")
		m.close("form")
	})
}

func field(m *markup, name, label, kind, value string) {
	m.element("label", label, "for", name)
	m.open("input", "id", name, "name", name, "type", kind, "value", value)
}

func formError(m *markup, message string) {
	if message == "" {
		return
	}
	m.element("p", message, "class", "form-error", "role", "alert")
}

// Profile renders the signed-in visitor's details.
func Profile(page PageContext) templ.Component {
	return component(func(_ context.Context, m *markup) {
		s := page.Session
		if s == nil {
			return
		}
		m.element("h1", page.T(i18n.MyProfile))
		m.raw(`<dl class="profile">`)
		definition(m, page.T(i18n.Name), s.Name)
		definition(m, page.T(i18n.Email), s.Email)
		definition(m, page.T(i18n.Phone), s.Phone)
		definition(m, page.T(i18n.Role), RoleLabel(page, s.Role))
		if s.BloodGroup != nil {
			definition(m, page.T(i18n.BloodGroup), string(*s.BloodGroup))
		}
		if s.Location != nil {
			definition(m, page.T(i18n.Location), *s.Location)
		}
		if s.Available != nil {
			status := page.T(i18n.Unavailable)
			if *s.Available {
				status = page.T(i18n.Available)
			}
			definition(m, page.T(i18n.Eligibility), status)
		}
		m.raw(`</dl>`)

		switch s.Role {
		case session.RoleDonor:
			m.element("h2", page.T(i18n.DonationHistory))
		case session.RoleVolunteer:
			m.element("h2", page.T(i18n.Tasks))
		case session.RoleAdmin:
			m.element("a", page.T(i18n.AdminPanel), "href", routepath.Admin)
		case session.RolePatient:
			m.element("a", page.T(i18n.SearchDonors), "href", routepath.Donors)
		}
	})
}

func definition(m *markup, term, value string) {
	m.element("dt", term)
	m.element("dd", value)
}

// Admin renders the admin dashboard counters.
func Admin(page PageContext, stats storage.Stats) templ.Component {
	return component(func(_ context.Context, m *markup) {
		m.element("h1", page.T(i18n.AdminPanel))
		m.raw(`<section class="stats">`)
		stat(m, page.T(i18n.TotalAccounts), stats.Accounts)
		stat(m, page.T(i18n.VerifiedDonors), stats.Donors)
		stat(m, page.T(i18n.TotalAlerts), stats.Alerts)
		m.raw(`</section>`)
	})
}
