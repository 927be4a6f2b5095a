// Package routepath stores canonical HTTP paths for web modules.
package routepath

import (
	"net/url"
	"strings"
)

const (
	Root            = "/"
	Donors          = "/donors"
	FirstAid        = "/first-aid"
	ServicesPrefix  = "/services/"
	ServicePattern  = ServicesPrefix + "{type}"
	Login           = "/login"
	Register        = "/register"
	Logout          = "/logout"
	Profile         = "/profile"
	Admin           = "/admin"
	Language        = "/language"
	SOS             = "/sos"
	Events          = "/events"
	Health          = "/up"
	StaticPrefix    = "/static/"
	Stylesheet      = StaticPrefix + "app.css"
	NextQueryKey    = "next"
	LangQueryKey    = "lang"
	BloodGroupQuery = "blood_group"
	LocationQuery   = "location"
)

// Service returns the emergency-service listing route for kind.
func Service(kind string) string {
	return ServicesPrefix + escapeSegment(kind)
}

// LoginWithNext returns the login route carrying the path to resume after a
// successful login. An empty next yields the bare login route.
func LoginWithNext(next string) string {
	next = strings.TrimSpace(next)
	if next == "" {
		return Login
	}
	return Login + "?" + url.Values{NextQueryKey: {next}}.Encode()
}

// DonorSearch returns the donor listing route filtered by group and location.
func DonorSearch(bloodGroup, location string) string {
	values := url.Values{}
	if strings.TrimSpace(bloodGroup) != "" {
		values.Set(BloodGroupQuery, strings.TrimSpace(bloodGroup))
	}
	if strings.TrimSpace(location) != "" {
		values.Set(LocationQuery, strings.TrimSpace(location))
	}
	if len(values) == 0 {
		return Donors
	}
	return Donors + "?" + values.Encode()
}

func escapeSegment(raw string) string {
	return url.PathEscape(strings.TrimSpace(raw))
}
